package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/lojinha/catalog-api/internal/api"
	"github.com/lojinha/catalog-api/internal/infrastructure/db/mongo"
	"github.com/lojinha/catalog-api/internal/infrastructure/db/redis"
	"github.com/lojinha/catalog-api/internal/infrastructure/storage/s3"
	"github.com/lojinha/catalog-api/internal/pkg/config"
	"github.com/lojinha/catalog-api/pkg/logger"

	_ "github.com/lojinha/catalog-api/docs"
)

// @title        Catalog API
// @version      1.0
// @description  Product catalog with ability-scoped bearer tokens and photo storage.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongo")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() {
		_ = rdb.Close()
	}()

	s3Client, err := s3.Connect(ctx, s3.Config{
		Endpoint:        cfg.S3.Endpoint,
		Region:          cfg.S3.Region,
		Bucket:          cfg.S3.Bucket,
		AccessKeyID:     cfg.S3.AccessKeyID,
		SecretAccessKey: cfg.S3.SecretAccessKey,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure object storage")
	}
	store := s3.NewObjectStore(s3Client, cfg.S3.Bucket)

	seq := mongo.NewSequence(db)
	if err := mongo.NewAuthRepository(db, seq).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}
	if err := mongo.NewPhotoRepository(db, seq).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create photo indexes")
	}

	e := api.NewRouter(db, rdb, store, cfg.TokenTTL)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("catalog api started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
