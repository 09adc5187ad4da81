package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lojinha/catalog-api/internal/api/handler"
	"github.com/lojinha/catalog-api/internal/api/middleware"
	"github.com/lojinha/catalog-api/internal/core/ports"
	"github.com/lojinha/catalog-api/internal/core/service"
	mongodb "github.com/lojinha/catalog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/lojinha/catalog-api/internal/infrastructure/db/redis"
	"github.com/lojinha/catalog-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, store ports.ObjectStore, tokenTTL time.Duration) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()

	log := logger.Get()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Dependencies ---
	seq := mongodb.NewSequence(db)
	userRepo := mongodb.NewAuthRepository(db, seq)
	productRepo := mongodb.NewProductRepository(db, seq)
	categoryRepo := mongodb.NewCategoryRepository(db)
	photoRepo := mongodb.NewPhotoRepository(db, seq)
	tokenStore := redisdb.NewTokenStore(rdb)

	authService := service.NewAuthService(userRepo, tokenStore, tokenTTL)
	productService := service.NewProductService(productRepo, categoryRepo, log)
	categoryService := service.NewCategoryService(productRepo, categoryRepo)
	photoService := service.NewPhotoService(productRepo, photoRepo, store, log)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	photoHandler := handler.NewPhotoHandler(photoService)

	authRequired := middleware.Auth(authService)

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout, authRequired)

	// --- Catalog routes ---
	// store/update are ability-gated; delete and the photo endpoints only
	// need a valid token (see DESIGN.md).
	products := e.Group("/products", authRequired)
	products.GET("", productHandler.Index)
	products.GET("/:id", productHandler.Show)
	products.POST("", productHandler.Store, middleware.Ability("store"))
	products.PUT("/:id", productHandler.Update, middleware.Ability("update"))
	products.PATCH("/:id", productHandler.Update, middleware.Ability("update"))
	products.DELETE("/:id", productHandler.Destroy)

	products.GET("/:id/categories", categoryHandler.Index)

	products.GET("/:id/photos", photoHandler.Index)
	products.POST("/:id/photos", photoHandler.Store)
	products.DELETE("/:id/photos/:photo_id", photoHandler.Destroy)

	// --- Health probes & observability (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
