package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lojinha/catalog-api/internal/api/metrics"
	"github.com/lojinha/catalog-api/internal/core/domain"
	"github.com/lojinha/catalog-api/internal/core/ports"
)

// PhotoService manages product photos across both sides of the row ↔ blob
// invariant: a photo row always points at an existing blob, and a blob is
// never deleted while its row survives.
type PhotoService struct {
	products ports.ProductRepository
	photos   ports.PhotoRepository
	store    ports.ObjectStore
	logger   zerolog.Logger
}

func NewPhotoService(products ports.ProductRepository, photos ports.PhotoRepository, store ports.ObjectStore, logger zerolog.Logger) *PhotoService {
	return &PhotoService{products: products, photos: photos, store: store, logger: logger}
}

func (s *PhotoService) List(ctx context.Context, productID int64) ([]*domain.ProductPhoto, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}
	return s.photos.FindByProduct(ctx, productID)
}

// Upload stores all files or none. Validation rejects the whole batch on the
// first non-image file; after the blobs are written, a failed row insert
// triggers compensating blob deletes so no orphan survives.
func (s *PhotoService) Upload(ctx context.Context, productID int64, files []ports.FileUpload) ([]*domain.ProductPhoto, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	errs := make(map[string][]string)
	types := make([]*mimetype.MIME, len(files))
	for i, f := range files {
		mt := mimetype.Detect(f.Data)
		if !strings.HasPrefix(mt.String(), "image/") {
			key := fmt.Sprintf("photos.%d", i)
			errs[key] = append(errs[key], domain.MsgInvalidImage)
			continue
		}
		types[i] = mt
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}

	now := time.Now().UTC()
	written := make([]string, 0, len(files))
	rows := make([]*domain.ProductPhoto, 0, len(files))

	for i, f := range files {
		key := objectKey(productID, types[i].Extension())
		if err := s.store.Put(ctx, key, types[i].String(), bytes.NewReader(f.Data)); err != nil {
			s.rollbackBlobs(ctx, written)
			return nil, fmt.Errorf("store photo %q: %w", f.Filename, err)
		}
		written = append(written, key)
		metrics.PhotoUploadBytes.Observe(float64(len(f.Data)))
		rows = append(rows, &domain.ProductPhoto{
			ProductID: productID,
			Photo:     key,
			CreatedAt: now,
		})
	}

	if err := s.photos.CreateMany(ctx, rows); err != nil {
		s.rollbackBlobs(ctx, written)
		return nil, fmt.Errorf("record photos: %w", err)
	}

	metrics.PhotosUploadedTotal.Add(float64(len(rows)))
	s.logger.Info().Int64("product_id", productID).Int("count", len(rows)).Msg("photos uploaded")

	return rows, nil
}

// Delete removes blob and row as one logical operation. Order matters: the
// blob goes first, so a failure leaves the row (and the invariant) intact.
// A blob already absent from storage does not block deleting the row.
func (s *PhotoService) Delete(ctx context.Context, productID, photoID int64) error {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return err
	}

	photo, err := s.photos.FindByID(ctx, productID, photoID)
	if err != nil {
		return err
	}

	exists, err := s.store.Exists(ctx, photo.Photo)
	if err != nil {
		return fmt.Errorf("check photo blob: %w", err)
	}
	if exists {
		if err := s.store.Delete(ctx, photo.Photo); err != nil {
			return fmt.Errorf("delete photo blob: %w", err)
		}
	}

	if err := s.photos.Delete(ctx, productID, photoID); err != nil {
		return err
	}

	s.logger.Info().Int64("product_id", productID).Int64("photo_id", photoID).Str("key", photo.Photo).Msg("photo deleted")
	return nil
}

// rollbackBlobs best-effort deletes blobs written by a failed upload.
func (s *PhotoService) rollbackBlobs(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := s.store.Delete(ctx, key); err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("failed to roll back photo blob")
		}
	}
}

// objectKey builds a collision-resistant key in the product's namespace,
// e.g. products/42/6aa0…f1.jpg.
func objectKey(productID int64, ext string) string {
	return fmt.Sprintf("products/%d/%s%s", productID, uuid.NewString(), ext)
}
