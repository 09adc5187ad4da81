package ports

import (
	"context"

	"github.com/lojinha/catalog-api/internal/core/domain"
)

// FileUpload is one uploaded file as received by the transport layer.
type FileUpload struct {
	Filename string
	Data     []byte
}

// PhotoService manages the photo row ↔ blob lifecycle for a product.
type PhotoService interface {
	List(ctx context.Context, productID int64) ([]*domain.ProductPhoto, error)

	// Upload validates every file as an image, stores the blobs, then
	// records one row per file in a single batch. Any invalid file rejects
	// the whole call with a ValidationError keyed "photos.<index>"; a
	// failed batch insert rolls the written blobs back.
	Upload(ctx context.Context, productID int64, files []FileUpload) ([]*domain.ProductPhoto, error)

	// Delete removes the photo's blob and row as one logical operation.
	// When the blob is already gone the row is still deleted; when the
	// blob deletion fails the row is kept and the error surfaces.
	Delete(ctx context.Context, productID, photoID int64) error
}
