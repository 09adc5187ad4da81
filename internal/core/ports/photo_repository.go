package ports

import (
	"context"

	"github.com/lojinha/catalog-api/internal/core/domain"
)

// PhotoRepository defines persistence operations for product photo rows.
type PhotoRepository interface {
	// CreateMany inserts all rows as one batch, assigning ids. Either every
	// row persists or none do.
	CreateMany(ctx context.Context, photos []*domain.ProductPhoto) error

	// FindByProduct lists the product's photos in insertion order.
	FindByProduct(ctx context.Context, productID int64) ([]*domain.ProductPhoto, error)

	// FindByID looks up a photo scoped to its product. Returns
	// domain.ErrPhotoNotFound when no row matches.
	FindByID(ctx context.Context, productID, photoID int64) (*domain.ProductPhoto, error)

	// Delete removes the row scoped to its product. Returns
	// domain.ErrPhotoNotFound when no row matches.
	Delete(ctx context.Context, productID, photoID int64) error
}
