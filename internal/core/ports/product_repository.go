package ports

import (
	"context"

	"github.com/lojinha/catalog-api/internal/core/domain"
)

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	// Create inserts the product and assigns its id.
	Create(ctx context.Context, p *domain.Product) error

	// FindByID returns domain.ErrProductNotFound when no product matches.
	FindByID(ctx context.Context, id int64) (*domain.Product, error)

	// List returns one page of products ordered by id ascending plus the
	// total count. Page is 1-based; a page past the end yields an empty
	// slice, not an error.
	List(ctx context.Context, page, limit int) ([]*domain.Product, int64, error)

	// Update replaces name and price. Returns domain.ErrProductNotFound
	// when no product matches.
	Update(ctx context.Context, p *domain.Product) error

	// Delete hard-deletes the product. Returns domain.ErrProductNotFound
	// when no product matches.
	Delete(ctx context.Context, id int64) error
}

// CategoryRepository is the read-only side of product↔category associations.
type CategoryRepository interface {
	// FindByIDs returns the categories for the given ids, preserving the
	// order of ids. Unknown ids are skipped.
	FindByIDs(ctx context.Context, ids []int64) ([]*domain.Category, error)
}
