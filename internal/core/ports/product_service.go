package ports

import (
	"context"

	"github.com/lojinha/catalog-api/internal/core/domain"
)

// DefaultPageSize is the fixed catalog page size.
const DefaultPageSize = 10

// ProductInput carries the write payload for create and update. Pointer
// fields distinguish "absent" from zero values so validation can report
// missing fields precisely.
type ProductInput struct {
	Name  *string
	Price *int64
}

// ProductDetail is a product with its categories eagerly attached.
type ProductDetail struct {
	Product    *domain.Product
	Categories []*domain.Category
}

// ProductPage is one page of the catalog listing.
type ProductPage struct {
	Items      []*domain.Product
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ProductService defines use-case operations over the catalog.
type ProductService interface {
	List(ctx context.Context, page int) (*ProductPage, error)
	Get(ctx context.Context, id int64) (*ProductDetail, error)
	Create(ctx context.Context, in ProductInput) (*domain.Product, error)
	Update(ctx context.Context, id int64, in ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

// CategoryService exposes the categories attached to a product.
type CategoryService interface {
	// ListByProduct returns the product's categories in association order.
	// An empty slice is valid; a missing product is domain.ErrProductNotFound.
	ListByProduct(ctx context.Context, productID int64) ([]*domain.Category, error)
}
