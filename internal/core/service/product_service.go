package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/lojinha/catalog-api/internal/api/metrics"
	"github.com/lojinha/catalog-api/internal/core/domain"
	"github.com/lojinha/catalog-api/internal/core/ports"
)

// ProductService implements CRUD over the catalog.
type ProductService struct {
	repo       ports.ProductRepository
	categories ports.CategoryRepository
	logger     zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, categories ports.CategoryRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, categories: categories, logger: logger}
}

// List returns one page of products ordered by id ascending. Pages are
// 1-based and fixed at DefaultPageSize items; a page past the end is an
// empty page, not an error.
func (s *ProductService) List(ctx context.Context, page int) (*ports.ProductPage, error) {
	if page < 1 {
		page = 1
	}
	limit := ports.DefaultPageSize

	items, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &ports.ProductPage{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// Get returns the product with its categories eagerly attached.
func (s *ProductService) Get(ctx context.Context, id int64) (*ports.ProductDetail, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	categories, err := s.categories.FindByIDs(ctx, product.CategoryIDs)
	if err != nil {
		return nil, err
	}

	return &ports.ProductDetail{Product: product, Categories: categories}, nil
}

func (s *ProductService) Create(ctx context.Context, in ports.ProductInput) (*domain.Product, error) {
	if err := validateProductInput(in); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product := &domain.Product{
		Name:      *in.Name,
		Price:     *in.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		s.logger.Error().Err(err).Msg("failed to create product")
		return nil, err
	}

	metrics.ProductsCreatedTotal.Inc()
	s.logger.Info().Int64("product_id", product.ID).Str("name", product.Name).Msg("product created")

	return product, nil
}

// Update replaces name and price wholesale. There is no partial update:
// an absent field fails validation instead of keeping its old value.
func (s *ProductService) Update(ctx context.Context, id int64, in ports.ProductInput) (*domain.Product, error) {
	if err := validateProductInput(in); err != nil {
		return nil, err
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = *in.Name
	product.Price = *in.Price
	product.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("product_id", id).Msg("product updated")
	return product, nil
}

// Delete hard-deletes the product document, taking its category links with
// it. Photo rows and their blobs are intentionally left untouched; photo
// cleanup stays an explicit photo-endpoint operation (see DESIGN.md).
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.ProductsDeletedTotal.Inc()
	s.logger.Info().Int64("product_id", id).Msg("product deleted")
	return nil
}

// validateProductInput enforces the write contract: name present and
// non-empty, price present and non-negative.
func validateProductInput(in ports.ProductInput) error {
	errs := make(map[string][]string)
	if in.Name == nil || *in.Name == "" {
		errs["name"] = append(errs["name"], domain.MsgRequired)
	}
	if in.Price == nil || *in.Price < 0 {
		errs["price"] = append(errs["price"], domain.MsgRequired)
	}
	if len(errs) > 0 {
		return domain.NewValidationError(errs)
	}
	return nil
}

// CategoryService resolves the categories attached to a product.
type CategoryService struct {
	products   ports.ProductRepository
	categories ports.CategoryRepository
}

func NewCategoryService(products ports.ProductRepository, categories ports.CategoryRepository) *CategoryService {
	return &CategoryService{products: products, categories: categories}
}

// ListByProduct returns the product's categories in association order. The
// product must exist; having no categories is fine.
func (s *CategoryService) ListByProduct(ctx context.Context, productID int64) ([]*domain.Category, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	return s.categories.FindByIDs(ctx, product.CategoryIDs)
}
