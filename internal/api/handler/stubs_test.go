package handler

import (
	"context"

	"github.com/lojinha/catalog-api/internal/core/domain"
	"github.com/lojinha/catalog-api/internal/core/ports"
)

// Function-field stubs: each test wires only the methods it exercises.

type stubProductService struct {
	listFn   func(page int) (*ports.ProductPage, error)
	getFn    func(id int64) (*ports.ProductDetail, error)
	createFn func(in ports.ProductInput) (*domain.Product, error)
	updateFn func(id int64, in ports.ProductInput) (*domain.Product, error)
	deleteFn func(id int64) error
}

var _ ports.ProductService = (*stubProductService)(nil)

func (s *stubProductService) List(_ context.Context, page int) (*ports.ProductPage, error) {
	return s.listFn(page)
}

func (s *stubProductService) Get(_ context.Context, id int64) (*ports.ProductDetail, error) {
	return s.getFn(id)
}

func (s *stubProductService) Create(_ context.Context, in ports.ProductInput) (*domain.Product, error) {
	return s.createFn(in)
}

func (s *stubProductService) Update(_ context.Context, id int64, in ports.ProductInput) (*domain.Product, error) {
	return s.updateFn(id, in)
}

func (s *stubProductService) Delete(_ context.Context, id int64) error {
	return s.deleteFn(id)
}

type stubCategoryService struct {
	listFn func(productID int64) ([]*domain.Category, error)
}

var _ ports.CategoryService = (*stubCategoryService)(nil)

func (s *stubCategoryService) ListByProduct(_ context.Context, productID int64) ([]*domain.Category, error) {
	return s.listFn(productID)
}

type stubPhotoService struct {
	listFn   func(productID int64) ([]*domain.ProductPhoto, error)
	uploadFn func(productID int64, files []ports.FileUpload) ([]*domain.ProductPhoto, error)
	deleteFn func(productID, photoID int64) error
}

var _ ports.PhotoService = (*stubPhotoService)(nil)

func (s *stubPhotoService) List(_ context.Context, productID int64) ([]*domain.ProductPhoto, error) {
	return s.listFn(productID)
}

func (s *stubPhotoService) Upload(_ context.Context, productID int64, files []ports.FileUpload) ([]*domain.ProductPhoto, error) {
	return s.uploadFn(productID, files)
}

func (s *stubPhotoService) Delete(_ context.Context, productID, photoID int64) error {
	return s.deleteFn(productID, photoID)
}

type stubAuthService struct {
	registerFn func(name, email, password string) (*domain.User, error)
	loginFn    func(email, password string) (string, error)
	logoutFn   func(userID int64) error
}

var _ ports.AuthService = (*stubAuthService)(nil)

func (s *stubAuthService) Register(_ context.Context, name, email, password string) (*domain.User, error) {
	return s.registerFn(name, email, password)
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (string, error) {
	return s.loginFn(email, password)
}

func (s *stubAuthService) Logout(_ context.Context, userID int64) error {
	return s.logoutFn(userID)
}

func (s *stubAuthService) Authenticate(context.Context, string) (*domain.Token, error) {
	return nil, domain.ErrUnauthorized
}
