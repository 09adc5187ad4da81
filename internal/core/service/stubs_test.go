package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sort"

	"github.com/lojinha/catalog-api/internal/core/domain"
)

// --- user repository ---

type stubAuthRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User)}
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	clone := *user
	clone.ID = r.nextID
	r.users[clone.Email] = &clone
	out := clone
	return &out, nil
}

func (r *stubAuthRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

// --- token store ---

type stubTokenStore struct {
	tokens map[string]*domain.Token
}

func newStubTokenStore() *stubTokenStore {
	return &stubTokenStore{tokens: make(map[string]*domain.Token)}
}

func (s *stubTokenStore) Save(_ context.Context, hash string, token *domain.Token) error {
	clone := *token
	s.tokens[hash] = &clone
	return nil
}

func (s *stubTokenStore) Find(_ context.Context, hash string) (*domain.Token, error) {
	t, ok := s.tokens[hash]
	if !ok {
		return nil, domain.ErrTokenNotFound
	}
	clone := *t
	return &clone, nil
}

func (s *stubTokenStore) RevokeAll(_ context.Context, userID int64) error {
	for hash, t := range s.tokens {
		if t.UserID == userID {
			delete(s.tokens, hash)
		}
	}
	return nil
}

// --- product repository ---

type stubProductRepo struct {
	products map[int64]*domain.Product
	nextID   int64
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[int64]*domain.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) error {
	r.nextID++
	p.ID = r.nextID
	clone := *p
	r.products[p.ID] = &clone
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id int64) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProductRepo) List(_ context.Context, page, limit int) ([]*domain.Product, int64, error) {
	ids := make([]int64, 0, len(r.products))
	for id := range r.products {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	start := (page - 1) * limit
	out := make([]*domain.Product, 0, limit)
	for i := start; i < len(ids) && i < start+limit; i++ {
		clone := *r.products[ids[i]]
		out = append(out, &clone)
	}
	return out, int64(len(ids)), nil
}

func (r *stubProductRepo) Update(_ context.Context, p *domain.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrProductNotFound
	}
	clone := *p
	r.products[p.ID] = &clone
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

// --- category repository ---

type stubCategoryRepo struct {
	categories map[int64]*domain.Category
}

func newStubCategoryRepo(categories ...*domain.Category) *stubCategoryRepo {
	r := &stubCategoryRepo{categories: make(map[int64]*domain.Category)}
	for _, c := range categories {
		r.categories[c.ID] = c
	}
	return r
}

func (r *stubCategoryRepo) FindByIDs(_ context.Context, ids []int64) ([]*domain.Category, error) {
	out := make([]*domain.Category, 0, len(ids))
	for _, id := range ids {
		if c, ok := r.categories[id]; ok {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

// --- photo repository ---

type stubPhotoRepo struct {
	photos     []*domain.ProductPhoto
	nextID     int64
	failCreate bool
}

func newStubPhotoRepo() *stubPhotoRepo {
	return &stubPhotoRepo{}
}

func (r *stubPhotoRepo) CreateMany(_ context.Context, photos []*domain.ProductPhoto) error {
	if r.failCreate {
		return errors.New("insert photos: write exception")
	}
	for _, p := range photos {
		r.nextID++
		p.ID = r.nextID
		clone := *p
		r.photos = append(r.photos, &clone)
	}
	return nil
}

func (r *stubPhotoRepo) FindByProduct(_ context.Context, productID int64) ([]*domain.ProductPhoto, error) {
	out := make([]*domain.ProductPhoto, 0)
	for _, p := range r.photos {
		if p.ProductID == productID {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubPhotoRepo) FindByID(_ context.Context, productID, photoID int64) (*domain.ProductPhoto, error) {
	for _, p := range r.photos {
		if p.ID == photoID && p.ProductID == productID {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domain.ErrPhotoNotFound
}

func (r *stubPhotoRepo) Delete(_ context.Context, productID, photoID int64) error {
	for i, p := range r.photos {
		if p.ID == photoID && p.ProductID == productID {
			r.photos = append(r.photos[:i], r.photos[i+1:]...)
			return nil
		}
	}
	return domain.ErrPhotoNotFound
}

// --- object store ---

type memObjectStore struct {
	objects map[string][]byte
	failPut bool
}

func newMemObjectStore() *memObjectStore {
	return &memObjectStore{objects: make(map[string][]byte)}
}

func (s *memObjectStore) Put(_ context.Context, key, _ string, body io.Reader) error {
	if s.failPut {
		return errors.New("put object: backend unavailable")
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(body); err != nil {
		return err
	}
	s.objects[key] = buf.Bytes()
	return nil
}

func (s *memObjectStore) Delete(_ context.Context, key string) error {
	delete(s.objects, key)
	return nil
}

func (s *memObjectStore) Exists(_ context.Context, key string) (bool, error) {
	_, ok := s.objects[key]
	return ok, nil
}
