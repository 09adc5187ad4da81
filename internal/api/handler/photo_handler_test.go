package handler

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lojinha/catalog-api/internal/core/domain"
	"github.com/lojinha/catalog-api/internal/core/ports"
)

func newMultipartContext(t *testing.T, target, fieldName string, files map[string][]byte) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, data := range files {
		part, err := w.CreateFormFile(fieldName, name)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write(data); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if len(files) == 0 {
		if err := w.WriteField("note", "no files here"); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func samplePhoto(id, productID int64) *domain.ProductPhoto {
	return &domain.ProductPhoto{
		ID:        id,
		ProductID: productID,
		Photo:     "products/5/5f9b3c2e.png",
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestPhotoIndex(t *testing.T) {
	svc := &stubPhotoService{
		listFn: func(productID int64) ([]*domain.ProductPhoto, error) {
			return []*domain.ProductPhoto{samplePhoto(1, productID)}, nil
		},
	}
	c, rec := newJSONContext(http.MethodGet, "/products/5/photos", "")
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := NewPhotoHandler(svc).Index(c); err != nil {
		t.Fatalf("index: %v", err)
	}

	data := decodeBody(t, rec)["data"].([]any)
	if len(data) != 1 {
		t.Fatalf("got %d photos, want 1", len(data))
	}
	photo := data[0].(map[string]any)
	if photo["product_id"] != float64(5) || photo["photo"] != "products/5/5f9b3c2e.png" {
		t.Fatalf("unexpected photo body: %v", photo)
	}
}

func TestPhotoStore(t *testing.T) {
	svc := &stubPhotoService{
		uploadFn: func(productID int64, files []ports.FileUpload) ([]*domain.ProductPhoto, error) {
			if productID != 5 {
				t.Fatalf("product id = %d, want 5", productID)
			}
			if len(files) != 2 {
				t.Fatalf("got %d files, want 2", len(files))
			}
			for _, f := range files {
				if len(f.Data) == 0 {
					t.Fatalf("file %q read empty", f.Filename)
				}
			}
			return []*domain.ProductPhoto{samplePhoto(1, productID), samplePhoto(2, productID)}, nil
		},
	}
	c, rec := newMultipartContext(t, "/products/5/photos", "photos[]", map[string][]byte{
		"a.png": {0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A},
		"b.jpg": {0xFF, 0xD8, 0xFF, 0xE0},
	})
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := NewPhotoHandler(svc).Store(c); err != nil {
		t.Fatalf("store: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if len(decodeBody(t, rec)["data"].([]any)) != 2 {
		t.Fatal("expected 2 photos in the response")
	}
}

func TestPhotoStoreBareFieldName(t *testing.T) {
	// "photos" without brackets is accepted too.
	var called bool
	svc := &stubPhotoService{
		uploadFn: func(productID int64, files []ports.FileUpload) ([]*domain.ProductPhoto, error) {
			called = true
			return []*domain.ProductPhoto{samplePhoto(1, productID)}, nil
		},
	}
	c, _ := newMultipartContext(t, "/products/5/photos", "photos", map[string][]byte{
		"a.png": {0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A},
	})
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := NewPhotoHandler(svc).Store(c); err != nil {
		t.Fatalf("store: %v", err)
	}
	if !called {
		t.Fatal("upload never reached the service")
	}
}

func TestPhotoStoreNoFiles(t *testing.T) {
	svc := &stubPhotoService{
		uploadFn: func(int64, []ports.FileUpload) ([]*domain.ProductPhoto, error) {
			t.Fatal("service must not be called without files")
			return nil, nil
		},
	}
	c, _ := newMultipartContext(t, "/products/5/photos", "photos[]", nil)
	c.SetParamNames("id")
	c.SetParamValues("5")

	err := NewPhotoHandler(svc).Store(c)
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %v, want ValidationError", err)
	}
	msgs := verr.Errors["photos"]
	if len(msgs) != 1 || msgs[0] != domain.MsgRequired {
		t.Fatalf("photos errors = %v, want [%q]", msgs, domain.MsgRequired)
	}
}

func TestPhotoStoreInvalidImagePassthrough(t *testing.T) {
	svc := &stubPhotoService{
		uploadFn: func(int64, []ports.FileUpload) ([]*domain.ProductPhoto, error) {
			return nil, domain.NewValidationError(map[string][]string{
				"photos.0": {domain.MsgInvalidImage},
			})
		},
	}
	c, _ := newMultipartContext(t, "/products/5/photos", "photos[]", map[string][]byte{
		"notes.txt": []byte("not an image"),
	})
	c.SetParamNames("id")
	c.SetParamValues("5")

	err := NewPhotoHandler(svc).Store(c)
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %v, want ValidationError to pass through", err)
	}
	if verr.Errors["photos.0"][0] != domain.MsgInvalidImage {
		t.Fatalf("unexpected errors: %v", verr.Errors)
	}
}

func TestPhotoDestroy(t *testing.T) {
	var gotProduct, gotPhoto int64
	svc := &stubPhotoService{
		deleteFn: func(productID, photoID int64) error {
			gotProduct, gotPhoto = productID, photoID
			return nil
		},
	}
	c, rec := newJSONContext(http.MethodDelete, "/products/5/photos/3", "")
	c.SetParamNames("id", "photo_id")
	c.SetParamValues("5", "3")

	if err := NewPhotoHandler(svc).Destroy(c); err != nil {
		t.Fatalf("destroy: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if gotProduct != 5 || gotPhoto != 3 {
		t.Fatalf("deleted %d/%d, want 5/3", gotProduct, gotPhoto)
	}
}

func TestPhotoDestroyNonNumericID(t *testing.T) {
	svc := &stubPhotoService{}
	c, _ := newJSONContext(http.MethodDelete, "/products/5/photos/abc", "")
	c.SetParamNames("id", "photo_id")
	c.SetParamValues("5", "abc")

	if err := NewPhotoHandler(svc).Destroy(c); !errors.Is(err, domain.ErrPhotoNotFound) {
		t.Fatalf("got %v, want ErrPhotoNotFound", err)
	}
}
