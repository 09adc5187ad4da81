package ports

import (
	"context"
	"io"
)

// ObjectStore abstracts the blob backend holding uploaded photos.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
