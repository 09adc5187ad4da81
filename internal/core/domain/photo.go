package domain

import (
	"errors"
	"time"
)

var ErrPhotoNotFound = errors.New("photo not found")

// ProductPhoto links a product to one uploaded blob. Photo holds the
// storage-relative object key. Invariant: while the row exists its blob must
// not be deleted, and deleting the row deletes the blob with it.
type ProductPhoto struct {
	ID        int64     `json:"id" bson:"_id,omitempty"`
	ProductID int64     `json:"product_id" bson:"product_id"`
	Photo     string    `json:"photo" bson:"photo"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
