package domain

import "time"

// Category is read-only from the catalog's perspective: no endpoint creates,
// updates, or deletes one. Products reference categories by id.
type Category struct {
	ID          int64     `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	Slug        string    `json:"slug" bson:"slug"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
