package domain

import (
	"errors"
	"time"
)

var ErrProductNotFound = errors.New("product not found")

// Product is the core catalog aggregate. Price is stored in minor currency
// units (cents); the float representation is derived at serialization time
// and never persisted.
type Product struct {
	ID          int64     `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Price       int64     `json:"price" bson:"price"`
	CategoryIDs []int64   `json:"-" bson:"category_ids,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// PriceFloat returns the price in whole currency units (3999 → 39.99).
func (p *Product) PriceFloat() float64 {
	return float64(p.Price) / 100
}
