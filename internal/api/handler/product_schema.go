package handler

import "time"

// dataEnvelope wraps single-resource responses as {"data": ...}.
type dataEnvelope struct {
	Data any `json:"data"`
}

// --- Request types ---

// productRequest uses pointer fields so validation can tell an absent field
// from a zero value. Absent fields fail validation; there is no partial
// update.
type productRequest struct {
	Name  *string `json:"name"`
	Price *int64  `json:"price"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// internal service changes.

type categoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
}

type productResponse struct {
	ID         int64              `json:"id"`
	Name       string             `json:"name"`
	Price      int64              `json:"price"`
	PriceFloat float64            `json:"price_float"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
	Categories []categoryResponse `json:"categories,omitempty"`
}

type photoResponse struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	Photo     string    `json:"photo"`
	CreatedAt time.Time `json:"created_at"`
}

// paginationMeta describes one page of the listing.
type paginationMeta struct {
	CurrentPage int   `json:"current_page"`
	From        int   `json:"from"`
	To          int   `json:"to"`
	PerPage     int   `json:"per_page"`
	LastPage    int   `json:"last_page"`
	Total       int64 `json:"total"`
}

// paginationLinks carries page navigation URLs; prev/next are null at the
// edges.
type paginationLinks struct {
	First string  `json:"first"`
	Last  string  `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

type listProductsResponse struct {
	Data  []productResponse `json:"data"`
	Meta  paginationMeta    `json:"meta"`
	Links paginationLinks   `json:"links"`
}
