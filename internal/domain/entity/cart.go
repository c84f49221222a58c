package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PiecesBreakdown is the garment count attached to piecework products.
// It never affects price or quantity, only receipt display.
type PiecesBreakdown struct {
	Pantalones int `json:"pantalones"`
	Prendas    int `json:"prendas"`
	Otros      int `json:"otros"`
}

// Total returns the displayed aggregate piece count
func (p PiecesBreakdown) Total() int {
	return p.Pantalones + p.Prendas + p.Otros
}

// CartLine is one product-addition event. Every add gets a fresh ID, even
// for the same product: lines are never merged by SKU.
type CartLine struct {
	ID            uuid.UUID                `json:"id"`
	ProductID     string                   `json:"product_id"`
	Name          string                   `json:"name"`
	BasePrice     decimal.Decimal          `json:"base_price"`
	Selections    map[string]SelectedGroup `json:"selections,omitempty"`
	Pieces        *PiecesBreakdown         `json:"pieces,omitempty"`
	UnitPrice     decimal.Decimal          `json:"unit_price"`
	Quantity      int                      `json:"quantity"`
	ExtendedPrice decimal.Decimal          `json:"extended_price"`
}

// Cart is one register session's line list. It is owned by exactly one
// active session; there are no concurrent writers.
type Cart struct {
	ID        uuid.UUID  `json:"id"`
	Lines     []CartLine `json:"lines"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
