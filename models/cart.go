package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine is one product/quantity pair in the cart.
type CartLine struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// LineTotal returns UnitPrice × Quantity.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CartTotals is derived from the cart lines and never stored.
type CartTotals struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	ItemCount   int             `json:"item_count"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Tax         decimal.Decimal `json:"tax"`
	GrandTotal  decimal.Decimal `json:"grand_total"`
}

// CartEntry is the backing store row for a cart line.
type CartEntry struct {
	ItemID    string          `gorm:"primaryKey"`
	Name      string          `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Quantity  int             `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (e CartEntry) Line() CartLine {
	return CartLine{ID: e.ItemID, Name: e.Name, UnitPrice: e.UnitPrice, Quantity: e.Quantity}
}
