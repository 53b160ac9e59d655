package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	MethodCard   PaymentMethod = "card"
	MethodUPI    PaymentMethod = "upi"
	MethodWallet PaymentMethod = "wallet"
	MethodCOD    PaymentMethod = "cod"
)

// PaymentForm carries the method-dependent checkout fields.
type PaymentForm struct {
	CardNumber string `json:"number"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
	CardName   string `json:"name"`
	UPIID      string `json:"upi_id"`
}

// PaymentRequest is produced by a successful checkout validation.
type PaymentRequest struct {
	Amount  decimal.Decimal `json:"amount"`
	Method  PaymentMethod   `json:"method"`
	Items   []CartLine      `json:"items"`
	Address string          `json:"address"`
}

// OrderData is sent to the backing service once payment succeeded.
type OrderData struct {
	VendorName string          `json:"vendor_name"`
	Total      decimal.Decimal `json:"total"`
	Method     PaymentMethod   `json:"method"`
	PaymentID  string          `json:"payment_id"`
	Address    string          `json:"address"`
	Items      []OrderItem     `json:"items"`
}

// Payment records a processed charge in the backing store.
type Payment struct {
	ID        string          `json:"id" gorm:"primaryKey"`
	Method    PaymentMethod   `json:"method" gorm:"not null"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	Address   string          `json:"address"`
	ItemCount int             `json:"item_count"`
	CreatedAt time.Time       `json:"created_at"`
}
