package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeliveryStatus represents the fixed, forward-only fulfilment sequence of an order
type DeliveryStatus string

const (
	StatusConfirmed DeliveryStatus = "confirmed"
	StatusPreparing DeliveryStatus = "preparing"
	StatusReady     DeliveryStatus = "ready"
	StatusPickedUp  DeliveryStatus = "picked_up"
	StatusDelivered DeliveryStatus = "delivered"
)

type Order struct {
	OrderID         string               `json:"order_id" gorm:"primaryKey"`
	VendorName      string               `json:"vendor_name"`
	Status          DeliveryStatus       `json:"status" gorm:"not null;default:'confirmed'"`
	Total           decimal.Decimal      `json:"total" gorm:"type:decimal(12,2);not null"`
	PaymentMethod   PaymentMethod        `json:"payment_method"`
	PaymentID       string               `json:"payment_id"`
	DeliveryAddress string               `json:"delivery_address"`
	EstimatedTime   int                  `json:"estimated_time_minutes"`
	Items           []OrderItem          `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	StatusHistory   []OrderStatusHistory `json:"status_history,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

// OrderItem is the snapshot of a cart line at placement time
type OrderItem struct {
	ID       uint            `json:"-" gorm:"primaryKey"`
	OrderID  string          `json:"-" gorm:"not null;index"`
	ItemID   string          `json:"item_id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"`
	Quantity int             `json:"quantity" gorm:"not null"`
}

// OrderStatusHistory is the audit trail of every delivery status change
type OrderStatusHistory struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	OrderID    string         `json:"order_id" gorm:"not null;index"`
	FromStatus DeliveryStatus `json:"from_status"`
	ToStatus   DeliveryStatus `json:"to_status" gorm:"not null"`
	Note       string         `json:"note"`
	CreatedAt  time.Time      `json:"created_at"`
}

// SnapshotItems copies cart lines into order items so later cart
// mutations never reach a placed order.
func SnapshotItems(lines []CartLine) []OrderItem {
	items := make([]OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, OrderItem{
			ItemID:   l.ID,
			Name:     l.Name,
			Price:    l.UnitPrice,
			Quantity: l.Quantity,
		})
	}
	return items
}
