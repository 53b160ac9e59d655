package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Vendor struct {
	ID           string     `json:"id" gorm:"primaryKey"`
	Name         string     `json:"name" gorm:"not null"`
	Cuisine      string     `json:"cuisine"`
	Address      string     `json:"address"`
	Description  string     `json:"description"`
	IsOpen       bool       `json:"is_open" gorm:"default:true"`
	Rating       float64    `json:"rating" gorm:"default:0"`
	DeliveryTime string     `json:"delivery_time"`
	MenuItems    []MenuItem `json:"menu_items,omitempty" gorm:"foreignKey:VendorID"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type MenuItem struct {
	ID          string          `json:"id" gorm:"primaryKey"`
	VendorID    string          `json:"vendor_id" gorm:"not null;index"`
	Name        string          `json:"name" gorm:"not null"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"`
	Category    string          `json:"category" gorm:"index"`
	IsAvailable bool            `json:"is_available"`
	IsVeg       bool            `json:"is_veg" gorm:"default:false"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Category is a browsing bucket shown on the home and search screens.
type Category struct {
	ID   string `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null"`
	Icon string `json:"icon"`
}

// AsCartLine converts a menu item into a single-unit cart line.
func (m MenuItem) AsCartLine() CartLine {
	return CartLine{ID: m.ID, Name: m.Name, UnitPrice: m.Price, Quantity: 1}
}
