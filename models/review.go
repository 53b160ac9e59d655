package models

import "time"

// Review is a customer's rating of a vendor.
type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	VendorID  string    `json:"vendor_id" gorm:"not null;index" validate:"required"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating" gorm:"not null" validate:"min=1,max=5"`
	Comment   string    `json:"comment" gorm:"not null" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
}

// Address is a saved delivery address offered at checkout.
type Address struct {
	ID        string `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"not null"`
	Address   string `json:"address" gorm:"not null"`
	IsDefault bool   `json:"is_default"`
}
