package store

import (
	"storefront-api/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var demoCategories = []models.Category{
	{ID: "tea", Name: "Tea", Icon: "🍵"},
	{ID: "coffee", Name: "Coffee", Icon: "☕"},
	{ID: "snacks", Name: "Snacks", Icon: "🍪"},
	{ID: "combos", Name: "Combos", Icon: "🍽️"},
	{ID: "desserts", Name: "Desserts", Icon: "🍰"},
}

var demoVendors = []models.Vendor{
	{ID: "v-green-tea", Name: "Green Tea House", Cuisine: "Tea, Snacks", Address: "MG Road", Description: "Loose-leaf teas and evening snacks", IsOpen: true, Rating: 4.6, DeliveryTime: "20-25 min"},
	{ID: "v-brew-lab", Name: "Brew Lab", Cuisine: "Coffee, Desserts", Address: "Church Street", Description: "Single-origin coffee and bakes", IsOpen: true, Rating: 4.2, DeliveryTime: "25-30 min"},
	{ID: "v-chaat-corner", Name: "Chaat Corner", Cuisine: "Street Food", Address: "Market Lane", Description: "Samosas, chaat and combo meals", IsOpen: true, Rating: 3.9, DeliveryTime: "30-35 min"},
}

func item(id, vendor, name, category, price string, veg bool) models.MenuItem {
	return models.MenuItem{
		ID:          id,
		VendorID:    vendor,
		Name:        name,
		Price:       decimal.RequireFromString(price),
		Category:    category,
		IsVeg:       veg,
		IsAvailable: true,
	}
}

var demoItems = []models.MenuItem{
	item("i-masala-chai", "v-green-tea", "Masala Chai", "tea", "40", true),
	item("i-matcha", "v-green-tea", "Ceremonial Matcha", "tea", "180", true),
	item("i-tea-platter", "v-green-tea", "High Tea Platter", "combos", "450", true),
	item("i-cold-brew", "v-brew-lab", "Cold Brew", "coffee", "220", true),
	item("i-cappuccino", "v-brew-lab", "Cappuccino", "coffee", "150", true),
	item("i-brownie", "v-brew-lab", "Walnut Brownie", "desserts", "120", true),
	item("i-samosa", "v-chaat-corner", "Samosa", "snacks", "25", true),
	item("i-chicken-roll", "v-chaat-corner", "Chicken Roll", "snacks", "90", false),
	item("i-thali", "v-chaat-corner", "Mini Thali Combo", "combos", "320", false),
}

var demoAddresses = []models.Address{
	{ID: "addr-home", Name: "Home", Address: "12 MG Road, Bengaluru", IsDefault: true},
	{ID: "addr-work", Name: "Work", Address: "4th Floor, Tech Park, Whitefield"},
}

var demoReviews = []models.Review{
	{VendorID: "v-green-tea", UserName: "Priya", Rating: 5, Comment: "Best masala chai in town"},
	{VendorID: "v-green-tea", UserName: "Arjun", Rating: 4, Comment: "Matcha was good, delivery a bit slow"},
}

// Seed loads the demo catalogue when the vendors table is empty.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Vendor{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&demoCategories).Error; err != nil {
			return err
		}
		if err := tx.Create(&demoVendors).Error; err != nil {
			return err
		}
		if err := tx.Create(&demoItems).Error; err != nil {
			return err
		}
		if err := tx.Create(&demoAddresses).Error; err != nil {
			return err
		}
		reviews := make([]models.Review, len(demoReviews))
		copy(reviews, demoReviews)
		return tx.Create(&reviews).Error
	})
}
