// Package store is the mock backing data service: it implements the remote
// contract on gorm so the storefront pipeline can run end to end.
package store

import (
	"context"
	"errors"
	"strings"

	"storefront-api/models"
	"storefront-api/remote"
	"storefront-api/tracking"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

var (
	_ remote.DataService  = (*Store)(nil)
	_ tracking.OrderStore = (*Store)(nil)
)

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// ── Cart ─────────────────────────────────────────────────────────────────────

func (s *Store) GetCart(ctx context.Context) (remote.CartResponse, error) {
	return s.cart(s.db.WithContext(ctx))
}

// AddToCart prices the line from the catalogue; the caller's name and
// price are ignored.
func (s *Store) AddToCart(ctx context.Context, line models.CartLine) (remote.CartResponse, error) {
	qty := line.Quantity
	if qty <= 0 {
		qty = 1
	}
	db := s.db.WithContext(ctx)

	var item models.MenuItem
	res := db.Limit(1).Find(&item, "id = ?", line.ID)
	switch {
	case res.Error != nil:
		return remote.CartResponse{}, res.Error
	case res.RowsAffected == 0:
		return remote.CartResponse{Error: "Menu item '" + line.ID + "' not found"}, nil
	case !item.IsAvailable:
		return remote.CartResponse{Error: "Menu item '" + item.Name + "' is not available"}, nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var entry models.CartEntry
		res := tx.Limit(1).Find(&entry, "item_id = ?", item.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return tx.Create(&models.CartEntry{
				ItemID:    item.ID,
				Name:      item.Name,
				UnitPrice: item.Price,
				Quantity:  qty,
			}).Error
		}
		return tx.Model(&entry).Updates(map[string]any{
			"quantity":   entry.Quantity + qty,
			"name":       item.Name,
			"unit_price": item.Price,
		}).Error
	})
	if err != nil {
		return remote.CartResponse{}, err
	}
	return s.cart(db)
}

func (s *Store) UpdateCartItem(ctx context.Context, id string, qty int) (remote.CartResponse, error) {
	db := s.db.WithContext(ctx)
	if qty <= 0 {
		if err := db.Delete(&models.CartEntry{}, "item_id = ?", id).Error; err != nil {
			return remote.CartResponse{}, err
		}
		return s.cart(db)
	}
	res := db.Model(&models.CartEntry{}).Where("item_id = ?", id).Update("quantity", qty)
	if res.Error != nil {
		return remote.CartResponse{}, res.Error
	}
	if res.RowsAffected == 0 {
		return remote.CartResponse{Error: "Item not in cart"}, nil
	}
	return s.cart(db)
}

func (s *Store) RemoveFromCart(ctx context.Context, id string) (remote.CartResponse, error) {
	db := s.db.WithContext(ctx)
	if err := db.Delete(&models.CartEntry{}, "item_id = ?", id).Error; err != nil {
		return remote.CartResponse{}, err
	}
	return s.cart(db)
}

func (s *Store) ClearCart(ctx context.Context) (remote.CartResponse, error) {
	db := s.db.WithContext(ctx)
	if err := db.Where("1 = 1").Delete(&models.CartEntry{}).Error; err != nil {
		return remote.CartResponse{}, err
	}
	return remote.CartResponse{Success: true, Cart: []models.CartLine{}}, nil
}

func (s *Store) cart(db *gorm.DB) (remote.CartResponse, error) {
	var entries []models.CartEntry
	if err := db.Order("created_at asc, item_id asc").Find(&entries).Error; err != nil {
		return remote.CartResponse{}, err
	}
	lines := make([]models.CartLine, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.Line())
	}
	return remote.CartResponse{Success: true, Cart: lines}, nil
}

// ── Catalogue ────────────────────────────────────────────────────────────────

func (s *Store) ListVendors(ctx context.Context) (remote.VendorsResponse, error) {
	var vendors []models.Vendor
	if err := s.db.WithContext(ctx).Order("rating desc, name asc").Find(&vendors).Error; err != nil {
		return remote.VendorsResponse{}, err
	}
	return remote.VendorsResponse{Success: true, Vendors: vendors}, nil
}

func (s *Store) GetVendor(ctx context.Context, id string) (remote.VendorResponse, error) {
	var vendor models.Vendor
	err := s.db.WithContext(ctx).Preload("MenuItems").First(&vendor, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return remote.VendorResponse{Error: "Vendor not found"}, nil
	}
	if err != nil {
		return remote.VendorResponse{}, err
	}
	return remote.VendorResponse{Success: true, Vendor: vendor}, nil
}

func (s *Store) ListCategories(ctx context.Context) (remote.CategoriesResponse, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return remote.CategoriesResponse{}, err
	}
	return remote.CategoriesResponse{Success: true, Categories: categories}, nil
}

// Search matches vendors and menu items against a composed query. Vendors
// match through their own fields or through any of their items.
func (s *Store) Search(ctx context.Context, q models.SearchQuery) (remote.SearchResponse, error) {
	db := s.db.WithContext(ctx)

	items := db.Model(&models.MenuItem{}).Where("is_available = ?", true)
	if q.Text != "" {
		like := "%" + q.Text + "%"
		items = items.Where("(name LIKE ? OR description LIKE ?)", like, like)
	}
	items = itemFacets(db, items, q)

	var found []models.MenuItem
	if err := items.Order("name asc").Find(&found).Error; err != nil {
		return remote.SearchResponse{}, err
	}

	vendors := db.Model(&models.Vendor{})
	if q.Text != "" {
		like := "%" + q.Text + "%"
		byItem := db.Model(&models.MenuItem{}).Select("vendor_id").
			Where("is_available = ? AND (name LIKE ? OR description LIKE ?)", true, like, like)
		vendors = vendors.Where("(name LIKE ? OR cuisine LIKE ? OR description LIKE ? OR id IN (?))", like, like, like, byItem)
	}
	if q.Rating > 0 {
		vendors = vendors.Where("rating >= ?", float64(q.Rating))
	}
	if q.Category != "" || q.VegOnly || q.PriceRange != "" {
		sub := itemFacets(db, db.Model(&models.MenuItem{}).Select("vendor_id"), models.SearchQuery{
			Category:   q.Category,
			VegOnly:    q.VegOnly,
			PriceRange: q.PriceRange,
		})
		vendors = vendors.Where("id IN (?)", sub)
	}

	var matched []models.Vendor
	if err := vendors.Order("rating desc, name asc").Find(&matched).Error; err != nil {
		return remote.SearchResponse{}, err
	}
	return remote.SearchResponse{Success: true, Results: models.SearchResults{Vendors: matched, Items: found}}, nil
}

func itemFacets(db, items *gorm.DB, q models.SearchQuery) *gorm.DB {
	if q.Category != "" {
		items = items.Where("category = ?", q.Category)
	}
	if q.VegOnly {
		items = items.Where("is_veg = ?", true)
	}
	switch q.PriceRange {
	case models.PriceUnder100:
		items = items.Where("price < ?", 100)
	case models.Price100To300:
		items = items.Where("price >= ? AND price <= ?", 100, 300)
	case models.PriceOver300:
		items = items.Where("price > ?", 300)
	}
	if q.Rating > 0 {
		items = items.Where("vendor_id IN (?)",
			db.Model(&models.Vendor{}).Select("id").Where("rating >= ?", float64(q.Rating)))
	}
	return items
}

// ── Payments & orders ────────────────────────────────────────────────────────

func (s *Store) ProcessPayment(ctx context.Context, req models.PaymentRequest) (remote.PaymentResponse, error) {
	if !req.Amount.IsPositive() {
		return remote.PaymentResponse{Error: "Payment amount must be positive"}, nil
	}
	count := 0
	for _, l := range req.Items {
		count += l.Quantity
	}
	payment := models.Payment{
		ID:        "PAY-" + shortID(),
		Method:    req.Method,
		Amount:    req.Amount,
		Address:   req.Address,
		ItemCount: count,
	}
	if err := s.db.WithContext(ctx).Create(&payment).Error; err != nil {
		return remote.PaymentResponse{}, err
	}
	return remote.PaymentResponse{Success: true, PaymentID: payment.ID}, nil
}

func (s *Store) PlaceOrder(ctx context.Context, data models.OrderData) (remote.OrderResponse, error) {
	if len(data.Items) == 0 {
		return remote.OrderResponse{Error: "Order has no items"}, nil
	}
	items := make([]models.OrderItem, len(data.Items))
	copy(items, data.Items)
	for i := range items {
		items[i].ID = 0
	}

	order := models.Order{
		OrderID:         "ORD-" + shortID(),
		VendorName:      data.VendorName,
		Status:          models.StatusConfirmed,
		Total:           data.Total,
		PaymentMethod:   data.Method,
		PaymentID:       data.PaymentID,
		DeliveryAddress: data.Address,
		// base 30 min + 5 per line
		EstimatedTime: 30 + 5*len(items),
		Items:         items,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		return tx.Create(&models.OrderStatusHistory{
			OrderID:  order.OrderID,
			ToStatus: models.StatusConfirmed,
			Note:     "Order placed",
		}).Error
	})
	if err != nil {
		return remote.OrderResponse{}, err
	}
	return remote.OrderResponse{Success: true, Order: order}, nil
}

func (s *Store) GetOrder(ctx context.Context, orderID string) (remote.OrderResponse, error) {
	var order models.Order
	err := s.db.WithContext(ctx).
		Preload("Items").
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		First(&order, "order_id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return remote.OrderResponse{Error: "Order not found"}, nil
	}
	if err != nil {
		return remote.OrderResponse{}, err
	}
	return remote.OrderResponse{Success: true, Order: order}, nil
}

// ListOrders returns every placed order, newest first.
func (s *Store) ListOrders(ctx context.Context) (remote.OrdersResponse, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).Preload("Items").Order("created_at desc, order_id desc").Find(&orders).Error
	if err != nil {
		return remote.OrdersResponse{}, err
	}
	return remote.OrdersResponse{Success: true, Orders: orders}, nil
}

// ── Addresses & reviews ──────────────────────────────────────────────────────

func (s *Store) ListAddresses(ctx context.Context) (remote.AddressesResponse, error) {
	var addresses []models.Address
	if err := s.db.WithContext(ctx).Order("is_default desc, name asc").Find(&addresses).Error; err != nil {
		return remote.AddressesResponse{}, err
	}
	return remote.AddressesResponse{Success: true, Addresses: addresses}, nil
}

func (s *Store) GetVendorReviews(ctx context.Context, vendorID string) (remote.ReviewsResponse, error) {
	db := s.db.WithContext(ctx)
	if ok, err := s.vendorExists(db, vendorID); err != nil || !ok {
		return remote.ReviewsResponse{Error: "Vendor not found"}, err
	}
	var reviews []models.Review
	if err := db.Where("vendor_id = ?", vendorID).Order("id desc").Find(&reviews).Error; err != nil {
		return remote.ReviewsResponse{}, err
	}
	return remote.ReviewsResponse{Success: true, Reviews: reviews}, nil
}

func (s *Store) SubmitReview(ctx context.Context, review models.Review) (remote.ReviewResponse, error) {
	db := s.db.WithContext(ctx)
	if ok, err := s.vendorExists(db, review.VendorID); err != nil || !ok {
		return remote.ReviewResponse{Error: "Vendor not found"}, err
	}
	review.ID = 0
	if err := db.Create(&review).Error; err != nil {
		return remote.ReviewResponse{}, err
	}
	return remote.ReviewResponse{Success: true, Review: review}, nil
}

func (s *Store) vendorExists(db *gorm.DB, id string) (bool, error) {
	var count int64
	if err := db.Model(&models.Vendor{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// OrderStatus implements tracking.OrderStore.
func (s *Store) OrderStatus(ctx context.Context, orderID string) (models.DeliveryStatus, error) {
	var order models.Order
	err := s.db.WithContext(ctx).Select("order_id", "status").First(&order, "order_id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", tracking.ErrOrderNotFound
	}
	if err != nil {
		return "", err
	}
	return order.Status, nil
}

// RecordStatus implements tracking.OrderStore. The update is conditional on
// the previous status so a concurrent writer cannot be overwritten.
func (s *Store) RecordStatus(ctx context.Context, orderID string, from, to models.DeliveryStatus, note string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Order{}).
			Where("order_id = ? AND status = ?", orderID, from).
			Update("status", to)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return tracking.ErrOrderNotFound
		}
		return tx.Create(&models.OrderStatusHistory{
			OrderID:    orderID,
			FromStatus: from,
			ToStatus:   to,
			Note:       note,
		}).Error
	})
}

func shortID() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
}
