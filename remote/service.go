// Package remote describes the backing data service the storefront talks
// to. The service owns durable storage; every response carries a success
// flag that callers must branch on.
package remote

//go:generate mockgen -destination=mock_service.go -package=remote storefront-api/remote DataService

import (
	"context"
	"errors"
	"fmt"

	"storefront-api/models"
)

type DataService interface {
	GetCart(ctx context.Context) (CartResponse, error)
	AddToCart(ctx context.Context, line models.CartLine) (CartResponse, error)
	UpdateCartItem(ctx context.Context, id string, qty int) (CartResponse, error)
	RemoveFromCart(ctx context.Context, id string) (CartResponse, error)
	ClearCart(ctx context.Context) (CartResponse, error)

	Search(ctx context.Context, q models.SearchQuery) (SearchResponse, error)
	ListVendors(ctx context.Context) (VendorsResponse, error)
	GetVendor(ctx context.Context, id string) (VendorResponse, error)
	ListCategories(ctx context.Context) (CategoriesResponse, error)

	ProcessPayment(ctx context.Context, req models.PaymentRequest) (PaymentResponse, error)
	PlaceOrder(ctx context.Context, data models.OrderData) (OrderResponse, error)
	GetOrder(ctx context.Context, orderID string) (OrderResponse, error)
	ListOrders(ctx context.Context) (OrdersResponse, error)

	ListAddresses(ctx context.Context) (AddressesResponse, error)
	GetVendorReviews(ctx context.Context, vendorID string) (ReviewsResponse, error)
	SubmitReview(ctx context.Context, review models.Review) (ReviewResponse, error)
}

type CartResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error,omitempty"`
	Cart    []models.CartLine `json:"cart"`
}

type SearchResponse struct {
	Success bool                 `json:"success"`
	Error   string               `json:"error,omitempty"`
	Results models.SearchResults `json:"results"`
}

type VendorsResponse struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Vendors []models.Vendor `json:"vendors"`
}

type VendorResponse struct {
	Success bool          `json:"success"`
	Error   string        `json:"error,omitempty"`
	Vendor  models.Vendor `json:"vendor"`
}

type CategoriesResponse struct {
	Success    bool              `json:"success"`
	Error      string            `json:"error,omitempty"`
	Categories []models.Category `json:"categories"`
}

type PaymentResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
	PaymentID string `json:"payment_id,omitempty"`
}

type OrderResponse struct {
	Success bool         `json:"success"`
	Error   string       `json:"error,omitempty"`
	Order   models.Order `json:"order"`
}

type OrdersResponse struct {
	Success bool           `json:"success"`
	Error   string         `json:"error,omitempty"`
	Orders  []models.Order `json:"orders"`
}

type AddressesResponse struct {
	Success   bool             `json:"success"`
	Error     string           `json:"error,omitempty"`
	Addresses []models.Address `json:"addresses"`
}

type ReviewsResponse struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Reviews []models.Review `json:"reviews"`
}

type ReviewResponse struct {
	Success bool          `json:"success"`
	Error   string        `json:"error,omitempty"`
	Review  models.Review `json:"review"`
}

// Failure wraps any unsuccessful call to the data service: either a
// transport error or a response whose success flag is false.
type Failure struct {
	Op      string
	Message string
	Err     error
}

func (f *Failure) Error() string {
	switch {
	case f.Err != nil && f.Message != "":
		return fmt.Sprintf("remote %s failed: %s: %v", f.Op, f.Message, f.Err)
	case f.Err != nil:
		return fmt.Sprintf("remote %s failed: %v", f.Op, f.Err)
	case f.Message != "":
		return fmt.Sprintf("remote %s failed: %s", f.Op, f.Message)
	}
	return fmt.Sprintf("remote %s failed", f.Op)
}

func (f *Failure) Unwrap() error { return f.Err }

// Check folds a call result into a single error. A nil return means the
// call completed and reported success.
func Check(op string, success bool, message string, err error) error {
	if err != nil {
		return &Failure{Op: op, Err: err}
	}
	if !success {
		return &Failure{Op: op, Message: message}
	}
	return nil
}

// IsFailure reports whether err carries a *Failure.
func IsFailure(err error) bool {
	var f *Failure
	return errors.As(err, &f)
}
