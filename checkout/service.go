package checkout

import (
	"context"

	"storefront-api/cart"
	"storefront-api/models"
	"storefront-api/remote"

	"go.uber.org/zap"
)

// DefaultVendorName is used when the checkout request names no vendor.
const DefaultVendorName = "Green Tea House"

// Gateway is the payment and order side of the data service.
type Gateway interface {
	ProcessPayment(ctx context.Context, req models.PaymentRequest) (remote.PaymentResponse, error)
	PlaceOrder(ctx context.Context, data models.OrderData) (remote.OrderResponse, error)
}

// Cart is what checkout needs from the cart service. Checkout holds the
// cart still while fn runs and clears it after fn succeeds.
type Cart interface {
	Snapshot() cart.Snapshot
	Checkout(ctx context.Context, fn func(cart.Snapshot) error) error
}

type Request struct {
	Method     models.PaymentMethod `json:"method" binding:"required"`
	Form       models.PaymentForm   `json:"form"`
	Address    string               `json:"address" binding:"required_without=AddressID"`
	AddressID  string               `json:"address_id"`
	VendorName string               `json:"vendor_name"`
}

type Service struct {
	validator *Validator
	cart      Cart
	gateway   Gateway
	log       *zap.Logger
}

func NewService(v *Validator, c Cart, gw Gateway, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{validator: v, cart: c, gateway: gw, log: log}
}

// Validate runs the checkout validation against the current cart without
// submitting anything.
func (s *Service) Validate(req Request) (models.PaymentRequest, error) {
	return s.validate(req, s.cart.Snapshot())
}

func (s *Service) validate(req Request, snap cart.Snapshot) (models.PaymentRequest, error) {
	if snap.IsEmpty() {
		return models.PaymentRequest{}, ErrEmptyCart
	}
	return s.validator.Validate(req.Method, req.Form, snap, req.Address)
}

// PlaceOrder validates the form, charges the grand total and places the
// order with an item snapshot. The cart is held for the whole pipeline and
// cleared only after the order exists. Nothing is retried.
func (s *Service) PlaceOrder(ctx context.Context, req Request) (models.Order, error) {
	var order models.Order
	err := s.cart.Checkout(ctx, func(snap cart.Snapshot) error {
		placed, err := s.submit(ctx, req, snap)
		order = placed
		return err
	})
	if err != nil {
		return models.Order{}, err
	}
	s.log.Info("order placed",
		zap.String("order_id", order.OrderID),
		zap.String("method", string(order.PaymentMethod)),
		zap.String("total", order.Total.StringFixed(2)),
	)
	return order, nil
}

func (s *Service) submit(ctx context.Context, req Request, snap cart.Snapshot) (models.Order, error) {
	payReq, err := s.validate(req, snap)
	if err != nil {
		return models.Order{}, err
	}

	pay, err := s.gateway.ProcessPayment(ctx, payReq)
	if err := remote.Check("processPayment", pay.Success, pay.Error, err); err != nil {
		s.log.Warn("payment failed",
			zap.String("method", string(payReq.Method)),
			zap.String("amount", payReq.Amount.StringFixed(2)),
			zap.Error(err),
		)
		return models.Order{}, err
	}

	vendor := req.VendorName
	if vendor == "" {
		vendor = DefaultVendorName
	}
	data := models.OrderData{
		VendorName: vendor,
		Total:      payReq.Amount,
		Method:     payReq.Method,
		PaymentID:  pay.PaymentID,
		Address:    payReq.Address,
		Items:      models.SnapshotItems(payReq.Items),
	}
	placed, err := s.gateway.PlaceOrder(ctx, data)
	if err := remote.Check("placeOrder", placed.Success, placed.Error, err); err != nil {
		s.log.Error("order placement failed after payment",
			zap.String("payment_id", pay.PaymentID),
			zap.Error(err),
		)
		return models.Order{}, err
	}

	order := placed.Order
	if order.Status == "" {
		order.Status = models.StatusConfirmed
	}
	if order.PaymentMethod == "" {
		order.PaymentMethod = payReq.Method
	}
	return order, nil
}
