package checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront-api/cart"
	"storefront-api/models"
	"storefront-api/remote"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type fakeCart struct {
	snap    cart.Snapshot
	cleared int
}

func (f *fakeCart) Snapshot() cart.Snapshot { return f.snap }

func (f *fakeCart) Checkout(_ context.Context, fn func(cart.Snapshot) error) error {
	if err := fn(f.snap); err != nil {
		return err
	}
	f.cleared++
	f.snap = cart.Snapshot{}
	return nil
}

func TestPlaceOrder_HappyPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := remote.NewMockDataService(ctrl)
	c := &fakeCart{snap: cartWith("100", 2)}
	svc := NewService(NewValidator(), c, gw, nil)

	gomock.InOrder(
		gw.EXPECT().ProcessPayment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req models.PaymentRequest) (remote.PaymentResponse, error) {
				if !req.Amount.Equal(decimal.NewFromInt(250)) {
					t.Errorf("charged %s, want 250", req.Amount)
				}
				return remote.PaymentResponse{Success: true, PaymentID: "PAY-1"}, nil
			}),
		gw.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, data models.OrderData) (remote.OrderResponse, error) {
				if data.VendorName != DefaultVendorName || data.PaymentID != "PAY-1" {
					t.Errorf("order data = %+v", data)
				}
				return remote.OrderResponse{Success: true, Order: models.Order{
					OrderID: "ORD-1",
					Total:   data.Total,
					Items:   data.Items,
				}}, nil
			}),
	)

	order, err := svc.PlaceOrder(context.Background(), Request{Method: models.MethodWallet, Address: "Home"})
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if order.OrderID != "ORD-1" || order.Status != models.StatusConfirmed {
		t.Errorf("order = %+v", order)
	}
	if c.cleared != 1 {
		t.Errorf("cart cleared %d times, want 1", c.cleared)
	}
}

func TestPlaceOrder_ValidationFailureSubmitsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := remote.NewMockDataService(ctrl)
	c := &fakeCart{snap: cartWith("100", 2)}
	svc := NewService(NewValidator(), c, gw, nil)

	_, err := svc.PlaceOrder(context.Background(), Request{Method: models.MethodCard, Address: "Home"})
	if !errors.Is(err, ErrMissingCardFields) {
		t.Fatalf("err = %v, want ErrMissingCardFields", err)
	}
	if c.cleared != 0 || c.snap.IsEmpty() {
		t.Error("validation failure touched the cart")
	}
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewService(NewValidator(), &fakeCart{}, remote.NewMockDataService(ctrl), nil)

	if _, err := svc.PlaceOrder(context.Background(), Request{Method: models.MethodCOD, Address: "Home"}); !errors.Is(err, ErrEmptyCart) {
		t.Errorf("err = %v, want ErrEmptyCart", err)
	}
}

func TestPlaceOrder_PaymentDeclinedStopsPipeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := remote.NewMockDataService(ctrl)
	c := &fakeCart{snap: cartWith("10", 1)}
	svc := NewService(NewValidator(), c, gw, nil)

	gw.EXPECT().ProcessPayment(gomock.Any(), gomock.Any()).
		Return(remote.PaymentResponse{Success: false, Error: "card declined"}, nil)

	_, err := svc.PlaceOrder(context.Background(), Request{Method: models.MethodCOD, Address: "Home"})
	var f *remote.Failure
	if !errors.As(err, &f) || f.Op != "processPayment" {
		t.Fatalf("err = %v, want processPayment failure", err)
	}
	if c.cleared != 0 {
		t.Error("cart cleared after declined payment")
	}
}

func TestPlaceOrder_OrderFailureKeepsCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := remote.NewMockDataService(ctrl)
	c := &fakeCart{snap: cartWith("10", 1)}
	svc := NewService(NewValidator(), c, gw, nil)

	gw.EXPECT().ProcessPayment(gomock.Any(), gomock.Any()).Return(remote.PaymentResponse{Success: true}, nil)
	gw.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).Return(remote.OrderResponse{}, errors.New("timeout"))

	if _, err := svc.PlaceOrder(context.Background(), Request{Method: models.MethodCOD, Address: "Home"}); !remote.IsFailure(err) {
		t.Fatalf("err = %v, want remote failure", err)
	}
	if c.cleared != 0 {
		t.Error("cart cleared after failed order placement")
	}
}

func TestPlaceOrder_ClearFailureStillReturnsOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	data := remote.NewMockDataService(ctrl)
	ledger := cart.NewLedger()
	ledger.AddItem(models.CartLine{ID: "tea", Name: "Masala Tea", UnitPrice: decimal.NewFromInt(10), Quantity: 1})
	svc := NewService(NewValidator(), cart.NewService(ledger, data, nil), data, nil)

	data.EXPECT().ProcessPayment(gomock.Any(), gomock.Any()).Return(remote.PaymentResponse{Success: true}, nil)
	data.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).
		Return(remote.OrderResponse{Success: true, Order: models.Order{OrderID: "ORD-9"}}, nil)
	data.EXPECT().ClearCart(gomock.Any()).Return(remote.CartResponse{}, errors.New("offline"))

	order, err := svc.PlaceOrder(context.Background(), Request{Method: models.MethodCOD, Address: "Home"})
	if err != nil || order.OrderID != "ORD-9" {
		t.Errorf("order = %+v, err = %v", order, err)
	}
}

func TestPlaceOrder_MissingAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewService(NewValidator(), &fakeCart{snap: cartWith("10", 1)}, remote.NewMockDataService(ctrl), nil)

	if _, err := svc.PlaceOrder(context.Background(), Request{Method: models.MethodCOD, Address: "  "}); !errors.Is(err, ErrMissingAddress) {
		t.Errorf("err = %v, want ErrMissingAddress", err)
	}
}

// An add issued while payment is in flight must land in the cart after
// checkout clears it, never in the void between snapshot and clear.
func TestPlaceOrder_AddDuringPaymentIsKept(t *testing.T) {
	ctrl := gomock.NewController(t)
	data := remote.NewMockDataService(ctrl)
	ledger := cart.NewLedger()
	ledger.AddItem(models.CartLine{ID: "chai", Name: "Masala Chai", UnitPrice: decimal.NewFromInt(40), Quantity: 1})
	cs := cart.NewService(ledger, data, nil)
	svc := NewService(NewValidator(), cs, data, nil)

	samosa := models.CartLine{ID: "samosa", Name: "Samosa", UnitPrice: decimal.NewFromInt(25), Quantity: 1}
	added := make(chan error, 1)
	blocked := false

	gomock.InOrder(
		data.EXPECT().ProcessPayment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, models.PaymentRequest) (remote.PaymentResponse, error) {
				go func() {
					_, err := cs.Add(context.Background(), samosa)
					added <- err
				}()
				select {
				case <-added:
				case <-time.After(50 * time.Millisecond):
					blocked = true
				}
				return remote.PaymentResponse{Success: true, PaymentID: "PAY-1"}, nil
			}),
		data.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d models.OrderData) (remote.OrderResponse, error) {
				return remote.OrderResponse{Success: true, Order: models.Order{OrderID: "ORD-1", Items: d.Items}}, nil
			}),
		data.EXPECT().ClearCart(gomock.Any()).Return(remote.CartResponse{Success: true}, nil),
		data.EXPECT().AddToCart(gomock.Any(), samosa).
			Return(remote.CartResponse{Success: true, Cart: []models.CartLine{samosa}}, nil),
	)

	order, err := svc.PlaceOrder(context.Background(), Request{Method: models.MethodCOD, Address: "Home"})
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if !blocked {
		t.Fatal("add completed while checkout held the cart")
	}
	if err := <-added; err != nil {
		t.Fatalf("Add: %v", err)
	}
	if len(order.Items) != 1 || order.Items[0].ItemID != "chai" {
		t.Errorf("order items = %+v, want chai only", order.Items)
	}
	snap := cs.Snapshot()
	if len(snap.Lines) != 1 || snap.Lines[0].ID != "samosa" {
		t.Errorf("cart after checkout = %+v, want samosa", snap.Lines)
	}
}
