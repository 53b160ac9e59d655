package cart

import (
	"context"
	"errors"
	"sync"
	"testing"

	"storefront-api/models"
	"storefront-api/remote"

	"go.uber.org/mock/gomock"
)

func TestService_AddAdoptsBackendCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := remote.NewMockDataService(ctrl)
	svc := NewService(NewLedger(), backend, nil)

	backend.EXPECT().AddToCart(gomock.Any(), line("tea", "30", 1)).
		Return(remote.CartResponse{Success: true, Cart: []models.CartLine{line("tea", "30", 1)}}, nil)

	snap, err := svc.Add(context.Background(), line("tea", "30", 0))
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if snap.Totals.ItemCount != 1 {
		t.Errorf("item count = %d, want 1", snap.Totals.ItemCount)
	}
}

func TestService_InvalidItemNeverReachesBackend(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := remote.NewMockDataService(ctrl)
	svc := NewService(NewLedger(), backend, nil)

	if _, err := svc.Add(context.Background(), line("x", "-5", 1)); !errors.Is(err, ErrInvalidItem) {
		t.Errorf("err = %v, want ErrInvalidItem", err)
	}
	if _, err := svc.SetQuantity(context.Background(), "x", 2); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("err = %v, want ErrItemNotFound", err)
	}
	if _, err := svc.SetQuantity(context.Background(), "x", -1); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("err = %v, want ErrInvalidQuantity", err)
	}
	if _, err := svc.Remove(context.Background(), "x"); err != nil {
		t.Errorf("remove absent: %v", err)
	}
}

func TestService_RemoteFailureKeepsLedger(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := remote.NewMockDataService(ctrl)
	ledger := NewLedger()
	ledger.AddItem(line("a", "10", 2))
	svc := NewService(ledger, backend, nil)

	backend.EXPECT().UpdateCartItem(gomock.Any(), "a", 5).
		Return(remote.CartResponse{Success: false, Error: "out of stock"}, nil)
	backend.EXPECT().ClearCart(gomock.Any()).
		Return(remote.CartResponse{}, errors.New("connection refused"))

	_, err := svc.SetQuantity(context.Background(), "a", 5)
	var f *remote.Failure
	if !errors.As(err, &f) || f.Message != "out of stock" {
		t.Fatalf("err = %v, want remote failure", err)
	}
	if _, err := svc.Clear(context.Background()); !remote.IsFailure(err) {
		t.Fatalf("clear err = %v, want remote failure", err)
	}

	snap := svc.Snapshot()
	if len(snap.Lines) != 1 || snap.Lines[0].Quantity != 2 {
		t.Errorf("ledger changed after failures: %+v", snap.Lines)
	}
}

func TestService_SetQuantityZeroRemoves(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := remote.NewMockDataService(ctrl)
	ledger := NewLedger()
	ledger.AddItem(line("a", "10", 2))
	svc := NewService(ledger, backend, nil)

	backend.EXPECT().RemoveFromCart(gomock.Any(), "a").
		Return(remote.CartResponse{Success: true}, nil)

	snap, err := svc.SetQuantity(context.Background(), "a", 0)
	if err != nil {
		t.Fatalf("SetQuantity: %v", err)
	}
	if !snap.IsEmpty() {
		t.Errorf("lines = %+v, want empty", snap.Lines)
	}
}

func TestService_LoadRejectsInvalidBackendCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := remote.NewMockDataService(ctrl)
	svc := NewService(NewLedger(), backend, nil)

	backend.EXPECT().GetCart(gomock.Any()).
		Return(remote.CartResponse{Success: true, Cart: []models.CartLine{line("a", "-3", 1)}}, nil)

	_, err := svc.Load(context.Background())
	if !remote.IsFailure(err) || !errors.Is(err, ErrInvalidItem) {
		t.Errorf("err = %v, want remote failure wrapping ErrInvalidItem", err)
	}
}

// The backend below increments its own counter for every add; if the
// service interleaved round trips the final ledger would lag behind it.
func TestService_ConcurrentAddsApplyInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := remote.NewMockDataService(ctrl)
	svc := NewService(NewLedger(), backend, nil)

	var mu sync.Mutex
	qty := 0
	backend.EXPECT().AddToCart(gomock.Any(), gomock.Any()).AnyTimes().
		DoAndReturn(func(_ context.Context, l models.CartLine) (remote.CartResponse, error) {
			mu.Lock()
			qty += l.Quantity
			cur := qty
			mu.Unlock()
			return remote.CartResponse{Success: true, Cart: []models.CartLine{line("a", "1", cur)}}, nil
		})

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.Add(context.Background(), line("a", "1", 1))
		}()
	}
	wg.Wait()

	if got := svc.Snapshot().Totals.ItemCount; got != n {
		t.Errorf("item count = %d, want %d", got, n)
	}
}

func TestService_CheckoutClearsOnlyAfterSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := remote.NewMockDataService(ctrl)
	ledger := NewLedger()
	ledger.AddItem(line("a", "10", 2))
	svc := NewService(ledger, backend, nil)

	declined := errors.New("declined")
	err := svc.Checkout(context.Background(), func(s Snapshot) error {
		if len(s.Lines) != 1 {
			t.Errorf("checkout saw %+v", s.Lines)
		}
		return declined
	})
	if !errors.Is(err, declined) {
		t.Fatalf("err = %v, want declined", err)
	}
	if svc.Snapshot().IsEmpty() {
		t.Fatal("failed checkout cleared the cart")
	}

	backend.EXPECT().ClearCart(gomock.Any()).Return(remote.CartResponse{Success: true}, nil)
	if err := svc.Checkout(context.Background(), func(Snapshot) error { return nil }); err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if !svc.Snapshot().IsEmpty() {
		t.Error("cart not cleared after checkout")
	}
}
