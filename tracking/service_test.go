package tracking

import (
	"context"
	"errors"
	"sync"
	"testing"

	"storefront-api/models"
	"storefront-api/statemachine"
)

type memStore struct {
	mu      sync.Mutex
	status  map[string]models.DeliveryStatus
	history []models.OrderStatusHistory
}

func newMemStore(orders ...string) *memStore {
	s := &memStore{status: map[string]models.DeliveryStatus{}}
	for _, id := range orders {
		s.status[id] = models.StatusConfirmed
	}
	return s
}

func (s *memStore) OrderStatus(_ context.Context, id string) (models.DeliveryStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.status[id]
	if !ok {
		return "", ErrOrderNotFound
	}
	return st, nil
}

func (s *memStore) RecordStatus(_ context.Context, id string, from, to models.DeliveryStatus, note string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status[id] = to
	s.history = append(s.history, models.OrderStatusHistory{OrderID: id, FromStatus: from, ToStatus: to, Note: note})
	return nil
}

func TestAdvance_PersistsEachStep(t *testing.T) {
	store := newMemStore("ORD-1")
	svc := NewService(store, nil)
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		if _, err := svc.Advance(ctx, "ORD-1"); err != nil {
			t.Fatalf("Advance %d: %v", i, err)
		}
	}
	view, _ := svc.Track(ctx, "ORD-1")
	if view.Status != models.StatusDelivered || !view.Terminal || view.Progress != 1 {
		t.Errorf("view = %+v", view)
	}
	if len(store.history) != 4 {
		t.Errorf("history rows = %d, want 4", len(store.history))
	}
}

func TestApplyUpdate_RejectsRegression(t *testing.T) {
	store := newMemStore("ORD-1")
	svc := NewService(store, nil)
	ctx := context.Background()

	if _, err := svc.ApplyUpdate(ctx, "ORD-1", "preparing", "kitchen"); err != nil {
		t.Fatalf("ApplyUpdate: %v", err)
	}
	if _, err := svc.ApplyUpdate(ctx, "ORD-1", "confirmed", ""); !errors.Is(err, statemachine.ErrInvalidTransition) {
		t.Errorf("err = %v, want ErrInvalidTransition", err)
	}
	if _, err := svc.ApplyUpdate(ctx, "ORD-1", "delivered", ""); !errors.Is(err, statemachine.ErrInvalidTransition) {
		t.Errorf("skip err = %v, want ErrInvalidTransition", err)
	}
	if _, err := svc.ApplyUpdate(ctx, "ORD-1", "preparing", "dup"); err != nil {
		t.Errorf("duplicate update err = %v", err)
	}
	if st := store.status["ORD-1"]; st != models.StatusPreparing {
		t.Errorf("status = %s, want preparing", st)
	}
	if len(store.history) != 1 {
		t.Errorf("history rows = %d, want 1", len(store.history))
	}
}

func TestUnknownOrder(t *testing.T) {
	svc := NewService(newMemStore(), nil)
	if _, err := svc.Track(context.Background(), "nope"); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("err = %v, want ErrOrderNotFound", err)
	}
}

func TestConcurrentAdvancesDoNotSkip(t *testing.T) {
	store := newMemStore("ORD-1")
	svc := NewService(store, nil)

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.Advance(context.Background(), "ORD-1")
		}()
	}
	wg.Wait()

	if st := store.status["ORD-1"]; st != models.StatusPickedUp {
		t.Errorf("status = %s, want picked_up", st)
	}
	for i, h := range store.history {
		if err := statemachine.CanTransition(h.FromStatus, h.ToStatus); err != nil {
			t.Errorf("history %d: %v", i, err)
		}
	}
}

func TestOrderLocksAreReleased(t *testing.T) {
	store := newMemStore("ORD-1", "ORD-2")
	svc := NewService(store, nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for _, id := range []string{"ORD-1", "ORD-2", "ORD-404", "ORD-1"} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			svc.Advance(ctx, id)
			svc.ApplyUpdate(ctx, id, "ready", "")
		}(id)
	}
	wg.Wait()

	svc.mu.Lock()
	defer svc.mu.Unlock()
	if len(svc.locks) != 0 {
		t.Errorf("locks left behind: %d", len(svc.locks))
	}
}
