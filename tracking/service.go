package tracking

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"storefront-api/models"
	"storefront-api/statemachine"

	"go.uber.org/zap"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderStore persists delivery status for placed orders.
type OrderStore interface {
	OrderStatus(ctx context.Context, orderID string) (models.DeliveryStatus, error)
	RecordStatus(ctx context.Context, orderID string, from, to models.DeliveryStatus, note string) error
}

// Service drives the delivery state machine of stored orders. Updates to
// the same order are serialized.
type Service struct {
	store OrderStore
	log   *zap.Logger

	mu    sync.Mutex
	locks map[string]*orderLock
}

// orderLock is dropped from the map once no caller holds or waits on it.
type orderLock struct {
	sync.Mutex
	refs int
}

func NewService(store OrderStore, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, log: log, locks: make(map[string]*orderLock)}
}

// Track returns the current tracking view for an order.
func (s *Service) Track(ctx context.Context, orderID string) (statemachine.View, error) {
	m, err := s.load(ctx, orderID)
	if err != nil {
		return statemachine.View{}, err
	}
	return m.View(), nil
}

// Advance moves the order one step forward. At delivered nothing changes.
func (s *Service) Advance(ctx context.Context, orderID string) (statemachine.View, error) {
	unlock := s.lock(orderID)
	defer unlock()

	m, err := s.load(ctx, orderID)
	if err != nil {
		return statemachine.View{}, err
	}
	from := m.Current()
	to, moved := m.Advance()
	if !moved {
		return m.View(), nil
	}
	if err := s.store.RecordStatus(ctx, orderID, from, to, "advanced"); err != nil {
		return statemachine.View{}, err
	}
	s.log.Info("order advanced", zap.String("order_id", orderID), zap.String("from", string(from)), zap.String("to", string(to)))
	return m.View(), nil
}

// ApplyUpdate applies a status from an external tracking feed. Out-of-order
// or regressing updates are rejected and the stored status is kept.
func (s *Service) ApplyUpdate(ctx context.Context, orderID, raw, note string) (statemachine.View, error) {
	status, err := statemachine.ParseStatus(raw)
	if err != nil {
		return statemachine.View{}, err
	}

	unlock := s.lock(orderID)
	defer unlock()

	m, err := s.load(ctx, orderID)
	if err != nil {
		return statemachine.View{}, err
	}
	from := m.Current()
	changed, err := m.ApplyUpdate(status)
	if err != nil {
		s.log.Warn("rejected status update", zap.String("order_id", orderID), zap.String("current", string(from)), zap.String("requested", raw))
		return statemachine.View{}, err
	}
	if changed {
		if err := s.store.RecordStatus(ctx, orderID, from, status, note); err != nil {
			return statemachine.View{}, err
		}
		s.log.Info("order status updated", zap.String("order_id", orderID), zap.String("from", string(from)), zap.String("to", string(status)))
	}
	return m.View(), nil
}

func (s *Service) load(ctx context.Context, orderID string) (*statemachine.Machine, error) {
	status, err := s.store.OrderStatus(ctx, orderID)
	if err != nil {
		return nil, err
	}
	m, err := statemachine.Restore(status)
	if err != nil {
		return nil, fmt.Errorf("order %s has corrupt status: %w", orderID, err)
	}
	return m, nil
}

func (s *Service) lock(orderID string) func() {
	s.mu.Lock()
	l, ok := s.locks[orderID]
	if !ok {
		l = &orderLock{}
		s.locks[orderID] = l
	}
	l.refs++
	s.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, orderID)
		}
		s.mu.Unlock()
	}
}
