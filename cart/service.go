package cart

import (
	"context"
	"fmt"
	"sync"

	"storefront-api/models"
	"storefront-api/remote"

	"go.uber.org/zap"
)

// Backend is the slice of the data service that owns the durable cart.
type Backend interface {
	GetCart(ctx context.Context) (remote.CartResponse, error)
	AddToCart(ctx context.Context, line models.CartLine) (remote.CartResponse, error)
	UpdateCartItem(ctx context.Context, id string, qty int) (remote.CartResponse, error)
	RemoveFromCart(ctx context.Context, id string) (remote.CartResponse, error)
	ClearCart(ctx context.Context) (remote.CartResponse, error)
}

// Service keeps a Ledger in step with the backing cart. Each mutation is
// validated locally, sent to the backend, and the returned cart becomes
// the ledger content. The whole round trip is serialized so concurrent
// mutations apply in submission order.
type Service struct {
	mu      sync.Mutex
	ledger  *Ledger
	backend Backend
	log     *zap.Logger
}

func NewService(ledger *Ledger, backend Backend, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{ledger: ledger, backend: backend, log: log}
}

func (s *Service) Ledger() *Ledger { return s.ledger }

// Snapshot returns the current cart view without touching the backend.
func (s *Service) Snapshot() Snapshot { return s.ledger.Snapshot() }

// Load replaces the ledger with the backend's cart.
func (s *Service) Load(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp, err := s.backend.GetCart(ctx)
	return s.adopt("getCart", resp, err)
}

func (s *Service) Add(ctx context.Context, line models.CartLine) (Snapshot, error) {
	if err := ValidateLine(line); err != nil {
		return Snapshot{}, err
	}
	if line.Quantity == 0 {
		line.Quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	resp, err := s.backend.AddToCart(ctx, line)
	return s.adopt("addToCart", resp, err)
}

// SetQuantity updates a line; zero is a removal.
func (s *Service) SetQuantity(ctx context.Context, id string, qty int) (Snapshot, error) {
	if qty < 0 {
		return Snapshot{}, fmt.Errorf("%w: %d", ErrInvalidQuantity, qty)
	}
	if qty == 0 {
		return s.Remove(ctx, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ledger.Has(id) {
		return Snapshot{}, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	resp, err := s.backend.UpdateCartItem(ctx, id, qty)
	return s.adopt("updateCartItem", resp, err)
}

// Remove deletes a line. An unknown id is a no-op and skips the backend.
func (s *Service) Remove(ctx context.Context, id string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ledger.Has(id) {
		return s.ledger.Snapshot(), nil
	}
	resp, err := s.backend.RemoveFromCart(ctx, id)
	return s.adopt("removeFromCart", resp, err)
}

func (s *Service) Clear(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clear(ctx)
}

// Checkout runs fn against the current snapshot and clears the cart once
// fn succeeds. Other mutations wait until both are done, so nothing added
// meanwhile is wiped by the clear. A failed clear is logged, not returned:
// fn has already committed.
func (s *Service) Checkout(ctx context.Context, fn func(Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.ledger.Snapshot()); err != nil {
		return err
	}
	if _, err := s.clear(ctx); err != nil {
		s.log.Warn("cart not cleared after checkout", zap.Error(err))
	}
	return nil
}

func (s *Service) clear(ctx context.Context) (Snapshot, error) {
	resp, err := s.backend.ClearCart(ctx)
	if err := remote.Check("clearCart", resp.Success, resp.Error, err); err != nil {
		s.log.Warn("clear cart failed", zap.Error(err))
		return Snapshot{}, err
	}
	return s.ledger.Clear(), nil
}

func (s *Service) adopt(op string, resp remote.CartResponse, callErr error) (Snapshot, error) {
	if err := remote.Check(op, resp.Success, resp.Error, callErr); err != nil {
		s.log.Warn("cart call failed", zap.String("op", op), zap.Error(err))
		return Snapshot{}, err
	}
	snap, err := s.ledger.Replace(resp.Cart)
	if err != nil {
		s.log.Warn("backend returned an invalid cart", zap.String("op", op), zap.Error(err))
		return Snapshot{}, &remote.Failure{Op: op, Message: "invalid cart in response", Err: err}
	}
	s.log.Debug("cart updated",
		zap.String("op", op),
		zap.Uint64("version", snap.Version),
		zap.Int("items", snap.Totals.ItemCount),
		zap.String("grand_total", snap.Totals.GrandTotal.StringFixed(2)),
	)
	return snap, nil
}
