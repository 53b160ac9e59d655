package cart

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"storefront-api/models"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidItem     = errors.New("invalid cart item")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrItemNotFound    = errors.New("item not found in cart")
)

var (
	// DeliveryFee is charged once per non-empty cart.
	DeliveryFee = decimal.NewFromInt(40)
	// TaxRate is applied to the subtotal (GST).
	TaxRate = decimal.RequireFromString("0.05")
)

// Snapshot is an immutable view of the ledger after a mutation.
type Snapshot struct {
	Version uint64            `json:"version"`
	Lines   []models.CartLine `json:"items"`
	Totals  models.CartTotals `json:"totals"`
}

// IsEmpty reports whether the snapshot holds no lines.
func (s Snapshot) IsEmpty() bool { return len(s.Lines) == 0 }

// Ledger holds the cart lines and derives totals from them.
// All operations are serialized; every successful mutation publishes a
// new Snapshot to subscribers in mutation order.
type Ledger struct {
	mu        sync.Mutex
	lines     []models.CartLine
	index     map[string]int
	version   uint64
	observers map[int]func(Snapshot)
	nextObs   int
}

func NewLedger() *Ledger {
	return &Ledger{
		index:     make(map[string]int),
		observers: make(map[int]func(Snapshot)),
	}
}

// AddItem increments the quantity of an existing line or inserts a new one.
// A zero quantity on the incoming line means one unit.
func (l *Ledger) AddItem(item models.CartLine) (Snapshot, error) {
	if err := ValidateLine(item); err != nil {
		return Snapshot{}, err
	}
	qty := item.Quantity
	if qty == 0 {
		qty = 1
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if i, ok := l.index[item.ID]; ok {
		l.lines[i].Quantity += qty
	} else {
		item.Quantity = qty
		l.index[item.ID] = len(l.lines)
		l.lines = append(l.lines, item)
	}
	return l.commit(), nil
}

// SetQuantity sets a line's quantity. Zero removes the line.
func (l *Ledger) SetQuantity(id string, qty int) (Snapshot, error) {
	if qty < 0 {
		return Snapshot{}, fmt.Errorf("%w: %d", ErrInvalidQuantity, qty)
	}
	if qty == 0 {
		return l.RemoveItem(id), nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	i, ok := l.index[id]
	if !ok {
		return Snapshot{}, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	l.lines[i].Quantity = qty
	return l.commit(), nil
}

// RemoveItem deletes the line if present. Removing an absent id is a no-op
// and publishes nothing.
func (l *Ledger) RemoveItem(id string) Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	i, ok := l.index[id]
	if !ok {
		return l.snapshot()
	}
	l.lines = append(l.lines[:i], l.lines[i+1:]...)
	l.reindex()
	return l.commit()
}

func (l *Ledger) Clear() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.lines = nil
	l.index = make(map[string]int)
	return l.commit()
}

// Replace resets the ledger to an authoritative set of lines, e.g. the cart
// returned by the backing service. Zero-quantity lines are dropped and
// duplicate ids are merged. One invalid line rejects the whole set.
func (l *Ledger) Replace(lines []models.CartLine) (Snapshot, error) {
	next := make([]models.CartLine, 0, len(lines))
	index := make(map[string]int, len(lines))
	for _, line := range lines {
		if err := ValidateLine(line); err != nil {
			return Snapshot{}, err
		}
		if line.Quantity == 0 {
			continue
		}
		if i, ok := index[line.ID]; ok {
			next[i].Quantity += line.Quantity
			continue
		}
		index[line.ID] = len(next)
		next = append(next, line)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.lines = next
	l.index = index
	return l.commit(), nil
}

// Totals recomputes the derived amounts from the current lines.
func (l *Ledger) Totals() models.CartTotals {
	l.mu.Lock()
	defer l.mu.Unlock()
	return ComputeTotals(l.lines)
}

// Has reports whether a line with id is in the cart.
func (l *Ledger) Has(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.index[id]
	return ok
}

func (l *Ledger) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshot()
}

// Subscribe registers fn to receive every published snapshot. fn runs with
// the ledger locked and must not call back into it.
func (l *Ledger) Subscribe(fn func(Snapshot)) (cancel func()) {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := l.nextObs
	l.nextObs++
	l.observers[id] = fn
	return func() {
		l.mu.Lock()
		delete(l.observers, id)
		l.mu.Unlock()
	}
}

// ComputeTotals derives CartTotals from lines.
func ComputeTotals(lines []models.CartLine) models.CartTotals {
	subtotal := decimal.Zero
	count := 0
	for _, line := range lines {
		subtotal = subtotal.Add(line.LineTotal())
		count += line.Quantity
	}
	fee := decimal.Zero
	if len(lines) > 0 {
		fee = DeliveryFee
	}
	tax := subtotal.Mul(TaxRate)
	return models.CartTotals{
		Subtotal:    subtotal,
		ItemCount:   count,
		DeliveryFee: fee,
		Tax:         tax,
		GrandTotal:  subtotal.Add(fee).Add(tax),
	}
}

// ValidateLine rejects lines the ledger would refuse to hold.
func ValidateLine(item models.CartLine) error {
	if strings.TrimSpace(item.ID) == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidItem)
	}
	if item.UnitPrice.IsNegative() {
		return fmt.Errorf("%w: negative unit price for %s", ErrInvalidItem, item.ID)
	}
	if item.Quantity < 0 {
		return fmt.Errorf("%w: %d for %s", ErrInvalidQuantity, item.Quantity, item.ID)
	}
	return nil
}

func (l *Ledger) reindex() {
	l.index = make(map[string]int, len(l.lines))
	for i, line := range l.lines {
		l.index[line.ID] = i
	}
}

func (l *Ledger) commit() Snapshot {
	l.version++
	snap := l.snapshot()
	for _, fn := range l.observers {
		fn(snap)
	}
	return snap
}

func (l *Ledger) snapshot() Snapshot {
	lines := make([]models.CartLine, len(l.lines))
	copy(lines, l.lines)
	return Snapshot{
		Version: l.version,
		Lines:   lines,
		Totals:  ComputeTotals(lines),
	}
}
