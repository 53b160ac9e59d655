package statemachine

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"storefront-api/models"
)

var ErrInvalidTransition = errors.New("invalid transition")

// sequence is the authoritative delivery lifecycle, in order.
var sequence = []models.DeliveryStatus{
	models.StatusConfirmed,
	models.StatusPreparing,
	models.StatusReady,
	models.StatusPickedUp,
	models.StatusDelivered,
}

var labels = map[models.DeliveryStatus]string{
	models.StatusConfirmed: "Order Confirmed",
	models.StatusPreparing: "Preparing Food",
	models.StatusReady:     "Ready for Pickup",
	models.StatusPickedUp:  "Out for Delivery",
	models.StatusDelivered: "Delivered",
}

// Transition is one forward step of the lifecycle
type Transition struct {
	From models.DeliveryStatus `json:"from"`
	To   models.DeliveryStatus `json:"to"`
}

// Build a position lookup for O(1) validation
var position = func() map[models.DeliveryStatus]int {
	m := make(map[models.DeliveryStatus]int, len(sequence))
	for i, s := range sequence {
		m[s] = i
	}
	return m
}()

// TotalStates is the number of states in the lifecycle.
func TotalStates() int { return len(sequence) }

// Statuses returns the lifecycle in order.
func Statuses() []models.DeliveryStatus {
	out := make([]models.DeliveryStatus, len(sequence))
	copy(out, sequence)
	return out
}

// ParseStatus maps a raw feed value onto a known status.
func ParseStatus(raw string) (models.DeliveryStatus, error) {
	s := models.DeliveryStatus(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := position[s]; !ok {
		return "", fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, raw)
	}
	return s, nil
}

// IsTerminal reports whether no transition leaves status.
func IsTerminal(status models.DeliveryStatus) bool {
	return status == sequence[len(sequence)-1]
}

// Label returns the display string for a status
func Label(status models.DeliveryStatus) string {
	if l, ok := labels[status]; ok {
		return l
	}
	return string(status)
}

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.DeliveryStatus) []models.DeliveryStatus {
	i, ok := position[status]
	if !ok || i == len(sequence)-1 {
		return nil
	}
	return []models.DeliveryStatus{sequence[i+1]}
}

// CanTransition checks whether the lifecycle allows from → to
func CanTransition(from, to models.DeliveryStatus) error {
	fi, okFrom := position[from]
	ti, okTo := position[to]
	if okFrom && okTo && ti == fi+1 {
		return nil
	}
	return fmt.Errorf("%w: %s → %s is not allowed. Valid transitions from %s are: %s",
		ErrInvalidTransition, from, to, from, describeValidFrom(from))
}

func describeValidFrom(status models.DeliveryStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	parts := make([]string, len(nexts))
	for i, s := range nexts {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	out := make([]Transition, 0, len(sequence)-1)
	for i := 0; i+1 < len(sequence); i++ {
		out = append(out, Transition{From: sequence[i], To: sequence[i+1]})
	}
	return out
}

// Step is one row of the tracking timeline.
type Step struct {
	Status  models.DeliveryStatus `json:"status"`
	Label   string                `json:"label"`
	Done    bool                  `json:"done"`
	Current bool                  `json:"current"`
}

// View is the read-only state handed to presentation.
type View struct {
	Status   models.DeliveryStatus `json:"status"`
	Label    string                `json:"label"`
	Progress float64               `json:"progress"`
	Terminal bool                  `json:"terminal"`
	Steps    []Step                `json:"steps"`
}

// Machine tracks one order's delivery status. It only moves forward.
type Machine struct {
	mu      sync.Mutex
	current int
}

// New starts a machine at confirmed.
func New() *Machine { return &Machine{} }

// Restore rebuilds a machine at a persisted status.
func Restore(status models.DeliveryStatus) (*Machine, error) {
	i, ok := position[status]
	if !ok {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, status)
	}
	return &Machine{current: i}, nil
}

func (m *Machine) Current() models.DeliveryStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return sequence[m.current]
}

// Advance moves to the next status. At the terminal status it does nothing
// and reports false.
func (m *Machine) Advance() (models.DeliveryStatus, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == len(sequence)-1 {
		return sequence[m.current], false
	}
	m.current++
	return sequence[m.current], true
}

// ApplyUpdate applies a status reported by an external feed. Only the
// immediate successor is accepted; a repeat of the current status is a
// no-op. Anything else is rejected and the machine keeps its state.
func (m *Machine) ApplyUpdate(status models.DeliveryStatus) (changed bool, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur := sequence[m.current]
	if status == cur {
		return false, nil
	}
	if err := CanTransition(cur, status); err != nil {
		return false, err
	}
	m.current++
	return true, nil
}

// Progress is (index+1)/TotalStates.
func (m *Machine) Progress() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return progressAt(m.current)
}

func (m *Machine) View() View {
	m.mu.Lock()
	defer m.mu.Unlock()
	return viewAt(m.current)
}

// ViewOf renders the tracking view for a status without a machine.
func ViewOf(status models.DeliveryStatus) (View, error) {
	i, ok := position[status]
	if !ok {
		return View{}, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, status)
	}
	return viewAt(i), nil
}

func progressAt(i int) float64 {
	return float64(i+1) / float64(len(sequence))
}

func viewAt(i int) View {
	steps := make([]Step, len(sequence))
	for j, s := range sequence {
		steps[j] = Step{Status: s, Label: labels[s], Done: j <= i, Current: j == i}
	}
	return View{
		Status:   sequence[i],
		Label:    labels[sequence[i]],
		Progress: progressAt(i),
		Terminal: i == len(sequence)-1,
		Steps:    steps,
	}
}
