package search

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"storefront-api/models"
)

var ErrInvalidFilter = errors.New("invalid search filter")

// CategoryAll selects every category and is never sent to the backend.
const CategoryAll = "all"

// Class tells presentation which result sections to show.
type Class string

const (
	ClassEmpty       Class = "empty"
	ClassVendorsOnly Class = "vendors_only"
	ClassItemsOnly   Class = "items_only"
	ClassMixed       Class = "mixed"
)

var ratings = map[models.Rating]string{
	models.Rating40: "4.0+ ⭐",
	models.Rating45: "4.5+ ⭐",
}

var priceRanges = map[models.PriceRange]string{
	models.PriceUnder100: "< ₹100",
	models.Price100To300: "₹100-300",
	models.PriceOver300:  "> ₹300",
}

// ValidateFilters rejects facet values the storefront does not offer.
func ValidateFilters(f models.SearchFilters) error {
	if f.Rating != models.RatingAny {
		if _, ok := ratings[f.Rating]; !ok {
			return fmt.Errorf("%w: rating %v", ErrInvalidFilter, float64(f.Rating))
		}
	}
	if f.PriceRange != models.PriceAny {
		if _, ok := priceRanges[f.PriceRange]; !ok {
			return fmt.Errorf("%w: price range %q", ErrInvalidFilter, f.PriceRange)
		}
	}
	return nil
}

// Compose merges text, category and facets into one query. It returns nil
// when nothing is set, meaning no search should be issued.
func Compose(text, category string, f models.SearchFilters) (*models.SearchQuery, error) {
	if err := ValidateFilters(f); err != nil {
		return nil, err
	}
	return compose(text, category, f), nil
}

// compose assumes f is already valid.
func compose(text, category string, f models.SearchFilters) *models.SearchQuery {
	text = strings.TrimSpace(text)
	category = strings.TrimSpace(category)
	if category == CategoryAll {
		category = ""
	}
	if text == "" && category == "" && f.IsDefault() {
		return nil
	}
	return &models.SearchQuery{
		Text:       text,
		Category:   category,
		Rating:     f.Rating,
		VegOnly:    f.VegOnly,
		PriceRange: f.PriceRange,
	}
}

func Classify(r models.SearchResults) Class {
	hasVendors, hasItems := len(r.Vendors) > 0, len(r.Items) > 0
	switch {
	case hasVendors && hasItems:
		return ClassMixed
	case hasVendors:
		return ClassVendorsOnly
	case hasItems:
		return ClassItemsOnly
	}
	return ClassEmpty
}

// Chip is an active filter pill shown under the search bar.
type Chip struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Chips lists the active facets in display order.
func Chips(f models.SearchFilters) []Chip {
	var out []Chip
	if f.VegOnly {
		out = append(out, Chip{Key: "veg_only", Label: "Pure Veg"})
	}
	if l, ok := ratings[f.Rating]; ok {
		out = append(out, Chip{Key: "rating", Label: l})
	}
	if l, ok := priceRanges[f.PriceRange]; ok {
		out = append(out, Chip{Key: "price_range", Label: l})
	}
	return out
}

// State is a read-only copy of a Composer.
type State struct {
	Text     string               `json:"text"`
	Category string               `json:"category"`
	Filters  models.SearchFilters `json:"filters"`
	Chips    []Chip               `json:"chips"`
	Active   bool                 `json:"active"`
}

// Composer owns the search screen state. Its methods are the only way
// to change it.
type Composer struct {
	mu       sync.Mutex
	text     string
	category string
	filters  models.SearchFilters
}

func NewComposer() *Composer { return &Composer{} }

func (c *Composer) SetText(text string) {
	c.mu.Lock()
	c.text = text
	c.mu.Unlock()
}

func (c *Composer) SelectCategory(category string) {
	c.mu.Lock()
	c.category = category
	c.mu.Unlock()
}

// ToggleRating selects r, or clears it when r is already selected.
func (c *Composer) ToggleRating(r models.Rating) error {
	if err := ValidateFilters(models.SearchFilters{Rating: r}); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.filters.Rating == r {
		c.filters.Rating = models.RatingAny
	} else {
		c.filters.Rating = r
	}
	return nil
}

// TogglePriceRange selects p, or clears it when p is already selected.
func (c *Composer) TogglePriceRange(p models.PriceRange) error {
	if err := ValidateFilters(models.SearchFilters{PriceRange: p}); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.filters.PriceRange == p {
		c.filters.PriceRange = models.PriceAny
	} else {
		c.filters.PriceRange = p
	}
	return nil
}

func (c *Composer) ToggleVegOnly() {
	c.mu.Lock()
	c.filters.VegOnly = !c.filters.VegOnly
	c.mu.Unlock()
}

// ApplyFilters replaces every facet at once, as the filter sheet does.
func (c *Composer) ApplyFilters(f models.SearchFilters) error {
	if err := ValidateFilters(f); err != nil {
		return err
	}
	c.mu.Lock()
	c.filters = f
	c.mu.Unlock()
	return nil
}

// RemoveFilter clears one facet by chip key.
func (c *Composer) RemoveFilter(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch key {
	case "rating":
		c.filters.Rating = models.RatingAny
	case "veg_only":
		c.filters.VegOnly = false
	case "price_range":
		c.filters.PriceRange = models.PriceAny
	default:
		return fmt.Errorf("%w: unknown filter %q", ErrInvalidFilter, key)
	}
	return nil
}

func (c *Composer) ClearFilters() {
	c.mu.Lock()
	c.filters = models.SearchFilters{}
	c.mu.Unlock()
}

func (c *Composer) Filters() models.SearchFilters {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filters
}

// Query composes the current state; nil means do not search.
func (c *Composer) Query() *models.SearchQuery {
	c.mu.Lock()
	defer c.mu.Unlock()
	return compose(c.text, c.category, c.filters)
}

func (c *Composer) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		Text:     c.text,
		Category: c.category,
		Filters:  c.filters,
		Chips:    Chips(c.filters),
		Active:   compose(c.text, c.category, c.filters) != nil,
	}
}
