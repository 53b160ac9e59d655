package models

type PriceRange string

const (
	PriceAny      PriceRange = ""
	PriceUnder100 PriceRange = "under_100"
	Price100To300 PriceRange = "100_300"
	PriceOver300  PriceRange = "over_300"
)

// Rating is a minimum vendor rating facet; zero means unset.
type Rating float64

const (
	RatingAny Rating = 0
	Rating40  Rating = 4.0
	Rating45  Rating = 4.5
)

type SearchFilters struct {
	Rating     Rating     `json:"rating"`
	VegOnly    bool       `json:"veg_only"`
	PriceRange PriceRange `json:"price_range"`
}

// IsDefault reports whether no facet is set.
func (f SearchFilters) IsDefault() bool {
	return f.Rating == RatingAny && !f.VegOnly && f.PriceRange == PriceAny
}

// SearchQuery is the normalized request sent to the backing search.
// Zero-valued fields are omitted on the wire.
type SearchQuery struct {
	Text       string     `json:"query,omitempty"`
	Category   string     `json:"category,omitempty"`
	Rating     Rating     `json:"rating,omitempty"`
	VegOnly    bool       `json:"veg_only,omitempty"`
	PriceRange PriceRange `json:"price_range,omitempty"`
}

type SearchResults struct {
	Vendors []Vendor   `json:"vendors"`
	Items   []MenuItem `json:"items"`
}
