package domain

import "fmt"

// Listing query bounds and defaults.
const (
	// DefaultPage is the page used when the caller omits one.
	DefaultPage = 1

	// DefaultLimit is the page size used when the caller omits one.
	DefaultLimit = 8

	// MaxLimit is the largest allowed page size. Values beyond it are a
	// validation error at the boundary, never clamped.
	MaxLimit = 50
)

// ListToursQuery is the normalized, typed set of filter/sort/pagination
// parameters for one discovery call. The transport boundary produces it
// from raw query-string input; the core never sees untyped input.
type ListToursQuery struct {
	// Page is the 1-based page number
	Page int `json:"page"`

	// Limit is the page size (1..MaxLimit)
	Limit int `json:"limit"`

	// Search is an optional free-text search term
	Search string `json:"search,omitempty"`

	// Sort is the sort mode; zero value falls back to SortPopular
	Sort SortOption `json:"sort,omitempty"`

	// PriceMin is the optional minimum adult price
	PriceMin *float64 `json:"priceMin,omitempty"`

	// PriceMax is the optional maximum adult price
	PriceMax *float64 `json:"priceMax,omitempty"`

	// Difficulty is the optional difficulty filter, already validated
	Difficulty Difficulty `json:"difficulty,omitempty"`

	// Location is an optional location substring filter
	Location string `json:"location,omitempty"`

	// Duration is the raw duration bucket token (e.g. "1-3", "8+")
	Duration string `json:"duration,omitempty"`
}

// SetDefaults applies default values to unset fields. Defaults are explicit
// per-request values, not hidden module state.
func (q *ListToursQuery) SetDefaults() {
	if q.Page == 0 {
		q.Page = DefaultPage
	}
	if q.Limit == 0 {
		q.Limit = DefaultLimit
	}
	if q.Sort == "" {
		q.Sort = SortPopular
	}
}

// Validate checks the query bounds.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (q *ListToursQuery) Validate() error {
	if q.Page < 1 {
		return fmt.Errorf("%w: page must be at least 1, got %d", ErrInvalidRequest, q.Page)
	}
	if q.Limit < 1 || q.Limit > MaxLimit {
		return fmt.Errorf("%w: limit must be between 1 and %d, got %d", ErrInvalidRequest, MaxLimit, q.Limit)
	}
	if q.PriceMin != nil && *q.PriceMin < 0 {
		return fmt.Errorf("%w: priceMin must be non-negative", ErrInvalidRequest)
	}
	if q.PriceMax != nil && *q.PriceMax < 0 {
		return fmt.Errorf("%w: priceMax must be non-negative", ErrInvalidRequest)
	}
	if q.Difficulty != "" {
		if _, ok := ParseDifficulty(string(q.Difficulty)); !ok {
			return fmt.Errorf("%w: difficulty must be one of: easy, moderate, challenging; got %q", ErrInvalidRequest, q.Difficulty)
		}
	}
	return nil
}

// Offset is the number of rows to skip for the requested page.
func (q *ListToursQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}
