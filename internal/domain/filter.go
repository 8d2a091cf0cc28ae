package domain

import (
	"strings"
)

// TourFilter is the compiled predicate set for a catalog query: a
// conjunction of conditions over eligible tours. A visibility predicate
// (published, not soft-deleted) is always implied and never optional.
//
// The zero value matches every visible tour. Catalog adapters translate
// the filter into their own query form; Matches gives the reference
// in-memory semantics.
type TourFilter struct {
	// Search matches name OR location OR summary, case-insensitive substring
	Search string `json:"search,omitempty"`

	// NameOrLocation matches name OR location only; used by suggestions
	NameOrLocation string `json:"nameOrLocation,omitempty"`

	// PriceMin keeps tours with adult price >= this value
	PriceMin *float64 `json:"priceMin,omitempty"`

	// PriceMax keeps tours with adult price <= this value
	PriceMax *float64 `json:"priceMax,omitempty"`

	// Difficulty keeps tours with exactly this difficulty level
	Difficulty Difficulty `json:"difficulty,omitempty"`

	// Location matches the location field, case-insensitive substring
	Location string `json:"location,omitempty"`

	// Duration keeps tours whose duration in days falls within the range
	Duration *DurationRange `json:"duration,omitempty"`

	// FeaturedOnly keeps only tours flagged as featured
	FeaturedOnly bool `json:"featuredOnly,omitempty"`
}

// CompileTourFilter translates a normalized listing query into a predicate
// set. Pure function: no side effects, no store access.
//
// Whitespace-only search terms are treated as absent. Unparseable duration
// tokens yield no duration predicate. Difficulty arrives already validated
// at the boundary and is passed through as-is.
func CompileTourFilter(query ListToursQuery) TourFilter {
	filter := TourFilter{
		PriceMin:   query.PriceMin,
		PriceMax:   query.PriceMax,
		Difficulty: query.Difficulty,
	}

	if search := strings.TrimSpace(query.Search); search != "" {
		filter.Search = search
	}
	if query.Location != "" {
		filter.Location = query.Location
	}
	filter.Duration = ParseDurationRange(query.Duration)

	return filter
}

// SuggestionFilter builds the predicate set for suggestion lookups:
// visible tours whose name or location contains the query.
func SuggestionFilter(query string) TourFilter {
	return TourFilter{NameOrLocation: strings.TrimSpace(query)}
}

// Matches checks if a tour satisfies every condition in the filter.
// A tour matches iff it is visible and independently satisfies each
// supplied predicate (conjunction semantics).
func (f *TourFilter) Matches(tour Tour) bool {
	if !tour.Visible() {
		return false
	}
	if f == nil {
		return true
	}

	if f.FeaturedOnly && !tour.Featured {
		return false
	}

	// Free-text search: disjunction over name, location, summary
	if f.Search != "" {
		if !containsFold(tour.Name, f.Search) &&
			!containsFold(tour.Location, f.Search) &&
			!containsFold(tour.Summary, f.Search) {
			return false
		}
	}

	// Suggestion lookup: disjunction over name, location only
	if f.NameOrLocation != "" {
		if !containsFold(tour.Name, f.NameOrLocation) &&
			!containsFold(tour.Location, f.NameOrLocation) {
			return false
		}
	}

	// Price range applies to the adult price only
	if f.PriceMin != nil && tour.PriceAdult < *f.PriceMin {
		return false
	}
	if f.PriceMax != nil && tour.PriceAdult > *f.PriceMax {
		return false
	}

	if f.Difficulty != "" && tour.Difficulty != f.Difficulty {
		return false
	}

	if f.Location != "" && !containsFold(tour.Location, f.Location) {
		return false
	}

	if f.Duration != nil && !f.Duration.Contains(tour.DurationDays) {
		return false
	}

	return true
}

// containsFold reports whether substr occurs in s, case-insensitively.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
