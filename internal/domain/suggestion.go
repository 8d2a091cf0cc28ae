package domain

// Suggestion limits and bounds.
const (
	// DefaultSuggestionLimit is the suggestion count when the caller omits one.
	DefaultSuggestionLimit = 5

	// MaxSuggestionLimit is the largest allowed suggestion count.
	MaxSuggestionLimit = 10

	// MinSuggestionQueryLength is the shortest accepted suggestion query.
	MinSuggestionQueryLength = 2

	// MaxDestinationSuggestions caps the distinct-location lookup.
	// Tour matches are appended first and may starve destinations
	// entirely; that bias is deliberate.
	MaxDestinationSuggestions = 3
)

// SuggestionType discriminates the two kinds of search suggestion.
type SuggestionType string

// Suggestion kinds.
const (
	SuggestionTour        SuggestionType = "tour"
	SuggestionDestination SuggestionType = "destination"
)

// Suggestion is a single search-suggestion entry: either a matching tour
// (with id and slug) or a matching destination name. Suggestions are only
// ever produced from published, non-deleted tours.
type Suggestion struct {
	// Type discriminates tour vs destination entries
	Type SuggestionType `json:"type"`

	// ID is the tour id (tour entries only)
	ID int64 `json:"id,omitempty"`

	// Name is the tour name or destination name
	Name string `json:"name"`

	// Slug is the tour slug (tour entries only)
	Slug string `json:"slug,omitempty"`
}

// NewTourSuggestion builds a tour-typed suggestion from a tour.
func NewTourSuggestion(t Tour) Suggestion {
	return Suggestion{
		Type: SuggestionTour,
		ID:   t.ID,
		Name: t.Name,
		Slug: t.Slug,
	}
}

// NewDestinationSuggestion builds a destination-typed suggestion.
func NewDestinationSuggestion(name string) Suggestion {
	return Suggestion{
		Type: SuggestionDestination,
		Name: name,
	}
}
