package domain

// SortOption defines the available sort modes for tour listings.
type SortOption string

// Available sort modes.
const (
	// SortPopular orders by review count, then rating (default)
	SortPopular SortOption = "popular"

	// SortNewest orders by creation time, newest first
	SortNewest SortOption = "newest"

	// SortPriceAsc orders by adult price, cheapest first
	SortPriceAsc SortOption = "price_asc"

	// SortPriceDesc orders by adult price, most expensive first
	SortPriceDesc SortOption = "price_desc"

	// SortRating orders by rating average, best first
	SortRating SortOption = "rating"
)

// IsValid checks if the sort option is a known mode.
func (s SortOption) IsValid() bool {
	switch s {
	case SortPopular, SortNewest, SortPriceAsc, SortPriceDesc, SortRating:
		return true
	default:
		return false
	}
}

// ParseSortOption converts a raw token to a SortOption.
// Unrecognized or empty tokens fall back to SortPopular: sort modes come
// from a constrained UI vocabulary, so lenient fallback beats rejection.
func ParseSortOption(s string) SortOption {
	option := SortOption(s)
	if option.IsValid() {
		return option
	}
	return SortPopular
}

// OrderKey names a sortable tour attribute. Catalog adapters map keys to
// their own column or field representation.
type OrderKey string

// Sortable attributes.
const (
	OrderKeyCreatedAt     OrderKey = "created_at"
	OrderKeyPriceAdult    OrderKey = "price_adult"
	OrderKeyRatingAverage OrderKey = "rating_average"
	OrderKeyReviewCount   OrderKey = "review_count"
)

// OrderClause is one component of a composite ordering directive.
type OrderClause struct {
	// Key is the attribute to order by
	Key OrderKey

	// Desc orders descending when true, ascending otherwise
	Desc bool
}

// OrderClauses resolves the sort mode to a concrete ordering directive.
// Ties beyond the declared keys are left to the catalog store's natural
// order; that order is not guaranteed stable across calls.
func (s SortOption) OrderClauses() []OrderClause {
	switch s {
	case SortNewest:
		return []OrderClause{{Key: OrderKeyCreatedAt, Desc: true}}
	case SortPriceAsc:
		return []OrderClause{{Key: OrderKeyPriceAdult}}
	case SortPriceDesc:
		return []OrderClause{{Key: OrderKeyPriceAdult, Desc: true}}
	case SortRating:
		return []OrderClause{{Key: OrderKeyRatingAverage, Desc: true}}
	default:
		// Popular = many reviews first, rating as tie-break.
		return []OrderClause{
			{Key: OrderKeyReviewCount, Desc: true},
			{Key: OrderKeyRatingAverage, Desc: true},
		}
	}
}

// FeaturedOrder is the fixed ordering of the featured listing:
// rating average descending, then review count descending.
// It is not caller-selectable.
func FeaturedOrder() []OrderClause {
	return []OrderClause{
		{Key: OrderKeyRatingAverage, Desc: true},
		{Key: OrderKeyReviewCount, Desc: true},
	}
}
