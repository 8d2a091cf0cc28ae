package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=catalog.go -destination=mock_catalog.go -package=domain

// TourCatalog is the port to the queryable tour collection (the catalog
// store). Implementations translate the opaque TourFilter predicate set
// and OrderClause directives into their own query form.
//
// All methods are read-only and must honor context cancellation. Failures
// should be wrapped with NewCatalogError and are propagated to callers
// unchanged: no retries, no partial results.
type TourCatalog interface {
	// FindTours returns the tours matching the filter, ordered by the given
	// clauses (nil means store natural order), skipping offset rows and
	// returning at most limit rows.
	FindTours(ctx context.Context, filter TourFilter, order []OrderClause, offset, limit int) ([]Tour, error)

	// CountTours returns the number of tours matching the filter.
	CountTours(ctx context.Context, filter TourFilter) (int64, error)

	// NextAvailableDates returns, per tour id, the start date of the
	// earliest open schedule at or after the given instant. Tours with no
	// such schedule are absent from the result.
	NextAvailableDates(ctx context.Context, tourIDs []int64, from time.Time) (map[int64]time.Time, error)

	// DistinctLocations returns up to limit distinct non-empty location
	// values of visible tours containing the term, case-insensitively.
	DistinctLocations(ctx context.Context, term string, limit int) ([]string, error)
}
