// Package usecase orchestrates tour discovery: listing with filters and
// pagination, the featured shortlist, and search suggestions.
package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tour-booking/tour-discovery-service/internal/domain"
	"github.com/tour-booking/tour-discovery-service/internal/infrastructure/timeutil"
)

// DefaultFeaturedLimit is the featured shortlist size when the caller
// omits one.
const DefaultFeaturedLimit = 4

// TourDiscoveryUseCase defines the read-side discovery operations.
type TourDiscoveryUseCase interface {
	// ListTours returns one page of visible tours matching the query's
	// filters, in the requested sort order, with pagination metadata.
	ListTours(ctx context.Context, query domain.ListToursQuery) (*domain.TourPage, error)

	// FeaturedTours returns up to limit featured tours ordered by rating.
	// A non-positive limit falls back to DefaultFeaturedLimit.
	FeaturedTours(ctx context.Context, limit int) ([]domain.Tour, error)

	// Suggestions returns mixed tour and destination suggestions for a
	// search-as-you-type query. A non-positive limit falls back to
	// domain.DefaultSuggestionLimit.
	Suggestions(ctx context.Context, query string, limit int) ([]domain.Suggestion, error)
}

// FeaturedCache is an optional read-through cache for the featured
// shortlist. Misses and cache failures are equivalent; the catalog is
// always the source of truth.
type FeaturedCache interface {
	// GetFeatured returns the cached shortlist for the limit, if present.
	GetFeatured(ctx context.Context, limit int) ([]domain.Tour, bool)

	// SetFeatured stores the shortlist for the limit.
	SetFeatured(ctx context.Context, limit int, tours []domain.Tour)
}

// tourDiscoveryUseCase implements TourDiscoveryUseCase on top of a
// TourCatalog port.
type tourDiscoveryUseCase struct {
	catalog domain.TourCatalog
	cache   FeaturedCache
	clock   timeutil.Clock
	log     zerolog.Logger
}

// Config contains optional collaborators for the use case.
type Config struct {
	// Cache enables read-through caching of the featured shortlist.
	Cache FeaturedCache

	// Clock supplies the "now" used for next-available-date lookups.
	Clock timeutil.Clock

	// Logger receives structured diagnostics.
	Logger *zerolog.Logger
}

// NewTourDiscoveryUseCase creates a TourDiscoveryUseCase backed by the
// given catalog. If config is nil, the system clock is used, no cache is
// attached, and logging is disabled.
func NewTourDiscoveryUseCase(catalog domain.TourCatalog, config *Config) TourDiscoveryUseCase {
	uc := &tourDiscoveryUseCase{
		catalog: catalog,
		clock:   timeutil.NewRealClock(),
		log:     zerolog.Nop(),
	}
	if config != nil {
		uc.cache = config.Cache
		if config.Clock != nil {
			uc.clock = config.Clock
		}
		if config.Logger != nil {
			uc.log = *config.Logger
		}
	}
	return uc
}

// ListTours implements TourDiscoveryUseCase.ListTours.
//
// The page fetch and the total count run concurrently against the same
// compiled filter; both must succeed. Errors from either leg are
// propagated unchanged, fetch errors first.
func (uc *tourDiscoveryUseCase) ListTours(ctx context.Context, query domain.ListToursQuery) (*domain.TourPage, error) {
	query.SetDefaults()
	if err := query.Validate(); err != nil {
		return nil, err
	}

	filter := domain.CompileTourFilter(query)
	order := query.Sort.OrderClauses()

	var (
		wg       sync.WaitGroup
		tours    []domain.Tour
		total    int64
		findErr  error
		countErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		tours, findErr = uc.catalog.FindTours(ctx, filter, order, query.Offset(), query.Limit)
	}()
	go func() {
		defer wg.Done()
		total, countErr = uc.catalog.CountTours(ctx, filter)
	}()
	wg.Wait()

	if findErr != nil {
		return nil, findErr
	}
	if countErr != nil {
		return nil, countErr
	}

	if err := uc.attachNextAvailableDates(ctx, tours); err != nil {
		return nil, err
	}

	uc.log.Debug().
		Int("page", query.Page).
		Int("limit", query.Limit).
		Int64("total", total).
		Int("returned", len(tours)).
		Msg("tour listing resolved")

	return &domain.TourPage{
		Tours:      tours,
		Pagination: domain.NewPagination(query.Page, query.Limit, total),
	}, nil
}

// FeaturedTours implements TourDiscoveryUseCase.FeaturedTours.
func (uc *tourDiscoveryUseCase) FeaturedTours(ctx context.Context, limit int) ([]domain.Tour, error) {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}

	if uc.cache != nil {
		if tours, ok := uc.cache.GetFeatured(ctx, limit); ok {
			uc.log.Debug().Int("limit", limit).Msg("featured tours served from cache")
			return tours, nil
		}
	}

	filter := domain.TourFilter{FeaturedOnly: true}
	tours, err := uc.catalog.FindTours(ctx, filter, domain.FeaturedOrder(), 0, limit)
	if err != nil {
		return nil, err
	}

	if err := uc.attachNextAvailableDates(ctx, tours); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		// Refresh off the request path; the response never waits on the cache.
		go uc.cache.SetFeatured(context.Background(), limit, tours)
	}

	return tours, nil
}

// Suggestions implements TourDiscoveryUseCase.Suggestions.
//
// Tour matches come first, then up to domain.MaxDestinationSuggestions
// distinct locations; the combined list is truncated to limit. Tour
// matches can therefore crowd destinations out entirely.
func (uc *tourDiscoveryUseCase) Suggestions(ctx context.Context, query string, limit int) ([]domain.Suggestion, error) {
	query = strings.TrimSpace(query)
	if limit <= 0 {
		limit = domain.DefaultSuggestionLimit
	}

	tours, err := uc.catalog.FindTours(ctx, domain.SuggestionFilter(query), nil, 0, limit)
	if err != nil {
		return nil, err
	}

	locations, err := uc.catalog.DistinctLocations(ctx, query, domain.MaxDestinationSuggestions)
	if err != nil {
		return nil, err
	}

	suggestions := make([]domain.Suggestion, 0, len(tours)+len(locations))
	for _, tour := range tours {
		suggestions = append(suggestions, domain.NewTourSuggestion(tour))
	}
	for _, location := range locations {
		if location == "" {
			continue
		}
		suggestions = append(suggestions, domain.NewDestinationSuggestion(location))
	}

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions, nil
}

// attachNextAvailableDates looks up the earliest open departure per tour
// and sets it on the corresponding entries in place. Tours without an
// upcoming open departure are left with a nil date.
func (uc *tourDiscoveryUseCase) attachNextAvailableDates(ctx context.Context, tours []domain.Tour) error {
	if len(tours) == 0 {
		return nil
	}

	ids := make([]int64, len(tours))
	for i, tour := range tours {
		ids[i] = tour.ID
	}

	dates, err := uc.catalog.NextAvailableDates(ctx, ids, uc.clock.Now())
	if err != nil {
		return err
	}

	for i := range tours {
		if date, ok := dates[tours[i].ID]; ok {
			d := date
			tours[i].NextAvailableDate = &d
		}
	}
	return nil
}

// Ensure tourDiscoveryUseCase implements TourDiscoveryUseCase at compile time.
var _ TourDiscoveryUseCase = (*tourDiscoveryUseCase)(nil)
