package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tour-booking/tour-discovery-service/internal/domain"
	"github.com/tour-booking/tour-discovery-service/internal/infrastructure/timeutil"
)

var fixedNow = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func newUseCase(t *testing.T, cache FeaturedCache) (TourDiscoveryUseCase, *domain.MockTourCatalog) {
	t.Helper()
	ctrl := gomock.NewController(t)
	catalog := domain.NewMockTourCatalog(ctrl)
	uc := NewTourDiscoveryUseCase(catalog, &Config{
		Cache: cache,
		Clock: timeutil.NewMockClock(fixedNow),
	})
	return uc, catalog
}

func sampleTours(ids ...int64) []domain.Tour {
	tours := make([]domain.Tour, len(ids))
	for i, id := range ids {
		tours[i] = domain.Tour{ID: id, Name: "Tour", Status: domain.StatusPublished}
	}
	return tours
}

func TestListTours_DefaultsAndPagination(t *testing.T) {
	uc, catalog := newUseCase(t, nil)

	popularOrder := domain.SortPopular.OrderClauses()
	catalog.EXPECT().
		FindTours(gomock.Any(), domain.TourFilter{}, popularOrder, 0, domain.DefaultLimit).
		Return(sampleTours(1, 2, 3), nil)
	catalog.EXPECT().
		CountTours(gomock.Any(), domain.TourFilter{}).
		Return(int64(3), nil)
	catalog.EXPECT().
		NextAvailableDates(gomock.Any(), []int64{1, 2, 3}, fixedNow).
		Return(map[int64]time.Time{2: fixedNow.AddDate(0, 0, 10)}, nil)

	page, err := uc.ListTours(context.Background(), domain.ListToursQuery{})
	require.NoError(t, err)

	assert.Len(t, page.Tours, 3)
	assert.Equal(t, domain.Pagination{
		Page: 1, Limit: 8, Total: 3, TotalPages: 1,
	}, page.Pagination)

	assert.Nil(t, page.Tours[0].NextAvailableDate)
	require.NotNil(t, page.Tours[1].NextAvailableDate)
	assert.Equal(t, fixedNow.AddDate(0, 0, 10), *page.Tours[1].NextAvailableDate)
	assert.Nil(t, page.Tours[2].NextAvailableDate)
}

func TestListTours_SecondPageOffset(t *testing.T) {
	uc, catalog := newUseCase(t, nil)

	catalog.EXPECT().
		FindTours(gomock.Any(), gomock.Any(), gomock.Any(), 8, 8).
		Return(sampleTours(9, 10), nil)
	catalog.EXPECT().
		CountTours(gomock.Any(), gomock.Any()).
		Return(int64(10), nil)
	catalog.EXPECT().
		NextAvailableDates(gomock.Any(), []int64{9, 10}, fixedNow).
		Return(nil, nil)

	page, err := uc.ListTours(context.Background(), domain.ListToursQuery{Page: 2, Limit: 8})
	require.NoError(t, err)

	assert.Len(t, page.Tours, 2)
	assert.Equal(t, int64(10), page.Pagination.Total)
	assert.Equal(t, 2, page.Pagination.TotalPages)
	assert.False(t, page.Pagination.HasNext)
	assert.True(t, page.Pagination.HasPrev)
}

func TestListTours_CompilesFilters(t *testing.T) {
	uc, catalog := newUseCase(t, nil)

	query := domain.ListToursQuery{
		Search:     " temple ",
		Sort:       domain.SortPriceAsc,
		PriceMax:   ptr(300.0),
		Difficulty: domain.DifficultyEasy,
		Duration:   "4-7",
	}
	wantFilter := domain.TourFilter{
		Search:     "temple",
		PriceMax:   ptr(300.0),
		Difficulty: domain.DifficultyEasy,
		Duration:   &domain.DurationRange{MinDays: 4, MaxDays: ptr(7)},
	}
	wantOrder := []domain.OrderClause{{Key: domain.OrderKeyPriceAdult}}

	catalog.EXPECT().
		FindTours(gomock.Any(), wantFilter, wantOrder, 0, domain.DefaultLimit).
		Return(nil, nil)
	catalog.EXPECT().
		CountTours(gomock.Any(), wantFilter).
		Return(int64(0), nil)

	page, err := uc.ListTours(context.Background(), query)
	require.NoError(t, err)

	assert.Empty(t, page.Tours)
	assert.Equal(t, 0, page.Pagination.TotalPages)
}

func TestListTours_ValidationError(t *testing.T) {
	uc, _ := newUseCase(t, nil)

	_, err := uc.ListTours(context.Background(), domain.ListToursQuery{Limit: domain.MaxLimit + 1})

	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestListTours_CatalogErrors(t *testing.T) {
	findFailure := domain.NewCatalogError("find tours", errors.New("connection reset"))
	countFailure := domain.NewCatalogError("count tours", errors.New("connection reset"))

	tests := []struct {
		name     string
		findErr  error
		countErr error
		wantErr  error
	}{
		{name: "fetch failure propagates", findErr: findFailure, wantErr: findFailure},
		{name: "count failure propagates", countErr: countFailure, wantErr: countFailure},
		{name: "fetch failure wins when both fail", findErr: findFailure, countErr: countFailure, wantErr: findFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, catalog := newUseCase(t, nil)

			catalog.EXPECT().
				FindTours(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, tt.findErr)
			catalog.EXPECT().
				CountTours(gomock.Any(), gomock.Any()).
				Return(int64(0), tt.countErr)

			_, err := uc.ListTours(context.Background(), domain.ListToursQuery{})

			assert.Equal(t, tt.wantErr, err)
		})
	}
}

func TestListTours_NextAvailableDateError(t *testing.T) {
	uc, catalog := newUseCase(t, nil)
	failure := domain.NewCatalogError("next available dates", errors.New("timeout"))

	catalog.EXPECT().
		FindTours(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(sampleTours(1), nil)
	catalog.EXPECT().
		CountTours(gomock.Any(), gomock.Any()).
		Return(int64(1), nil)
	catalog.EXPECT().
		NextAvailableDates(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, failure)

	_, err := uc.ListTours(context.Background(), domain.ListToursQuery{})

	assert.Equal(t, failure, err)
}

func TestFeaturedTours_QueriesCatalog(t *testing.T) {
	uc, catalog := newUseCase(t, nil)

	catalog.EXPECT().
		FindTours(gomock.Any(), domain.TourFilter{FeaturedOnly: true}, domain.FeaturedOrder(), 0, DefaultFeaturedLimit).
		Return(sampleTours(1, 2), nil)
	catalog.EXPECT().
		NextAvailableDates(gomock.Any(), []int64{1, 2}, fixedNow).
		Return(nil, nil)

	tours, err := uc.FeaturedTours(context.Background(), 0)
	require.NoError(t, err)

	assert.Len(t, tours, 2)
}

func TestFeaturedTours_CacheHitSkipsCatalog(t *testing.T) {
	cache := newFakeCache()
	cache.tours[6] = sampleTours(1, 2, 3)

	uc, _ := newUseCase(t, cache)

	tours, err := uc.FeaturedTours(context.Background(), 6)
	require.NoError(t, err)

	assert.Len(t, tours, 3)
}

func TestFeaturedTours_CacheMissRefreshesAsync(t *testing.T) {
	cache := newFakeCache()
	uc, catalog := newUseCase(t, cache)

	catalog.EXPECT().
		FindTours(gomock.Any(), domain.TourFilter{FeaturedOnly: true}, domain.FeaturedOrder(), 0, 4).
		Return(sampleTours(7), nil)
	catalog.EXPECT().
		NextAvailableDates(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)

	tours, err := uc.FeaturedTours(context.Background(), 4)
	require.NoError(t, err)
	assert.Len(t, tours, 1)

	select {
	case <-cache.stored:
	case <-time.After(time.Second):
		t.Fatal("cache was not refreshed")
	}
	assert.Len(t, cache.get(4), 1)
}

func TestFeaturedTours_CatalogError(t *testing.T) {
	uc, catalog := newUseCase(t, nil)
	failure := domain.NewCatalogError("find tours", errors.New("down"))

	catalog.EXPECT().
		FindTours(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, failure)

	_, err := uc.FeaturedTours(context.Background(), 4)

	assert.Equal(t, failure, err)
}

func TestSuggestions_MergesToursAndDestinations(t *testing.T) {
	uc, catalog := newUseCase(t, nil)

	tours := []domain.Tour{
		{ID: 1, Name: "Bali Beach Escape", Slug: "bali-beach-escape", Status: domain.StatusPublished},
		{ID: 2, Name: "Bali Temple Walk", Slug: "bali-temple-walk", Status: domain.StatusPublished},
	}
	catalog.EXPECT().
		FindTours(gomock.Any(), domain.TourFilter{NameOrLocation: "bali"}, nil, 0, 5).
		Return(tours, nil)
	catalog.EXPECT().
		DistinctLocations(gomock.Any(), "bali", domain.MaxDestinationSuggestions).
		Return([]string{"Bali, Indonesia", ""}, nil)

	suggestions, err := uc.Suggestions(context.Background(), " bali ", 0)
	require.NoError(t, err)

	require.Len(t, suggestions, 3)
	assert.Equal(t, domain.Suggestion{Type: domain.SuggestionTour, ID: 1, Name: "Bali Beach Escape", Slug: "bali-beach-escape"}, suggestions[0])
	assert.Equal(t, domain.SuggestionTour, suggestions[1].Type)
	assert.Equal(t, domain.Suggestion{Type: domain.SuggestionDestination, Name: "Bali, Indonesia"}, suggestions[2])
}

func TestSuggestions_TruncatesToLimit(t *testing.T) {
	uc, catalog := newUseCase(t, nil)

	catalog.EXPECT().
		FindTours(gomock.Any(), gomock.Any(), nil, 0, 3).
		Return(sampleTours(1, 2, 3), nil)
	catalog.EXPECT().
		DistinctLocations(gomock.Any(), gomock.Any(), domain.MaxDestinationSuggestions).
		Return([]string{"Kyoto, Japan", "Cusco, Peru"}, nil)

	suggestions, err := uc.Suggestions(context.Background(), "tour", 3)
	require.NoError(t, err)

	require.Len(t, suggestions, 3)
	for _, s := range suggestions {
		assert.Equal(t, domain.SuggestionTour, s.Type)
	}
}

func TestSuggestions_CatalogErrors(t *testing.T) {
	failure := domain.NewCatalogError("distinct locations", errors.New("down"))

	t.Run("tour lookup failure", func(t *testing.T) {
		uc, catalog := newUseCase(t, nil)
		catalog.EXPECT().
			FindTours(gomock.Any(), gomock.Any(), nil, 0, 5).
			Return(nil, failure)

		_, err := uc.Suggestions(context.Background(), "bali", 5)
		assert.Equal(t, failure, err)
	})

	t.Run("location lookup failure", func(t *testing.T) {
		uc, catalog := newUseCase(t, nil)
		catalog.EXPECT().
			FindTours(gomock.Any(), gomock.Any(), nil, 0, 5).
			Return(nil, nil)
		catalog.EXPECT().
			DistinctLocations(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, failure)

		_, err := uc.Suggestions(context.Background(), "bali", 5)
		assert.Equal(t, failure, err)
	})
}

// fakeCache is a FeaturedCache with a signal channel so tests can wait
// for the asynchronous refresh.
type fakeCache struct {
	mu     sync.Mutex
	tours  map[int][]domain.Tour
	stored chan struct{}
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		tours:  make(map[int][]domain.Tour),
		stored: make(chan struct{}, 1),
	}
}

func (c *fakeCache) GetFeatured(_ context.Context, limit int) ([]domain.Tour, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	tours, ok := c.tours[limit]
	return tours, ok
}

func (c *fakeCache) SetFeatured(_ context.Context, limit int, tours []domain.Tour) {
	c.mu.Lock()
	c.tours[limit] = tours
	c.mu.Unlock()
	select {
	case c.stored <- struct{}{}:
	default:
	}
}

func (c *fakeCache) get(limit int) []domain.Tour {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tours[limit]
}

func ptr[T any](v T) *T {
	return &v
}
