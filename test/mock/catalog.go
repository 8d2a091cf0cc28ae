// Package mock provides test doubles for the tour discovery system.
// These mocks are designed for integration testing where we need
// configurable behavior (seeded data, errors, call recording).
package mock

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/tour-booking/tour-discovery-service/internal/domain"
)

// Catalog is a configurable in-memory implementation of
// domain.TourCatalog. Filtering reuses domain.TourFilter.Matches so the
// mock and a real store agree on which tours are eligible; ordering is a
// stable sort over the requested clauses.
type Catalog struct {
	tours     []domain.Tour
	schedules []domain.Schedule
	err       error

	mu         sync.Mutex
	findCalls  int
	countCalls int
	lastOffset int
	lastLimit  int
}

// NewCatalog creates an empty mock catalog.
// The catalog is configured using the builder pattern methods.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// WithTours seeds the catalog with the given tours.
func (c *Catalog) WithTours(tours []domain.Tour) *Catalog {
	c.tours = tours
	return c
}

// WithSchedules seeds the catalog with the given departures.
func (c *Catalog) WithSchedules(schedules []domain.Schedule) *Catalog {
	c.schedules = schedules
	return c
}

// WithError configures every catalog method to fail with the given error.
func (c *Catalog) WithError(err error) *Catalog {
	c.err = err
	return c
}

// FindTours implements domain.TourCatalog.FindTours.
func (c *Catalog) FindTours(ctx context.Context, filter domain.TourFilter, order []domain.OrderClause, offset, limit int) ([]domain.Tour, error) {
	c.mu.Lock()
	c.findCalls++
	c.lastOffset = offset
	c.lastLimit = limit
	c.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.err != nil {
		return nil, c.err
	}

	matched := c.matching(filter)
	sortTours(matched, order)

	if offset >= len(matched) {
		return []domain.Tour{}, nil
	}
	matched = matched[offset:]
	if limit >= 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

// CountTours implements domain.TourCatalog.CountTours.
func (c *Catalog) CountTours(ctx context.Context, filter domain.TourFilter) (int64, error) {
	c.mu.Lock()
	c.countCalls++
	c.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if c.err != nil {
		return 0, c.err
	}
	return int64(len(c.matching(filter))), nil
}

// NextAvailableDates implements domain.TourCatalog.NextAvailableDates.
func (c *Catalog) NextAvailableDates(ctx context.Context, tourIDs []int64, from time.Time) (map[int64]time.Time, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.err != nil {
		return nil, c.err
	}

	wanted := make(map[int64]bool, len(tourIDs))
	for _, id := range tourIDs {
		wanted[id] = true
	}

	dates := make(map[int64]time.Time)
	for _, schedule := range c.schedules {
		if !wanted[schedule.TourID] || !schedule.AvailableAt(from) {
			continue
		}
		if current, ok := dates[schedule.TourID]; !ok || schedule.StartDate.Before(current) {
			dates[schedule.TourID] = schedule.StartDate
		}
	}
	return dates, nil
}

// DistinctLocations implements domain.TourCatalog.DistinctLocations.
func (c *Catalog) DistinctLocations(ctx context.Context, term string, limit int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.err != nil {
		return nil, c.err
	}

	filter := domain.TourFilter{Location: term}
	seen := make(map[string]bool)
	var locations []string
	for _, tour := range c.tours {
		if tour.Location == "" || !filter.Matches(tour) || seen[tour.Location] {
			continue
		}
		seen[tour.Location] = true
		locations = append(locations, tour.Location)
		if len(locations) == limit {
			break
		}
	}
	return locations, nil
}

// FindCalls returns the number of FindTours invocations.
func (c *Catalog) FindCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.findCalls
}

// CountCalls returns the number of CountTours invocations.
func (c *Catalog) CountCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.countCalls
}

// LastOffset returns the offset of the most recent FindTours call.
func (c *Catalog) LastOffset() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastOffset
}

// LastLimit returns the limit of the most recent FindTours call.
func (c *Catalog) LastLimit() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastLimit
}

// matching returns a copy of the seeded tours passing the filter.
func (c *Catalog) matching(filter domain.TourFilter) []domain.Tour {
	matched := make([]domain.Tour, 0, len(c.tours))
	for _, tour := range c.tours {
		if filter.Matches(tour) {
			matched = append(matched, tour)
		}
	}
	return matched
}

// sortTours orders tours by the given clauses with a stable sort, so
// ties keep their seeded order.
func sortTours(tours []domain.Tour, order []domain.OrderClause) {
	if len(order) == 0 {
		return
	}
	sort.SliceStable(tours, func(i, j int) bool {
		for _, clause := range order {
			a, b := orderValue(tours[i], clause.Key), orderValue(tours[j], clause.Key)
			if a == b {
				continue
			}
			if clause.Desc {
				return a > b
			}
			return a < b
		}
		return false
	})
}

// orderValue maps a sortable attribute to a comparable number.
func orderValue(tour domain.Tour, key domain.OrderKey) float64 {
	switch key {
	case domain.OrderKeyCreatedAt:
		return float64(tour.CreatedAt.UnixNano())
	case domain.OrderKeyPriceAdult:
		return tour.PriceAdult
	case domain.OrderKeyRatingAverage:
		return tour.RatingAverage
	case domain.OrderKeyReviewCount:
		return float64(tour.ReviewCount)
	default:
		return 0
	}
}

// Ensure Catalog implements domain.TourCatalog at compile time.
var _ domain.TourCatalog = (*Catalog)(nil)
