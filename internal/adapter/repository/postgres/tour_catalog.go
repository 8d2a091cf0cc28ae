package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/tour-booking/tour-discovery-service/internal/domain"
)

// Catalog implements domain.TourCatalog on a GORM connection.
type Catalog struct {
	db *gorm.DB
}

// NewCatalog creates a Catalog backed by the given connection.
func NewCatalog(db *gorm.DB) *Catalog {
	return &Catalog{db: db}
}

// orderColumns maps sortable attributes to their column names. Only keys
// in this map ever reach an ORDER BY clause.
var orderColumns = map[domain.OrderKey]string{
	domain.OrderKeyCreatedAt:     "created_at",
	domain.OrderKeyPriceAdult:    "price_adult",
	domain.OrderKeyRatingAverage: "rating_average",
	domain.OrderKeyReviewCount:   "review_count",
}

// FindTours implements domain.TourCatalog.FindTours.
func (c *Catalog) FindTours(ctx context.Context, filter domain.TourFilter, order []domain.OrderClause, offset, limit int) ([]domain.Tour, error) {
	query := c.applyFilter(c.db.WithContext(ctx).Model(&TourModel{}), filter)

	for _, clause := range order {
		column, ok := orderColumns[clause.Key]
		if !ok {
			continue
		}
		direction := "ASC"
		if clause.Desc {
			direction = "DESC"
		}
		query = query.Order(fmt.Sprintf("%s %s", column, direction))
	}

	var rows []TourModel
	if err := query.Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, domain.NewCatalogError("find tours", err)
	}

	tours := make([]domain.Tour, len(rows))
	for i := range rows {
		tours[i] = rows[i].ToDomain()
	}
	return tours, nil
}

// CountTours implements domain.TourCatalog.CountTours.
func (c *Catalog) CountTours(ctx context.Context, filter domain.TourFilter) (int64, error) {
	var total int64
	query := c.applyFilter(c.db.WithContext(ctx).Model(&TourModel{}), filter)
	if err := query.Count(&total).Error; err != nil {
		return 0, domain.NewCatalogError("count tours", err)
	}
	return total, nil
}

// nextDateRow receives the grouped earliest-departure scan.
type nextDateRow struct {
	TourID   int64
	NextDate time.Time
}

// NextAvailableDates implements domain.TourCatalog.NextAvailableDates.
func (c *Catalog) NextAvailableDates(ctx context.Context, tourIDs []int64, from time.Time) (map[int64]time.Time, error) {
	if len(tourIDs) == 0 {
		return map[int64]time.Time{}, nil
	}

	var rows []nextDateRow
	err := c.db.WithContext(ctx).
		Model(&ScheduleModel{}).
		Select("tour_id, MIN(start_date) AS next_date").
		Where("tour_id IN ?", tourIDs).
		Where("status = ?", string(domain.ScheduleOpen)).
		Where("start_date >= ?", from).
		Group("tour_id").
		Scan(&rows).Error
	if err != nil {
		return nil, domain.NewCatalogError("next available dates", err)
	}

	dates := make(map[int64]time.Time, len(rows))
	for _, row := range rows {
		dates[row.TourID] = row.NextDate
	}
	return dates, nil
}

// DistinctLocations implements domain.TourCatalog.DistinctLocations.
func (c *Catalog) DistinctLocations(ctx context.Context, term string, limit int) ([]string, error) {
	var locations []string
	err := c.db.WithContext(ctx).
		Model(&TourModel{}).
		Where("status = ?", string(domain.StatusPublished)).
		Where("location IS NOT NULL AND location <> ''").
		Where("location ILIKE ?", likePattern(term)).
		Distinct().
		Limit(limit).
		Pluck("location", &locations).Error
	if err != nil {
		return nil, domain.NewCatalogError("distinct locations", err)
	}
	return locations, nil
}

// applyFilter translates the predicate set to WHERE conditions. GORM's
// soft-delete scope already excludes rows with deleted_at set.
func (c *Catalog) applyFilter(query *gorm.DB, filter domain.TourFilter) *gorm.DB {
	query = query.Where("status = ?", string(domain.StatusPublished))

	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where(
			"name ILIKE ? OR location ILIKE ? OR summary ILIKE ?",
			pattern, pattern, pattern,
		)
	}
	if filter.NameOrLocation != "" {
		pattern := likePattern(filter.NameOrLocation)
		query = query.Where("name ILIKE ? OR location ILIKE ?", pattern, pattern)
	}
	if filter.PriceMin != nil {
		query = query.Where("price_adult >= ?", *filter.PriceMin)
	}
	if filter.PriceMax != nil {
		query = query.Where("price_adult <= ?", *filter.PriceMax)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", string(filter.Difficulty))
	}
	if filter.Location != "" {
		query = query.Where("location ILIKE ?", likePattern(filter.Location))
	}
	if filter.Duration != nil {
		query = query.Where("duration_days >= ?", filter.Duration.MinDays)
		if filter.Duration.MaxDays != nil {
			query = query.Where("duration_days <= ?", *filter.Duration.MaxDays)
		}
	}
	if filter.FeaturedOnly {
		query = query.Where("featured = ?", true)
	}

	return query
}

// likePattern builds a contains-style ILIKE pattern with the user input
// escaped so % and _ match literally.
func likePattern(term string) string {
	return "%" + escapeLike(term) + "%"
}

// escapeLike escapes LIKE metacharacters in user input.
func escapeLike(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(term)
}

// Ensure Catalog implements domain.TourCatalog at compile time.
var _ domain.TourCatalog = (*Catalog)(nil)
