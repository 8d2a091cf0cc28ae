package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/tour-booking/tour-discovery-service/internal/domain"
	"github.com/tour-booking/tour-discovery-service/internal/usecase"
)

// TourCache caches the featured shortlist in Redis. Every failure mode
// (miss, connection error, bad payload) degrades to a cache miss; the
// catalog stays the source of truth.
type TourCache struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

// NewTourCache creates a TourCache with the given TTL.
func NewTourCache(client *redis.Client, ttl time.Duration, log zerolog.Logger) *TourCache {
	return &TourCache{client: client, ttl: ttl, log: log}
}

// featuredKey builds the cache key for a shortlist size.
func featuredKey(limit int) string {
	return fmt.Sprintf("tours:featured:%d", limit)
}

// GetFeatured implements usecase.FeaturedCache.GetFeatured.
func (c *TourCache) GetFeatured(ctx context.Context, limit int) ([]domain.Tour, bool) {
	payload, err := c.client.Get(ctx, featuredKey(limit)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn().Err(err).Int("limit", limit).Msg("featured cache read failed")
		}
		return nil, false
	}

	var tours []domain.Tour
	if err := json.Unmarshal(payload, &tours); err != nil {
		c.log.Warn().Err(err).Int("limit", limit).Msg("featured cache payload corrupt")
		return nil, false
	}
	return tours, true
}

// SetFeatured implements usecase.FeaturedCache.SetFeatured.
func (c *TourCache) SetFeatured(ctx context.Context, limit int, tours []domain.Tour) {
	payload, err := json.Marshal(tours)
	if err != nil {
		c.log.Warn().Err(err).Int("limit", limit).Msg("featured cache encode failed")
		return
	}

	if err := c.client.Set(ctx, featuredKey(limit), payload, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Int("limit", limit).Msg("featured cache write failed")
	}
}

// Ensure TourCache implements usecase.FeaturedCache at compile time.
var _ usecase.FeaturedCache = (*TourCache)(nil)
