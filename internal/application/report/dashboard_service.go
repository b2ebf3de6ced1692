package report

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/rmc/backend/internal/infrastructure/cache"
	"github.com/rmc/backend/internal/infrastructure/persistence"
)

// Cache keys for the dashboard rollups
const (
	cacheKeyStats    = "dashboard:stats"
	cacheKeyQuantity = "dashboard:quantity"
	cacheKeySummary  = "dashboard:summary"
)

// DashboardRepository is the storage surface the dashboard service needs
type DashboardRepository interface {
	Stats(ctx context.Context, now time.Time) (*persistence.DashboardStats, error)
	Quantity(ctx context.Context, now time.Time) (*persistence.QuantityStats, error)
	Summary(ctx context.Context) (*persistence.DashboardSummary, error)
}

// DashboardService serves the dashboard rollups behind a short-TTL cache.
// Cache faults degrade to direct queries, never to request failures.
type DashboardService struct {
	dashboards DashboardRepository
	cache      cache.Cache
	ttl        time.Duration
	logger     *zap.Logger
	now        func() time.Time
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(dashboards DashboardRepository, c cache.Cache, ttl time.Duration, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		dashboards: dashboards,
		cache:      c,
		ttl:        ttl,
		logger:     logger,
		now:        time.Now,
	}
}

// Stats returns the headline dashboard counters
func (s *DashboardService) Stats(ctx context.Context) (*persistence.DashboardStats, error) {
	return cached(ctx, s, cacheKeyStats, func() (*persistence.DashboardStats, error) {
		return s.dashboards.Stats(ctx, s.now())
	})
}

// Quantity returns delivered volume over the trailing day, week, and month
func (s *DashboardService) Quantity(ctx context.Context) (*persistence.QuantityStats, error) {
	return cached(ctx, s, cacheKeyQuantity, func() (*persistence.QuantityStats, error) {
		return s.dashboards.Quantity(ctx, s.now())
	})
}

// Summary returns the recent-activity panels
func (s *DashboardService) Summary(ctx context.Context) (*persistence.DashboardSummary, error) {
	return cached(ctx, s, cacheKeySummary, func() (*persistence.DashboardSummary, error) {
		return s.dashboards.Summary(ctx)
	})
}

// cached serves a rollup from the cache when fresh, falling back to load and
// refill on a miss. Serialization is JSON so redis and memory backends behave
// alike.
func cached[T any](ctx context.Context, s *DashboardService, key string, load func() (*T, error)) (*T, error) {
	if raw, err := s.cache.Get(ctx, key); err == nil {
		var value T
		if err := json.Unmarshal(raw, &value); err == nil {
			return &value, nil
		}
		// A corrupt entry is dropped and recomputed.
		_ = s.cache.Delete(ctx, key)
	}

	value, err := load()
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(value); err == nil {
		if err := s.cache.Set(ctx, key, raw, s.ttl); err != nil {
			s.logger.Warn("dashboard cache write failed",
				zap.String("key", key),
				zap.Error(err))
		}
	}

	return value, nil
}
