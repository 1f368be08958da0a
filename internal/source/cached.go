package source

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/employee-availability-api/internal/models"
	"github.com/noah-isme/employee-availability-api/internal/scheduler"
)

type snapshotCache interface {
	Get(ctx context.Context, locator string) (models.Dataset, bool, error)
	Set(ctx context.Context, locator string, data models.Dataset, ttl time.Duration) error
}

// Cached serves the dataset from a snapshot cache, falling back to the wrapped source.
// Cache failures never fail a fetch.
type Cached struct {
	next   scheduler.DatasetSource
	cache  snapshotCache
	ttl    time.Duration
	logger *zap.Logger
}

// NewCached decorates next with cache.
func NewCached(next scheduler.DatasetSource, cache snapshotCache, ttl time.Duration, logger *zap.Logger) *Cached {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cached{next: next, cache: cache, ttl: ttl, logger: logger}
}

// Locator returns the wrapped source's locator.
func (s *Cached) Locator() string { return s.next.Locator() }

// Fetch returns the cached dataset or fetches and caches it.
func (s *Cached) Fetch(ctx context.Context) (models.Dataset, error) {
	locator := s.next.Locator()
	if data, found, err := s.cache.Get(ctx, locator); err == nil && found {
		s.logger.Debug("dataset served from snapshot cache", zap.String("source", locator))
		return data, nil
	}

	data, err := s.next.Fetch(ctx)
	if err != nil {
		return models.Dataset{}, err
	}
	if err := s.cache.Set(ctx, locator, data, s.ttl); err != nil {
		s.logger.Warn("dataset snapshot not cached", zap.String("source", locator), zap.Error(err))
	}
	return data, nil
}
