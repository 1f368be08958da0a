package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/employee-availability-api/internal/models"
	appErrors "github.com/noah-isme/employee-availability-api/pkg/errors"
)

// SnapshotRepository abstracts persistence for cached datasets.
type SnapshotRepository interface {
	Get(ctx context.Context, locator string) (*models.Dataset, error)
	Set(ctx context.Context, locator string, data models.Dataset, ttl time.Duration) error
}

// SnapshotService caches fetched datasets keyed by their source locator.
type SnapshotService struct {
	repo       SnapshotRepository
	metrics    *MetricsService
	defaultTTL time.Duration
	logger     *zap.Logger
	enabled    bool
}

// NewSnapshotService constructs a snapshot cache service.
func NewSnapshotService(repo SnapshotRepository, metrics *MetricsService, defaultTTL time.Duration, logger *zap.Logger, enabled bool) *SnapshotService {
	if defaultTTL <= 0 {
		defaultTTL = 10 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SnapshotService{repo: repo, metrics: metrics, defaultTTL: defaultTTL, logger: logger, enabled: enabled}
}

// Enabled indicates whether caching is active.
func (s *SnapshotService) Enabled() bool {
	return s != nil && s.enabled && s.repo != nil
}

// Get returns the cached dataset for locator. found is false on a miss or when disabled.
func (s *SnapshotService) Get(ctx context.Context, locator string) (data models.Dataset, found bool, err error) {
	if !s.Enabled() {
		return models.Dataset{}, false, nil
	}
	cached, err := s.repo.Get(ctx, locator)
	if err != nil {
		s.metrics.RecordSnapshotLookup(false)
		if errors.Is(err, appErrors.ErrCacheMiss) {
			return models.Dataset{}, false, nil
		}
		s.logger.Warn("snapshot get failed", zap.String("source", locator), zap.Error(err))
		return models.Dataset{}, false, err
	}
	s.metrics.RecordSnapshotLookup(true)
	return *cached, true, nil
}

// Set stores the dataset for locator; a non-positive ttl uses the default.
func (s *SnapshotService) Set(ctx context.Context, locator string, data models.Dataset, ttl time.Duration) error {
	if !s.Enabled() {
		return nil
	}
	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	if err := s.repo.Set(ctx, locator, data, ttl); err != nil {
		s.logger.Warn("snapshot set failed", zap.String("source", locator), zap.Error(err))
		return err
	}
	return nil
}
