// Package source fetches schedule datasets and builds schedulers from them.
package source

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/employee-availability-api/internal/models"
	"github.com/noah-isme/employee-availability-api/internal/repository"
	"github.com/noah-isme/employee-availability-api/internal/scheduler"
	"github.com/noah-isme/employee-availability-api/internal/service"
	"github.com/noah-isme/employee-availability-api/pkg/cache"
	"github.com/noah-isme/employee-availability-api/pkg/config"
	"github.com/noah-isme/employee-availability-api/pkg/database"
)

// Load fetches the dataset from src and builds a Scheduler over it.
func Load(ctx context.Context, src scheduler.DatasetSource, logger *zap.Logger, metrics *service.MetricsService) (*scheduler.Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	start := time.Now()
	s, err := scheduler.Open(ctx, src)
	if err != nil {
		logger.Error("dataset load failed", zap.String("source", src.Locator()), zap.Error(err))
		return nil, err
	}

	days := s.Days()
	metrics.SetDatasetDays(len(days))
	logger.Info("dataset loaded",
		zap.String("source", src.Locator()),
		zap.Int("days", len(days)),
		zap.Duration("took", time.Since(start)),
	)
	return s, nil
}

// Inspect logs timeslots that reference no day and dates listed more than once.
// Neither is rejected: orphans are never selected and the first day for a date wins.
func Inspect(data models.Dataset, logger *zap.Logger) (orphans int, duplicates []string) {
	if logger == nil {
		logger = zap.NewNop()
	}
	ids := make(map[models.ID]struct{}, len(data.Days))
	seen := make(map[string]struct{}, len(data.Days))
	for _, day := range data.Days {
		ids[day.ID] = struct{}{}
		if _, dup := seen[day.Date]; dup {
			duplicates = append(duplicates, day.Date)
			continue
		}
		seen[day.Date] = struct{}{}
	}
	for _, ts := range data.Timeslots {
		if _, ok := ids[ts.DayID]; !ok {
			orphans++
		}
	}
	if orphans > 0 {
		logger.Warn("timeslots reference unknown days", zap.Int("count", orphans))
	}
	if len(duplicates) > 0 {
		logger.Warn("dates listed more than once", zap.Strings("dates", duplicates))
	}
	return orphans, duplicates
}

// inspecting runs Inspect over every dataset fetched through it.
type inspecting struct {
	scheduler.DatasetSource
	logger *zap.Logger
}

func (s inspecting) Fetch(ctx context.Context) (models.Dataset, error) {
	data, err := s.DatasetSource.Fetch(ctx)
	if err == nil {
		Inspect(data, s.logger)
	}
	return data, err
}

// FromConfig builds the dataset source selected by cfg.Source.Kind, wrapped in the
// snapshot cache when enabled. The returned cleanup releases any connections.
func FromConfig(ctx context.Context, cfg *config.Config, logger *zap.Logger, metrics *service.MetricsService) (scheduler.DatasetSource, func(), error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var src scheduler.DatasetSource
	switch cfg.Source.Kind {
	case config.SourceHTTP, "":
		src = NewHTTP(cfg.Source.URL, cfg.Source.Timeout)
	case config.SourcePostgres:
		locator := fmt.Sprintf("postgres://%s:%d/%s", cfg.Database.Host, cfg.Database.Port, cfg.Database.Name)
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, cleanup, &scheduler.DataNotFoundError{Source: locator, Err: err}
		}
		closers = append(closers, func() { _ = db.Close() })
		src = NewPostgres(repository.NewScheduleRepository(db), locator)
	default:
		return nil, cleanup, fmt.Errorf("unknown schedule source %q", cfg.Source.Kind)
	}

	if !cfg.Snapshot.Enabled {
		return decorate(src, nil, 0, logger), cleanup, nil
	}
	client, err := cache.NewRedis(ctx, cfg.Redis)
	if err != nil {
		logger.Warn("snapshot cache disabled", zap.Error(err))
		return decorate(src, nil, 0, logger), cleanup, nil
	}
	closers = append(closers, func() { _ = client.Close() })
	snapshots := service.NewSnapshotService(repository.NewSnapshotRepository(client), metrics, cfg.Snapshot.CacheTTL, logger, true)
	return decorate(src, snapshots, cfg.Snapshot.CacheTTL, logger), cleanup, nil
}

// decorate wraps src in the snapshot cache, when one is given, and then in inspection,
// so cached datasets are inspected the same as fetched ones.
func decorate(src scheduler.DatasetSource, snapshots snapshotCache, ttl time.Duration, logger *zap.Logger) scheduler.DatasetSource {
	if snapshots != nil {
		src = NewCached(src, snapshots, ttl, logger)
	}
	return inspecting{DatasetSource: src, logger: logger}
}
