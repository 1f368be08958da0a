package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/employee-availability-api/internal/models"
	appErrors "github.com/noah-isme/employee-availability-api/pkg/errors"
)

type snapshotRepoStub struct {
	items  map[string]models.Dataset
	ttls   map[string]time.Duration
	getErr error
	setErr error
}

func newSnapshotRepoStub() *snapshotRepoStub {
	return &snapshotRepoStub{items: map[string]models.Dataset{}, ttls: map[string]time.Duration{}}
}

func (r *snapshotRepoStub) Get(ctx context.Context, locator string) (*models.Dataset, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	data, ok := r.items[locator]
	if !ok {
		return nil, appErrors.ErrCacheMiss
	}
	return &data, nil
}

func (r *snapshotRepoStub) Set(ctx context.Context, locator string, data models.Dataset, ttl time.Duration) error {
	if r.setErr != nil {
		return r.setErr
	}
	r.items[locator] = data
	r.ttls[locator] = ttl
	return nil
}

func TestSnapshotServiceRoundTrip(t *testing.T) {
	repo := newSnapshotRepoStub()
	metrics := NewMetricsService()
	svc := NewSnapshotService(repo, metrics, time.Minute, nil, true)
	ctx := context.Background()
	data := models.Dataset{Days: []models.Day{{ID: "1", Date: "2025-02-15", Start: "09:00", End: "21:00"}}}

	_, found, err := svc.Get(ctx, "src")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, svc.Set(ctx, "src", data, 0))
	assert.Equal(t, time.Minute, repo.ttls["src"])

	got, found, err := svc.Get(ctx, "src")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, data, got)

	body := scrape(t, metrics)
	assert.Contains(t, body, "dataset_snapshot_cache_hits_total 1")
	assert.Contains(t, body, "dataset_snapshot_cache_misses_total 1")
}

func TestSnapshotServiceDisabled(t *testing.T) {
	repo := newSnapshotRepoStub()
	svc := NewSnapshotService(repo, nil, 0, nil, false)

	assert.False(t, svc.Enabled())
	require.NoError(t, svc.Set(context.Background(), "src", models.Dataset{}, time.Second))
	assert.Empty(t, repo.items)

	_, found, err := svc.Get(context.Background(), "src")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSnapshotServiceRepositoryErrors(t *testing.T) {
	repo := newSnapshotRepoStub()
	repo.getErr = errors.New("redis down")
	repo.setErr = errors.New("redis down")
	svc := NewSnapshotService(repo, nil, time.Minute, nil, true)

	_, found, err := svc.Get(context.Background(), "src")
	assert.Error(t, err)
	assert.False(t, found)
	assert.Error(t, svc.Set(context.Background(), "src", models.Dataset{}, time.Second))
}
