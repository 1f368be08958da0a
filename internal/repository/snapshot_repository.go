package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/noah-isme/employee-availability-api/internal/models"
	appErrors "github.com/noah-isme/employee-availability-api/pkg/errors"
)

const snapshotKeyPrefix = "availability:snapshot:"

// SnapshotRepository stores fetched schedule datasets in Redis.
type SnapshotRepository struct {
	client redis.Cmdable
}

// NewSnapshotRepository constructs a snapshot repository. A nil client disables it.
func NewSnapshotRepository(client redis.Cmdable) *SnapshotRepository {
	return &SnapshotRepository{client: client}
}

// SnapshotKey returns the redis key for the dataset fetched from locator.
func SnapshotKey(locator string) string {
	return snapshotKeyPrefix + locator
}

// Get loads the dataset cached for locator.
func (r *SnapshotRepository) Get(ctx context.Context, locator string) (*models.Dataset, error) {
	if r.client == nil {
		return nil, appErrors.ErrCacheMiss
	}

	key := SnapshotKey(locator)
	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, appErrors.ErrCacheMiss
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}

	var data models.Dataset
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot %s: %w", key, err)
	}
	return &data, nil
}

// Set stores the dataset for locator with the given TTL.
func (r *SnapshotRepository) Set(ctx context.Context, locator string, data models.Dataset, ttl time.Duration) error {
	if r.client == nil {
		return nil
	}

	key := SnapshotKey(locator)
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal snapshot %s: %w", key, err)
	}
	if err := r.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
