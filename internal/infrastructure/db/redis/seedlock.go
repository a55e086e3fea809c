package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const seedLockTTL = 24 * time.Hour

// SeedLock guards the demo-data seeder against concurrent or repeated runs.
// Each dataset name is locked once per TTL window via SET NX.
type SeedLock struct {
	client *redis.Client
}

// NewSeedLock creates a SeedLock wrapping the given Redis client.
func NewSeedLock(client *redis.Client) *SeedLock {
	return &SeedLock{client: client}
}

// Acquire attempts to take the lock for the named dataset. It returns false
// when another run already holds it.
func (l *SeedLock) Acquire(ctx context.Context, dataset string) (bool, error) {
	ok, err := l.client.SetNX(ctx, l.key(dataset), "1", seedLockTTL).Result()
	if err != nil {
		return false, fmt.Errorf("seed lock acquire: %w", err)
	}
	return ok, nil
}

// Release drops the lock so the dataset can be seeded again.
func (l *SeedLock) Release(ctx context.Context, dataset string) error {
	if err := l.client.Del(ctx, l.key(dataset)).Err(); err != nil {
		return fmt.Errorf("seed lock release: %w", err)
	}
	return nil
}

func (l *SeedLock) key(dataset string) string {
	return fmt.Sprintf("seed:%s", dataset)
}
