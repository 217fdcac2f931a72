package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/Nwachukwuchinedu/Creative-Stitches/pkg/errors"
)

// StateRepository implements repository.StateRepository using Redis. Values
// are opaque serialized blobs; the TTL keeps abandoned session state from
// accumulating forever.
type StateRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStateRepository creates a new Redis-backed state repository.
func NewStateRepository(client *redis.Client, ttl time.Duration) *StateRepository {
	return &StateRepository{
		client: client,
		ttl:    ttl,
	}
}

// Load retrieves the blob stored under key.
func (r *StateRepository) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.NotFound("state", key)
		}
		return nil, fmt.Errorf("redis get state: %w", err)
	}
	return data, nil
}

// Save writes the blob under key with the configured TTL.
func (r *StateRepository) Save(ctx context.Context, key string, data []byte) error {
	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set state: %w", err)
	}
	return nil
}

// Delete removes the key.
func (r *StateRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del state: %w", err)
	}
	return nil
}
