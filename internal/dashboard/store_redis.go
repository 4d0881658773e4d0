package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "dashboard:session:"

// RedisStore keeps session state in Redis so the gateway can run with more
// than one replica. State is stored as a JSON blob under a TTL'd key.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore constructs a RedisStore on an existing client.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &RedisStore{client: client, ttl: ttl}
}

// Get returns the state stored for sessionID, or ErrNotFound.
func (r *RedisStore) Get(ctx context.Context, sessionID string) (State, error) {
	raw, err := r.client.Get(ctx, redisKeyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return State{}, ErrNotFound
		}
		return State{}, fmt.Errorf("redis get session %s: %w", sessionID, err)
	}
	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		// Unreadable state is treated as absent rather than wedging the session.
		return State{}, ErrNotFound
	}
	return state, nil
}

// Put stores the state for sessionID, refreshing its TTL.
func (r *RedisStore) Put(ctx context.Context, sessionID string, state State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal session %s: %w", sessionID, err)
	}
	if err := r.client.Set(ctx, redisKeyPrefix+sessionID, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set session %s: %w", sessionID, err)
	}
	return nil
}

var _ Store = (*RedisStore)(nil)
