package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "prepay-planner:plan:"

// Redis is a Redis-backed implementation of Repository. Each owner's record
// lives under a single key as a JSON document; the optimistic version check
// runs inside a WATCH transaction so a concurrent save aborts rather than
// silently winning.
type Redis struct {
	client *redis.Client
}

// NewRedis creates a plan repository backed by the Redis instance at addr.
func NewRedis(addr string) *Redis {
	return &Redis{
		client: redis.NewClient(&redis.Options{
			Addr: addr,
		}),
	}
}

func redisKey(owner string) string {
	return redisKeyPrefix + owner
}

// Load returns the record for the owner, or ErrNotFound.
func (r *Redis) Load(ctx context.Context, owner string) (*PlanRecord, error) {
	val, err := r.client.Get(ctx, redisKey(owner)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load plan record: %w", err)
	}

	var record PlanRecord
	if err := json.Unmarshal([]byte(val), &record); err != nil {
		return nil, fmt.Errorf("failed to decode plan record: %w", err)
	}
	return &record, nil
}

// Save writes the record under its owner key with an optimistic version check.
func (r *Redis) Save(ctx context.Context, record *PlanRecord, expectedVersion int64) (*PlanRecord, error) {
	key := redisKey(record.Owner)
	saved := *record

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		var currentVersion int64
		val, err := tx.Get(ctx, key).Result()
		switch {
		case errors.Is(err, redis.Nil):
			// No record yet; expectedVersion must be 0.
		case err != nil:
			return err
		default:
			var current PlanRecord
			if err := json.Unmarshal([]byte(val), &current); err != nil {
				return fmt.Errorf("failed to decode plan record: %w", err)
			}
			currentVersion = current.Version
		}

		if expectedVersion != currentVersion {
			return ErrVersionConflict
		}
		saved.Version = currentVersion + 1

		payload, err := json.Marshal(&saved)
		if err != nil {
			return fmt.Errorf("failed to encode plan record: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, 0)
			return nil
		})
		return err
	}, key)

	if errors.Is(err, ErrVersionConflict) || errors.Is(err, redis.TxFailedErr) {
		return nil, ErrVersionConflict
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save plan record: %w", err)
	}
	return &saved, nil
}
