package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/AnthonyPaton1/taxi-booking-app-sub003/internal/pkg/constants"
)

// RedisStore keeps entries in Redis so every replica shares them. Each entry
// is a JSON value with its own TTL, and a per-driver set indexes the entry
// keys for invalidation.
type RedisStore struct {
	client   *redis.Client
	indexTTL time.Duration
}

// NewRedisStore creates a store. indexTTL must be at least the longest
// entry TTL the cache will ask for.
func NewRedisStore(client *redis.Client, indexTTL time.Duration) *RedisStore {
	if indexTTL <= 0 {
		indexTTL = DefaultTTL
	}
	return &RedisStore{client: client, indexTTL: indexTTL}
}

func entryKey(driverID, fingerprint string) string {
	return fmt.Sprintf(constants.KeyMatchCacheEntry, driverID, fingerprint)
}

func indexKey(driverID string) string {
	return fmt.Sprintf(constants.KeyMatchCacheIndex, driverID)
}

// Get loads the entry for driverID and fingerprint
func (s *RedisStore) Get(ctx context.Context, driverID, fingerprint string) ([]Entry, bool, error) {
	data, err := s.client.Get(ctx, entryKey(driverID, fingerprint)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get match cache entry: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, false, fmt.Errorf("failed to decode match cache entry: %w", err)
	}
	return entries, true, nil
}

// Set writes the entry and records it in the driver's index
func (s *RedisStore) Set(ctx context.Context, driverID, fingerprint string, entries []Entry, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode match cache entry: %w", err)
	}

	key := entryKey(driverID, fingerprint)
	index := indexKey(driverID)
	indexTTL := s.indexTTL
	if ttl > indexTTL {
		indexTTL = ttl
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, key, data, ttl)
		pipe.SAdd(ctx, index, key)
		pipe.Expire(ctx, index, indexTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to store match cache entry: %w", err)
	}
	return nil
}

// DeleteDriver removes every indexed entry for driverID and the index itself
func (s *RedisStore) DeleteDriver(ctx context.Context, driverID string) error {
	index := indexKey(driverID)

	keys, err := s.client.SMembers(ctx, index).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("failed to read match cache index: %w", err)
	}

	keys = append(keys, index)
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete match cache entries: %w", err)
	}
	return nil
}
