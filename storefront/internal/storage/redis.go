package storage

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// RedisScratchStore stores entries as plain strings under a "scratch:" prefix.
// Every write refreshes the TTL, so an active session never loses its cart.
type RedisScratchStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisScratchStore(client *redis.Client, ttl time.Duration) *RedisScratchStore {
	return &RedisScratchStore{Client: client, TTL: ttl}
}

func (s *RedisScratchStore) key(key string) string {
	return "scratch:" + key
}

func (s *RedisScratchStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := s.Client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "redis get %s", key)
	}
	return value, true, nil
}

func (s *RedisScratchStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.Client.Set(ctx, s.key(key), value, s.TTL).Err(); err != nil {
		return errors.Wrapf(err, "redis set %s", key)
	}
	return nil
}

func (s *RedisScratchStore) Delete(ctx context.Context, key string) error {
	if err := s.Client.Del(ctx, s.key(key)).Err(); err != nil {
		return errors.Wrapf(err, "redis del %s", key)
	}
	return nil
}
