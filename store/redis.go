package store

import (
	"context"
	"path"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"
)

// The redis store implements the MetadataStore interface using Redis as the
// backend, so discovered tool lists can be shared across processes.
// Keys are namespaced as `/<prefix>/mcptools/<key>`, allowing multiple
// deployments to use one Redis instance.

type redisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client, prefix string) MetadataStore {
	return &redisStore{
		client: client,
		prefix: prefix,
	}
}

func (m *redisStore) storeKey(key string) string {
	return path.Join(m.prefix, "mcptools", key)
}

func (m *redisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := m.client.Get(ctx, m.storeKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, errors.Wrap(err, "failed to get metadata from Redis")
	}
	return data, true, nil
}

func (m *redisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := m.client.Set(ctx, m.storeKey(key), value, ttl).Err()
	if err != nil {
		return errors.Wrap(err, "failed to store metadata in Redis")
	}
	return nil
}
