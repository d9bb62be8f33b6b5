// Package store provides the tool metadata cache consumed by the tool client.
// The backend choice (in-memory, Redis) does not affect client behavior
// beyond hit/miss timing: entries expire by TTL only, writers are
// last-writer-wins, readers need no coordination.
package store

import (
	"context"
	"time"
)

type MetadataStore interface {
	// Get returns the value stored under key, or found=false when the key
	// is absent or its TTL has expired.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	// Set stores value under key for the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
