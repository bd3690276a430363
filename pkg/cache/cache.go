// Package cache stores generated roadmaps, suggestion lists and rendered
// artifacts so repeated requests for the same role skip the catalog and the
// renderers.
//
// Three backends satisfy [Cache]:
//   - [FileCache]: one JSON envelope per key under a directory (CLI default)
//   - [RedisCache]: shared cache for several server instances
//   - [NullCache]: caching disabled
//
// Keys are produced by a [Keyer] so that every component hashes the same
// inputs the same way. [ScopedKeyer] prefixes keys for isolated namespaces.
package cache

import (
	"context"
	"encoding/json"
	"time"
)

// DefaultTTL is used when no TTL is configured.
const DefaultTTL = 24 * time.Hour

// Cache is a byte-oriented key/value store with expiry.
//
// Get reports a miss as (nil, false, nil); errors are reserved for backend
// failures. A ttl of zero means the entry does not expire.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// GetJSON reads key and decodes it into v. Undecodable entries count as a
// miss.
func GetJSON(ctx context.Context, c Cache, key string, v any) (bool, error) {
	data, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, nil
	}
	return true, nil
}

// SetJSON encodes v and stores it under key.
func SetJSON(ctx context.Context, c Cache, key string, v any, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, data, ttl)
}
