// Package cache stores rendered artifacts keyed by the hash of the shelf
// description and the output format.
//
// Three backends implement [Cache]:
//
//   - [FileCache]: one JSON file per entry below a directory, used by the CLI
//   - [RedisCache]: a shared cache for the render service
//   - [NullCache]: stores nothing, used by --no-cache and in tests
//
// Keys are built by a [Keyer] so that every backend agrees on them; a
// [ScopedKeyer] adds a namespace prefix when several deployments share one
// Redis.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the value for key and whether it was present.
	// An expired or unreadable entry is a miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases the backend's resources.
	Close() error
}
