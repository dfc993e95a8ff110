// Package cache stores computed branding reports between runs.
//
// The [Cache] interface is byte-oriented; callers serialize their own
// values. [FileCache] keeps entries on disk for the CLI and [NullCache]
// disables caching. Keys come from a [Keyer] so that every option that
// changes the output also changes the key.
package cache

import (
	"context"
	"time"
)

// TTLReport is how long a branding report stays valid.
const TTLReport = 7 * 24 * time.Hour

// Cache is a key/value store with optional expiry.
type Cache interface {
	// Get returns the value for key and whether it was found.
	// An expired entry counts as a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}
