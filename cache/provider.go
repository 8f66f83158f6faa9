// Package cache stores serialized HTTP responses for the caching filter.
package cache

import "time"

// Provider is storage for serialized responses keyed by an opaque string.
// Entries carry an expiration time; an expired entry is treated as absent.
//
// Implementations must be thread-safe.
type Provider interface {
	// Get returns the stored bytes for the given key, if present.
	// The boolean is false for missing and expired entries; in the
	// expired case the provider should also purge the entry.
	Get(key string) ([]byte, bool, error)
	// Put stores the given bytes under the key with an expiration time.
	Put(key string, expires time.Time, bytes []byte) error
	// Has checks if the key exists in the cache.
	Has(key string) bool
	// Purge removes the entry for the given key.
	Purge(key string)
}
