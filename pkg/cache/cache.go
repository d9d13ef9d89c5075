// Package cache provides a small content-addressed artifact cache.
//
// The CLI uses it to skip re-rendering graphs whose input and rendering
// options have not changed: the cache key is a hash over both, so any
// change produces a miss. Entries have no expiry; a rendered artifact
// for a given input never goes stale.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Cache stores opaque byte blobs under string keys.
type Cache interface {
	// Get returns the blob for key and whether it was present.
	Get(key string) ([]byte, bool, error)

	// Set stores a blob under key, replacing any previous value.
	Set(key string, data []byte) error

	// Delete removes the blob for key. Deleting an absent key is not an
	// error.
	Delete(key string) error
}

// Key derives a cache key by hashing the given components. Components are
// JSON-encoded before hashing, so any mix of strings, numbers and byte
// slices works; the same components always produce the same key.
func Key(parts ...any) string {
	data, _ := json.Marshal(parts)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
