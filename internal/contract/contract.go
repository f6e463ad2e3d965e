// Package contract provides interfaces and shared utilities for the recall CLI's internal architecture.
package contract

import "context"

// KeyValueStore defines the store primitives the cache layer relies on.
// It mirrors the native command set of the backing store so the cache
// stays a thin pass-through. This allows the store to be mocked for testing.
type KeyValueStore interface {
	// Set stores a scalar value under key.
	Set(ctx context.Context, key string, value any) error

	// Get returns the raw bytes for key. The second return value is false
	// when the key is absent.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Incr increments the integer at key by one, treating an absent key
	// as zero, and returns the new value.
	Incr(ctx context.Context, key string) (int64, error)

	// Exists reports whether key is present.
	Exists(ctx context.Context, key string) (bool, error)

	// RPush appends value to the list at key.
	RPush(ctx context.Context, key string, value any) error

	// LRange returns the list elements at key between start and stop
	// inclusive. Negative indexes count from the tail, so (0, -1) is the
	// full list.
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)

	// FlushDB synchronously removes every key in the store.
	FlushDB(ctx context.Context) error

	// Close releases the underlying connection.
	Close() error
}

// Connected is the capability a store handle must expose for replay to
// treat it as a live connection.
type Connected interface {
	Connected(ctx context.Context) bool
}
