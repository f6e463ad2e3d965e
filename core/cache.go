// Package core implements an instrumented cache over an external
// key-value store. Values are stored under generated identifiers, and
// every write is decorated with call counting and call-history
// recording, both persisted in the same store.
package core

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/huangsam/recall/internal/contract"
)

// StoreOp is the qualified name of the Store operation. It doubles as
// the counter key and the prefix of the history list keys.
const StoreOp = "Cache.Store"

// Cache stores scalar values in an external key-value store and records
// per-operation call counts and call history alongside them.
type Cache struct {
	kv contract.KeyValueStore
}

// New binds a cache to the store handle and synchronously clears all
// existing data in it.
func New(ctx context.Context, kv contract.KeyValueStore) (*Cache, error) {
	if err := kv.FlushDB(ctx); err != nil {
		return nil, fmt.Errorf("failed to reset store: %w", err)
	}
	return &Cache{kv: kv}, nil
}

// Attach binds a cache to the store handle without clearing it.
// Useful when another process owns the data lifecycle, e.g. a CLI
// invocation reading values stored by an earlier one.
func Attach(kv contract.KeyValueStore) *Cache {
	return &Cache{kv: kv}
}

// Store persists value under a freshly generated identifier and returns
// that identifier.
//
// The call is instrumented in a fixed order: the operation counter is
// bumped first, then the underlying write runs, then the input display
// form and the produced identifier are appended to the history lists.
// Output history therefore only ever holds identifiers of successful
// writes, while the counter also covers failed ones.
func (c *Cache) Store(ctx context.Context, value any) (string, error) {
	if err := validateScalar(value); err != nil {
		return "", err
	}

	rec := c.recorder(StoreOp)
	if err := rec.countCall(ctx); err != nil {
		return "", err
	}

	id := uuid.NewString()
	if err := c.kv.Set(ctx, id, value); err != nil {
		return "", fmt.Errorf("failed to store value: %w", err)
	}

	if err := rec.recordCall(ctx, DisplayArgs(value), id); err != nil {
		return "", err
	}
	return id, nil
}

// Get returns the raw bytes stored under key. The second return value
// is false when the key is absent.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return c.kv.Get(ctx, key)
}

// GetAs fetches key and applies convert to the raw bytes. Absent keys
// surface as contract.ErrNotFound, so conversions never see nil input.
func GetAs[T any](ctx context.Context, c *Cache, key string, convert func([]byte) (T, error)) (T, error) {
	var zero T
	raw, found, err := c.Get(ctx, key)
	if err != nil {
		return zero, err
	}
	if !found {
		return zero, fmt.Errorf("key %q: %w", key, contract.ErrNotFound)
	}
	return convert(raw)
}

// GetString returns the value stored under key decoded as UTF-8 text.
func (c *Cache) GetString(ctx context.Context, key string) (string, error) {
	return GetAs(ctx, c, key, func(raw []byte) (string, error) {
		return string(raw), nil
	})
}

// GetInt returns the value stored under key parsed as a base-10 integer.
// Non-numeric bytes surface as contract.ErrBadFormat.
func (c *Cache) GetInt(ctx context.Context, key string) (int64, error) {
	return GetAs(ctx, c, key, func(raw []byte) (int64, error) {
		n, err := strconv.ParseInt(string(raw), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("value %q is not a base-10 integer: %w", raw, contract.ErrBadFormat)
		}
		return n, nil
	})
}

// validateScalar rejects values outside the scalar kinds the cache
// accepts: text, binary, integer, and real.
func validateScalar(value any) error {
	switch value.(type) {
	case string, []byte,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return nil
	default:
		return fmt.Errorf("%w: %T", contract.ErrUnsupportedValue, value)
	}
}
