// Package redistore adapts the go-redis client to the store contract.
package redistore

import (
	"context"
	"errors"
	"fmt"

	"github.com/huangsam/recall/internal/contract"
	"github.com/redis/go-redis/v9"
)

// Store is a Redis-backed implementation of contract.KeyValueStore.
type Store struct {
	client *redis.Client
}

var _ contract.KeyValueStore = &Store{} // Compile-time check
var _ contract.Connected = &Store{}     // Compile-time check

// New dials the store described by cfg and verifies the connection with
// a ping before returning.
func New(ctx context.Context, cfg *contract.Config) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.StoreAddr,
		DB:          cfg.StoreDB,
		Password:    cfg.StorePassword,
		DialTimeout: cfg.DialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to store at %s: %w. Check that the server is running and the address is reachable", cfg.StoreAddr, err)
	}

	return &Store{client: client}, nil
}

// NewFromClient wraps an existing client without pinging it.
// Useful for tests that manage the client lifecycle themselves.
func NewFromClient(client *redis.Client) *Store {
	return &Store{client: client}
}

// Set stores a scalar value under key with no expiration.
func (s *Store) Set(ctx context.Context, key string, value any) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %q: %w", key, err)
	}
	return nil
}

// Get returns the raw bytes for key, reporting absence via the second
// return value rather than an error.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get %q: %w", key, err)
	}
	return raw, true, nil
}

// Incr increments the integer at key by one and returns the new value.
func (s *Store) Incr(ctx context.Context, key string) (int64, error) {
	n, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment %q: %w", key, err)
	}
	return n, nil
}

// Exists reports whether key is present.
func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check %q: %w", key, err)
	}
	return n > 0, nil
}

// RPush appends value to the list at key.
func (s *Store) RPush(ctx context.Context, key string, value any) error {
	if err := s.client.RPush(ctx, key, value).Err(); err != nil {
		return fmt.Errorf("failed to append to %q: %w", key, err)
	}
	return nil
}

// LRange returns the list elements at key between start and stop inclusive.
func (s *Store) LRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	items, err := s.client.LRange(ctx, key, start, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read list %q: %w", key, err)
	}
	return items, nil
}

// FlushDB synchronously removes every key in the selected database.
func (s *Store) FlushDB(ctx context.Context) error {
	if err := s.client.FlushDB(ctx).Err(); err != nil {
		return fmt.Errorf("failed to flush store: %w", err)
	}
	return nil
}

// Connected reports whether the handle still answers pings.
func (s *Store) Connected(ctx context.Context) bool {
	return s.client.Ping(ctx).Err() == nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.client.Close()
}
