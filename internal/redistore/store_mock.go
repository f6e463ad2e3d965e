package redistore

import (
	"context"

	"github.com/huangsam/recall/internal/contract"
	"github.com/stretchr/testify/mock"
)

// MockStore is a mock implementation of KeyValueStore for testing.
type MockStore struct {
	mock.Mock
}

var _ contract.KeyValueStore = &MockStore{} // Compile-time check
var _ contract.Connected = &MockStore{}     // Compile-time check

// Set implements the KeyValueStore interface.
func (m *MockStore) Set(ctx context.Context, key string, value any) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

// Get implements the KeyValueStore interface.
func (m *MockStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	args := m.Called(ctx, key)
	raw, _ := args.Get(0).([]byte)
	return raw, args.Bool(1), args.Error(2)
}

// Incr implements the KeyValueStore interface.
func (m *MockStore) Incr(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}

// Exists implements the KeyValueStore interface.
func (m *MockStore) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

// RPush implements the KeyValueStore interface.
func (m *MockStore) RPush(ctx context.Context, key string, value any) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

// LRange implements the KeyValueStore interface.
func (m *MockStore) LRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	args := m.Called(ctx, key, start, stop)
	items, _ := args.Get(0).([]string)
	return items, args.Error(1)
}

// FlushDB implements the KeyValueStore interface.
func (m *MockStore) FlushDB(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Connected implements the Connected capability.
func (m *MockStore) Connected(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

// Close implements the KeyValueStore interface.
func (m *MockStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
