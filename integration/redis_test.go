//go:build redis

// Package integration contains integration tests for recall against a
// real Redis server. These tests are excluded from normal test runs due
// to build tags. To run them: go test -tags redis ./integration
package integration

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/huangsam/recall/core"
	"github.com/huangsam/recall/internal/contract"
	"github.com/huangsam/recall/internal/redistore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startRedis starts a Redis container and returns a connected store.
func startRedis(t *testing.T, ctx context.Context) *redistore.Store {
	t.Helper()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = redisC.Terminate(ctx) })

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	cfg := &contract.Config{
		StoreAddr:   fmt.Sprintf("%s:%s", host, port.Port()),
		StoreDB:     0,
		DialTimeout: contract.DefaultDialTimeout,
	}
	store, err := redistore.New(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// TestCacheAgainstRedis runs the full store/get/replay contract against
// a real server.
func TestCacheAgainstRedis(t *testing.T) {
	ctx := context.Background()
	store := startRedis(t, ctx)

	cache, err := core.New(ctx, store)
	require.NoError(t, err)

	// Round-trip text and integer values
	id1, err := cache.Store(ctx, "foo")
	require.NoError(t, err)
	text, err := cache.GetString(ctx, id1)
	require.NoError(t, err)
	assert.Equal(t, "foo", text)

	id2, err := cache.Store(ctx, 123)
	require.NoError(t, err)
	n, err := cache.GetInt(ctx, id2)
	require.NoError(t, err)
	assert.Equal(t, int64(123), n)

	// Instrumentation invariants
	count, err := cache.CallCount(ctx, core.StoreOp)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	records, err := cache.History(ctx, core.StoreOp)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "('foo',)", records[0].Input)
	assert.Equal(t, id1, records[0].Output)
	assert.Equal(t, "(123,)", records[1].Input)
	assert.Equal(t, id2, records[1].Output)
}

// TestConcurrentStoresAgainstRedis stresses the write path with
// parallel callers. Individual commands are atomic server-side, so the
// final counter and history lengths must equal the caller count even
// though the per-call sequence is not atomic as a whole.
func TestConcurrentStoresAgainstRedis(t *testing.T) {
	ctx := context.Background()
	store := startRedis(t, ctx)

	cache, err := core.New(ctx, store)
	require.NoError(t, err)

	const callers = 64
	var wg sync.WaitGroup
	errs := make([]error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = cache.Store(ctx, fmt.Sprintf("parallel-%d", i))
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "Caller %d failed", i)
	}

	count, err := cache.CallCount(ctx, core.StoreOp)
	require.NoError(t, err)
	assert.Equal(t, int64(callers), count)

	status, err := cache.OperationStatus(ctx, core.StoreOp)
	require.NoError(t, err)
	assert.Equal(t, int64(callers), status.Inputs)
	assert.Equal(t, int64(callers), status.Outputs)
	assert.False(t, status.Drift, "Totals settle once all callers finish")
}
