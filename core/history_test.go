package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallCount(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t)

	t.Run("absent counter reads as zero", func(t *testing.T) {
		count, err := cache.CallCount(ctx, StoreOp)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})

	t.Run("counter tracks calls", func(t *testing.T) {
		_, err := cache.Store(ctx, "a")
		require.NoError(t, err)
		_, err = cache.Store(ctx, "b")
		require.NoError(t, err)

		count, err := cache.CallCount(ctx, StoreOp)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}

func TestOperationStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("balanced instrumentation", func(t *testing.T) {
		cache, _ := newTestCache(t)
		_, err := cache.Store(ctx, "a")
		require.NoError(t, err)

		status, err := cache.OperationStatus(ctx, StoreOp)
		require.NoError(t, err)
		assert.Equal(t, StoreOp, status.Operation)
		assert.Equal(t, int64(1), status.Calls)
		assert.Equal(t, int64(1), status.Inputs)
		assert.Equal(t, int64(1), status.Outputs)
		assert.False(t, status.Drift)
	})

	t.Run("counter ahead of history flags drift", func(t *testing.T) {
		cache, _ := newTestCache(t)
		rec := cache.recorder(StoreOp)
		require.NoError(t, rec.countCall(ctx))

		status, err := cache.OperationStatus(ctx, StoreOp)
		require.NoError(t, err)
		assert.Equal(t, int64(1), status.Calls)
		assert.Equal(t, int64(0), status.Inputs)
		assert.True(t, status.Drift)
	})
}
