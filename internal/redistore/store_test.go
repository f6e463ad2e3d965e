package redistore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/huangsam/recall/internal/contract"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewFromClient(client)
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

func TestStorePrimitives(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "k", "v"))

		raw, found, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []byte("v"), raw)
	})

	t.Run("get absent", func(t *testing.T) {
		raw, found, err := store.Get(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, raw)
	})

	t.Run("incr from absent", func(t *testing.T) {
		n, err := store.Incr(ctx, "counter")
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = store.Incr(ctx, "counter")
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("exists", func(t *testing.T) {
		present, err := store.Exists(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, present)

		require.NoError(t, store.Set(ctx, "present", 1))
		present, err = store.Exists(ctx, "present")
		require.NoError(t, err)
		assert.True(t, present)
	})

	t.Run("rpush preserves order", func(t *testing.T) {
		require.NoError(t, store.RPush(ctx, "list", "first"))
		require.NoError(t, store.RPush(ctx, "list", "second"))
		require.NoError(t, store.RPush(ctx, "list", "third"))

		items, err := store.LRange(ctx, "list", 0, -1)
		require.NoError(t, err)
		assert.Equal(t, []string{"first", "second", "third"}, items)
	})

	t.Run("lrange on absent list", func(t *testing.T) {
		items, err := store.LRange(ctx, "no-list", 0, -1)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("flushdb removes everything", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "doomed", "v"))
		require.NoError(t, store.FlushDB(ctx))

		_, found, err := store.Get(ctx, "doomed")
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestStoreConnectivity(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)

	assert.True(t, store.Connected(ctx), "Live store should answer pings")

	mr.Close()
	assert.False(t, store.Connected(ctx), "Closed store should fail pings")

	_, _, err := store.Get(ctx, "k")
	assert.Error(t, err, "Commands against a closed store should surface errors")
}

func TestNewRejectsUnreachableStore(t *testing.T) {
	ctx := context.Background()

	// Port from a store that is no longer listening
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	cfg := &contract.Config{
		StoreAddr:   addr,
		StoreDB:     0,
		DialTimeout: time.Second,
	}
	_, err := New(ctx, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to store")
}

func TestNewConnects(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	cfg := &contract.Config{
		StoreAddr:   mr.Addr(),
		StoreDB:     0,
		DialTimeout: time.Second,
	}
	store, err := New(ctx, cfg)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	assert.True(t, store.Connected(ctx))
}
