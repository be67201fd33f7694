//go:build unit

package staging_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"gift-commerce/internal/domain/payment"
	"gift-commerce/internal/infra/staging"
	"gift-commerce/internal/pkg/clock"
	"gift-commerce/internal/pkg/errs"
	"gift-commerce/internal/usecase/shared"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newBatch(t *testing.T, token string) *payment.StagedBatch {
	t.Helper()

	line, err := payment.NewLineRequest(uuid.New(), []uuid.UUID{uuid.New()}, 2, 20000)
	require.NoError(t, err)

	batch, err := payment.NewStagedBatch(token, "kakao-1", []payment.LineRequest{line}, []string{"order-" + token}, baseTime)
	require.NoError(t, err)
	return batch
}

func newRedisStore(t *testing.T) (*staging.RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return staging.NewRedisStore(client, "payment:staging:"), mr
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()

	t.Run("success: put then take returns the batch once", func(t *testing.T) {
		store, mr := newRedisStore(t)
		batch := newBatch(t, "tok-1")

		require.NoError(t, store.Put(ctx, "tok-1", batch, time.Minute))
		assert.True(t, mr.Exists("payment:staging:tok-1"))

		got, ok, err := store.TakeIfPresent(ctx, "tok-1")
		require.NoError(t, err)
		require.True(t, ok)
		if diff := cmp.Diff(batch, got); diff != "" {
			t.Errorf("batch mismatch (-want +got):\n%s", diff)
		}

		_, ok, err = store.TakeIfPresent(ctx, "tok-1")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("error: put on a live key", func(t *testing.T) {
		store, _ := newRedisStore(t)

		require.NoError(t, store.Put(ctx, "tok-1", newBatch(t, "tok-1"), time.Minute))
		err := store.Put(ctx, "tok-1", newBatch(t, "tok-1"), time.Minute)
		assert.True(t, errs.Is(err, shared.ErrStagingKeyExists))
	})

	t.Run("success: expired entry is absent", func(t *testing.T) {
		store, mr := newRedisStore(t)

		require.NoError(t, store.Put(ctx, "tok-1", newBatch(t, "tok-1"), time.Minute))
		mr.FastForward(time.Minute + time.Second)

		_, ok, err := store.TakeIfPresent(ctx, "tok-1")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("success: concurrent takes have exactly one winner", func(t *testing.T) {
		store, _ := newRedisStore(t)
		require.NoError(t, store.Put(ctx, "tok-1", newBatch(t, "tok-1"), time.Minute))

		var winners atomic.Int32
		var wg sync.WaitGroup
		for range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, ok, err := store.TakeIfPresent(ctx, "tok-1")
				assert.NoError(t, err)
				if ok {
					winners.Add(1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), winners.Load())
	})

	t.Run("error: corrupt payload", func(t *testing.T) {
		store, mr := newRedisStore(t)
		require.NoError(t, mr.Set("payment:staging:tok-1", "{not json"))

		_, ok, err := store.TakeIfPresent(ctx, "tok-1")
		assert.False(t, ok)
		assert.True(t, errs.Is(err, staging.ErrCorruptBatch))
	})

	t.Run("error: non-positive ttl", func(t *testing.T) {
		store, _ := newRedisStore(t)

		err := store.Put(ctx, "tok-1", newBatch(t, "tok-1"), 0)
		assert.True(t, errs.Is(err, staging.ErrInvalidTTL))
	})

	t.Run("error: redis unreachable", func(t *testing.T) {
		store, mr := newRedisStore(t)
		mr.Close()

		_, _, err := store.TakeIfPresent(ctx, "tok-1")
		assert.Error(t, err)
	})
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("success: entry expires with the clock", func(t *testing.T) {
		clk := clock.NewMockClock(baseTime)
		store := staging.NewMemoryStore(clk)

		require.NoError(t, store.Put(ctx, "tok-1", newBatch(t, "tok-1"), time.Minute))
		clk.Add(time.Minute)

		_, ok, err := store.TakeIfPresent(ctx, "tok-1")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, 0, store.Len())
	})

	t.Run("success: expired key can be reused", func(t *testing.T) {
		clk := clock.NewMockClock(baseTime)
		store := staging.NewMemoryStore(clk)

		require.NoError(t, store.Put(ctx, "tok-1", newBatch(t, "tok-1"), time.Minute))
		assert.True(t, errs.Is(store.Put(ctx, "tok-1", newBatch(t, "tok-1"), time.Minute), shared.ErrStagingKeyExists))

		clk.Add(2 * time.Minute)
		require.NoError(t, store.Put(ctx, "tok-1", newBatch(t, "tok-1"), time.Minute))
	})

	t.Run("success: taken batch is a copy", func(t *testing.T) {
		store := staging.NewMemoryStore(clock.NewMockClock(baseTime))
		batch := newBatch(t, "tok-1")
		require.NoError(t, store.Put(ctx, "tok-1", batch, time.Minute))

		batch.Lines[0].Quantity = 99

		got, ok, err := store.TakeIfPresent(ctx, "tok-1")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 2, got.Lines[0].Quantity)
	})

	t.Run("success: concurrent takes have exactly one winner", func(t *testing.T) {
		store := staging.NewMemoryStore(clock.NewMockClock(baseTime))
		require.NoError(t, store.Put(ctx, "tok-1", newBatch(t, "tok-1"), time.Minute))

		var winners atomic.Int32
		var wg sync.WaitGroup
		for range 32 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, ok, _ := store.TakeIfPresent(ctx, "tok-1"); ok {
					winners.Add(1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), winners.Load())
	})
}
