//go:build unit

package staging_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"gift-commerce/internal/infra"
	"gift-commerce/internal/infra/query"
	"gift-commerce/internal/infra/staging"
	"gift-commerce/internal/pkg/clock"
	"gift-commerce/internal/pkg/errs"
	"gift-commerce/internal/pkg/pgconv"
	"gift-commerce/internal/usecase/shared"
	stagingmock "gift-commerce/tests/mock/staging"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use the queries mock instead.")
}

func TestPostgresStore_Put(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		setupMock func(*stagingmock.MockStagedBatchQueries, query.DBTX)
		check     func(*testing.T, error)
	}{
		{
			name: "success: row inserted",
			setupMock: func(m *stagingmock.MockStagedBatchQueries, db query.DBTX) {
				m.EXPECT().PutStagedBatch(ctx, db, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.PutStagedBatchParams) (int64, error) {
						assert.Equal(t, "tok-1", arg.Token)
						assert.Equal(t, baseTime, arg.Now.Time)
						assert.Equal(t, baseTime.Add(time.Minute), arg.ExpiresAt.Time)
						assert.True(t, json.Valid(arg.Payload))
						return 1, nil
					})
			},
			check: func(t *testing.T, err error) { assert.NoError(t, err) },
		},
		{
			name: "error: live row already present",
			setupMock: func(m *stagingmock.MockStagedBatchQueries, db query.DBTX) {
				m.EXPECT().PutStagedBatch(ctx, db, gomock.Any()).Return(int64(0), nil)
			},
			check: func(t *testing.T, err error) {
				assert.True(t, errs.Is(err, shared.ErrStagingKeyExists))
			},
		},
		{
			name: "error: database failure",
			setupMock: func(m *stagingmock.MockStagedBatchQueries, db query.DBTX) {
				m.EXPECT().PutStagedBatch(ctx, db, gomock.Any()).Return(int64(0), errors.New("connection reset"))
			},
			check: func(t *testing.T, err error) {
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			queries := stagingmock.NewMockStagedBatchQueries(ctrl)
			db := &mockDBTX{}
			tc.setupMock(queries, db)

			store := staging.NewPostgresStore(queries, db, clock.NewMockClock(baseTime))
			tc.check(t, store.Put(ctx, "tok-1", newBatch(t, "tok-1"), time.Minute))
		})
	}
}

func TestPostgresStore_TakeIfPresent(t *testing.T) {
	ctx := context.Background()

	t.Run("success: live row is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		queries := stagingmock.NewMockStagedBatchQueries(ctrl)
		db := &mockDBTX{}

		batch := newBatch(t, "tok-1")
		raw, err := json.Marshal(batch)
		require.NoError(t, err)
		queries.EXPECT().TakeStagedBatch(ctx, db, "tok-1").
			Return(query.StagedBatchRow{Payload: raw, ExpiresAt: pgconv.TimeToPgtype(baseTime.Add(time.Second))}, nil)

		store := staging.NewPostgresStore(queries, db, clock.NewMockClock(baseTime))
		got, ok, err := store.TakeIfPresent(ctx, "tok-1")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, batch.OrderNumbers(), got.OrderNumbers())
	})

	t.Run("success: expired row counts as absent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		queries := stagingmock.NewMockStagedBatchQueries(ctrl)
		db := &mockDBTX{}

		queries.EXPECT().TakeStagedBatch(ctx, db, "tok-1").
			Return(query.StagedBatchRow{Payload: []byte(`{}`), ExpiresAt: pgconv.TimeToPgtype(baseTime)}, nil)

		store := staging.NewPostgresStore(queries, db, clock.NewMockClock(baseTime))
		_, ok, err := store.TakeIfPresent(ctx, "tok-1")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("success: missing row counts as absent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		queries := stagingmock.NewMockStagedBatchQueries(ctrl)
		db := &mockDBTX{}

		queries.EXPECT().TakeStagedBatch(ctx, db, "tok-1").Return(query.StagedBatchRow{}, pgx.ErrNoRows)

		store := staging.NewPostgresStore(queries, db, clock.NewMockClock(baseTime))
		_, ok, err := store.TakeIfPresent(ctx, "tok-1")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("error: database failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		queries := stagingmock.NewMockStagedBatchQueries(ctrl)
		db := &mockDBTX{}

		queries.EXPECT().TakeStagedBatch(ctx, db, "tok-1").Return(query.StagedBatchRow{}, errors.New("connection reset"))

		store := staging.NewPostgresStore(queries, db, clock.NewMockClock(baseTime))
		_, ok, err := store.TakeIfPresent(ctx, "tok-1")
		assert.False(t, ok)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

type recordingSweep struct {
	total int64
	calls int
}

func (r *recordingSweep) StagingSwept(n int64) {
	r.total += n
	r.calls++
}

func TestSweeper_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	queries := stagingmock.NewMockStagedBatchQueries(ctrl)
	db := &mockDBTX{}

	ctx, cancel := context.WithCancel(context.Background())
	queries.EXPECT().DeleteExpiredStagedBatches(gomock.Any(), db, baseTime).
		DoAndReturn(func(context.Context, query.DBTX, time.Time) (int64, error) {
			cancel()
			return 3, nil
		})

	recorder := &recordingSweep{}
	store := staging.NewPostgresStore(queries, db, clock.NewMockClock(baseTime))
	staging.NewSweeper(store, recorder, time.Hour).Run(ctx)

	assert.Equal(t, int64(3), recorder.total)
	assert.Equal(t, 1, recorder.calls)
}
