package staging

import (
	"context"
	"time"

	"gift-commerce/internal/domain/payment"
	"gift-commerce/internal/infra"
	"gift-commerce/internal/infra/query"
	"gift-commerce/internal/pkg/clock"
	"gift-commerce/internal/pkg/pgconv"
	"gift-commerce/internal/usecase/shared"
)

type StagedBatchQueries interface {
	PutStagedBatch(ctx context.Context, db query.DBTX, arg query.PutStagedBatchParams) (int64, error)
	TakeStagedBatch(ctx context.Context, db query.DBTX, token string) (query.StagedBatchRow, error)
	DeleteExpiredStagedBatches(ctx context.Context, db query.DBTX, now time.Time) (int64, error)
}

// PostgresStore keeps staged batches in the staged_batches table.
// TakeIfPresent is a single DELETE ... RETURNING statement.
type PostgresStore struct {
	queries StagedBatchQueries
	db      query.DBTX
	clock   clock.Clock
}

func NewPostgresStore(queries StagedBatchQueries, db query.DBTX, clk clock.Clock) *PostgresStore {
	return &PostgresStore{
		queries: queries,
		db:      db,
		clock:   clk,
	}
}

func (s *PostgresStore) Put(ctx context.Context, token string, batch *payment.StagedBatch, ttl time.Duration) error {
	raw, err := encode(token, batch, ttl)
	if err != nil {
		return err
	}

	now := s.clock.Now()
	n, err := s.queries.PutStagedBatch(ctx, s.db, query.PutStagedBatchParams{
		Token:     token,
		Payload:   raw,
		ExpiresAt: pgconv.TimeToPgtype(now.Add(ttl)),
		Now:       pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to stage batch", err)
	}
	if n == 0 {
		return shared.ErrStagingKeyExists
	}
	return nil
}

func (s *PostgresStore) TakeIfPresent(ctx context.Context, token string) (*payment.StagedBatch, bool, error) {
	row, err := s.queries.TakeStagedBatch(ctx, s.db, token)
	if err != nil {
		wrapped := infra.WrapRepoErr("failed to take staged batch", err)
		if infra.IsKind(wrapped, infra.KindNotFound) {
			return nil, false, nil
		}
		return nil, false, wrapped
	}

	// Expired rows are deleted all the same; they just do not count.
	if !s.clock.Now().Before(pgconv.TimeFromPgtype(row.ExpiresAt)) {
		return nil, false, nil
	}

	batch, err := decode(row.Payload)
	if err != nil {
		return nil, false, err
	}
	return batch, true, nil
}

func (s *PostgresStore) DeleteExpired(ctx context.Context) (int64, error) {
	n, err := s.queries.DeleteExpiredStagedBatches(ctx, s.db, s.clock.Now())
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired staged batches", err)
	}
	return n, nil
}
