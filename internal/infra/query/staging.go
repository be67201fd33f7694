package query

import (
	"context"
	"time"
)

// Only an expired row may be overwritten; a live token reports zero rows affected.
const putStagedBatch = `
INSERT INTO staged_batches (token, payload, expires_at)
VALUES ($1, $2, $3)
ON CONFLICT (token) DO UPDATE
SET payload = EXCLUDED.payload, expires_at = EXCLUDED.expires_at, created_at = now()
WHERE staged_batches.expires_at <= $4
`

func (q *Queries) PutStagedBatch(ctx context.Context, db DBTX, arg PutStagedBatchParams) (int64, error) {
	tag, err := db.Exec(ctx, putStagedBatch, arg.Token, arg.Payload, arg.ExpiresAt, arg.Now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const takeStagedBatch = `
DELETE FROM staged_batches WHERE token = $1 RETURNING payload, expires_at
`

func (q *Queries) TakeStagedBatch(ctx context.Context, db DBTX, token string) (StagedBatchRow, error) {
	var r StagedBatchRow
	err := db.QueryRow(ctx, takeStagedBatch, token).Scan(&r.Payload, &r.ExpiresAt)
	return r, err
}

const deleteExpiredStagedBatches = `
DELETE FROM staged_batches WHERE expires_at <= $1
`

func (q *Queries) DeleteExpiredStagedBatches(ctx context.Context, db DBTX, now time.Time) (int64, error) {
	tag, err := db.Exec(ctx, deleteExpiredStagedBatches, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
