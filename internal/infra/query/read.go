package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const getPricesByProductIDs = `
SELECT id, price FROM products WHERE id = ANY($1::uuid[])
`

func (q *Queries) GetPricesByProductIDs(ctx context.Context, db DBTX, ids []uuid.UUID) ([]ProductPriceRow, error) {
	rows, err := db.Query(ctx, getPricesByProductIDs, uuidStrings(ids))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (ProductPriceRow, error) {
		var r ProductPriceRow
		err := row.Scan(&r.ID, &r.Price)
		return r, err
	})
}

const getProductSummariesByIDs = `
SELECT p.id, p.name, p.photo, p.price, b.name
FROM products p
JOIN brands b ON b.id = p.brand_id
WHERE p.id = ANY($1::uuid[])
`

func (q *Queries) GetProductSummariesByIDs(ctx context.Context, db DBTX, ids []uuid.UUID) ([]ProductSummaryRow, error) {
	rows, err := db.Query(ctx, getProductSummariesByIDs, uuidStrings(ids))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (ProductSummaryRow, error) {
		var r ProductSummaryRow
		err := row.Scan(&r.ID, &r.Name, &r.Photo, &r.Price, &r.BrandName)
		return r, err
	})
}

const getOptionDetailsByIDs = `
SELECT d.id, o.id, o.name, d.name
FROM option_details d
JOIN options o ON o.id = d.option_id
WHERE d.id = ANY($1::uuid[])
`

func (q *Queries) GetOptionDetailsByIDs(ctx context.Context, db DBTX, ids []uuid.UUID) ([]OptionDetailRow, error) {
	rows, err := db.Query(ctx, getOptionDetailsByIDs, uuidStrings(ids))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (OptionDetailRow, error) {
		var r OptionDetailRow
		err := row.Scan(&r.ID, &r.OptionID, &r.OptionName, &r.Name)
		return r, err
	})
}

const getMemberByProviderID = `
SELECT id, provider_id, name, profile_url FROM members WHERE provider_id = $1
`

func (q *Queries) GetMemberByProviderID(ctx context.Context, db DBTX, providerID string) (MemberRow, error) {
	var r MemberRow
	err := db.QueryRow(ctx, getMemberByProviderID, providerID).Scan(&r.ID, &r.ProviderID, &r.Name, &r.ProfileURL)
	return r, err
}
