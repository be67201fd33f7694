package readstore

import (
	"context"

	"gift-commerce/internal/infra"
	"gift-commerce/internal/infra/query"
	"gift-commerce/internal/usecase/shared"

	"github.com/google/uuid"
)

type CatalogReadQueries interface {
	GetPricesByProductIDs(ctx context.Context, db query.DBTX, ids []uuid.UUID) ([]query.ProductPriceRow, error)
	GetProductSummariesByIDs(ctx context.Context, db query.DBTX, ids []uuid.UUID) ([]query.ProductSummaryRow, error)
	GetOptionDetailsByIDs(ctx context.Context, db query.DBTX, ids []uuid.UUID) ([]query.OptionDetailRow, error)
}

// CatalogReadStore answers batch lookups with one round trip each. Unknown ids are left out
// of the result; callers decide whether that is an error.
type CatalogReadStore struct {
	queries CatalogReadQueries
	db      query.DBTX
}

func NewCatalogReadStore(queries CatalogReadQueries, db query.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *CatalogReadStore) PricesByProductIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]int64, error) {
	prices := make(map[uuid.UUID]int64, len(ids))
	if len(ids) == 0 {
		return prices, nil
	}

	rows, err := s.queries.GetPricesByProductIDs(ctx, s.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get product prices", err)
	}
	for _, row := range rows {
		prices[row.ID] = row.Price
	}
	return prices, nil
}

func (s *CatalogReadStore) ProductsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*shared.ProductSnapshot, error) {
	products := make(map[uuid.UUID]*shared.ProductSnapshot, len(ids))
	if len(ids) == 0 {
		return products, nil
	}

	rows, err := s.queries.GetProductSummariesByIDs(ctx, s.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get products", err)
	}
	for _, row := range rows {
		products[row.ID] = &shared.ProductSnapshot{
			ID:        row.ID,
			Name:      row.Name,
			Photo:     row.Photo,
			Price:     row.Price,
			BrandName: row.BrandName,
		}
	}
	return products, nil
}

func (s *CatalogReadStore) OptionDetailsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*shared.OptionDetailSnapshot, error) {
	details := make(map[uuid.UUID]*shared.OptionDetailSnapshot, len(ids))
	if len(ids) == 0 {
		return details, nil
	}

	rows, err := s.queries.GetOptionDetailsByIDs(ctx, s.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get option details", err)
	}
	for _, row := range rows {
		details[row.ID] = &shared.OptionDetailSnapshot{
			ID:         row.ID,
			OptionID:   row.OptionID,
			OptionName: row.OptionName,
			Name:       row.Name,
		}
	}
	return details, nil
}
