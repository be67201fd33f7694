package repository

import (
	"context"

	"gift-commerce/internal/domain/gift"
	"gift-commerce/internal/infra"
	"gift-commerce/internal/infra/query"
	"gift-commerce/internal/infra/repository/converter"
)

type GiftWriteQueries interface {
	InsertGift(ctx context.Context, db query.DBTX, arg query.InsertGiftParams) error
}

type GiftRepository struct {
	queries GiftWriteQueries
}

func NewGiftRepository(queries GiftWriteQueries) *GiftRepository {
	return &GiftRepository{
		queries: queries,
	}
}

func (r *GiftRepository) CreateAll(ctx context.Context, tx query.DBTX, gifts []*gift.Gift) error {
	for _, g := range gifts {
		if err := r.queries.InsertGift(ctx, tx, converter.GiftToInsertParams(g)); err != nil {
			return infra.WrapRepoErr("failed to create gift", err)
		}
	}
	return nil
}
