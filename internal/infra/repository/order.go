package repository

import (
	"context"

	"gift-commerce/internal/domain/order"
	"gift-commerce/internal/infra"
	"gift-commerce/internal/infra/query"
	"gift-commerce/internal/infra/repository/converter"
	"gift-commerce/internal/pkg/errs"
)

type OrderWriteQueries interface {
	InsertOrder(ctx context.Context, db query.DBTX, arg query.InsertOrderParams) error
}

type OrderRepository struct {
	queries OrderWriteQueries
}

func NewOrderRepository(queries OrderWriteQueries) *OrderRepository {
	return &OrderRepository{
		queries: queries,
	}
}

func (r *OrderRepository) CreateAll(ctx context.Context, tx query.DBTX, orders []*order.Order) error {
	for _, o := range orders {
		params, err := converter.OrderToInsertParams(o)
		if err != nil {
			return errs.Wrap(err, "invalid order")
		}
		if err := r.queries.InsertOrder(ctx, tx, params); err != nil {
			return infra.WrapRepoErr("failed to create order", err)
		}
	}
	return nil
}
