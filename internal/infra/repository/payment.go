package repository

import (
	"context"

	"gift-commerce/internal/domain/payment"
	"gift-commerce/internal/infra"
	"gift-commerce/internal/infra/query"
	"gift-commerce/internal/infra/repository/converter"
)

type PaymentWriteQueries interface {
	InsertPayment(ctx context.Context, db query.DBTX, arg query.InsertPaymentParams) error
}

type PaymentRepository struct {
	queries PaymentWriteQueries
}

func NewPaymentRepository(queries PaymentWriteQueries) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
	}
}

// Create fails with KindDuplicateKey when the tid was already committed.
func (r *PaymentRepository) Create(ctx context.Context, tx query.DBTX, p *payment.Payment) error {
	if err := r.queries.InsertPayment(ctx, tx, converter.PaymentToInsertParams(p)); err != nil {
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}
