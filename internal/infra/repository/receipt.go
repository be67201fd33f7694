package repository

import (
	"context"

	"gift-commerce/internal/domain/receipt"
	"gift-commerce/internal/infra"
	"gift-commerce/internal/infra/query"
	"gift-commerce/internal/infra/repository/converter"
	"gift-commerce/internal/pkg/errs"
)

type ReceiptWriteQueries interface {
	InsertReceipt(ctx context.Context, db query.DBTX, arg query.InsertReceiptParams) error
	InsertReceiptOption(ctx context.Context, db query.DBTX, arg query.InsertReceiptOptionParams) error
}

type ReceiptRepository struct {
	queries ReceiptWriteQueries
}

func NewReceiptRepository(queries ReceiptWriteQueries) *ReceiptRepository {
	return &ReceiptRepository{
		queries: queries,
	}
}

func (r *ReceiptRepository) CreateAll(ctx context.Context, tx query.DBTX, receipts receipt.Receipts) error {
	for _, rc := range receipts {
		params, err := converter.ReceiptToInsertParams(rc)
		if err != nil {
			return errs.Wrap(err, "invalid receipt")
		}
		if err := r.queries.InsertReceipt(ctx, tx, params); err != nil {
			return infra.WrapRepoErr("failed to create receipt", err)
		}

		options, err := converter.ReceiptOptionsToInsertParams(rc)
		if err != nil {
			return errs.Wrap(err, "invalid receipt option")
		}
		for _, opt := range options {
			if err := r.queries.InsertReceiptOption(ctx, tx, opt); err != nil {
				return infra.WrapRepoErr("failed to create receipt option", err)
			}
		}
	}
	return nil
}
