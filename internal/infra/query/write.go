package query

import (
	"context"
)

const insertPayment = `
INSERT INTO payments (id, tid, payer_id, method, total_amount, tax_free_amount, vat_amount, discount_amount, approved_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

func (q *Queries) InsertPayment(ctx context.Context, db DBTX, arg InsertPaymentParams) error {
	_, err := db.Exec(ctx, insertPayment,
		arg.ID,
		arg.TID,
		arg.PayerID,
		arg.Method,
		arg.TotalAmount,
		arg.TaxFreeAmount,
		arg.VatAmount,
		arg.DiscountAmount,
		arg.ApprovedAt,
	)
	return err
}

const insertReceipt = `
INSERT INTO receipts (id, order_number, product_id, product_name, unit_price, quantity, sender_id, recipient_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

func (q *Queries) InsertReceipt(ctx context.Context, db DBTX, arg InsertReceiptParams) error {
	_, err := db.Exec(ctx, insertReceipt,
		arg.ID,
		arg.OrderNumber,
		arg.ProductID,
		arg.ProductName,
		arg.UnitPrice,
		arg.Quantity,
		arg.SenderID,
		arg.RecipientID,
	)
	return err
}

const insertReceiptOption = `
INSERT INTO receipt_options (receipt_id, position, option_name, option_detail_name)
VALUES ($1, $2, $3, $4)
`

func (q *Queries) InsertReceiptOption(ctx context.Context, db DBTX, arg InsertReceiptOptionParams) error {
	_, err := db.Exec(ctx, insertReceiptOption, arg.ReceiptID, arg.Position, arg.OptionName, arg.OptionDetailName)
	return err
}

const insertOrder = `
INSERT INTO orders (id, order_number, product_id, quantity, payment_id, receipt_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

func (q *Queries) InsertOrder(ctx context.Context, db DBTX, arg InsertOrderParams) error {
	_, err := db.Exec(ctx, insertOrder,
		arg.ID,
		arg.OrderNumber,
		arg.ProductID,
		arg.Quantity,
		arg.PaymentID,
		arg.ReceiptID,
		arg.CreatedAt,
	)
	return err
}

const insertGift = `
INSERT INTO gifts (id, receipt_id, order_number, sender_id, recipient_id, message, message_photo, status, expires_at, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`

func (q *Queries) InsertGift(ctx context.Context, db DBTX, arg InsertGiftParams) error {
	_, err := db.Exec(ctx, insertGift,
		arg.ID,
		arg.ReceiptID,
		arg.OrderNumber,
		arg.SenderID,
		arg.RecipientID,
		arg.Message,
		arg.MessagePhoto,
		arg.Status,
		arg.ExpiresAt,
		arg.CreatedAt,
	)
	return err
}
