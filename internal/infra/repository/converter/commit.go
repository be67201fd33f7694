package converter

import (
	"gift-commerce/internal/domain/gift"
	"gift-commerce/internal/domain/order"
	"gift-commerce/internal/domain/payment"
	"gift-commerce/internal/domain/receipt"
	"gift-commerce/internal/infra/query"
	"gift-commerce/internal/pkg/pgconv"
)

func PaymentToInsertParams(p *payment.Payment) query.InsertPaymentParams {
	amount := p.Amount()
	return query.InsertPaymentParams{
		ID:             p.ID(),
		TID:            p.TID(),
		PayerID:        p.PayerID(),
		Method:         p.Method(),
		TotalAmount:    amount.Total,
		TaxFreeAmount:  amount.TaxFree,
		VatAmount:      amount.VAT,
		DiscountAmount: amount.Discount,
		ApprovedAt:     pgconv.TimeToPgtype(p.ApprovedAt()),
	}
}

func ReceiptToInsertParams(r *receipt.Receipt) (query.InsertReceiptParams, error) {
	quantity, err := pgconv.IntToInt32(r.Quantity())
	if err != nil {
		return query.InsertReceiptParams{}, err
	}
	return query.InsertReceiptParams{
		ID:          r.ID(),
		OrderNumber: r.OrderNumber(),
		ProductID:   r.ProductID(),
		ProductName: r.ProductName(),
		UnitPrice:   r.UnitPrice(),
		Quantity:    quantity,
		SenderID:    r.SenderID(),
		RecipientID: r.RecipientID(),
	}, nil
}

// ReceiptOptionsToInsertParams keeps option order through Position.
func ReceiptOptionsToInsertParams(r *receipt.Receipt) ([]query.InsertReceiptOptionParams, error) {
	opts := r.Options()
	params := make([]query.InsertReceiptOptionParams, 0, len(opts))
	for i, o := range opts {
		pos, err := pgconv.IntToInt32(i)
		if err != nil {
			return nil, err
		}
		params = append(params, query.InsertReceiptOptionParams{
			ReceiptID:        r.ID(),
			Position:         pos,
			OptionName:       o.Name,
			OptionDetailName: o.DetailName,
		})
	}
	return params, nil
}

func OrderToInsertParams(o *order.Order) (query.InsertOrderParams, error) {
	quantity, err := pgconv.IntToInt32(o.Quantity())
	if err != nil {
		return query.InsertOrderParams{}, err
	}
	return query.InsertOrderParams{
		ID:          o.ID(),
		OrderNumber: o.OrderNumber(),
		ProductID:   o.ProductID(),
		Quantity:    quantity,
		PaymentID:   o.PaymentID(),
		ReceiptID:   o.ReceiptID(),
		CreatedAt:   pgconv.TimeToPgtype(o.CreatedAt()),
	}, nil
}

func GiftToInsertParams(g *gift.Gift) query.InsertGiftParams {
	return query.InsertGiftParams{
		ID:           g.ID(),
		ReceiptID:    g.ReceiptID(),
		OrderNumber:  g.OrderNumber(),
		SenderID:     g.SenderID(),
		RecipientID:  g.RecipientID(),
		Message:      g.Message(),
		MessagePhoto: g.MessagePhoto(),
		Status:       g.Status().String(),
		ExpiresAt:    pgconv.TimeToPgtype(g.ExpiresAt()),
		CreatedAt:    pgconv.TimeToPgtype(g.CreatedAt()),
	}
}
