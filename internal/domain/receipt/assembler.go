package receipt

import (
	"gift-commerce/internal/domain/payment"

	"github.com/google/uuid"
)

// Assemble builds the receipt for one staged line. All inputs are resolved by the caller.
func Assemble(line payment.StagedOrderLine, product Product, options []Option, parties Parties) (*Receipt, error) {
	if line.OrderNumber == "" {
		return nil, ErrEmptyOrderNumber
	}
	if line.ProductID != product.ID {
		return nil, ErrProductMismatch
	}
	if line.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if parties.SenderID == uuid.Nil || parties.RecipientID == uuid.Nil {
		return nil, ErrMissingParty
	}

	opts := make([]Option, len(options))
	copy(opts, options)

	return &Receipt{
		id:          uuid.New(),
		orderNumber: line.OrderNumber,
		productID:   product.ID,
		productName: product.Name,
		unitPrice:   product.Price,
		quantity:    line.Quantity,
		senderID:    parties.SenderID,
		recipientID: parties.RecipientID,
		options:     opts,
	}, nil
}
