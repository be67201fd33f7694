package receipt

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrProductMismatch  = errors.New("resolved product does not match staged line")
	ErrEmptyOrderNumber = errors.New("receipt requires an order number")
	ErrInvalidQuantity  = errors.New("receipt quantity must be positive")
	ErrMissingParty     = errors.New("receipt requires sender and recipient")
)

// Option is an (option name, chosen value name) pair as shown on a receipt.
type Option struct {
	Name       string
	DetailName string
}

// Product is the catalog snapshot a receipt is rendered from.
type Product struct {
	ID    uuid.UUID
	Name  string
	Price int64
}

type Parties struct {
	SenderID    uuid.UUID
	RecipientID uuid.UUID
}
