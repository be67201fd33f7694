package payment

import "errors"

var (
	ErrEmptyProductID          = errors.New("product id is required")
	ErrNonPositiveQuantity     = errors.New("quantity must be positive")
	ErrNonPositiveAmount       = errors.New("total amount must be positive")
	ErrEmptyLines              = errors.New("at least one line is required")
	ErrAmountMismatch          = errors.New("claimed total does not match current price")
	ErrOrderNumberCollision    = errors.New("order number already assigned in batch")
	ErrOrderNumberCountInvalid = errors.New("order number count does not match line count")
	ErrEmptyTransactionID      = errors.New("gateway transaction id is required")
)
