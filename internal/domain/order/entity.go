package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyOrderNumber = errors.New("order number is required")
	ErrInvalidQuantity  = errors.New("order quantity must be positive")
	ErrMissingPayment   = errors.New("order must reference a payment")
)

// Order links one purchased line to the payment that settled it.
type Order struct {
	id          uuid.UUID
	orderNumber string
	productID   uuid.UUID
	quantity    int
	paymentID   uuid.UUID
	receiptID   uuid.UUID
	createdAt   time.Time
}

func NewOrder(orderNumber string, productID uuid.UUID, quantity int, paymentID, receiptID uuid.UUID, now time.Time) (*Order, error) {
	if orderNumber == "" {
		return nil, ErrEmptyOrderNumber
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if paymentID == uuid.Nil {
		return nil, ErrMissingPayment
	}
	return &Order{
		id:          uuid.New(),
		orderNumber: orderNumber,
		productID:   productID,
		quantity:    quantity,
		paymentID:   paymentID,
		receiptID:   receiptID,
		createdAt:   now,
	}, nil
}

func (o *Order) ID() uuid.UUID        { return o.id }
func (o *Order) OrderNumber() string  { return o.orderNumber }
func (o *Order) ProductID() uuid.UUID { return o.productID }
func (o *Order) Quantity() int        { return o.quantity }
func (o *Order) PaymentID() uuid.UUID { return o.paymentID }
func (o *Order) ReceiptID() uuid.UUID { return o.receiptID }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
