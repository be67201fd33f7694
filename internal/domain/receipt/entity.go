package receipt

import (
	"time"

	"gift-commerce/internal/domain/gift"
	"gift-commerce/internal/domain/order"

	"github.com/google/uuid"
)

// Receipt is immutable after Assemble; Order and Gift are both derived from it.
type Receipt struct {
	id          uuid.UUID
	orderNumber string
	productID   uuid.UUID
	productName string
	unitPrice   int64
	quantity    int
	senderID    uuid.UUID
	recipientID uuid.UUID
	options     []Option
}

func (r *Receipt) ID() uuid.UUID          { return r.id }
func (r *Receipt) OrderNumber() string    { return r.orderNumber }
func (r *Receipt) ProductID() uuid.UUID   { return r.productID }
func (r *Receipt) ProductName() string    { return r.productName }
func (r *Receipt) UnitPrice() int64       { return r.unitPrice }
func (r *Receipt) Quantity() int          { return r.quantity }
func (r *Receipt) SenderID() uuid.UUID    { return r.senderID }
func (r *Receipt) RecipientID() uuid.UUID { return r.recipientID }

func (r *Receipt) Options() []Option {
	out := make([]Option, len(r.options))
	copy(out, r.options)
	return out
}

func (r *Receipt) ToOrder(paymentID uuid.UUID, now time.Time) (*order.Order, error) {
	return order.NewOrder(r.orderNumber, r.productID, r.quantity, paymentID, r.id, now)
}

func (r *Receipt) ToGift(expiresAt, now time.Time) (*gift.Gift, error) {
	return gift.NewGift(r.id, r.orderNumber, r.senderID, r.recipientID, expiresAt, now)
}

type Receipts []*Receipt

func (rs Receipts) ToOrders(paymentID uuid.UUID, now time.Time) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(rs))
	for _, r := range rs {
		o, err := r.ToOrder(paymentID, now)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (rs Receipts) ToGifts(expiresAt, now time.Time) ([]*gift.Gift, error) {
	gifts := make([]*gift.Gift, 0, len(rs))
	for _, r := range rs {
		g, err := r.ToGift(expiresAt, now)
		if err != nil {
			return nil, err
		}
		gifts = append(gifts, g)
	}
	return gifts, nil
}
