package gift

import (
	"time"

	"github.com/google/uuid"
)

type Gift struct {
	id           uuid.UUID
	receiptID    uuid.UUID
	orderNumber  string
	senderID     uuid.UUID
	recipientID  uuid.UUID
	message      string
	messagePhoto string
	status       Status
	expiresAt    time.Time
	createdAt    time.Time
}

// NewGift starts unused with an empty message; the sender fills it in later.
func NewGift(receiptID uuid.UUID, orderNumber string, senderID, recipientID uuid.UUID, expiresAt, now time.Time) (*Gift, error) {
	if receiptID == uuid.Nil {
		return nil, ErrMissingReceipt
	}
	if senderID == uuid.Nil || recipientID == uuid.Nil {
		return nil, ErrMissingParty
	}
	if !expiresAt.After(now) {
		return nil, ErrExpiryNotInFuture
	}
	return &Gift{
		id:          uuid.New(),
		receiptID:   receiptID,
		orderNumber: orderNumber,
		senderID:    senderID,
		recipientID: recipientID,
		status:      StatusNotUsed,
		expiresAt:   expiresAt,
		createdAt:   now,
	}, nil
}

func (g *Gift) IsExpired(now time.Time) bool {
	return !now.Before(g.expiresAt)
}

func (g *Gift) ID() uuid.UUID          { return g.id }
func (g *Gift) ReceiptID() uuid.UUID   { return g.receiptID }
func (g *Gift) OrderNumber() string    { return g.orderNumber }
func (g *Gift) SenderID() uuid.UUID    { return g.senderID }
func (g *Gift) RecipientID() uuid.UUID { return g.recipientID }
func (g *Gift) Message() string        { return g.message }
func (g *Gift) MessagePhoto() string   { return g.messagePhoto }
func (g *Gift) Status() Status         { return g.status }
func (g *Gift) ExpiresAt() time.Time   { return g.expiresAt }
func (g *Gift) CreatedAt() time.Time   { return g.createdAt }
