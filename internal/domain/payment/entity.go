package payment

import (
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	id         uuid.UUID
	tid        string
	payerID    string
	method     string
	amount     Amount
	approvedAt time.Time
}

type Amount struct {
	Total    int64 `json:"total"`
	TaxFree  int64 `json:"taxFree"`
	VAT      int64 `json:"vat"`
	Discount int64 `json:"discount"`
}

// NewPayment records one gateway approval.
func NewPayment(tid, payerID, method string, amount Amount, approvedAt time.Time) (*Payment, error) {
	if tid == "" {
		return nil, ErrEmptyTransactionID
	}
	if amount.Total <= 0 {
		return nil, ErrNonPositiveAmount
	}
	return &Payment{
		id:         uuid.New(),
		tid:        tid,
		payerID:    payerID,
		method:     method,
		amount:     amount,
		approvedAt: approvedAt,
	}, nil
}

func ReconstructPayment(id uuid.UUID, tid, payerID, method string, amount Amount, approvedAt time.Time) *Payment {
	return &Payment{
		id:         id,
		tid:        tid,
		payerID:    payerID,
		method:     method,
		amount:     amount,
		approvedAt: approvedAt,
	}
}

func (p *Payment) ID() uuid.UUID         { return p.id }
func (p *Payment) TID() string           { return p.tid }
func (p *Payment) PayerID() string       { return p.payerID }
func (p *Payment) Method() string        { return p.method }
func (p *Payment) Amount() Amount        { return p.amount }
func (p *Payment) ApprovedAt() time.Time { return p.approvedAt }

// Approval is the gateway's answer to a successful approve call.
// It is carried on a restaged batch so the commit can be retried without a second approve.
type Approval struct {
	TID        string    `json:"tid"`
	PayerID    string    `json:"payerId"`
	Method     string    `json:"method"`
	Amount     Amount    `json:"amount"`
	ApprovedAt time.Time `json:"approvedAt"`
}

func (a Approval) ToPayment() (*Payment, error) {
	return NewPayment(a.TID, a.PayerID, a.Method, a.Amount, a.ApprovedAt)
}
