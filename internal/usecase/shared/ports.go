package shared

import (
	"context"
	"time"

	"gift-commerce/internal/domain/payment"
	"gift-commerce/internal/pkg/errs"
)

var (
	ErrStagingKeyExists   = errs.New("staging key already exists")
	ErrGatewayUnavailable = errs.New("payment gateway unavailable")
	ErrGatewayRejected    = errs.New("payment gateway rejected ready request")
	ErrGatewayDenied      = errs.New("payment gateway denied approval")
)

// StagingStore holds staged batches between ready and approve.
// TakeIfPresent must read and delete in one atomic step.
type StagingStore interface {
	// Put fails with ErrStagingKeyExists if a live entry already uses token.
	Put(ctx context.Context, token string, batch *payment.StagedBatch, ttl time.Duration) error
	TakeIfPresent(ctx context.Context, token string) (*payment.StagedBatch, bool, error)
}

type TokenFactory interface {
	StagingToken() (string, error)
	OrderNumber() (string, error)
}

type GatewayClient interface {
	Ready(ctx context.Context, req GatewayReadyRequest) (*GatewayReadyResult, error)
	Approve(ctx context.Context, req GatewayApproveRequest) (*payment.Approval, error)
}

type Escalator interface {
	Escalate(ctx context.Context, event EscalationEvent) error
}

type PaymentMetrics interface {
	ReadyCompleted(outcome string)
	ApproveCompleted(outcome string, elapsed time.Duration)
	CommitRecovered(recovery string)
}
