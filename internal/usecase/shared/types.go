package shared

import (
	"time"

	"gift-commerce/internal/domain/payment"

	"github.com/google/uuid"
)

type MemberSnapshot struct {
	ID         uuid.UUID
	ProviderID string
	Name       string
	ProfileURL string
}

type ProductSnapshot struct {
	ID        uuid.UUID
	Name      string
	Photo     string
	Price     int64
	BrandName string
}

type OptionDetailSnapshot struct {
	ID         uuid.UUID
	OptionID   uuid.UUID
	OptionName string
	Name       string
}

type GatewayReadyRequest struct {
	BuyerID      string
	StagingToken string
	ItemName     string
	Quantity     int
	TotalAmount  int64
}

type GatewayReadyResult struct {
	TID         string
	RedirectURL string
	CreatedAt   time.Time
}

type GatewayApproveRequest struct {
	BuyerID      string
	StagingToken string
	TID          string
	PGToken      string
}

// EscalationEvent is published when an approved batch could be neither committed nor restaged.
type EscalationEvent struct {
	StagingToken string                    `json:"stagingToken"`
	TID          string                    `json:"tid"`
	BuyerID      string                    `json:"buyerId"`
	Approval     *payment.Approval         `json:"approval,omitempty"`
	Lines        []payment.StagedOrderLine `json:"lines"`
	Cause        string                    `json:"cause"`
	OccurredAt   time.Time                 `json:"occurredAt"`
}
