package payment

import (
	"time"

	"github.com/google/uuid"
)

// StagedOrderLine is the JSON shape held in the staging store.
type StagedOrderLine struct {
	OrderNumber     string      `json:"orderNumber"`
	ProductID       uuid.UUID   `json:"productId"`
	Quantity        int         `json:"quantity"`
	OptionDetailIDs []uuid.UUID `json:"optionDetailIds"`
	TotalAmount     int64       `json:"totalAmount"`
}

type StagedBatch struct {
	Token   string            `json:"token"`
	BuyerID string            `json:"buyerId"`
	TID     string            `json:"tid,omitempty"`
	Lines   []StagedOrderLine `json:"lines"`
	// Approval is only set when a commit failed after the gateway approved.
	Approval *Approval `json:"approval,omitempty"`
	// StagedAt is set on the first successful staging and survives re-staging.
	StagedAt time.Time `json:"stagedAt"`
}

// NewStagedBatch pairs each line with its order number, in order.
func NewStagedBatch(token, buyerID string, lines []LineRequest, orderNumbers []string, now time.Time) (*StagedBatch, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyLines
	}
	if len(orderNumbers) != len(lines) {
		return nil, ErrOrderNumberCountInvalid
	}

	seen := make(map[string]struct{}, len(orderNumbers))
	staged := make([]StagedOrderLine, 0, len(lines))
	for i, l := range lines {
		num := orderNumbers[i]
		if num == "" || num == token {
			return nil, ErrOrderNumberCollision
		}
		if _, dup := seen[num]; dup {
			return nil, ErrOrderNumberCollision
		}
		seen[num] = struct{}{}

		ids := make([]uuid.UUID, len(l.OptionDetailIDs))
		copy(ids, l.OptionDetailIDs)
		staged = append(staged, StagedOrderLine{
			OrderNumber:     num,
			ProductID:       l.ProductID,
			Quantity:        l.Quantity,
			OptionDetailIDs: ids,
			TotalAmount:     l.ClaimedTotalAmount,
		})
	}

	return &StagedBatch{
		Token:    token,
		BuyerID:  buyerID,
		Lines:    staged,
		StagedAt: now,
	}, nil
}

func (b *StagedBatch) TotalAmount() int64 {
	var total int64
	for _, l := range b.Lines {
		total += l.TotalAmount
	}
	return total
}

func (b *StagedBatch) TotalQuantity() int {
	var total int
	for _, l := range b.Lines {
		total += l.Quantity
	}
	return total
}

func (b *StagedBatch) OrderNumbers() []string {
	nums := make([]string, 0, len(b.Lines))
	for _, l := range b.Lines {
		nums = append(nums, l.OrderNumber)
	}
	return nums
}

// ProductIDs returns distinct product ids in line order.
func (b *StagedBatch) ProductIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(b.Lines))
	ids := make([]uuid.UUID, 0, len(b.Lines))
	for _, l := range b.Lines {
		if _, ok := seen[l.ProductID]; ok {
			continue
		}
		seen[l.ProductID] = struct{}{}
		ids = append(ids, l.ProductID)
	}
	return ids
}

// OptionDetailIDs returns distinct option detail ids across all lines.
func (b *StagedBatch) OptionDetailIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]struct{})
	var ids []uuid.UUID
	for _, l := range b.Lines {
		for _, id := range l.OptionDetailIDs {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}

func (b *StagedBatch) WithTID(tid string) *StagedBatch {
	cp := *b
	cp.TID = tid
	return &cp
}

func (b *StagedBatch) WithApproval(a Approval) *StagedBatch {
	cp := *b
	cp.TID = a.TID
	cp.Approval = &a
	return &cp
}

func (b *StagedBatch) IsApproved() bool {
	return b.Approval != nil
}
