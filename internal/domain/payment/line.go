package payment

import (
	"github.com/google/uuid"
)

// LineRequest is one purchase line as submitted by the buyer. It is input only.
type LineRequest struct {
	ProductID          uuid.UUID
	OptionDetailIDs    []uuid.UUID
	Quantity           int
	ClaimedTotalAmount int64
}

func NewLineRequest(productID uuid.UUID, optionDetailIDs []uuid.UUID, quantity int, claimedTotal int64) (LineRequest, error) {
	if productID == uuid.Nil {
		return LineRequest{}, ErrEmptyProductID
	}
	if quantity <= 0 {
		return LineRequest{}, ErrNonPositiveQuantity
	}
	if claimedTotal <= 0 {
		return LineRequest{}, ErrNonPositiveAmount
	}

	ids := make([]uuid.UUID, len(optionDetailIDs))
	copy(ids, optionDetailIDs)

	return LineRequest{
		ProductID:          productID,
		OptionDetailIDs:    ids,
		Quantity:           quantity,
		ClaimedTotalAmount: claimedTotal,
	}, nil
}

// ProductIDs returns the distinct product ids in first-seen order.
func ProductIDs(lines []LineRequest) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(lines))
	ids := make([]uuid.UUID, 0, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.ProductID]; ok {
			continue
		}
		seen[l.ProductID] = struct{}{}
		ids = append(ids, l.ProductID)
	}
	return ids
}

func TotalClaimed(lines []LineRequest) int64 {
	var total int64
	for _, l := range lines {
		total += l.ClaimedTotalAmount
	}
	return total
}

func TotalQuantity(lines []LineRequest) int {
	var total int
	for _, l := range lines {
		total += l.Quantity
	}
	return total
}
