package payment

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
)

type LineMismatch struct {
	Index     int
	ProductID uuid.UUID
	Claimed   int64
	// Expected is zero when the product has no current price.
	Expected   int64
	PriceKnown bool
}

type AmountMismatchError struct {
	Lines []LineMismatch
}

func (e *AmountMismatchError) Error() string {
	parts := make([]string, 0, len(e.Lines))
	for _, m := range e.Lines {
		if !m.PriceKnown {
			parts = append(parts, fmt.Sprintf("line %d: product %s has no current price", m.Index, m.ProductID))
			continue
		}
		parts = append(parts, fmt.Sprintf("line %d: claimed %d, expected %d", m.Index, m.Claimed, m.Expected))
	}
	return ErrAmountMismatch.Error() + ": " + strings.Join(parts, "; ")
}

func (e *AmountMismatchError) Is(target error) bool {
	return target == ErrAmountMismatch
}

// ValidateAmounts checks every line against the current unit prices.
// The batch is all-or-nothing: one bad line rejects all of them.
func ValidateAmounts(lines []LineRequest, prices map[uuid.UUID]int64) error {
	if len(lines) == 0 {
		return ErrEmptyLines
	}

	var mismatches []LineMismatch
	for i, l := range lines {
		price, ok := prices[l.ProductID]
		if !ok {
			mismatches = append(mismatches, LineMismatch{Index: i, ProductID: l.ProductID, Claimed: l.ClaimedTotalAmount})
			continue
		}
		expected, fits := lineTotal(l.Quantity, price)
		if !fits || expected != l.ClaimedTotalAmount {
			mismatches = append(mismatches, LineMismatch{
				Index:      i,
				ProductID:  l.ProductID,
				Claimed:    l.ClaimedTotalAmount,
				Expected:   expected,
				PriceKnown: true,
			})
		}
	}

	if len(mismatches) > 0 {
		return &AmountMismatchError{Lines: mismatches}
	}
	return nil
}

func lineTotal(quantity int, unitPrice int64) (int64, bool) {
	if quantity <= 0 || unitPrice < 0 {
		return 0, false
	}
	q := int64(quantity)
	if unitPrice != 0 && q > math.MaxInt64/unitPrice {
		return 0, false
	}
	return q * unitPrice, true
}
