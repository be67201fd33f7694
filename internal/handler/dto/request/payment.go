package request

import (
	"gift-commerce/internal/domain/payment"
	"gift-commerce/internal/usecase/commands"

	"github.com/google/uuid"
)

type ReadyLineRequest struct {
	ProductID       uuid.UUID   `json:"productId" binding:"required"`
	OptionDetailIDs []uuid.UUID `json:"optionDetailIds"`
	StockQuantity   int         `json:"stockQuantity" binding:"required,min=1"`
	TotalAmount     int64       `json:"totalAmount" binding:"required,min=1"`
}

type ApproveRequest struct {
	TID            string `json:"tid" binding:"required"`
	PGToken        string `json:"pgToken" binding:"required"`
	OrderDetailKey string `json:"orderDetailKey" binding:"required"`
}

type RetryRequest struct {
	OrderDetailKey string `json:"orderDetailKey" binding:"required"`
}

func ToLineRequests(reqs []ReadyLineRequest) ([]payment.LineRequest, error) {
	lines := make([]payment.LineRequest, 0, len(reqs))
	for _, r := range reqs {
		line, err := payment.NewLineRequest(r.ProductID, r.OptionDetailIDs, r.StockQuantity, r.TotalAmount)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (r *ApproveRequest) ToCommand() commands.ApproveRequest {
	return commands.ApproveRequest{
		TID:          r.TID,
		PGToken:      r.PGToken,
		StagingToken: r.OrderDetailKey,
	}
}
