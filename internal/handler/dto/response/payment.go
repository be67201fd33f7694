package response

import (
	"gift-commerce/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var summaryCopyOption = copier.Option{
	DeepCopy: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
	},
}

type ReadyResponse struct {
	TID               string `json:"tid"`
	NextRedirectPcURL string `json:"nextRedirectPcUrl"`
	OrderDetailKey    string `json:"orderDetailKey"`
}

func FromReadyResult(r *commands.ReadyResult) *ReadyResponse {
	return &ReadyResponse{
		TID:               r.TID,
		NextRedirectPcURL: r.RedirectURL,
		OrderDetailKey:    r.StagingToken,
	}
}

type ReceiverResponse struct {
	ProviderID string `json:"providerId"`
	Name       string `json:"name"`
	ProfileURL string `json:"profileUrl"`
}

type ProductResponse struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Photo     string `json:"photo"`
	Price     int64  `json:"price"`
	BrandName string `json:"brandName"`
}

type OptionResponse struct {
	Name             string `json:"name"`
	OptionDetailName string `json:"optionDetailName"`
}

type OrderSummaryResponse struct {
	OrderNumber string           `json:"orderNumber"`
	Product     ProductResponse  `json:"product"`
	Quantity    int              `json:"quantity"`
	Options     []OptionResponse `json:"options"`
}

type PurchaseSummaryResponse struct {
	Receiver       ReceiverResponse       `json:"receiver"`
	OrderSummaries []OrderSummaryResponse `json:"orderSummaries"`
}

func FromPurchaseSummary(s *commands.PurchaseSummary) (*PurchaseSummaryResponse, error) {
	res := &PurchaseSummaryResponse{
		OrderSummaries: make([]OrderSummaryResponse, len(s.Orders)),
	}
	if err := copier.Copy(&res.Receiver, &s.Receiver); err != nil {
		return nil, err
	}
	for i := range s.Orders {
		dst := &res.OrderSummaries[i]
		if err := copier.CopyWithOption(dst, &s.Orders[i], summaryCopyOption); err != nil {
			return nil, err
		}
		if dst.Options == nil {
			dst.Options = []OptionResponse{}
		}
	}
	return res, nil
}
