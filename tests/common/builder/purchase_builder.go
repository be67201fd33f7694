//go:build unit || e2e

package builder

import (
	"fmt"
	"time"

	"gift-commerce/internal/domain/payment"
	"gift-commerce/internal/domain/receipt"
	reqdto "gift-commerce/internal/handler/dto/request"
	"gift-commerce/internal/usecase/commands"
	"gift-commerce/internal/usecase/shared"

	"github.com/google/uuid"
)

type PurchaseItem struct {
	Product  shared.ProductSnapshot
	Options  []shared.OptionDetailSnapshot
	Quantity int
}

func (i PurchaseItem) Total() int64 {
	return i.Product.Price * int64(i.Quantity)
}

type PurchaseBuilder struct {
	Buyer    shared.MemberSnapshot
	Items    []PurchaseItem
	StagedAt time.Time
}

func NewPurchaseBuilder() *PurchaseBuilder {
	sizeOption := uuid.New()
	return &PurchaseBuilder{
		Buyer: shared.MemberSnapshot{
			ID:         uuid.New(),
			ProviderID: "kakao-1001",
			Name:       "Buyer",
			ProfileURL: "https://img.example/buyer.png",
		},
		Items: []PurchaseItem{
			{
				Product: shared.ProductSnapshot{
					ID:        uuid.New(),
					Name:      "Americano",
					Photo:     "https://img.example/americano.png",
					Price:     4500,
					BrandName: "Bean Brothers",
				},
				Options: []shared.OptionDetailSnapshot{
					{ID: uuid.New(), OptionID: sizeOption, OptionName: "Size", Name: "Large"},
				},
				Quantity: 2,
			},
			{
				Product: shared.ProductSnapshot{
					ID:        uuid.New(),
					Name:      "Strawberry Cake",
					Photo:     "https://img.example/cake.png",
					Price:     30000,
					BrandName: "Sweet Lab",
				},
				Quantity: 1,
			},
		},
		StagedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *PurchaseBuilder) With(mutate func(*PurchaseBuilder)) *PurchaseBuilder {
	mutate(b)
	return b
}

func (b *PurchaseBuilder) Total() int64 {
	var total int64
	for _, it := range b.Items {
		total += it.Total()
	}
	return total
}

func (b *PurchaseBuilder) OrderNumbers() []string {
	nums := make([]string, len(b.Items))
	for i := range b.Items {
		nums[i] = fmt.Sprintf("order-%02d", i+1)
	}
	return nums
}

func (b *PurchaseBuilder) BuildLineRequests() []payment.LineRequest {
	lines := make([]payment.LineRequest, 0, len(b.Items))
	for _, it := range b.Items {
		ids := make([]uuid.UUID, 0, len(it.Options))
		for _, o := range it.Options {
			ids = append(ids, o.ID)
		}
		lines = append(lines, payment.LineRequest{
			ProductID:          it.Product.ID,
			OptionDetailIDs:    ids,
			Quantity:           it.Quantity,
			ClaimedTotalAmount: it.Total(),
		})
	}
	return lines
}

func (b *PurchaseBuilder) BuildStagedBatch(token string) *payment.StagedBatch {
	batch, err := payment.NewStagedBatch(token, b.Buyer.ProviderID, b.BuildLineRequests(), b.OrderNumbers(), b.StagedAt)
	if err != nil {
		panic(err)
	}
	return batch
}

func (b *PurchaseBuilder) BuildApproval(tid string) payment.Approval {
	return payment.Approval{
		TID:        tid,
		PayerID:    b.Buyer.ProviderID,
		Method:     "MONEY",
		Amount:     payment.Amount{Total: b.Total()},
		ApprovedAt: b.StagedAt.Add(time.Minute),
	}
}

func (b *PurchaseBuilder) BuildPrices() map[uuid.UUID]int64 {
	prices := make(map[uuid.UUID]int64, len(b.Items))
	for _, it := range b.Items {
		prices[it.Product.ID] = it.Product.Price
	}
	return prices
}

func (b *PurchaseBuilder) BuildProducts() map[uuid.UUID]*shared.ProductSnapshot {
	products := make(map[uuid.UUID]*shared.ProductSnapshot, len(b.Items))
	for _, it := range b.Items {
		p := it.Product
		products[p.ID] = &p
	}
	return products
}

func (b *PurchaseBuilder) BuildOptionDetails() map[uuid.UUID]*shared.OptionDetailSnapshot {
	details := make(map[uuid.UUID]*shared.OptionDetailSnapshot)
	for _, it := range b.Items {
		for _, o := range it.Options {
			d := o
			details[d.ID] = &d
		}
	}
	return details
}

func (b *PurchaseBuilder) BuildMember() *shared.MemberSnapshot {
	m := b.Buyer
	return &m
}

func (b *PurchaseBuilder) BuildReceipts() receipt.Receipts {
	batch := b.BuildStagedBatch("tok-builder")
	receipts := make(receipt.Receipts, 0, len(batch.Lines))
	for i, line := range batch.Lines {
		it := b.Items[i]
		opts := make([]receipt.Option, 0, len(it.Options))
		for _, o := range it.Options {
			opts = append(opts, receipt.Option{Name: o.OptionName, DetailName: o.Name})
		}
		r, err := receipt.Assemble(line,
			receipt.Product{ID: it.Product.ID, Name: it.Product.Name, Price: it.Product.Price},
			opts,
			receipt.Parties{SenderID: b.Buyer.ID, RecipientID: b.Buyer.ID})
		if err != nil {
			panic(err)
		}
		receipts = append(receipts, r)
	}
	return receipts
}

func (b *PurchaseBuilder) BuildReadyRequestDTO() []reqdto.ReadyLineRequest {
	lines := b.BuildLineRequests()
	reqs := make([]reqdto.ReadyLineRequest, len(lines))
	for i, l := range lines {
		reqs[i] = reqdto.ReadyLineRequest{
			ProductID:       l.ProductID,
			OptionDetailIDs: l.OptionDetailIDs,
			StockQuantity:   l.Quantity,
			TotalAmount:     l.ClaimedTotalAmount,
		}
	}
	return reqs
}

func (b *PurchaseBuilder) BuildSummary() *commands.PurchaseSummary {
	nums := b.OrderNumbers()
	summary := &commands.PurchaseSummary{
		Receiver: commands.ReceiverView{
			ProviderID: b.Buyer.ProviderID,
			Name:       b.Buyer.Name,
			ProfileURL: b.Buyer.ProfileURL,
		},
		Orders: make([]commands.OrderSummary, len(b.Items)),
	}
	for i, it := range b.Items {
		opts := make([]commands.OptionSummary, 0, len(it.Options))
		for _, o := range it.Options {
			opts = append(opts, commands.OptionSummary{Name: o.OptionName, OptionDetailName: o.Name})
		}
		summary.Orders[i] = commands.OrderSummary{
			OrderNumber: nums[i],
			Product: commands.ProductSummary{
				ProductID: it.Product.ID,
				Name:      it.Product.Name,
				Photo:     it.Product.Photo,
				Price:     it.Product.Price,
				BrandName: it.Product.BrandName,
			},
			Quantity: it.Quantity,
			Options:  opts,
		}
	}
	return summary
}
