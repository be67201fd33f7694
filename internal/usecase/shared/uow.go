package shared

import (
	"context"

	"gift-commerce/internal/domain/gift"
	"gift-commerce/internal/domain/order"
	"gift-commerce/internal/domain/payment"
	"gift-commerce/internal/domain/receipt"
	"gift-commerce/internal/infra/query"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Payments() PaymentRepository
	Receipts() ReceiptRepository
	Orders() OrderRepository
	Gifts() GiftRepository
	DB() query.DBTX
}

// CommandReads are batch lookups; ids missing from the store are absent from the result.
type CommandReads interface {
	PricesByProductIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]int64, error)
	ProductsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*ProductSnapshot, error)
	OptionDetailsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*OptionDetailSnapshot, error)
	MemberByProviderID(ctx context.Context, providerID string) (*MemberSnapshot, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, tx query.DBTX, p *payment.Payment) error
}

type ReceiptRepository interface {
	CreateAll(ctx context.Context, tx query.DBTX, receipts receipt.Receipts) error
}

type OrderRepository interface {
	CreateAll(ctx context.Context, tx query.DBTX, orders []*order.Order) error
}

type GiftRepository interface {
	CreateAll(ctx context.Context, tx query.DBTX, gifts []*gift.Gift) error
}
