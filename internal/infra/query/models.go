package query

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type InsertPaymentParams struct {
	ID             uuid.UUID
	TID            string
	PayerID        string
	Method         string
	TotalAmount    int64
	TaxFreeAmount  int64
	VatAmount      int64
	DiscountAmount int64
	ApprovedAt     pgtype.Timestamptz
}

type InsertReceiptParams struct {
	ID          uuid.UUID
	OrderNumber string
	ProductID   uuid.UUID
	ProductName string
	UnitPrice   int64
	Quantity    int32
	SenderID    uuid.UUID
	RecipientID uuid.UUID
}

type InsertReceiptOptionParams struct {
	ReceiptID        uuid.UUID
	Position         int32
	OptionName       string
	OptionDetailName string
}

type InsertOrderParams struct {
	ID          uuid.UUID
	OrderNumber string
	ProductID   uuid.UUID
	Quantity    int32
	PaymentID   uuid.UUID
	ReceiptID   uuid.UUID
	CreatedAt   pgtype.Timestamptz
}

type InsertGiftParams struct {
	ID           uuid.UUID
	ReceiptID    uuid.UUID
	OrderNumber  string
	SenderID     uuid.UUID
	RecipientID  uuid.UUID
	Message      string
	MessagePhoto string
	Status       string
	ExpiresAt    pgtype.Timestamptz
	CreatedAt    pgtype.Timestamptz
}

type ProductPriceRow struct {
	ID    uuid.UUID
	Price int64
}

type ProductSummaryRow struct {
	ID        uuid.UUID
	Name      string
	Photo     string
	Price     int64
	BrandName string
}

type OptionDetailRow struct {
	ID         uuid.UUID
	OptionID   uuid.UUID
	OptionName string
	Name       string
}

type MemberRow struct {
	ID         uuid.UUID
	ProviderID string
	Name       string
	ProfileURL string
}

type PutStagedBatchParams struct {
	Token     string
	Payload   []byte
	ExpiresAt pgtype.Timestamptz
	Now       pgtype.Timestamptz
}

type StagedBatchRow struct {
	Payload   []byte
	ExpiresAt pgtype.Timestamptz
}
