//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gift-commerce/internal/domain/gift"
	"gift-commerce/internal/domain/order"
	"gift-commerce/internal/domain/payment"
	"gift-commerce/internal/infra"
	"gift-commerce/internal/infra/query"
	"gift-commerce/internal/infra/repository"
	"gift-commerce/tests/common/builder"
	repositorymock "gift-commerce/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use the queries mock instead.")
}

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// =============================================================================
// Payment
// =============================================================================

func TestPaymentRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockPaymentWriteQueries, *payment.Payment, query.DBTX)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: payment inserted",
			setupMock: func(m *repositorymock.MockPaymentWriteQueries, p *payment.Payment, tx query.DBTX) {
				m.EXPECT().InsertPayment(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.InsertPaymentParams) error {
						assert.Equal(t, p.ID(), arg.ID)
						assert.Equal(t, "T123", arg.TID)
						assert.Equal(t, int64(39000), arg.TotalAmount)
						assert.Equal(t, now, arg.ApprovedAt.Time)
						return nil
					})
			},
		},
		{
			name: "error: tid already committed",
			setupMock: func(m *repositorymock.MockPaymentWriteQueries, p *payment.Payment, tx query.DBTX) {
				m.EXPECT().InsertPayment(ctx, tx, gomock.Any()).Return(&pgconn.PgError{Code: "23505"})
			},
			expectKind: infra.KindDuplicateKey,
		},
		{
			name: "error: database failure",
			setupMock: func(m *repositorymock.MockPaymentWriteQueries, p *payment.Payment, tx query.DBTX) {
				m.EXPECT().InsertPayment(ctx, tx, gomock.Any()).Return(errors.New("database connection error"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockPaymentWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewPaymentRepository(mockQueries)

			p, err := payment.NewPayment("T123", "kakao-1001", "MONEY", payment.Amount{Total: 39000}, now)
			require.NoError(t, err)
			tc.setupMock(mockQueries, p, mockDB)

			err = repo.Create(ctx, mockDB, p)
			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
		})
	}
}

// =============================================================================
// Receipts
// =============================================================================

func TestReceiptRepository_CreateAll(t *testing.T) {
	ctx := context.Background()

	t.Run("success: receipts and ordered options inserted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReceiptWriteQueries(ctrl)
		mockDB := &mockDBTX{}

		receipts := builder.NewPurchaseBuilder().BuildReceipts()
		require.Len(t, receipts, 2)

		gomock.InOrder(
			mockQueries.EXPECT().InsertReceipt(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.InsertReceiptParams) error {
					assert.Equal(t, receipts[0].ID(), arg.ID)
					assert.Equal(t, int32(2), arg.Quantity)
					return nil
				}),
			mockQueries.EXPECT().InsertReceiptOption(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.InsertReceiptOptionParams) error {
					assert.Equal(t, receipts[0].ID(), arg.ReceiptID)
					assert.Equal(t, int32(0), arg.Position)
					assert.Equal(t, "Size", arg.OptionName)
					assert.Equal(t, "Large", arg.OptionDetailName)
					return nil
				}),
			mockQueries.EXPECT().InsertReceipt(ctx, mockDB, gomock.Any()).Return(nil),
		)

		require.NoError(t, repository.NewReceiptRepository(mockQueries).CreateAll(ctx, mockDB, receipts))
	})

	t.Run("error: option insert fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReceiptWriteQueries(ctrl)
		mockDB := &mockDBTX{}

		mockQueries.EXPECT().InsertReceipt(ctx, mockDB, gomock.Any()).Return(nil)
		mockQueries.EXPECT().InsertReceiptOption(ctx, mockDB, gomock.Any()).Return(&pgconn.PgError{Code: "23503"})

		err := repository.NewReceiptRepository(mockQueries).CreateAll(ctx, mockDB, builder.NewPurchaseBuilder().BuildReceipts())
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})
}

// =============================================================================
// Orders and gifts
// =============================================================================

func TestOrderRepository_CreateAll(t *testing.T) {
	ctx := context.Background()
	paymentID := uuid.New()

	o1, err := order.NewOrder("order-01", uuid.New(), 2, paymentID, uuid.New(), now)
	require.NoError(t, err)
	o2, err := order.NewOrder("order-02", uuid.New(), 1, paymentID, uuid.New(), now)
	require.NoError(t, err)

	t.Run("success: every order inserted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
		mockDB := &mockDBTX{}

		var seen []string
		mockQueries.EXPECT().InsertOrder(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.InsertOrderParams) error {
				assert.Equal(t, paymentID, arg.PaymentID)
				seen = append(seen, arg.OrderNumber)
				return nil
			}).Times(2)

		require.NoError(t, repository.NewOrderRepository(mockQueries).CreateAll(ctx, mockDB, []*order.Order{o1, o2}))
		assert.Equal(t, []string{"order-01", "order-02"}, seen)
	})

	t.Run("error: duplicate order number stops the batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
		mockDB := &mockDBTX{}

		mockQueries.EXPECT().InsertOrder(ctx, mockDB, gomock.Any()).Return(&pgconn.PgError{Code: "23505"}).Times(1)

		err := repository.NewOrderRepository(mockQueries).CreateAll(ctx, mockDB, []*order.Order{o1, o2})
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}

func TestGiftRepository_CreateAll(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockGiftWriteQueries(ctrl)
	mockDB := &mockDBTX{}

	member := uuid.New()
	g, err := gift.NewGift(uuid.New(), "order-01", member, member, now.Add(24*time.Hour), now)
	require.NoError(t, err)

	mockQueries.EXPECT().InsertGift(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.InsertGiftParams) error {
			assert.Equal(t, "NOT_USED", arg.Status)
			assert.Equal(t, now.Add(24*time.Hour), arg.ExpiresAt.Time)
			assert.Empty(t, arg.Message)
			return nil
		})

	require.NoError(t, repository.NewGiftRepository(mockQueries).CreateAll(ctx, mockDB, []*gift.Gift{g}))
}
