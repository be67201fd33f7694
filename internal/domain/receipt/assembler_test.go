//go:build unit

package receipt_test

import (
	"testing"
	"time"

	"gift-commerce/internal/domain/gift"
	"gift-commerce/internal/domain/payment"
	"gift-commerce/internal/domain/receipt"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble(t *testing.T) {
	product := receipt.Product{ID: uuid.New(), Name: "Americano", Price: 1000}
	parties := receipt.Parties{SenderID: uuid.New(), RecipientID: uuid.New()}
	line := payment.StagedOrderLine{OrderNumber: "o-1", ProductID: product.ID, Quantity: 2}

	t.Run("success: no options", func(t *testing.T) {
		r, err := receipt.Assemble(line, product, nil, parties)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.Equal(t, "o-1", r.OrderNumber())
		assert.Equal(t, "Americano", r.ProductName())
		assert.Equal(t, 2, r.Quantity())
		assert.Empty(t, r.Options())
	})

	t.Run("success: options are kept in order and copied", func(t *testing.T) {
		opts := []receipt.Option{{Name: "Size", DetailName: "Tall"}, {Name: "Shot", DetailName: "Extra"}}
		r, err := receipt.Assemble(line, product, opts, parties)
		require.NoError(t, err)

		opts[0].DetailName = "Venti"
		want := []receipt.Option{{Name: "Size", DetailName: "Tall"}, {Name: "Shot", DetailName: "Extra"}}
		if diff := cmp.Diff(want, r.Options()); diff != "" {
			t.Errorf("options (-want +got):\n%s", diff)
		}
	})

	t.Run("error: product does not match line", func(t *testing.T) {
		_, err := receipt.Assemble(line, receipt.Product{ID: uuid.New()}, nil, parties)
		assert.ErrorIs(t, err, receipt.ErrProductMismatch)
	})

	t.Run("error: missing recipient", func(t *testing.T) {
		_, err := receipt.Assemble(line, product, nil, receipt.Parties{SenderID: parties.SenderID})
		assert.ErrorIs(t, err, receipt.ErrMissingParty)
	})

	t.Run("error: empty order number", func(t *testing.T) {
		bad := line
		bad.OrderNumber = ""
		_, err := receipt.Assemble(bad, product, nil, parties)
		assert.ErrorIs(t, err, receipt.ErrEmptyOrderNumber)
	})
}

func TestReceipts_Derive(t *testing.T) {
	now := time.Date(2024, 3, 30, 12, 0, 0, 0, time.UTC)
	expiresAt := now.Add(180 * 24 * time.Hour)
	parties := receipt.Parties{SenderID: uuid.New(), RecipientID: uuid.New()}
	paymentID := uuid.New()

	var rs receipt.Receipts
	for _, num := range []string{"o-1", "o-2", "o-3"} {
		p := receipt.Product{ID: uuid.New(), Name: "p-" + num}
		r, err := receipt.Assemble(payment.StagedOrderLine{OrderNumber: num, ProductID: p.ID, Quantity: 1}, p, nil, parties)
		require.NoError(t, err)
		rs = append(rs, r)
	}

	orders, err := rs.ToOrders(paymentID, now)
	require.NoError(t, err)
	gifts, err := rs.ToGifts(expiresAt, now)
	require.NoError(t, err)

	require.Len(t, orders, len(rs))
	require.Len(t, gifts, len(rs))
	for i, r := range rs {
		assert.Equal(t, r.OrderNumber(), orders[i].OrderNumber())
		assert.Equal(t, r.ID(), orders[i].ReceiptID())
		assert.Equal(t, paymentID, orders[i].PaymentID())
		assert.Equal(t, r.ProductID(), orders[i].ProductID())

		assert.Equal(t, r.OrderNumber(), gifts[i].OrderNumber())
		assert.Equal(t, r.ID(), gifts[i].ReceiptID())
		assert.Equal(t, expiresAt, gifts[i].ExpiresAt())
		assert.Equal(t, gift.StatusNotUsed, gifts[i].Status())
		assert.Equal(t, parties.RecipientID, gifts[i].RecipientID())
	}
}
