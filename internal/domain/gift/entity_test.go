//go:build unit

package gift_test

import (
	"testing"
	"time"

	"gift-commerce/internal/domain/gift"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGift(t *testing.T) {
	now := time.Date(2024, 3, 30, 12, 0, 0, 0, time.UTC)
	sender, recipient, receiptID := uuid.New(), uuid.New(), uuid.New()

	t.Run("success: starts unused without message", func(t *testing.T) {
		g, err := gift.NewGift(receiptID, "o-1", sender, recipient, now.Add(time.Hour), now)
		require.NoError(t, err)

		assert.Equal(t, gift.StatusNotUsed, g.Status())
		assert.Empty(t, g.Message())
		assert.Empty(t, g.MessagePhoto())
		assert.False(t, g.IsExpired(now))
		assert.True(t, g.IsExpired(now.Add(time.Hour)))
	})

	t.Run("error: expiry not after creation", func(t *testing.T) {
		_, err := gift.NewGift(receiptID, "o-1", sender, recipient, now, now)
		assert.ErrorIs(t, err, gift.ErrExpiryNotInFuture)
	})

	t.Run("error: missing receipt or parties", func(t *testing.T) {
		_, err := gift.NewGift(uuid.Nil, "o-1", sender, recipient, now.Add(time.Hour), now)
		assert.ErrorIs(t, err, gift.ErrMissingReceipt)

		_, err = gift.NewGift(receiptID, "o-1", uuid.Nil, recipient, now.Add(time.Hour), now)
		assert.ErrorIs(t, err, gift.ErrMissingParty)
	})

	t.Run("status values", func(t *testing.T) {
		assert.True(t, gift.StatusUsed.IsValid())
		assert.False(t, gift.Status("LOST").IsValid())
	})
}
