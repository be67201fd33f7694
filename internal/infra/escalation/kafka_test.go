//go:build unit

package escalation_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"gift-commerce/internal/domain/payment"
	"gift-commerce/internal/infra/escalation"
	"gift-commerce/internal/usecase/shared"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEvent() shared.EscalationEvent {
	return shared.EscalationEvent{
		StagingToken: "tok-1",
		TID:          "T123",
		BuyerID:      "kakao-1",
		Approval: &payment.Approval{
			TID:     "T123",
			PayerID: "kakao-1",
			Method:  "MONEY",
			Amount:  payment.Amount{Total: 20000},
		},
		Lines: []payment.StagedOrderLine{
			{OrderNumber: "o-1", ProductID: uuid.New(), Quantity: 2, TotalAmount: 20000},
		},
		Cause:      "restage failed",
		OccurredAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestKafkaPublisher_Escalate(t *testing.T) {
	t.Run("success: event is published as json", func(t *testing.T) {
		producer := mocks.NewSyncProducer(t, nil)
		producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
			var got shared.EscalationEvent
			if err := json.Unmarshal(val, &got); err != nil {
				return err
			}
			assert.Equal(t, "tok-1", got.StagingToken)
			assert.Equal(t, "T123", got.TID)
			require.NotNil(t, got.Approval)
			assert.Equal(t, int64(20000), got.Approval.Amount.Total)
			assert.Len(t, got.Lines, 1)
			return nil
		})

		publisher := escalation.NewKafkaPublisher(producer, "payment.reconciliation")
		require.NoError(t, publisher.Escalate(context.Background(), newEvent()))
		require.NoError(t, publisher.Close())
	})

	t.Run("error: broker failure is returned", func(t *testing.T) {
		producer := mocks.NewSyncProducer(t, nil)
		producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

		publisher := escalation.NewKafkaPublisher(producer, "payment.reconciliation")
		err := publisher.Escalate(context.Background(), newEvent())
		assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
		require.NoError(t, publisher.Close())
	})

	t.Run("error: cancelled context does not publish", func(t *testing.T) {
		producer := mocks.NewSyncProducer(t, nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		publisher := escalation.NewKafkaPublisher(producer, "payment.reconciliation")
		assert.ErrorIs(t, publisher.Escalate(ctx, newEvent()), context.Canceled)
		require.NoError(t, publisher.Close())
	})
}

func TestLogEscalator_Escalate(t *testing.T) {
	assert.NoError(t, escalation.NewLogEscalator().Escalate(context.Background(), newEvent()))
}
