package escalation

import (
	"context"
	"encoding/json"
	"log/slog"

	"gift-commerce/internal/usecase/shared"
)

// LogEscalator is used when no broker is configured. The full payload goes to the error log
// so an operator can reconcile by hand.
type LogEscalator struct{}

func NewLogEscalator() *LogEscalator {
	return &LogEscalator{}
}

func (LogEscalator) Escalate(_ context.Context, event shared.EscalationEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	slog.Error("payment commit needs manual reconciliation",
		"staging_token", event.StagingToken,
		"tid", event.TID,
		"buyer_id", event.BuyerID,
		"cause", event.Cause,
		"payload", string(payload))
	return nil
}

func slogEscalated(event shared.EscalationEvent, attrs ...any) {
	args := append([]any{
		"staging_token", event.StagingToken,
		"tid", event.TID,
		"buyer_id", event.BuyerID,
	}, attrs...)
	slog.Warn("payment commit escalated for reconciliation", args...)
}
