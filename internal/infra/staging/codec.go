package staging

import (
	"encoding/json"
	"time"

	"gift-commerce/internal/domain/payment"
	"gift-commerce/internal/pkg/errs"
)

var (
	ErrInvalidTTL   = errs.New("staging ttl must be positive")
	ErrEmptyToken   = errs.New("staging token is required")
	ErrCorruptBatch = errs.New("staged batch payload is corrupt")
)

func encode(token string, batch *payment.StagedBatch, ttl time.Duration) ([]byte, error) {
	if token == "" {
		return nil, ErrEmptyToken
	}
	if ttl <= 0 {
		return nil, ErrInvalidTTL
	}
	raw, err := json.Marshal(batch)
	if err != nil {
		return nil, errs.Wrap(err, "marshal staged batch")
	}
	return raw, nil
}

func decode(raw []byte) (*payment.StagedBatch, error) {
	var batch payment.StagedBatch
	if err := json.Unmarshal(raw, &batch); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "unmarshal staged batch"), ErrCorruptBatch)
	}
	return &batch, nil
}
