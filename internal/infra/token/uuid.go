package token

import (
	"strings"

	"gift-commerce/internal/pkg/errs"

	"github.com/google/uuid"
)

// UUIDFactory issues random (v4) identifiers. Callers must not parse them.
type UUIDFactory struct{}

func NewUUIDFactory() *UUIDFactory {
	return &UUIDFactory{}
}

func (f *UUIDFactory) StagingToken() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", errs.Wrap(err, "generate staging token")
	}
	return id.String(), nil
}

func (f *UUIDFactory) OrderNumber() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", errs.Wrap(err, "generate order number")
	}
	return strings.ReplaceAll(id.String(), "-", ""), nil
}
