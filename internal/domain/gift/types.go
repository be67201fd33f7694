package gift

import "errors"

type Status string

const (
	StatusNotUsed Status = "NOT_USED"
	StatusUsed    Status = "USED"
	StatusExpired Status = "EXPIRED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusNotUsed, StatusUsed, StatusExpired:
		return true
	default:
		return false
	}
}

var (
	ErrMissingReceipt    = errors.New("gift must reference a receipt")
	ErrMissingParty      = errors.New("gift requires sender and recipient")
	ErrExpiryNotInFuture = errors.New("gift expiry must be after creation")
)
