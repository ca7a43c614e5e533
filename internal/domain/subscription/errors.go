package subscription

import "errors"

var (
	// ErrAlreadySubscribed is returned when a subscription request targets a
	// domain for which an active, unexpired record already exists.
	ErrAlreadySubscribed = errors.New("already subscribed to this domain")

	// ErrRecordNotFound is returned when a ledger lookup finds nothing.
	ErrRecordNotFound = errors.New("subscription record not found")
)
