package usecases

import (
	"context"
	"time"

	"mentorhub/internal/domain/subscription"
)

// SessionIndex is the cross-process guard against concurrent payment sessions
// for the same (user, domain) pair, e.g. a double-clicked subscribe button.
// Backed by redis SET NX with a TTL so an abandoned claim expires on its own.
type SessionIndex interface {
	// Acquire claims the pair. Returns false when another session already
	// holds the claim.
	Acquire(ctx context.Context, userEmail, domainSlug string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, userEmail, domainSlug string) error
}

// SupportNotifier alerts operations when money moved but the ledger update
// failed, so the record can be reconciled by hand if the retry sweep cannot.
type SupportNotifier interface {
	NotifyActivationFailure(ctx context.Context, record *subscription.Record, cause error) error
}
