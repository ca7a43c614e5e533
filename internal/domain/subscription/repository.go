package subscription

import (
	"context"
	"time"
)

// Repository is the persistence port for the subscription ledger. Writes must
// be read-modify-write safe against the "at most one non-terminal record per
// (user, domain)" invariant; the gorm implementation backs this with a
// check-then-insert under a uniqueness constraint and retry-on-conflict.
type Repository interface {
	Create(ctx context.Context, r *Record) error
	Update(ctx context.Context, r *Record) error
	GetBySID(ctx context.Context, sid string) (*Record, error)
	// FindByUserAndDomain returns the most recent record for the pair, or
	// ErrRecordNotFound when none exists. Used to detect duplicates before
	// creating a new pending request.
	FindByUserAndDomain(ctx context.Context, userEmail, domainSlug string) (*Record, error)
	// ListActiveForUser returns records with expiresAt strictly after now,
	// ordered by domain slug. Expiry is re-evaluated at query time; the
	// stored status field is not trusted on its own.
	ListActiveForUser(ctx context.Context, userEmail string, now time.Time) ([]*Record, error)
	// ListByUser returns every record for the user, newest first.
	ListByUser(ctx context.Context, userEmail string) ([]*Record, error)
	// ListActivationPending returns records whose payment succeeded but
	// whose activation could not be persisted at the time.
	ListActivationPending(ctx context.Context) ([]*Record, error)
}
