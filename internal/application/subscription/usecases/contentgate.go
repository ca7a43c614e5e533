package usecases

import (
	"context"
	"errors"

	"mentorhub/internal/domain/subscription"
	"mentorhub/internal/shared/biztime"
	"mentorhub/internal/shared/logger"
)

// ContentGate answers the one question protected content needs: does this
// user hold an unexpired subscription for this domain right now?
//
// The gate fails closed. A ledger read error is logged and reported as
// locked; it never unlocks content.
type ContentGate struct {
	recordRepo subscription.Repository
	clock      biztime.Clock
	logger     logger.Interface
}

func NewContentGate(
	recordRepo subscription.Repository,
	clock biztime.Clock,
	log logger.Interface,
) *ContentGate {
	return &ContentGate{
		recordRepo: recordRepo,
		clock:      clock,
		logger:     log,
	}
}

// IsDomainUnlocked evaluates expiry against the live clock on every call.
func (g *ContentGate) IsDomainUnlocked(ctx context.Context, userEmail, domainSlug string) bool {
	record, err := g.recordRepo.FindByUserAndDomain(ctx, userEmail, domainSlug)
	if err != nil {
		if !errors.Is(err, subscription.ErrRecordNotFound) {
			g.logger.Warnw("content gate ledger read failed, treating as locked",
				"user_email", userEmail,
				"domain", domainSlug,
				"error", err,
			)
		}
		return false
	}
	return record.IsActiveAt(g.clock.Now())
}

// UnlockedDomains returns the set of domain slugs the user currently holds
// active subscriptions for, for rendering lock badges in one pass.
func (g *ContentGate) UnlockedDomains(ctx context.Context, userEmail string) map[string]bool {
	unlocked := make(map[string]bool)
	records, err := g.recordRepo.ListActiveForUser(ctx, userEmail, g.clock.Now())
	if err != nil {
		g.logger.Warnw("content gate listing failed, treating all domains as locked",
			"user_email", userEmail,
			"error", err,
		)
		return unlocked
	}
	for _, r := range records {
		unlocked[r.DomainSlug()] = true
	}
	return unlocked
}
