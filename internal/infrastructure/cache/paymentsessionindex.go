package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// PaymentSessionIndex is the Redis-backed claim on a (user, domain) pair
// while a payment session is open. SET NX with a TTL: a double-clicked
// subscribe button loses the claim, and an abandoned claim expires on its
// own.
type PaymentSessionIndex struct {
	client *redis.Client
	prefix string
}

func NewPaymentSessionIndex(client *redis.Client) *PaymentSessionIndex {
	return &PaymentSessionIndex{
		client: client,
		prefix: "payment:session:",
	}
}

func (i *PaymentSessionIndex) key(userEmail, domainSlug string) string {
	return i.prefix + userEmail + ":" + domainSlug
}

// Acquire claims the pair. Returns false when another session already holds
// the claim.
func (i *PaymentSessionIndex) Acquire(ctx context.Context, userEmail, domainSlug string, ttl time.Duration) (bool, error) {
	ok, err := i.client.SetNX(ctx, i.key(userEmail, domainSlug), "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire session index: %w", err)
	}
	return ok, nil
}

func (i *PaymentSessionIndex) Release(ctx context.Context, userEmail, domainSlug string) error {
	if err := i.client.Del(ctx, i.key(userEmail, domainSlug)).Err(); err != nil {
		return fmt.Errorf("failed to release session index: %w", err)
	}
	return nil
}
