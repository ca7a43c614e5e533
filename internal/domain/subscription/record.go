// Package subscription holds the durable ledger of subscription state per
// user and content domain.
package subscription

import (
	"fmt"
	"time"

	"mentorhub/internal/shared/biztime"
	"mentorhub/internal/shared/id"
)

// Status is the stored lifecycle state of a subscription record.
type Status string

const (
	StatusPending Status = "pending"
	StatusActive  Status = "active"
	StatusExpired Status = "expired"
)

var validStatuses = map[Status]bool{
	StatusPending: true,
	StatusActive:  true,
	StatusExpired: true,
}

// Record is the subscription ledger aggregate. At most one non-terminal
// (pending or active) record exists per (user, domain) pair; callers look up
// an existing record before creating a new one. A record whose expiresAt has
// passed is logically expired regardless of the stored status field, so
// expiry must always be evaluated against a live clock.
type Record struct {
	dbID       uint
	sid        string
	userID     uint
	userEmail  string
	domainSlug string
	status     Status
	expiresAt  *time.Time
	// activationPending marks a record whose payment succeeded but whose
	// promotion to active could not be persisted. A background sweep retries
	// these.
	activationPending bool
	metadata          map[string]interface{}
	version           int
	createdAt         time.Time
	updatedAt         time.Time
}

// NewPendingRecord creates a pending subscription request for (user, domain).
// Pending records carry no expiry.
func NewPendingRecord(userID uint, userEmail, domainSlug string) (*Record, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if userEmail == "" {
		return nil, fmt.Errorf("user email is required")
	}
	if domainSlug == "" {
		return nil, fmt.Errorf("domain slug is required")
	}

	now := biztime.NowUTC()
	return &Record{
		sid:        id.MustGenerateWithPrefix(id.PrefixSubscription, id.DefaultLength),
		userID:     userID,
		userEmail:  userEmail,
		domainSlug: domainSlug,
		status:     StatusPending,
		metadata:   make(map[string]interface{}),
		version:    1,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructRecord rebuilds a record from persistence.
func ReconstructRecord(
	dbID uint,
	sid string,
	userID uint,
	userEmail, domainSlug string,
	status Status,
	expiresAt *time.Time,
	activationPending bool,
	metadata map[string]interface{},
	version int,
	createdAt, updatedAt time.Time,
) (*Record, error) {
	if dbID == 0 {
		return nil, fmt.Errorf("record ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !validStatuses[status] {
		return nil, fmt.Errorf("invalid subscription status: %s", status)
	}
	if metadata == nil {
		metadata = make(map[string]interface{})
	}

	return &Record{
		dbID:              dbID,
		sid:               sid,
		userID:            userID,
		userEmail:         userEmail,
		domainSlug:        domainSlug,
		status:            status,
		expiresAt:         expiresAt,
		activationPending: activationPending,
		metadata:          metadata,
		version:           version,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

func (r *Record) DBID() uint {
	return r.dbID
}

func (r *Record) SID() string {
	return r.sid
}

func (r *Record) UserID() uint {
	return r.userID
}

func (r *Record) UserEmail() string {
	return r.userEmail
}

func (r *Record) DomainSlug() string {
	return r.domainSlug
}

func (r *Record) Status() Status {
	return r.status
}

func (r *Record) ExpiresAt() *time.Time {
	return r.expiresAt
}

func (r *Record) Metadata() map[string]interface{} {
	return r.metadata
}

func (r *Record) Version() int {
	return r.version
}

func (r *Record) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Record) UpdatedAt() time.Time {
	return r.updatedAt
}

// SetID sets the database ID after persistence.
func (r *Record) SetID(dbID uint) error {
	if r.dbID != 0 {
		return fmt.Errorf("record ID is already set")
	}
	if dbID == 0 {
		return fmt.Errorf("record ID cannot be zero")
	}
	r.dbID = dbID
	return nil
}

// SetMetadata sets a metadata key-value pair.
func (r *Record) SetMetadata(key string, value interface{}) {
	if r.metadata == nil {
		r.metadata = make(map[string]interface{})
	}
	r.metadata[key] = value
	r.updatedAt = biztime.NowUTC()
}

// ActivationPending reports whether payment succeeded but the promotion to
// active has not been persisted yet.
func (r *Record) ActivationPending() bool {
	return r.activationPending
}

// MarkActivationPending flags the record for the activation retry sweep.
func (r *Record) MarkActivationPending() {
	r.activationPending = true
	r.updatedAt = biztime.NowUTC()
}

// ClearActivationPending removes the retry flag once activation persisted.
func (r *Record) ClearActivationPending() {
	r.activationPending = false
	r.updatedAt = biztime.NowUTC()
}

// Activate promotes the record to active with an expiry of now + the given
// duration. Idempotent: activating an already-active record re-extends the
// expiry from now rather than erroring. Re-activating is harmless; the
// at-most-once guard against re-charging lives in the payment session
// bridge, not here.
func (r *Record) Activate(now time.Time, durationDays int) error {
	if durationDays <= 0 {
		return fmt.Errorf("duration must be positive, got %d days", durationDays)
	}

	expiresAt := now.UTC().AddDate(0, 0, durationDays)
	r.status = StatusActive
	r.expiresAt = &expiresAt
	r.activationPending = false
	r.updatedAt = now.UTC()
	r.version++

	return nil
}

// IsExpiredAt reports whether the record's access has lapsed at the given
// instant. A record without an expiry (pending) is not expired; it simply
// grants nothing.
func (r *Record) IsExpiredAt(now time.Time) bool {
	return r.expiresAt != nil && !r.expiresAt.After(now)
}

// IsActiveAt reports whether the record grants access at the given instant.
// The stored status alone is never trusted: a stale "active" row whose
// expiry has passed does not grant access.
func (r *Record) IsActiveAt(now time.Time) bool {
	return r.status == StatusActive && r.expiresAt != nil && r.expiresAt.After(now)
}

// IsPending reports whether the record is an open subscription request.
func (r *Record) IsPending() bool {
	return r.status == StatusPending
}

// MarkExpired reconciles the stored status with a lapsed expiry. Expiry is
// reached implicitly by time passing; this only makes the stored field match.
func (r *Record) MarkExpired(now time.Time) error {
	if r.status == StatusExpired {
		return nil
	}
	if !r.IsExpiredAt(now) {
		return fmt.Errorf("record %s has not lapsed yet", r.sid)
	}

	r.status = StatusExpired
	r.updatedAt = now.UTC()
	r.version++
	return nil
}

// Validate performs domain-level validation.
func (r *Record) Validate() error {
	if r.userID == 0 {
		return fmt.Errorf("user ID is required")
	}
	if r.domainSlug == "" {
		return fmt.Errorf("domain slug is required")
	}
	if !validStatuses[r.status] {
		return fmt.Errorf("invalid status: %s", r.status)
	}
	if r.status == StatusActive && r.expiresAt == nil {
		return fmt.Errorf("active record must have an expiry")
	}
	if r.status == StatusPending && r.expiresAt != nil {
		return fmt.Errorf("pending record must not have an expiry")
	}
	return nil
}
