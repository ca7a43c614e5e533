package payment

import (
	"fmt"
	"time"

	"mentorhub/internal/shared/biztime"
	"mentorhub/internal/shared/id"
)

// SessionState is the lifecycle state of a payment attempt.
//
//	idle -> awaitingSurfaceLoad -> surfaceReady -> {success, failed} -> closed
//
// success and failed are terminal for a given session instance; closed
// follows either once the bridge hands control back to the caller.
type SessionState string

const (
	StateIdle                SessionState = "idle"
	StateAwaitingSurfaceLoad SessionState = "awaiting_surface_load"
	StateSurfaceReady        SessionState = "surface_ready"
	StateSuccess             SessionState = "success"
	StateFailed              SessionState = "failed"
	StateClosed              SessionState = "closed"
)

// Session is one payment attempt scoped to a single subscription record. It
// is ephemeral: owned exclusively by the workflow invocation that created it
// and discarded after success or cancellation. It never outlives the bridge.
type Session struct {
	sid        string
	recordSID  string
	domainSlug string
	userID     uint
	userEmail  string
	state      SessionState
	receiptURL string
	failReason string
	openedAt   time.Time
	updatedAt  time.Time
}

// NewSession creates a session bound to a pending subscription record.
func NewSession(recordSID, domainSlug string, userID uint, userEmail string) (*Session, error) {
	if recordSID == "" {
		return nil, fmt.Errorf("subscription record SID is required")
	}
	if domainSlug == "" {
		return nil, fmt.Errorf("domain slug is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	now := biztime.NowUTC()
	return &Session{
		sid:        id.MustGenerateWithPrefix(id.PrefixPaySession, id.DefaultLength),
		recordSID:  recordSID,
		domainSlug: domainSlug,
		userID:     userID,
		userEmail:  userEmail,
		state:      StateIdle,
		openedAt:   now,
		updatedAt:  now,
	}, nil
}

func (s *Session) SID() string {
	return s.sid
}

func (s *Session) RecordSID() string {
	return s.recordSID
}

func (s *Session) DomainSlug() string {
	return s.domainSlug
}

func (s *Session) UserID() uint {
	return s.userID
}

func (s *Session) UserEmail() string {
	return s.userEmail
}

func (s *Session) State() SessionState {
	return s.state
}

func (s *Session) ReceiptURL() string {
	return s.receiptURL
}

func (s *Session) FailReason() string {
	return s.failReason
}

func (s *Session) OpenedAt() time.Time {
	return s.openedAt
}

// IsTerminal reports whether a terminal payment outcome has been reached.
func (s *Session) IsTerminal() bool {
	return s.state == StateSuccess || s.state == StateFailed || s.state == StateClosed
}

// BeginSurfaceLoad moves the session out of idle once the surface render has
// been issued.
func (s *Session) BeginSurfaceLoad() error {
	if s.state != StateIdle {
		return fmt.Errorf("cannot begin surface load from state %s", s.state)
	}
	s.transition(StateAwaitingSurfaceLoad)
	return nil
}

// MarkSurfaceReady records that the surface signaled readiness, or that the
// load timeout forced a reveal. Idempotent while the session is open.
func (s *Session) MarkSurfaceReady() error {
	switch s.state {
	case StateSurfaceReady:
		return nil
	case StateAwaitingSurfaceLoad:
		s.transition(StateSurfaceReady)
		return nil
	default:
		return fmt.Errorf("cannot mark surface ready from state %s", s.state)
	}
}

// MarkSuccess records the trusted success outcome. Only legal while the
// surface is open; a second success on the same session is rejected so the
// bridge's at-most-once delivery holds.
func (s *Session) MarkSuccess(receiptURL string) error {
	if s.state != StateAwaitingSurfaceLoad && s.state != StateSurfaceReady && s.state != StateFailed {
		return fmt.Errorf("cannot mark success from state %s", s.state)
	}
	s.receiptURL = receiptURL
	s.transition(StateSuccess)
	return nil
}

// MarkFailed records a provider-reported failure. The session stays open so
// the user may retry; a later genuine success is still accepted.
func (s *Session) MarkFailed(reason string) error {
	if s.state != StateAwaitingSurfaceLoad && s.state != StateSurfaceReady && s.state != StateFailed {
		return fmt.Errorf("cannot mark failed from state %s", s.state)
	}
	s.failReason = reason
	s.transition(StateFailed)
	return nil
}

// Close ends the session. Always permitted: closing before a terminal state
// is cancellation, closing after one is the normal hand-back.
func (s *Session) Close() {
	if s.state == StateClosed {
		return
	}
	s.transition(StateClosed)
}

func (s *Session) transition(to SessionState) {
	s.state = to
	s.updatedAt = biztime.NowUTC()
}
