package bridge

import (
	"fmt"
	"sync"
	"time"

	"mentorhub/internal/domain/payment"
	"mentorhub/internal/shared/logger"
)

// SuccessFunc receives the trusted success outcome. It is invoked at most
// once per session, synchronously with the delivering signal, and its error
// (if any) is reported back through the Disposition so the caller can show
// the "paid but not yet activated" state.
type SuccessFunc func(receiptURL string) error

// HandleConfig configures one payment session handle.
type HandleConfig struct {
	Session *payment.Session
	// SurfaceURL is the fully-expanded payment surface URL to render.
	SurfaceURL string
	// TrustedOrigin is the only origin whose signals are accepted. Exact
	// match; no wildcarding.
	TrustedOrigin string
	// LoadTimeout force-reveals the surface when no readiness signal arrives
	// in time. Zero disables the timer (tests drive readiness explicitly).
	LoadTimeout time.Duration
	// SuccessCloseDelay schedules the automatic close after success, keeping
	// the confirmation state visible for a moment first.
	SuccessCloseDelay time.Duration
	OnSuccess         SuccessFunc
}

// DispositionKind says what the bridge did with a delivered signal.
type DispositionKind string

const (
	// DispositionDropped: the signal failed origin validation or was
	// unrecognized. Logged, never surfaced to the user.
	DispositionDropped DispositionKind = "dropped"
	// DispositionSuccess: trusted success; the success callback has run.
	DispositionSuccess DispositionKind = "success"
	// DispositionFailed: provider-reported failure; session stays open for
	// retry.
	DispositionFailed DispositionKind = "failed"
	// DispositionExternalNav: the surface asked to navigate. The hosting
	// page must not follow; NavigateURL is opened in a new context.
	DispositionExternalNav DispositionKind = "external_nav"
	// DispositionReady: the surface signaled readiness.
	DispositionReady DispositionKind = "ready"
	// DispositionIgnored: signal was valid but a no-op in the current state
	// (e.g. a duplicate success after the first already fired).
	DispositionIgnored DispositionKind = "ignored"
)

// Disposition is the bridge's answer to a delivered signal.
type Disposition struct {
	Kind        DispositionKind
	State       payment.SessionState
	ReceiptURL  string
	NavigateURL string
	FailReason  string
	// ActivationErr carries the success callback's failure, the
	// paid-but-not-yet-activated condition.
	ActivationErr error
}

// Outcome is the final result a waiter observes when the session closes.
type Outcome struct {
	Success    bool
	Cancelled  bool
	ReceiptURL string
}

// Handle is one open payment session. Safe for concurrent use; signals may
// arrive from any request goroutine.
type Handle struct {
	mu   sync.Mutex
	sess *payment.Session

	surfaceURL        string
	trustedOrigin     string
	successCloseDelay time.Duration
	onSuccess         SuccessFunc
	successOnce       sync.Once
	successFired      bool

	loadTimer  *time.Timer
	closeTimer *time.Timer

	done     chan Outcome
	closed   bool
	outcome  Outcome
	onClosed func(sid string)

	logger logger.Interface
}

func newHandle(cfg HandleConfig, log logger.Interface, onClosed func(sid string)) (*Handle, error) {
	if cfg.Session == nil {
		return nil, fmt.Errorf("session is required")
	}
	if cfg.TrustedOrigin == "" {
		return nil, fmt.Errorf("trusted origin is required")
	}

	if err := cfg.Session.BeginSurfaceLoad(); err != nil {
		return nil, err
	}

	h := &Handle{
		sess:              cfg.Session,
		surfaceURL:        cfg.SurfaceURL,
		trustedOrigin:     cfg.TrustedOrigin,
		successCloseDelay: cfg.SuccessCloseDelay,
		onSuccess:         cfg.OnSuccess,
		done:              make(chan Outcome, 1),
		onClosed:          onClosed,
		logger:            log,
	}

	if cfg.LoadTimeout > 0 {
		h.loadTimer = time.AfterFunc(cfg.LoadTimeout, h.forceReveal)
	}

	return h, nil
}

func (h *Handle) SID() string {
	return h.sess.SID()
}

func (h *Handle) RecordSID() string {
	return h.sess.RecordSID()
}

func (h *Handle) UserID() uint {
	return h.sess.UserID()
}

func (h *Handle) SurfaceURL() string {
	return h.surfaceURL
}

// State returns the session's current state.
func (h *Handle) State() payment.SessionState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.sess.State()
}

// Done reports the terminal outcome once the session closes. Cancellation
// (close before any terminal signal) yields Outcome{Cancelled: true}.
func (h *Handle) Done() <-chan Outcome {
	return h.done
}

// Deliver validates and applies one surface signal. A signal whose origin
// does not exactly match the trusted origin is dropped before anything else
// happens: an embedded or injected script must never be able to forge a
// success.
func (h *Handle) Deliver(sig payment.Signal) Disposition {
	h.mu.Lock()
	defer h.mu.Unlock()

	if sig.Origin != h.trustedOrigin {
		h.logger.Warnw("dropping payment signal from untrusted origin",
			"session_sid", h.sess.SID(),
			"origin", sig.Origin,
			"kind", string(sig.Kind),
		)
		return Disposition{Kind: DispositionDropped, State: h.sess.State()}
	}

	if h.closed {
		return Disposition{Kind: DispositionIgnored, State: h.sess.State()}
	}

	switch sig.Kind {
	case payment.SignalSurfaceReady:
		return h.applySurfaceReady()
	case payment.SignalSuccess:
		return h.applySuccess(sig)
	case payment.SignalFailed:
		return h.applyFailed(sig)
	case payment.SignalRedirect:
		// The payment surface must never navigate the hosting page away.
		// The URL is handed back to be opened in a new browsing context.
		return Disposition{
			Kind:        DispositionExternalNav,
			State:       h.sess.State(),
			NavigateURL: sig.RedirectURL,
		}
	default:
		h.logger.Debugw("ignoring unrecognized payment signal",
			"session_sid", h.sess.SID(),
		)
		return Disposition{Kind: DispositionDropped, State: h.sess.State()}
	}
}

func (h *Handle) applySurfaceReady() Disposition {
	h.stopLoadTimer()
	if err := h.sess.MarkSurfaceReady(); err != nil {
		return Disposition{Kind: DispositionIgnored, State: h.sess.State()}
	}
	return Disposition{Kind: DispositionReady, State: h.sess.State()}
}

func (h *Handle) applySuccess(sig payment.Signal) Disposition {
	if h.successFired {
		// Duplicate success delivery; the callback already ran.
		return Disposition{Kind: DispositionIgnored, State: h.sess.State(), ReceiptURL: h.sess.ReceiptURL()}
	}

	if err := h.sess.MarkSuccess(sig.ReceiptURL); err != nil {
		h.logger.Warnw("success signal rejected by session state",
			"session_sid", h.sess.SID(),
			"state", string(h.sess.State()),
			"error", err,
		)
		return Disposition{Kind: DispositionIgnored, State: h.sess.State()}
	}

	h.stopLoadTimer()

	var activationErr error
	h.successOnce.Do(func() {
		h.successFired = true
		if h.onSuccess != nil {
			activationErr = h.onSuccess(sig.ReceiptURL)
		}
	})

	// The confirmation state stays visible briefly before auto-close. UX
	// timing only; the outcome is already committed.
	if h.successCloseDelay > 0 {
		h.closeTimer = time.AfterFunc(h.successCloseDelay, func() { h.Close() })
	}

	return Disposition{
		Kind:          DispositionSuccess,
		State:         h.sess.State(),
		ReceiptURL:    sig.ReceiptURL,
		ActivationErr: activationErr,
	}
}

func (h *Handle) applyFailed(sig payment.Signal) Disposition {
	if err := h.sess.MarkFailed(sig.Reason); err != nil {
		return Disposition{Kind: DispositionIgnored, State: h.sess.State()}
	}
	h.logger.Infow("payment failed, session stays open for retry",
		"session_sid", h.sess.SID(),
		"reason", sig.Reason,
	)
	return Disposition{
		Kind:       DispositionFailed,
		State:      h.sess.State(),
		FailReason: sig.Reason,
	}
}

// Close ends the session and returns the terminal outcome. Closing before
// any terminal signal is a cancellation and never invokes the success
// callback; closing after success is a no-op with respect to the callback.
// Safe to call more than once.
func (h *Handle) Close() Outcome {
	h.mu.Lock()
	if h.closed {
		out := h.outcome
		h.mu.Unlock()
		return out
	}
	h.closed = true

	h.stopLoadTimer()
	if h.closeTimer != nil {
		h.closeTimer.Stop()
		h.closeTimer = nil
	}

	outcome := Outcome{
		Success:    h.successFired,
		Cancelled:  !h.successFired,
		ReceiptURL: h.sess.ReceiptURL(),
	}
	h.outcome = outcome
	// Prevent a late success signal from firing the callback after
	// cancellation.
	h.successOnce.Do(func() {})

	h.sess.Close()
	sid := h.sess.SID()
	h.mu.Unlock()

	h.done <- outcome
	close(h.done)

	if h.onClosed != nil {
		h.onClosed(sid)
	}

	h.logger.Infow("payment session closed",
		"session_sid", sid,
		"success", outcome.Success,
	)

	return outcome
}

// forceReveal treats a stuck surface load as ready rather than blocking the
// user indefinitely.
func (h *Handle) forceReveal() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	if err := h.sess.MarkSurfaceReady(); err != nil {
		return
	}
	h.logger.Warnw("payment surface load timed out, force-revealing",
		"session_sid", h.sess.SID(),
	)
}

func (h *Handle) stopLoadTimer() {
	if h.loadTimer != nil {
		h.loadTimer.Stop()
		h.loadTimer = nil
	}
}
