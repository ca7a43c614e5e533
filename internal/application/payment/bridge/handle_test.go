package bridge

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentorhub/internal/domain/payment"
	"mentorhub/internal/shared/logger"
)

const trustedOrigin = "https://pay.example.com"

func newTestSession(t *testing.T) *payment.Session {
	t.Helper()
	sess, err := payment.NewSession("sub_test1", "golang-backend", 42, "mentee@example.com")
	require.NoError(t, err)
	return sess
}

func openTestHandle(t *testing.T, b *Bridge, onSuccess SuccessFunc) *Handle {
	t.Helper()
	h, err := b.Open(HandleConfig{
		Session:       newTestSession(t),
		SurfaceURL:    "https://pay.example.com/checkout?record=sub_test1",
		TrustedOrigin: trustedOrigin,
		OnSuccess:     onSuccess,
	})
	require.NoError(t, err)
	return h
}

func successSignal(receiptURL string) payment.Signal {
	return payment.Signal{Kind: payment.SignalSuccess, Origin: trustedOrigin, ReceiptURL: receiptURL}
}

func readySignal() payment.Signal {
	return payment.Signal{Kind: payment.SignalSurfaceReady, Origin: trustedOrigin}
}

func TestBridgeOpenAndGet(t *testing.T) {
	b := New(logger.NewNop())
	h := openTestHandle(t, b, nil)

	assert.Equal(t, h, b.Get(h.SID()))
	assert.Equal(t, h, b.GetByRecord("sub_test1"))
	assert.Equal(t, 1, b.OpenCount())
	assert.Nil(t, b.Get("pay_missing"))
	assert.Nil(t, b.GetByRecord("sub_other"))
	assert.Equal(t, payment.StateAwaitingSurfaceLoad, h.State())
}

func TestForgedOriginDroppedWithoutStateChange(t *testing.T) {
	b := New(logger.NewNop())

	var calls int
	h := openTestHandle(t, b, func(receiptURL string) error {
		calls++
		return nil
	})

	disp := h.Deliver(payment.Signal{
		Kind:       payment.SignalSuccess,
		Origin:     "https://evil.example.com",
		ReceiptURL: "https://evil.example.com/fake",
	})

	assert.Equal(t, DispositionDropped, disp.Kind)
	assert.Equal(t, payment.StateAwaitingSurfaceLoad, h.State())
	assert.Zero(t, calls)
}

func TestSuccessCallbackFiresExactlyOnce(t *testing.T) {
	b := New(logger.NewNop())

	var mu sync.Mutex
	var receipts []string
	h := openTestHandle(t, b, func(receiptURL string) error {
		mu.Lock()
		receipts = append(receipts, receiptURL)
		mu.Unlock()
		return nil
	})

	h.Deliver(readySignal())

	first := h.Deliver(successSignal("https://pay.example.com/r/1"))
	assert.Equal(t, DispositionSuccess, first.Kind)
	assert.Equal(t, "https://pay.example.com/r/1", first.ReceiptURL)
	assert.NoError(t, first.ActivationErr)

	// A duplicate success delivery must not re-run the callback.
	second := h.Deliver(successSignal("https://pay.example.com/r/dup"))
	assert.Equal(t, DispositionIgnored, second.Kind)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"https://pay.example.com/r/1"}, receipts)
}

func TestConcurrentSuccessDeliveries(t *testing.T) {
	b := New(logger.NewNop())

	var mu sync.Mutex
	var calls int
	h := openTestHandle(t, b, func(receiptURL string) error {
		mu.Lock()
		calls++
		mu.Unlock()
		return nil
	})
	h.Deliver(readySignal())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.Deliver(successSignal("https://pay.example.com/r/1"))
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, calls)
}

func TestActivationErrorSurfacedInDisposition(t *testing.T) {
	b := New(logger.NewNop())
	activationErr := errors.New("ledger write failed")

	h := openTestHandle(t, b, func(receiptURL string) error {
		return activationErr
	})
	h.Deliver(readySignal())

	disp := h.Deliver(successSignal("https://pay.example.com/r/1"))
	assert.Equal(t, DispositionSuccess, disp.Kind)
	assert.ErrorIs(t, disp.ActivationErr, activationErr)
}

func TestFailureKeepsSessionOpenForRetry(t *testing.T) {
	b := New(logger.NewNop())

	var calls int
	h := openTestHandle(t, b, func(receiptURL string) error {
		calls++
		return nil
	})
	h.Deliver(readySignal())

	failed := h.Deliver(payment.Signal{Kind: payment.SignalFailed, Origin: trustedOrigin, Reason: "card_declined"})
	assert.Equal(t, DispositionFailed, failed.Kind)
	assert.Equal(t, "card_declined", failed.FailReason)
	assert.Equal(t, payment.StateFailed, h.State())

	// Retry on the same session still succeeds.
	retried := h.Deliver(successSignal("https://pay.example.com/r/2"))
	assert.Equal(t, DispositionSuccess, retried.Kind)
	assert.Equal(t, 1, calls)
}

func TestCancellationOutcome(t *testing.T) {
	b := New(logger.NewNop())

	var calls int
	h := openTestHandle(t, b, func(receiptURL string) error {
		calls++
		return nil
	})

	outcome := h.Close()
	assert.True(t, outcome.Cancelled)
	assert.False(t, outcome.Success)
	assert.Zero(t, calls)

	// The session is gone from the registry once closed.
	assert.Nil(t, b.Get(h.SID()))
	assert.Equal(t, 0, b.OpenCount())
}

func TestLateSuccessAfterCloseDoesNotFireCallback(t *testing.T) {
	b := New(logger.NewNop())

	var calls int
	h := openTestHandle(t, b, func(receiptURL string) error {
		calls++
		return nil
	})

	h.Close()

	disp := h.Deliver(successSignal("https://pay.example.com/r/late"))
	assert.Equal(t, DispositionIgnored, disp.Kind)
	assert.Zero(t, calls)
}

func TestCloseAfterSuccessReportsSuccess(t *testing.T) {
	b := New(logger.NewNop())
	h := openTestHandle(t, b, func(receiptURL string) error { return nil })
	h.Deliver(readySignal())
	h.Deliver(successSignal("https://pay.example.com/r/1"))

	outcome := h.Close()
	assert.True(t, outcome.Success)
	assert.False(t, outcome.Cancelled)
	assert.Equal(t, "https://pay.example.com/r/1", outcome.ReceiptURL)

	// Repeated close returns the stored outcome.
	again := h.Close()
	assert.Equal(t, outcome, again)
}

func TestDoneReportsOutcome(t *testing.T) {
	b := New(logger.NewNop())
	h := openTestHandle(t, b, nil)

	go h.Close()

	select {
	case outcome := <-h.Done():
		assert.True(t, outcome.Cancelled)
	case <-time.After(time.Second):
		t.Fatal("Done() did not report after Close")
	}
}

func TestLoadTimeoutForceReveals(t *testing.T) {
	b := New(logger.NewNop())
	h, err := b.Open(HandleConfig{
		Session:       newTestSession(t),
		SurfaceURL:    "https://pay.example.com/checkout",
		TrustedOrigin: trustedOrigin,
		LoadTimeout:   10 * time.Millisecond,
	})
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return h.State() == payment.StateSurfaceReady
	}, time.Second, 5*time.Millisecond)
}

func TestSuccessAutoCloseAfterDelay(t *testing.T) {
	b := New(logger.NewNop())
	h, err := b.Open(HandleConfig{
		Session:           newTestSession(t),
		SurfaceURL:        "https://pay.example.com/checkout",
		TrustedOrigin:     trustedOrigin,
		SuccessCloseDelay: 10 * time.Millisecond,
		OnSuccess:         func(receiptURL string) error { return nil },
	})
	require.NoError(t, err)

	h.Deliver(readySignal())
	h.Deliver(successSignal("https://pay.example.com/r/1"))

	select {
	case outcome := <-h.Done():
		assert.True(t, outcome.Success)
	case <-time.After(time.Second):
		t.Fatal("session did not auto-close after success")
	}
	assert.Equal(t, 0, b.OpenCount())
}

func TestRedirectNeverNavigatesHostingPage(t *testing.T) {
	b := New(logger.NewNop())
	h := openTestHandle(t, b, nil)

	disp := h.Deliver(payment.Signal{
		Kind:        payment.SignalRedirect,
		Origin:      trustedOrigin,
		RedirectURL: "https://bank.example.com/3ds",
	})

	assert.Equal(t, DispositionExternalNav, disp.Kind)
	assert.Equal(t, "https://bank.example.com/3ds", disp.NavigateURL)
	// Session state is untouched by navigation requests.
	assert.Equal(t, payment.StateAwaitingSurfaceLoad, h.State())
}

func TestOpenRequiresTrustedOrigin(t *testing.T) {
	b := New(logger.NewNop())
	_, err := b.Open(HandleConfig{
		Session:    newTestSession(t),
		SurfaceURL: "https://pay.example.com/checkout",
	})
	assert.Error(t, err)
}
