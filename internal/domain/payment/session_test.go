package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	sess, err := NewSession("sub_test1", "golang-backend", 42, "mentee@example.com")
	require.NoError(t, err)
	return sess
}

func TestNewSession(t *testing.T) {
	sess := newTestSession(t)

	assert.NotEmpty(t, sess.SID())
	assert.Equal(t, "sub_test1", sess.RecordSID())
	assert.Equal(t, "golang-backend", sess.DomainSlug())
	assert.Equal(t, uint(42), sess.UserID())
	assert.Equal(t, StateIdle, sess.State())
	assert.False(t, sess.IsTerminal())
}

func TestNewSessionValidation(t *testing.T) {
	_, err := NewSession("", "golang-backend", 42, "a@b.c")
	assert.Error(t, err)

	_, err = NewSession("sub_test1", "", 42, "a@b.c")
	assert.Error(t, err)

	_, err = NewSession("sub_test1", "golang-backend", 0, "a@b.c")
	assert.Error(t, err)
}

func TestSessionHappyPath(t *testing.T) {
	sess := newTestSession(t)

	require.NoError(t, sess.BeginSurfaceLoad())
	assert.Equal(t, StateAwaitingSurfaceLoad, sess.State())

	require.NoError(t, sess.MarkSurfaceReady())
	assert.Equal(t, StateSurfaceReady, sess.State())

	require.NoError(t, sess.MarkSuccess("https://pay.example.com/receipt/1"))
	assert.Equal(t, StateSuccess, sess.State())
	assert.Equal(t, "https://pay.example.com/receipt/1", sess.ReceiptURL())
	assert.True(t, sess.IsTerminal())

	sess.Close()
	assert.Equal(t, StateClosed, sess.State())
}

func TestSessionSurfaceReadyIdempotent(t *testing.T) {
	sess := newTestSession(t)
	require.NoError(t, sess.BeginSurfaceLoad())

	require.NoError(t, sess.MarkSurfaceReady())
	require.NoError(t, sess.MarkSurfaceReady())
	assert.Equal(t, StateSurfaceReady, sess.State())
}

func TestSessionSuccessBeforeReady(t *testing.T) {
	// A provider may report success while the readiness signal was lost.
	sess := newTestSession(t)
	require.NoError(t, sess.BeginSurfaceLoad())

	require.NoError(t, sess.MarkSuccess("https://pay.example.com/r/1"))
	assert.Equal(t, StateSuccess, sess.State())
}

func TestSessionRetryAfterFailure(t *testing.T) {
	sess := newTestSession(t)
	require.NoError(t, sess.BeginSurfaceLoad())
	require.NoError(t, sess.MarkSurfaceReady())

	require.NoError(t, sess.MarkFailed("card_declined"))
	assert.Equal(t, StateFailed, sess.State())
	assert.Equal(t, "card_declined", sess.FailReason())

	// The session stays open after a failure so the user may retry.
	require.NoError(t, sess.MarkSuccess("https://pay.example.com/r/2"))
	assert.Equal(t, StateSuccess, sess.State())
}

func TestSessionRepeatedFailures(t *testing.T) {
	sess := newTestSession(t)
	require.NoError(t, sess.BeginSurfaceLoad())

	require.NoError(t, sess.MarkFailed("card_declined"))
	require.NoError(t, sess.MarkFailed("insufficient_funds"))
	assert.Equal(t, "insufficient_funds", sess.FailReason())
}

func TestSessionIllegalTransitions(t *testing.T) {
	t.Run("success from idle", func(t *testing.T) {
		sess := newTestSession(t)
		assert.Error(t, sess.MarkSuccess("url"))
	})

	t.Run("second success rejected", func(t *testing.T) {
		sess := newTestSession(t)
		require.NoError(t, sess.BeginSurfaceLoad())
		require.NoError(t, sess.MarkSuccess("url1"))
		assert.Error(t, sess.MarkSuccess("url2"))
		assert.Equal(t, "url1", sess.ReceiptURL())
	})

	t.Run("begin load twice", func(t *testing.T) {
		sess := newTestSession(t)
		require.NoError(t, sess.BeginSurfaceLoad())
		assert.Error(t, sess.BeginSurfaceLoad())
	})

	t.Run("ready after close", func(t *testing.T) {
		sess := newTestSession(t)
		require.NoError(t, sess.BeginSurfaceLoad())
		sess.Close()
		assert.Error(t, sess.MarkSurfaceReady())
	})
}

func TestSessionCloseIsAlwaysLegal(t *testing.T) {
	sess := newTestSession(t)
	sess.Close()
	assert.Equal(t, StateClosed, sess.State())

	// Repeated close is a no-op.
	sess.Close()
	assert.Equal(t, StateClosed, sess.State())
}
