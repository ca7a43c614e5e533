package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentorhub/internal/domain/subscription"
	"mentorhub/internal/shared/biztime"
	"mentorhub/internal/shared/logger"
)

func newGate(repo *fakeRecordRepo, now time.Time) *ContentGate {
	return NewContentGate(repo, biztime.FixedClock{T: now}, logger.NewNop())
}

func TestContentGateUnlocksActiveDomain(t *testing.T) {
	repo := newFakeRecordRepo()
	record := seedPendingRecord(t, repo)
	require.NoError(t, record.Activate(testNow, 30))

	gate := newGate(repo, testNow.AddDate(0, 0, 1))
	assert.True(t, gate.IsDomainUnlocked(context.Background(), "mentee@example.com", "golang-backend"))
}

func TestContentGateLocksAfterExpiry(t *testing.T) {
	repo := newFakeRecordRepo()
	record := seedPendingRecord(t, repo)
	require.NoError(t, record.Activate(testNow, 30))

	// Day 31: the stored status still says active, but the gate reads the
	// clock, not the column.
	gate := newGate(repo, testNow.AddDate(0, 0, 31))
	assert.Equal(t, subscription.StatusActive, record.Status())
	assert.False(t, gate.IsDomainUnlocked(context.Background(), "mentee@example.com", "golang-backend"))
}

func TestContentGateLocksPendingRecord(t *testing.T) {
	repo := newFakeRecordRepo()
	seedPendingRecord(t, repo)

	gate := newGate(repo, testNow)
	assert.False(t, gate.IsDomainUnlocked(context.Background(), "mentee@example.com", "golang-backend"))
}

func TestContentGateLocksUnknownDomain(t *testing.T) {
	gate := newGate(newFakeRecordRepo(), testNow)
	assert.False(t, gate.IsDomainUnlocked(context.Background(), "mentee@example.com", "golang-backend"))
}

func TestContentGateFailsClosedOnLedgerError(t *testing.T) {
	repo := newFakeRecordRepo()
	record := seedPendingRecord(t, repo)
	require.NoError(t, record.Activate(testNow, 30))
	repo.findErr = assert.AnError

	gate := newGate(repo, testNow)
	assert.False(t, gate.IsDomainUnlocked(context.Background(), "mentee@example.com", "golang-backend"))
	assert.Empty(t, gate.UnlockedDomains(context.Background(), "mentee@example.com"))
}

func TestContentGateUnlockedDomains(t *testing.T) {
	repo := newFakeRecordRepo()

	active, err := subscription.NewPendingRecord(7, "mentee@example.com", "golang-backend")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), active))
	require.NoError(t, active.Activate(testNow, 30))

	lapsed, err := subscription.NewPendingRecord(7, "mentee@example.com", "system-design")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), lapsed))
	require.NoError(t, lapsed.Activate(testNow.AddDate(0, 0, -60), 30))

	pending, err := subscription.NewPendingRecord(7, "mentee@example.com", "career-coaching")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), pending))

	unlocked := newGate(repo, testNow).UnlockedDomains(context.Background(), "mentee@example.com")
	assert.Equal(t, map[string]bool{"golang-backend": true}, unlocked)
}
