package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentorhub/internal/domain/subscription"
	"mentorhub/internal/shared/biztime"
	apperrors "mentorhub/internal/shared/errors"
	"mentorhub/internal/shared/logger"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newRequestUC(recordRepo *fakeRecordRepo, catalogRepo *fakeCatalogRepo, now time.Time) *RequestSubscriptionUseCase {
	return NewRequestSubscriptionUseCase(recordRepo, catalogRepo, biztime.FixedClock{T: now}, logger.NewNop())
}

func TestRequestSubscriptionCreatesPendingRecord(t *testing.T) {
	recordRepo := newFakeRecordRepo()
	uc := newRequestUC(recordRepo, newFakeCatalogRepo("golang-backend"), testNow)

	result, err := uc.Execute(context.Background(), RequestSubscriptionCommand{
		UserID:     7,
		UserEmail:  "mentee@example.com",
		DomainSlug: "golang-backend",
	})
	require.NoError(t, err)

	assert.False(t, result.Reused)
	assert.True(t, result.Record.IsPending())
	assert.Equal(t, "golang-backend", result.Record.DomainSlug())
	assert.Len(t, recordRepo.records, 1)
}

func TestRequestSubscriptionUnknownDomain(t *testing.T) {
	uc := newRequestUC(newFakeRecordRepo(), newFakeCatalogRepo("golang-backend"), testNow)

	_, err := uc.Execute(context.Background(), RequestSubscriptionCommand{
		UserID:     7,
		UserEmail:  "mentee@example.com",
		DomainSlug: "no-such-domain",
	})
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestRequestSubscriptionReusesPendingRecord(t *testing.T) {
	recordRepo := newFakeRecordRepo()
	uc := newRequestUC(recordRepo, newFakeCatalogRepo("golang-backend"), testNow)

	cmd := RequestSubscriptionCommand{UserID: 7, UserEmail: "mentee@example.com", DomainSlug: "golang-backend"}

	first, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)

	// A double-click or abandoned attempt never mints a second pending
	// record for the same pair.
	second, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)

	assert.True(t, second.Reused)
	assert.Equal(t, first.Record.SID(), second.Record.SID())
	assert.Len(t, recordRepo.records, 1)
}

func TestRequestSubscriptionAlreadyActive(t *testing.T) {
	recordRepo := newFakeRecordRepo()
	uc := newRequestUC(recordRepo, newFakeCatalogRepo("golang-backend"), testNow)

	cmd := RequestSubscriptionCommand{UserID: 7, UserEmail: "mentee@example.com", DomainSlug: "golang-backend"}

	result, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)
	require.NoError(t, result.Record.Activate(testNow, 30))

	_, err = uc.Execute(context.Background(), cmd)
	assert.True(t, apperrors.IsConflictError(err))
}

func TestRequestSubscriptionAfterLapseCreatesFresh(t *testing.T) {
	recordRepo := newFakeRecordRepo()
	catalogRepo := newFakeCatalogRepo("golang-backend")

	cmd := RequestSubscriptionCommand{UserID: 7, UserEmail: "mentee@example.com", DomainSlug: "golang-backend"}

	first, err := newRequestUC(recordRepo, catalogRepo, testNow).Execute(context.Background(), cmd)
	require.NoError(t, err)
	require.NoError(t, first.Record.Activate(testNow, 30))

	// 31 days later the record has lapsed but its stored status still says
	// active. A fresh request reconciles the stale row and succeeds.
	later := newRequestUC(recordRepo, catalogRepo, testNow.AddDate(0, 0, 31))
	second, err := later.Execute(context.Background(), cmd)
	require.NoError(t, err)

	assert.False(t, second.Reused)
	assert.NotEqual(t, first.Record.SID(), second.Record.SID())
	assert.Len(t, recordRepo.records, 2)
	assert.Equal(t, subscription.StatusExpired, first.Record.Status())
}

func TestRequestSubscriptionIndependentDomains(t *testing.T) {
	recordRepo := newFakeRecordRepo()
	uc := newRequestUC(recordRepo, newFakeCatalogRepo("golang-backend", "system-design"), testNow)

	_, err := uc.Execute(context.Background(), RequestSubscriptionCommand{
		UserID: 7, UserEmail: "mentee@example.com", DomainSlug: "golang-backend",
	})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), RequestSubscriptionCommand{
		UserID: 7, UserEmail: "mentee@example.com", DomainSlug: "system-design",
	})
	require.NoError(t, err)

	assert.Len(t, recordRepo.records, 2)
}

func TestRequestSubscriptionLostRaceReusesWinner(t *testing.T) {
	recordRepo := newFakeRecordRepo()
	uc := newRequestUC(recordRepo, newFakeCatalogRepo("golang-backend"), testNow)

	// The winner's record exists, but the first read misses it, so the
	// insert hits the unique pair constraint and must fall back to the
	// winner instead of failing.
	winner, err := subscription.NewPendingRecord(7, "mentee@example.com", "golang-backend")
	require.NoError(t, err)
	require.NoError(t, recordRepo.Create(context.Background(), winner))
	recordRepo.findErrOnce = subscription.ErrRecordNotFound

	result, err := uc.Execute(context.Background(), RequestSubscriptionCommand{
		UserID: 7, UserEmail: "mentee@example.com", DomainSlug: "golang-backend",
	})
	require.NoError(t, err)
	assert.True(t, result.Reused)
	assert.Equal(t, winner.SID(), result.Record.SID())
	assert.Len(t, recordRepo.records, 1)
}
