package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentorhub/internal/domain/subscription"
	"mentorhub/internal/shared/biztime"
	"mentorhub/internal/shared/logger"
)

func TestListUserSubscriptions(t *testing.T) {
	repo := newFakeRecordRepo()

	active, err := subscription.NewPendingRecord(7, "mentee@example.com", "golang-backend")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), active))
	require.NoError(t, active.Activate(testNow, 30))

	lapsed, err := subscription.NewPendingRecord(7, "mentee@example.com", "system-design")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), lapsed))
	require.NoError(t, lapsed.Activate(testNow.AddDate(0, 0, -60), 30))

	other, err := subscription.NewPendingRecord(8, "other@example.com", "golang-backend")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), other))

	uc := NewListUserSubscriptionsUseCase(repo, biztime.FixedClock{T: testNow}, logger.NewNop())

	t.Run("all records", func(t *testing.T) {
		records, err := uc.Execute(context.Background(), ListUserSubscriptionsCommand{UserEmail: "mentee@example.com"})
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("active only hides the lapsed record", func(t *testing.T) {
		records, err := uc.Execute(context.Background(), ListUserSubscriptionsCommand{
			UserEmail:  "mentee@example.com",
			ActiveOnly: true,
		})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "golang-backend", records[0].DomainSlug())
	})
}
