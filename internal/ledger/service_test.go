package ledger

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edupet/engine/internal/domain"
	"github.com/edupet/engine/internal/testutil"
)

var testNow = time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (Service, *testutil.UserStateRepo) {
	t.Helper()
	repo := testutil.NewUserStateRepo("2026-08-28")
	svc := NewService(repo, Config{Now: func() time.Time { return testNow }})
	return svc, repo
}

func TestCompleteSubject(t *testing.T) {
	svc, repo := newTestService(t)

	result, err := svc.CompleteSubject(context.Background(), "math")
	require.NoError(t, err)

	require.True(t, result.Success)
	assert.Equal(t, 1, result.CompletedCount)
	assert.True(t, result.Rewards.Empty())
	require.NotNil(t, result.NextReward)
	assert.Equal(t, 3, result.NextReward.Threshold)
	assert.Equal(t, 2, result.NextReward.Remaining)

	state := repo.State()
	assert.Equal(t, []string{"math"}, state.Daily.CompletedSubjectIDs)
	assert.Equal(t, 1, state.Learning.SubjectScores["math"])
}

func TestCompleteSubject_IdempotentPerDay(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	_, err := svc.CompleteSubject(ctx, "math")
	require.NoError(t, err)

	result, err := svc.CompleteSubject(ctx, "math")
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, domain.ReasonAlreadyCompleted, result.Reason)
	assert.Equal(t, 1, result.CompletedCount)

	state := repo.State()
	assert.Equal(t, 1, state.Daily.CompletedSubjectsCount)
	assert.Equal(t, 1, state.Learning.SubjectScores["math"])
}

func TestCompleteSubject_ThresholdGrants(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	wantByCount := map[int]domain.RewardBundle{
		3: {GrowthTickets: 1},
		5: {NormalGacha: 1},
		6: {GrowthTickets: 1},
		9: {PremiumGacha: 1},
	}

	for i := 1; i <= 9; i++ {
		result, err := svc.CompleteSubject(ctx, fmt.Sprintf("subject-%d", i))
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, i, result.CompletedCount)

		want, hasReward := wantByCount[i]
		if hasReward {
			assert.Equal(t, want, result.Rewards, "count %d", i)
		} else {
			assert.True(t, result.Rewards.Empty(), "count %d", i)
		}
	}

	state := repo.State()
	assert.Len(t, state.Rewards.GrowthTickets, 2)
	assert.Equal(t, 1, state.Rewards.NormalGachaTickets)
	assert.Equal(t, 1, state.Rewards.PremiumGachaTickets)

	// Tickets carry the configured TTL and the threshold source
	for _, ticket := range state.Rewards.GrowthTickets {
		assert.Equal(t, testNow.Add(domain.DefaultTicketTTL), ticket.ExpiresAt)
		assert.Equal(t, domain.TicketSourceThreshold, ticket.Source)
	}

	// Past the last threshold there is no next reward
	result, err := svc.CompleteSubject(ctx, "subject-10")
	require.NoError(t, err)
	assert.Nil(t, result.NextReward)
}

func TestCompleteSubject_StorageFailures(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	repo.FailLoad = true
	_, err := svc.CompleteSubject(ctx, "math")
	require.Error(t, err)

	repo.FailLoad = false
	repo.FailSave = true
	_, err = svc.CompleteSubject(ctx, "math")
	require.Error(t, err)

	// Failed saves leave the document untouched
	repo.FailSave = false
	assert.Zero(t, repo.State().Daily.CompletedSubjectsCount)
}

func TestNextReward(t *testing.T) {
	svc, _ := newTestService(t)

	tests := []struct {
		count         int
		wantThreshold int
		wantRemaining int
	}{
		{0, 3, 3},
		{2, 3, 1},
		{3, 5, 2},
		{5, 6, 1},
		{6, 9, 3},
		{8, 9, 1},
	}
	for _, tt := range tests {
		next := svc.NextReward(tt.count)
		require.NotNil(t, next, "count %d", tt.count)
		assert.Equal(t, tt.wantThreshold, next.Threshold, "count %d", tt.count)
		assert.Equal(t, tt.wantRemaining, next.Remaining, "count %d", tt.count)
	}

	assert.Nil(t, svc.NextReward(9))
	assert.Nil(t, svc.NextReward(50))
}

func TestGrant(t *testing.T) {
	svc, repo := newTestService(t)

	err := svc.Grant(context.Background(), domain.RewardBundle{GrowthTickets: 2, NormalGacha: 1}, "promo")
	require.NoError(t, err)

	state := repo.State()
	require.Len(t, state.Rewards.GrowthTickets, 2)
	assert.Equal(t, "promo", state.Rewards.GrowthTickets[0].Source)
	assert.Equal(t, 1, state.Rewards.NormalGachaTickets)
}

func TestGrant_EmptyBundleSkipsSave(t *testing.T) {
	svc, repo := newTestService(t)

	err := svc.Grant(context.Background(), domain.RewardBundle{}, "promo")
	require.NoError(t, err)
	assert.Zero(t, repo.Saves)
}

func TestWallet(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	add, err := svc.AddMoney(ctx, 150)
	require.NoError(t, err)
	assert.Equal(t, 150, add.Balance)

	spend, err := svc.SpendMoney(ctx, 50)
	require.NoError(t, err)
	require.True(t, spend.Success)
	assert.Equal(t, 100, spend.Balance)

	balance, err := svc.GetMoney(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100, balance)
}

func TestSpendMoney_InsufficientFunds(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddMoney(ctx, 30)
	require.NoError(t, err)

	result, err := svc.SpendMoney(ctx, 31)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, domain.ReasonInsufficientFunds, result.Reason)
	assert.Equal(t, 30, result.Balance)
	assert.Equal(t, 30, repo.State().Wallet.Money)
}

func TestWallet_NegativeAmountsRejected(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddMoney(ctx, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = svc.SpendMoney(ctx, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = svc.SetMoney(ctx, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestSetMoney(t *testing.T) {
	svc, _ := newTestService(t)

	result, err := svc.SetMoney(context.Background(), 500)
	require.NoError(t, err)
	assert.Equal(t, 500, result.Balance)
}

func TestWeakAreas(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	state := repo.State()
	state.Learning.SubjectScores = map[string]int{
		"math":    5,
		"reading": 2,
		"science": 7,
		"art":     2,
	}
	repo.SetState(state)

	// Completing a new subject recomputes the projection
	_, err := svc.CompleteSubject(ctx, "music")
	require.NoError(t, err)

	// music has score 1 (lowest); art and reading tie at 2, broken
	// alphabetically
	assert.Equal(t, []string{"music", "art", "reading"}, repo.State().Learning.WeakAreas)
}
