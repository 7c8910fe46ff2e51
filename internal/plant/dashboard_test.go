package plant

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edupet/engine/internal/domain"
)

func TestDashboard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	plant := f.plantOne(t)

	_, err := f.svc.WaterPlant(ctx, plant.PlantID)
	require.NoError(t, err)

	f.giveTicket(t, "valid", domain.DefaultTicketTTL)
	f.giveTicket(t, "stale", -time.Hour)

	state := f.userRepo.State()
	state.Daily.CompletedSubjectsCount = 4
	state.Rewards.NormalGachaTickets = 1
	f.userRepo.SetState(state)

	dashboard, err := f.svc.Dashboard(ctx, f.ownerID(t))
	require.NoError(t, err)

	assert.Equal(t, 4, dashboard.CompletedSubjects)
	require.Len(t, dashboard.Plants, 1)
	view := dashboard.Plants[0]
	assert.Equal(t, plant.PlantID, view.ID)
	assert.Equal(t, "1/20", view.WaterProgress)
	assert.False(t, view.CanGrow)
	assert.NotEmpty(t, view.TimeRemaining)

	// Only the valid ticket counts
	assert.Equal(t, 1, dashboard.Tickets.GrowthTickets)
	require.Len(t, dashboard.Tickets.Details, 1)
	assert.Equal(t, "valid", dashboard.Tickets.Details[0].ID)
	assert.Equal(t, 1, dashboard.Tickets.NormalGacha)
}

func TestNotifications(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	plant := makeReady(t, f)

	// READY is only visible after a sweep or grow attempt; a ticketless grow
	// forces the flip and leaves the plant READY
	grow, err := f.svc.GrowPlant(ctx, f.ownerID(t), plant.PlantID)
	require.NoError(t, err)
	require.Equal(t, domain.ReasonNoValidTicket, grow.Reason)

	// Ticket expiring within the warning window
	f.giveTicket(t, "soon", time.Hour)

	notifications, err := f.svc.Notifications(ctx, f.ownerID(t))
	require.NoError(t, err)

	types := map[string]bool{}
	for _, n := range notifications {
		types[n.Type] = true
	}
	assert.True(t, types[NotifyGrowthAvailable])
	assert.True(t, types[NotifyTicketExpiring])
}

func TestNotifications_ThirstyPlants(t *testing.T) {
	f := newFixture(t)
	f.plantOne(t)

	notifications, err := f.svc.Notifications(context.Background(), f.ownerID(t))
	require.NoError(t, err)

	require.Len(t, notifications, 1)
	assert.Equal(t, NotifyWaterNeeded, notifications[0].Type)
	assert.Equal(t, "low", notifications[0].Priority)
}

func TestStatistics(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ready := makeReady(t, f)
	f.giveTicket(t, "t1", domain.DefaultTicketTTL)
	grow, err := f.svc.GrowPlant(ctx, f.ownerID(t), ready.PlantID)
	require.NoError(t, err)
	require.True(t, grow.Success)

	f.plantOne(t)

	stats, err := f.svc.Statistics(ctx, f.ownerID(t))
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalPlants)
	assert.Equal(t, 1, stats.GrownPlants)
	assert.Equal(t, 1, stats.GrowingPlants)
	assert.Equal(t, domain.DefaultWaterRequired, stats.TotalWaterGiven)
}
