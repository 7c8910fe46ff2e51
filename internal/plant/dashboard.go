package plant

import (
	"context"
	"fmt"
	"time"

	"github.com/edupet/engine/internal/domain"
)

func (s *service) Dashboard(ctx context.Context, ownerID string) (*Dashboard, error) {
	state, err := s.userRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load user state: %w", err)
	}
	plants, err := s.plantRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list plants: %w", err)
	}

	now := s.cfg.Now()
	valid := state.ValidGrowthTickets(now)

	views := make([]PlantView, 0, len(plants))
	for i := range plants {
		p := &plants[i]
		views = append(views, PlantView{
			ID:            p.PlantID,
			Type:          p.PlantType,
			Status:        p.Status,
			WaterCount:    p.WaterCount,
			WaterProgress: fmt.Sprintf("%d/%d", p.WaterCount, s.cfg.WaterRequired),
			TimeRemaining: s.timeRemaining(p, now),
			CanGrow:       p.Status == domain.PlantStatusReady,
			PlantedAt:     p.PlantedAt,
			GrownAt:       p.GrownAt,
		})
	}

	details := make([]TicketView, 0, len(valid))
	for _, t := range valid {
		details = append(details, TicketView{
			ID:        t.TicketID,
			ExpiresIn: formatRemaining(t.ExpiresAt.Sub(now)),
		})
	}

	return &Dashboard{
		CompletedSubjects: state.Daily.CompletedSubjectsCount,
		Plants:            views,
		Tickets: TicketSummary{
			GrowthTickets: len(valid),
			Details:       details,
			NormalGacha:   state.Rewards.NormalGachaTickets,
			PremiumGacha:  state.Rewards.PremiumGachaTickets,
		},
	}, nil
}

func (s *service) Notifications(ctx context.Context, ownerID string) ([]Notification, error) {
	state, err := s.userRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load user state: %w", err)
	}
	plants, err := s.plantRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list plants: %w", err)
	}

	now := s.cfg.Now()
	valid := state.ValidGrowthTickets(now)

	var ready, thirsty int
	for i := range plants {
		switch {
		case plants[i].Status == domain.PlantStatusReady:
			ready++
		case plants[i].Status == domain.PlantStatusPlanted && plants[i].WaterCount < s.cfg.WaterRequired:
			thirsty++
		}
	}

	var notifications []Notification
	if ready > 0 && len(valid) > 0 {
		notifications = append(notifications, Notification{
			Type:     NotifyGrowthAvailable,
			Message:  fmt.Sprintf("%d plant(s) ready to grow", ready),
			Priority: "high",
		})
	}

	expiring := 0
	for _, t := range valid {
		if t.ExpiresAt.Sub(now) <= ticketExpiryWarning {
			expiring++
		}
	}
	if expiring > 0 {
		notifications = append(notifications, Notification{
			Type:     NotifyTicketExpiring,
			Message:  fmt.Sprintf("%d growth ticket(s) expire within 2 hours", expiring),
			Priority: "medium",
		})
	}

	if thirsty > 0 {
		notifications = append(notifications, Notification{
			Type:     NotifyWaterNeeded,
			Message:  fmt.Sprintf("%d plant(s) need water", thirsty),
			Priority: "low",
		})
	}

	return notifications, nil
}

func (s *service) Statistics(ctx context.Context, ownerID string) (*Statistics, error) {
	state, err := s.userRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load user state: %w", err)
	}
	plants, err := s.plantRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list plants: %w", err)
	}

	stats := &Statistics{
		TotalPlants:       len(plants),
		SubjectsCompleted: state.Daily.CompletedSubjectsCount,
		SubjectScores:     state.Learning.SubjectScores,
	}
	for i := range plants {
		stats.TotalWaterGiven += plants[i].WaterCount
		switch plants[i].Status {
		case domain.PlantStatusGrown:
			stats.GrownPlants++
		case domain.PlantStatusReady:
			stats.ReadyPlants++
		case domain.PlantStatusPlanted:
			stats.GrowingPlants++
		}
	}
	return stats, nil
}

// timeRemaining renders how long until the plant's time gate opens.
func (s *service) timeRemaining(p *domain.Plant, now time.Time) string {
	remaining := p.PlantedAt.Add(s.cfg.GrowthTime).Sub(now)
	return formatRemaining(remaining)
}

func formatRemaining(d time.Duration) string {
	if d <= 0 {
		return "ready"
	}
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
