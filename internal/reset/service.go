package reset

import (
	"context"
	"fmt"
	"time"

	"github.com/edupet/engine/internal/concurrency"
	"github.com/edupet/engine/internal/domain"
	"github.com/edupet/engine/internal/event"
	"github.com/edupet/engine/internal/logger"
	"github.com/edupet/engine/internal/metrics"
	"github.com/edupet/engine/internal/plant"
	"github.com/edupet/engine/internal/repository"
	"github.com/edupet/engine/internal/utils"
)

// Service defines the daily reset and maintenance business logic.
type Service interface {
	// CheckAndReset performs the daily reset when the stored reset date is
	// behind today. Idempotent: a second call on the same date is a no-op.
	CheckAndReset(ctx context.Context) (*ResetResult, error)

	// ForceReset performs the reset unconditionally, landing on the same end
	// state a natural rollover would.
	ForceReset(ctx context.Context) (*ResetResult, error)

	// CleanupExpiredTickets prunes expired growth tickets from the user state.
	CleanupExpiredTickets(ctx context.Context) (*CleanupResult, error)

	// UpdatePlantsStatus flips plants whose gates are both met to READY.
	UpdatePlantsStatus(ctx context.Context) (*SweepResult, error)

	// TimeUntilNextReset computes the countdown to the next local midnight.
	TimeUntilNextReset() Countdown

	// DailyStatistics summarizes today's activity.
	DailyStatistics(ctx context.Context) (*DailyStatistics, error)
}

// Config holds the reset service tuning. PlantConfig drives the ready sweep;
// Now falls back to time.Now. Locks must be the instance shared by every
// user-document writer so their save cycles serialize.
type Config struct {
	PlantConfig plant.Config
	Now         func() time.Time
	Locks       *concurrency.LockManager
}

func (c Config) normalized() Config {
	if c.Now == nil {
		c.Now = time.Now
	}
	if c.Locks == nil {
		c.Locks = concurrency.NewLockManager()
	}
	return c
}

type service struct {
	userRepo  repository.UserState
	plantRepo repository.Plant
	bus       event.Bus
	cfg       Config
}

// NewService creates a new daily reset service.
func NewService(userRepo repository.UserState, plantRepo repository.Plant, bus event.Bus, cfg Config) Service {
	return &service{
		userRepo:  userRepo,
		plantRepo: plantRepo,
		bus:       bus,
		cfg:       cfg.normalized(),
	}
}

// lockUser serializes a user-document save cycle against all other writers.
// The returned func releases the lock.
func (s *service) lockUser() func() {
	lock := s.cfg.Locks.GetLock(concurrency.KeyUserState)
	lock.Lock()
	return lock.Unlock
}

func (s *service) CheckAndReset(ctx context.Context) (*ResetResult, error) {
	now := s.cfg.Now()
	today := utils.FormatDate(now)
	defer s.lockUser()()

	state, err := s.userRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load user state: %w", err)
	}

	if state.Daily.LastResetDate == today {
		return &ResetResult{Performed: false, Date: today}, nil
	}

	return s.resetLocked(ctx, state, today, now, false)
}

func (s *service) ForceReset(ctx context.Context) (*ResetResult, error) {
	now := s.cfg.Now()
	defer s.lockUser()()

	state, err := s.userRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load user state: %w", err)
	}

	return s.resetLocked(ctx, state, utils.FormatDate(now), now, true)
}

// resetLocked applies the reset to an already-loaded state. The caller holds
// the user-state lock.
func (s *service) resetLocked(ctx context.Context, state *domain.UserState, today string, now time.Time, forced bool) (*ResetResult, error) {
	log := logger.FromContext(ctx)

	state.ResetDaily(today, now)

	if err := s.userRepo.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save user state: %w", err)
	}

	metrics.DailyResets.Inc()
	log.Info("Daily reset completed", "date", today, "forced", forced)

	if err := s.bus.Publish(ctx, event.NewDailyResetCompletedEvent(now, today, forced)); err != nil {
		log.Warn("Failed to publish daily reset event", "error", err)
	}

	return &ResetResult{Performed: true, Date: today, Forced: forced}, nil
}

func (s *service) CleanupExpiredTickets(ctx context.Context) (*CleanupResult, error) {
	log := logger.FromContext(ctx)
	now := s.cfg.Now()
	defer s.lockUser()()

	state, err := s.userRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load user state: %w", err)
	}

	expired := state.PruneExpiredTickets(now)
	if expired == 0 {
		return &CleanupResult{RemainingCount: len(state.Rewards.GrowthTickets)}, nil
	}

	if err := s.userRepo.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save user state: %w", err)
	}

	remaining := len(state.Rewards.GrowthTickets)
	metrics.TicketsExpired.Add(float64(expired))
	log.Info("Expired tickets pruned", "expired", expired, "remaining", remaining)

	if err := s.bus.Publish(ctx, event.NewTicketsExpiredEvent(expired, remaining)); err != nil {
		log.Warn("Failed to publish tickets expired event", "error", err)
	}

	return &CleanupResult{ExpiredCount: expired, RemainingCount: remaining}, nil
}

func (s *service) UpdatePlantsStatus(ctx context.Context) (*SweepResult, error) {
	log := logger.FromContext(ctx)
	now := s.cfg.Now()

	state, err := s.userRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load user state: %w", err)
	}
	plants, err := s.plantRepo.ListByOwner(ctx, state.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list plants: %w", err)
	}

	updated := 0
	for i := range plants {
		if !plant.CheckReadyTransition(&plants[i], now, s.cfg.PlantConfig) {
			continue
		}
		if err := s.plantRepo.Save(ctx, &plants[i]); err != nil {
			return nil, fmt.Errorf("failed to save plant: %w", err)
		}
		updated++
	}

	if updated == 0 {
		return &SweepResult{}, nil
	}

	log.Info("Plants swept to ready", "updated", updated)
	if err := s.bus.Publish(ctx, event.NewPlantsStatusUpdatedEvent(updated)); err != nil {
		log.Warn("Failed to publish plant status event", "error", err)
	}

	return &SweepResult{UpdatedCount: updated}, nil
}

func (s *service) TimeUntilNextReset() Countdown {
	now := s.cfg.Now()
	remaining := utils.NextMidnight(now).Sub(now)

	hours := int(remaining.Hours())
	minutes := int(remaining.Minutes()) % 60
	return Countdown{
		Hours:     hours,
		Minutes:   minutes,
		TotalMs:   remaining.Milliseconds(),
		Formatted: fmt.Sprintf("%dh %dm", hours, minutes),
	}
}

func (s *service) DailyStatistics(ctx context.Context) (*DailyStatistics, error) {
	now := s.cfg.Now()
	today := utils.FormatDate(now)

	state, err := s.userRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load user state: %w", err)
	}
	plants, err := s.plantRepo.ListByOwner(ctx, state.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list plants: %w", err)
	}

	stats := &DailyStatistics{
		Date:              today,
		CompletedSubjects: state.Daily.CompletedSubjectsCount,
		ActiveTickets:     len(state.ValidGrowthTickets(now)),
		UntilReset:        s.TimeUntilNextReset(),
	}
	for i := range plants {
		if utils.FormatDate(plants[i].PlantedAt) == today {
			stats.PlantsPlantedToday++
		}
		if plants[i].GrownAt != nil && utils.FormatDate(*plants[i].GrownAt) == today {
			stats.PlantsGrownToday++
		}
	}
	return stats, nil
}
