// Package testutil provides in-memory repository fakes for service tests.
// The fakes are stateful so multi-step scenarios exercise real persistence
// semantics without a database.
package testutil

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/edupet/engine/internal/domain"
)

// UserStateRepo is an in-memory repository.UserState.
type UserStateRepo struct {
	mu    sync.Mutex
	state *domain.UserState

	// LoadHook, when set, runs at the start of every Load. Tests use it to
	// block a goroutine inside a service call.
	LoadHook func()

	// FailLoad and FailSave force the next calls to error.
	FailLoad bool
	FailSave bool

	Saves int
}

// NewUserStateRepo seeds the repo with a fresh default state.
func NewUserStateRepo(today string) *UserStateRepo {
	return &UserStateRepo{state: domain.NewUserState(uuid.NewString(), today)}
}

func (r *UserStateRepo) Load(ctx context.Context) (*domain.UserState, error) {
	if r.LoadHook != nil {
		r.LoadHook()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailLoad {
		return nil, fmt.Errorf("load user state: forced failure")
	}
	return cloneState(r.state), nil
}

func (r *UserStateRepo) Save(ctx context.Context, state *domain.UserState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailSave {
		return fmt.Errorf("save user state: forced failure")
	}
	r.state = cloneState(state)
	r.Saves++
	return nil
}

// State returns the current stored document for assertions.
func (r *UserStateRepo) State() *domain.UserState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneState(r.state)
}

// SetState overwrites the stored document.
func (r *UserStateRepo) SetState(state *domain.UserState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = cloneState(state)
}

// cloneState deep-copies the document so mutations on a loaded state never
// leak into the stored one before Save.
func cloneState(s *domain.UserState) *domain.UserState {
	clone := *s
	clone.Daily.CompletedSubjectIDs = append([]string(nil), s.Daily.CompletedSubjectIDs...)
	clone.Rewards.GrowthTickets = append([]domain.GrowthTicket(nil), s.Rewards.GrowthTickets...)
	clone.Learning.WeakAreas = append([]string(nil), s.Learning.WeakAreas...)
	clone.Learning.SubjectScores = make(map[string]int, len(s.Learning.SubjectScores))
	for k, v := range s.Learning.SubjectScores {
		clone.Learning.SubjectScores[k] = v
	}
	return &clone
}

// PlantRepo is an in-memory repository.Plant.
type PlantRepo struct {
	mu     sync.Mutex
	plants map[string]domain.Plant
}

// NewPlantRepo creates an empty plant repo.
func NewPlantRepo() *PlantRepo {
	return &PlantRepo{plants: map[string]domain.Plant{}}
}

func (r *PlantRepo) Get(ctx context.Context, plantID string) (*domain.Plant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	plant, ok := r.plants[plantID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlantNotFound, plantID)
	}
	return &plant, nil
}

func (r *PlantRepo) Save(ctx context.Context, plant *domain.Plant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plants[plant.PlantID] = *plant
	return nil
}

func (r *PlantRepo) Delete(ctx context.Context, plantID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.plants, plantID)
	return nil
}

func (r *PlantRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Plant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var plants []domain.Plant
	for _, p := range r.plants {
		if p.OwnerID == ownerID {
			plants = append(plants, p)
		}
	}
	sort.Slice(plants, func(i, j int) bool {
		return plants[i].PlantedAt.Before(plants[j].PlantedAt)
	})
	return plants, nil
}

// MinigameRepo is an in-memory repository.Minigame.
type MinigameRepo struct {
	mu       sync.Mutex
	progress *domain.MinigameProgress
}

// NewMinigameRepo seeds the repo with a fresh default document.
func NewMinigameRepo(today string) *MinigameRepo {
	return &MinigameRepo{progress: domain.NewMinigameProgress(today)}
}

func (r *MinigameRepo) Load(ctx context.Context) (*domain.MinigameProgress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := cloneProgress(r.progress)
	return clone, nil
}

func (r *MinigameRepo) Save(ctx context.Context, progress *domain.MinigameProgress) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.progress = cloneProgress(progress)
	return nil
}

// Progress returns the current stored document for assertions.
func (r *MinigameRepo) Progress() *domain.MinigameProgress {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneProgress(r.progress)
}

// SetProgress overwrites the stored document.
func (r *MinigameRepo) SetProgress(progress *domain.MinigameProgress) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.progress = cloneProgress(progress)
}

func cloneProgress(p *domain.MinigameProgress) *domain.MinigameProgress {
	clone := *p
	clone.DailyPlays = make(map[domain.GameType]int, len(p.DailyPlays))
	for k, v := range p.DailyPlays {
		clone.DailyPlays[k] = v
	}
	clone.WeeklyBonuses = make(map[domain.GameType]string, len(p.WeeklyBonuses))
	for k, v := range p.WeeklyBonuses {
		clone.WeeklyBonuses[k] = v
	}
	clone.TotalStats = make(map[domain.GameType]*domain.GameStats, len(p.TotalStats))
	for k, v := range p.TotalStats {
		stats := *v
		clone.TotalStats[k] = &stats
	}
	clone.Prizes = append([]domain.ClawPrize(nil), p.Prizes...)
	return &clone
}
