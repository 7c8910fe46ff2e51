package plant

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/edupet/engine/internal/concurrency"
	"github.com/edupet/engine/internal/domain"
	"github.com/edupet/engine/internal/logger"
	"github.com/edupet/engine/internal/metrics"
	"github.com/edupet/engine/internal/repository"
)

// Service defines the plant lifecycle business logic.
type Service interface {
	// PlantSeed creates a new PLANTED plant for the owner, enforcing the
	// per-user pot cap.
	PlantSeed(ctx context.Context, ownerID string) (*PlantSeedResult, error)

	// WaterPlant adds one watering to the plant and applies the READY
	// transition when both gates are met.
	WaterPlant(ctx context.Context, plantID string) (*WaterResult, error)

	// GrowPlant advances a READY plant to GROWN, consuming one valid growth
	// ticket. At most one growth per plant may be in flight.
	GrowPlant(ctx context.Context, ownerID, plantID string) (*GrowResult, error)

	// HarvestPlant credits the harvest reward and deletes a GROWN plant.
	HarvestPlant(ctx context.Context, plantID string) (*HarvestResult, error)

	Dashboard(ctx context.Context, ownerID string) (*Dashboard, error)
	Notifications(ctx context.Context, ownerID string) ([]Notification, error)
	Statistics(ctx context.Context, ownerID string) (*Statistics, error)
}

type service struct {
	plantRepo repository.Plant
	userRepo  repository.UserState
	locks     *concurrency.LockManager
	cfg       Config
}

// NewService creates a new plant lifecycle service.
func NewService(plantRepo repository.Plant, userRepo repository.UserState, cfg Config) Service {
	cfg = cfg.normalized()
	return &service{
		plantRepo: plantRepo,
		userRepo:  userRepo,
		locks:     cfg.Locks,
		cfg:       cfg,
	}
}

// CheckReadyTransition applies the PLANTED -> READY transition in memory when
// both the growth time and the water requirement are met. Idempotent: a plant
// already READY (or GROWN) is left untouched. Returns true when the plant
// changed and should be persisted.
func CheckReadyTransition(plant *domain.Plant, now time.Time, cfg Config) bool {
	cfg = cfg.normalized()
	isTimeReady := !now.Before(plant.PlantedAt.Add(cfg.GrowthTime))
	isWaterReady := plant.WaterCount >= cfg.WaterRequired

	if isTimeReady && isWaterReady && plant.Status == domain.PlantStatusPlanted {
		plant.Status = domain.PlantStatusReady
		return true
	}
	return false
}

func (s *service) PlantSeed(ctx context.Context, ownerID string) (*PlantSeedResult, error) {
	log := logger.FromContext(ctx)

	owned, err := s.plantRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list plants: %w", err)
	}
	if len(owned) >= s.cfg.PlantCap {
		return &PlantSeedResult{Result: domain.Fail(domain.ReasonPlantLimit, MsgPlantLimit)}, nil
	}

	plant := &domain.Plant{
		PlantID:   uuid.NewString(),
		OwnerID:   ownerID,
		Status:    domain.PlantStatusPlanted,
		PlantedAt: s.cfg.Now(),
		PlantType: domain.PlantTypes[rand.IntN(len(domain.PlantTypes))],
	}
	if err := s.plantRepo.Save(ctx, plant); err != nil {
		return nil, fmt.Errorf("failed to save plant: %w", err)
	}

	metrics.PlantsPlanted.Inc()
	log.Info("Seed planted", "plantID", plant.PlantID, "plantType", plant.PlantType)

	return &PlantSeedResult{Result: domain.OK(), Plant: plant}, nil
}

// canWater checks watering eligibility without mutating the plant.
func (s *service) canWater(plant *domain.Plant) domain.Result {
	if plant == nil {
		return domain.Fail(domain.ReasonNotFound, MsgPlantNotFound)
	}
	if plant.Status == domain.PlantStatusGrown {
		return domain.Fail(domain.ReasonAlreadyGrown, MsgAlreadyGrown)
	}
	if plant.WaterCount >= s.cfg.WaterRequired {
		return domain.Fail(domain.ReasonWaterFull, MsgWaterFull)
	}
	return domain.OK()
}

func (s *service) WaterPlant(ctx context.Context, plantID string) (*WaterResult, error) {
	plant, err := s.plantRepo.Get(ctx, plantID)
	if errors.Is(err, domain.ErrPlantNotFound) {
		return &WaterResult{Result: domain.Fail(domain.ReasonNotFound, MsgPlantNotFound)}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load plant: %w", err)
	}

	if check := s.canWater(plant); !check.Success {
		return &WaterResult{Result: check}, nil
	}

	plant.WaterCount++
	CheckReadyTransition(plant, s.cfg.Now(), s.cfg)

	if err := s.plantRepo.Save(ctx, plant); err != nil {
		return nil, fmt.Errorf("failed to save plant: %w", err)
	}

	return &WaterResult{
		Result:     domain.OK(),
		WaterCount: plant.WaterCount,
		Status:     plant.Status,
	}, nil
}

func (s *service) GrowPlant(ctx context.Context, ownerID, plantID string) (*GrowResult, error) {
	log := logger.FromContext(ctx)

	// At-most-one in-flight growth per plant. A second caller gets a
	// distinct result instead of double-consuming a ticket.
	if !s.locks.TryAcquire(growLockKey(plantID)) {
		return &GrowResult{Result: domain.Fail(domain.ReasonAlreadyProcessing, MsgAlreadyProcessing)}, nil
	}
	defer s.locks.Release(growLockKey(plantID))

	plant, err := s.plantRepo.Get(ctx, plantID)
	if errors.Is(err, domain.ErrPlantNotFound) {
		return &GrowResult{Result: domain.Fail(domain.ReasonNotFound, MsgPlantNotFound)}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load plant: %w", err)
	}
	if plant.OwnerID != ownerID {
		return &GrowResult{Result: domain.Fail(domain.ReasonNotFound, MsgPlantNotFound)}, nil
	}

	now := s.cfg.Now()

	// Opportunistic READY flip so a grow call right after the time gate
	// passes does not depend on the maintenance sweep having run.
	if CheckReadyTransition(plant, now, s.cfg) {
		if err := s.plantRepo.Save(ctx, plant); err != nil {
			return nil, fmt.Errorf("failed to save plant: %w", err)
		}
	}

	if fail := s.validateGrowth(plant, now); fail != nil {
		return &GrowResult{Result: *fail}, nil
	}

	// The plant lock does not cover the shared ticket inventory: two grows
	// on different plants must still serialize the load-consume-save cycle,
	// or both snapshots see the same ticket.
	userLock := s.locks.GetLock(concurrency.KeyUserState)
	userLock.Lock()
	defer userLock.Unlock()

	state, err := s.userRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load user state: %w", err)
	}

	ticket, ok := state.ConsumeGrowthTicket(now)
	if !ok {
		return &GrowResult{Result: domain.Fail(domain.ReasonNoValidTicket, MsgNoValidTicket)}, nil
	}

	plant.Status = domain.PlantStatusGrown
	plant.GrownAt = &now

	if err := s.plantRepo.Save(ctx, plant); err != nil {
		return nil, fmt.Errorf("failed to save plant: %w", err)
	}
	if err := s.userRepo.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save user state: %w", err)
	}

	metrics.PlantsGrown.Inc()
	log.Info("Plant grown", "plantID", plant.PlantID, "ticketID", ticket.TicketID)

	return &GrowResult{Result: domain.OK(), Plant: plant}, nil
}

// validateGrowth checks the growth preconditions in order, returning the
// first failure. The time and water gates are re-validated even though READY
// implies them, in case READY was ever reached through a misconfigured gate.
func (s *service) validateGrowth(plant *domain.Plant, now time.Time) *domain.Result {
	if plant.Status != domain.PlantStatusReady {
		var fail domain.Result
		if plant.Status == domain.PlantStatusGrown {
			fail = domain.Fail(domain.ReasonAlreadyGrown, MsgAlreadyGrown)
		} else {
			fail = domain.Fail(domain.ReasonNotReady, MsgNotReady)
		}
		return &fail
	}

	if elapsed := now.Sub(plant.PlantedAt); elapsed < s.cfg.GrowthTime {
		remaining := int(math.Ceil((s.cfg.GrowthTime - elapsed).Hours()))
		fail := domain.Fail(domain.ReasonTimeNotElapsed,
			fmt.Sprintf("Ready to grow in %dh", remaining))
		return &fail
	}

	if plant.WaterCount < s.cfg.WaterRequired {
		fail := domain.Fail(domain.ReasonWaterInsufficient,
			fmt.Sprintf("%s (%d/%d)", MsgWaterInsufficient, plant.WaterCount, s.cfg.WaterRequired))
		return &fail
	}

	return nil
}

func (s *service) HarvestPlant(ctx context.Context, plantID string) (*HarvestResult, error) {
	log := logger.FromContext(ctx)

	plant, err := s.plantRepo.Get(ctx, plantID)
	if errors.Is(err, domain.ErrPlantNotFound) {
		return &HarvestResult{Result: domain.Fail(domain.ReasonNotFound, MsgPlantNotFound)}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load plant: %w", err)
	}

	if plant.Status != domain.PlantStatusGrown {
		return &HarvestResult{Result: domain.Fail(domain.ReasonNotGrown, MsgNotGrown)}, nil
	}

	userLock := s.locks.GetLock(concurrency.KeyUserState)
	userLock.Lock()
	defer userLock.Unlock()

	state, err := s.userRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load user state: %w", err)
	}
	state.Wallet.Money += s.cfg.HarvestReward

	if err := s.userRepo.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save user state: %w", err)
	}
	if err := s.plantRepo.Delete(ctx, plantID); err != nil {
		return nil, fmt.Errorf("failed to delete plant: %w", err)
	}

	metrics.PlantsHarvested.Inc()
	metrics.MoneyEarned.Add(float64(s.cfg.HarvestReward))
	log.Info("Plant harvested", "plantID", plantID, "moneyEarned", s.cfg.HarvestReward)

	return &HarvestResult{
		Result:      domain.OK(),
		MoneyEarned: s.cfg.HarvestReward,
		Plant:       plant,
	}, nil
}

func growLockKey(plantID string) string {
	return "grow:" + plantID
}
