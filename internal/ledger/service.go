package ledger

import (
	"context"
	"fmt"
	"sort"

	"github.com/edupet/engine/internal/concurrency"
	"github.com/edupet/engine/internal/domain"
	"github.com/edupet/engine/internal/logger"
	"github.com/edupet/engine/internal/metrics"
	"github.com/edupet/engine/internal/repository"
)

// Service defines the reward and progression business logic.
type Service interface {
	// CompleteSubject records a subject completion for today, grants the
	// threshold bundle keyed on the new count, and recomputes weak areas.
	// Completing the same subject twice on one date is rejected.
	CompleteSubject(ctx context.Context, subjectID string) (*CompleteResult, error)

	// NextReward projects the next unreached threshold for the given count.
	// Returns nil when every threshold is already passed.
	NextReward(count int) *NextRewardProjection

	// Grant applies a reward bundle to the user outside the threshold path,
	// minting growth tickets with the configured TTL.
	Grant(ctx context.Context, bundle domain.RewardBundle, source string) error

	AddMoney(ctx context.Context, amount int) (*WalletResult, error)
	SpendMoney(ctx context.Context, amount int) (*WalletResult, error)
	SetMoney(ctx context.Context, amount int) (*WalletResult, error)
	GetMoney(ctx context.Context) (int, error)
}

type service struct {
	userRepo repository.UserState
	cfg      Config
}

// NewService creates a new progression ledger service.
func NewService(userRepo repository.UserState, cfg Config) Service {
	return &service{
		userRepo: userRepo,
		cfg:      cfg.normalized(),
	}
}

// lockUser serializes a user-document save cycle against all other writers.
// The returned func releases the lock.
func (s *service) lockUser() func() {
	lock := s.cfg.Locks.GetLock(concurrency.KeyUserState)
	lock.Lock()
	return lock.Unlock
}

func (s *service) CompleteSubject(ctx context.Context, subjectID string) (*CompleteResult, error) {
	log := logger.FromContext(ctx)
	defer s.lockUser()()

	state, err := s.userRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load user state: %w", err)
	}

	if state.HasCompletedSubject(subjectID) {
		return &CompleteResult{
			Result:         domain.Fail(domain.ReasonAlreadyCompleted, MsgAlreadyCompleted),
			CompletedCount: state.Daily.CompletedSubjectsCount,
			NextReward:     s.NextReward(state.Daily.CompletedSubjectsCount),
		}, nil
	}

	state.Daily.CompletedSubjectIDs = append(state.Daily.CompletedSubjectIDs, subjectID)
	state.Daily.CompletedSubjectsCount = len(state.Daily.CompletedSubjectIDs)

	if state.Learning.SubjectScores == nil {
		state.Learning.SubjectScores = map[string]int{}
	}
	state.Learning.SubjectScores[subjectID]++
	state.Learning.WeakAreas = weakAreas(state.Learning.SubjectScores)

	bundle := s.cfg.Thresholds[state.Daily.CompletedSubjectsCount]
	if !bundle.Empty() {
		s.applyBundle(state, bundle, domain.TicketSourceThreshold)
	}

	if err := s.userRepo.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save user state: %w", err)
	}

	metrics.SubjectsCompleted.Inc()
	log.Info("Subject completed",
		"subjectID", subjectID,
		"completedCount", state.Daily.CompletedSubjectsCount,
		"rewarded", !bundle.Empty(),
	)

	return &CompleteResult{
		Result:         domain.OK(),
		CompletedCount: state.Daily.CompletedSubjectsCount,
		Rewards:        bundle,
		NextReward:     s.NextReward(state.Daily.CompletedSubjectsCount),
	}, nil
}

func (s *service) NextReward(count int) *NextRewardProjection {
	next := 0
	for threshold := range s.cfg.Thresholds {
		if threshold > count && (next == 0 || threshold < next) {
			next = threshold
		}
	}
	if next == 0 {
		return nil
	}
	return &NextRewardProjection{
		Threshold: next,
		Remaining: next - count,
		Rewards:   s.cfg.Thresholds[next],
	}
}

func (s *service) Grant(ctx context.Context, bundle domain.RewardBundle, source string) error {
	if bundle.Empty() {
		return nil
	}
	defer s.lockUser()()

	state, err := s.userRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load user state: %w", err)
	}

	s.applyBundle(state, bundle, source)

	if err := s.userRepo.Save(ctx, state); err != nil {
		return fmt.Errorf("failed to save user state: %w", err)
	}
	return nil
}

// applyBundle mutates the state in memory; callers persist.
func (s *service) applyBundle(state *domain.UserState, bundle domain.RewardBundle, source string) {
	now := s.cfg.Now()
	for i := 0; i < bundle.GrowthTickets; i++ {
		state.Rewards.GrowthTickets = append(state.Rewards.GrowthTickets,
			domain.NewGrowthTicket(now, s.cfg.TicketTTL, source))
	}
	state.Rewards.NormalGachaTickets += bundle.NormalGacha
	state.Rewards.PremiumGachaTickets += bundle.PremiumGacha

	if bundle.GrowthTickets > 0 {
		metrics.RewardsGranted.WithLabelValues("growth").Add(float64(bundle.GrowthTickets))
	}
	if bundle.NormalGacha > 0 {
		metrics.RewardsGranted.WithLabelValues("normal_gacha").Add(float64(bundle.NormalGacha))
	}
	if bundle.PremiumGacha > 0 {
		metrics.RewardsGranted.WithLabelValues("premium_gacha").Add(float64(bundle.PremiumGacha))
	}
}

func (s *service) AddMoney(ctx context.Context, amount int) (*WalletResult, error) {
	if amount < 0 {
		return nil, fmt.Errorf("add money: %w", domain.ErrInvalidAmount)
	}
	defer s.lockUser()()

	state, err := s.userRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load user state: %w", err)
	}

	state.Wallet.Money += amount
	if err := s.userRepo.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save user state: %w", err)
	}

	metrics.MoneyEarned.Add(float64(amount))
	return &WalletResult{Result: domain.OK(), Balance: state.Wallet.Money}, nil
}

func (s *service) SpendMoney(ctx context.Context, amount int) (*WalletResult, error) {
	if amount < 0 {
		return nil, fmt.Errorf("spend money: %w", domain.ErrInvalidAmount)
	}
	defer s.lockUser()()

	state, err := s.userRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load user state: %w", err)
	}

	if state.Wallet.Money < amount {
		return &WalletResult{
			Result:  domain.Fail(domain.ReasonInsufficientFunds, MsgInsufficientFunds),
			Balance: state.Wallet.Money,
		}, nil
	}

	state.Wallet.Money -= amount
	if err := s.userRepo.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save user state: %w", err)
	}

	metrics.MoneySpent.Add(float64(amount))
	return &WalletResult{Result: domain.OK(), Balance: state.Wallet.Money}, nil
}

func (s *service) SetMoney(ctx context.Context, amount int) (*WalletResult, error) {
	if amount < 0 {
		return nil, fmt.Errorf("set money: %w", domain.ErrInvalidAmount)
	}
	defer s.lockUser()()

	state, err := s.userRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load user state: %w", err)
	}

	state.Wallet.Money = amount
	if err := s.userRepo.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save user state: %w", err)
	}

	return &WalletResult{Result: domain.OK(), Balance: state.Wallet.Money}, nil
}

func (s *service) GetMoney(ctx context.Context) (int, error) {
	state, err := s.userRepo.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load user state: %w", err)
	}
	return state.Wallet.Money, nil
}

// weakAreas returns the lowest-scoring subjects, ties broken alphabetically
// so the projection is stable across saves.
func weakAreas(scores map[string]int) []string {
	ids := make([]string, 0, len(scores))
	for id := range scores {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	sort.SliceStable(ids, func(i, j int) bool {
		return scores[ids[i]] < scores[ids[j]]
	})

	if len(ids) > weakAreaCount {
		ids = ids[:weakAreaCount]
	}
	return ids
}
