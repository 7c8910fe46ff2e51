package minigame

import (
	"context"
	"fmt"

	"github.com/edupet/engine/internal/concurrency"
	"github.com/edupet/engine/internal/domain"
	"github.com/edupet/engine/internal/ledger"
	"github.com/edupet/engine/internal/logger"
	"github.com/edupet/engine/internal/metrics"
	"github.com/edupet/engine/internal/repository"
	"github.com/edupet/engine/internal/utils"
)

// Service defines the minigame reward accounting logic.
type Service interface {
	// CanPlay reports whether the game has plays left today.
	CanPlay(ctx context.Context, game domain.GameType) (bool, error)

	// RemainingPlays returns how many plays are left today for the game.
	RemainingPlays(ctx context.Context, game domain.GameType) (int, error)

	// RewardMemory settles one memory game play.
	RewardMemory(ctx context.Context, perfectClear bool) (*PlayResult, error)

	// RewardMath settles one math game play. Ten or more correct answers
	// grants the weekly normal gacha ticket, once per week.
	RewardMath(ctx context.Context, correctAnswers int) (*PlayResult, error)

	// RewardCatch settles one catch game play. Twenty or more drops grants
	// the weekly growth ticket, once per week.
	RewardCatch(ctx context.Context, waterDrops int) (*PlayResult, error)

	// PlayClaw debits the entry fee and counts the play. The outcome is
	// settled later by ClawSuccess or ClawFailure.
	PlayClaw(ctx context.Context) (*ClawResult, error)

	// ClawSuccess records a won prize for an already-paid play.
	ClawSuccess(ctx context.Context, prizeName string) (*ClawResult, error)

	// ClawFailure settles a lost play. The entry fee stays spent.
	ClawFailure(ctx context.Context) (*ClawResult, error)

	// Stats returns the full accounting projection.
	Stats(ctx context.Context) (*StatsView, error)
}

type service struct {
	progRepo repository.Minigame
	wallet   ledger.Service
	cfg      Config
}

// NewService creates a new minigame accounting service. The ledger service
// owns all coin and ticket mutations.
func NewService(progRepo repository.Minigame, wallet ledger.Service, cfg Config) Service {
	return &service{
		progRepo: progRepo,
		wallet:   wallet,
		cfg:      cfg.normalized(),
	}
}

// loadNormalized loads the progress document and applies the lazy day
// rollover. The caller persists; rollover-only changes are flushed here so a
// read-only caller still observes a consistent document on disk.
func (s *service) loadNormalized(ctx context.Context) (*domain.MinigameProgress, error) {
	prog, err := s.progRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load minigame progress: %w", err)
	}
	if prog.Normalize(utils.FormatDate(s.cfg.Now())) {
		if err := s.progRepo.Save(ctx, prog); err != nil {
			return nil, fmt.Errorf("failed to save minigame progress: %w", err)
		}
	}
	return prog, nil
}

func (s *service) CanPlay(ctx context.Context, game domain.GameType) (bool, error) {
	remaining, err := s.RemainingPlays(ctx, game)
	if err != nil {
		return false, err
	}
	return remaining > 0, nil
}

func (s *service) RemainingPlays(ctx context.Context, game domain.GameType) (int, error) {
	if !domain.ValidGameType(game) {
		return 0, fmt.Errorf("remaining plays: %w", domain.ErrInvalidGameType)
	}
	prog, err := s.loadNormalized(ctx)
	if err != nil {
		return 0, err
	}
	return s.remaining(prog, game), nil
}

func (s *service) remaining(prog *domain.MinigameProgress, game domain.GameType) int {
	left := s.cfg.DailyPlayLimit - prog.DailyPlays[game]
	if left < 0 {
		return 0
	}
	return left
}

func (s *service) RewardMemory(ctx context.Context, perfectClear bool) (*PlayResult, error) {
	coins := memoryBaseCoins
	if perfectClear {
		coins += memoryPerfectBonus
	}
	return s.settle(ctx, domain.GameMemory, settlement{
		coins:    coins,
		won:      perfectClear,
		countWin: true,
	})
}

func (s *service) RewardMath(ctx context.Context, correctAnswers int) (*PlayResult, error) {
	return s.settle(ctx, domain.GameMath, settlement{
		coins:       mathCoinsPerAnswer * correctAnswers,
		score:       correctAnswers,
		weeklyBonus: correctAnswers >= mathWeeklyThreshold,
		bonusBundle: domain.RewardBundle{NormalGacha: 1},
		bonusSource: ticketSourceMinigameMath,
		bonusTicket: "normal_gacha",
	})
}

func (s *service) RewardCatch(ctx context.Context, waterDrops int) (*PlayResult, error) {
	return s.settle(ctx, domain.GameCatch, settlement{
		coins:       catchCoinsPerDrop * waterDrops,
		score:       waterDrops,
		weeklyBonus: waterDrops >= catchWeeklyThreshold,
		bonusBundle: domain.RewardBundle{GrowthTickets: 1},
		bonusSource: domain.TicketSourceMinigameCatch,
		bonusTicket: "growth",
	})
}

// settlement describes how one play mutates the accounting document.
type settlement struct {
	coins       int
	score       int
	won         bool
	countWin    bool
	weeklyBonus bool
	bonusBundle domain.RewardBundle
	bonusSource string
	bonusTicket string
}

// lockProgress serializes a progress-document save cycle. The wallet lock
// nests inside this one, never the other way around.
func (s *service) lockProgress() func() {
	lock := s.cfg.Locks.GetLock(concurrency.KeyMinigameProgress)
	lock.Lock()
	return lock.Unlock
}

func (s *service) settle(ctx context.Context, game domain.GameType, st settlement) (*PlayResult, error) {
	log := logger.FromContext(ctx)
	now := s.cfg.Now()
	defer s.lockProgress()()

	prog, err := s.loadNormalized(ctx)
	if err != nil {
		return nil, err
	}

	if s.remaining(prog, game) == 0 {
		return &PlayResult{
			Result: domain.Fail(domain.ReasonDailyLimitReached, MsgDailyLimitReached),
		}, nil
	}

	if st.coins > 0 {
		if _, err := s.wallet.AddMoney(ctx, st.coins); err != nil {
			return nil, fmt.Errorf("failed to credit coins: %w", err)
		}
	}

	// The weekly bonus fires once per calendar week (Sunday start). Dates
	// are YYYY-MM-DD, so string comparison orders them correctly.
	bonusGranted := false
	if st.weeklyBonus && prog.WeeklyBonuses[game] < utils.WeekStart(now) {
		if err := s.wallet.Grant(ctx, st.bonusBundle, st.bonusSource); err != nil {
			return nil, fmt.Errorf("failed to grant weekly bonus: %w", err)
		}
		prog.WeeklyBonuses[game] = utils.FormatDate(now)
		bonusGranted = true
	}

	prog.DailyPlays[game]++
	stats := prog.TotalStats[game]
	stats.Played++
	if st.countWin && st.won {
		stats.Won++
	}
	if st.score > stats.BestScore {
		stats.BestScore = st.score
	}

	prog.TotalRewards.Coins += st.coins
	prog.TodayRewards.Coins += st.coins
	if bonusGranted {
		prog.TotalRewards.NormalTickets += st.bonusBundle.NormalGacha
		prog.TodayRewards.NormalTickets += st.bonusBundle.NormalGacha
		prog.TotalRewards.GrowthTickets += st.bonusBundle.GrowthTickets
		prog.TodayRewards.GrowthTickets += st.bonusBundle.GrowthTickets
	}

	if err := s.progRepo.Save(ctx, prog); err != nil {
		return nil, fmt.Errorf("failed to save minigame progress: %w", err)
	}

	metrics.MinigamePlays.WithLabelValues(string(game)).Inc()
	log.Info("Minigame play settled",
		"game", game,
		"coins", st.coins,
		"weeklyBonus", bonusGranted,
	)

	result := &PlayResult{
		Result:         domain.OK(),
		Coins:          st.coins,
		WeeklyBonus:    bonusGranted,
		RemainingPlays: s.remaining(prog, game),
	}
	if bonusGranted {
		result.BonusTicket = st.bonusTicket
	}
	return result, nil
}

func (s *service) PlayClaw(ctx context.Context) (*ClawResult, error) {
	log := logger.FromContext(ctx)
	defer s.lockProgress()()

	prog, err := s.loadNormalized(ctx)
	if err != nil {
		return nil, err
	}

	if s.remaining(prog, domain.GameClaw) == 0 {
		return &ClawResult{
			Result: domain.Fail(domain.ReasonDailyLimitReached, MsgDailyLimitReached),
		}, nil
	}

	payment, err := s.wallet.SpendMoney(ctx, s.cfg.ClawEntryFee)
	if err != nil {
		return nil, fmt.Errorf("failed to debit entry fee: %w", err)
	}
	if !payment.Success {
		return &ClawResult{Result: payment.Result, Balance: payment.Balance}, nil
	}

	prog.DailyPlays[domain.GameClaw]++
	prog.TotalStats[domain.GameClaw].Played++

	if err := s.progRepo.Save(ctx, prog); err != nil {
		return nil, fmt.Errorf("failed to save minigame progress: %w", err)
	}

	metrics.MinigamePlays.WithLabelValues(string(domain.GameClaw)).Inc()
	log.Info("Claw machine entered", "fee", s.cfg.ClawEntryFee, "balance", payment.Balance)

	return &ClawResult{
		Result:         domain.OK(),
		Balance:        payment.Balance,
		RemainingPlays: s.remaining(prog, domain.GameClaw),
	}, nil
}

func (s *service) ClawSuccess(ctx context.Context, prizeName string) (*ClawResult, error) {
	log := logger.FromContext(ctx)
	now := s.cfg.Now()
	defer s.lockProgress()()

	prog, err := s.loadNormalized(ctx)
	if err != nil {
		return nil, err
	}

	prize := domain.ClawPrize{
		Name:       prizeName,
		ObtainedAt: now,
		Date:       utils.FormatDate(now),
	}
	prog.Prizes = append(prog.Prizes, prize)
	prog.TotalStats[domain.GameClaw].Won++

	if err := s.progRepo.Save(ctx, prog); err != nil {
		return nil, fmt.Errorf("failed to save minigame progress: %w", err)
	}

	log.Info("Claw prize won", "prize", prizeName)

	return &ClawResult{
		Result:         domain.OK(),
		Prize:          &prize,
		RemainingPlays: s.remaining(prog, domain.GameClaw),
	}, nil
}

func (s *service) ClawFailure(ctx context.Context) (*ClawResult, error) {
	prog, err := s.loadNormalized(ctx)
	if err != nil {
		return nil, err
	}

	return &ClawResult{
		Result:         domain.OK(),
		RemainingPlays: s.remaining(prog, domain.GameClaw),
	}, nil
}

func (s *service) Stats(ctx context.Context) (*StatsView, error) {
	prog, err := s.loadNormalized(ctx)
	if err != nil {
		return nil, err
	}

	games := make(map[domain.GameType]GameStatsView, len(prog.TotalStats))
	for _, g := range domain.AllGameTypes() {
		stats := prog.TotalStats[g]
		games[g] = GameStatsView{
			Played:         stats.Played,
			Won:            stats.Won,
			BestScore:      stats.BestScore,
			PlaysToday:     prog.DailyPlays[g],
			RemainingPlays: s.remaining(prog, g),
		}
	}

	return &StatsView{
		Games:        games,
		Prizes:       prog.Prizes,
		TotalRewards: prog.TotalRewards,
		TodayRewards: prog.TodayRewards,
	}, nil
}
