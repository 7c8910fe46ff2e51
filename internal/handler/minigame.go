package handler

import (
	"net/http"
	"strings"

	"github.com/edupet/engine/internal/domain"
	"github.com/edupet/engine/internal/logger"
	"github.com/edupet/engine/internal/minigame"
)

// MinigameHandler exposes the minigame reward accounting endpoints.
type MinigameHandler struct {
	minigameSvc minigame.Service
}

// NewMinigameHandler creates a new minigame handler
func NewMinigameHandler(minigameSvc minigame.Service) *MinigameHandler {
	return &MinigameHandler{minigameSvc: minigameSvc}
}

// MemoryRewardRequest settles one memory play.
type MemoryRewardRequest struct {
	PerfectClear bool `json:"perfect_clear"`
}

// MathRewardRequest settles one math play.
type MathRewardRequest struct {
	CorrectAnswers int `json:"correct_answers" validate:"gte=0,lte=1000"`
}

// CatchRewardRequest settles one catch play.
type CatchRewardRequest struct {
	WaterDrops int `json:"water_drops" validate:"gte=0,lte=10000"`
}

// ClawOutcomeRequest settles a claw machine outcome.
type ClawOutcomeRequest struct {
	Won   bool   `json:"won"`
	Prize string `json:"prize" validate:"max=100"`
}

// RemainingPlaysResponse reports the daily quota left for one game.
type RemainingPlaysResponse struct {
	Game      domain.GameType `json:"game"`
	Remaining int             `json:"remaining"`
	CanPlay   bool            `json:"can_play"`
}

// HandleRemainingPlays reports the remaining daily plays for a game.
func (h *MinigameHandler) HandleRemainingPlays(w http.ResponseWriter, r *http.Request) {
	raw, ok := GetQueryParam(r, w, "game")
	if !ok {
		return
	}
	game := domain.GameType(strings.ToLower(raw))

	remaining, err := h.minigameSvc.RemainingPlays(r.Context(), game)
	if err != nil {
		respondServiceError(w, "Remaining plays", err)
		return
	}

	respondJSON(w, http.StatusOK, RemainingPlaysResponse{
		Game:      game,
		Remaining: remaining,
		CanPlay:   remaining > 0,
	})
}

// HandleMemoryReward settles one memory game play.
func (h *MinigameHandler) HandleMemoryReward(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req MemoryRewardRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Memory reward"); err != nil {
		return
	}

	result, err := h.minigameSvc.RewardMemory(r.Context(), req.PerfectClear)
	if err != nil {
		respondServiceError(w, "Memory reward", err)
		return
	}

	log.Info("Memory play settled", "perfectClear", req.PerfectClear, "success", result.Success)
	respondJSON(w, http.StatusOK, result)
}

// HandleMathReward settles one math game play.
func (h *MinigameHandler) HandleMathReward(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req MathRewardRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Math reward"); err != nil {
		return
	}

	result, err := h.minigameSvc.RewardMath(r.Context(), req.CorrectAnswers)
	if err != nil {
		respondServiceError(w, "Math reward", err)
		return
	}

	log.Info("Math play settled", "correct", req.CorrectAnswers, "weeklyBonus", result.WeeklyBonus)
	respondJSON(w, http.StatusOK, result)
}

// HandleCatchReward settles one catch game play.
func (h *MinigameHandler) HandleCatchReward(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req CatchRewardRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Catch reward"); err != nil {
		return
	}

	result, err := h.minigameSvc.RewardCatch(r.Context(), req.WaterDrops)
	if err != nil {
		respondServiceError(w, "Catch reward", err)
		return
	}

	log.Info("Catch play settled", "drops", req.WaterDrops, "weeklyBonus", result.WeeklyBonus)
	respondJSON(w, http.StatusOK, result)
}

// HandlePlayClaw debits the entry fee and opens a claw machine round.
func (h *MinigameHandler) HandlePlayClaw(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	result, err := h.minigameSvc.PlayClaw(r.Context())
	if err != nil {
		respondServiceError(w, "Play claw", err)
		return
	}

	log.Info("Claw entry handled", "success", result.Success, "reason", result.Reason)
	respondJSON(w, http.StatusOK, result)
}

// HandleClawOutcome settles the claw round: prize recorded on a win, fee
// stays spent on a loss.
func (h *MinigameHandler) HandleClawOutcome(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req ClawOutcomeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Claw outcome"); err != nil {
		return
	}

	var (
		result *minigame.ClawResult
		err    error
	)
	if req.Won {
		result, err = h.minigameSvc.ClawSuccess(r.Context(), req.Prize)
	} else {
		result, err = h.minigameSvc.ClawFailure(r.Context())
	}
	if err != nil {
		respondServiceError(w, "Claw outcome", err)
		return
	}

	log.Info("Claw outcome settled", "won", req.Won, "prize", req.Prize)
	respondJSON(w, http.StatusOK, result)
}

// HandleStats returns the full minigame accounting projection.
func (h *MinigameHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.minigameSvc.Stats(r.Context())
	if err != nil {
		respondServiceError(w, "Minigame stats", err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}
