package handler

import (
	"net/http"

	"github.com/edupet/engine/internal/logger"
	"github.com/edupet/engine/internal/reset"
)

// AdminResetHandler exposes the reset and maintenance surface.
type AdminResetHandler struct {
	resetSvc reset.Service
}

// NewAdminResetHandler creates a new admin reset handler
func NewAdminResetHandler(resetSvc reset.Service) *AdminResetHandler {
	return &AdminResetHandler{resetSvc: resetSvc}
}

// HandleForceReset performs the daily reset unconditionally.
func (h *AdminResetHandler) HandleForceReset(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	result, err := h.resetSvc.ForceReset(r.Context())
	if err != nil {
		respondServiceError(w, "Force reset", err)
		return
	}

	log.Info("Force reset handled", "date", result.Date)
	respondJSON(w, http.StatusOK, result)
}

// HandleCheckReset runs the idempotent date check.
func (h *AdminResetHandler) HandleCheckReset(w http.ResponseWriter, r *http.Request) {
	result, err := h.resetSvc.CheckAndReset(r.Context())
	if err != nil {
		respondServiceError(w, "Check reset", err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// HandleCountdown reports the time until the next local midnight.
func (h *AdminResetHandler) HandleCountdown(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.resetSvc.TimeUntilNextReset())
}

// HandleDailyStatistics reports today's progress summary.
func (h *AdminResetHandler) HandleDailyStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.resetSvc.DailyStatistics(r.Context())
	if err != nil {
		respondServiceError(w, "Daily statistics", err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}
