package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/edupet/engine/internal/logger"
	"github.com/edupet/engine/internal/plant"
	"github.com/edupet/engine/internal/repository"
)

// PlantHandler exposes the plant lifecycle endpoints. The owner id is the
// session user's id, resolved from the state document per request.
type PlantHandler struct {
	plantSvc plant.Service
	userRepo repository.UserState
}

// NewPlantHandler creates a new plant handler
func NewPlantHandler(plantSvc plant.Service, userRepo repository.UserState) *PlantHandler {
	return &PlantHandler{
		plantSvc: plantSvc,
		userRepo: userRepo,
	}
}

func (h *PlantHandler) ownerID(r *http.Request) (string, error) {
	state, err := h.userRepo.Load(r.Context())
	if err != nil {
		return "", err
	}
	return state.UserID, nil
}

// HandlePlantSeed plants a new seed.
func (h *PlantHandler) HandlePlantSeed(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	owner, err := h.ownerID(r)
	if err != nil {
		respondServiceError(w, "Plant seed", err)
		return
	}

	result, err := h.plantSvc.PlantSeed(r.Context(), owner)
	if err != nil {
		respondServiceError(w, "Plant seed", err)
		return
	}

	log.Info("Plant seed handled", "success", result.Success)
	respondJSON(w, http.StatusOK, result)
}

// HandleWaterPlant waters the plant once.
func (h *PlantHandler) HandleWaterPlant(w http.ResponseWriter, r *http.Request) {
	plantID := chi.URLParam(r, "plantID")

	result, err := h.plantSvc.WaterPlant(r.Context(), plantID)
	if err != nil {
		respondServiceError(w, "Water plant", err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// HandleGrowPlant advances a ready plant, consuming a growth ticket.
func (h *PlantHandler) HandleGrowPlant(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	plantID := chi.URLParam(r, "plantID")

	owner, err := h.ownerID(r)
	if err != nil {
		respondServiceError(w, "Grow plant", err)
		return
	}

	result, err := h.plantSvc.GrowPlant(r.Context(), owner, plantID)
	if err != nil {
		respondServiceError(w, "Grow plant", err)
		return
	}

	log.Info("Grow plant handled", "plantID", plantID, "success", result.Success, "reason", result.Reason)
	respondJSON(w, http.StatusOK, result)
}

// HandleHarvestPlant harvests a grown plant.
func (h *PlantHandler) HandleHarvestPlant(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	plantID := chi.URLParam(r, "plantID")

	result, err := h.plantSvc.HarvestPlant(r.Context(), plantID)
	if err != nil {
		respondServiceError(w, "Harvest plant", err)
		return
	}

	log.Info("Harvest handled", "plantID", plantID, "success", result.Success)
	respondJSON(w, http.StatusOK, result)
}

// HandleDashboard returns the combined farm view.
func (h *PlantHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	owner, err := h.ownerID(r)
	if err != nil {
		respondServiceError(w, "Dashboard", err)
		return
	}

	dashboard, err := h.plantSvc.Dashboard(r.Context(), owner)
	if err != nil {
		respondServiceError(w, "Dashboard", err)
		return
	}
	respondJSON(w, http.StatusOK, dashboard)
}

// HandleNotifications returns pending farm alerts.
func (h *PlantHandler) HandleNotifications(w http.ResponseWriter, r *http.Request) {
	owner, err := h.ownerID(r)
	if err != nil {
		respondServiceError(w, "Notifications", err)
		return
	}

	notifications, err := h.plantSvc.Notifications(r.Context(), owner)
	if err != nil {
		respondServiceError(w, "Notifications", err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: notifications})
}

// HandleStatistics returns lifetime farm statistics.
func (h *PlantHandler) HandleStatistics(w http.ResponseWriter, r *http.Request) {
	owner, err := h.ownerID(r)
	if err != nil {
		respondServiceError(w, "Statistics", err)
		return
	}

	stats, err := h.plantSvc.Statistics(r.Context(), owner)
	if err != nil {
		respondServiceError(w, "Statistics", err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}
