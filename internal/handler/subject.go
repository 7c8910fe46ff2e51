package handler

import (
	"net/http"
	"strconv"

	"github.com/edupet/engine/internal/ledger"
	"github.com/edupet/engine/internal/logger"
)

// SubjectHandler exposes subject completion and reward projection.
type SubjectHandler struct {
	ledgerSvc ledger.Service
}

// NewSubjectHandler creates a new subject handler
func NewSubjectHandler(ledgerSvc ledger.Service) *SubjectHandler {
	return &SubjectHandler{ledgerSvc: ledgerSvc}
}

// CompleteSubjectRequest identifies the finished subject.
type CompleteSubjectRequest struct {
	SubjectID string `json:"subject_id" validate:"required,max=100"`
}

// HandleCompleteSubject records one subject completion.
func (h *SubjectHandler) HandleCompleteSubject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req CompleteSubjectRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Complete subject"); err != nil {
		return
	}

	result, err := h.ledgerSvc.CompleteSubject(r.Context(), req.SubjectID)
	if err != nil {
		respondServiceError(w, "Complete subject", err)
		return
	}

	log.Info("Subject completion handled",
		"subjectID", req.SubjectID,
		"success", result.Success,
		"completedCount", result.CompletedCount)
	respondJSON(w, http.StatusOK, result)
}

// HandleNextReward projects the next threshold for a given count.
func (h *SubjectHandler) HandleNextReward(w http.ResponseWriter, r *http.Request) {
	raw, ok := GetQueryParam(r, w, "count")
	if !ok {
		return
	}

	count, err := strconv.Atoi(raw)
	if err != nil || count < 0 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
		return
	}

	next := h.ledgerSvc.NextReward(count)
	if next == nil {
		respondJSON(w, http.StatusOK, DataResponse{Message: "All thresholds reached", Data: nil})
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: next})
}
