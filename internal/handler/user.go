package handler

import (
	"net/http"

	"github.com/edupet/engine/internal/ledger"
	"github.com/edupet/engine/internal/logger"
	"github.com/edupet/engine/internal/repository"
)

// UserHandler exposes the user state document and the wallet.
type UserHandler struct {
	userRepo  repository.UserState
	ledgerSvc ledger.Service
}

// NewUserHandler creates a new user handler
func NewUserHandler(userRepo repository.UserState, ledgerSvc ledger.Service) *UserHandler {
	return &UserHandler{
		userRepo:  userRepo,
		ledgerSvc: ledgerSvc,
	}
}

// WalletAmountRequest carries a wallet mutation amount.
type WalletAmountRequest struct {
	Amount int `json:"amount" validate:"gte=0"`
}

// WalletBalanceResponse reports the current balance.
type WalletBalanceResponse struct {
	Balance int `json:"balance"`
}

// HandleGetState returns the whole user state document.
func (h *UserHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	state, err := h.userRepo.Load(r.Context())
	if err != nil {
		respondServiceError(w, "Get state", err)
		return
	}
	respondJSON(w, http.StatusOK, state)
}

// HandleGetWallet returns the current balance.
func (h *UserHandler) HandleGetWallet(w http.ResponseWriter, r *http.Request) {
	balance, err := h.ledgerSvc.GetMoney(r.Context())
	if err != nil {
		respondServiceError(w, "Get wallet", err)
		return
	}
	respondJSON(w, http.StatusOK, WalletBalanceResponse{Balance: balance})
}

// HandleAddMoney credits the wallet.
func (h *UserHandler) HandleAddMoney(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req WalletAmountRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Add money"); err != nil {
		return
	}

	result, err := h.ledgerSvc.AddMoney(r.Context(), req.Amount)
	if err != nil {
		respondServiceError(w, "Add money", err)
		return
	}

	log.Info("Money added", "amount", req.Amount, "balance", result.Balance)
	respondJSON(w, http.StatusOK, result)
}

// HandleSpendMoney debits the wallet. Insufficient funds comes back as a
// failed result, not an error.
func (h *UserHandler) HandleSpendMoney(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req WalletAmountRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Spend money"); err != nil {
		return
	}

	result, err := h.ledgerSvc.SpendMoney(r.Context(), req.Amount)
	if err != nil {
		respondServiceError(w, "Spend money", err)
		return
	}

	log.Info("Money spend attempted", "amount", req.Amount, "success", result.Success)
	respondJSON(w, http.StatusOK, result)
}

// HandleSetMoney overwrites the balance.
func (h *UserHandler) HandleSetMoney(w http.ResponseWriter, r *http.Request) {
	var req WalletAmountRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set money"); err != nil {
		return
	}

	result, err := h.ledgerSvc.SetMoney(r.Context(), req.Amount)
	if err != nil {
		respondServiceError(w, "Set money", err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
