package ledger

import "github.com/edupet/engine/internal/domain"

// NextRewardProjection describes the next unreached threshold.
type NextRewardProjection struct {
	Threshold int                 `json:"threshold"`
	Remaining int                 `json:"remaining"`
	Rewards   domain.RewardBundle `json:"rewards"`
}

// CompleteResult is the outcome of CompleteSubject.
type CompleteResult struct {
	domain.Result
	CompletedCount int                   `json:"completed_count"`
	Rewards        domain.RewardBundle   `json:"rewards"`
	NextReward     *NextRewardProjection `json:"next_reward,omitempty"`
}

// WalletResult is the outcome of a wallet mutation.
type WalletResult struct {
	domain.Result
	Balance int `json:"balance"`
}
