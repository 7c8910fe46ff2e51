package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	ErrMsgUserStateNotFound = "user state not found"
	ErrMsgPlantNotFound     = "plant not found"
	ErrMsgProgressNotFound  = "minigame progress not found"
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgInvalidAmount     = "invalid amount"
	ErrMsgInvalidGameType   = "invalid game type"
)

// Common domain errors. Business-rule violations are NOT errors; they are
// returned as Result values (see result.go). These sentinels cover storage
// misses and programmer errors only, and should be wrapped with
// fmt.Errorf("%w: ...", err) for context.
var (
	ErrUserStateNotFound = errors.New(ErrMsgUserStateNotFound)
	ErrPlantNotFound     = errors.New(ErrMsgPlantNotFound)
	ErrProgressNotFound  = errors.New(ErrMsgProgressNotFound)
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrInvalidAmount     = errors.New(ErrMsgInvalidAmount)
	ErrInvalidGameType   = errors.New(ErrMsgInvalidGameType)
)
