package domain

// Result is the discriminated outcome shared by all user-triggered
// operations. Expected business-rule violations come back as a failed Result
// with a machine-checkable Reason and a short human-readable Message;
// storage and programmer errors propagate as Go errors instead.
type Result struct {
	Success bool   `json:"success"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
}

// OK returns a successful result.
func OK() Result {
	return Result{Success: true}
}

// Fail returns a failed result with the given reason code and message.
func Fail(reason, message string) Result {
	return Result{Success: false, Reason: reason, Message: message}
}

// Reason codes for failed results.
const (
	ReasonNotFound          = "NOT_FOUND"
	ReasonAlreadyGrown      = "ALREADY_GROWN"
	ReasonWaterFull         = "WATER_FULL"
	ReasonNotReady          = "NOT_READY"
	ReasonTimeNotElapsed    = "TIME_NOT_ELAPSED"
	ReasonWaterInsufficient = "WATER_INSUFFICIENT"
	ReasonNoValidTicket     = "NO_VALID_TICKET"
	ReasonAlreadyProcessing = "ALREADY_PROCESSING"
	ReasonNotGrown          = "NOT_GROWN"
	ReasonPlantLimit        = "PLANT_LIMIT"
	ReasonAlreadyCompleted  = "ALREADY_COMPLETED"
	ReasonInsufficientFunds = "INSUFFICIENT_FUNDS"
	ReasonDailyLimitReached = "DAILY_LIMIT_REACHED"
)
