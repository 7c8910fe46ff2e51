package handler

// Request-level error messages.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
)

// User-facing error messages for service errors.
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgPlantNotFound      = "Plant not found"
	ErrMsgInvalidAmount      = "Amount must not be negative"
	ErrMsgInvalidGameType    = "Unknown game type"
)
