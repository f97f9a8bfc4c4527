package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Parameter error messages
	ErrMsgInvalidSlotParam  = "Invalid slot parameter"
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"

	// Routing error messages
	ErrMsgUnknownAction    = "Unknown action '%s'"
	ErrMsgUnknownContainer = "Unknown container '%s'"
	ErrMsgUnknownSlotOp    = "Unknown slot operation '%s'"

	// Persistence error messages
	ErrMsgNoSaveInSlot   = "No save in that slot"
	ErrMsgReadBodyFailed = "Failed to read request body"
)

// Success messages for API responses
const (
	MsgGameSaved   = "Game saved"
	MsgGameReset   = "Game reset"
	MsgSlotDeleted = "Slot deleted"
)

// Log messages
const (
	LogMsgDecodeFailed   = "Failed to decode request"
	LogMsgRequestDecoded = "Request decoded"
	LogMsgEncodeFailed   = "Failed to encode JSON response"
	LogMsgWriteFailed    = "Failed to write response buffer"
	LogMsgServiceError   = "Request failed"
	LogMsgReadyzFailed   = "Readiness check failed"
)
