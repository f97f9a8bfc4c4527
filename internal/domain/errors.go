package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Persistence errors
	ErrMsgNoSave              = "no prior save"
	ErrMsgUnknownSaveVersion  = "unknown save version"
	ErrMsgMalformedSave       = "malformed save data"
	ErrMsgInvalidSlot         = "invalid save slot"
	ErrMsgStorageUnavailable  = "storage unavailable"
	ErrMsgUnknownStoreBackend = "unknown storage backend"

	// Content errors
	ErrMsgInvalidContent = "invalid content definition"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Session errors
	ErrMsgSessionsClosed = "session manager is closed"
)

// Common domain errors
// Gameplay failures are reported through Reason codes, never through these.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrNoSave              = errors.New(ErrMsgNoSave)
	ErrUnknownSaveVersion  = errors.New(ErrMsgUnknownSaveVersion)
	ErrMalformedSave       = errors.New(ErrMsgMalformedSave)
	ErrInvalidSlot         = errors.New(ErrMsgInvalidSlot)
	ErrStorageUnavailable  = errors.New(ErrMsgStorageUnavailable)
	ErrUnknownStoreBackend = errors.New(ErrMsgUnknownStoreBackend)

	ErrInvalidContent = errors.New(ErrMsgInvalidContent)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	ErrSessionsClosed = errors.New(ErrMsgSessionsClosed)
)
