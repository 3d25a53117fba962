package errs

import "errors"

// Domain-specific sentinel errors for the usecase layers
var (
	// Chat errors
	ErrSessionNotFound  = errors.New("chat session not found")
	ErrAgentUnavailable = errors.New("agent unavailable")
	ErrEmptyTranscript  = errors.New("empty transcript")

	// Fulfillment errors
	ErrMalformedSummary      = errors.New("malformed order summary")
	ErrCommerceCallFailed    = errors.New("commerce call failed")
	ErrConcurrentFulfillment = errors.New("fulfillment already in progress")
	ErrInvalidTransition     = errors.New("invalid fulfillment transition")
	ErrNoActiveFulfillment   = errors.New("no active fulfillment attempt")

	// Inventory errors
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrDuplicateName      = errors.New("ingredient name already exists")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
