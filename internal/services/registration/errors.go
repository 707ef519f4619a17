package registration

import "errors"

// Registration-related errors
var (
	// Validation errors
	ErrEmptyEmail            = errors.New("email cannot be empty")
	ErrEmptyTierName         = errors.New("tier name cannot be empty")
	ErrInvalidEventID        = errors.New("invalid event ID")
	ErrInvalidRegistrationID = errors.New("invalid registration ID")

	// Business logic errors
	ErrAlreadyRegistered    = errors.New("already registered for this event")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrNotPending           = errors.New("registration is not pending payment")
	ErrNotConfirmed         = errors.New("registration is not confirmed")
	ErrNotRefundable        = errors.New("tier does not allow refunds")
)
