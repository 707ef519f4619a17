package models

import "errors"

// Domain-specific errors shared across services
var (
	// ErrEventNotFound indicates the event ID does not exist in the registry
	ErrEventNotFound = errors.New("event not found")

	// ErrEventInactive indicates the event is cancelled and not accepting registrations
	ErrEventInactive = errors.New("event is not active")

	// ErrEventSoldOut indicates the event has reached its maximum supply
	ErrEventSoldOut = errors.New("event is sold out")

	// ErrTierNotFound indicates the named tier does not exist on the event
	ErrTierNotFound = errors.New("tier not found")

	// ErrTierSoldOut indicates the tier has reached its own limit
	ErrTierSoldOut = errors.New("tier is sold out")
)
