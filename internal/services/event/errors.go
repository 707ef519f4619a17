package event

import "errors"

// Event-related errors
var (
	// Validation errors
	ErrEmptyTitle        = errors.New("title cannot be empty")
	ErrTitleTooLong      = errors.New("title cannot exceed 120 characters")
	ErrEmptyOrganizer    = errors.New("organizer cannot be empty")
	ErrInvalidCategoryID = errors.New("invalid category ID")
	ErrInvalidEventID    = errors.New("invalid event ID")
	ErrMissingStartTime  = errors.New("event start time is required")
	ErrInvalidSupply     = errors.New("max supply cannot be negative")
	ErrInvalidFeeBps     = errors.New("platform fee must be between 0 and 10000 basis points")
	ErrNoTiers           = errors.New("event needs at least one ticket tier")
	ErrEmptyTierName     = errors.New("tier name cannot be empty")
	ErrDuplicateTierName = errors.New("tier names must be unique per event")
	ErrInvalidTierPrice  = errors.New("tier price cannot be negative")
	ErrInvalidTierLimit  = errors.New("tier limit cannot be negative")

	// Business logic errors
	ErrNotOrganizer = errors.New("only the organizer can modify this event")
)
