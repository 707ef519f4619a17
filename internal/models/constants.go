package models

// EventStatus is the derived display status of an event
type EventStatus string

const (
	EventActive    EventStatus = "active"
	EventSoldOut   EventStatus = "sold_out"
	EventCancelled EventStatus = "cancelled"
)

// RegistrationStatus tracks a registration through the payment lifecycle
type RegistrationStatus string

const (
	RegistrationPending   RegistrationStatus = "pending"
	RegistrationConfirmed RegistrationStatus = "confirmed"
	RegistrationFailed    RegistrationStatus = "failed"
	RegistrationRefunded  RegistrationStatus = "refunded"
)

// ============================================================================
// PLATFORM FEE CONSTANTS
// ============================================================================

// Fee percentages are expressed in basis points (10000 = 100%)
const (
	// DefaultPlatformFeeBps is applied when an event does not set its own fee
	DefaultPlatformFeeBps = 500

	// MaxPlatformFeeBps is the upper bound for any fee configuration
	MaxPlatformFeeBps = 10000
)

// ============================================================================
// AUTH CONSTANTS
// ============================================================================

const (
	// OTPDigits is the length of a sign-in code
	OTPDigits = 6

	// SessionTokenBytes is the entropy of a session token before encoding
	SessionTokenBytes = 24
)
