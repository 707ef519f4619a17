package database

// DataStore defines the unified interface for all data operations needed by the
// TUI and CLI. It is composed of smaller, domain-specific interfaces so
// consumers can depend on just the slice they use (e.g. a service takes only
// EventRepository) for better testability and clearer dependencies.
type DataStore interface {
	EventRepository
	RegistrationRepository
	CategoryRepository
	SessionRepository
}

// Repository must satisfy the full DataStore contract.
var _ DataStore = (*Repository)(nil)
