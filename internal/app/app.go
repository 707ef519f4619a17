package app

import (
	"github.com/agora-events/agora/internal/database"
	authservice "github.com/agora-events/agora/internal/services/auth"
	eventservice "github.com/agora-events/agora/internal/services/event"
	registrationservice "github.com/agora-events/agora/internal/services/registration"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore

	// Service layer (business logic)
	EventService        eventservice.Service
	RegistrationService registrationservice.Service
	AuthService         authservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(repo database.DataStore, authSalt string) *App {
	return &App{
		repo:                repo,
		EventService:        eventservice.NewService(repo),
		RegistrationService: registrationservice.NewService(repo),
		AuthService:         authservice.NewService(repo, authSalt),
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Close performs cleanup of application resources.
// Currently a no-op, but provided for future resource management needs.
func (a *App) Close() error {
	return nil
}
