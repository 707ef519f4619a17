package database

import (
	"context"
	"time"

	"github.com/agora-events/agora/internal/models"
)

// EventRepository defines all event data operations.
type EventRepository interface {
	CreateEvent(ctx context.Context, event *models.Event) error
	GetEventSummaries(ctx context.Context, categoryID int) ([]*models.EventSummary, error)
	GetEventByID(ctx context.Context, id string) (*models.Event, error)
	CancelEvent(ctx context.Context, id string) error
	AdjustSupply(ctx context.Context, eventID, tierName string, delta int) error
	DeleteEvent(ctx context.Context, id string) error
}

// RegistrationRepository defines all registration data operations.
type RegistrationRepository interface {
	CreateRegistration(ctx context.Context, reg *models.Registration) error
	GetRegistrationByID(ctx context.Context, id string) (*models.Registration, error)
	GetRegistrationForEvent(ctx context.Context, eventID, email string) (*models.Registration, error)
	GetRegistrationsByEmail(ctx context.Context, email string) ([]*models.RegistrationDetail, error)
	UpdateRegistrationStatus(ctx context.Context, id string, status models.RegistrationStatus, confirmedAt *time.Time) error
	DeleteRegistration(ctx context.Context, id string) error
	CountRegistrationsByStatus(ctx context.Context, eventID string) (map[models.RegistrationStatus]int, error)
}

// CategoryRepository defines all category data operations.
type CategoryRepository interface {
	GetAllCategories(ctx context.Context) ([]*models.Category, error)
	GetCategoryByID(ctx context.Context, id int) (*models.Category, error)
	CreateCategory(ctx context.Context, name, glyph, color string) (*models.Category, error)
}

// SessionRepository defines sign-in code and session data operations.
type SessionRepository interface {
	SaveLoginCode(ctx context.Context, email, codeHash string, expiresAt time.Time) error
	GetLoginCode(ctx context.Context, email string) (string, time.Time, error)
	DeleteLoginCode(ctx context.Context, email string) error
	CreateSession(ctx context.Context, session *models.Session) error
	GetSession(ctx context.Context, token string) (*models.Session, error)
	DeleteSession(ctx context.Context, token string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) error
}
