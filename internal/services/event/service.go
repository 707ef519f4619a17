// Package event implements the business operations behind the event registry:
// listing, detail lookup, organizer-side creation and cancellation.
package event

import (
	"context"
	"fmt"
	"time"

	"github.com/agora-events/agora/internal/database"
	"github.com/agora-events/agora/internal/models"
	"github.com/google/uuid"
)

// Service defines all event-related business operations
type Service interface {
	// Read operations
	ListEvents(ctx context.Context, categoryID int) ([]*models.EventSummary, error)
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	ListCategories(ctx context.Context) ([]*models.Category, error)

	// Write operations
	CreateEvent(ctx context.Context, req CreateEventRequest) (*models.Event, error)
	CancelEvent(ctx context.Context, id, organizer string) error
}

// TierRequest describes one tier of a new event
type TierRequest struct {
	Name       string
	PriceCents int64
	TierLimit  int
	Refundable bool
}

// CreateEventRequest encapsulates data for creating an event
type CreateEventRequest struct {
	Title          string
	Description    string
	Organizer      string
	Venue          string
	StartsAt       time.Time
	CategoryID     int
	MaxSupply      int
	PlatformFeeBps int // 0 = platform default
	Tiers          []TierRequest
}

// service implements Service interface
type service struct {
	repo database.DataStore
}

// NewService creates a new event service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

// ListEvents retrieves event summaries, optionally filtered by category (0 = all)
func (s *service) ListEvents(ctx context.Context, categoryID int) ([]*models.EventSummary, error) {
	if categoryID < 0 {
		return nil, ErrInvalidCategoryID
	}
	return s.repo.GetEventSummaries(ctx, categoryID)
}

// GetEvent retrieves a single event with its tiers
func (s *service) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	if id == "" {
		return nil, ErrInvalidEventID
	}
	return s.repo.GetEventByID(ctx, id)
}

// ListCategories retrieves all categories for the filter bar
func (s *service) ListCategories(ctx context.Context) ([]*models.Category, error) {
	return s.repo.GetAllCategories(ctx)
}

// CreateEvent creates a new event with validation
func (s *service) CreateEvent(ctx context.Context, req CreateEventRequest) (*models.Event, error) {
	if err := validateCreateEvent(req); err != nil {
		return nil, err
	}

	event := &models.Event{
		ID:             uuid.NewString(),
		Title:          req.Title,
		Description:    req.Description,
		Organizer:      req.Organizer,
		Venue:          req.Venue,
		StartsAt:       req.StartsAt,
		CategoryID:     req.CategoryID,
		MaxSupply:      req.MaxSupply,
		PlatformFeeBps: req.PlatformFeeBps,
	}
	for _, tr := range req.Tiers {
		event.Tiers = append(event.Tiers, &models.Tier{
			Name:       tr.Name,
			PriceCents: tr.PriceCents,
			TierLimit:  tr.TierLimit,
			Refundable: tr.Refundable,
		})
	}

	if err := s.repo.CreateEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return event, nil
}

// CancelEvent cancels an event. Only the organizer of record may cancel.
func (s *service) CancelEvent(ctx context.Context, id, organizer string) error {
	if id == "" {
		return ErrInvalidEventID
	}

	event, err := s.repo.GetEventByID(ctx, id)
	if err != nil {
		return err
	}
	if event.Organizer != organizer {
		return ErrNotOrganizer
	}

	if err := s.repo.CancelEvent(ctx, id); err != nil {
		return fmt.Errorf("failed to cancel event: %w", err)
	}
	return nil
}

// validateCreateEvent validates a CreateEventRequest
func validateCreateEvent(req CreateEventRequest) error {
	if req.Title == "" {
		return ErrEmptyTitle
	}
	if len(req.Title) > 120 {
		return ErrTitleTooLong
	}
	if req.Organizer == "" {
		return ErrEmptyOrganizer
	}
	if req.CategoryID <= 0 {
		return ErrInvalidCategoryID
	}
	if req.StartsAt.IsZero() {
		return ErrMissingStartTime
	}
	if req.MaxSupply < 0 {
		return ErrInvalidSupply
	}
	if req.PlatformFeeBps < 0 || req.PlatformFeeBps > models.MaxPlatformFeeBps {
		return ErrInvalidFeeBps
	}
	if len(req.Tiers) == 0 {
		return ErrNoTiers
	}

	seen := make(map[string]bool, len(req.Tiers))
	for _, tier := range req.Tiers {
		if tier.Name == "" {
			return ErrEmptyTierName
		}
		if seen[tier.Name] {
			return ErrDuplicateTierName
		}
		seen[tier.Name] = true
		if tier.PriceCents < 0 {
			return ErrInvalidTierPrice
		}
		if tier.TierLimit < 0 {
			return ErrInvalidTierLimit
		}
	}

	return nil
}
