// Package registration implements the attendee-side registration and payment
// lifecycle. Free tiers confirm immediately; paid tiers open a pending
// registration that settles through ConfirmPayment or FailPayment, with the
// platform fee split off in basis points.
package registration

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/agora-events/agora/internal/database"
	"github.com/agora-events/agora/internal/models"
	"github.com/google/uuid"
)

// Service defines all registration-related business operations
type Service interface {
	// Read operations
	ListByEmail(ctx context.Context, email string) ([]*models.RegistrationDetail, error)
	GetForEvent(ctx context.Context, eventID, email string) (*models.Registration, error)

	// Write operations
	Register(ctx context.Context, req RegisterRequest) (*models.Registration, error)
	ConfirmPayment(ctx context.Context, registrationID string) error
	FailPayment(ctx context.Context, registrationID string) error
	Refund(ctx context.Context, registrationID string) error
}

// RegisterRequest encapsulates data for registering for an event
type RegisterRequest struct {
	EventID  string
	Email    string
	TierName string
}

// service implements Service interface
type service struct {
	repo database.DataStore
}

// NewService creates a new registration service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

// ListByEmail retrieves an attendee's registrations with event details
func (s *service) ListByEmail(ctx context.Context, email string) ([]*models.RegistrationDetail, error) {
	if email == "" {
		return nil, ErrEmptyEmail
	}
	return s.repo.GetRegistrationsByEmail(ctx, email)
}

// GetForEvent retrieves the registration an attendee holds for an event, if any
func (s *service) GetForEvent(ctx context.Context, eventID, email string) (*models.Registration, error) {
	if eventID == "" {
		return nil, ErrInvalidEventID
	}
	if email == "" {
		return nil, ErrEmptyEmail
	}
	return s.repo.GetRegistrationForEvent(ctx, eventID, email)
}

// Register registers an attendee for one tier of an event.
// A free tier confirms immediately; a paid tier returns a pending
// registration holding the computed fee split.
func (s *service) Register(ctx context.Context, req RegisterRequest) (*models.Registration, error) {
	if req.EventID == "" {
		return nil, ErrInvalidEventID
	}
	if req.Email == "" {
		return nil, ErrEmptyEmail
	}
	if req.TierName == "" {
		return nil, ErrEmptyTierName
	}

	event, err := s.repo.GetEventByID(ctx, req.EventID)
	if err != nil {
		return nil, err
	}

	switch event.Status() {
	case models.EventCancelled:
		return nil, models.ErrEventInactive
	case models.EventSoldOut:
		return nil, models.ErrEventSoldOut
	}

	tier := findTier(event, req.TierName)
	if tier == nil {
		return nil, models.ErrTierNotFound
	}

	existing, err := s.repo.GetRegistrationForEvent(ctx, req.EventID, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing registration: %w", err)
	}
	// A failed registration may retry; anything else is a duplicate
	if existing != nil {
		if existing.Status != models.RegistrationFailed {
			return nil, ErrAlreadyRegistered
		}
		// Clear the failed attempt so the unique (event, email) slot is free
		if err := s.repo.DeleteRegistration(ctx, existing.ID); err != nil {
			return nil, fmt.Errorf("failed to clear failed registration: %w", err)
		}
	}

	// Claim supply before writing the registration so concurrent
	// registrations cannot oversell; the guards live in the repository.
	if err := s.repo.AdjustSupply(ctx, req.EventID, req.TierName, 1); err != nil {
		return nil, err
	}

	fee := PlatformFee(tier.PriceCents, event.PlatformFeeBps)
	reg := &models.Registration{
		ID:          uuid.NewString(),
		EventID:     req.EventID,
		Email:       req.Email,
		TierName:    req.TierName,
		AmountCents: tier.PriceCents,
		FeeCents:    fee,
		Status:      models.RegistrationPending,
	}
	if tier.PriceCents == 0 {
		now := time.Now()
		reg.Status = models.RegistrationConfirmed
		reg.ConfirmedAt = &now
	}

	if err := s.repo.CreateRegistration(ctx, reg); err != nil {
		// Give the claimed seat back; losing the release only strands
		// one seat, never oversells.
		if releaseErr := s.repo.AdjustSupply(ctx, req.EventID, req.TierName, -1); releaseErr != nil {
			slog.Error("failed to release supply after registration failure",
				"event", req.EventID, "tier", req.TierName, "error", releaseErr)
		}
		return nil, fmt.Errorf("failed to create registration: %w", err)
	}

	return reg, nil
}

// ConfirmPayment settles a pending registration as paid
func (s *service) ConfirmPayment(ctx context.Context, registrationID string) error {
	reg, err := s.getRegistration(ctx, registrationID)
	if err != nil {
		return err
	}
	if reg.Status != models.RegistrationPending {
		return ErrNotPending
	}

	now := time.Now()
	return s.repo.UpdateRegistrationStatus(ctx, registrationID, models.RegistrationConfirmed, &now)
}

// FailPayment marks a pending registration as failed and releases its seat
func (s *service) FailPayment(ctx context.Context, registrationID string) error {
	reg, err := s.getRegistration(ctx, registrationID)
	if err != nil {
		return err
	}
	if reg.Status != models.RegistrationPending {
		return ErrNotPending
	}

	if err := s.repo.UpdateRegistrationStatus(ctx, registrationID, models.RegistrationFailed, nil); err != nil {
		return fmt.Errorf("failed to update registration: %w", err)
	}
	if err := s.repo.AdjustSupply(ctx, reg.EventID, reg.TierName, -1); err != nil {
		slog.Error("failed to release supply for failed payment",
			"registration", registrationID, "error", err)
	}
	return nil
}

// Refund refunds a confirmed registration on a refundable tier and releases its seat
func (s *service) Refund(ctx context.Context, registrationID string) error {
	reg, err := s.getRegistration(ctx, registrationID)
	if err != nil {
		return err
	}
	if reg.Status != models.RegistrationConfirmed {
		return ErrNotConfirmed
	}

	event, err := s.repo.GetEventByID(ctx, reg.EventID)
	if err != nil {
		return err
	}
	tier := findTier(event, reg.TierName)
	if tier == nil {
		return models.ErrTierNotFound
	}
	if reg.AmountCents > 0 && !tier.Refundable {
		return ErrNotRefundable
	}

	if err := s.repo.UpdateRegistrationStatus(ctx, registrationID, models.RegistrationRefunded, nil); err != nil {
		return fmt.Errorf("failed to update registration: %w", err)
	}
	if err := s.repo.AdjustSupply(ctx, reg.EventID, reg.TierName, -1); err != nil {
		slog.Error("failed to release supply for refund",
			"registration", registrationID, "error", err)
	}
	return nil
}

// PlatformFee computes the platform share of an amount in basis points.
// A zero feeBps on the event falls back to the platform default.
func PlatformFee(amountCents int64, feeBps int) int64 {
	if amountCents == 0 {
		return 0
	}
	if feeBps == 0 {
		feeBps = models.DefaultPlatformFeeBps
	}
	return amountCents * int64(feeBps) / 10000
}

func (s *service) getRegistration(ctx context.Context, id string) (*models.Registration, error) {
	if id == "" {
		return nil, ErrInvalidRegistrationID
	}
	reg, err := s.repo.GetRegistrationByID(ctx, id)
	if err != nil {
		return nil, ErrRegistrationNotFound
	}
	return reg, nil
}

func findTier(event *models.Event, name string) *models.Tier {
	for _, tier := range event.Tiers {
		if tier.Name == name {
			return tier
		}
	}
	return nil
}
