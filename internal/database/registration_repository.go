package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/agora-events/agora/internal/models"
)

// RegistrationRepo handles all registration-related database operations.
type RegistrationRepo struct {
	db *sql.DB
}

// CreateRegistration inserts a registration row.
// The UNIQUE(event_id, email) constraint rejects duplicates at the database level.
func (r *RegistrationRepo) CreateRegistration(ctx context.Context, reg *models.Registration) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO registrations (id, event_id, email, tier_name, amount_cents, fee_cents, status, confirmed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		reg.ID, reg.EventID, reg.Email, reg.TierName, reg.AmountCents, reg.FeeCents,
		string(reg.Status), reg.ConfirmedAt,
	)
	return err
}

// GetRegistrationByID retrieves a single registration
func (r *RegistrationRepo) GetRegistrationByID(ctx context.Context, id string) (*models.Registration, error) {
	reg := &models.Registration{}
	var status string
	err := r.db.QueryRowContext(ctx, `
		SELECT id, event_id, email, tier_name, amount_cents, fee_cents, status, created_at, confirmed_at
		FROM registrations WHERE id = ?
	`, id).Scan(&reg.ID, &reg.EventID, &reg.Email, &reg.TierName, &reg.AmountCents,
		&reg.FeeCents, &status, &reg.CreatedAt, &reg.ConfirmedAt)
	if err != nil {
		return nil, err
	}
	reg.Status = models.RegistrationStatus(status)
	return reg, nil
}

// GetRegistrationForEvent retrieves the registration one email holds for an event, if any
func (r *RegistrationRepo) GetRegistrationForEvent(ctx context.Context, eventID, email string) (*models.Registration, error) {
	reg := &models.Registration{}
	var status string
	err := r.db.QueryRowContext(ctx, `
		SELECT id, event_id, email, tier_name, amount_cents, fee_cents, status, created_at, confirmed_at
		FROM registrations WHERE event_id = ? AND email = ?
	`, eventID, email).Scan(&reg.ID, &reg.EventID, &reg.Email, &reg.TierName,
		&reg.AmountCents, &reg.FeeCents, &status, &reg.CreatedAt, &reg.ConfirmedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	reg.Status = models.RegistrationStatus(status)
	return reg, nil
}

// GetRegistrationsByEmail retrieves all registrations for an attendee,
// joined with the event display fields, soonest event first
func (r *RegistrationRepo) GetRegistrationsByEmail(ctx context.Context, email string) ([]*models.RegistrationDetail, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT r.id, r.event_id, r.email, r.tier_name, r.amount_cents, r.fee_cents,
			r.status, r.created_at, r.confirmed_at, e.title, e.venue, e.starts_at
		FROM registrations r
		INNER JOIN events e ON e.id = r.event_id
		WHERE r.email = ?
		ORDER BY e.starts_at
	`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []*models.RegistrationDetail
	for rows.Next() {
		d := &models.RegistrationDetail{}
		var status string
		if err := rows.Scan(&d.ID, &d.EventID, &d.Email, &d.TierName, &d.AmountCents,
			&d.FeeCents, &status, &d.CreatedAt, &d.ConfirmedAt,
			&d.EventTitle, &d.Venue, &d.StartsAt); err != nil {
			return nil, err
		}
		d.Status = models.RegistrationStatus(status)
		details = append(details, d)
	}

	return details, rows.Err()
}

// UpdateRegistrationStatus moves a registration to a new status.
// confirmedAt is only written for transitions that settle the registration.
func (r *RegistrationRepo) UpdateRegistrationStatus(ctx context.Context, id string, status models.RegistrationStatus, confirmedAt *time.Time) error {
	if confirmedAt != nil {
		_, err := r.db.ExecContext(ctx,
			`UPDATE registrations SET status = ?, confirmed_at = ? WHERE id = ?`,
			string(status), confirmedAt, id,
		)
		return err
	}
	_, err := r.db.ExecContext(ctx,
		`UPDATE registrations SET status = ? WHERE id = ?`,
		string(status), id,
	)
	return err
}

// DeleteRegistration removes a registration row (used to clear failed attempts)
func (r *RegistrationRepo) DeleteRegistration(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM registrations WHERE id = ?`, id)
	return err
}

// CountRegistrationsByStatus returns how many registrations an event holds per status
func (r *RegistrationRepo) CountRegistrationsByStatus(ctx context.Context, eventID string) (map[models.RegistrationStatus]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT status, COUNT(*) FROM registrations WHERE event_id = ? GROUP BY status`,
		eventID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[models.RegistrationStatus]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[models.RegistrationStatus(status)] = n
	}

	return counts, rows.Err()
}
