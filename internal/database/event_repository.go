package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/agora-events/agora/internal/models"
)

// EventRepo handles all event-related database operations.
type EventRepo struct {
	db *sql.DB
}

// CreateEvent inserts an event together with its tiers in one transaction.
func (r *EventRepo) CreateEvent(ctx context.Context, event *models.Event) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for event creation: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO events (id, title, description, organizer, venue, starts_at,
			category_id, max_supply, current_supply, platform_fee_bps, cancelled)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, 0, ?, 0)`,
		event.ID, event.Title, event.Description, event.Organizer, event.Venue,
		event.StartsAt, event.CategoryID, event.MaxSupply, event.PlatformFeeBps,
	)
	if err != nil {
		return fmt.Errorf("failed to insert event '%s': %w", event.Title, err)
	}

	for _, tier := range event.Tiers {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO tiers (event_id, name, price_cents, tier_limit, sold, refundable)
			 VALUES (?, ?, ?, ?, 0, ?)`,
			event.ID, tier.Name, tier.PriceCents, tier.TierLimit, tier.Refundable,
		)
		if err != nil {
			return fmt.Errorf("failed to insert tier '%s' for event %s: %w", tier.Name, event.ID, err)
		}
	}

	return tx.Commit()
}

// GetEventSummaries retrieves list-view rows, newest start date last.
// categoryID 0 means all categories.
func (r *EventRepo) GetEventSummaries(ctx context.Context, categoryID int) ([]*models.EventSummary, error) {
	query := `
		SELECT e.id, e.title, e.venue, e.starts_at, e.category_id,
			c.name, c.color, e.max_supply, e.current_supply, e.cancelled,
			COALESCE(MIN(t.price_cents), 0),
			COALESCE(MAX(t.price_cents), 0) = 0
		FROM events e
		INNER JOIN categories c ON c.id = e.category_id
		LEFT JOIN tiers t ON t.event_id = e.id
	`
	args := []any{}
	if categoryID > 0 {
		query += ` WHERE e.category_id = ?`
		args = append(args, categoryID)
	}
	query += ` GROUP BY e.id ORDER BY e.starts_at`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []*models.EventSummary
	for rows.Next() {
		s := &models.EventSummary{}
		if err := rows.Scan(&s.ID, &s.Title, &s.Venue, &s.StartsAt, &s.CategoryID,
			&s.CategoryName, &s.CategoryColor, &s.MaxSupply, &s.CurrentSupply,
			&s.Cancelled, &s.FromCents, &s.Free); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}

// GetEventByID retrieves a single event with its tiers
func (r *EventRepo) GetEventByID(ctx context.Context, id string) (*models.Event, error) {
	event := &models.Event{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, title, description, organizer, venue, starts_at, category_id,
			max_supply, current_supply, platform_fee_bps, cancelled, created_at
		FROM events WHERE id = ?
	`, id).Scan(&event.ID, &event.Title, &event.Description, &event.Organizer,
		&event.Venue, &event.StartsAt, &event.CategoryID, &event.MaxSupply,
		&event.CurrentSupply, &event.PlatformFeeBps, &event.Cancelled, &event.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, models.ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}

	tiers, err := r.getTiers(ctx, id)
	if err != nil {
		return nil, err
	}
	event.Tiers = tiers

	return event, nil
}

// getTiers loads the tiers for an event ordered by price
func (r *EventRepo) getTiers(ctx context.Context, eventID string) ([]*models.Tier, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, event_id, name, price_cents, tier_limit, sold, refundable
		FROM tiers WHERE event_id = ? ORDER BY price_cents, name
	`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tiers []*models.Tier
	for rows.Next() {
		tier := &models.Tier{}
		if err := rows.Scan(&tier.ID, &tier.EventID, &tier.Name, &tier.PriceCents,
			&tier.TierLimit, &tier.Sold, &tier.Refundable); err != nil {
			return nil, err
		}
		tiers = append(tiers, tier)
	}

	return tiers, rows.Err()
}

// CancelEvent marks an event as cancelled. Cancelling is idempotent.
func (r *EventRepo) CancelEvent(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE events SET cancelled = 1 WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrEventNotFound
	}
	return nil
}

// AdjustSupply atomically moves the event and tier counters by delta
// (+1 on registration, -1 on refund). The WHERE guards keep counters
// from crossing their limits under concurrent writers.
func (r *EventRepo) AdjustSupply(ctx context.Context, eventID, tierName string, delta int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	result, err := tx.ExecContext(ctx, `
		UPDATE tiers SET sold = sold + ?
		WHERE event_id = ? AND name = ?
			AND sold + ? >= 0
			AND (tier_limit = 0 OR sold + ? <= tier_limit)
	`, delta, eventID, tierName, delta, delta)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrTierSoldOut
	}

	result, err = tx.ExecContext(ctx, `
		UPDATE events SET current_supply = current_supply + ?
		WHERE id = ?
			AND current_supply + ? >= 0
			AND (max_supply = 0 OR current_supply + ? <= max_supply)
	`, delta, eventID, delta, delta)
	if err != nil {
		return err
	}
	affected, err = result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrEventSoldOut
	}

	return tx.Commit()
}

// DeleteEvent removes an event (cascade removes tiers and registrations)
func (r *EventRepo) DeleteEvent(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM events WHERE id = ?", id)
	return err
}
