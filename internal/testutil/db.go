package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/agora-events/agora/internal/database"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SetupTestDB creates an in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	// Enable foreign key constraints
	_, err = db.ExecContext(context.Background(), "PRAGMA foreign_keys = ON")
	if err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if _, err := db.ExecContext(context.Background(), database.Schema); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return db
}

// CreateTestCategory creates a category and returns its ID
func CreateTestCategory(t *testing.T, db *sql.DB, name string) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO categories (name, glyph, color) VALUES (?, ?, ?)",
		name, "music", "#D1FAE5")
	if err != nil {
		t.Fatalf("Failed to create test category: %v", err)
	}
	categoryID, _ := result.LastInsertId()
	return int(categoryID)
}

// CreateTestEvent creates an event with a single free unlimited tier and returns its ID
func CreateTestEvent(t *testing.T, db *sql.DB, categoryID int, title string) string {
	t.Helper()
	eventID := uuid.NewString()
	_, err := db.ExecContext(context.Background(), `
		INSERT INTO events (id, title, description, organizer, venue, starts_at, category_id)
		VALUES (?, ?, '', 'org@example.com', 'Test Hall', ?, ?)`,
		eventID, title, time.Now().Add(24*time.Hour), categoryID)
	if err != nil {
		t.Fatalf("Failed to create test event: %v", err)
	}

	CreateTestTier(t, db, eventID, "General", 0, 0)
	return eventID
}

// CreateTestTier adds a tier to an event and returns its ID
func CreateTestTier(t *testing.T, db *sql.DB, eventID, name string, priceCents int64, limit int) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(), `
		INSERT INTO tiers (event_id, name, price_cents, tier_limit, refundable)
		VALUES (?, ?, ?, ?, 1)`,
		eventID, name, priceCents, limit)
	if err != nil {
		t.Fatalf("Failed to create test tier: %v", err)
	}
	tierID, _ := result.LastInsertId()
	return int(tierID)
}

// CreateTestRegistration inserts a confirmed registration and returns its ID
func CreateTestRegistration(t *testing.T, db *sql.DB, eventID, email string) string {
	t.Helper()
	regID := uuid.NewString()
	now := time.Now()
	_, err := db.ExecContext(context.Background(), `
		INSERT INTO registrations (id, event_id, email, tier_name, amount_cents, fee_cents, status, confirmed_at)
		VALUES (?, ?, ?, 'General', 0, 0, 'confirmed', ?)`,
		regID, eventID, email, now)
	if err != nil {
		t.Fatalf("Failed to create test registration: %v", err)
	}
	return regID
}
