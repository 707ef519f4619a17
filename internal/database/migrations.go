package database

import (
	"context"
	"database/sql"
)

// Schema is the complete database schema. It is exported so the test helpers
// can build an identical in-memory database.
const Schema = `
	-- Categories table (event filter pills)
	CREATE TABLE IF NOT EXISTS categories (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		glyph TEXT NOT NULL DEFAULT '',
		color TEXT NOT NULL DEFAULT ''
	);

	-- Events table
	CREATE TABLE IF NOT EXISTS events (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		organizer TEXT NOT NULL,
		venue TEXT NOT NULL DEFAULT '',
		starts_at DATETIME NOT NULL,
		category_id INTEGER NOT NULL,
		max_supply INTEGER NOT NULL DEFAULT 0,
		current_supply INTEGER NOT NULL DEFAULT 0,
		platform_fee_bps INTEGER NOT NULL DEFAULT 0,
		cancelled BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (category_id) REFERENCES categories(id)
	);

	-- Ticket tiers per event
	CREATE TABLE IF NOT EXISTS tiers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		event_id TEXT NOT NULL,
		name TEXT NOT NULL,
		price_cents INTEGER NOT NULL DEFAULT 0,
		tier_limit INTEGER NOT NULL DEFAULT 0,
		sold INTEGER NOT NULL DEFAULT 0,
		refundable BOOLEAN NOT NULL DEFAULT 0,
		FOREIGN KEY (event_id) REFERENCES events(id) ON DELETE CASCADE,
		UNIQUE(event_id, name)
	);

	-- Registrations table
	CREATE TABLE IF NOT EXISTS registrations (
		id TEXT PRIMARY KEY,
		event_id TEXT NOT NULL,
		email TEXT NOT NULL,
		tier_name TEXT NOT NULL,
		amount_cents INTEGER NOT NULL DEFAULT 0,
		fee_cents INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		confirmed_at DATETIME,
		FOREIGN KEY (event_id) REFERENCES events(id) ON DELETE CASCADE,
		UNIQUE(event_id, email)
	);

	-- One-time sign-in codes (stored as HMAC digests, never plaintext)
	CREATE TABLE IF NOT EXISTS login_codes (
		email TEXT PRIMARY KEY,
		code_hash TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		expires_at DATETIME NOT NULL
	);

	-- Sessions table
	CREATE TABLE IF NOT EXISTS sessions (
		token TEXT PRIMARY KEY,
		email TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		expires_at DATETIME NOT NULL
	);

	-- Indexes for the hot list queries
	CREATE INDEX IF NOT EXISTS idx_events_category ON events(category_id, starts_at);
	CREATE INDEX IF NOT EXISTS idx_events_starts_at ON events(starts_at);
	CREATE INDEX IF NOT EXISTS idx_tiers_event ON tiers(event_id);
	CREATE INDEX IF NOT EXISTS idx_registrations_event ON registrations(event_id);
	CREATE INDEX IF NOT EXISTS idx_registrations_email ON registrations(email);
	CREATE INDEX IF NOT EXISTS idx_sessions_email ON sessions(email);
`

// runMigrations creates the database schema and seeds default data if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return err
	}

	return seedDefaultCategories(ctx, db)
}

// seedDefaultCategories inserts the built-in categories if the table is empty
func seedDefaultCategories(ctx context.Context, db *sql.DB) error {
	var count int
	err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM categories").Scan(&count)
	if err != nil {
		return err
	}

	// If categories exist, don't seed
	if count > 0 {
		return nil
	}

	defaultCategories := []struct {
		name  string
		glyph string
		color string
	}{
		{"Music", "music", "#D1FAE5"},
		{"Tech", "tech", "#DBEAFE"},
		{"Sports", "sports", "#FEF3C7"},
		{"Arts", "arts", "#FCE7F3"},
		{"Food", "food", "#FFEDD5"},
	}

	for _, cat := range defaultCategories {
		_, err := db.ExecContext(ctx,
			"INSERT INTO categories (name, glyph, color) VALUES (?, ?, ?)",
			cat.name, cat.glyph, cat.color,
		)
		if err != nil {
			return err
		}
	}

	return nil
}
