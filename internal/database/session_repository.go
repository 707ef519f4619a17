package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/agora-events/agora/internal/models"
)

// SessionRepo handles sign-in codes and session persistence.
type SessionRepo struct {
	db *sql.DB
}

// SaveLoginCode upserts the pending code digest for an email.
// Only one outstanding code per email; requesting again replaces it.
func (r *SessionRepo) SaveLoginCode(ctx context.Context, email, codeHash string, expiresAt time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO login_codes (email, code_hash, expires_at) VALUES (?, ?, ?)
		ON CONFLICT(email) DO UPDATE SET code_hash = excluded.code_hash,
			created_at = CURRENT_TIMESTAMP, expires_at = excluded.expires_at
	`, email, codeHash, expiresAt)
	return err
}

// GetLoginCode retrieves the pending code digest and expiry for an email.
// Returns sql.ErrNoRows when no code is outstanding.
func (r *SessionRepo) GetLoginCode(ctx context.Context, email string) (string, time.Time, error) {
	var codeHash string
	var expiresAt time.Time
	err := r.db.QueryRowContext(ctx,
		`SELECT code_hash, expires_at FROM login_codes WHERE email = ?`, email,
	).Scan(&codeHash, &expiresAt)
	return codeHash, expiresAt, err
}

// DeleteLoginCode consumes the code after a successful or exhausted verification
func (r *SessionRepo) DeleteLoginCode(ctx context.Context, email string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM login_codes WHERE email = ?`, email)
	return err
}

// CreateSession persists a new session
func (r *SessionRepo) CreateSession(ctx context.Context, session *models.Session) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (token, email, created_at, expires_at) VALUES (?, ?, ?, ?)`,
		session.Token, session.Email, session.CreatedAt, session.ExpiresAt,
	)
	return err
}

// GetSession retrieves a session by token. Returns nil when the token is unknown.
func (r *SessionRepo) GetSession(ctx context.Context, token string) (*models.Session, error) {
	session := &models.Session{}
	err := r.db.QueryRowContext(ctx,
		`SELECT token, email, created_at, expires_at FROM sessions WHERE token = ?`, token,
	).Scan(&session.Token, &session.Email, &session.CreatedAt, &session.ExpiresAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

// DeleteSession revokes a session
func (r *SessionRepo) DeleteSession(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = ?`, token)
	return err
}

// DeleteExpiredSessions prunes sessions past their expiry
func (r *SessionRepo) DeleteExpiredSessions(ctx context.Context, now time.Time) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at < ?`, now)
	return err
}
