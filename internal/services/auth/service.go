// Package auth implements email + one-time-code sign-in and session management.
// Codes are short-lived six digit numbers stored as HMAC digests; verified
// codes are exchanged for an opaque session token.
package auth

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"

	"github.com/agora-events/agora/internal/database"
	"github.com/agora-events/agora/internal/models"
)

// Permissive on purpose: the code sent to the address is the real check
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const (
	codeTTL    = 10 * time.Minute
	sessionTTL = 30 * 24 * time.Hour
)

// Service defines the sign-in and session operations
type Service interface {
	// RequestCode issues a one-time code for the email and returns it for delivery
	RequestCode(ctx context.Context, email string) (string, error)

	// VerifyCode exchanges a valid code for a session
	VerifyCode(ctx context.Context, email, code string) (*models.Session, error)

	// ValidateSession resolves a token to a live session
	ValidateSession(ctx context.Context, token string) (*models.Session, error)

	// Logout revokes a session token
	Logout(ctx context.Context, token string) error
}

// service implements Service interface
type service struct {
	repo database.SessionRepository
	salt string
}

// NewService creates a new auth service. The salt keys the code digests and
// must be stable across restarts.
func NewService(repo database.SessionRepository, salt string) Service {
	return &service{repo: repo, salt: salt}
}

// RequestCode generates a fresh code and stores only its digest.
// Requesting again before expiry replaces the previous code.
func (s *service) RequestCode(ctx context.Context, email string) (string, error) {
	email = NormalizeEmail(email)
	if !emailRegex.MatchString(email) {
		return "", ErrInvalidEmail
	}

	code, err := generateCode()
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}

	expiresAt := time.Now().Add(codeTTL)
	if err := s.repo.SaveLoginCode(ctx, email, s.hashCode(email, code), expiresAt); err != nil {
		return "", fmt.Errorf("failed to store code: %w", err)
	}

	return code, nil
}

// VerifyCode checks the code against the stored digest and issues a session.
// The code is single use: it is consumed on success and on expiry.
func (s *service) VerifyCode(ctx context.Context, email, code string) (*models.Session, error) {
	email = NormalizeEmail(email)
	if !emailRegex.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	storedHash, expiresAt, err := s.repo.GetLoginCode(ctx, email)
	if err == sql.ErrNoRows {
		return nil, ErrCodeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load code: %w", err)
	}

	if time.Now().After(expiresAt) {
		_ = s.repo.DeleteLoginCode(ctx, email)
		return nil, ErrCodeExpired
	}

	if !hmac.Equal([]byte(storedHash), []byte(s.hashCode(email, code))) {
		return nil, ErrCodeMismatch
	}

	if err := s.repo.DeleteLoginCode(ctx, email); err != nil {
		return nil, fmt.Errorf("failed to consume code: %w", err)
	}

	token, err := generateToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	now := time.Now()
	session := &models.Session{
		Token:     token,
		Email:     email,
		CreatedAt: now,
		ExpiresAt: now.Add(sessionTTL),
	}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// ValidateSession resolves a token, rejecting unknown and expired sessions.
// Expired sessions are deleted on sight.
func (s *service) ValidateSession(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, ErrSessionInvalid
	}

	session, err := s.repo.GetSession(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionInvalid
	}
	if session.Expired(time.Now()) {
		_ = s.repo.DeleteSession(ctx, token)
		return nil, ErrSessionExpired
	}

	return session, nil
}

// Logout revokes a session token. Revoking an unknown token is a no-op.
func (s *service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.repo.DeleteSession(ctx, token)
}

// NormalizeEmail lowercases and trims an address so lookups are stable
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// hashCode produces the HMAC digest stored in place of the plaintext code
func (s *service) hashCode(email, code string) string {
	h := hmac.New(sha256.New, []byte(s.salt))
	h.Write([]byte(email + "|" + code))
	return hex.EncodeToString(h.Sum(nil))
}

// generateCode returns a random zero-padded code of OTPDigits digits
func generateCode() (string, error) {
	limit := int64(1)
	for i := 0; i < models.OTPDigits; i++ {
		limit *= 10
	}
	n, err := rand.Int(rand.Reader, big.NewInt(limit))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", models.OTPDigits, n.Int64()), nil
}

// generateToken returns a URL-safe random session token
func generateToken() (string, error) {
	b := make([]byte, models.SessionTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}
