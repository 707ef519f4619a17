package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/agora-events/agora/internal/database"
	"github.com/agora-events/agora/internal/models"
	"github.com/agora-events/agora/internal/testutil"
)

func setupService(t *testing.T) (Service, *database.Repository) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repo := database.NewRepository(db)
	return NewService(repo, "test-salt"), repo
}

// ============================================================================
// Code Request Tests
// ============================================================================

func TestRequestCode_Format(t *testing.T) {
	svc, _ := setupService(t)

	code, err := svc.RequestCode(context.Background(), "amelia@example.com")
	if err != nil {
		t.Fatalf("RequestCode() error = %v", err)
	}

	if len(code) != models.OTPDigits {
		t.Errorf("len(code) = %d, want %d", len(code), models.OTPDigits)
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			t.Errorf("code %q contains non-digit %q", code, r)
		}
	}
}

func TestRequestCode_InvalidEmail(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	for _, email := range []string{"", "plain", "no@tld", "two @example.com"} {
		if _, err := svc.RequestCode(ctx, email); !errors.Is(err, ErrInvalidEmail) {
			t.Errorf("RequestCode(%q) error = %v, want ErrInvalidEmail", email, err)
		}
	}
}

func TestRequestCode_StoresDigestNotPlaintext(t *testing.T) {
	svc, repo := setupService(t)
	ctx := context.Background()

	code, err := svc.RequestCode(ctx, "amelia@example.com")
	if err != nil {
		t.Fatalf("RequestCode() error = %v", err)
	}

	stored, _, err := repo.GetLoginCode(ctx, "amelia@example.com")
	if err != nil {
		t.Fatalf("GetLoginCode() error = %v", err)
	}
	if stored == code || strings.Contains(stored, code) {
		t.Error("stored value must not contain the plaintext code")
	}
}

// ============================================================================
// Verification Tests
// ============================================================================

func TestVerifyCode_IssuesSession(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	code, err := svc.RequestCode(ctx, "Amelia@Example.com")
	if err != nil {
		t.Fatalf("RequestCode() error = %v", err)
	}

	// Address casing must not matter
	session, err := svc.VerifyCode(ctx, "amelia@example.com", code)
	if err != nil {
		t.Fatalf("VerifyCode() error = %v", err)
	}

	if session.Email != "amelia@example.com" {
		t.Errorf("session email = %q, want normalized address", session.Email)
	}
	if session.Token == "" {
		t.Error("session token should not be empty")
	}
	if !session.ExpiresAt.After(time.Now()) {
		t.Error("session should expire in the future")
	}

	got, err := svc.ValidateSession(ctx, session.Token)
	if err != nil {
		t.Fatalf("ValidateSession() error = %v", err)
	}
	if got.Email != session.Email {
		t.Errorf("validated email = %q, want %q", got.Email, session.Email)
	}
}

func TestVerifyCode_SingleUse(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	code, err := svc.RequestCode(ctx, "amelia@example.com")
	if err != nil {
		t.Fatalf("RequestCode() error = %v", err)
	}
	if _, err := svc.VerifyCode(ctx, "amelia@example.com", code); err != nil {
		t.Fatalf("first VerifyCode() error = %v", err)
	}

	if _, err := svc.VerifyCode(ctx, "amelia@example.com", code); !errors.Is(err, ErrCodeNotFound) {
		t.Errorf("second VerifyCode() error = %v, want ErrCodeNotFound", err)
	}
}

func TestVerifyCode_WrongCode(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	if _, err := svc.RequestCode(ctx, "amelia@example.com"); err != nil {
		t.Fatalf("RequestCode() error = %v", err)
	}

	if _, err := svc.VerifyCode(ctx, "amelia@example.com", "000000x"); !errors.Is(err, ErrCodeMismatch) {
		t.Errorf("VerifyCode(wrong) error = %v, want ErrCodeMismatch", err)
	}
}

func TestVerifyCode_Expired(t *testing.T) {
	svc, repo := setupService(t)
	ctx := context.Background()

	code, err := svc.RequestCode(ctx, "amelia@example.com")
	if err != nil {
		t.Fatalf("RequestCode() error = %v", err)
	}

	// Backdate the stored code past its window
	if _, _, err := repo.GetLoginCode(ctx, "amelia@example.com"); err != nil {
		t.Fatalf("GetLoginCode() error = %v", err)
	}
	hash, _, _ := repo.GetLoginCode(ctx, "amelia@example.com")
	if err := repo.SaveLoginCode(ctx, "amelia@example.com", hash, time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("SaveLoginCode() error = %v", err)
	}

	if _, err := svc.VerifyCode(ctx, "amelia@example.com", code); !errors.Is(err, ErrCodeExpired) {
		t.Errorf("VerifyCode(expired) error = %v, want ErrCodeExpired", err)
	}

	// The expired code is consumed
	if _, err := svc.VerifyCode(ctx, "amelia@example.com", code); !errors.Is(err, ErrCodeNotFound) {
		t.Errorf("VerifyCode after expiry error = %v, want ErrCodeNotFound", err)
	}
}

func TestRequestCode_ReplacesOutstandingCode(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	first, err := svc.RequestCode(ctx, "amelia@example.com")
	if err != nil {
		t.Fatalf("RequestCode() #1 error = %v", err)
	}
	second, err := svc.RequestCode(ctx, "amelia@example.com")
	if err != nil {
		t.Fatalf("RequestCode() #2 error = %v", err)
	}

	if first != second {
		// The first code must no longer verify
		if _, err := svc.VerifyCode(ctx, "amelia@example.com", first); !errors.Is(err, ErrCodeMismatch) {
			t.Errorf("VerifyCode(stale) error = %v, want ErrCodeMismatch", err)
		}
	}
	if _, err := svc.VerifyCode(ctx, "amelia@example.com", second); err != nil {
		t.Errorf("VerifyCode(current) error = %v", err)
	}
}

// ============================================================================
// Session Tests
// ============================================================================

func TestValidateSession_UnknownToken(t *testing.T) {
	svc, _ := setupService(t)

	if _, err := svc.ValidateSession(context.Background(), "nope"); !errors.Is(err, ErrSessionInvalid) {
		t.Errorf("ValidateSession(unknown) error = %v, want ErrSessionInvalid", err)
	}
	if _, err := svc.ValidateSession(context.Background(), ""); !errors.Is(err, ErrSessionInvalid) {
		t.Errorf("ValidateSession(\"\") error = %v, want ErrSessionInvalid", err)
	}
}

func TestValidateSession_ExpiredIsRevoked(t *testing.T) {
	svc, repo := setupService(t)
	ctx := context.Background()

	now := time.Now()
	stale := &models.Session{Token: "tok-old", Email: "a@example.com", CreatedAt: now.Add(-31 * 24 * time.Hour), ExpiresAt: now.Add(-time.Hour)}
	if err := repo.CreateSession(ctx, stale); err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}

	if _, err := svc.ValidateSession(ctx, "tok-old"); !errors.Is(err, ErrSessionExpired) {
		t.Errorf("ValidateSession(expired) error = %v, want ErrSessionExpired", err)
	}

	// Expired session is deleted on sight
	if got, _ := repo.GetSession(ctx, "tok-old"); got != nil {
		t.Error("expired session should be deleted after validation")
	}
}

func TestLogout(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	code, err := svc.RequestCode(ctx, "amelia@example.com")
	if err != nil {
		t.Fatalf("RequestCode() error = %v", err)
	}
	session, err := svc.VerifyCode(ctx, "amelia@example.com", code)
	if err != nil {
		t.Fatalf("VerifyCode() error = %v", err)
	}

	if err := svc.Logout(ctx, session.Token); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if _, err := svc.ValidateSession(ctx, session.Token); !errors.Is(err, ErrSessionInvalid) {
		t.Errorf("ValidateSession after logout error = %v, want ErrSessionInvalid", err)
	}

	// Logging out twice is a no-op
	if err := svc.Logout(ctx, session.Token); err != nil {
		t.Errorf("second Logout() error = %v", err)
	}
}

// ============================================================================
// Helper Tests
// ============================================================================

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Amelia@Example.COM", "amelia@example.com"},
		{"  spaced@example.com ", "spaced@example.com"},
		{"already@example.com", "already@example.com"},
	}

	for _, tt := range tests {
		if got := NormalizeEmail(tt.in); got != tt.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
