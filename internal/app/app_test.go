package app

import (
	"testing"

	"github.com/agora-events/agora/internal/database"
	"github.com/agora-events/agora/internal/testutil"
)

func TestNew(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := database.NewRepository(db)

	app := New(repo, "test-salt")

	if app == nil {
		t.Fatal("Expected app to be created, got nil")
	}
	if app.EventService == nil {
		t.Error("Expected EventService to be initialized")
	}
	if app.RegistrationService == nil {
		t.Error("Expected RegistrationService to be initialized")
	}
	if app.AuthService == nil {
		t.Error("Expected AuthService to be initialized")
	}
	if app.Repo() == nil {
		t.Error("Expected Repo() to return the datastore")
	}
}

func TestClose(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := database.NewRepository(db)

	app := New(repo, "test-salt")
	if err := app.Close(); err != nil {
		t.Errorf("Expected Close to succeed, got error: %v", err)
	}
}
