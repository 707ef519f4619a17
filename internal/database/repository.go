package database

import (
	"database/sql"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*EventRepo
	*RegistrationRepo
	*CategoryRepo
	*SessionRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		EventRepo:        &EventRepo{db: db},
		RegistrationRepo: &RegistrationRepo{db: db},
		CategoryRepo:     &CategoryRepo{db: db},
		SessionRepo:      &SessionRepo{db: db},
	}
}
