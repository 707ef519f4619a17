package database

import (
	"context"
	"database/sql"

	"github.com/agora-events/agora/internal/models"
)

// CategoryRepo handles all category-related database operations.
type CategoryRepo struct {
	db *sql.DB
}

// GetAllCategories retrieves every category ordered by name
func (r *CategoryRepo) GetAllCategories(ctx context.Context) ([]*models.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, glyph, color FROM categories ORDER BY name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		cat := &models.Category{}
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Glyph, &cat.Color); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}

	return categories, rows.Err()
}

// GetCategoryByID retrieves a single category
func (r *CategoryRepo) GetCategoryByID(ctx context.Context, id int) (*models.Category, error) {
	cat := &models.Category{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, glyph, color FROM categories WHERE id = ?`, id,
	).Scan(&cat.ID, &cat.Name, &cat.Glyph, &cat.Color)
	if err != nil {
		return nil, err
	}
	return cat, nil
}

// CreateCategory inserts a category and returns it with its assigned ID
func (r *CategoryRepo) CreateCategory(ctx context.Context, name, glyph, color string) (*models.Category, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO categories (name, glyph, color) VALUES (?, ?, ?)`,
		name, glyph, color,
	)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &models.Category{
		ID:    int(id),
		Name:  name,
		Glyph: glyph,
		Color: color,
	}, nil
}
