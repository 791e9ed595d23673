package favorite

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// ErrNotFound is returned when no favorite matches a (user, recipe) pair.
var ErrNotFound = errors.New("favorite not found")

// Store defines the interface for favorite persistence.
type Store interface {
	Add(ctx context.Context, entry *Entry) (*Entry, error)
	ListByUser(ctx context.Context, userID string) ([]*Entry, error)
	Remove(ctx context.Context, userID, recipeID string) error
}

// PostgresStore implements Store for PostgreSQL.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore connects to the database and ensures the favorites table
// exists. The unique (user_id, recipe_id) index makes saves idempotent at the
// storage level.
func NewPostgresStore(dataSourceName string) (*PostgresStore, error) {
	db, err := sqlx.Connect("postgres", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS favorites (
		id SERIAL PRIMARY KEY,
		user_id TEXT NOT NULL,
		recipe_id TEXT NOT NULL,
		title TEXT NOT NULL,
		image_url TEXT NOT NULL DEFAULT '',
		cook_time TEXT NOT NULL DEFAULT '',
		servings INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (user_id, recipe_id)
	);
	`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create favorites table: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

// Add saves a favorite. Saving a recipe the user already favorited keeps the
// existing row, refreshed with the submitted recipe data. The upsert is a
// single statement, so a concurrent double-save cannot create duplicates and
// a concurrent remove cannot race the returned row away.
func (s *PostgresStore) Add(ctx context.Context, entry *Entry) (*Entry, error) {
	var saved Entry
	err := s.db.GetContext(ctx, &saved,
		`INSERT INTO favorites (user_id, recipe_id, title, image_url, cook_time, servings)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (user_id, recipe_id) DO UPDATE
		 SET title = EXCLUDED.title, image_url = EXCLUDED.image_url, cook_time = EXCLUDED.cook_time, servings = EXCLUDED.servings
		 RETURNING id, user_id, recipe_id, title, image_url, cook_time, servings, created_at`,
		entry.UserID,
		entry.RecipeID,
		entry.Title,
		entry.Image,
		entry.CookTime,
		entry.Servings,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save favorite: %w", err)
	}

	return &saved, nil
}

// ListByUser returns all favorites for a user in insertion order.
func (s *PostgresStore) ListByUser(ctx context.Context, userID string) ([]*Entry, error) {
	var entries []*Entry
	err := s.db.SelectContext(ctx, &entries,
		"SELECT id, user_id, recipe_id, title, image_url, cook_time, servings, created_at FROM favorites WHERE user_id = $1 ORDER BY id",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return entries, nil
}

// Remove deletes the favorite for a (user, recipe) pair. Any duplicate rows
// that predate the unique index are deleted together. Returns ErrNotFound
// when nothing matched.
func (s *PostgresStore) Remove(ctx context.Context, userID, recipeID string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM favorites WHERE user_id = $1 AND recipe_id = $2",
		userID,
		recipeID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
