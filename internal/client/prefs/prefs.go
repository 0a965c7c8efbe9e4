// Package prefs is the durable client-local key-value store. It currently
// holds the theme preference, which must survive restarts independently of
// any session.
package prefs

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"moodflow/internal/dbx"
)

const (
	// ThemeKey names the stored UI theme ("light" or "dark").
	ThemeKey = "theme"

	ThemeLight = "light"
	ThemeDark  = "dark"

	schema = `
CREATE TABLE IF NOT EXISTS preferences (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);`
)

type Store struct {
	db *sql.DB
}

// Open initializes the preference database at path, creating it if needed.
// Schema creation and the default-theme seed run in one transaction so a
// half-initialized file never survives a crash during first start.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("prefs db open error: %w", err)
	}

	err = dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, schema); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO preferences (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO NOTHING
		`, ThemeKey, ThemeLight)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("prefs schema error: %w", err)
	}

	return &Store{db: db}, nil
}

// Get returns the stored value for key, or "" when unset.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get preference[%s]: %w", key, err)
	}
	return value, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set preference[%s]: %w", key, err)
	}
	return nil
}

// Theme returns the stored theme, defaulting to light when unset or unknown.
func (s *Store) Theme(ctx context.Context) string {
	v, err := s.Get(ctx, ThemeKey)
	if err != nil || (v != ThemeLight && v != ThemeDark) {
		return ThemeLight
	}
	return v
}

// SetTheme validates and persists the theme preference.
func (s *Store) SetTheme(ctx context.Context, theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return fmt.Errorf("unknown theme %q", theme)
	}
	return s.Set(ctx, ThemeKey, theme)
}

func (s *Store) Close() error {
	return s.db.Close()
}
