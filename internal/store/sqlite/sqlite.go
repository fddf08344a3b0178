package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/vovakirdan/wirechat-client/internal/store"
)

// Schema is applied on open. The single-row table holds the current session.
const Schema = `
CREATE TABLE IF NOT EXISTS sessions (
	slot       INTEGER PRIMARY KEY CHECK (slot = 1),
	user_id    TEXT NOT NULL,
	name       TEXT NOT NULL,
	token      TEXT NOT NULL DEFAULT '',
	is_guest   BOOLEAN NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// SQLiteStore implements store.SessionStore for SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New opens (or creates) the database at dbPath and applies the schema.
func New(dbPath string) (*SQLiteStore, error) {
	return NewWithSetup(dbPath, func(db *sql.DB) error {
		_, err := db.Exec(Schema)
		return err
	})
}

// NewWithSetup opens the database and runs a setup function.
// Useful for tests to apply a custom schema.
func NewWithSetup(dbPath string, setup func(*sql.DB) error) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// A single connection keeps :memory: databases alive and avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if setup != nil {
		if err := setup(db); err != nil {
			db.Close()
			return nil, fmt.Errorf("setup: %w", err)
		}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveSession replaces any stored session with sess.
func (s *SQLiteStore) SaveSession(ctx context.Context, sess *store.Session) error {
	query := `
		INSERT INTO sessions (slot, user_id, name, token, is_guest, created_at)
		VALUES (1, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(slot) DO UPDATE SET
			user_id    = excluded.user_id,
			name       = excluded.name,
			token      = excluded.token,
			is_guest   = excluded.is_guest,
			created_at = excluded.created_at
	`
	if _, err := s.db.ExecContext(ctx, query, sess.UserID, sess.Name, sess.Token, sess.IsGuest); err != nil {
		return fmt.Errorf("upsert session: %w", err)
	}
	return nil
}

// GetSession returns the stored session or store.ErrNoSession.
func (s *SQLiteStore) GetSession(ctx context.Context) (*store.Session, error) {
	query := `
		SELECT user_id, name, token, is_guest, created_at
		FROM sessions
		WHERE slot = 1
	`
	var sess store.Session
	err := s.db.QueryRowContext(ctx, query).Scan(
		&sess.UserID,
		&sess.Name,
		&sess.Token,
		&sess.IsGuest,
		&sess.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNoSession
		}
		return nil, fmt.Errorf("query session: %w", err)
	}

	return &sess, nil
}

// DeleteSession forgets the stored session.
func (s *SQLiteStore) DeleteSession(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions`); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
