package store

import (
	"context"
	"errors"
	"time"
)

// ErrNoSession is returned when no session has been saved.
var ErrNoSession = errors.New("no session")

// Session is the last successfully established login.
type Session struct {
	UserID    string
	Name      string
	Token     string
	IsGuest   bool
	CreatedAt time.Time
}

// SessionStore persists the current session across runs.
type SessionStore interface {
	// SaveSession replaces any stored session with s.
	SaveSession(ctx context.Context, s *Session) error

	// GetSession returns the stored session or ErrNoSession.
	GetSession(ctx context.Context) (*Session, error)

	// DeleteSession forgets the stored session. Deleting nothing is not an error.
	DeleteSession(ctx context.Context) error

	// Close closes the underlying database connection.
	Close() error
}
