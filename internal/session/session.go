// Package session provides the cookie-referenced server-side session state
// backing the admin panel. The store is pluggable: Redis in production,
// in-memory for single-process deployments and tests.
package session

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("session not found")

// User is the identity snapshot taken at login.
type User struct {
	Email string `json:"email"`
}

// Session is the per-browser state referenced by the client cookie.
// IsAdmin is the sole authorization flag for the admin surface.
type Session struct {
	ID        string    `json:"-"`
	IsAdmin   bool      `json:"isAdmin"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store is the persistence capability for sessions. Implementations decide
// how expiry is enforced; Get never returns an expired session.
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Set(ctx context.Context, id string, s *Session, ttl time.Duration) error
	Destroy(ctx context.Context, id string) error
}
