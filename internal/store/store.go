// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"
	"time"

	"github.com/akorchagin/procsim/internal/domain"
)

// Repository defines the interface for persisting user and session data.
type Repository interface {
	// GetUser retrieves a user by their user ID. Returns (nil, nil) if absent.
	GetUser(ctx context.Context, userID string) (*domain.User, error)

	// UpsertUser creates or updates a user record.
	UpsertUser(ctx context.Context, user *domain.User) error

	// UpdateLastSeen updates the last_seen_at timestamp for a user.
	UpdateLastSeen(ctx context.Context, userID string, lastSeen time.Time) error

	// GetSession retrieves negotiation session state for a user.
	// Returns (nil, nil) if the user has no stored session.
	GetSession(ctx context.Context, userID string) (*domain.Session, error)

	// SaveSession creates or updates negotiation session state.
	// Last write wins when several tabs share an identity.
	SaveSession(ctx context.Context, session *domain.Session) error

	// CleanupExpiredSessions removes sessions idle longer than ttl.
	CleanupExpiredSessions(ctx context.Context, ttl time.Duration) (int64, error)

	// Ping verifies database connectivity.
	Ping(ctx context.Context) error

	// Close closes the database connection.
	Close() error
}
