package interfaces

import (
	"context"

	"github.com/mattcarrick/advisor/internal/models"
)

// StorageManager coordinates all storage backends.
type StorageManager interface {
	InternalStore() InternalStore
	PortfolioStore() PortfolioStore

	// Lifecycle
	Close() error
}

// InternalStore manages user accounts and system-level KV.
type InternalStore interface {
	// User accounts
	GetUser(ctx context.Context, userID string) (*models.InternalUser, error)
	SaveUser(ctx context.Context, user *models.InternalUser) error
	DeleteUser(ctx context.Context, userID string) error
	ListUsers(ctx context.Context) ([]string, error)

	// System key-value (runtime settings, API key overrides)
	GetSystemKV(ctx context.Context, key string) (string, error)
	SetSystemKV(ctx context.Context, key, value string) error

	Close() error
}

// PortfolioStore persists one PortfolioRecord per owner. Upsert is a full
// replace keyed by owner — no partial-field merge, no optimistic concurrency
// control; last writer wins.
type PortfolioStore interface {
	Get(ctx context.Context, ownerID string) (*models.PortfolioRecord, error)
	Upsert(ctx context.Context, record *models.PortfolioRecord) error
	Delete(ctx context.Context, ownerID string) error
}
