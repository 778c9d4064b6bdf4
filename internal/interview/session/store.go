package session

import (
	"context"
	"errors"
	"fmt"

	"hirebridge/internal/config"
	"hirebridge/pkg/models"
)

// ErrNotFound is returned when a session has no cached entry or its
// entry has expired
var ErrNotFound = errors.New("session entry not found")

// Store caches per-session interview state keyed by opaque session ID:
// the generated questions (whose reference answers must stay server-side)
// and the final verification result. Entries expire after the configured
// TTL; the cache is deliberately not durable.
type Store interface {
	// PutQuestions caches the full question set for a session
	PutQuestions(ctx context.Context, sessionID string, questions []models.Question) error

	// GetQuestions retrieves the cached question set, or ErrNotFound
	GetQuestions(ctx context.Context, sessionID string) ([]models.Question, error)

	// PutVerification caches the verification result for a session
	PutVerification(ctx context.Context, sessionID string, result *models.VerificationResult) error

	// GetVerification retrieves a cached verification result, or ErrNotFound
	GetVerification(ctx context.Context, sessionID string) (*models.VerificationResult, error)

	// Close releases any resources held by the store
	Close() error
}

// NewStore creates a session store for the configured backend
func NewStore(cfg *config.Config) (Store, error) {
	switch cfg.Cache.Backend {
	case "", "memory":
		return NewMemoryStore(cfg.Cache.TTL), nil
	case "redis":
		return NewRedisStore(cfg)
	default:
		return nil, fmt.Errorf("unsupported cache backend: %s", cfg.Cache.Backend)
	}
}
