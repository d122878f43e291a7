package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"getaway/internal/shared/constants"
	"getaway/pkg/cache"
)

// SnapshotStore keeps each session's latest confirmation so the confirmation
// view reads its own snapshot rather than the live cart.
type SnapshotStore interface {
	Save(ctx context.Context, sessionID string, confirmation *Confirmation) error
	Get(ctx context.Context, sessionID string) (*Confirmation, error)
}

type snapshotStore struct {
	cache      cache.Service
	sessionTTL time.Duration
}

// NewSnapshotStore creates a Redis-backed confirmation snapshot store
func NewSnapshotStore(cacheService cache.Service, sessionTTL time.Duration) SnapshotStore {
	return &snapshotStore{
		cache:      cacheService,
		sessionTTL: sessionTTL,
	}
}

func (s *snapshotStore) Save(ctx context.Context, sessionID string, confirmation *Confirmation) error {
	key := constants.SessionKey(sessionID, constants.SESSION_KEY_CONFIRMATION)
	if err := s.cache.Set(ctx, key, confirmation, s.sessionTTL); err != nil {
		return fmt.Errorf("failed to persist confirmation snapshot: %w", err)
	}
	return nil
}

func (s *snapshotStore) Get(ctx context.Context, sessionID string) (*Confirmation, error) {
	var confirmation Confirmation
	key := constants.SessionKey(sessionID, constants.SESSION_KEY_CONFIRMATION)
	err := s.cache.Get(ctx, key, &confirmation)
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, ErrNoConfirmation
		}
		return nil, fmt.Errorf("failed to load confirmation snapshot: %w", err)
	}
	return &confirmation, nil
}
