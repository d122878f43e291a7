package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"getaway/internal/shared/constants"
	"getaway/pkg/cache"
)

// ErrDraftNotFound is returned when a session has no persisted draft yet.
var ErrDraftNotFound = errors.New("order draft not found")

// Repository persists the order draft as one unit per session. The draft is
// always written whole; there are no per-field keys to collide.
type Repository interface {
	Get(ctx context.Context, sessionID string) (*Draft, error)
	Save(ctx context.Context, draft *Draft) error
	Delete(ctx context.Context, sessionID string) error
}

type repository struct {
	cache      cache.Service
	sessionTTL time.Duration
}

// NewRepository creates a Redis-backed draft repository
func NewRepository(cacheService cache.Service, sessionTTL time.Duration) Repository {
	return &repository{
		cache:      cacheService,
		sessionTTL: sessionTTL,
	}
}

func (r *repository) Get(ctx context.Context, sessionID string) (*Draft, error) {
	var draft Draft
	err := r.cache.Get(ctx, constants.SessionKey(sessionID, constants.SESSION_KEY_DRAFT), &draft)
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("failed to load order draft: %w", err)
	}
	return &draft, nil
}

func (r *repository) Save(ctx context.Context, draft *Draft) error {
	draft.UpdatedAt = time.Now().UTC()
	key := constants.SessionKey(draft.SessionID, constants.SESSION_KEY_DRAFT)
	if err := r.cache.Set(ctx, key, draft, r.sessionTTL); err != nil {
		return fmt.Errorf("failed to persist order draft: %w", err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, sessionID string) error {
	key := constants.SessionKey(sessionID, constants.SESSION_KEY_DRAFT)
	if err := r.cache.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete order draft: %w", err)
	}
	return nil
}
