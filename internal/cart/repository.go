package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"getaway/internal/shared/constants"
	"getaway/pkg/cache"
)

// ErrCartNotFound is returned when a session has no persisted cart yet.
var ErrCartNotFound = errors.New("cart not found")

// Repository persists per-session cart snapshots. Every mutation stores a
// complete replacement snapshot, never a partial edit.
type Repository interface {
	Get(ctx context.Context, sessionID string) (*Cart, error)
	Save(ctx context.Context, cart *Cart) error
	Delete(ctx context.Context, sessionID string) error
}

type repository struct {
	cache      cache.Service
	sessionTTL time.Duration
}

// NewRepository creates a Redis-backed cart repository
func NewRepository(cacheService cache.Service, sessionTTL time.Duration) Repository {
	return &repository{
		cache:      cacheService,
		sessionTTL: sessionTTL,
	}
}

func (r *repository) Get(ctx context.Context, sessionID string) (*Cart, error) {
	var cart Cart
	err := r.cache.Get(ctx, constants.SessionKey(sessionID, constants.SESSION_KEY_CART), &cart)
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return &cart, nil
}

func (r *repository) Save(ctx context.Context, cart *Cart) error {
	cart.UpdatedAt = time.Now().UTC()
	key := constants.SessionKey(cart.SessionID, constants.SESSION_KEY_CART)
	if err := r.cache.Set(ctx, key, cart, r.sessionTTL); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, sessionID string) error {
	key := constants.SessionKey(sessionID, constants.SESSION_KEY_CART)
	if err := r.cache.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}
