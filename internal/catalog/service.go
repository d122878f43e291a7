package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	"getaway/internal/shared/constants"
	"getaway/pkg/cache"
	"getaway/pkg/logger"
)

// Service interface defines the contract for catalog reads
type Service interface {
	ListItems(ctx context.Context) ([]Item, error)
	GetItem(ctx context.Context, itemID int) (*Item, error)
	SearchByName(ctx context.Context, name string) ([]Item, error)
	InvalidateCache(ctx context.Context)
	Health(ctx context.Context) error
}

// service implements the Service interface
type service struct {
	client     Client
	cache      cache.Service
	catalogTTL time.Duration
	log        *logger.Logger
}

// NewService creates a new catalog service instance
func NewService(client Client, cacheService cache.Service, catalogTTL time.Duration) Service {
	return &service{
		client:     client,
		cache:      cacheService,
		catalogTTL: catalogTTL,
		log:        logger.GetDefault(),
	}
}

// ListItems returns the catalog, served from cache within the freshness
// window and refreshed from the inventory service past it.
func (s *service) ListItems(ctx context.Context) ([]Item, error) {
	var items []Item
	err := s.cache.GetOrSet(ctx, constants.CACHE_KEY_CATALOG_LIST, s.catalogTTL, func() (interface{}, error) {
		start := time.Now()
		fetched, err := s.client.FetchAll(ctx)
		if err != nil {
			return nil, err
		}
		s.log.LogCatalogRefreshed(ctx, len(fetched), time.Since(start))
		return fetched, nil
	}, &items)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetItem returns a single catalog item, preferring the cached catalog
// snapshot so item detail reads share the list's freshness window.
func (s *service) GetItem(ctx context.Context, itemID int) (*Item, error) {
	items, err := s.ListItems(ctx)
	if err == nil {
		for i := range items {
			if items[i].ID == itemID {
				return &items[i], nil
			}
		}
	}

	// Fall back to the item endpoint: the id may have been added server-side
	// since the snapshot was taken.
	item, err := s.client.FetchItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

// SearchByName filters the cached catalog by a case-insensitive substring
// match on the item name.
func (s *service) SearchByName(ctx context.Context, name string) ([]Item, error) {
	items, err := s.ListItems(ctx)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(name))
	matched := make([]Item, 0)
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), query) {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

// InvalidateCache drops the cached catalog snapshot so the next read
// refetches availability. Called after a confirmed order.
func (s *service) InvalidateCache(ctx context.Context) {
	if err := s.cache.Delete(ctx, constants.CACHE_KEY_CATALOG_LIST); err != nil {
		s.log.ErrorWithContext(ctx, "failed to invalidate catalog cache", err, nil)
	}
}

// Health checks the inventory service
func (s *service) Health(ctx context.Context) error {
	return s.client.Health(ctx)
}
