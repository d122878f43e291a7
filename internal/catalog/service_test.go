package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"getaway/pkg/cache"
)

// memCache is a JSON-round-tripping in-memory cache.Service.
type memCache struct {
	entries map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string][]byte)}
}

func (m *memCache) Get(ctx context.Context, key string, dest interface{}) error {
	data, ok := m.entries[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(data, dest)
}

func (m *memCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = data
	return nil
}

func (m *memCache) Delete(ctx context.Context, key string) error {
	delete(m.entries, key)
	return nil
}

func (m *memCache) DeletePattern(ctx context.Context, pattern string) error {
	m.entries = make(map[string][]byte)
	return nil
}

func (m *memCache) Exists(ctx context.Context, key string) bool {
	_, ok := m.entries[key]
	return ok
}

func (m *memCache) GetOrSet(ctx context.Context, key string, ttl time.Duration, fetcher func() (interface{}, error), dest interface{}) error {
	if err := m.Get(ctx, key, dest); err == nil {
		return nil
	}
	value, err := fetcher()
	if err != nil {
		return err
	}
	if err := m.Set(ctx, key, value, ttl); err != nil {
		return err
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

func (m *memCache) Ping(ctx context.Context) error { return nil }

type countingClient struct {
	items      []Item
	err        error
	fetchCalls int
}

func (c *countingClient) FetchAll(ctx context.Context) ([]Item, error) {
	c.fetchCalls++
	if c.err != nil {
		return nil, c.err
	}
	return c.items, nil
}

func (c *countingClient) FetchItem(ctx context.Context, itemID int) (*Item, error) {
	for i := range c.items {
		if c.items[i].ID == itemID {
			return &c.items[i], nil
		}
	}
	return nil, ErrItemNotFound
}

func (c *countingClient) SearchByName(ctx context.Context, name string) ([]Item, error) {
	return c.items, nil
}

func (c *countingClient) Health(ctx context.Context) error { return nil }

func fixtureItems() []Item {
	return []Item{
		{ID: 1, Name: "Colorado Ski Adventure", Price: 649.00, AvailableTickets: 15},
		{ID: 2, Name: "Tropical Paradise Retreat", Price: 899.00, AvailableTickets: 8},
		{ID: 3, Name: "European City Explorer", Price: 1299.00, AvailableTickets: 12},
	}
}

func TestListItemsServedFromCache(t *testing.T) {
	client := &countingClient{items: fixtureItems()}
	svc := NewService(client, newMemCache(), 5*time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		items, err := svc.ListItems(ctx)
		if err != nil {
			t.Fatalf("ListItems failed: %v", err)
		}
		if len(items) != 3 {
			t.Fatalf("expected 3 items, got %d", len(items))
		}
	}

	if client.fetchCalls != 1 {
		t.Errorf("expected 1 upstream fetch within freshness window, got %d", client.fetchCalls)
	}
}

func TestInvalidateCacheForcesRefetch(t *testing.T) {
	client := &countingClient{items: fixtureItems()}
	svc := NewService(client, newMemCache(), 5*time.Minute)
	ctx := context.Background()

	if _, err := svc.ListItems(ctx); err != nil {
		t.Fatalf("ListItems failed: %v", err)
	}
	svc.InvalidateCache(ctx)
	if _, err := svc.ListItems(ctx); err != nil {
		t.Fatalf("ListItems failed: %v", err)
	}

	if client.fetchCalls != 2 {
		t.Errorf("expected refetch after invalidation, got %d fetches", client.fetchCalls)
	}
}

func TestGetItemFromCachedSnapshot(t *testing.T) {
	client := &countingClient{items: fixtureItems()}
	svc := NewService(client, newMemCache(), 5*time.Minute)
	ctx := context.Background()

	item, err := svc.GetItem(ctx, 2)
	if err != nil {
		t.Fatalf("GetItem failed: %v", err)
	}
	if item.Name != "Tropical Paradise Retreat" {
		t.Errorf("unexpected item %+v", item)
	}
}

func TestGetItemUnknownID(t *testing.T) {
	client := &countingClient{items: fixtureItems()}
	svc := NewService(client, newMemCache(), 5*time.Minute)

	_, err := svc.GetItem(context.Background(), 999)
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestSearchByNameCaseInsensitive(t *testing.T) {
	client := &countingClient{items: fixtureItems()}
	svc := NewService(client, newMemCache(), 5*time.Minute)

	items, err := svc.SearchByName(context.Background(), "PARADISE")
	if err != nil {
		t.Fatalf("SearchByName failed: %v", err)
	}
	if len(items) != 1 || items[0].ID != 2 {
		t.Errorf("unexpected search result %+v", items)
	}
}

func TestListItemsErrorsWhenUpstreamDownAndCacheCold(t *testing.T) {
	client := &countingClient{err: errors.New("inventory service down")}
	svc := NewService(client, newMemCache(), 5*time.Minute)

	if _, err := svc.ListItems(context.Background()); err == nil {
		t.Fatal("expected error on cold cache with upstream down")
	}
}
