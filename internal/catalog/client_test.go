package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const arrayPayload = `[
	{"id": 1, "name": "Colorado Ski Adventure", "price": 649.00, "availableTickets": 15},
	{"id": 2, "name": "Tropical Paradise Retreat", "price": 899.00, "availableTickets": 8}
]`

const mapPayload = `{
	"2": {"name": "Tropical Paradise Retreat", "price": 899.00, "availableTickets": 8},
	"1": {"name": "Colorado Ski Adventure", "price": 649.00, "availableTickets": 15}
}`

func newInventoryServer(payload string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))
}

func TestFetchAllArrayShape(t *testing.T) {
	server := newInventoryServer(arrayPayload)
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	items, err := client.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != 1 || items[0].Name != "Colorado Ski Adventure" {
		t.Errorf("unexpected first item %+v", items[0])
	}
	if items[1].AvailableTickets != 8 {
		t.Errorf("unexpected availability %d", items[1].AvailableTickets)
	}
}

func TestFetchAllMapShapeNormalized(t *testing.T) {
	server := newInventoryServer(mapPayload)
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	items, err := client.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	// Map shape is normalized to ascending id, with ids backfilled from keys
	if items[0].ID != 1 || items[1].ID != 2 {
		t.Errorf("expected ascending id order, got %d then %d", items[0].ID, items[1].ID)
	}
	if items[0].Name != "Colorado Ski Adventure" {
		t.Errorf("unexpected first item %+v", items[0])
	}
}

func TestFetchAllMalformedPayload(t *testing.T) {
	server := newInventoryServer(`"not a catalog"`)
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	if _, err := client.FetchAll(context.Background()); err == nil {
		t.Fatal("expected error on malformed payload")
	}
}

func TestFetchItemNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "Item not found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.FetchItem(context.Background(), 999)
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestFetchItemPath(t *testing.T) {
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 3, "name": "European City Explorer", "price": 1299.00, "availableTickets": 12}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	item, err := client.FetchItem(context.Background(), 3)
	if err != nil {
		t.Fatalf("FetchItem failed: %v", err)
	}

	if path != "/inventory-management/inventory/items/3" {
		t.Errorf("unexpected request path %q", path)
	}
	if item.ID != 3 {
		t.Errorf("unexpected item %+v", item)
	}
}

func TestFetchAllServiceDown(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 500*time.Millisecond)
	if _, err := client.FetchAll(context.Background()); err == nil {
		t.Fatal("expected error when inventory service is unreachable")
	}
}
