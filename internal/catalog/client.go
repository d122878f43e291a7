package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"
)

const inventoryPath = "/inventory-management/inventory"

// ErrItemNotFound is returned when the inventory service has no item with
// the requested id.
var ErrItemNotFound = errors.New("catalog item not found")

// Client talks to the external inventory service.
type Client interface {
	FetchAll(ctx context.Context) ([]Item, error)
	FetchItem(ctx context.Context, itemID int) (*Item, error)
	SearchByName(ctx context.Context, name string) ([]Item, error)
	Health(ctx context.Context) error
}

type httpClient struct {
	baseURL string
	client  *http.Client
}

// NewClient creates an inventory service client
func NewClient(baseURL string, timeout time.Duration) Client {
	return &httpClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// FetchAll retrieves the full catalog. The inventory service may answer with
// either a JSON array or an id-keyed object; both shapes are normalized to a
// slice (catalog order for the array shape, ascending id for the map shape).
func (c *httpClient) FetchAll(ctx context.Context) ([]Item, error) {
	body, err := c.get(ctx, c.baseURL+inventoryPath)
	if err != nil {
		return nil, err
	}

	items, err := normalizeCatalog(body)
	if err != nil {
		return nil, fmt.Errorf("inventory service returned unexpected payload: %w", err)
	}
	return items, nil
}

// FetchItem retrieves a single item by id
func (c *httpClient) FetchItem(ctx context.Context, itemID int) (*Item, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s%s/items/%d", c.baseURL, inventoryPath, itemID))
	if err != nil {
		return nil, err
	}

	var item Item
	if err := json.Unmarshal(body, &item); err != nil {
		return nil, fmt.Errorf("inventory service returned unexpected payload: %w", err)
	}
	return &item, nil
}

// SearchByName retrieves items whose name contains the query, case-insensitive
func (c *httpClient) SearchByName(ctx context.Context, name string) ([]Item, error) {
	query := url.Values{"name": {name}}
	body, err := c.get(ctx, c.baseURL+inventoryPath+"/items?"+query.Encode())
	if err != nil {
		return nil, err
	}

	var items []Item
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("inventory service returned unexpected payload: %w", err)
	}
	return items, nil
}

// Health checks the inventory service health endpoint
func (c *httpClient) Health(ctx context.Context) error {
	_, err := c.get(ctx, c.baseURL+"/health")
	return err
}

func (c *httpClient) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build inventory request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("inventory service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrItemNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inventory service error: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory response: %w", err)
	}
	return body, nil
}

// normalizeCatalog accepts either a JSON array of items or an object keyed by
// item id and returns a slice in a stable order.
func normalizeCatalog(body []byte) ([]Item, error) {
	var items []Item
	if err := json.Unmarshal(body, &items); err == nil {
		return items, nil
	}

	var keyed map[string]Item
	if err := json.Unmarshal(body, &keyed); err != nil {
		return nil, err
	}

	items = make([]Item, 0, len(keyed))
	for key, item := range keyed {
		// Some gateway deployments key the object by id but omit the id
		// field from the value itself
		if item.ID == 0 {
			if id, err := strconv.Atoi(key); err == nil {
				item.ID = id
			}
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}
