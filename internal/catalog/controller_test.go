package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newCatalogRouter(client Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	svc := NewService(client, newMemCache(), 5*time.Minute)
	SetupCatalogRoutes(engine.Group("/api/v1"), NewController(svc))
	return engine
}

func TestGetCatalogDegradesToEmptyOnFailure(t *testing.T) {
	router := newCatalogRouter(&countingClient{err: errors.New("inventory service down")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on degraded catalog, got %d", w.Code)
	}

	var envelope struct {
		Data CatalogResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if !envelope.Data.Unavailable {
		t.Error("expected unavailable flag on degraded catalog")
	}
	if len(envelope.Data.Items) != 0 {
		t.Errorf("expected empty item list, got %d", len(envelope.Data.Items))
	}
}

func TestGetCatalogReturnsItems(t *testing.T) {
	router := newCatalogRouter(&countingClient{items: fixtureItems()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var envelope struct {
		Data CatalogResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if envelope.Data.ItemCount != 3 {
		t.Errorf("expected 3 items, got %d", envelope.Data.ItemCount)
	}
	if envelope.Data.Unavailable {
		t.Error("unexpected unavailable flag")
	}
}

func TestGetItemNotFoundStatus(t *testing.T) {
	router := newCatalogRouter(&countingClient{items: fixtureItems()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/items/999", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestSearchRequiresName(t *testing.T) {
	router := newCatalogRouter(&countingClient{items: fixtureItems()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/items", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without name parameter, got %d", w.Code)
	}
}
