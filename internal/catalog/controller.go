package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"getaway/internal/shared/utils/response"
	"getaway/pkg/logger"
)

type Controller interface {
	GetCatalog(c *gin.Context)
	GetItem(c *gin.Context)
	SearchItems(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

// GetCatalog handles GET /api/v1/catalog
func (ctrl *controller) GetCatalog(c *gin.Context) {
	items, err := ctrl.service.ListItems(c.Request.Context())
	if err != nil {
		// Degrade to an empty catalog instead of failing the page; the
		// client renders a labeled empty state.
		logger.GetDefault().LogCatalogUnavailable(c.Request.Context(), err)
		response.Success(c, http.StatusOK, "Catalog temporarily unavailable", CatalogResponse{
			Items:       []Item{},
			Unavailable: true,
		})
		return
	}

	response.Success(c, http.StatusOK, "Catalog retrieved successfully", CatalogResponse{
		Items:     items,
		ItemCount: len(items),
	})
}

// GetItem handles GET /api/v1/catalog/items/:itemId
func (ctrl *controller) GetItem(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("itemId"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid item ID", nil)
		return
	}

	item, err := ctrl.service.GetItem(c.Request.Context(), itemID)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			response.Error(c, http.StatusNotFound, "Item not found", nil)
			return
		}
		response.Error(c, http.StatusBadGateway, "Inventory service unavailable", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Item retrieved successfully", item)
}

// SearchItems handles GET /api/v1/catalog/items?name=
func (ctrl *controller) SearchItems(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		response.Error(c, http.StatusBadRequest, "Name parameter is required", nil)
		return
	}

	items, err := ctrl.service.SearchByName(c.Request.Context(), name)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "Inventory service unavailable", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Items retrieved successfully", CatalogResponse{
		Items:     items,
		ItemCount: len(items),
	})
}
