package catalog

import (
	"github.com/gin-gonic/gin"
)

// SetupCatalogRoutes configures all catalog browsing routes
func SetupCatalogRoutes(rg *gin.RouterGroup, controller Controller) {
	catalog := rg.Group("/catalog")
	{
		catalog.GET("", controller.GetCatalog)            // GET /api/v1/catalog
		catalog.GET("/items", controller.SearchItems)     // GET /api/v1/catalog/items?name=ski
		catalog.GET("/items/:itemId", controller.GetItem) // GET /api/v1/catalog/items/1
	}
}
