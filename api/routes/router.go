// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"getaway/internal/cart"
	"getaway/internal/catalog"
	"getaway/internal/checkout"
	"getaway/internal/notifications"
	"getaway/internal/orders"
	"getaway/internal/shared/config"
	"getaway/internal/shared/database"
	"getaway/pkg/cache"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	producer notifications.Producer

	// Cross-domain services carried for dependency injection
	cacheService    cache.Service
	catalogService  catalog.Service
	cartService     cart.Service
	checkoutService checkout.Service
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, producer notifications.Producer) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		producer: producer,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	r.cacheService = cache.NewService(r.db.GetRedis())

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		// Catalog first: cart and checkout build on it
		r.setupCatalogRoutes(api)
		r.setupCartRoutes(api)
		r.setupCheckoutRoutes(api)
		r.setupOrderRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "getaway-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "getaway-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupCatalogRoutes configures catalog browsing routes
func (r *Router) setupCatalogRoutes(rg *gin.RouterGroup) {
	catalogClient := catalog.NewClient(r.config.Inventory.BaseURL, r.config.Inventory.Timeout)
	catalogService := catalog.NewService(catalogClient, r.cacheService, r.config.Inventory.CatalogTTL)
	catalogController := catalog.NewController(catalogService)

	// Keep the service for the cart and order wiring below
	r.catalogService = catalogService

	catalog.SetupCatalogRoutes(rg, catalogController)
}

// setupCartRoutes configures cart routes
func (r *Router) setupCartRoutes(rg *gin.RouterGroup) {
	cartRepo := cart.NewRepository(r.cacheService, r.config.Session.TTL)
	cartService := cart.NewService(cartRepo, r.catalogService)
	cartController := cart.NewController(cartService)

	r.cartService = cartService

	cart.SetupCartRoutes(rg, cartController)
}

// setupCheckoutRoutes configures checkout wizard routes
func (r *Router) setupCheckoutRoutes(rg *gin.RouterGroup) {
	checkoutRepo := checkout.NewRepository(r.cacheService, r.config.Session.TTL)
	checkoutService := checkout.NewService(checkoutRepo, r.cartService, r.config.Checkout.TaxRate)
	checkoutController := checkout.NewController(checkoutService)

	r.checkoutService = checkoutService

	checkout.SetupCheckoutRoutes(rg, checkoutController)
}

// setupOrderRoutes configures order submission and lookup routes
func (r *Router) setupOrderRoutes(rg *gin.RouterGroup) {
	submitter := orders.NewSubmitter(r.config.Orders.BaseURL, r.config.Orders.Timeout)
	orderRepo := orders.NewRepository(r.db.GetPostgreSQL())
	snapshots := orders.NewSnapshotStore(r.cacheService, r.config.Session.TTL)

	orderService := orders.NewService(
		submitter,
		orderRepo,
		snapshots,
		r.cartService,
		r.checkoutService,
		r.catalogService,
		r.producer,
	)
	orderController := orders.NewController(orderService)

	orders.SetupOrderRoutes(rg, orderController)
}
