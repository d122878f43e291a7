package checkout

import (
	"github.com/gin-gonic/gin"
)

// SetupCheckoutRoutes configures all checkout wizard routes
func SetupCheckoutRoutes(rg *gin.RouterGroup, controller Controller) {
	checkout := rg.Group("/checkout")
	{
		checkout.GET("", controller.GetState)              // GET /api/v1/checkout
		checkout.GET("/payment", controller.GetPayment)    // GET /api/v1/checkout/payment
		checkout.PUT("/payment", controller.SavePayment)   // PUT /api/v1/checkout/payment
		checkout.GET("/shipping", controller.GetShipping)  // GET /api/v1/checkout/shipping
		checkout.PUT("/shipping", controller.SaveShipping) // PUT /api/v1/checkout/shipping
		checkout.GET("/review", controller.GetReview)      // GET /api/v1/checkout/review
	}
}

// Flow after browsing the catalog:
// 1. Client sets quantities with PUT /cart/items/:itemId
// 2. PUT /checkout/payment validates and stores card details
// 3. PUT /checkout/shipping validates the address (or copies billing)
// 4. GET /checkout/review recomputes totals for confirmation
// 5. POST /orders submits the accumulated draft
