package cart

import (
	"github.com/gin-gonic/gin"
)

// SetupCartRoutes configures all cart routes
func SetupCartRoutes(rg *gin.RouterGroup, controller Controller) {
	cart := rg.Group("/cart")
	{
		cart.GET("", controller.GetCart)                                // GET    /api/v1/cart
		cart.DELETE("", controller.Clear)                               // DELETE /api/v1/cart
		cart.PUT("/items/:itemId", controller.SetQuantity)              // PUT    /api/v1/cart/items/1
		cart.DELETE("/items/:itemId", controller.RemoveLine)            // DELETE /api/v1/cart/items/1
		cart.POST("/items/:itemId/increment", controller.Increment)     // POST   /api/v1/cart/items/1/increment
		cart.POST("/items/:itemId/decrement", controller.Decrement)     // POST   /api/v1/cart/items/1/decrement
	}
}
