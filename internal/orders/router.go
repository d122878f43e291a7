package orders

import (
	"github.com/gin-gonic/gin"
)

// SetupOrderRoutes configures all order routes
func SetupOrderRoutes(rg *gin.RouterGroup, controller Controller) {
	ordersGroup := rg.Group("/orders")
	{
		ordersGroup.POST("", controller.SubmitOrder)                              // POST /api/v1/orders
		ordersGroup.GET("/confirmation", controller.GetConfirmation)              // GET  /api/v1/orders/confirmation
		ordersGroup.GET("/history", controller.GetOrderHistory)                   // GET  /api/v1/orders/history
		ordersGroup.GET("/history/:confirmationNumber", controller.GetOrder)      // GET  /api/v1/orders/history/GA-1234
	}
}
