package cart

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"getaway/internal/shared/middleware"
	"getaway/internal/shared/utils/response"
)

type Controller interface {
	GetCart(c *gin.Context)
	SetQuantity(c *gin.Context)
	Increment(c *gin.Context)
	Decrement(c *gin.Context)
	RemoveLine(c *gin.Context)
	Clear(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

// GetCart handles GET /api/v1/cart
func (ctrl *controller) GetCart(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	cart, err := ctrl.service.GetCart(c.Request.Context(), sessionID)
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, "Cart unavailable", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Cart retrieved successfully", NewCartResponse(cart))
}

// SetQuantity handles PUT /api/v1/cart/items/:itemId
func (ctrl *controller) SetQuantity(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	itemID, err := strconv.Atoi(c.Param("itemId"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid item ID", nil)
		return
	}

	var req SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	cart, err := ctrl.service.SetQuantity(c.Request.Context(), sessionID, itemID, *req.Quantity)
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, "Failed to update cart", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Cart updated successfully", NewCartResponse(cart))
}

// Increment handles POST /api/v1/cart/items/:itemId/increment
func (ctrl *controller) Increment(c *gin.Context) {
	ctrl.step(c, ctrl.service.Increment)
}

// Decrement handles POST /api/v1/cart/items/:itemId/decrement
func (ctrl *controller) Decrement(c *gin.Context) {
	ctrl.step(c, ctrl.service.Decrement)
}

// RemoveLine handles DELETE /api/v1/cart/items/:itemId
func (ctrl *controller) RemoveLine(c *gin.Context) {
	ctrl.step(c, ctrl.service.RemoveLine)
}

// Clear handles DELETE /api/v1/cart
func (ctrl *controller) Clear(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	cart, err := ctrl.service.Clear(c.Request.Context(), sessionID)
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, "Failed to clear cart", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Cart cleared successfully", NewCartResponse(cart))
}

type mutation func(ctx context.Context, sessionID string, itemID int) (*Cart, error)

func (ctrl *controller) step(c *gin.Context, apply mutation) {
	sessionID := middleware.SessionID(c)

	itemID, err := strconv.Atoi(c.Param("itemId"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid item ID", nil)
		return
	}

	cart, err := apply(c.Request.Context(), sessionID, itemID)
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, "Failed to update cart", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Cart updated successfully", NewCartResponse(cart))
}
