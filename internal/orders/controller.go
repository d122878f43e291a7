package orders

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"getaway/internal/checkout"
	"getaway/internal/shared/middleware"
	"getaway/internal/shared/utils/response"
)

type Controller interface {
	SubmitOrder(c *gin.Context)
	GetConfirmation(c *gin.Context)
	GetOrder(c *gin.Context)
	GetOrderHistory(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

// SubmitOrder handles POST /api/v1/orders
func (ctrl *controller) SubmitOrder(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	confirmation, err := ctrl.service.Submit(c.Request.Context(), sessionID)
	if err != nil {
		ctrl.respondSubmitError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Order placed successfully", NewConfirmationResponse(confirmation))
}

// GetConfirmation handles GET /api/v1/orders/confirmation
func (ctrl *controller) GetConfirmation(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	confirmation, err := ctrl.service.GetConfirmation(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, ErrNoConfirmation) {
			response.Error(c, http.StatusNotFound, "No order has been placed in this session", nil)
			return
		}
		response.Error(c, http.StatusServiceUnavailable, "Confirmation unavailable", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Confirmation retrieved successfully", NewConfirmationResponse(confirmation))
}

// GetOrder handles GET /api/v1/orders/history/:confirmationNumber
func (ctrl *controller) GetOrder(c *gin.Context) {
	confirmationNumber := c.Param("confirmationNumber")

	order, err := ctrl.service.GetOrder(c.Request.Context(), confirmationNumber)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			response.Error(c, http.StatusNotFound, "Order not found", nil)
			return
		}
		response.Error(c, http.StatusServiceUnavailable, "Order lookup failed", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Order retrieved successfully", NewOrderHistoryResponse(order))
}

// GetOrderHistory handles GET /api/v1/orders/history
func (ctrl *controller) GetOrderHistory(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	results, err := ctrl.service.GetSessionOrders(c.Request.Context(), sessionID)
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, "Order history unavailable", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Order history retrieved successfully", NewOrderHistoryListResponse(results))
}

// respondSubmitError maps a submission failure onto the API. Flow errors mean
// the checkout wizard was never finished; rejections carry the classified
// answer of the order-processing service.
func (ctrl *controller) respondSubmitError(c *gin.Context, err error) {
	if errors.Is(err, checkout.ErrPaymentRequired) || errors.Is(err, checkout.ErrShippingRequired) {
		response.Error(c, http.StatusConflict, "Checkout is not complete", err.Error())
		return
	}

	if rejection, ok := AsRejection(err); ok {
		response.Error(c, statusFor(rejection.Kind), rejection.Message, NewRejectionResponse(rejection))
		return
	}

	response.Error(c, http.StatusServiceUnavailable, "Failed to place order", err.Error())
}

func statusFor(kind RejectionKind) int {
	switch kind {
	case KindInsufficientInventory:
		return http.StatusConflict
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}
