package checkout

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"getaway/internal/shared/middleware"
	"getaway/internal/shared/utils/response"
)

type Controller interface {
	GetState(c *gin.Context)
	GetPayment(c *gin.Context)
	SavePayment(c *gin.Context)
	GetShipping(c *gin.Context)
	SaveShipping(c *gin.Context)
	GetReview(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

// GetState handles GET /api/v1/checkout
func (ctrl *controller) GetState(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	draft, err := ctrl.service.GetState(c.Request.Context(), sessionID)
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, "Checkout state unavailable", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Checkout state retrieved successfully", NewStateResponse(draft))
}

// GetPayment handles GET /api/v1/checkout/payment
func (ctrl *controller) GetPayment(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	draft, err := ctrl.service.GetState(c.Request.Context(), sessionID)
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, "Checkout state unavailable", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Payment details retrieved successfully", NewPaymentView(draft.Payment))
}

// SavePayment handles PUT /api/v1/checkout/payment
func (ctrl *controller) SavePayment(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	fieldErrs, err := ctrl.service.SavePayment(c.Request.Context(), sessionID, req.toPaymentDetails())
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, "Failed to save payment details", err.Error())
		return
	}
	if len(fieldErrs) > 0 {
		response.FieldErrors(c, fieldErrs)
		return
	}

	response.Success(c, http.StatusOK, "Payment details saved successfully", gin.H{
		"next_step": StepShipping,
	})
}

// GetShipping handles GET /api/v1/checkout/shipping
func (ctrl *controller) GetShipping(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	draft, err := ctrl.service.GetState(c.Request.Context(), sessionID)
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, "Checkout state unavailable", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Shipping details retrieved successfully", draft.Shipping)
}

// SaveShipping handles PUT /api/v1/checkout/shipping
func (ctrl *controller) SaveShipping(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	var req ShippingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	fieldErrs, err := ctrl.service.SaveShipping(c.Request.Context(), sessionID, req.toShippingDetails())
	if err != nil {
		ctrl.respondFlowError(c, err)
		return
	}
	if len(fieldErrs) > 0 {
		response.FieldErrors(c, fieldErrs)
		return
	}

	response.Success(c, http.StatusOK, "Shipping details saved successfully", gin.H{
		"next_step": StepReview,
	})
}

// GetReview handles GET /api/v1/checkout/review
func (ctrl *controller) GetReview(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	summary, err := ctrl.service.Review(c.Request.Context(), sessionID)
	if err != nil {
		ctrl.respondFlowError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Order review retrieved successfully", NewReviewResponse(summary))
}

// respondFlowError distinguishes step-order violations from infrastructure
// failures.
func (ctrl *controller) respondFlowError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrPaymentRequired):
		response.Error(c, http.StatusConflict, "Complete the payment step first", nil)
	case errors.Is(err, ErrShippingRequired):
		response.Error(c, http.StatusConflict, "Complete the shipping step first", nil)
	default:
		response.Error(c, http.StatusServiceUnavailable, "Checkout unavailable", err.Error())
	}
}
