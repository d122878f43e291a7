package orders

import "time"

// ConfirmationResponse represents the confirmation page payload.
type ConfirmationResponse struct {
	ConfirmationNumber string          `json:"confirmation_number"`
	Items              []ConfirmedItem `json:"items"`
	ItemCount          int             `json:"item_count"`
	Total              float64         `json:"total"`
	PlacedAt           time.Time       `json:"placed_at"`
}

// NewConfirmationResponse converts a confirmation snapshot to the API shape
func NewConfirmationResponse(confirmation *Confirmation) *ConfirmationResponse {
	return &ConfirmationResponse{
		ConfirmationNumber: confirmation.ConfirmationNumber,
		Items:              confirmation.Items,
		ItemCount:          confirmedCount(confirmation.Items),
		Total:              confirmation.Total,
		PlacedAt:           confirmation.PlacedAt,
	}
}

// RejectionResponse is the errors payload for a classified order failure.
type RejectionResponse struct {
	Kind    RejectionKind `json:"kind"`
	Message string        `json:"message"`
	Items   []Shortfall   `json:"items,omitempty"`
}

// NewRejectionResponse converts a rejection to the API shape
func NewRejectionResponse(rejection *Rejection) *RejectionResponse {
	return &RejectionResponse{
		Kind:    rejection.Kind,
		Message: rejection.Message,
		Items:   rejection.Items,
	}
}

// OrderHistoryResponse represents one persisted order in a history listing.
type OrderHistoryResponse struct {
	ConfirmationNumber string      `json:"confirmation_number"`
	ItemCount          int         `json:"item_count"`
	Total              float64     `json:"total"`
	ShippingName       string      `json:"shipping_name"`
	ShippingCity       string      `json:"shipping_city"`
	ShippingState      string      `json:"shipping_state"`
	ShippingZip        string      `json:"shipping_zip"`
	Items              []OrderItem `json:"items"`
	CreatedAt          time.Time   `json:"created_at"`
}

// NewOrderHistoryResponse converts a persisted order to the API shape
func NewOrderHistoryResponse(order *Order) *OrderHistoryResponse {
	return &OrderHistoryResponse{
		ConfirmationNumber: order.ConfirmationNumber,
		ItemCount:          order.ItemCount,
		Total:              order.Total,
		ShippingName:       order.ShippingName,
		ShippingCity:       order.ShippingCity,
		ShippingState:      order.ShippingState,
		ShippingZip:        order.ShippingZip,
		Items:              order.Items,
		CreatedAt:          order.CreatedAt,
	}
}

// NewOrderHistoryListResponse converts a history slice to the API shape
func NewOrderHistoryListResponse(results []Order) []OrderHistoryResponse {
	list := make([]OrderHistoryResponse, 0, len(results))
	for i := range results {
		list = append(list, *NewOrderHistoryResponse(&results[i]))
	}
	return list
}
