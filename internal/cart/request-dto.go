package cart

// SetQuantityRequest sets the quantity for one cart line. The service clamps
// the value to [0, availableTickets]; callers are not required to pre-clamp.
type SetQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}
