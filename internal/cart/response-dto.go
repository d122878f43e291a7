package cart

// CartResponse is the cart snapshot plus its derived aggregates. Count and
// total are recomputed from the lines on every response, never stored.
type CartResponse struct {
	Lines []Line  `json:"lines"`
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

// NewCartResponse builds the response shape from a cart snapshot
func NewCartResponse(cart *Cart) CartResponse {
	return CartResponse{
		Lines: cart.Lines,
		Count: cart.Count(),
		Total: cart.Total(),
	}
}
