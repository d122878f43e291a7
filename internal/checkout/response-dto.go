package checkout

// PaymentView is the payment section as echoed back to the client. The card
// number is masked to its last four digits; the CVV is never echoed.
type PaymentView struct {
	CardHolderName string   `json:"card_holder_name"`
	CardNumber     string   `json:"card_number"`
	ExpiryDate     string   `json:"expiry_date"`
	Billing        *Address `json:"billing,omitempty"`
}

// NewPaymentView masks a saved payment section for display
func NewPaymentView(p *PaymentDetails) *PaymentView {
	if p == nil {
		return nil
	}
	return &PaymentView{
		CardHolderName: p.CardHolderName,
		CardNumber:     p.MaskedCardNumber(),
		ExpiryDate:     p.ExpiryDate,
		Billing:        p.Billing,
	}
}

// StateResponse summarizes wizard progress for the client.
type StateResponse struct {
	CurrentStep      Step             `json:"current_step"`
	PaymentComplete  bool             `json:"payment_complete"`
	ShippingComplete bool             `json:"shipping_complete"`
	Payment          *PaymentView     `json:"payment,omitempty"`
	Shipping         *ShippingDetails `json:"shipping,omitempty"`
}

// NewStateResponse builds the wizard progress view from a draft
func NewStateResponse(d *Draft) StateResponse {
	return StateResponse{
		CurrentStep:      d.CurrentStep(),
		PaymentComplete:  d.PaymentComplete(),
		ShippingComplete: d.ShippingComplete(),
		Payment:          NewPaymentView(d.Payment),
		Shipping:         d.Shipping,
	}
}

// ReviewResponse is the review step payload: recomputed totals plus the
// entered details for final confirmation.
type ReviewResponse struct {
	Items    interface{}      `json:"items"`
	Subtotal float64          `json:"subtotal"`
	Tax      float64          `json:"tax"`
	Total    float64          `json:"total"`
	Payment  *PaymentView     `json:"payment"`
	Shipping *ShippingDetails `json:"shipping"`
}

// NewReviewResponse masks the payment section of a review summary
func NewReviewResponse(r *ReviewSummary) ReviewResponse {
	return ReviewResponse{
		Items:    r.Items,
		Subtotal: r.Subtotal,
		Tax:      r.Tax,
		Total:    r.Total,
		Payment:  NewPaymentView(r.Payment),
		Shipping: r.Shipping,
	}
}
