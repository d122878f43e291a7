package checkout

// AddressRequest carries one postal address as entered.
type AddressRequest struct {
	Name         string `json:"name"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
}

func (r *AddressRequest) toAddress() Address {
	return Address{
		Name:         r.Name,
		AddressLine1: r.AddressLine1,
		AddressLine2: r.AddressLine2,
		City:         r.City,
		State:        r.State,
		Zip:          r.Zip,
	}
}

// PaymentRequest carries the payment step fields as entered. Field-level
// validation happens in the service so each problem gets its own message;
// binding stays permissive on purpose.
type PaymentRequest struct {
	CardHolderName string          `json:"card_holder_name"`
	CardNumber     string          `json:"card_number"`
	ExpiryDate     string          `json:"expiry_date"`
	CVV            string          `json:"cvv"`
	Billing        *AddressRequest `json:"billing"`
}

func (r *PaymentRequest) toPaymentDetails() *PaymentDetails {
	payment := &PaymentDetails{
		CardHolderName: r.CardHolderName,
		CardNumber:     r.CardNumber,
		ExpiryDate:     r.ExpiryDate,
		CVV:            r.CVV,
	}
	if r.Billing != nil {
		billing := r.Billing.toAddress()
		payment.Billing = &billing
	}
	return payment
}

// ShippingRequest carries the shipping step fields. With SameAsBilling set
// the address fields are ignored and the billing address is copied instead.
type ShippingRequest struct {
	AddressRequest
	SameAsBilling bool `json:"same_as_billing"`
}

func (r *ShippingRequest) toShippingDetails() *ShippingDetails {
	return &ShippingDetails{
		Address:       r.toAddress(),
		SameAsBilling: r.SameAsBilling,
	}
}
