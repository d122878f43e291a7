package checkout

import "testing"

func validPayment() *PaymentDetails {
	return &PaymentDetails{
		CardHolderName: "Jordan Traveler",
		CardNumber:     "4111 1111 1111 1111",
		ExpiryDate:     "11/27",
		CVV:            "123",
		Billing:        validAddr(),
	}
}

func validAddr() *Address {
	return &Address{
		Name:         "Jordan Traveler",
		AddressLine1: "500 Summit Way",
		City:         "Denver",
		State:        "CO",
		Zip:          "80202",
	}
}

func TestValidPaymentPasses(t *testing.T) {
	if errs := ValidatePayment(validPayment()); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestCardNumberValidation(t *testing.T) {
	cases := []struct {
		name   string
		number string
		valid  bool
	}{
		{"sixteen digits", "4111111111111111", true},
		{"thirteen digits", "4111111111111", true},
		{"nineteen digits", "4111111111111111111", true},
		{"spaced groups", "4111 1111 1111 1111", true},
		{"too short", "1234", false},
		{"too long", "41111111111111111111", false},
		{"letters", "4111abcd11111111", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validPayment()
			p.CardNumber = tc.number
			errs := ValidatePayment(p)
			if _, found := errs["card_number"]; found == tc.valid {
				t.Errorf("card %q: valid=%v, errors=%v", tc.number, tc.valid, errs)
			}
		})
	}
}

func TestExpiryValidation(t *testing.T) {
	cases := []struct {
		value string
		valid bool
	}{
		{"01/26", true},
		{"12/99", true},
		{"13/26", false},
		{"00/26", false},
		{"1/26", false},
		{"01-26", false},
		{"01/2026", false},
		{"", false},
	}

	for _, tc := range cases {
		p := validPayment()
		p.ExpiryDate = tc.value
		errs := ValidatePayment(p)
		if _, found := errs["expiry_date"]; found == tc.valid {
			t.Errorf("expiry %q: valid=%v, errors=%v", tc.value, tc.valid, errs)
		}
	}
}

func TestCVVValidation(t *testing.T) {
	cases := []struct {
		value string
		valid bool
	}{
		{"123", true},
		{"1234", true},
		{"12", false},
		{"12345", false},
		{"12a", false},
		{"", false},
	}

	for _, tc := range cases {
		p := validPayment()
		p.CVV = tc.value
		errs := ValidatePayment(p)
		if _, found := errs["cvv"]; found == tc.valid {
			t.Errorf("cvv %q: valid=%v, errors=%v", tc.value, tc.valid, errs)
		}
	}
}

func TestZipValidation(t *testing.T) {
	cases := []struct {
		value string
		valid bool
	}{
		{"80202", true},
		{"12345-6789", true},
		{"1234", false},
		{"123456", false},
		{"12345-678", false},
		{"abcde", false},
		{"", false},
	}

	for _, tc := range cases {
		s := &ShippingDetails{Address: *validAddr()}
		s.Zip = tc.value
		errs := ValidateShipping(s)
		if _, found := errs["zip"]; found == tc.valid {
			t.Errorf("zip %q: valid=%v, errors=%v", tc.value, tc.valid, errs)
		}
	}
}

func TestRequiredFieldsCollectOneMessageEach(t *testing.T) {
	errs := ValidatePayment(&PaymentDetails{})
	for _, field := range []string{"card_holder_name", "card_number", "expiry_date", "cvv"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected error for %s, got %v", field, errs)
		}
	}

	errs = ValidateShipping(&ShippingDetails{})
	for _, field := range []string{"name", "address_line1", "city", "state", "zip"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected error for %s, got %v", field, errs)
		}
	}
}

func TestBillingAddressErrorsArePrefixed(t *testing.T) {
	p := validPayment()
	p.Billing = &Address{}
	errs := ValidatePayment(p)

	if _, ok := errs["billing_zip"]; !ok {
		t.Errorf("expected billing_zip error, got %v", errs)
	}
	if _, ok := errs["zip"]; ok {
		t.Errorf("billing errors must not collide with shipping field names: %v", errs)
	}
}

func TestMaskedCardNumber(t *testing.T) {
	p := validPayment()
	if got := p.MaskedCardNumber(); got != "**** **** **** 1111" {
		t.Errorf("unexpected masked number %q", got)
	}
}
