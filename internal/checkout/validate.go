package checkout

import (
	"regexp"
	"strings"
)

// FieldErrors maps a field name to its single validation message. An empty
// map means the step may advance.
type FieldErrors map[string]string

var (
	cardNumberPattern = regexp.MustCompile(`^\d{13,19}$`)
	expiryPattern     = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvPattern        = regexp.MustCompile(`^\d{3,4}$`)
	zipPattern        = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	whitespace        = regexp.MustCompile(`\s+`)
)

// ValidatePayment checks the payment step fields and returns one message per
// invalid field. The card number is stripped of whitespace before matching.
func ValidatePayment(p *PaymentDetails) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(p.CardHolderName) == "" {
		errs["card_holder_name"] = "Cardholder name is required"
	}

	cardNumber := whitespace.ReplaceAllString(p.CardNumber, "")
	if strings.TrimSpace(p.CardNumber) == "" {
		errs["card_number"] = "Credit card number is required"
	} else if !cardNumberPattern.MatchString(cardNumber) {
		errs["card_number"] = "Please enter a valid card number (13-19 digits)"
	}

	if strings.TrimSpace(p.ExpiryDate) == "" {
		errs["expiry_date"] = "Expiration date is required"
	} else if !expiryPattern.MatchString(p.ExpiryDate) {
		errs["expiry_date"] = "Use MM/YY format"
	}

	if strings.TrimSpace(p.CVV) == "" {
		errs["cvv"] = "CVV is required"
	} else if !cvvPattern.MatchString(p.CVV) {
		errs["cvv"] = "CVV must be 3 or 4 digits"
	}

	if p.Billing != nil {
		validateAddress(*p.Billing, "billing_", errs)
	}

	return errs
}

// ValidateShipping checks the shipping step fields.
func ValidateShipping(s *ShippingDetails) FieldErrors {
	errs := FieldErrors{}
	validateAddress(s.Address, "", errs)
	return errs
}

func validateAddress(a Address, prefix string, errs FieldErrors) {
	if strings.TrimSpace(a.Name) == "" {
		errs[prefix+"name"] = "Name is required"
	}
	if strings.TrimSpace(a.AddressLine1) == "" {
		errs[prefix+"address_line1"] = "Address Line 1 is required"
	}
	if strings.TrimSpace(a.City) == "" {
		errs[prefix+"city"] = "City is required"
	}
	if strings.TrimSpace(a.State) == "" {
		errs[prefix+"state"] = "State is required"
	}
	if strings.TrimSpace(a.Zip) == "" {
		errs[prefix+"zip"] = "ZIP code is required"
	} else if !zipPattern.MatchString(a.Zip) {
		errs[prefix+"zip"] = "Please enter a valid ZIP code (12345 or 12345-6789)"
	}
}
