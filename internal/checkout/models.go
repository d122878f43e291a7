package checkout

import (
	"strings"
	"time"
)

// Step names the wizard stages in flow order.
type Step string

const (
	StepPayment  Step = "payment"
	StepShipping Step = "shipping"
	StepReview   Step = "review"
)

// Address is a postal address. Billing and shipping addresses are separate
// typed values; the "same as billing" shortcut copies one into the other
// instead of sharing field storage, so same-named fields can never collide.
type Address struct {
	Name         string `json:"name"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
}

// PaymentDetails holds the validated payment step fields.
type PaymentDetails struct {
	CardHolderName string   `json:"card_holder_name"`
	CardNumber     string   `json:"card_number"`
	ExpiryDate     string   `json:"expiry_date"`
	CVV            string   `json:"cvv"`
	Billing        *Address `json:"billing,omitempty"`
}

// MaskedCardNumber returns the card number reduced to its last four digits.
// Reads of a saved draft never echo the full number back.
func (p *PaymentDetails) MaskedCardNumber() string {
	digits := strings.ReplaceAll(p.CardNumber, " ", "")
	if len(digits) < 4 {
		return ""
	}
	return "**** **** **** " + digits[len(digits)-4:]
}

// ShippingDetails holds the validated shipping step fields. SameAsBilling
// records that the address is a verbatim copy of the billing address; any
// hand-edit afterwards clears it permanently for that copy.
type ShippingDetails struct {
	Address
	SameAsBilling bool `json:"same_as_billing"`
}

// Draft is the accumulating, not-yet-submitted order state for one session,
// serialized to the session store as a single unit. Each wizard step only
// ever adds or overwrites its own section, never drops another step's data.
type Draft struct {
	SessionID string           `json:"session_id"`
	Payment   *PaymentDetails  `json:"payment,omitempty"`
	Shipping  *ShippingDetails `json:"shipping,omitempty"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// PaymentComplete reports whether the payment step has been passed.
func (d *Draft) PaymentComplete() bool {
	return d.Payment != nil
}

// ShippingComplete reports whether the shipping step has been passed.
func (d *Draft) ShippingComplete() bool {
	return d.Shipping != nil
}

// CurrentStep returns the furthest step the session can enter.
func (d *Draft) CurrentStep() Step {
	switch {
	case d.PaymentComplete() && d.ShippingComplete():
		return StepReview
	case d.PaymentComplete():
		return StepShipping
	default:
		return StepPayment
	}
}
