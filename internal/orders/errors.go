package orders

import "errors"

// RejectionKind classifies an order-processing failure. The kinds mirror the
// statuses the order-processing service answers with.
type RejectionKind string

const (
	KindInsufficientInventory RejectionKind = "INSUFFICIENT_INVENTORY"
	KindValidation            RejectionKind = "VALIDATION_ERROR"
	KindNotFound              RejectionKind = "NOT_FOUND"
	KindService               RejectionKind = "SERVICE_ERROR"
)

// Shortfall reports one line whose requested quantity exceeds current
// server-side stock.
type Shortfall struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
}

// Rejection is a classified order-processing failure. The caller renders the
// message (and, for insufficient inventory, the per-item shortfalls) and
// never auto-retries.
type Rejection struct {
	Kind    RejectionKind `json:"kind"`
	Message string        `json:"message"`
	Items   []Shortfall   `json:"items,omitempty"`
}

func (r *Rejection) Error() string {
	return string(r.Kind) + ": " + r.Message
}

// AsRejection unwraps err into a Rejection if it is one.
func AsRejection(err error) (*Rejection, bool) {
	var rejection *Rejection
	if errors.As(err, &rejection) {
		return rejection, true
	}
	return nil, false
}

// ErrNoConfirmation is returned when a session has not placed an order yet.
var ErrNoConfirmation = errors.New("no order confirmation for this session")

// ErrOrderNotFound is returned when no order record matches a confirmation number.
var ErrOrderNotFound = errors.New("order not found")
