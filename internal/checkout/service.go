package checkout

import (
	"context"
	"errors"

	"getaway/internal/cart"
)

// Step-order violations. These are flow errors, not field errors: the caller
// is on the wrong step entirely.
var (
	ErrPaymentRequired  = errors.New("payment step has not been completed")
	ErrShippingRequired = errors.New("shipping step has not been completed")
)

// Service interface defines the contract for the checkout wizard
type Service interface {
	GetState(ctx context.Context, sessionID string) (*Draft, error)
	SavePayment(ctx context.Context, sessionID string, payment *PaymentDetails) (FieldErrors, error)
	SaveShipping(ctx context.Context, sessionID string, shipping *ShippingDetails) (FieldErrors, error)
	Review(ctx context.Context, sessionID string) (*ReviewSummary, error)

	// CompletedDraft returns the draft once both entry steps have passed;
	// the order submitter consumes it.
	CompletedDraft(ctx context.Context, sessionID string) (*Draft, error)

	// ClearDraft discards the draft after a successful submission.
	ClearDraft(ctx context.Context, sessionID string) error
}

// ReviewSummary is the review step's recomputed order overview.
type ReviewSummary struct {
	Items    []cart.Line `json:"items"`
	Subtotal float64     `json:"subtotal"`
	Tax      float64     `json:"tax"`
	Total    float64     `json:"total"`

	Payment  *PaymentDetails  `json:"payment"`
	Shipping *ShippingDetails `json:"shipping"`
}

// service implements the Service interface
type service struct {
	repo        Repository
	cartService cart.Service
	taxRate     float64
}

// NewService creates a new checkout service instance
func NewService(repo Repository, cartService cart.Service, taxRate float64) Service {
	return &service{
		repo:        repo,
		cartService: cartService,
		taxRate:     taxRate,
	}
}

// GetState returns the session's draft, empty if no step has been saved yet.
// Revisiting a step restores prior entries from here; nothing is discarded
// on back-navigation.
func (s *service) GetState(ctx context.Context, sessionID string) (*Draft, error) {
	draft, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrDraftNotFound) {
			return &Draft{SessionID: sessionID}, nil
		}
		return nil, err
	}
	return draft, nil
}

// SavePayment validates the payment step and merges it into the draft. A
// non-empty FieldErrors means the step did not advance and nothing was saved.
func (s *service) SavePayment(ctx context.Context, sessionID string, payment *PaymentDetails) (FieldErrors, error) {
	if errs := ValidatePayment(payment); len(errs) > 0 {
		return errs, nil
	}

	draft, err := s.GetState(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Overwrite only the payment section; later steps keep their data
	draft.Payment = payment

	// If shipping previously copied a billing address that just changed,
	// the copy is stale; drop the shortcut marker so review shows the
	// shipping fields as independently entered.
	if draft.Shipping != nil && draft.Shipping.SameAsBilling {
		if payment.Billing == nil || draft.Shipping.Address != *payment.Billing {
			draft.Shipping.SameAsBilling = false
		}
	}

	if err := s.repo.Save(ctx, draft); err != nil {
		return nil, err
	}
	return nil, nil
}

// SaveShipping validates the shipping step and merges it into the draft.
// With SameAsBilling set the already-validated billing address is copied
// verbatim; any hand-entered fields instead clear the shortcut so the copy
// can never drift silently.
func (s *service) SaveShipping(ctx context.Context, sessionID string, shipping *ShippingDetails) (FieldErrors, error) {
	draft, err := s.GetState(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !draft.PaymentComplete() {
		return nil, ErrPaymentRequired
	}

	if shipping.SameAsBilling {
		if draft.Payment.Billing == nil {
			return FieldErrors{"same_as_billing": "No billing address on file to copy"}, nil
		}
		shipping = &ShippingDetails{
			Address:       *draft.Payment.Billing,
			SameAsBilling: true,
		}
	} else {
		// Hand-entered fields: the shortcut, if it was on, stays off
		shipping.SameAsBilling = false
	}

	if errs := ValidateShipping(shipping); len(errs) > 0 {
		return errs, nil
	}

	draft.Shipping = shipping
	if err := s.repo.Save(ctx, draft); err != nil {
		return nil, err
	}
	return nil, nil
}

// Review recomputes subtotal, tax and total from the live cart snapshot and
// pairs them with the entered payment and shipping details. The review step
// has no fields of its own.
func (s *service) Review(ctx context.Context, sessionID string) (*ReviewSummary, error) {
	draft, err := s.CompletedDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.cartService.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	subtotal := snapshot.Total()
	tax := subtotal * s.taxRate

	return &ReviewSummary{
		Items:    snapshot.SelectedLines(),
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
		Payment:  draft.Payment,
		Shipping: draft.Shipping,
	}, nil
}

// CompletedDraft returns the draft once payment and shipping have both passed.
func (s *service) CompletedDraft(ctx context.Context, sessionID string) (*Draft, error) {
	draft, err := s.GetState(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !draft.PaymentComplete() {
		return nil, ErrPaymentRequired
	}
	if !draft.ShippingComplete() {
		return nil, ErrShippingRequired
	}
	return draft, nil
}

// ClearDraft discards the session's draft entirely.
func (s *service) ClearDraft(ctx context.Context, sessionID string) error {
	return s.repo.Delete(ctx, sessionID)
}
