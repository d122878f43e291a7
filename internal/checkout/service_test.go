package checkout

import (
	"context"
	"errors"
	"testing"

	"getaway/internal/cart"
)

type memDraftRepo struct {
	drafts map[string]*Draft
}

func newMemDraftRepo() *memDraftRepo {
	return &memDraftRepo{drafts: make(map[string]*Draft)}
}

func (r *memDraftRepo) Get(ctx context.Context, sessionID string) (*Draft, error) {
	draft, ok := r.drafts[sessionID]
	if !ok {
		return nil, ErrDraftNotFound
	}
	copied := *draft
	return &copied, nil
}

func (r *memDraftRepo) Save(ctx context.Context, draft *Draft) error {
	copied := *draft
	r.drafts[draft.SessionID] = &copied
	return nil
}

func (r *memDraftRepo) Delete(ctx context.Context, sessionID string) error {
	delete(r.drafts, sessionID)
	return nil
}

type fakeCartService struct {
	cart *cart.Cart
}

func (f *fakeCartService) GetCart(ctx context.Context, sessionID string) (*cart.Cart, error) {
	return f.cart, nil
}

func (f *fakeCartService) SetQuantity(ctx context.Context, sessionID string, itemID, quantity int) (*cart.Cart, error) {
	return f.cart, nil
}

func (f *fakeCartService) Increment(ctx context.Context, sessionID string, itemID int) (*cart.Cart, error) {
	return f.cart, nil
}

func (f *fakeCartService) Decrement(ctx context.Context, sessionID string, itemID int) (*cart.Cart, error) {
	return f.cart, nil
}

func (f *fakeCartService) RemoveLine(ctx context.Context, sessionID string, itemID int) (*cart.Cart, error) {
	return f.cart, nil
}

func (f *fakeCartService) Clear(ctx context.Context, sessionID string) (*cart.Cart, error) {
	return f.cart, nil
}

func testCart() *cart.Cart {
	return &cart.Cart{
		SessionID: "s1",
		Lines: []cart.Line{
			{ID: 1, Name: "Colorado Ski Adventure", Price: 649.00, Quantity: 2, AvailableTickets: 15},
			{ID: 2, Name: "Tropical Paradise Retreat", Price: 899.00, Quantity: 0, AvailableTickets: 8},
		},
	}
}

func newCheckout(taxRate float64) Service {
	return NewService(newMemDraftRepo(), &fakeCartService{cart: testCart()}, taxRate)
}

func TestShippingRequiresPaymentFirst(t *testing.T) {
	svc := newCheckout(0)
	ctx := context.Background()

	_, err := svc.SaveShipping(ctx, "s1", &ShippingDetails{Address: *validAddr()})
	if !errors.Is(err, ErrPaymentRequired) {
		t.Fatalf("expected ErrPaymentRequired, got %v", err)
	}
}

func TestPaymentThenShippingAdvancesSteps(t *testing.T) {
	svc := newCheckout(0)
	ctx := context.Background()

	state, err := svc.GetState(ctx, "s1")
	if err != nil {
		t.Fatalf("GetState failed: %v", err)
	}
	if state.CurrentStep() != StepPayment {
		t.Fatalf("expected payment step first, got %s", state.CurrentStep())
	}

	if errs, err := svc.SavePayment(ctx, "s1", validPayment()); err != nil || len(errs) != 0 {
		t.Fatalf("SavePayment failed: errs=%v err=%v", errs, err)
	}

	state, _ = svc.GetState(ctx, "s1")
	if state.CurrentStep() != StepShipping {
		t.Fatalf("expected shipping step after payment, got %s", state.CurrentStep())
	}

	if errs, err := svc.SaveShipping(ctx, "s1", &ShippingDetails{Address: *validAddr()}); err != nil || len(errs) != 0 {
		t.Fatalf("SaveShipping failed: errs=%v err=%v", errs, err)
	}

	state, _ = svc.GetState(ctx, "s1")
	if state.CurrentStep() != StepReview {
		t.Fatalf("expected review step after shipping, got %s", state.CurrentStep())
	}
}

func TestInvalidPaymentDoesNotAdvance(t *testing.T) {
	svc := newCheckout(0)
	ctx := context.Background()

	p := validPayment()
	p.CVV = "1"
	errs, err := svc.SavePayment(ctx, "s1", p)
	if err != nil {
		t.Fatalf("SavePayment errored: %v", err)
	}
	if len(errs) == 0 {
		t.Fatal("expected field errors")
	}

	state, _ := svc.GetState(ctx, "s1")
	if state.PaymentComplete() {
		t.Fatal("invalid payment must not be saved")
	}
}

func TestSameAsBillingCopiesVerbatim(t *testing.T) {
	svc := newCheckout(0)
	ctx := context.Background()

	if errs, err := svc.SavePayment(ctx, "s1", validPayment()); err != nil || len(errs) != 0 {
		t.Fatalf("SavePayment failed: errs=%v err=%v", errs, err)
	}

	errs, err := svc.SaveShipping(ctx, "s1", &ShippingDetails{SameAsBilling: true})
	if err != nil || len(errs) != 0 {
		t.Fatalf("SaveShipping failed: errs=%v err=%v", errs, err)
	}

	state, _ := svc.GetState(ctx, "s1")
	if state.Shipping.Address != *validAddr() {
		t.Errorf("expected shipping to equal billing, got %+v", state.Shipping.Address)
	}
	if !state.Shipping.SameAsBilling {
		t.Error("expected same_as_billing flag to persist")
	}
}

func TestSameAsBillingWithoutBillingAddress(t *testing.T) {
	svc := newCheckout(0)
	ctx := context.Background()

	p := validPayment()
	p.Billing = nil
	if errs, err := svc.SavePayment(ctx, "s1", p); err != nil || len(errs) != 0 {
		t.Fatalf("SavePayment failed: errs=%v err=%v", errs, err)
	}

	errs, err := svc.SaveShipping(ctx, "s1", &ShippingDetails{SameAsBilling: true})
	if err != nil {
		t.Fatalf("SaveShipping errored: %v", err)
	}
	if _, ok := errs["same_as_billing"]; !ok {
		t.Fatalf("expected same_as_billing error, got %v", errs)
	}
}

func TestHandEditedShippingClearsShortcut(t *testing.T) {
	svc := newCheckout(0)
	ctx := context.Background()

	if errs, err := svc.SavePayment(ctx, "s1", validPayment()); err != nil || len(errs) != 0 {
		t.Fatalf("SavePayment failed: errs=%v err=%v", errs, err)
	}

	edited := &ShippingDetails{Address: *validAddr(), SameAsBilling: true}
	edited.City = "Boulder"
	// The service treats any hand-entered address as independent even if
	// the shortcut flag rode along on the request.
	if errs, err := svc.SaveShipping(ctx, "s1", &ShippingDetails{Address: edited.Address}); err != nil || len(errs) != 0 {
		t.Fatalf("SaveShipping failed: errs=%v err=%v", errs, err)
	}

	state, _ := svc.GetState(ctx, "s1")
	if state.Shipping.SameAsBilling {
		t.Error("hand-entered shipping must not carry the shortcut flag")
	}
	if state.Shipping.City != "Boulder" {
		t.Errorf("expected edited city, got %q", state.Shipping.City)
	}
}

func TestBillingEditInvalidatesStaleCopy(t *testing.T) {
	svc := newCheckout(0)
	ctx := context.Background()

	if errs, err := svc.SavePayment(ctx, "s1", validPayment()); err != nil || len(errs) != 0 {
		t.Fatalf("SavePayment failed: errs=%v err=%v", errs, err)
	}
	if errs, err := svc.SaveShipping(ctx, "s1", &ShippingDetails{SameAsBilling: true}); err != nil || len(errs) != 0 {
		t.Fatalf("SaveShipping failed: errs=%v err=%v", errs, err)
	}

	// Revisit payment with a different billing address
	p := validPayment()
	p.Billing.City = "Aspen"
	if errs, err := svc.SavePayment(ctx, "s1", p); err != nil || len(errs) != 0 {
		t.Fatalf("SavePayment failed: errs=%v err=%v", errs, err)
	}

	state, _ := svc.GetState(ctx, "s1")
	if state.Shipping.SameAsBilling {
		t.Error("stale billing copy must lose the shortcut flag")
	}
}

func TestReviewComputesTotals(t *testing.T) {
	svc := newCheckout(0.1)
	ctx := context.Background()

	if errs, err := svc.SavePayment(ctx, "s1", validPayment()); err != nil || len(errs) != 0 {
		t.Fatalf("SavePayment failed: errs=%v err=%v", errs, err)
	}
	if errs, err := svc.SaveShipping(ctx, "s1", &ShippingDetails{Address: *validAddr()}); err != nil || len(errs) != 0 {
		t.Fatalf("SaveShipping failed: errs=%v err=%v", errs, err)
	}

	summary, err := svc.Review(ctx, "s1")
	if err != nil {
		t.Fatalf("Review failed: %v", err)
	}

	if summary.Subtotal != 1298.00 {
		t.Errorf("expected subtotal 1298.00, got %f", summary.Subtotal)
	}
	wantTax := 1298.00 * 0.1
	if summary.Tax != wantTax {
		t.Errorf("expected tax %f, got %f", wantTax, summary.Tax)
	}
	if summary.Total != 1298.00+wantTax {
		t.Errorf("expected total %f, got %f", 1298.00+wantTax, summary.Total)
	}
	// Zero-quantity lines stay off the review
	if len(summary.Items) != 1 {
		t.Errorf("expected 1 review line, got %d", len(summary.Items))
	}
}

func TestReviewRequiresBothSteps(t *testing.T) {
	svc := newCheckout(0)
	ctx := context.Background()

	if _, err := svc.Review(ctx, "s1"); !errors.Is(err, ErrPaymentRequired) {
		t.Fatalf("expected ErrPaymentRequired, got %v", err)
	}

	if errs, err := svc.SavePayment(ctx, "s1", validPayment()); err != nil || len(errs) != 0 {
		t.Fatalf("SavePayment failed: errs=%v err=%v", errs, err)
	}
	if _, err := svc.Review(ctx, "s1"); !errors.Is(err, ErrShippingRequired) {
		t.Fatalf("expected ErrShippingRequired, got %v", err)
	}
}

func TestClearDraftDiscardsEverything(t *testing.T) {
	svc := newCheckout(0)
	ctx := context.Background()

	if errs, err := svc.SavePayment(ctx, "s1", validPayment()); err != nil || len(errs) != 0 {
		t.Fatalf("SavePayment failed: errs=%v err=%v", errs, err)
	}
	if err := svc.ClearDraft(ctx, "s1"); err != nil {
		t.Fatalf("ClearDraft failed: %v", err)
	}

	state, err := svc.GetState(ctx, "s1")
	if err != nil {
		t.Fatalf("GetState failed: %v", err)
	}
	if state.PaymentComplete() {
		t.Error("expected empty draft after clear")
	}
}
