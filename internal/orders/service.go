package orders

import (
	"context"
	"time"

	"github.com/google/uuid"

	"getaway/internal/cart"
	"getaway/internal/catalog"
	"getaway/internal/checkout"
	"getaway/internal/notifications"
	"getaway/pkg/logger"
)

// Service interface defines the contract for order submission and lookup
type Service interface {
	Submit(ctx context.Context, sessionID string) (*Confirmation, error)
	GetConfirmation(ctx context.Context, sessionID string) (*Confirmation, error)
	GetOrder(ctx context.Context, confirmationNumber string) (*Order, error)
	GetSessionOrders(ctx context.Context, sessionID string) ([]Order, error)
}

// service implements the Service interface
type service struct {
	submitter       Submitter
	repo            Repository
	snapshots       SnapshotStore
	cartService     cart.Service
	checkoutService checkout.Service
	catalogService  catalog.Service
	producer        notifications.Producer
	log             *logger.Logger
}

// NewService creates a new order service instance
func NewService(
	submitter Submitter,
	repo Repository,
	snapshots SnapshotStore,
	cartService cart.Service,
	checkoutService checkout.Service,
	catalogService catalog.Service,
	producer notifications.Producer,
) Service {
	return &service{
		submitter:       submitter,
		repo:            repo,
		snapshots:       snapshots,
		cartService:     cartService,
		checkoutService: checkoutService,
		catalogService:  catalogService,
		producer:        producer,
		log:             logger.GetDefault(),
	}
}

// Submit assembles the session's cart and completed checkout draft into one
// order, sends it to the order-processing service and returns the resulting
// confirmation. Any rejection comes back classified and is never retried
// here. On success the draft is cleared; the cart is left untouched so a
// shopper returning to the catalog still sees their selections.
func (s *service) Submit(ctx context.Context, sessionID string) (*Confirmation, error) {
	draft, err := s.checkoutService.CompletedDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.cartService.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	lines := snapshot.SelectedLines()
	if len(lines) == 0 {
		return nil, &Rejection{
			Kind:    KindValidation,
			Message: "Cart is empty. Add items before placing an order.",
		}
	}

	payload := buildPayload(lines, draft)

	s.log.LogOrderSubmitted(ctx, sessionID, snapshot.Count(), snapshot.Total())

	result, err := s.submitter.Submit(ctx, payload)
	if err != nil {
		if rejection, ok := AsRejection(err); ok {
			s.log.LogOrderRejected(ctx, sessionID, string(rejection.Kind), rejection.Message)
		}
		return nil, err
	}

	confirmation := &Confirmation{
		ConfirmationNumber: result.ConfirmationNumber,
		Items:              result.Items,
		Total:              confirmedTotal(result.Items),
		PlacedAt:           time.Now().UTC(),
	}

	// The order is placed; everything below is bookkeeping and must not
	// turn a confirmed purchase into an error for the shopper.
	if err := s.snapshots.Save(ctx, sessionID, confirmation); err != nil {
		s.log.ErrorWithContext(ctx, "Failed to store confirmation snapshot", err, map[string]interface{}{
			"session_id":          sessionID,
			"confirmation_number": confirmation.ConfirmationNumber,
		})
	}

	if err := s.repo.Create(ctx, s.historyRecord(sessionID, draft, confirmation)); err != nil {
		s.log.ErrorWithContext(ctx, "Failed to persist order history record", err, map[string]interface{}{
			"session_id":          sessionID,
			"confirmation_number": confirmation.ConfirmationNumber,
		})
	}

	// Stock changed server-side; the next catalog read should refetch
	s.catalogService.InvalidateCache(ctx)

	event := &notifications.OrderConfirmedEvent{
		EventID:            uuid.New().String(),
		ConfirmationNumber: confirmation.ConfirmationNumber,
		SessionID:          sessionID,
		ItemCount:          confirmedCount(confirmation.Items),
		Total:              confirmation.Total,
		PlacedAt:           confirmation.PlacedAt,
	}
	if err := s.producer.PublishOrderConfirmed(ctx, event); err != nil {
		s.log.ErrorWithContext(ctx, "Failed to publish order event", err, map[string]interface{}{
			"confirmation_number": confirmation.ConfirmationNumber,
		})
	}

	if err := s.checkoutService.ClearDraft(ctx, sessionID); err != nil {
		s.log.ErrorWithContext(ctx, "Failed to clear checkout draft", err, map[string]interface{}{
			"session_id": sessionID,
		})
	}

	s.log.LogOrderConfirmed(ctx, sessionID, confirmation.ConfirmationNumber)
	return confirmation, nil
}

// GetConfirmation returns the session's latest confirmation snapshot.
func (s *service) GetConfirmation(ctx context.Context, sessionID string) (*Confirmation, error) {
	return s.snapshots.Get(ctx, sessionID)
}

// GetOrder looks up one persisted order by its confirmation number.
func (s *service) GetOrder(ctx context.Context, confirmationNumber string) (*Order, error) {
	return s.repo.GetByConfirmationNumber(ctx, confirmationNumber)
}

// GetSessionOrders returns the session's order history, newest first.
func (s *service) GetSessionOrders(ctx context.Context, sessionID string) ([]Order, error) {
	return s.repo.GetBySession(ctx, sessionID, 20)
}

// buildPayload maps the cart lines and checkout draft onto the
// order-processing wire format.
func buildPayload(lines []cart.Line, draft *checkout.Draft) *OrderPayload {
	items := make([]PayloadItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, PayloadItem{
			ID:       line.ID,
			Name:     line.Name,
			Quantity: line.Quantity,
			Price:    line.Price,
		})
	}

	return &OrderPayload{
		Items: items,
		Payment: PaymentSection{
			CardHolderName: draft.Payment.CardHolderName,
			CardNumber:     draft.Payment.CardNumber,
			ExpiryDate:     draft.Payment.ExpiryDate,
			CVV:            draft.Payment.CVV,
		},
		Shipping: ShippingSection{
			Name:         draft.Shipping.Name,
			AddressLine1: draft.Shipping.AddressLine1,
			AddressLine2: draft.Shipping.AddressLine2,
			City:         draft.Shipping.City,
			State:        draft.Shipping.State,
			Zip:          draft.Shipping.Zip,
		},
	}
}

// historyRecord maps a confirmation onto the persisted order model.
func (s *service) historyRecord(sessionID string, draft *checkout.Draft, confirmation *Confirmation) *Order {
	items := make([]OrderItem, 0, len(confirmation.Items))
	for _, item := range confirmation.Items {
		items = append(items, OrderItem{
			ItemID:   item.ID,
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	return &Order{
		ConfirmationNumber: confirmation.ConfirmationNumber,
		SessionID:          sessionID,
		ItemCount:          confirmedCount(confirmation.Items),
		Total:              confirmation.Total,
		ShippingName:       draft.Shipping.Name,
		ShippingCity:       draft.Shipping.City,
		ShippingState:      draft.Shipping.State,
		ShippingZip:        draft.Shipping.Zip,
		Items:              items,
	}
}

func confirmedTotal(items []ConfirmedItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

func confirmedCount(items []ConfirmedItem) int {
	var count int
	for _, item := range items {
		count += item.Quantity
	}
	return count
}
