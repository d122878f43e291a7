package cart

import (
	"context"
	"errors"
	"fmt"

	"getaway/internal/catalog"
)

// Service interface defines the contract for cart business logic
type Service interface {
	GetCart(ctx context.Context, sessionID string) (*Cart, error)
	SetQuantity(ctx context.Context, sessionID string, itemID, quantity int) (*Cart, error)
	Increment(ctx context.Context, sessionID string, itemID int) (*Cart, error)
	Decrement(ctx context.Context, sessionID string, itemID int) (*Cart, error)
	RemoveLine(ctx context.Context, sessionID string, itemID int) (*Cart, error)
	Clear(ctx context.Context, sessionID string) (*Cart, error)
}

// service implements the Service interface
type service struct {
	repo           Repository
	catalogService catalog.Service
}

// NewService creates a new cart service instance
func NewService(repo Repository, catalogService catalog.Service) Service {
	return &service{
		repo:           repo,
		catalogService: catalogService,
	}
}

// GetCart returns the session's cart, creating one line per catalog item
// (quantity zero) on first touch.
func (s *service) GetCart(ctx context.Context, sessionID string) (*Cart, error) {
	return s.loadCart(ctx, sessionID)
}

// SetQuantity replaces one line's quantity. An unknown item id is a silent
// no-op; any other quantity is clamped to [0, availableTickets] so the store
// never persists a value outside that range.
func (s *service) SetQuantity(ctx context.Context, sessionID string, itemID, quantity int) (*Cart, error) {
	return s.mutate(ctx, sessionID, func(line *Line) int {
		return quantity
	}, itemID)
}

// Increment raises one line's quantity by one, clamped to availability.
func (s *service) Increment(ctx context.Context, sessionID string, itemID int) (*Cart, error) {
	return s.mutate(ctx, sessionID, func(line *Line) int {
		return line.Quantity + 1
	}, itemID)
}

// Decrement lowers one line's quantity by one; below zero is a no-op.
func (s *service) Decrement(ctx context.Context, sessionID string, itemID int) (*Cart, error) {
	return s.mutate(ctx, sessionID, func(line *Line) int {
		return line.Quantity - 1
	}, itemID)
}

// RemoveLine zeroes one line's quantity. The catalog slot itself stays so the
// cart always has exactly one line per catalog item.
func (s *service) RemoveLine(ctx context.Context, sessionID string, itemID int) (*Cart, error) {
	return s.mutate(ctx, sessionID, func(line *Line) int {
		return 0
	}, itemID)
}

// Clear resets every quantity to zero.
func (s *service) Clear(ctx context.Context, sessionID string) (*Cart, error) {
	cart, err := s.loadCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	for i := range cart.Lines {
		cart.Lines[i].Quantity = 0
	}

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// mutate applies a quantity transition to one line and persists the updated
// snapshot. Unknown ids leave the cart untouched.
func (s *service) mutate(ctx context.Context, sessionID string, next func(*Line) int, itemID int) (*Cart, error) {
	cart, err := s.loadCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	line := cart.lineByID(itemID)
	if line == nil {
		// Silent no-op: the id does not match any catalog item
		return cart, nil
	}

	line.Quantity = clamp(next(line), 0, line.AvailableTickets)

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// loadCart fetches the persisted cart and reconciles it with the current
// catalog snapshot: missing slots are added, dropped items removed, and
// quantities re-clamped against refreshed availability. Line count equals
// catalog size at all times after initialization.
func (s *service) loadCart(ctx context.Context, sessionID string) (*Cart, error) {
	items, err := s.catalogService.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog unavailable: %w", err)
	}

	cart, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, ErrCartNotFound) {
			return nil, err
		}
		cart = &Cart{SessionID: sessionID}
	}

	previous := make(map[int]int, len(cart.Lines))
	for _, line := range cart.Lines {
		previous[line.ID] = line.Quantity
	}

	lines := make([]Line, 0, len(items))
	for _, item := range items {
		lines = append(lines, Line{
			ID:               item.ID,
			Name:             item.Name,
			Price:            item.Price,
			Quantity:         clamp(previous[item.ID], 0, item.AvailableTickets),
			AvailableTickets: item.AvailableTickets,
		})
	}
	cart.Lines = lines

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
