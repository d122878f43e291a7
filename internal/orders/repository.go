package orders

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Repository persists confirmed orders for the history view.
type Repository interface {
	Create(ctx context.Context, order *Order) error
	GetByConfirmationNumber(ctx context.Context, confirmationNumber string) (*Order, error)
	GetBySession(ctx context.Context, sessionID string, limit int) ([]Order, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new order repository instance
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, order *Order) error {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order record: %w", err)
	}
	return nil
}

func (r *repository) GetByConfirmationNumber(ctx context.Context, confirmationNumber string) (*Order, error) {
	var order Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("confirmation_number = ?", confirmationNumber).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	return &order, nil
}

func (r *repository) GetBySession(ctx context.Context, sessionID string, limit int) ([]Order, error) {
	var results []Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load session orders: %w", err)
	}
	return results, nil
}
