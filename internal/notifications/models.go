package notifications

import (
	"time"
)

// OrderConfirmedEvent is published after the order-processing service
// confirms a purchase. Downstream workers (receipt mail, analytics) consume
// it; the purchase flow itself never waits on them.
type OrderConfirmedEvent struct {
	EventID            string    `json:"event_id"`
	ConfirmationNumber string    `json:"confirmation_number"`
	SessionID          string    `json:"session_id"`
	ItemCount          int       `json:"item_count"`
	Total              float64   `json:"total"`
	PlacedAt           time.Time `json:"placed_at"`
}
