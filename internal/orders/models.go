package orders

import (
	"time"

	"github.com/google/uuid"
)

// Order is the persisted history record of a confirmed order.
type Order struct {
	ID                 uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ConfirmationNumber string    `gorm:"unique;not null;index" json:"confirmation_number"`
	SessionID          string    `gorm:"type:varchar(64);index;not null" json:"session_id"`
	ItemCount          int       `gorm:"not null" json:"item_count"`
	Total              float64   `gorm:"not null" json:"total"`
	ShippingName       string    `gorm:"type:varchar(255)" json:"shipping_name"`
	ShippingCity       string    `gorm:"type:varchar(255)" json:"shipping_city"`
	ShippingState      string    `gorm:"type:varchar(64)" json:"shipping_state"`
	ShippingZip        string    `gorm:"type:varchar(16)" json:"shipping_zip"`
	CreatedAt          time.Time `json:"created_at"`

	// Relationships
	Items []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE;"`
}

// OrderItem is one confirmed line of a persisted order.
type OrderItem struct {
	ID       uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	OrderID  uuid.UUID `gorm:"type:uuid;index;not null" json:"order_id"`
	ItemID   int       `gorm:"not null" json:"item_id"`
	Name     string    `gorm:"type:varchar(255);not null" json:"name"`
	Quantity int       `gorm:"not null" json:"quantity"`
	Price    float64   `gorm:"not null" json:"price"`
}

// ConfirmedItem is one confirmed line as returned by the order-processing
// service and shown on the confirmation page.
type ConfirmedItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Confirmation is the session-scoped snapshot the confirmation view reads.
// It is stored separately from the live cart, which survives the purchase
// untouched.
type Confirmation struct {
	ConfirmationNumber string          `json:"confirmation_number"`
	Items              []ConfirmedItem `json:"items"`
	Total              float64         `json:"total"`
	PlacedAt           time.Time       `json:"placed_at"`
}
