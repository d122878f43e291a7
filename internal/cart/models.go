package cart

import (
	"time"
)

// Line is the quantity selected for one catalog item. The cart holds exactly
// one line per catalog item; a line with quantity zero is an unselected slot,
// not a missing one.
type Line struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`

	// AvailableTickets is the availability snapshot the last clamp used.
	// It can go stale against concurrent sales by other sessions; the
	// order-processing service's 409 is the correctness backstop.
	AvailableTickets int `json:"available_tickets"`
}

// Cart is the ordered (by catalog order) collection of lines for one session.
type Cart struct {
	SessionID string    `json:"session_id"`
	Lines     []Line    `json:"lines"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Count is the sum of all line quantities, recomputed on every call.
func (c *Cart) Count() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

// Total is the sum of price x quantity over all lines, recomputed on every call.
func (c *Cart) Total() float64 {
	total := 0.0
	for _, line := range c.Lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// SelectedLines returns the lines with quantity > 0, in catalog order.
func (c *Cart) SelectedLines() []Line {
	selected := make([]Line, 0)
	for _, line := range c.Lines {
		if line.Quantity > 0 {
			selected = append(selected, line)
		}
	}
	return selected
}

// lineByID returns a pointer into Lines, or nil for an unknown id.
func (c *Cart) lineByID(itemID int) *Line {
	for i := range c.Lines {
		if c.Lines[i].ID == itemID {
			return &c.Lines[i]
		}
	}
	return nil
}
