package catalog

// Item is one purchasable vacation package as served by the external
// inventory service. Immutable during a session apart from server-driven
// availability changes.
type Item struct {
	ID               int      `json:"id"`
	Name             string   `json:"name"`
	Price            float64  `json:"price"`
	Location         string   `json:"location,omitempty"`
	Duration         string   `json:"duration,omitempty"`
	DepartureDate    string   `json:"departureDate,omitempty"`
	Images           []string `json:"images,omitempty"`
	ShortDescription string   `json:"shortDescription,omitempty"`
	Description      string   `json:"description,omitempty"`
	Includes         []string `json:"includes,omitempty"`
	Highlights       []string `json:"highlights,omitempty"`
	AvailableTickets int      `json:"availableTickets"`
}
