// Command devservices runs in-memory stand-ins for the external inventory
// and order-processing services, so the storefront API can be exercised
// locally without either deployment. Point INVENTORY_BASE_URL and
// ORDER_PROCESSING_BASE_URL at this process.
package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"getaway/internal/catalog"
)

func main() {
	port := os.Getenv("DEV_SERVICES_PORT")
	if port == "" {
		port = "5002"
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.Default()

	store := newFixtureStore()
	store.register(engine)

	fmt.Printf("🏝️  Dev inventory + order-processing running on :%s\n", port)
	if err := engine.Run(":" + port); err != nil {
		fmt.Fprintf(os.Stderr, "server failed: %v\n", err)
		os.Exit(1)
	}
}

// fixtureStore serves the built-in vacation catalog and processes orders
// against it, decrementing stock on each confirmed reservation.
type fixtureStore struct {
	mu    sync.Mutex
	items []catalog.Item
}

func newFixtureStore() *fixtureStore {
	return &fixtureStore{items: vacationPackages()}
}

func (s *fixtureStore) register(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	inventory := engine.Group("/inventory-management/inventory")
	{
		inventory.GET("", s.listItems)
		inventory.GET("/items", s.searchItems)
		inventory.GET("/items/:itemId", s.getItem)
	}

	engine.POST("/order-processing/order", s.processOrder)
}

func (s *fixtureStore) listItems(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.items)
}

func (s *fixtureStore) getItem(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if fmt.Sprint(s.items[i].ID) == c.Param("itemId") {
			c.JSON(http.StatusOK, s.items[i])
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
}

func (s *fixtureStore) searchItems(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name parameter is required"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	matches := make([]catalog.Item, 0)
	for _, item := range s.items {
		if strings.Contains(strings.ToLower(item.Name), strings.ToLower(name)) {
			matches = append(matches, item)
		}
	}
	c.JSON(http.StatusOK, matches)
}

type orderRequest struct {
	Items []struct {
		ID       int `json:"id"`
		Quantity int `json:"quantity"`
	} `json:"items"`
	Payment  map[string]interface{} `json:"payment"`
	Shipping map[string]interface{} `json:"shipping"`
}

func (s *fixtureStore) processOrder(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}
	if len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order format: items must be a non-empty list"})
		return
	}
	if req.Payment == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order payment details must be an object"})
		return
	}
	if req.Shipping == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order shipping details must be an object"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	type summary struct {
		ID       int     `json:"id"`
		Name     string  `json:"name"`
		Quantity int     `json:"quantity"`
		Price    float64 `json:"price"`
	}
	type shortfall struct {
		ID        int    `json:"id"`
		Name      string `json:"name"`
		Requested int    `json:"requested"`
		Available int    `json:"available"`
	}

	summaries := make([]summary, 0, len(req.Items))
	insufficient := make([]shortfall, 0)
	reserved := make(map[int]int)

	for _, line := range req.Items {
		if line.Quantity <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity to reserve must be greater than 0"})
			return
		}

		item := s.itemByID(line.ID)
		if item == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Item %d not found", line.ID)})
			return
		}

		if line.Quantity > item.AvailableTickets {
			insufficient = append(insufficient, shortfall{
				ID:        line.ID,
				Name:      item.Name,
				Requested: line.Quantity,
				Available: item.AvailableTickets,
			})
			continue
		}

		reserved[line.ID] = line.Quantity
		summaries = append(summaries, summary{
			ID:       line.ID,
			Name:     item.Name,
			Quantity: line.Quantity,
			Price:    item.Price,
		})
	}

	if len(insufficient) > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Insufficient inventory", "items": insufficient})
		return
	}

	for id, quantity := range reserved {
		if item := s.itemByID(id); item != nil {
			item.AvailableTickets -= quantity
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"confirmation_number": strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:10]),
		"items":               summaries,
	})
}

func (s *fixtureStore) itemByID(id int) *catalog.Item {
	for i := range s.items {
		if s.items[i].ID == id {
			return &s.items[i]
		}
	}
	return nil
}

// vacationPackages returns the built-in catalog fixture.
func vacationPackages() []catalog.Item {
	return []catalog.Item{
		{
			ID:            1,
			Name:          "Colorado Ski Adventure",
			Price:         649.00,
			Location:      "Breckenridge, CO",
			Duration:      "5 Days / 4 Nights",
			DepartureDate: "January 15, 2026",
			Images: []string{
				"/images/vacation1/breckenridge.jpeg",
				"/images/vacation1/cabin.jpeg",
				"/images/vacation1/hottub.jpg",
			},
			ShortDescription: "Luxury ski resort getaway with mountain views",
			Description:      "Experience the ultimate winter getaway at our premier Breckenridge ski resort.",
			Includes: []string{
				"Luxury cabin accommodation with hot tub",
				"All-day lift tickets for 4 days",
				"Premium ski/snowboard equipment rental",
				"Daily gourmet breakfast buffet",
				"Guided ski tours with certified instructors",
				"Access to resort spa and fitness center",
				"Evening après-ski activities",
			},
			Highlights: []string{
				"Ski-in/ski-out access",
				"Private hot tub with mountain views",
				"Within walking distance to Main Street",
				"Perfect for all skill levels",
			},
			AvailableTickets: 15,
		},
		{
			ID:            2,
			Name:          "Tropical Paradise Retreat",
			Price:         899.00,
			Location:      "Maui, Hawaii",
			Duration:      "7 Days / 6 Nights",
			DepartureDate: "March 22, 2026",
			Images: []string{
				"/images/vacation2/maui-beach.jpg",
				"/images/vacation2/maui-resort.jpg",
				"/images/vacation2/maui-snorkeling.webp",
			},
			ShortDescription: "Beachfront resort with water activities",
			Description:      "Escape to paradise with our exclusive Maui beach resort package.",
			Includes: []string{
				"Oceanfront luxury suite",
				"Daily breakfast and dinner",
				"Snorkeling equipment and lessons",
				"Sunset dinner cruise",
				"Traditional Hawaiian luau experience",
				"Spa treatment package",
				"Airport transfers",
			},
			Highlights: []string{
				"Private beach access",
				"Infinity pool overlooking ocean",
				"Championship golf course nearby",
				"Complimentary surfboard rentals",
			},
			AvailableTickets: 8,
		},
		{
			ID:            3,
			Name:          "European City Explorer",
			Price:         1299.00,
			Location:      "Paris, Rome & Barcelona",
			Duration:      "10 Days / 9 Nights",
			DepartureDate: "April 10, 2026",
			Images: []string{
				"/images/vacation3/paris.jpg",
				"/images/vacation3/rome.jpg",
				"/images/vacation3/barcelona.avif",
			},
			ShortDescription: "Multi-city tour through Europe's finest",
			Description:      "Discover three of Europe's most iconic cities in one unforgettable journey.",
			Includes: []string{
				"Boutique hotel accommodations",
				"High-speed rail passes between cities",
				"Guided tours of major attractions",
				"Skip-the-line museum passes",
				"Daily continental breakfast",
				"Welcome dinner in each city",
				"Professional tour guide services",
			},
			Highlights: []string{
				"Eiffel Tower night tour",
				"Vatican Museums private viewing",
				"Sagrada Familia priority access",
				"Local food tasting experiences",
			},
			AvailableTickets: 12,
		},
		{
			ID:            4,
			Name:          "African Safari Experience",
			Price:         2199.00,
			Location:      "Serengeti, Tanzania",
			Duration:      "8 Days / 7 Nights",
			DepartureDate: "June 5, 2026",
			Images: []string{
				"/images/vacation4/serengeti-national-park.jpg",
				"/images/vacation4/safari-lodge.jpg",
				"/images/vacation4/safari-hot-air-balloon.webp",
			},
			ShortDescription: "Once-in-a-lifetime wildlife safari",
			Description:      "Witness the Big Five and experience the majesty of the African wilderness.",
			Includes: []string{
				"Luxury safari lodge accommodation",
				"All meals and beverages",
				"Daily game drives with expert guides",
				"Visit to Maasai village",
				"Hot air balloon safari",
				"Professional wildlife photography session",
				"International and domestic flights",
			},
			Highlights: []string{
				"Witness the Great Migration",
				"Big Five wildlife viewing",
				"Sunset safari drives",
				"Star gazing experiences",
			},
			AvailableTickets: 6,
		},
		{
			ID:            5,
			Name:          "Alaskan Cruise & Glacier Tour",
			Price:         1599.00,
			Location:      "Alaska Inside Passage",
			Duration:      "9 Days / 8 Nights",
			DepartureDate: "July 18, 2026",
			Images: []string{
				"/images/vacation5/alaska-cruise-ship.jpg",
				"/images/vacation5/glacier-excursion.avif",
				"/images/vacation5/alaska-dog-sledding.png",
			},
			ShortDescription: "Cruise through stunning glacial landscapes",
			Description:      "Sail through Alaska's pristine waters and witness breathtaking glaciers up close.",
			Includes: []string{
				"Balcony stateroom on luxury cruise ship",
				"All meals and entertainment onboard",
				"Shore excursions at each port",
				"Glacier Bay National Park tour",
				"Whale watching expedition",
				"Dog sledding adventure",
				"Specialty dining package",
			},
			Highlights: []string{
				"Glacier calving experiences",
				"Wildlife spotting opportunities",
				"Northern lights viewing (seasonal)",
				"Gold Rush heritage tours",
			},
			AvailableTickets: 20,
		},
	}
}
