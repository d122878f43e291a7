package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const orderPath = "/order-processing/order"

// OrderPayload is the wire format of an order submission. The payment and
// shipping field names follow the order-processing service's contract.
type OrderPayload struct {
	Items    []PayloadItem   `json:"items"`
	Payment  PaymentSection  `json:"payment"`
	Shipping ShippingSection `json:"shipping"`
}

// PayloadItem is one non-zero cart line on the wire.
type PayloadItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// PaymentSection carries payment details on the wire.
type PaymentSection struct {
	CardHolderName string `json:"card_holder_name"`
	CardNumber     string `json:"credit_card_number"`
	ExpiryDate     string `json:"expir_date"`
	CVV            string `json:"cvvCode"`
}

// ShippingSection carries the shipping address on the wire.
type ShippingSection struct {
	Name         string `json:"name"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
}

// SubmitResponse is the confirmation payload on success.
type SubmitResponse struct {
	ConfirmationNumber string          `json:"confirmation_number"`
	Items              []ConfirmedItem `json:"items"`
}

// Submitter sends a complete order to the external order-processing service
// and classifies its answer. Every failure comes back as a *Rejection; there
// is no automatic retry at any layer.
type Submitter interface {
	Submit(ctx context.Context, payload *OrderPayload) (*SubmitResponse, error)
}

type httpSubmitter struct {
	baseURL string
	client  *http.Client
}

// NewSubmitter creates an order-processing service client
func NewSubmitter(baseURL string, timeout time.Duration) Submitter {
	return &httpSubmitter{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (s *httpSubmitter) Submit(ctx context.Context, payload *OrderPayload) (*SubmitResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode order payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+orderPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &Rejection{
			Kind:    KindService,
			Message: "Unable to reach the order-processing service. Please try again later.",
		}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Rejection{
			Kind:    KindService,
			Message: "Unable to read the order-processing response. Please try again later.",
		}
	}

	if resp.StatusCode == http.StatusOK {
		var result SubmitResponse
		if err := json.Unmarshal(respBody, &result); err != nil {
			return nil, &Rejection{
				Kind:    KindService,
				Message: "Order-processing service returned an unexpected payload.",
			}
		}
		return &result, nil
	}

	return nil, classify(resp.StatusCode, respBody)
}

// classify maps a non-2xx order-processing response to a Rejection.
func classify(status int, body []byte) *Rejection {
	var envelope struct {
		Error string      `json:"error"`
		Items []Shortfall `json:"items"`
	}
	// A non-JSON error body still classifies; only the message degrades
	_ = json.Unmarshal(body, &envelope)

	switch status {
	case http.StatusConflict:
		return &Rejection{
			Kind:    KindInsufficientInventory,
			Message: messageOr(envelope.Error, "Insufficient inventory"),
			Items:   envelope.Items,
		}
	case http.StatusBadRequest:
		return &Rejection{
			Kind:    KindValidation,
			Message: messageOr(envelope.Error, "Invalid order data"),
		}
	case http.StatusNotFound:
		return &Rejection{
			Kind:    KindNotFound,
			Message: messageOr(envelope.Error, "One or more items not found"),
		}
	case http.StatusBadGateway:
		return &Rejection{
			Kind:    KindService,
			Message: "Unable to process order. Please try again later.",
		}
	default:
		return &Rejection{
			Kind:    KindService,
			Message: messageOr(envelope.Error, fmt.Sprintf("Order-processing service error: status %d", status)),
		}
	}
}

func messageOr(message, fallback string) string {
	if message != "" {
		return message
	}
	return fallback
}
