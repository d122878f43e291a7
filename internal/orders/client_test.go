package orders

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testPayload() *OrderPayload {
	return &OrderPayload{
		Items: []PayloadItem{
			{ID: 1, Name: "Colorado Ski Adventure", Quantity: 2, Price: 649.00},
		},
		Payment: PaymentSection{
			CardHolderName: "Jordan Traveler",
			CardNumber:     "4111111111111111",
			ExpiryDate:     "11/27",
			CVV:            "123",
		},
		Shipping: ShippingSection{
			Name:         "Jordan Traveler",
			AddressLine1: "500 Summit Way",
			City:         "Denver",
			State:        "CO",
			Zip:          "80202",
		},
	}
}

func newStubServer(t *testing.T, status int, body interface{}) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/order-processing/order" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
}

func TestSubmitSuccess(t *testing.T) {
	server := newStubServer(t, http.StatusOK, map[string]interface{}{
		"confirmation_number": "A1B2C3D4E5",
		"items": []map[string]interface{}{
			{"id": 1, "name": "Colorado Ski Adventure", "quantity": 2, "price": 649.00},
		},
	})
	defer server.Close()

	submitter := NewSubmitter(server.URL, 5*time.Second)
	result, err := submitter.Submit(context.Background(), testPayload())
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if result.ConfirmationNumber != "A1B2C3D4E5" {
		t.Errorf("unexpected confirmation number %q", result.ConfirmationNumber)
	}
	if len(result.Items) != 1 || result.Items[0].Quantity != 2 {
		t.Errorf("unexpected confirmed items %+v", result.Items)
	}
}

func TestSubmitInsufficientInventory(t *testing.T) {
	server := newStubServer(t, http.StatusConflict, map[string]interface{}{
		"error": "Insufficient inventory",
		"items": []map[string]interface{}{
			{"id": 1, "name": "Colorado Ski Adventure", "requested": 20, "available": 15},
		},
	})
	defer server.Close()

	submitter := NewSubmitter(server.URL, 5*time.Second)
	_, err := submitter.Submit(context.Background(), testPayload())

	rejection, ok := AsRejection(err)
	if !ok {
		t.Fatalf("expected a Rejection, got %v", err)
	}
	if rejection.Kind != KindInsufficientInventory {
		t.Errorf("expected INSUFFICIENT_INVENTORY, got %s", rejection.Kind)
	}
	if len(rejection.Items) != 1 {
		t.Fatalf("expected 1 shortfall, got %d", len(rejection.Items))
	}
	shortfall := rejection.Items[0]
	if shortfall.Requested != 20 || shortfall.Available != 15 {
		t.Errorf("unexpected shortfall %+v", shortfall)
	}
}

func TestSubmitClassifiesStatuses(t *testing.T) {
	cases := []struct {
		status int
		kind   RejectionKind
	}{
		{http.StatusBadRequest, KindValidation},
		{http.StatusNotFound, KindNotFound},
		{http.StatusBadGateway, KindService},
		{http.StatusInternalServerError, KindService},
	}

	for _, tc := range cases {
		server := newStubServer(t, tc.status, map[string]string{"error": "boom"})
		submitter := NewSubmitter(server.URL, 5*time.Second)
		_, err := submitter.Submit(context.Background(), testPayload())
		server.Close()

		rejection, ok := AsRejection(err)
		if !ok {
			t.Fatalf("status %d: expected a Rejection, got %v", tc.status, err)
		}
		if rejection.Kind != tc.kind {
			t.Errorf("status %d: expected %s, got %s", tc.status, tc.kind, rejection.Kind)
		}
	}
}

func TestSubmitUnreachableServiceIsServiceError(t *testing.T) {
	submitter := NewSubmitter("http://127.0.0.1:1", 500*time.Millisecond)
	_, err := submitter.Submit(context.Background(), testPayload())

	rejection, ok := AsRejection(err)
	if !ok {
		t.Fatalf("expected a Rejection, got %v", err)
	}
	if rejection.Kind != KindService {
		t.Errorf("expected SERVICE_ERROR, got %s", rejection.Kind)
	}
}

func TestSubmitSendsWireFieldNames(t *testing.T) {
	var captured map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&captured)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"confirmation_number": "X", "items": []interface{}{},
		})
	}))
	defer server.Close()

	submitter := NewSubmitter(server.URL, 5*time.Second)
	if _, err := submitter.Submit(context.Background(), testPayload()); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	payment, _ := captured["payment"].(map[string]interface{})
	for _, field := range []string{"card_holder_name", "credit_card_number", "expir_date", "cvvCode"} {
		if _, ok := payment[field]; !ok {
			t.Errorf("payment section missing wire field %q: %v", field, payment)
		}
	}
	shipping, _ := captured["shipping"].(map[string]interface{})
	if _, ok := shipping["addressLine1"]; !ok {
		t.Errorf("shipping section missing addressLine1: %v", shipping)
	}
}
