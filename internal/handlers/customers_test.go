package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"detailing-app-server/internal/models"
)

func validCustomerBody() map[string]string {
	return map[string]string{
		"firstName": "Jane",
		"lastName":  "Doe",
		"email":     "jane@x.com",
		"phone":     "555-0100",
	}
}

func TestCustomerCreateReadRoundtrip(t *testing.T) {
	router, db := newTestServer(t)
	cookie := login(t, router, db)

	created := createCustomer(t, router, cookie, validCustomerBody())
	if created.ID == 0 {
		t.Fatalf("expected non-zero customer id")
	}

	w := doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/customers/%d", created.ID), nil, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var got models.Customer
	decodeData(t, w, &got)
	if got.FirstName != "Jane" || got.LastName != "Doe" || got.Email != "jane@x.com" || got.Phone != "555-0100" {
		t.Fatalf("roundtrip mismatch: %+v", got)
	}
}

func TestCustomerCreateValidation(t *testing.T) {
	router, db := newTestServer(t)
	cookie := login(t, router, db)

	tests := []struct {
		name string
		body map[string]string
	}{
		{"MissingFirstName", map[string]string{"lastName": "Doe", "email": "jane@x.com"}},
		{"MissingLastName", map[string]string{"firstName": "Jane", "email": "jane@x.com"}},
		{"MissingEmail", map[string]string{"firstName": "Jane", "lastName": "Doe"}},
		{"MalformedEmail", map[string]string{"firstName": "Jane", "lastName": "Doe", "email": "not-an-email"}},
		{"BlankFirstName", map[string]string{"firstName": "   ", "lastName": "Doe", "email": "jane@x.com"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(t, router, http.MethodPost, "/api/customers", tc.body, cookie)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestCustomerDuplicateEmailConflict(t *testing.T) {
	router, db := newTestServer(t)
	cookie := login(t, router, db)

	createCustomer(t, router, cookie, validCustomerBody())

	w := doRequest(t, router, http.MethodPost, "/api/customers", validCustomerBody(), cookie)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCustomerListOrderedByID(t *testing.T) {
	router, db := newTestServer(t)
	cookie := login(t, router, db)

	first := createCustomer(t, router, cookie, map[string]string{
		"firstName": "Alice", "lastName": "A", "email": "alice@x.com",
	})
	second := createCustomer(t, router, cookie, map[string]string{
		"firstName": "Bob", "lastName": "B", "email": "bob@x.com",
	})

	w := doRequest(t, router, http.MethodGet, "/api/customers", nil, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var customers []models.Customer
	decodeData(t, w, &customers)
	if len(customers) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(customers))
	}
	if customers[0].ID != first.ID || customers[1].ID != second.ID {
		t.Fatalf("expected ascending id order, got %d then %d", customers[0].ID, customers[1].ID)
	}
}

func TestCustomerUpdate(t *testing.T) {
	router, db := newTestServer(t)
	cookie := login(t, router, db)

	created := createCustomer(t, router, cookie, validCustomerBody())

	body := map[string]string{
		"firstName": "Janet",
		"lastName":  "Doe",
		"email":     "janet@x.com",
		"phone":     "555-0199",
	}
	w := doRequest(t, router, http.MethodPut, fmt.Sprintf("/api/customers/%d", created.ID), body, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var got models.Customer
	decodeData(t, w, &got)
	if got.FirstName != "Janet" || got.Email != "janet@x.com" {
		t.Fatalf("update not applied: %+v", got)
	}

	// Unknown id
	w = doRequest(t, router, http.MethodPut, "/api/customers/9999", body, cookie)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestCustomerDeleteIdempotentNotFound(t *testing.T) {
	router, db := newTestServer(t)
	cookie := login(t, router, db)

	created := createCustomer(t, router, cookie, validCustomerBody())
	path := fmt.Sprintf("/api/customers/%d", created.ID)

	w := doRequest(t, router, http.MethodDelete, path, nil, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// A second delete of the same id simply 404s.
	w = doRequest(t, router, http.MethodDelete, path, nil, cookie)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on repeat delete, got %d", w.Code)
	}

	w = doRequest(t, router, http.MethodGet, path, nil, cookie)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}
}

func TestCustomerDeleteRestrictedWithAppointments(t *testing.T) {
	router, db := newTestServer(t)
	cookie := login(t, router, db)

	created := createCustomer(t, router, cookie, validCustomerBody())

	w := doRequest(t, router, http.MethodPost, "/api/appointments", map[string]any{
		"customerId":  created.ID,
		"dateTime":    "2026-09-01T10:00",
		"serviceType": "Full",
		"status":      "Scheduled",
	}, cookie)
	if w.Code != http.StatusCreated {
		t.Fatalf("create appointment failed: %d %s", w.Code, w.Body.String())
	}

	w = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/api/customers/%d", created.ID), nil, cookie)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 deleting customer with appointments, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCustomerAppointmentHistory(t *testing.T) {
	router, db := newTestServer(t)
	cookie := login(t, router, db)

	created := createCustomer(t, router, cookie, validCustomerBody())

	for _, dt := range []string{"2026-09-01T10:00", "2026-10-01T10:00"} {
		w := doRequest(t, router, http.MethodPost, "/api/appointments", map[string]any{
			"customerId":  created.ID,
			"dateTime":    dt,
			"serviceType": "Quick",
			"status":      "Scheduled",
		}, cookie)
		if w.Code != http.StatusCreated {
			t.Fatalf("create appointment failed: %d %s", w.Code, w.Body.String())
		}
	}

	w := doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/customers/%d/appointments", created.ID), nil, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var appointments []models.Appointment
	decodeData(t, w, &appointments)
	if len(appointments) != 2 {
		t.Fatalf("expected 2 appointments, got %d", len(appointments))
	}
	if !appointments[0].DateTime.After(appointments[1].DateTime) {
		t.Fatalf("expected date_time descending order")
	}

	// Unknown customer
	w = doRequest(t, router, http.MethodGet, "/api/customers/9999/appointments", nil, cookie)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
