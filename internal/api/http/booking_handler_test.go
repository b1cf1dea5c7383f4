package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/security"
	"rentdesk-backend/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// newRequest builds an authenticated request carrying actor 2 and the mux
// vars the handlers expect.
func newRequest(method, target, body string, vars map[string]string) *http.Request {
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	claims := &security.UserClaims{UserID: 2}
	r = r.WithContext(context.WithValue(r.Context(), claimsKey, claims))
	if vars != nil {
		r = mux.SetURLVars(r, vars)
	}
	return r
}

func TestBookingHandler_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockBookingService)
		handler := NewBookingHandler(svc)

		svc.On("CreateBooking", mock.Anything, int64(2), mock.AnythingOfType("*service.CreateBookingInput")).
			Return(&domain.Booking{ID: 7, Status: domain.BookingStatusReserved, TotalAmount: 7000}, nil)

		body := `{
			"customer_name": "Asha Verma",
			"scheduled_start": "2024-03-08",
			"scheduled_end": "2024-03-10",
			"scheduled_dropoff_time": "10:00",
			"booking_amount": 5000,
			"security_deposit": 2000
		}`
		w := httptest.NewRecorder()
		handler.Create(w, newRequest("POST", "/api/v1/bookings", body, nil))

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp struct {
			Data domain.Booking `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(7), resp.Data.ID)

		in := svc.Calls[0].Arguments.Get(2).(*service.CreateBookingInput)
		assert.Equal(t, time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC), in.ScheduledStart)
		assert.Equal(t, domain.TimeOfDay{Hour: 10}, in.ScheduledDropoffTime)
	})

	t.Run("BadDate", func(t *testing.T) {
		svc := new(MockBookingService)
		handler := NewBookingHandler(svc)

		body := `{"customer_name": "x", "scheduled_start": "08/03/2024", "scheduled_end": "2024-03-10"}`
		w := httptest.NewRecorder()
		handler.Create(w, newRequest("POST", "/api/v1/bookings", body, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestBookingHandler_Get(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		svc := new(MockBookingService)
		handler := NewBookingHandler(svc)
		svc.On("GetBooking", mock.Anything, int64(404)).Return(nil, domain.ErrNotFound)

		w := httptest.NewRecorder()
		handler.Get(w, newRequest("GET", "/api/v1/bookings/404", "", map[string]string{"id": "404"}))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("BadID", func(t *testing.T) {
		svc := new(MockBookingService)
		handler := NewBookingHandler(svc)

		w := httptest.NewRecorder()
		handler.Get(w, newRequest("GET", "/api/v1/bookings/abc", "", map[string]string{"id": "abc"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBookingHandler_Complete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockBookingService)
		handler := NewBookingHandler(svc)

		svc.On("CompleteBooking", mock.Anything, int64(2), int64(7), mock.AnythingOfType("domain.ReturnFacts")).
			Return(&domain.Booking{ID: 7, Status: domain.BookingStatusCompleted, TotalAmount: 9500}, nil)

		body := `{
			"actual_return_time": "2024-03-11T13:00:00Z",
			"damage_charges": 500,
			"payment_amount": 9500,
			"payment_method": "CASH"
		}`
		w := httptest.NewRecorder()
		handler.Complete(w, newRequest("POST", "/api/v1/bookings/7/complete", body, map[string]string{"id": "7"}))

		assert.Equal(t, http.StatusOK, w.Code)
		facts := svc.Calls[0].Arguments.Get(3).(domain.ReturnFacts)
		assert.Equal(t, domain.PaymentModeCash, facts.PaymentMethod)
		assert.Equal(t, int64(500), facts.DamageCharges)
	})

	t.Run("AlreadyCompleted", func(t *testing.T) {
		svc := new(MockBookingService)
		handler := NewBookingHandler(svc)
		svc.On("CompleteBooking", mock.Anything, int64(2), int64(7), mock.Anything).
			Return(nil, domain.ErrConflict)

		body := `{"actual_return_time": "2024-03-11T13:00:00Z"}`
		w := httptest.NewRecorder()
		handler.Complete(w, newRequest("POST", "/api/v1/bookings/7/complete", body, map[string]string{"id": "7"}))

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Forbidden", func(t *testing.T) {
		svc := new(MockBookingService)
		handler := NewBookingHandler(svc)
		svc.On("CompleteBooking", mock.Anything, int64(2), int64(7), mock.Anything).
			Return(nil, domain.ErrUnauthorized)

		body := `{"actual_return_time": "2024-03-11T13:00:00Z"}`
		w := httptest.NewRecorder()
		handler.Complete(w, newRequest("POST", "/api/v1/bookings/7/complete", body, map[string]string{"id": "7"}))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestPaymentHandler_Record(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockPaymentService)
		handler := NewPaymentHandler(svc)

		svc.On("RecordPayment", mock.Anything, int64(2), int64(7), int64(3000), domain.PaymentModeCash, "advance").
			Return(&domain.PaymentEntry{ID: 11, Amount: 3000, Status: domain.PaymentEntryStatusCompleted}, nil)

		body := `{"amount": 3000, "mode": "CASH", "notes": "advance"}`
		w := httptest.NewRecorder()
		handler.Record(w, newRequest("POST", "/api/v1/bookings/7/payments", body, map[string]string{"id": "7"}))

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("ValidationFailure", func(t *testing.T) {
		svc := new(MockPaymentService)
		handler := NewPaymentHandler(svc)
		svc.On("RecordPayment", mock.Anything, int64(2), int64(7), int64(0), domain.PaymentMode("CASH"), "").
			Return(nil, domain.NewValidationError("amount", "must be positive"))

		body := `{"amount": 0, "mode": "CASH"}`
		w := httptest.NewRecorder()
		handler.Record(w, newRequest("POST", "/api/v1/bookings/7/payments", body, map[string]string{"id": "7"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPaymentHandler_Reconcile(t *testing.T) {
	svc := new(MockPaymentService)
	handler := NewPaymentHandler(svc)
	svc.On("ReconcilePayments", mock.Anything, int64(2)).Return(int64(3), nil)

	w := httptest.NewRecorder()
	handler.Reconcile(w, newRequest("POST", "/api/v1/payments/reconcile", "", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data reconcileResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.Data.Created)
}
