package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/service"

	"github.com/gorilla/mux"
)

// BookingHandler exposes the booking lifecycle over HTTP.
type BookingHandler struct {
	bookings service.BookingService
}

func NewBookingHandler(bookings service.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

type createBookingRequest struct {
	CustomerName         string           `json:"customer_name"`
	CustomerPhone        string           `json:"customer_phone"`
	VehicleRef           string           `json:"vehicle_ref"`
	ScheduledStart       string           `json:"scheduled_start"` // yyyy-mm-dd
	ScheduledEnd         string           `json:"scheduled_end"`   // yyyy-mm-dd
	ScheduledDropoffTime domain.TimeOfDay `json:"scheduled_dropoff_time"`
	BookingAmount        int64            `json:"booking_amount"`
	SecurityDeposit      int64            `json:"security_deposit"`
	Notes                string           `json:"notes"`
}

func parseDate(field, value string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, domain.NewValidationError(field, "expected yyyy-mm-dd")
	}
	return d, nil
}

func bookingID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("id", "must be a positive integer")
	}
	return id, nil
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.NewValidationError("body", "invalid JSON"))
		return
	}

	start, err := parseDate("scheduled_start", req.ScheduledStart)
	if err != nil {
		writeError(w, err)
		return
	}
	end, err := parseDate("scheduled_end", req.ScheduledEnd)
	if err != nil {
		writeError(w, err)
		return
	}

	b, err := h.bookings.CreateBooking(r.Context(), actorFromContext(r.Context()), &service.CreateBookingInput{
		CustomerName:         req.CustomerName,
		CustomerPhone:        req.CustomerPhone,
		VehicleRef:           req.VehicleRef,
		ScheduledStart:       start,
		ScheduledEnd:         end,
		ScheduledDropoffTime: req.ScheduledDropoffTime,
		BookingAmount:        req.BookingAmount,
		SecurityDeposit:      req.SecurityDeposit,
		Notes:                req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := bookingID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	b, err := h.bookings.GetBooking(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

type listBookingsResponse struct {
	Bookings []domain.Booking `json:"bookings"`
	Total    int32            `json:"total"`
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.ParseInt(q.Get("page"), 10, 32)
	pageSize, _ := strconv.ParseInt(q.Get("page_size"), 10, 32)

	bookings, total, err := h.bookings.ListBookings(r.Context(), q.Get("status"), int32(page), int32(pageSize))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listBookingsResponse{Bookings: bookings, Total: total})
}

func (h *BookingHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	id, err := bookingID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	b, err := h.bookings.ConfirmBooking(r.Context(), actorFromContext(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *BookingHandler) Pickup(w http.ResponseWriter, r *http.Request) {
	id, err := bookingID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	b, err := h.bookings.StartBooking(r.Context(), actorFromContext(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

type completeBookingRequest struct {
	ActualReturnTime time.Time `json:"actual_return_time"`
	DamageCharges    int64     `json:"damage_charges"`
	PaymentAmount    int64     `json:"payment_amount"`
	PaymentMethod    string    `json:"payment_method"`
	Notes            string    `json:"notes"`
}

func (h *BookingHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, err := bookingID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req completeBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.NewValidationError("body", "invalid JSON"))
		return
	}

	b, err := h.bookings.CompleteBooking(r.Context(), actorFromContext(r.Context()), id, domain.ReturnFacts{
		ActualReturnTime: req.ActualReturnTime,
		DamageCharges:    req.DamageCharges,
		PaymentAmount:    req.PaymentAmount,
		PaymentMethod:    domain.PaymentMode(req.PaymentMethod),
		Notes:            req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := bookingID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.bookings.CancelBooking(r.Context(), actorFromContext(r.Context()), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
}
