package http

import (
	"encoding/json"
	"net/http"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/service"
)

// PaymentHandler exposes the payment ledger over HTTP.
type PaymentHandler struct {
	payments service.PaymentService
}

func NewPaymentHandler(payments service.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

type recordPaymentRequest struct {
	Amount int64  `json:"amount"`
	Mode   string `json:"mode"`
	Notes  string `json:"notes"`
}

func (h *PaymentHandler) Record(w http.ResponseWriter, r *http.Request) {
	id, err := bookingID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req recordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.NewValidationError("body", "invalid JSON"))
		return
	}

	entry, err := h.payments.RecordPayment(r.Context(), actorFromContext(r.Context()), id, req.Amount, domain.PaymentMode(req.Mode), req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

type listPaymentsResponse struct {
	Payments []domain.PaymentEntry `json:"payments"`
}

func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	id, err := bookingID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	entries, err := h.payments.ListPayments(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listPaymentsResponse{Payments: entries})
}

type reconcileResponse struct {
	Created int64 `json:"created"`
}

func (h *PaymentHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	created, err := h.payments.ReconcilePayments(r.Context(), actorFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reconcileResponse{Created: created})
}
