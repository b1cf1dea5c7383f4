package http

import (
	"net/http"

	"rentdesk-backend/internal/security"
	"rentdesk-backend/internal/service"

	"github.com/gorilla/mux"
)

// NewRouter builds the HTTP surface: a public health endpoint and the
// authenticated booking and payment routes.
func NewRouter(bookings service.BookingService, payments service.PaymentService, tm security.TokenManager) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	bookingHandler := NewBookingHandler(bookings)
	paymentHandler := NewPaymentHandler(payments)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(AuthMiddleware(tm))

	api.HandleFunc("/bookings", bookingHandler.Create).Methods("POST")
	api.HandleFunc("/bookings", bookingHandler.List).Methods("GET")
	api.HandleFunc("/bookings/{id}", bookingHandler.Get).Methods("GET")
	api.HandleFunc("/bookings/{id}/confirm", bookingHandler.Confirm).Methods("POST")
	api.HandleFunc("/bookings/{id}/pickup", bookingHandler.Pickup).Methods("POST")
	api.HandleFunc("/bookings/{id}/complete", bookingHandler.Complete).Methods("POST")
	api.HandleFunc("/bookings/{id}/cancel", bookingHandler.Cancel).Methods("POST")

	api.HandleFunc("/bookings/{id}/payments", paymentHandler.Record).Methods("POST")
	api.HandleFunc("/bookings/{id}/payments", paymentHandler.List).Methods("GET")
	api.HandleFunc("/payments/reconcile", paymentHandler.Reconcile).Methods("POST")

	return router
}
