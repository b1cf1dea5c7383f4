package domain

import "time"

// BookingCompletedEvent is the domain event emitted after a completion has
// been durably committed. It carries everything a notifier needs to render a
// message; delivery is fire-and-forget and never rolls back the transition.
type BookingCompletedEvent struct {
	BookingID        int64       `json:"booking_id"`
	BookingReference string      `json:"booking_reference"`
	CustomerName     string      `json:"customer_name"`
	CustomerPhone    string      `json:"customer_phone"`
	VehicleRef       string      `json:"vehicle_ref"`
	TotalFare        int64       `json:"total_fare"`
	DurationDays     int         `json:"duration_days"`
	PaymentMethod    PaymentMode `json:"payment_method"`
	CompletedAt      time.Time   `json:"completed_at"`
}
