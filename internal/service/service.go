package service

import (
	"context"
	"time"

	"rentdesk-backend/internal/domain"
)

// SystemActor marks internally-scheduled work (cron jobs). It bypasses the
// authorization gate; it never originates from a request, and no request
// identity can produce a negative actor id.
const SystemActor int64 = -1

// CreateBookingInput carries the fields accepted at reservation time.
type CreateBookingInput struct {
	CustomerName         string
	CustomerPhone        string
	VehicleRef           string
	ScheduledStart       time.Time
	ScheduledEnd         time.Time
	ScheduledDropoffTime domain.TimeOfDay
	BookingAmount        int64
	SecurityDeposit      int64
	Notes                string
}

type BookingService interface {
	CreateBooking(ctx context.Context, actorID int64, in *CreateBookingInput) (*domain.Booking, error)
	GetBooking(ctx context.Context, id int64) (*domain.Booking, error)
	ListBookings(ctx context.Context, status string, page, pageSize int32) ([]domain.Booking, int32, error)

	// ConfirmBooking moves RESERVED -> CONFIRMED; StartBooking moves
	// CONFIRMED -> IN_USE. Both apply the optimistic status guard.
	ConfirmBooking(ctx context.Context, actorID, bookingID int64) (*domain.Booking, error)
	StartBooking(ctx context.Context, actorID, bookingID int64) (*domain.Booking, error)

	// CompleteBooking closes out an IN_USE booking from the observed return
	// facts: fees are computed, totals re-derived, any settlement taken at
	// return is ledgered, and the completion event is dispatched after
	// commit. At most one completion ever succeeds per booking.
	CompleteBooking(ctx context.Context, actorID, bookingID int64, facts domain.ReturnFacts) (*domain.Booking, error)

	CancelBooking(ctx context.Context, actorID, bookingID int64) error
}

type PaymentService interface {
	RecordPayment(ctx context.Context, actorID, bookingID, amount int64, mode domain.PaymentMode, notes string) (*domain.PaymentEntry, error)
	ListPayments(ctx context.Context, bookingID int64) ([]domain.PaymentEntry, error)

	// ReconcilePayments backfills one synthesized ledger entry for every
	// booking whose paid amount has no backing entries. Idempotent: a second
	// run over the same state creates nothing.
	ReconcilePayments(ctx context.Context, actorID int64) (int64, error)
}

// Decision is the tagged outcome of an authorization check. A Denied
// decision carries an internal reason for logging; callers surface only a
// generic insufficient-permission signal.
type Decision struct {
	Allowed bool
	Reason  string
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func Deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// AuthorizationGate decides whether an acting principal may perform an
// action. It must be consulted authoritatively at every mutation; any
// client-side use of the same answer is advisory only. Lookup failures deny.
type AuthorizationGate interface {
	Check(ctx context.Context, actorID int64, action domain.Action) Decision
}

// Notifier consumes domain events after the owning transaction has
// committed. Implementations dispatch asynchronously with their own timeout
// policy; a delivery failure is logged and never propagated.
type Notifier interface {
	BookingCompleted(event domain.BookingCompletedEvent)
	BookingOverdue(booking domain.Booking)
}

// EmailService renders and delivers operational notifications.
type EmailService interface {
	SendBookingCompletionNotification(ctx context.Context, event domain.BookingCompletedEvent) error
	SendOverdueReminder(ctx context.Context, booking domain.Booking) error
}
