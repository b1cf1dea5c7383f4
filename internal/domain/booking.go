package domain

import "time"

type BookingStatus string

const (
	BookingStatusReserved  BookingStatus = "RESERVED"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusInUse     BookingStatus = "IN_USE"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// IsTerminal reports whether no further transition is permitted from s.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// CanTransitionTo reports whether the forward transition s -> next is legal.
// Cancellation is allowed from any non-terminal state; all other transitions
// follow RESERVED -> CONFIRMED -> IN_USE -> COMPLETED strictly.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if next == BookingStatusCancelled {
		return true
	}
	switch s {
	case BookingStatusReserved:
		return next == BookingStatusConfirmed
	case BookingStatusConfirmed:
		return next == BookingStatusInUse
	case BookingStatusInUse:
		return next == BookingStatusCompleted
	}
	return false
}

// Booking is a rental reservation. All monetary amounts are integers in the
// smallest currency unit. TotalAmount and PaymentStatus are derived fields:
// TotalAmount = BookingAmount + SecurityDeposit + LateFee + ExtensionFee +
// DamageCharges, recomputed on completion, and PaymentStatus is always a
// function of PaidAmount vs TotalAmount (see DerivePaymentStatus).
type Booking struct {
	ID        int64  `json:"id"`
	Reference string `json:"reference"`

	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	VehicleRef    string `json:"vehicle_ref"`

	// ScheduledStart/ScheduledEnd are dates (midnight, UTC);
	// ScheduledDropoffTime is the time-of-day on ScheduledEnd the vehicle is
	// due back.
	ScheduledStart       time.Time  `json:"scheduled_start"`
	ScheduledEnd         time.Time  `json:"scheduled_end"`
	ScheduledDropoffTime TimeOfDay  `json:"scheduled_dropoff_time"`
	ActualReturnTime     *time.Time `json:"actual_return_time,omitempty"`

	BookingAmount   int64 `json:"booking_amount"`
	SecurityDeposit int64 `json:"security_deposit"`
	LateFee         int64 `json:"late_fee"`
	ExtensionFee    int64 `json:"extension_fee"`
	DamageCharges   int64 `json:"damage_charges"`
	TotalAmount     int64 `json:"total_amount"`
	PaidAmount      int64 `json:"paid_amount"`

	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	Notes         string        `json:"notes"`

	CreatedBy   int64      `json:"created_by"`
	CompletedBy *int64     `json:"completed_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// RecomputeTotal refreshes the derived TotalAmount from its parts.
func (b *Booking) RecomputeTotal() {
	b.TotalAmount = b.BookingAmount + b.SecurityDeposit + b.LateFee + b.ExtensionFee + b.DamageCharges
}

// DurationDays is the whole-day length of the scheduled rental period,
// minimum one day.
func (b *Booking) DurationDays() int {
	days := int(b.ScheduledEnd.Sub(b.ScheduledStart).Hours() / 24)
	if days < 1 {
		days = 1
	}
	return days
}

// ReturnFacts carries the observed facts supplied when a booking is
// completed at vehicle return.
type ReturnFacts struct {
	ActualReturnTime time.Time   `json:"actual_return_time"`
	DamageCharges    int64       `json:"damage_charges"`
	PaymentAmount    int64       `json:"payment_amount"`
	PaymentMethod    PaymentMode `json:"payment_method"`
	Notes            string      `json:"notes,omitempty"`
}
