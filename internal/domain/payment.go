package domain

import "time"

type PaymentMode string

const (
	PaymentModeCash  PaymentMode = "CASH"
	PaymentModeCard  PaymentMode = "CARD"
	PaymentModeOther PaymentMode = "OTHER"
)

func (m PaymentMode) IsValid() bool {
	switch m {
	case PaymentModeCash, PaymentModeCard, PaymentModeOther:
		return true
	}
	return false
}

// Immediate reports whether the mode settles at the moment it is taken.
// Only immediately-settled payments count toward a booking's paid amount.
func (m PaymentMode) Immediate() bool {
	return m == PaymentModeCash || m == PaymentModeCard
}

type PaymentEntryStatus string

const (
	PaymentEntryStatusPending   PaymentEntryStatus = "PENDING"
	PaymentEntryStatusCompleted PaymentEntryStatus = "COMPLETED"
)

// PaymentStatus is the derived settlement state of a booking, never set
// independently of PaidAmount and TotalAmount.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusPartial   PaymentStatus = "PARTIAL"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
)

// DerivePaymentStatus is the single source of truth for a booking's payment
// status: COMPLETED iff paid >= total, PENDING iff nothing paid, else PARTIAL.
func DerivePaymentStatus(paidAmount, totalAmount int64) PaymentStatus {
	switch {
	case paidAmount >= totalAmount:
		return PaymentStatusCompleted
	case paidAmount == 0:
		return PaymentStatusPending
	default:
		return PaymentStatusPartial
	}
}

// PaymentEntry is one append-only ledger record against a booking. Entries
// are never updated or deleted; the booking's PaidAmount is the sum of its
// COMPLETED entries.
type PaymentEntry struct {
	ID        int64              `json:"id"`
	Reference string             `json:"reference"`
	BookingID int64              `json:"booking_id"`
	Amount    int64              `json:"amount"`
	Mode      PaymentMode        `json:"mode"`
	Status    PaymentEntryStatus `json:"status"`
	Notes     string             `json:"notes,omitempty"`
	CreatedBy int64              `json:"created_by"`
	CreatedAt time.Time          `json:"created_at"`
}
