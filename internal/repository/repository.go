package repository

import (
	"context"
	"time"

	"rentdesk-backend/internal/domain"
)

// BookingRepository provides transactional access to booking rows. Status
// mutations carry an optimistic precondition: the update commits only when
// the stored status still equals the expected pre-state, otherwise it fails
// with domain.ErrConflict and nothing changes.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, status string, page, pageSize int32) ([]domain.Booking, int32, error)

	// UpdateStatus transitions from -> to under the optimistic guard.
	UpdateStatus(ctx context.Context, id int64, from, to domain.BookingStatus) error

	// Complete commits the completion in one transaction: the guarded status
	// update carrying the recomputed fees, plus the settlement ledger entry
	// when one was taken at return. An immediately-settled entry's amount is
	// folded into paid_amount as an increment against the stored row, never
	// as an absolute write, and payment status is re-derived there; the
	// committed aggregates are scanned back into b.
	Complete(ctx context.Context, b *domain.Booking, entry *domain.PaymentEntry) error

	// ListInUsePastReturn returns IN_USE bookings whose scheduled dropoff
	// instant lies before asOf.
	ListInUsePastReturn(ctx context.Context, asOf time.Time) ([]domain.Booking, error)
}

// PaymentRepository provides append-only access to the payment ledger.
// Entries are independent inserts; no mutual exclusion is needed beyond the
// store's single-statement atomicity.
type PaymentRepository interface {
	// Record inserts the entry and, when it settles immediately, folds its
	// amount into the booking's paid amount with the payment status
	// re-derived in the same transaction. Returns the updated aggregates.
	Record(ctx context.Context, e *domain.PaymentEntry) (paidAmount int64, status domain.PaymentStatus, err error)

	ListByBooking(ctx context.Context, bookingID int64) ([]domain.PaymentEntry, error)
	SumCompletedByBooking(ctx context.Context, bookingID int64) (int64, error)

	// ListUnledgered returns bookings with paidAmount > 0 and no ledger
	// entries at all.
	ListUnledgered(ctx context.Context) ([]domain.Booking, error)

	// CreateIfAbsent inserts the entry only if its booking still has zero
	// ledger entries, atomically in a single statement, and reports whether
	// a row was created. This is the reconciliation backfill primitive.
	CreateIfAbsent(ctx context.Context, e *domain.PaymentEntry) (bool, error)
}

// ProfileRepository resolves acting principals from the profile store.
type ProfileRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Profile, error)
}

// SettingsRepository supplies fee configuration. A missing row surfaces as
// domain.ErrNotFound; callers substitute domain.DefaultFeeSettings().
type SettingsRepository interface {
	GetFeeSettings(ctx context.Context) (*domain.FeeSettings, error)
}
