package service

import (
	"context"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/logger"
	"rentdesk-backend/internal/repository"

	"github.com/google/uuid"
)

type paymentService struct {
	paymentRepo repository.PaymentRepository
	bookingRepo repository.BookingRepository
	gate        AuthorizationGate
}

func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	bookingRepo repository.BookingRepository,
	gate AuthorizationGate,
) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		gate:        gate,
	}
}

func (s *paymentService) RecordPayment(ctx context.Context, actorID, bookingID, amount int64, mode domain.PaymentMode, notes string) (*domain.PaymentEntry, error) {
	if decision := s.gate.Check(ctx, actorID, domain.ActionRecordPayment); !decision.Allowed {
		logger.Warn("Action denied", "actor_id", actorID, "action", domain.ActionRecordPayment, "reason", decision.Reason)
		return nil, domain.ErrUnauthorized
	}
	if amount <= 0 {
		return nil, domain.NewValidationError("amount", "must be positive")
	}
	if !mode.IsValid() {
		return nil, domain.NewValidationError("mode", "must be one of CASH, CARD, OTHER")
	}

	// Entries never exist without a valid booking.
	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	status := domain.PaymentEntryStatusPending
	if mode.Immediate() {
		status = domain.PaymentEntryStatusCompleted
	}
	entry := &domain.PaymentEntry{
		Reference: uuid.NewString(),
		BookingID: b.ID,
		Amount:    amount,
		Mode:      mode,
		Status:    status,
		Notes:     notes,
		CreatedBy: actorID,
	}

	paid, paymentStatus, err := s.paymentRepo.Record(ctx, entry)
	if err != nil {
		return nil, err
	}
	logger.Info("Payment recorded",
		"booking_id", b.ID,
		"entry_id", entry.ID,
		"amount", amount,
		"mode", mode,
		"paid_amount", paid,
		"payment_status", paymentStatus,
		"actor_id", actorID)
	return entry, nil
}

func (s *paymentService) ListPayments(ctx context.Context, bookingID int64) ([]domain.PaymentEntry, error) {
	if _, err := s.bookingRepo.GetByID(ctx, bookingID); err != nil {
		return nil, err
	}
	return s.paymentRepo.ListByBooking(ctx, bookingID)
}

// ReconcilePayments synthesizes one COMPLETED cash entry per booking whose
// paid amount has no backing ledger entries, timestamped from the booking's
// creation. The per-booking insert is guarded in a single statement, so the
// operation is idempotent and safe to run concurrently.
func (s *paymentService) ReconcilePayments(ctx context.Context, actorID int64) (int64, error) {
	if actorID != SystemActor {
		if decision := s.gate.Check(ctx, actorID, domain.ActionReconcilePayments); !decision.Allowed {
			logger.Warn("Action denied", "actor_id", actorID, "action", domain.ActionReconcilePayments, "reason", decision.Reason)
			return 0, domain.ErrUnauthorized
		}
	}

	bookings, err := s.paymentRepo.ListUnledgered(ctx)
	if err != nil {
		return 0, err
	}

	var created int64
	for i := range bookings {
		b := &bookings[i]
		entry := &domain.PaymentEntry{
			Reference: uuid.NewString(),
			BookingID: b.ID,
			Amount:    b.PaidAmount,
			Mode:      domain.PaymentModeCash,
			Status:    domain.PaymentEntryStatusCompleted,
			Notes:     "reconciliation backfill",
			CreatedBy: b.CreatedBy,
			CreatedAt: b.CreatedAt,
		}
		inserted, err := s.paymentRepo.CreateIfAbsent(ctx, entry)
		if err != nil {
			return created, err
		}
		if inserted {
			created++
			logger.Info("Backfilled ledger entry", "booking_id", b.ID, "amount", b.PaidAmount)
			continue
		}

		// Entries appeared between the listing and the guarded insert.
		// Cross-check that they account for the paid amount we saw.
		sum, err := s.paymentRepo.SumCompletedByBooking(ctx, b.ID)
		if err != nil {
			return created, err
		}
		if sum != b.PaidAmount {
			logger.Warn("Ledger sum does not match paid amount",
				"booking_id", b.ID, "paid_amount", b.PaidAmount, "entry_sum", sum)
		}
	}

	logger.Info("Payment reconciliation finished", "candidates", len(bookings), "created", created)
	return created, nil
}
