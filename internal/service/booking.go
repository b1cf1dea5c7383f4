package service

import (
	"context"
	"errors"
	"time"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/logger"
	"rentdesk-backend/internal/repository"
	"rentdesk-backend/internal/utils"

	"github.com/google/uuid"
)

type bookingService struct {
	bookingRepo  repository.BookingRepository
	settingsRepo repository.SettingsRepository
	gate         AuthorizationGate
	notifier     Notifier
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	settingsRepo repository.SettingsRepository,
	gate AuthorizationGate,
	notifier Notifier,
) BookingService {
	return &bookingService{
		bookingRepo:  bookingRepo,
		settingsRepo: settingsRepo,
		gate:         gate,
		notifier:     notifier,
	}
}

func (s *bookingService) authorize(ctx context.Context, actorID int64, action domain.Action) error {
	decision := s.gate.Check(ctx, actorID, action)
	if !decision.Allowed {
		logger.Warn("Action denied", "actor_id", actorID, "action", action, "reason", decision.Reason)
		return domain.ErrUnauthorized
	}
	return nil
}

func (s *bookingService) CreateBooking(ctx context.Context, actorID int64, in *CreateBookingInput) (*domain.Booking, error) {
	if err := s.authorize(ctx, actorID, domain.ActionCreateBooking); err != nil {
		return nil, err
	}
	if in.CustomerName == "" {
		return nil, domain.NewValidationError("customer_name", "is required")
	}
	if in.ScheduledStart.IsZero() || in.ScheduledEnd.IsZero() {
		return nil, domain.NewValidationError("scheduled_start", "start and end dates are required")
	}
	if in.ScheduledEnd.Before(in.ScheduledStart) {
		return nil, domain.NewValidationError("scheduled_end", "must not precede scheduled_start")
	}
	if in.BookingAmount < 0 {
		return nil, domain.NewValidationError("booking_amount", "must be non-negative")
	}
	if in.SecurityDeposit < 0 {
		return nil, domain.NewValidationError("security_deposit", "must be non-negative")
	}

	b := &domain.Booking{
		Reference:            uuid.NewString(),
		CustomerName:         in.CustomerName,
		CustomerPhone:        in.CustomerPhone,
		VehicleRef:           in.VehicleRef,
		ScheduledStart:       in.ScheduledStart,
		ScheduledEnd:         in.ScheduledEnd,
		ScheduledDropoffTime: in.ScheduledDropoffTime,
		BookingAmount:        in.BookingAmount,
		SecurityDeposit:      in.SecurityDeposit,
		Status:               domain.BookingStatusReserved,
		Notes:                in.Notes,
		CreatedBy:            actorID,
	}
	b.RecomputeTotal()
	b.PaymentStatus = domain.DerivePaymentStatus(b.PaidAmount, b.TotalAmount)

	if err := s.bookingRepo.Create(ctx, b); err != nil {
		return nil, err
	}
	logger.Info("Booking created", "booking_id", b.ID, "reference", b.Reference, "actor_id", actorID)
	return b, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *bookingService) ListBookings(ctx context.Context, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	return s.bookingRepo.List(ctx, status, page, pageSize)
}

// transition applies a guarded single-step status change shared by the
// confirm and pickup operations.
func (s *bookingService) transition(ctx context.Context, actorID, bookingID int64, action domain.Action, from, to domain.BookingStatus) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status != from || !b.Status.CanTransitionTo(to) {
		return nil, domain.ErrConflict
	}
	if err := s.authorize(ctx, actorID, action); err != nil {
		return nil, err
	}
	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, from, to); err != nil {
		return nil, err
	}
	b.Status = to
	logger.Info("Booking transitioned", "booking_id", bookingID, "from", from, "to", to, "actor_id", actorID)
	return b, nil
}

func (s *bookingService) ConfirmBooking(ctx context.Context, actorID, bookingID int64) (*domain.Booking, error) {
	return s.transition(ctx, actorID, bookingID, domain.ActionConfirmBooking, domain.BookingStatusReserved, domain.BookingStatusConfirmed)
}

func (s *bookingService) StartBooking(ctx context.Context, actorID, bookingID int64) (*domain.Booking, error) {
	return s.transition(ctx, actorID, bookingID, domain.ActionStartBooking, domain.BookingStatusConfirmed, domain.BookingStatusInUse)
}

func validateReturnFacts(facts *domain.ReturnFacts) error {
	if facts.ActualReturnTime.IsZero() {
		return domain.NewValidationError("actual_return_time", "is required")
	}
	if facts.DamageCharges < 0 {
		return domain.NewValidationError("damage_charges", "must be non-negative")
	}
	if facts.PaymentAmount < 0 {
		return domain.NewValidationError("payment_amount", "must be non-negative")
	}
	if facts.PaymentAmount > 0 && !facts.PaymentMethod.IsValid() {
		return domain.NewValidationError("payment_method", "must be one of CASH, CARD, OTHER")
	}
	return nil
}

func (s *bookingService) CompleteBooking(ctx context.Context, actorID, bookingID int64, facts domain.ReturnFacts) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !b.Status.CanTransitionTo(domain.BookingStatusCompleted) {
		return nil, domain.ErrConflict
	}
	if err := s.authorize(ctx, actorID, domain.ActionCompleteBooking); err != nil {
		return nil, err
	}
	if err := validateReturnFacts(&facts); err != nil {
		return nil, err
	}

	settings := s.currentFeeSettings(ctx)
	fees := utils.ComputeFees(b.ScheduledEnd, b.ScheduledDropoffTime, facts.ActualReturnTime, settings)

	b.LateFee = fees.LateFee
	b.ExtensionFee = fees.ExtensionFee
	b.DamageCharges = facts.DamageCharges
	b.ActualReturnTime = &facts.ActualReturnTime
	b.RecomputeTotal()

	var entry *domain.PaymentEntry
	now := time.Now().UTC()
	if facts.PaymentAmount > 0 {
		status := domain.PaymentEntryStatusPending
		if facts.PaymentMethod.Immediate() {
			status = domain.PaymentEntryStatusCompleted
		}
		entry = &domain.PaymentEntry{
			Reference: uuid.NewString(),
			BookingID: b.ID,
			Amount:    facts.PaymentAmount,
			Mode:      facts.PaymentMethod,
			Status:    status,
			Notes:     facts.Notes,
			CreatedBy: actorID,
			CreatedAt: now,
		}
	}

	if facts.Notes != "" {
		b.Notes = facts.Notes
	}
	b.Status = domain.BookingStatusCompleted
	b.CompletedBy = &actorID
	b.CompletedAt = &now

	// The repository folds any immediate settlement into paid_amount against
	// the stored row and hands back the committed aggregates, so a payment
	// recorded concurrently with the return survives.
	if err := s.bookingRepo.Complete(ctx, b, entry); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.ErrConflict
		}
		return nil, err
	}

	logger.Info("Booking completed",
		"booking_id", b.ID,
		"hours_late", fees.HoursLate,
		"late_fee", b.LateFee,
		"extension_fee", b.ExtensionFee,
		"damage_charges", b.DamageCharges,
		"total_amount", b.TotalAmount,
		"payment_status", b.PaymentStatus,
		"actor_id", actorID)

	// Dispatched only after the transition is durably committed; delivery
	// failure never rolls it back.
	s.notifier.BookingCompleted(domain.BookingCompletedEvent{
		BookingID:        b.ID,
		BookingReference: b.Reference,
		CustomerName:     b.CustomerName,
		CustomerPhone:    b.CustomerPhone,
		VehicleRef:       b.VehicleRef,
		TotalFare:        b.TotalAmount,
		DurationDays:     b.DurationDays(),
		PaymentMethod:    facts.PaymentMethod,
		CompletedAt:      now,
	})

	return b, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, actorID, bookingID int64) error {
	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if !b.Status.CanTransitionTo(domain.BookingStatusCancelled) {
		return domain.ErrConflict
	}
	if err := s.authorize(ctx, actorID, domain.ActionCancelBooking); err != nil {
		return err
	}
	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, b.Status, domain.BookingStatusCancelled); err != nil {
		return err
	}
	logger.Info("Booking cancelled", "booking_id", bookingID, "actor_id", actorID)
	return nil
}

// currentFeeSettings loads fee configuration, substituting the documented
// defaults when the row is absent or the lookup fails.
func (s *bookingService) currentFeeSettings(ctx context.Context) domain.FeeSettings {
	settings, err := s.settingsRepo.GetFeeSettings(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Warn("Fee settings lookup failed, using defaults", "error", err)
		}
		return domain.DefaultFeeSettings()
	}
	return *settings
}
