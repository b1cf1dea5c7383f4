package service

import (
	"context"
	"time"

	"rentdesk-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Booking), args.Get(1).(int32), args.Error(2)
}
func (m *MockBookingRepo) UpdateStatus(ctx context.Context, id int64, from, to domain.BookingStatus) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}
func (m *MockBookingRepo) Complete(ctx context.Context, b *domain.Booking, entry *domain.PaymentEntry) error {
	args := m.Called(ctx, b, entry)
	return args.Error(0)
}
func (m *MockBookingRepo) ListInUsePastReturn(ctx context.Context, asOf time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

// MockPaymentRepo
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Record(ctx context.Context, e *domain.PaymentEntry) (int64, domain.PaymentStatus, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(int64), args.Get(1).(domain.PaymentStatus), args.Error(2)
}
func (m *MockPaymentRepo) ListByBooking(ctx context.Context, bookingID int64) ([]domain.PaymentEntry, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentEntry), args.Error(1)
}
func (m *MockPaymentRepo) SumCompletedByBooking(ctx context.Context, bookingID int64) (int64, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockPaymentRepo) ListUnledgered(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockPaymentRepo) CreateIfAbsent(ctx context.Context, e *domain.PaymentEntry) (bool, error) {
	args := m.Called(ctx, e)
	return args.Bool(0), args.Error(1)
}

// MockProfileRepo
type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

// MockSettingsRepo
type MockSettingsRepo struct {
	mock.Mock
}

func (m *MockSettingsRepo) GetFeeSettings(ctx context.Context) (*domain.FeeSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FeeSettings), args.Error(1)
}

// MockGate allows or denies without touching a profile store.
type MockGate struct {
	mock.Mock
}

func (m *MockGate) Check(ctx context.Context, actorID int64, action domain.Action) Decision {
	args := m.Called(ctx, actorID, action)
	return args.Get(0).(Decision)
}

// MockNotifier records dispatched events synchronously.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) BookingCompleted(event domain.BookingCompletedEvent) {
	m.Called(event)
}
func (m *MockNotifier) BookingOverdue(booking domain.Booking) {
	m.Called(booking)
}
