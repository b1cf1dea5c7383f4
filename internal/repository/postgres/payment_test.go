package postgres

import (
	"context"
	"testing"
	"time"

	"rentdesk-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func testEntry() *domain.PaymentEntry {
	return &domain.PaymentEntry{
		Reference: "pay-1",
		BookingID: 7,
		Amount:    3000,
		Mode:      domain.PaymentModeCash,
		Status:    domain.PaymentEntryStatusCompleted,
		Notes:     "advance",
		CreatedBy: 2,
		CreatedAt: time.Now().UTC(),
	}
}

func TestPaymentRepository_Record(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewPaymentRepository(db)
	ctx := context.Background()

	t.Run("CompletedEntryUpdatesAggregates", func(t *testing.T) {
		e := testEntry()

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO payment_entries").
			WithArgs(e.Reference, e.BookingID, e.Amount, string(e.Mode),
				string(e.Status), e.Notes, e.CreatedBy, e.CreatedAt).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
		mock.ExpectQuery("UPDATE bookings SET").
			WithArgs(e.Amount, sqlmock.AnyArg(), e.BookingID).
			WillReturnRows(sqlmock.NewRows([]string{"paid_amount", "payment_status"}).AddRow(3000, "PARTIAL"))
		mock.ExpectCommit()

		paid, status, err := repo.Record(ctx, e)
		assert.NoError(t, err)
		assert.Equal(t, int64(11), e.ID)
		assert.Equal(t, int64(3000), paid)
		assert.Equal(t, domain.PaymentStatusPartial, status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("PendingEntryLeavesPaidAmount", func(t *testing.T) {
		e := testEntry()
		e.Mode = domain.PaymentModeOther
		e.Status = domain.PaymentEntryStatusPending

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO payment_entries").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))
		// Delta is zero for a deferred settlement.
		mock.ExpectQuery("UPDATE bookings SET").
			WithArgs(int64(0), sqlmock.AnyArg(), e.BookingID).
			WillReturnRows(sqlmock.NewRows([]string{"paid_amount", "payment_status"}).AddRow(0, "PENDING"))
		mock.ExpectCommit()

		paid, status, err := repo.Record(ctx, e)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), paid)
		assert.Equal(t, domain.PaymentStatusPending, status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("MissingBookingRollsBack", func(t *testing.T) {
		e := testEntry()

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO payment_entries").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(13))
		mock.ExpectQuery("UPDATE bookings SET").
			WillReturnRows(sqlmock.NewRows([]string{"paid_amount", "payment_status"}))
		mock.ExpectRollback()

		_, _, err := repo.Record(ctx, e)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPaymentRepository_ListByBooking(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewPaymentRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "reference", "booking_id", "amount", "mode", "status", "notes", "created_by", "created_at"}).
		AddRow(1, "pay-1", 7, 3000, "CASH", "COMPLETED", "", 2, now).
		AddRow(2, "pay-2", 7, 4000, "OTHER", "PENDING", "", 2, now)

	mock.ExpectQuery("SELECT (.+) FROM payment_entries WHERE booking_id = \\$1").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	entries, err := repo.ListByBooking(ctx, 7)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, domain.PaymentEntryStatusCompleted, entries[0].Status)
	assert.Equal(t, domain.PaymentModeOther, entries[1].Mode)
}

func TestPaymentRepository_SumCompletedByBooking(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewPaymentRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(amount\\), 0\\) FROM payment_entries").
		WithArgs(int64(7), string(domain.PaymentEntryStatusCompleted)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(7000))

	sum, err := repo.SumCompletedByBooking(ctx, 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(7000), sum)
}

func TestPaymentRepository_ListUnledgered(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewPaymentRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "reference", "paid_amount", "created_by", "created_at"}).
		AddRow(1, "ref-1", 5000, 2, now).
		AddRow(2, "ref-2", 1200, 3, now)

	mock.ExpectQuery("SELECT (.+) FROM bookings b").
		WillReturnRows(rows)

	bookings, err := repo.ListUnledgered(ctx)
	assert.NoError(t, err)
	assert.Len(t, bookings, 2)
	assert.Equal(t, int64(5000), bookings[0].PaidAmount)
}

func TestPaymentRepository_CreateIfAbsent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewPaymentRepository(db)
	ctx := context.Background()

	t.Run("Inserted", func(t *testing.T) {
		e := testEntry()
		mock.ExpectExec("INSERT INTO payment_entries").
			WithArgs(e.Reference, e.BookingID, e.Amount, string(e.Mode),
				string(e.Status), e.Notes, e.CreatedBy, e.CreatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		inserted, err := repo.CreateIfAbsent(ctx, e)
		assert.NoError(t, err)
		assert.True(t, inserted)
	})

	t.Run("EntryAlreadyExists", func(t *testing.T) {
		e := testEntry()
		mock.ExpectExec("INSERT INTO payment_entries").
			WillReturnResult(sqlmock.NewResult(0, 0))

		inserted, err := repo.CreateIfAbsent(ctx, e)
		assert.NoError(t, err)
		assert.False(t, inserted)
	})
}
