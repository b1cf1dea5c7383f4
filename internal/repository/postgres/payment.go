package postgres

import (
	"context"
	"database/sql"
	"time"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/repository"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

// Record inserts the ledger entry and folds a COMPLETED entry's amount into
// the booking's paid_amount, re-deriving payment_status from the updated
// aggregate inside the same statement so concurrent records stay consistent.
// PENDING entries leave the aggregates untouched.
func (r *paymentRepository) Record(ctx context.Context, e *domain.PaymentEntry) (int64, domain.PaymentStatus, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, "", err
	}
	defer tx.Rollback()

	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	insert := `INSERT INTO payment_entries (reference, booking_id, amount, mode, status, notes, created_by, created_at)
	           VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err = tx.QueryRowContext(ctx, insert,
		e.Reference, e.BookingID, e.Amount, e.Mode, e.Status, e.Notes, e.CreatedBy, e.CreatedAt,
	).Scan(&e.ID)
	if err != nil {
		return 0, "", err
	}

	delta := int64(0)
	if e.Status == domain.PaymentEntryStatusCompleted {
		delta = e.Amount
	}

	var paid int64
	var status domain.PaymentStatus
	update := `UPDATE bookings SET
	             paid_amount = paid_amount + $1,
	             payment_status = CASE
	               WHEN paid_amount + $1 >= total_amount THEN 'COMPLETED'
	               WHEN paid_amount + $1 = 0 THEN 'PENDING'
	               ELSE 'PARTIAL'
	             END,
	             updated_at = $2
	           WHERE id = $3
	           RETURNING paid_amount, payment_status`
	err = tx.QueryRowContext(ctx, update, delta, time.Now().UTC(), e.BookingID).Scan(&paid, &status)
	if err == sql.ErrNoRows {
		return 0, "", domain.ErrNotFound
	}
	if err != nil {
		return 0, "", err
	}

	if err := tx.Commit(); err != nil {
		return 0, "", err
	}
	return paid, status, nil
}

func (r *paymentRepository) ListByBooking(ctx context.Context, bookingID int64) ([]domain.PaymentEntry, error) {
	query := `SELECT id, reference, booking_id, amount, mode, status, notes, created_by, created_at
	          FROM payment_entries WHERE booking_id = $1 ORDER BY created_at ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.PaymentEntry
	for rows.Next() {
		var e domain.PaymentEntry
		if err := rows.Scan(&e.ID, &e.Reference, &e.BookingID, &e.Amount, &e.Mode, &e.Status, &e.Notes, &e.CreatedBy, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *paymentRepository) SumCompletedByBooking(ctx context.Context, bookingID int64) (int64, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM payment_entries WHERE booking_id = $1 AND status = $2`
	var sum int64
	err := r.db.QueryRowContext(ctx, query, bookingID, domain.PaymentEntryStatusCompleted).Scan(&sum)
	return sum, err
}

func (r *paymentRepository) ListUnledgered(ctx context.Context) ([]domain.Booking, error) {
	query := `SELECT id, reference, paid_amount, created_by, created_at FROM bookings b
	          WHERE b.paid_amount > 0
	            AND NOT EXISTS (SELECT 1 FROM payment_entries p WHERE p.booking_id = b.id)
	          ORDER BY b.id ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.Reference, &b.PaidAmount, &b.CreatedBy, &b.CreatedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// CreateIfAbsent inserts only when the booking still has zero ledger
// entries. The existence check and the insert run in one statement, so two
// concurrent backfills cannot both insert for the same booking.
func (r *paymentRepository) CreateIfAbsent(ctx context.Context, e *domain.PaymentEntry) (bool, error) {
	query := `INSERT INTO payment_entries (reference, booking_id, amount, mode, status, notes, created_by, created_at)
	          SELECT $1, $2, $3, $4, $5, $6, $7, $8
	          WHERE NOT EXISTS (SELECT 1 FROM payment_entries WHERE booking_id = $2)`
	res, err := r.db.ExecContext(ctx, query,
		e.Reference, e.BookingID, e.Amount, e.Mode, e.Status, e.Notes, e.CreatedBy, e.CreatedAt)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
