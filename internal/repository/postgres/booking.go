package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/repository"
)

const bookingColumns = `id, reference, customer_name, customer_phone, vehicle_ref,
	scheduled_start, scheduled_end, scheduled_dropoff_time, actual_return_time,
	booking_amount, security_deposit, late_fee, extension_fee, damage_charges,
	total_amount, paid_amount, status, payment_status, notes,
	created_by, completed_by, created_at, updated_at, completed_at`

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

func scanBooking(row interface{ Scan(...interface{}) error }) (*domain.Booking, error) {
	b := &domain.Booking{}
	err := row.Scan(&b.ID, &b.Reference, &b.CustomerName, &b.CustomerPhone, &b.VehicleRef,
		&b.ScheduledStart, &b.ScheduledEnd, &b.ScheduledDropoffTime, &b.ActualReturnTime,
		&b.BookingAmount, &b.SecurityDeposit, &b.LateFee, &b.ExtensionFee, &b.DamageCharges,
		&b.TotalAmount, &b.PaidAmount, &b.Status, &b.PaymentStatus, &b.Notes,
		&b.CreatedBy, &b.CompletedBy, &b.CreatedAt, &b.UpdatedAt, &b.CompletedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (reference, customer_name, customer_phone, vehicle_ref,
	            scheduled_start, scheduled_end, scheduled_dropoff_time,
	            booking_amount, security_deposit, total_amount, paid_amount,
	            status, payment_status, notes, created_by, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	          RETURNING id`
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now
	return r.db.QueryRowContext(ctx, query,
		b.Reference, b.CustomerName, b.CustomerPhone, b.VehicleRef,
		b.ScheduledStart, b.ScheduledEnd, b.ScheduledDropoffTime,
		b.BookingAmount, b.SecurityDeposit, b.TotalAmount, b.PaidAmount,
		b.Status, b.PaymentStatus, b.Notes, b.CreatedBy, b.CreatedAt, b.UpdatedAt,
	).Scan(&b.ID)
}

func (r *bookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	b, err := scanBooking(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	query := `SELECT ` + bookingColumns + ` FROM bookings`
	args := []interface{}{}
	argIdx := 1
	if status != "" {
		query += fmt.Sprintf(" WHERE status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, 0, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, count, rows.Err()
}

// UpdateStatus commits the transition only when the stored status still
// equals from; zero rows affected means a concurrent transition won.
func (r *bookingRepository) UpdateStatus(ctx context.Context, id int64, from, to domain.BookingStatus) error {
	query := `UPDATE bookings SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`
	res, err := r.db.ExecContext(ctx, query, to, time.Now().UTC(), id, from)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrConflict
	}
	return nil
}

// Complete applies the completion atomically: the guarded status update with
// the recomputed fees, plus the settlement entry taken at return, if any. An
// immediate settlement is folded into paid_amount as an increment and
// payment_status is re-derived from the updated row, so a payment recorded
// concurrently with the return is never overwritten from a stale read. The
// committed aggregates are scanned back into b. On a guard miss everything
// rolls back and ErrConflict is returned, so at most one completion ever
// commits per booking.
func (r *bookingRepository) Complete(ctx context.Context, b *domain.Booking, entry *domain.PaymentEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	delta := int64(0)
	if entry != nil && entry.Status == domain.PaymentEntryStatusCompleted {
		delta = entry.Amount
	}

	query := `UPDATE bookings SET status = $1, actual_return_time = $2,
	            late_fee = $3, extension_fee = $4, damage_charges = $5,
	            total_amount = $6,
	            paid_amount = paid_amount + $7,
	            payment_status = CASE
	              WHEN paid_amount + $7 >= $6 THEN 'COMPLETED'
	              WHEN paid_amount + $7 = 0 THEN 'PENDING'
	              ELSE 'PARTIAL'
	            END,
	            notes = $8, completed_by = $9, completed_at = $10, updated_at = $11
	          WHERE id = $12 AND status = $13
	          RETURNING paid_amount, payment_status`
	err = tx.QueryRowContext(ctx, query,
		domain.BookingStatusCompleted, b.ActualReturnTime,
		b.LateFee, b.ExtensionFee, b.DamageCharges,
		b.TotalAmount, delta,
		b.Notes, b.CompletedBy, b.CompletedAt, time.Now().UTC(),
		b.ID, domain.BookingStatusInUse,
	).Scan(&b.PaidAmount, &b.PaymentStatus)
	if err == sql.ErrNoRows {
		return domain.ErrConflict
	}
	if err != nil {
		return err
	}

	if entry != nil {
		insert := `INSERT INTO payment_entries (reference, booking_id, amount, mode, status, notes, created_by, created_at)
		           VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
		err = tx.QueryRowContext(ctx, insert,
			entry.Reference, entry.BookingID, entry.Amount, entry.Mode,
			entry.Status, entry.Notes, entry.CreatedBy, entry.CreatedAt,
		).Scan(&entry.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *bookingRepository) ListInUsePastReturn(ctx context.Context, asOf time.Time) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
	          WHERE status = $1 AND scheduled_end + scheduled_dropoff_time < $2`
	rows, err := r.db.QueryContext(ctx, query, domain.BookingStatusInUse, asOf)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}
