package postgres

import (
	"context"
	"database/sql"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/repository"
)

type profileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	p := &domain.Profile{}
	var manageBookings, managePayments, manageReconciliation bool
	query := `SELECT id, name, email, role, manage_bookings, manage_payments, manage_reconciliation, created_at
	          FROM profiles WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Email, &p.Role,
		&manageBookings, &managePayments, &manageReconciliation, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	p.Permissions = map[domain.Permission]bool{
		domain.PermissionManageBookings:       manageBookings,
		domain.PermissionManagePayments:       managePayments,
		domain.PermissionManageReconciliation: manageReconciliation,
	}
	return p, nil
}
