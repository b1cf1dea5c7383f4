package postgres

import (
	"context"
	"database/sql"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/repository"
)

type settingsRepository struct {
	db *sql.DB
}

func NewSettingsRepository(db *sql.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

// GetFeeSettings reads the singleton fee configuration row. Absence is
// reported as domain.ErrNotFound; callers fall back to the hard-coded
// defaults.
func (r *settingsRepository) GetFeeSettings(ctx context.Context) (*domain.FeeSettings, error) {
	s := &domain.FeeSettings{}
	query := `SELECT late_fee_amount, late_fee_grace_hours, extension_fee_amount, extension_fee_threshold_hours
	          FROM fee_settings ORDER BY id DESC LIMIT 1`
	err := r.db.QueryRowContext(ctx, query).Scan(
		&s.LateFee.Amount, &s.LateFee.GracePeriodHours,
		&s.ExtensionFee.Amount, &s.ExtensionFee.ThresholdHours)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
