package jobs

import (
	"context"

	"rentdesk-backend/internal/logger"
	"rentdesk-backend/internal/service"
)

// ReconcilePayments backfills ledger entries for bookings whose paid amount
// was recorded before entry-level tracking existed. The backfill is
// idempotent, so re-runs are harmless.
func (jr *JobRunner) ReconcilePayments() {
	jr.runWithRecovery("ReconcilePayments", func() {
		ctx := context.Background()

		created, err := jr.services.Payment.ReconcilePayments(ctx, service.SystemActor)
		if err != nil {
			logger.Error("Failed to reconcile payments", "error", err)
			return
		}

		logger.Info("Reconciled payment ledger", "entries_created", created)
	})
}
