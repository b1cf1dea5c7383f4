package jobs

import (
	"context"
	"time"

	"rentdesk-backend/internal/logger"
)

// MarkOverdueBookings finds bookings still in use past their scheduled return
// and sends an overdue reminder for each. Booking status is not changed; the
// fee computation at completion time accounts for the late return.
func (jr *JobRunner) MarkOverdueBookings() {
	jr.runWithRecovery("MarkOverdueBookings", func() {
		ctx := context.Background()

		overdue, err := jr.store.ListInUsePastReturn(ctx, time.Now().UTC())
		if err != nil {
			logger.Error("Failed to list overdue bookings", "error", err)
			return
		}

		for _, b := range overdue {
			jr.services.Notifier.BookingOverdue(b)
			logger.Debug("Sent overdue reminder",
				"booking_id", b.ID,
				"reference", b.Reference,
				"scheduled_end", b.ScheduledEnd.Format("2006-01-02"))
		}

		logger.Info("Processed overdue bookings", "count", len(overdue))
	})
}
