package service

import (
	"context"
	"time"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/logger"
)

const notifyTimeout = 10 * time.Second

// asyncNotifier dispatches each event on its own goroutine with a bounded
// timeout. Failures are logged as warnings and never reach the caller: the
// booking transition has already committed by the time an event is emitted.
type asyncNotifier struct {
	email EmailService
}

func NewAsyncNotifier(email EmailService) Notifier {
	return &asyncNotifier{email: email}
}

func (n *asyncNotifier) BookingCompleted(event domain.BookingCompletedEvent) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := n.email.SendBookingCompletionNotification(ctx, event); err != nil {
			logger.Warn("Completion notification failed", "booking_id", event.BookingID, "error", err)
		}
	}()
}

func (n *asyncNotifier) BookingOverdue(booking domain.Booking) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := n.email.SendOverdueReminder(ctx, booking); err != nil {
			logger.Warn("Overdue reminder failed", "booking_id", booking.ID, "error", err)
		}
	}()
}
