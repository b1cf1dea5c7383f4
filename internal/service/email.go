package service

import (
	"context"
	"fmt"

	"rentdesk-backend/internal/domain"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
	opsEmail  string
}

// NewEmailService returns a SendGrid-backed EmailService. Messages go to the
// operations mailbox; customer-facing delivery channels live outside this
// service.
func NewEmailService(apiKey, fromEmail, fromName, opsEmail string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
		opsEmail:  opsEmail,
	}
}

func (s *emailService) send(subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("Operations", s.opsEmail)

	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendBookingCompletionNotification(ctx context.Context, event domain.BookingCompletedEvent) error {
	subject := fmt.Sprintf("Booking %s completed", event.BookingReference)
	body := fmt.Sprintf(
		"Booking #%d (%s) was completed.\n\nCustomer: %s (%s)\nVehicle: %s\nDuration: %d day(s)\nTotal fare: %d\nPayment method: %s\nCompleted at: %s\n",
		event.BookingID, event.BookingReference,
		event.CustomerName, event.CustomerPhone,
		event.VehicleRef, event.DurationDays,
		event.TotalFare, event.PaymentMethod,
		event.CompletedAt.Format("2006-01-02 15:04:05 MST"))
	return s.send(subject, body)
}

func (s *emailService) SendOverdueReminder(ctx context.Context, booking domain.Booking) error {
	subject := fmt.Sprintf("Booking %s is overdue", booking.Reference)
	body := fmt.Sprintf(
		"Booking #%d (%s) is still in use past its scheduled return.\n\nCustomer: %s (%s)\nVehicle: %s\nScheduled return: %s %s\n",
		booking.ID, booking.Reference,
		booking.CustomerName, booking.CustomerPhone,
		booking.VehicleRef,
		booking.ScheduledEnd.Format("2006-01-02"), booking.ScheduledDropoffTime)
	return s.send(subject, body)
}
