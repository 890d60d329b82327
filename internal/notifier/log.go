package notifier

import (
	"context"
	"log"

	"frontdesk/internal/domain"
)

// LogMailer writes every message to the process log. It backs local
// development and any deployment without SMTP credentials.
type LogMailer struct{}

func (LogMailer) SendConfirmation(_ context.Context, res domain.Reservation, cust domain.Customer) error {
	log.Printf("[DEV-EMAIL] to=%s reservation=%s confirmed stay %s to %s",
		cust.Email, res.ID, res.CheckInDate.Format(dateLayout), res.CheckOutDate.Format(dateLayout))
	return nil
}

func (LogMailer) SendReminder(_ context.Context, res domain.Reservation, cust domain.Customer) error {
	log.Printf("[DEV-EMAIL] to=%s reservation=%s reminder, check-in %s",
		cust.Email, res.ID, res.CheckInDate.Format(dateLayout))
	return nil
}

func (LogMailer) SendCancellation(_ context.Context, res domain.Reservation, cust domain.Customer, reason string) error {
	log.Printf("[DEV-EMAIL] to=%s reservation=%s cancelled: %s", cust.Email, res.ID, reason)
	return nil
}
