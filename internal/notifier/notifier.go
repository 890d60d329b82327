package notifier

import (
	"context"

	"frontdesk/internal/domain"
)

// Notifier delivers guest-facing messages for reservation events.
// Delivery is best-effort: implementations report failure through the
// error return and callers log it without rolling back the state
// change that triggered the message.
type Notifier interface {
	SendConfirmation(ctx context.Context, res domain.Reservation, cust domain.Customer) error
	SendReminder(ctx context.Context, res domain.Reservation, cust domain.Customer) error
	SendCancellation(ctx context.Context, res domain.Reservation, cust domain.Customer, reason string) error
}

const dateLayout = "2006-01-02"
