package notifier

import (
	"context"
	"fmt"
	"net/smtp"

	"frontdesk/internal/domain"
)

// SMTPMailer sends plain-text mail through a single SMTP account.
type SMTPMailer struct {
	host      string
	port      string
	from      string
	password  string
	hotelName string
}

func NewSMTPMailer(host, port, from, password, hotelName string) *SMTPMailer {
	return &SMTPMailer{
		host:      host,
		port:      port,
		from:      from,
		password:  password,
		hotelName: hotelName,
	}
}

func (m *SMTPMailer) SendConfirmation(_ context.Context, res domain.Reservation, cust domain.Customer) error {
	subject := fmt.Sprintf("Reservation %s confirmed", res.ID)
	body := fmt.Sprintf(
		"Dear %s,\r\n\r\n"+
			"Your reservation %s at %s is confirmed.\r\n"+
			"Check-in: %s\r\nCheck-out: %s\r\nGuests: %d\r\n\r\n"+
			"We look forward to welcoming you.\r\n",
		cust.FullName, res.ID, m.hotelName,
		res.CheckInDate.Format(dateLayout), res.CheckOutDate.Format(dateLayout), res.Guests)
	return m.send(cust, subject, body)
}

func (m *SMTPMailer) SendReminder(_ context.Context, res domain.Reservation, cust domain.Customer) error {
	subject := fmt.Sprintf("Your stay at %s is coming up", m.hotelName)
	body := fmt.Sprintf(
		"Dear %s,\r\n\r\n"+
			"A quick reminder: reservation %s checks in on %s.\r\n"+
			"Reply to this mail if your plans changed.\r\n",
		cust.FullName, res.ID, res.CheckInDate.Format(dateLayout))
	return m.send(cust, subject, body)
}

func (m *SMTPMailer) SendCancellation(_ context.Context, res domain.Reservation, cust domain.Customer, reason string) error {
	subject := fmt.Sprintf("Reservation %s cancelled", res.ID)
	body := fmt.Sprintf(
		"Dear %s,\r\n\r\n"+
			"Reservation %s at %s has been cancelled.\r\nReason: %s\r\n",
		cust.FullName, res.ID, m.hotelName, reason)
	return m.send(cust, subject, body)
}

func (m *SMTPMailer) send(cust domain.Customer, subject, body string) error {
	if cust.Email == "" {
		return fmt.Errorf("customer %d has no email on file", cust.ID)
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s",
		m.from, cust.Email, subject, body))

	auth := smtp.PlainAuth("", m.from, m.password, m.host)
	return smtp.SendMail(m.host+":"+m.port, auth, m.from, []string{cust.Email}, msg)
}
