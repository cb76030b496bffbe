package notify

import (
	"context"
	"fmt"

	"mwell-store/internal/model"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"
)

// sender is satisfied by *gomail.Dialer.
type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// smtpNotifier sends mail through an SMTP relay.
type smtpNotifier struct {
	sender sender
	from   string
	logger zerolog.Logger
}

// NewSMTPNotifier creates a notifier that dials host for every message.
func NewSMTPNotifier(host string, port int, username, password, from string, logger zerolog.Logger) Notifier {
	return newSMTPNotifier(gomail.NewDialer(host, port, username, password), from, logger)
}

func newSMTPNotifier(s sender, from string, logger zerolog.Logger) *smtpNotifier {
	return &smtpNotifier{
		sender: s,
		from:   from,
		logger: logger.With().Str("component", "notifier").Logger(),
	}
}

func (n *smtpNotifier) Welcome(ctx context.Context, user *model.User) error {
	return n.send(ctx, welcomeMessage(user))
}

func (n *smtpNotifier) AppointmentBooked(ctx context.Context, appt *model.Appointment) error {
	return n.send(ctx, bookedMessage(appt))
}

func (n *smtpNotifier) send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	if err := n.sender.DialAndSend(m); err != nil {
		n.logger.Error().Err(err).Str("to", msg.To).Msg("failed to send email")
		return fmt.Errorf("failed to send email to %s: %w", msg.To, err)
	}

	n.logger.Info().Str("to", msg.To).Str("subject", msg.Subject).Msg("email sent")
	return nil
}
