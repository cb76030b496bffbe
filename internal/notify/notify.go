package notify

import (
	"context"
	"fmt"
	"strings"

	"mwell-store/internal/model"

	"github.com/rs/zerolog"
)

// WelcomeSubject is used for the message sent after registration.
const WelcomeSubject = "Welcome to M-Well family! Your signup/login is successful."

// Notifier sends customer-facing messages.
type Notifier interface {
	Welcome(ctx context.Context, user *model.User) error
	AppointmentBooked(ctx context.Context, appt *model.Appointment) error
}

// Message is a rendered plain-text email.
type Message struct {
	To      string
	Subject string
	Body    string
}

func welcomeMessage(user *model.User) Message {
	name := strings.TrimSpace(user.Name)
	if name == "" {
		name = "there"
	}
	return Message{
		To:      user.Email,
		Subject: WelcomeSubject,
		Body: fmt.Sprintf("Hi %s,\n\nWelcome to M-Well family! Your signup/login is successful.\n\nTeam M-Well",
			name),
	}
}

func bookedMessage(appt *model.Appointment) Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", appt.FirstName)
	fmt.Fprintf(&b, "Your appointment #%s is booked for %s at %s.\n", appt.AppointmentNumber, appt.Date, appt.Time)
	fmt.Fprintf(&b, "Product: %s\n", appt.Product)
	if appt.Expert != nil && *appt.Expert != "" {
		fmt.Fprintf(&b, "Expert: %s\n", *appt.Expert)
	}
	b.WriteString("\nYou can change these details within 30 minutes of booking.\n\nTeam M-Well")

	return Message{
		To:      appt.Email,
		Subject: fmt.Sprintf("Appointment #%s confirmed", appt.AppointmentNumber),
		Body:    b.String(),
	}
}

// logNotifier records messages in the log instead of sending them.
type logNotifier struct {
	logger zerolog.Logger
}

// NewLogNotifier returns a notifier for environments without SMTP.
func NewLogNotifier(logger zerolog.Logger) Notifier {
	return &logNotifier{
		logger: logger.With().Str("component", "notifier").Logger(),
	}
}

func (n *logNotifier) Welcome(ctx context.Context, user *model.User) error {
	n.log(welcomeMessage(user))
	return nil
}

func (n *logNotifier) AppointmentBooked(ctx context.Context, appt *model.Appointment) error {
	n.log(bookedMessage(appt))
	return nil
}

func (n *logNotifier) log(m Message) {
	n.logger.Info().
		Str("to", m.To).
		Str("subject", m.Subject).
		Msg("email not sent, SMTP not configured")
}
