package events

import (
	"context"
	"time"

	"mwell-store/internal/model"

	"github.com/google/uuid"
)

// Type names an appointment lifecycle change.
type Type string

const (
	AppointmentCreated Type = "appointment.created"
	AppointmentUpdated Type = "appointment.updated"
	AppointmentDeleted Type = "appointment.deleted"
)

// Event is the JSON payload published for each lifecycle change.
type Event struct {
	ID                uuid.UUID `json:"id"`
	Type              Type      `json:"type"`
	AppointmentID     uuid.UUID `json:"appointmentId"`
	AppointmentNumber string    `json:"appointmentNumber"`
	OwnerID           uuid.UUID `json:"ownerId"`
	Date              string    `json:"date,omitempty"`
	Time              string    `json:"time,omitempty"`
	Product           string    `json:"product,omitempty"`
	OccurredAt        time.Time `json:"occurredAt"`
}

// NewAppointmentEvent builds an event describing appt.
func NewAppointmentEvent(t Type, appt *model.Appointment, at time.Time) Event {
	return Event{
		ID:                uuid.New(),
		Type:              t,
		AppointmentID:     appt.ID,
		AppointmentNumber: appt.AppointmentNumber,
		OwnerID:           appt.OwnerID,
		Date:              appt.Date,
		Time:              appt.Time,
		Product:           appt.Product,
		OccurredAt:        at.UTC(),
	}
}

// Publisher delivers appointment events. Callers log failures and carry on;
// a lost event never fails a booking.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

type noopPublisher struct{}

// NewNoopPublisher returns a publisher that drops every event.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(ctx context.Context, event Event) error { return nil }
func (noopPublisher) Close() error                                 { return nil }
