package model

import (
	"time"

	"github.com/google/uuid"
)

// Appointment is a booked consultation owned by a single user.
type Appointment struct {
	ID                uuid.UUID `json:"id" db:"id"`
	AppointmentNumber string    `json:"appointmentNumber" db:"appointment_number"`
	OwnerID           uuid.UUID `json:"userId" db:"owner_id"`
	FirstName         string    `json:"firstName" db:"first_name"`
	LastName          string    `json:"lastName" db:"last_name"`
	Email             string    `json:"email" db:"email"`
	Phone             string    `json:"phone" db:"phone"`
	Date              string    `json:"date" db:"date"`
	Time              string    `json:"time" db:"time"`
	Product           string    `json:"product" db:"product"`
	Expert            *string   `json:"expert" db:"expert"`
	Reason            string    `json:"reason" db:"reason"`
	MedicalIssue      *string   `json:"medicalIssue" db:"medical_issue"`
	Notes             *string   `json:"notes" db:"notes"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time `json:"updatedAt" db:"updated_at"`
}

// AppointmentRequest is the create/update payload. Optional fields are
// plain strings; empty means absent.
type AppointmentRequest struct {
	AppointmentNumber string `json:"appointmentNumber,omitempty"`
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Date              string `json:"date"`
	Time              string `json:"time"`
	Product           string `json:"product"`
	Expert            string `json:"expert,omitempty"`
	Reason            string `json:"reason"`
	MedicalIssue      string `json:"medicalIssue,omitempty"`
	Notes             string `json:"notes,omitempty"`
}

// AppointmentView decorates an appointment with its edit-window state.
type AppointmentView struct {
	Appointment
	SecondsRemaining int  `json:"secondsRemaining"`
	CanEdit          bool `json:"canEdit"`
}

// AppointmentListResponse is the body of GET /api/appointments.
type AppointmentListResponse struct {
	Appointments []AppointmentView `json:"appointments"`
}

// Apply copies the request fields onto the appointment.
func (a *Appointment) Apply(req *AppointmentRequest) {
	a.FirstName = req.FirstName
	a.LastName = req.LastName
	a.Email = req.Email
	a.Phone = req.Phone
	a.Date = req.Date
	a.Time = req.Time
	a.Product = req.Product
	a.Expert = optional(req.Expert)
	a.Reason = req.Reason
	a.MedicalIssue = optional(req.MedicalIssue)
	a.Notes = optional(req.Notes)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
