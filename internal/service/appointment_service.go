package service

import (
	"context"
	"fmt"
	"time"

	"mwell-store/internal/booking"
	"mwell-store/internal/events"
	"mwell-store/internal/model"
	"mwell-store/internal/notify"
	"mwell-store/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type appointmentService struct {
	repo        repository.AppointmentRepository
	publisher   events.Publisher
	notifier    notify.Notifier
	maxPerOwner int
	numbers     booking.NumberGenerator
	now         func() time.Time
	logger      zerolog.Logger
}

// AppointmentOption customises the appointment service.
type AppointmentOption func(*appointmentService)

// WithClock replaces time.Now, which drives timestamps and the edit window.
func WithClock(now func() time.Time) AppointmentOption {
	return func(s *appointmentService) { s.now = now }
}

// WithAppointmentNumbers replaces the display number generator.
func WithAppointmentNumbers(gen booking.NumberGenerator) AppointmentOption {
	return func(s *appointmentService) { s.numbers = gen }
}

// NewAppointmentService creates the appointment service. maxPerOwner bounds
// both the stored history and the list size.
func NewAppointmentService(
	repo repository.AppointmentRepository,
	publisher events.Publisher,
	notifier notify.Notifier,
	maxPerOwner int,
	logger zerolog.Logger,
	opts ...AppointmentOption,
) AppointmentService {
	s := &appointmentService{
		repo:        repo,
		publisher:   publisher,
		notifier:    notifier,
		maxPerOwner: maxPerOwner,
		numbers:     booking.NewAppointmentNumber,
		now:         time.Now,
		logger:      logger.With().Str("service", "appointment").Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns the owner's newest appointments with their edit-window state.
func (s *appointmentService) List(ctx context.Context, ownerID uuid.UUID) (*model.AppointmentListResponse, error) {
	appts, err := s.repo.ListByOwner(ctx, ownerID, s.maxPerOwner)
	if err != nil {
		s.logger.Error().Err(err).Str("owner_id", ownerID.String()).Msg("failed to list appointments")
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	now := s.now()
	views := make([]model.AppointmentView, len(appts))
	for i := range appts {
		views[i] = viewAt(appts[i], now)
	}
	return &model.AppointmentListResponse{Appointments: views}, nil
}

func (s *appointmentService) Get(ctx context.Context, ownerID, id uuid.UUID) (*model.AppointmentView, error) {
	appt, err := s.owned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	view := viewAt(*appt, s.now())
	return &view, nil
}

// Create stores a new appointment. A well-formed client-supplied number is
// kept so the confirmation screen and the stored record agree.
func (s *appointmentService) Create(ctx context.Context, ownerID uuid.UUID, req *model.AppointmentRequest) (*model.AppointmentView, error) {
	if req == nil {
		return nil, model.NewValidationError("", "Appointment payload is required")
	}
	if err := booking.ValidateRequest(req); err != nil {
		return nil, err
	}

	number := req.AppointmentNumber
	if !booking.ValidAppointmentNumber(number) {
		number = s.numbers()
	}

	now := s.now()
	appt := &model.Appointment{
		ID:                uuid.New(),
		AppointmentNumber: number,
		OwnerID:           ownerID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	appt.Apply(req)

	if err := s.repo.Create(ctx, appt, s.maxPerOwner); err != nil {
		s.logger.Error().Err(err).Str("owner_id", ownerID.String()).Msg("failed to create appointment")
		return nil, model.NewPersistenceError("Appointment could not be saved", err)
	}

	s.logger.Info().
		Str("appointment_id", appt.ID.String()).
		Str("appointment_number", appt.AppointmentNumber).
		Msg("appointment booked")

	s.publish(ctx, events.AppointmentCreated, appt, now)
	if err := s.notifier.AppointmentBooked(ctx, appt); err != nil {
		s.logger.Warn().Err(err).Str("appointment_id", appt.ID.String()).Msg("failed to send booking email")
	}

	view := viewAt(*appt, now)
	return &view, nil
}

// Update rewrites the editable fields while the edit window is open. The
// display number and creation time never change.
func (s *appointmentService) Update(ctx context.Context, ownerID, id uuid.UUID, req *model.AppointmentRequest) (*model.AppointmentView, error) {
	appt, err := s.owned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if err := booking.CheckEditable(appt.CreatedAt, now); err != nil {
		s.logger.Debug().Str("appointment_id", id.String()).Msg("edit window closed")
		return nil, err
	}

	if req == nil {
		return nil, model.NewValidationError("", "Appointment payload is required")
	}
	if err := booking.ValidateRequest(req); err != nil {
		return nil, err
	}

	appt.Apply(req)
	appt.UpdatedAt = now

	ok, err := s.repo.Update(ctx, appt)
	if err != nil {
		s.logger.Error().Err(err).Str("appointment_id", id.String()).Msg("failed to update appointment")
		return nil, model.NewPersistenceError("Appointment could not be saved", err)
	}
	if !ok {
		return nil, model.ErrAppointmentNotFound
	}

	s.publish(ctx, events.AppointmentUpdated, appt, now)

	view := viewAt(*appt, now)
	return &view, nil
}

// Delete removes one of the owner's appointments. It is not bound by the
// edit window.
func (s *appointmentService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	appt, err := s.owned(ctx, ownerID, id)
	if err != nil {
		return err
	}

	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("appointment_id", id.String()).Msg("failed to delete appointment")
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	if !ok {
		return model.ErrAppointmentNotFound
	}

	s.publish(ctx, events.AppointmentDeleted, appt, s.now())
	return nil
}

// owned loads an appointment and hides other owners' records behind
// not-found.
func (s *appointmentService) owned(ctx context.Context, ownerID, id uuid.UUID) (*model.Appointment, error) {
	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("appointment_id", id.String()).Msg("failed to get appointment")
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	if appt == nil || appt.OwnerID != ownerID {
		return nil, model.ErrAppointmentNotFound
	}
	return appt, nil
}

func (s *appointmentService) publish(ctx context.Context, t events.Type, appt *model.Appointment, at time.Time) {
	if err := s.publisher.Publish(ctx, events.NewAppointmentEvent(t, appt, at)); err != nil {
		s.logger.Warn().Err(err).
			Str("event_type", string(t)).
			Str("appointment_id", appt.ID.String()).
			Msg("failed to publish appointment event")
	}
}

func viewAt(appt model.Appointment, now time.Time) model.AppointmentView {
	remaining := booking.SecondsRemaining(appt.CreatedAt, now)
	return model.AppointmentView{
		Appointment:      appt,
		SecondsRemaining: remaining,
		CanEdit:          remaining > 0,
	}
}
