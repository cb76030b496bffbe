package handler

import (
	"net/http"

	"mwell-store/internal/model"
	"mwell-store/internal/service"

	"github.com/rs/zerolog"
)

// AppointmentHandler handles the caller's appointments.
type AppointmentHandler struct {
	service service.AppointmentService
	logger  zerolog.Logger
}

// NewAppointmentHandler creates a new appointment handler.
func NewAppointmentHandler(service service.AppointmentService, logger zerolog.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		service: service,
		logger:  logger.With().Str("handler", "appointment").Logger(),
	}
}

// List handles GET /api/appointments.
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r, h.logger)
	if !ok {
		return
	}

	resp, err := h.service.List(r.Context(), caller.UserID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Create handles POST /api/appointments.
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r, h.logger)
	if !ok {
		return
	}

	var req model.AppointmentRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	view, err := h.service.Create(r.Context(), caller.UserID, &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, view)
}

// Get handles GET /api/appointments/{id}.
func (h *AppointmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r, h.logger)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id", model.ErrAppointmentNotFound, h.logger)
	if !ok {
		return
	}

	view, err := h.service.Get(r.Context(), caller.UserID, id)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// Update handles PUT /api/appointments/{id}.
func (h *AppointmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r, h.logger)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id", model.ErrAppointmentNotFound, h.logger)
	if !ok {
		return
	}

	var req model.AppointmentRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	view, err := h.service.Update(r.Context(), caller.UserID, id, &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// Delete handles DELETE /api/appointments/{id}.
func (h *AppointmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r, h.logger)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id", model.ErrAppointmentNotFound, h.logger)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), caller.UserID, id); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
