package handler

import (
	"net/http"

	"mwell-store/internal/model"
	"mwell-store/internal/service"

	"github.com/rs/zerolog"
)

// ReviewHandler handles product review requests.
type ReviewHandler struct {
	service service.ReviewService
	logger  zerolog.Logger
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(service service.ReviewService, logger zerolog.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		logger:  logger.With().Str("handler", "review").Logger(),
	}
}

// List handles GET /api/reviews requests.
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r, h.logger)
	if !ok {
		return
	}

	reviews, err := h.service.List(r.Context(), caller.UserID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	if reviews == nil {
		reviews = []model.Review{}
	}

	writeJSON(w, http.StatusOK, model.ReviewListResponse{Reviews: reviews})
}

// Create handles POST /api/reviews requests.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r, h.logger)
	if !ok {
		return
	}

	var req model.ReviewRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	review, err := h.service.Add(r.Context(), caller.UserID, &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, review)
}
