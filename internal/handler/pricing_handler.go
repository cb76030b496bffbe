package handler

import (
	"net/http"

	"mwell-store/internal/model"
	"mwell-store/internal/service"

	"github.com/rs/zerolog"
)

// PricingHandler serves stateless quotes.
type PricingHandler struct {
	service service.PricingService
	logger  zerolog.Logger
}

// NewPricingHandler creates a new pricing handler.
func NewPricingHandler(service service.PricingService, logger zerolog.Logger) *PricingHandler {
	return &PricingHandler{
		service: service,
		logger:  logger.With().Str("handler", "pricing").Logger(),
	}
}

// Quote handles POST /api/pricing/quote.
func (h *PricingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req model.QuoteRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	summary, err := h.service.Quote(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
