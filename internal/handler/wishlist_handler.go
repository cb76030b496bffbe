package handler

import (
	"net/http"

	"mwell-store/internal/model"
	"mwell-store/internal/service"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// WishlistHandler handles wishlist requests.
type WishlistHandler struct {
	service service.WishlistService
	logger  zerolog.Logger
}

// NewWishlistHandler creates a new wishlist handler.
func NewWishlistHandler(service service.WishlistService, logger zerolog.Logger) *WishlistHandler {
	return &WishlistHandler{
		service: service,
		logger:  logger.With().Str("handler", "wishlist").Logger(),
	}
}

// List handles GET /api/wishlist requests.
func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r, h.logger)
	if !ok {
		return
	}

	items, err := h.service.List(r.Context(), caller.UserID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	if items == nil {
		items = []model.WishlistItem{}
	}

	writeJSON(w, http.StatusOK, model.WishlistResponse{Wishlist: items})
}

// Add handles POST /api/wishlist requests.
func (h *WishlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r, h.logger)
	if !ok {
		return
	}

	var req model.WishlistRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	item, err := h.service.Add(r.Context(), caller.UserID, req.ProductID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

// Remove handles DELETE /api/wishlist/{productId} requests.
func (h *WishlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r, h.logger)
	if !ok {
		return
	}

	if err := h.service.Remove(r.Context(), caller.UserID, mux.Vars(r)["productId"]); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
