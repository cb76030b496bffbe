package handler

import (
	"context"
	"net/http"

	"mwell-store/internal/model"
	"mwell-store/internal/service"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// CartHandler exposes the caller's cart. The session is the authenticated
// user's ID.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// View handles GET /api/cart.
func (h *CartHandler) View(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, func(ctx context.Context, session string) (*service.CartView, error) {
		return h.service.View(ctx, session)
	})
}

// Clear handles DELETE /api/cart.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, func(ctx context.Context, session string) (*service.CartView, error) {
		return h.service.Clear(ctx, session)
	})
}

// AddItem handles POST /api/cart/items.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req model.AddToCartRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}
	h.respond(w, r, func(ctx context.Context, session string) (*service.CartView, error) {
		return h.service.Add(ctx, session, req.ProductID)
	})
}

// SetQuantity handles PUT /api/cart/items/{productId}.
func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	var req model.SetQuantityRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}
	productID := mux.Vars(r)["productId"]
	h.respond(w, r, func(ctx context.Context, session string) (*service.CartView, error) {
		return h.service.SetQuantity(ctx, session, productID, req.Quantity)
	})
}

// Increment handles POST /api/cart/items/{productId}/increment.
func (h *CartHandler) Increment(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["productId"]
	h.respond(w, r, func(ctx context.Context, session string) (*service.CartView, error) {
		return h.service.Increment(ctx, session, productID)
	})
}

// Decrement handles POST /api/cart/items/{productId}/decrement.
func (h *CartHandler) Decrement(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["productId"]
	h.respond(w, r, func(ctx context.Context, session string) (*service.CartView, error) {
		return h.service.Decrement(ctx, session, productID)
	})
}

// RemoveItem handles DELETE /api/cart/items/{productId}.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["productId"]
	h.respond(w, r, func(ctx context.Context, session string) (*service.CartView, error) {
		return h.service.Remove(ctx, session, productID)
	})
}

// ApplyCoupon handles POST /api/cart/coupon.
func (h *CartHandler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	var req model.ApplyCouponRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}
	h.respond(w, r, func(ctx context.Context, session string) (*service.CartView, error) {
		return h.service.ApplyCoupon(ctx, session, req.Code)
	})
}

// ClearCoupon handles DELETE /api/cart/coupon.
func (h *CartHandler) ClearCoupon(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, func(ctx context.Context, session string) (*service.CartView, error) {
		return h.service.ClearCoupon(ctx, session)
	})
}

func (h *CartHandler) respond(w http.ResponseWriter, r *http.Request, op func(context.Context, string) (*service.CartView, error)) {
	caller, ok := identity(w, r, h.logger)
	if !ok {
		return
	}

	view, err := op(r.Context(), caller.UserID.String())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}
