package router

import (
	"encoding/json"
	"net/http"

	"mwell-store/internal/auth"
	"mwell-store/internal/handler"
	"mwell-store/internal/middleware"
	"mwell-store/internal/model"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Handlers groups the HTTP handlers mounted by New.
type Handlers struct {
	Health      *handler.HealthHandler
	Auth        *handler.AuthHandler
	Product     *handler.ProductHandler
	Pricing     *handler.PricingHandler
	Cart        *handler.CartHandler
	Order       *handler.OrderHandler
	Appointment *handler.AppointmentHandler
	Review      *handler.ReviewHandler
	Wishlist    *handler.WishlistHandler
	User        *handler.UserHandler
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, tokens *auth.TokenManager, logger zerolog.Logger) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = jsonError(http.StatusNotFound, "NOT_FOUND", "route not found")
	r.MethodNotAllowedHandler = jsonError(http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")

	r.HandleFunc("/health", h.Health.Health).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", h.Auth.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/products", h.Product.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", h.Product.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/pricing/quote", h.Pricing.Quote).Methods(http.MethodPost)

	requireUser := middleware.BearerAuth(tokens, logger)

	// Catalog and account administration
	admin := api.NewRoute().Subrouter()
	admin.Use(requireUser, middleware.RequireRole(model.RoleAdmin, logger))
	admin.HandleFunc("/products", h.Product.Create).Methods(http.MethodPost)
	admin.HandleFunc("/products/{id}", h.Product.Update).Methods(http.MethodPut)
	admin.HandleFunc("/products/{id}", h.Product.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/users", h.User.List).Methods(http.MethodGet)

	user := api.NewRoute().Subrouter()
	user.Use(requireUser)

	user.HandleFunc("/cart", h.Cart.View).Methods(http.MethodGet)
	user.HandleFunc("/cart", h.Cart.Clear).Methods(http.MethodDelete)
	user.HandleFunc("/cart/items", h.Cart.AddItem).Methods(http.MethodPost)
	user.HandleFunc("/cart/items/{productId}", h.Cart.SetQuantity).Methods(http.MethodPut)
	user.HandleFunc("/cart/items/{productId}", h.Cart.RemoveItem).Methods(http.MethodDelete)
	user.HandleFunc("/cart/items/{productId}/increment", h.Cart.Increment).Methods(http.MethodPost)
	user.HandleFunc("/cart/items/{productId}/decrement", h.Cart.Decrement).Methods(http.MethodPost)
	user.HandleFunc("/cart/coupon", h.Cart.ApplyCoupon).Methods(http.MethodPost)
	user.HandleFunc("/cart/coupon", h.Cart.ClearCoupon).Methods(http.MethodDelete)

	user.HandleFunc("/orders", h.Order.Checkout).Methods(http.MethodPost)
	user.HandleFunc("/orders", h.Order.List).Methods(http.MethodGet)
	user.HandleFunc("/orders/{id}", h.Order.GetByID).Methods(http.MethodGet)

	user.HandleFunc("/appointments", h.Appointment.List).Methods(http.MethodGet)
	user.HandleFunc("/appointments", h.Appointment.Create).Methods(http.MethodPost)
	user.HandleFunc("/appointments/{id}", h.Appointment.Get).Methods(http.MethodGet)
	user.HandleFunc("/appointments/{id}", h.Appointment.Update).Methods(http.MethodPut)
	user.HandleFunc("/appointments/{id}", h.Appointment.Delete).Methods(http.MethodDelete)

	user.HandleFunc("/reviews", h.Review.List).Methods(http.MethodGet)
	user.HandleFunc("/reviews", h.Review.Create).Methods(http.MethodPost)

	user.HandleFunc("/wishlist", h.Wishlist.List).Methods(http.MethodGet)
	user.HandleFunc("/wishlist", h.Wishlist.Add).Methods(http.MethodPost)
	user.HandleFunc("/wishlist/{productId}", h.Wishlist.Remove).Methods(http.MethodDelete)

	// Apply middleware in order: Recovery -> Logging -> CORS -> routes
	var handler http.Handler = r
	handler = middleware.CORS(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Recovery(logger)(handler)

	return otelhttp.NewHandler(handler, "mwell-store")
}

func jsonError(status int, code, message string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(model.ErrorResponse{Error: code, Message: message})
	})
}
