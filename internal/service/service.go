package service

import (
	"context"

	"mwell-store/internal/auth"
	"mwell-store/internal/cart"
	"mwell-store/internal/model"
	"mwell-store/internal/pricing"

	"github.com/google/uuid"
)

// ProductService defines operations for product management.
type ProductService interface {
	// GetAll retrieves all products with pagination.
	GetAll(ctx context.Context, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Create adds a product to the catalog.
	Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error)

	// Update replaces the product with the given ID.
	Update(ctx context.Context, id string, req *model.ProductRequest) (*model.Product, error)

	// Delete removes a product from the catalog.
	Delete(ctx context.Context, id string) error
}

// AuthService registers and authenticates accounts.
type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)

	// EnsureAdmin creates the admin account if no user has the email yet.
	EnsureAdmin(ctx context.Context, email, password string) error
}

// CartView is a cart together with its price breakdown.
type CartView struct {
	Cart    *cart.Cart      `json:"cart"`
	Summary pricing.Summary `json:"summary"`
}

// CartService mutates a session's cart. Every mutation returns the updated
// view.
type CartService interface {
	View(ctx context.Context, sessionID string) (*CartView, error)
	Add(ctx context.Context, sessionID, productID string) (*CartView, error)
	Increment(ctx context.Context, sessionID, productID string) (*CartView, error)
	Decrement(ctx context.Context, sessionID, productID string) (*CartView, error)
	SetQuantity(ctx context.Context, sessionID, productID string, quantity int) (*CartView, error)
	Remove(ctx context.Context, sessionID, productID string) (*CartView, error)
	Clear(ctx context.Context, sessionID string) (*CartView, error)
	ApplyCoupon(ctx context.Context, sessionID, code string) (*CartView, error)
	ClearCoupon(ctx context.Context, sessionID string) (*CartView, error)
}

// PricingService prices arbitrary lines without a stored cart.
type PricingService interface {
	Quote(ctx context.Context, req *model.QuoteRequest) (*pricing.Summary, error)
}

// OrderService defines operations for order management.
type OrderService interface {
	// Checkout turns the owner's cart into an order and empties the cart.
	Checkout(ctx context.Context, ownerID uuid.UUID, req *model.CheckoutRequest) (*model.Order, error)

	// GetByID returns the order if the caller owns it or is an admin.
	GetByID(ctx context.Context, caller auth.Identity, id uuid.UUID) (*model.Order, error)

	// List returns the caller's orders, or every order for an admin.
	List(ctx context.Context, caller auth.Identity, limit, offset int) ([]model.Order, error)
}

// AppointmentService manages an owner's appointments.
type AppointmentService interface {
	List(ctx context.Context, ownerID uuid.UUID) (*model.AppointmentListResponse, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*model.AppointmentView, error)
	Create(ctx context.Context, ownerID uuid.UUID, req *model.AppointmentRequest) (*model.AppointmentView, error)

	// Update fails with model.ErrEditWindowClosed once the edit window has
	// passed.
	Update(ctx context.Context, ownerID, id uuid.UUID, req *model.AppointmentRequest) (*model.AppointmentView, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// ReviewService manages a user's product reviews.
type ReviewService interface {
	// List returns the user's reviews with their products, newest first.
	List(ctx context.Context, userID uuid.UUID) ([]model.Review, error)

	// Add records a 1 to 5 rating. A product can be reviewed once per user.
	Add(ctx context.Context, userID uuid.UUID, req *model.ReviewRequest) (*model.Review, error)
}

// WishlistService manages a user's saved products.
type WishlistService interface {
	List(ctx context.Context, userID uuid.UUID) ([]model.WishlistItem, error)
	Add(ctx context.Context, userID uuid.UUID, productID string) (*model.WishlistItem, error)
	Remove(ctx context.Context, userID uuid.UUID, productID string) error
}

// UserService exposes account listings to administrators.
type UserService interface {
	List(ctx context.Context, limit, offset int) ([]model.User, error)
}
