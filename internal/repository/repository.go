package repository

import (
	"context"

	"mwell-store/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// GetAll retrieves all products with pagination support.
	GetAll(ctx context.Context, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns nil when absent.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// GetByIDs retrieves the products that exist among ids.
	GetByIDs(ctx context.Context, ids []string) ([]model.Product, error)

	// Create inserts a product. A duplicate ID yields model.ErrProductExists.
	Create(ctx context.Context, p *model.Product) error

	// Update replaces a product's fields; false means no such product.
	Update(ctx context.Context, p *model.Product) (bool, error)

	// Delete removes a product; false means no such product.
	Delete(ctx context.Context, id string) (bool, error)
}

// UserRepository defines account storage.
type UserRepository interface {
	// Create inserts a user. A duplicate email yields model.ErrUserExists.
	Create(ctx context.Context, u *model.User) error

	// GetByEmail looks a user up case-insensitively. Returns nil when absent.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// GetByID returns nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)

	// List returns accounts oldest first with pagination support.
	List(ctx context.Context, limit, offset int) ([]model.User, error)
}

// ReviewRepository defines review storage.
type ReviewRepository interface {
	// Create inserts a review. A second review of the same product by the
	// same user yields model.ErrReviewExists; an unknown product yields
	// model.ErrProductNotFound.
	Create(ctx context.Context, r *model.Review) error

	// ListByUser returns the user's reviews, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Review, error)
}

// WishlistRepository defines wishlist storage.
type WishlistRepository interface {
	// Add inserts an item. A product already on the user's wishlist yields
	// model.ErrWishlistExists; an unknown product yields
	// model.ErrProductNotFound.
	Add(ctx context.Context, item *model.WishlistItem) error

	// ListByUser returns the user's items, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.WishlistItem, error)

	// Remove deletes the user's entry for productID; false means there was
	// none.
	Remove(ctx context.Context, userID uuid.UUID, productID string) (bool, error)
}

// AppointmentRepository defines appointment storage.
type AppointmentRepository interface {
	// Create inserts appt and, in the same transaction, deletes the owner's
	// appointments beyond the keep newest.
	Create(ctx context.Context, appt *model.Appointment, keep int) error

	// ListByOwner returns up to limit appointments, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]model.Appointment, error)

	// GetByID returns nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Appointment, error)

	// Update writes the editable fields and updated_at; false means no such
	// appointment.
	Update(ctx context.Context, appt *model.Appointment) (bool, error)

	// Delete removes an appointment; false means no such appointment.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts multiple order items within the provided transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// GetByID retrieves an order by its ID along with its items.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// List returns orders newest first, with items. A nil ownerID lists
	// every owner's orders.
	List(ctx context.Context, ownerID *uuid.UUID, limit, offset int) ([]model.Order, error)
}
