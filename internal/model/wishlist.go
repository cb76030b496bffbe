package model

import (
	"time"

	"github.com/google/uuid"
)

// WishlistItem is a product a user saved for later. Each product appears
// once per user.
type WishlistItem struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"userId" db:"user_id"`
	ProductID string    `json:"productId" db:"product_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Product   *Product  `json:"product,omitempty" db:"-"`
}

// WishlistRequest is the payload for adding to the wishlist.
type WishlistRequest struct {
	ProductID string `json:"productId"`
}

// WishlistResponse is the body of GET /api/wishlist.
type WishlistResponse struct {
	Wishlist []WishlistItem `json:"wishlist"`
}
