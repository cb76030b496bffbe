package model

import (
	"time"

	"github.com/google/uuid"
)

// Review is a user's rating of a product. A user reviews a product at most
// once.
type Review struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"userId" db:"user_id"`
	ProductID string    `json:"productId" db:"product_id"`
	Rating    int       `json:"rating" db:"rating"`
	Comment   *string   `json:"comment" db:"comment"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Product   *Product  `json:"product,omitempty" db:"-"`
}

// ReviewRequest is the payload for adding a review.
type ReviewRequest struct {
	ProductID string `json:"productId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
}

// ReviewListResponse is the body of GET /api/reviews.
type ReviewListResponse struct {
	Reviews []Review `json:"reviews"`
}
