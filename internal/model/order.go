package model

import (
	"time"

	"github.com/google/uuid"
)

// Order represents a checked-out cart.
type Order struct {
	ID             uuid.UUID   `json:"id" db:"id"`
	OwnerID        uuid.UUID   `json:"userId" db:"owner_id"`
	CouponCode     *string     `json:"couponCode,omitempty" db:"coupon_code"`
	PaymentMethod  string      `json:"paymentMethod" db:"payment_method"`
	Subtotal       float64     `json:"subtotal" db:"subtotal"`
	CouponDiscount float64     `json:"couponDiscount" db:"coupon_discount"`
	Tax            float64     `json:"tax" db:"tax"`
	Handling       float64     `json:"handling" db:"handling"`
	Delivery       float64     `json:"delivery" db:"delivery"`
	Total          float64     `json:"total" db:"total"`
	Items          []OrderItem `json:"items"`
	CreatedAt      time.Time   `json:"createdAt" db:"created_at"`
}

// OrderItem represents a line item in an order.
type OrderItem struct {
	ID          uuid.UUID `json:"-" db:"id"`
	OrderID     uuid.UUID `json:"-" db:"order_id"`
	ProductID   string    `json:"productId" db:"product_id"`
	ProductName string    `json:"productName" db:"product_name"`
	UnitPrice   float64   `json:"unitPrice" db:"unit_price"`
	Quantity    int       `json:"quantity" db:"quantity"`
}

// CheckoutRequest represents the request payload for creating an order.
type CheckoutRequest struct {
	PaymentMethod string `json:"paymentMethod"`
}
