package model

import "time"

// Product represents a wellness product in the catalogue.
type Product struct {
	ID              string    `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Description     string    `json:"description" db:"description"`
	Brand           string    `json:"brand" db:"brand"`
	Category        string    `json:"category" db:"category"`
	Price           float64   `json:"price" db:"price"`
	OriginalPrice   *float64  `json:"originalPrice,omitempty" db:"original_price"`
	DiscountPercent *int      `json:"discount,omitempty" db:"discount_percent"`
	InStock         bool      `json:"inStock" db:"in_stock"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}

// ProductRequest is the admin payload for creating or replacing a product.
type ProductRequest struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Brand           string   `json:"brand"`
	Category        string   `json:"category"`
	Price           float64  `json:"price"`
	OriginalPrice   *float64 `json:"originalPrice,omitempty"`
	DiscountPercent *int     `json:"discount,omitempty"`
	InStock         bool     `json:"inStock"`
}
