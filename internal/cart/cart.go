// Package cart holds the shopping cart state and its storage adapters.
package cart

import (
	"strings"
	"time"

	"mwell-store/internal/model"
)

// MaxQuantity is the per-line quantity ceiling.
const MaxQuantity = 10

// LineItem is one product in the cart with a bounded quantity.
type LineItem struct {
	Product  model.Product `json:"product"`
	Quantity int           `json:"quantity"`
}

// Cart is an ordered list of line items plus at most one applied coupon.
type Cart struct {
	Items      []LineItem `json:"items"`
	CouponCode string     `json:"couponCode,omitempty"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{Items: []LineItem{}}
}

// Add puts one unit of p into the cart. A product already in the cart is
// incremented instead of duplicated, subject to MaxQuantity.
func (c *Cart) Add(p model.Product) {
	if i := c.index(p.ID); i >= 0 {
		if c.Items[i].Quantity < MaxQuantity {
			c.Items[i].Quantity++
		}
		return
	}
	c.Items = append(c.Items, LineItem{Product: p, Quantity: 1})
}

// Increment adds one unit to an existing line. It is a no-op at MaxQuantity.
func (c *Cart) Increment(productID string) error {
	i := c.index(productID)
	if i < 0 {
		return model.ErrNotInCart
	}
	if c.Items[i].Quantity < MaxQuantity {
		c.Items[i].Quantity++
	}
	return nil
}

// Decrement removes one unit; a line at quantity 1 is removed entirely.
func (c *Cart) Decrement(productID string) error {
	i := c.index(productID)
	if i < 0 {
		return model.ErrNotInCart
	}
	if c.Items[i].Quantity <= 1 {
		c.removeAt(i)
		return nil
	}
	c.Items[i].Quantity--
	return nil
}

// SetQuantity replaces a line's quantity. Zero or less removes the line and
// anything above MaxQuantity is clamped.
func (c *Cart) SetQuantity(productID string, quantity int) error {
	i := c.index(productID)
	if i < 0 {
		return model.ErrNotInCart
	}
	switch {
	case quantity <= 0:
		c.removeAt(i)
	case quantity > MaxQuantity:
		c.Items[i].Quantity = MaxQuantity
	default:
		c.Items[i].Quantity = quantity
	}
	return nil
}

// Remove drops a line.
func (c *Cart) Remove(productID string) error {
	i := c.index(productID)
	if i < 0 {
		return model.ErrNotInCart
	}
	c.removeAt(i)
	return nil
}

// Clear empties the cart and drops the coupon.
func (c *Cart) Clear() {
	c.Items = []LineItem{}
	c.CouponCode = ""
}

// Contains reports whether the product has a line in the cart.
func (c *Cart) Contains(productID string) bool {
	return c.index(productID) >= 0
}

// TotalItems is the sum of all line quantities.
func (c *Cart) TotalItems() int {
	n := 0
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

// ApplyCoupon records an already validated code, replacing any previous one.
func (c *Cart) ApplyCoupon(code string) {
	c.CouponCode = strings.ToUpper(strings.TrimSpace(code))
}

// ClearCoupon removes the applied coupon.
func (c *Cart) ClearCoupon() {
	c.CouponCode = ""
}

// CouponApplied reports whether a coupon is active.
func (c *Cart) CouponApplied() bool {
	return c.CouponCode != ""
}

func (c *Cart) index(productID string) int {
	for i, item := range c.Items {
		if item.Product.ID == productID {
			return i
		}
	}
	return -1
}

func (c *Cart) removeAt(i int) {
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
}
