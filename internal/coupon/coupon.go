package coupon

import (
	"context"
	"strings"
)

// BuiltinCode is the storefront's always-recognised coupon.
const BuiltinCode = "GIRISHSIR90"

// DiscountPercent is the reduction every recognised coupon grants.
const DiscountPercent = 90

// Coupon is a recognised code.
type Coupon struct {
	Code            string `json:"code"`
	DiscountPercent int    `json:"discountPercent"`
}

// Validator defines the interface for coupon code lookup.
type Validator interface {
	// Validate checks a code case-insensitively and returns the matching
	// coupon, or model.ErrInvalidCoupon.
	Validate(ctx context.Context, code string) (Coupon, error)

	// Close releases resources held by the validator.
	Close() error
}

// CouponSet represents a set of coupon codes for fast lookup.
type CouponSet interface {
	// Contains checks if a coupon code exists in the set.
	Contains(code string) bool

	// Size returns the number of coupons in the set.
	Size() int
}

// Loader defines the interface for loading coupon files.
type Loader interface {
	// Load reads a gzipped coupon file and returns a CouponSet.
	Load(ctx context.Context, filePath string) (CouponSet, error)
}

// Normalize is the canonical form used for storage and lookup.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
