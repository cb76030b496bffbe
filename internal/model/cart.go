package model

// AddToCartRequest adds one unit of a product to the caller's cart.
type AddToCartRequest struct {
	ProductID string `json:"productId"`
}

// SetQuantityRequest sets a cart line's quantity; zero or less removes it.
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// ApplyCouponRequest carries a coupon code in any case.
type ApplyCouponRequest struct {
	Code string `json:"code"`
}

// QuoteItem is one line of a stateless price quote.
type QuoteItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// QuoteRequest prices arbitrary lines without touching a stored cart.
type QuoteRequest struct {
	Items         []QuoteItem `json:"items"`
	CouponCode    string      `json:"couponCode,omitempty"`
	PaymentMethod string      `json:"paymentMethod,omitempty"`
}
