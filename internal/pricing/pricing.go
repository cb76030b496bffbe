// Package pricing computes cart totals: coupon discount, tax, handling and
// delivery. All arithmetic is decimal; float prices are converted on entry.
package pricing

import (
	"fmt"
	"strings"

	"mwell-store/internal/cart"

	"github.com/shopspring/decimal"
)

// PaymentMethod is the checkout payment option. It is carried through for
// display only and never changes totals.
type PaymentMethod string

const (
	PaymentCOD     PaymentMethod = "COD"
	PaymentCard    PaymentMethod = "CARD"
	PaymentPhonePe PaymentMethod = "PHONEPE"
	PaymentPaytm   PaymentMethod = "PAYTM"
)

var (
	// CouponRate is the fraction of the subtotal removed by a coupon.
	CouponRate = decimal.RequireFromString("0.90")

	// TaxRate is applied to the post-coupon amount.
	TaxRate = decimal.RequireFromString("0.18")

	// HandlingCharge is the flat fee for any non-empty cart.
	HandlingCharge = decimal.NewFromInt(20)

	// DeliveryCharge is always free.
	DeliveryCharge = decimal.Zero
)

// ParsePaymentMethod accepts any case; empty defaults to cash on delivery.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch m := PaymentMethod(strings.ToUpper(strings.TrimSpace(s))); m {
	case "":
		return PaymentCOD, nil
	case PaymentCOD, PaymentCard, PaymentPhonePe, PaymentPaytm:
		return m, nil
	default:
		return "", fmt.Errorf("unknown payment method %q", s)
	}
}

// Line is the priced view of one cart line.
type Line struct {
	ProductID          string          `json:"productId"`
	Name               string          `json:"name"`
	Quantity           int             `json:"quantity"`
	UnitPrice          decimal.Decimal `json:"unitPrice"`
	EffectiveUnitPrice decimal.Decimal `json:"effectiveUnitPrice"`
	LineTotal          decimal.Decimal `json:"lineTotal"`
}

// Summary is the full price breakdown of a cart.
type Summary struct {
	Lines          []Line          `json:"lines"`
	ItemCount      int             `json:"itemCount"`
	CouponApplied  bool            `json:"couponApplied"`
	PaymentMethod  PaymentMethod   `json:"paymentMethod"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	CouponDiscount decimal.Decimal `json:"couponDiscount"`
	PostCoupon     decimal.Decimal `json:"postCoupon"`
	Tax            decimal.Decimal `json:"tax"`
	Handling       decimal.Decimal `json:"handling"`
	Delivery       decimal.Decimal `json:"delivery"`
	Total          decimal.Decimal `json:"total"`
}

// Quote prices the given lines.
func Quote(items []cart.LineItem, couponApplied bool, method PaymentMethod) Summary {
	if method == "" {
		method = PaymentCOD
	}

	s := Summary{
		Lines:         make([]Line, 0, len(items)),
		CouponApplied: couponApplied,
		PaymentMethod: method,
	}

	subtotal := decimal.Zero
	for _, item := range items {
		unit := decimal.NewFromFloat(item.Product.Price)
		qty := decimal.NewFromInt(int64(item.Quantity))
		effective := EffectiveUnitPrice(unit, couponApplied)

		subtotal = subtotal.Add(unit.Mul(qty))
		s.ItemCount += item.Quantity
		s.Lines = append(s.Lines, Line{
			ProductID:          item.Product.ID,
			Name:               item.Product.Name,
			Quantity:           item.Quantity,
			UnitPrice:          unit,
			EffectiveUnitPrice: effective,
			LineTotal:          effective.Mul(qty),
		})
	}

	discount := decimal.Zero
	if couponApplied {
		discount = subtotal.Mul(CouponRate)
	}

	postCoupon := decimal.Max(decimal.Zero, subtotal.Sub(discount))
	tax := postCoupon.Mul(TaxRate).Round(2)

	handling := decimal.Zero
	if len(items) > 0 {
		handling = HandlingCharge
	}

	s.Subtotal = subtotal
	s.CouponDiscount = discount
	s.PostCoupon = postCoupon
	s.Tax = tax
	s.Handling = handling
	s.Delivery = DeliveryCharge
	s.Total = postCoupon.Add(tax).Add(handling).Add(DeliveryCharge)
	return s
}

// QuoteCart prices a cart using its own coupon state.
func QuoteCart(c *cart.Cart, method PaymentMethod) Summary {
	return Quote(c.Items, c.CouponApplied(), method)
}

// EffectiveUnitPrice is the per-unit price shown to the shopper: the coupon
// rate applied per unit when a coupon is active.
func EffectiveUnitPrice(unit decimal.Decimal, couponApplied bool) decimal.Decimal {
	if !couponApplied {
		return unit
	}
	return unit.Mul(decimal.NewFromInt(1).Sub(CouponRate))
}
