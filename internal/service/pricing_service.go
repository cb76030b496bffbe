package service

import (
	"context"
	"fmt"

	"mwell-store/internal/cart"
	"mwell-store/internal/coupon"
	"mwell-store/internal/model"
	"mwell-store/internal/pricing"
	"mwell-store/internal/repository"

	"github.com/rs/zerolog"
)

type pricingService struct {
	productRepo repository.ProductRepository
	validator   coupon.Validator
	logger      zerolog.Logger
}

// NewPricingService creates the stateless quote service.
func NewPricingService(productRepo repository.ProductRepository, validator coupon.Validator, logger zerolog.Logger) PricingService {
	return &pricingService{
		productRepo: productRepo,
		validator:   validator,
		logger:      logger.With().Str("service", "pricing").Logger(),
	}
}

// Quote prices catalog products at their current prices. Repeated product
// IDs are merged into one line.
func (s *pricingService) Quote(ctx context.Context, req *model.QuoteRequest) (*pricing.Summary, error) {
	if req == nil {
		return nil, model.NewValidationError("items", "Items are required")
	}

	method, err := pricing.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return nil, model.NewValidationError("paymentMethod", "Payment method is not supported")
	}

	couponApplied := false
	if req.CouponCode != "" {
		if _, err := s.validator.Validate(ctx, req.CouponCode); err != nil {
			return nil, err
		}
		couponApplied = true
	}

	quantities := make(map[string]int, len(req.Items))
	ids := make([]string, 0, len(req.Items))
	for _, item := range req.Items {
		if item.ProductID == "" {
			return nil, model.NewValidationError("productId", "Product ID is required")
		}
		if item.Quantity < 1 || item.Quantity > cart.MaxQuantity {
			return nil, model.ErrInvalidQuantity
		}
		if _, seen := quantities[item.ProductID]; !seen {
			ids = append(ids, item.ProductID)
		}
		quantities[item.ProductID] += item.Quantity
	}

	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		s.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to get products for quote")
		return nil, fmt.Errorf("failed to quote: %w", err)
	}
	byID := make(map[string]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	lines := make([]cart.LineItem, 0, len(ids))
	for _, id := range ids {
		p, ok := byID[id]
		if !ok {
			return nil, model.ErrProductNotFound
		}
		qty := quantities[id]
		if qty > cart.MaxQuantity {
			return nil, model.ErrInvalidQuantity
		}
		lines = append(lines, cart.LineItem{Product: p, Quantity: qty})
	}

	summary := pricing.Quote(lines, couponApplied, method)
	return &summary, nil
}
