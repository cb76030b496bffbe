package service

import (
	"context"
	"fmt"
	"time"

	"mwell-store/internal/cart"
	"mwell-store/internal/coupon"
	"mwell-store/internal/model"
	"mwell-store/internal/pricing"
	"mwell-store/internal/repository"

	"github.com/rs/zerolog"
)

type cartService struct {
	store       cart.Store
	productRepo repository.ProductRepository
	validator   coupon.Validator
	now         func() time.Time
	logger      zerolog.Logger
}

// NewCartService creates the cart service over a session store.
func NewCartService(store cart.Store, productRepo repository.ProductRepository, validator coupon.Validator, logger zerolog.Logger) CartService {
	return &cartService{
		store:       store,
		productRepo: productRepo,
		validator:   validator,
		now:         time.Now,
		logger:      logger.With().Str("service", "cart").Logger(),
	}
}

func (s *cartService) View(ctx context.Context, sessionID string) (*CartView, error) {
	c, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return viewOf(c), nil
}

// Add puts one unit of a catalog product in the cart.
func (s *cartService) Add(ctx context.Context, sessionID, productID string) (*CartView, error) {
	if productID == "" {
		return nil, model.NewValidationError("productId", "Product ID is required")
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", productID).Msg("failed to get product")
		return nil, fmt.Errorf("failed to add to cart: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}

	return s.mutate(ctx, sessionID, func(c *cart.Cart) error {
		c.Add(*product)
		return nil
	})
}

func (s *cartService) Increment(ctx context.Context, sessionID, productID string) (*CartView, error) {
	return s.mutate(ctx, sessionID, func(c *cart.Cart) error {
		return c.Increment(productID)
	})
}

func (s *cartService) Decrement(ctx context.Context, sessionID, productID string) (*CartView, error) {
	return s.mutate(ctx, sessionID, func(c *cart.Cart) error {
		return c.Decrement(productID)
	})
}

func (s *cartService) SetQuantity(ctx context.Context, sessionID, productID string, quantity int) (*CartView, error) {
	return s.mutate(ctx, sessionID, func(c *cart.Cart) error {
		return c.SetQuantity(productID, quantity)
	})
}

func (s *cartService) Remove(ctx context.Context, sessionID, productID string) (*CartView, error) {
	return s.mutate(ctx, sessionID, func(c *cart.Cart) error {
		return c.Remove(productID)
	})
}

func (s *cartService) Clear(ctx context.Context, sessionID string) (*CartView, error) {
	if err := s.store.Delete(ctx, sessionID); err != nil {
		s.logger.Error().Err(err).Str("session_id", sessionID).Msg("failed to clear cart")
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}
	return viewOf(cart.New()), nil
}

// ApplyCoupon validates the code first; an unknown code leaves the cart
// untouched.
func (s *cartService) ApplyCoupon(ctx context.Context, sessionID, code string) (*CartView, error) {
	cp, err := s.validator.Validate(ctx, code)
	if err != nil {
		s.logger.Debug().Err(err).Str("session_id", sessionID).Msg("coupon rejected")
		return nil, err
	}

	return s.mutate(ctx, sessionID, func(c *cart.Cart) error {
		c.ApplyCoupon(cp.Code)
		return nil
	})
}

func (s *cartService) ClearCoupon(ctx context.Context, sessionID string) (*CartView, error) {
	return s.mutate(ctx, sessionID, func(c *cart.Cart) error {
		c.ClearCoupon()
		return nil
	})
}

func (s *cartService) load(ctx context.Context, sessionID string) (*cart.Cart, error) {
	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		s.logger.Error().Err(err).Str("session_id", sessionID).Msg("failed to load cart")
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return c, nil
}

// mutate loads, changes and saves the cart. Nothing is saved when fn fails.
func (s *cartService) mutate(ctx context.Context, sessionID string, fn func(*cart.Cart) error) (*CartView, error) {
	c, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := fn(c); err != nil {
		return nil, err
	}

	c.UpdatedAt = s.now()
	if err := s.store.Save(ctx, sessionID, c); err != nil {
		s.logger.Error().Err(err).Str("session_id", sessionID).Msg("failed to save cart")
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}

	s.logger.Debug().
		Str("session_id", sessionID).
		Int("items", c.TotalItems()).
		Bool("coupon", c.CouponApplied()).
		Msg("cart updated")

	return viewOf(c), nil
}

func viewOf(c *cart.Cart) *CartView {
	return &CartView{Cart: c, Summary: pricing.QuoteCart(c, pricing.PaymentCOD)}
}
