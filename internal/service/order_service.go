package service

import (
	"context"
	"fmt"
	"time"

	"mwell-store/internal/auth"
	"mwell-store/internal/cart"
	"mwell-store/internal/model"
	"mwell-store/internal/pricing"
	"mwell-store/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	carts       cart.Store
	now         func() time.Time
	logger      zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	carts cart.Store,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		carts:       carts,
		now:         time.Now,
		logger:      logger.With().Str("service", "order").Logger(),
	}
}

// Checkout prices the owner's cart at current catalog prices, stores the
// order and its items in one transaction and empties the cart.
func (s *orderService) Checkout(ctx context.Context, ownerID uuid.UUID, req *model.CheckoutRequest) (*model.Order, error) {
	method := pricing.PaymentCOD
	if req != nil {
		m, err := pricing.ParsePaymentMethod(req.PaymentMethod)
		if err != nil {
			return nil, model.NewValidationError("paymentMethod", "Payment method is not supported")
		}
		method = m
	}

	sessionID := ownerID.String()
	c, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		s.logger.Error().Err(err).Str("owner_id", sessionID).Msg("failed to load cart")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	if len(c.Items) == 0 {
		return nil, model.ErrEmptyCart
	}

	if err := s.refreshPrices(ctx, c); err != nil {
		return nil, err
	}

	summary := pricing.QuoteCart(c, method)
	order := orderFromSummary(ownerID, c, summary, s.now())

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err = s.orderRepo.CreateOrderItems(ctx, tx, order.Items); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Int("item_count", len(order.Items)).
			Msg("failed to create order items")
		return nil, fmt.Errorf("failed to create order items: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if delErr := s.carts.Delete(ctx, sessionID); delErr != nil {
		s.logger.Warn().Err(delErr).Str("order_id", order.ID.String()).Msg("order placed but cart not cleared")
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Int("item_count", len(order.Items)).
		Float64("total", order.Total).
		Msg("order created successfully")

	return order, nil
}

// GetByID returns the order if the caller owns it or is an admin. Other
// callers see it as absent.
func (s *orderService) GetByID(ctx context.Context, caller auth.Identity, id uuid.UUID) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order == nil || (!caller.IsAdmin() && order.OwnerID != caller.UserID) {
		s.logger.Debug().Str("order_id", id.String()).Msg("order not found")
		return nil, model.ErrOrderNotFound
	}

	return order, nil
}

func (s *orderService) List(ctx context.Context, caller auth.Identity, limit, offset int) ([]model.Order, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	var owner *uuid.UUID
	if !caller.IsAdmin() {
		owner = &caller.UserID
	}

	orders, err := s.orderRepo.List(ctx, owner, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// refreshPrices replaces each line's product snapshot with the catalog row.
func (s *orderService) refreshPrices(ctx context.Context, c *cart.Cart) error {
	ids := make([]string, len(c.Items))
	for i, item := range c.Items {
		ids[i] = item.Product.ID
	}

	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		s.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to retrieve product details")
		return fmt.Errorf("failed to retrieve product details: %w", err)
	}

	byID := make(map[string]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	for i, item := range c.Items {
		p, ok := byID[item.Product.ID]
		if !ok {
			s.logger.Warn().Str("product_id", item.Product.ID).Msg("cart references a missing product")
			return model.ErrProductNotFound
		}
		c.Items[i].Product = p
	}
	return nil
}

func orderFromSummary(ownerID uuid.UUID, c *cart.Cart, summary pricing.Summary, now time.Time) *model.Order {
	order := &model.Order{
		ID:             uuid.New(),
		OwnerID:        ownerID,
		PaymentMethod:  string(summary.PaymentMethod),
		Subtotal:       summary.Subtotal.InexactFloat64(),
		CouponDiscount: summary.CouponDiscount.InexactFloat64(),
		Tax:            summary.Tax.InexactFloat64(),
		Handling:       summary.Handling.InexactFloat64(),
		Delivery:       summary.Delivery.InexactFloat64(),
		Total:          summary.Total.InexactFloat64(),
		CreatedAt:      now,
	}
	if c.CouponApplied() {
		code := c.CouponCode
		order.CouponCode = &code
	}

	order.Items = make([]model.OrderItem, len(c.Items))
	for i, item := range c.Items {
		order.Items[i] = model.OrderItem{
			ID:          uuid.New(),
			OrderID:     order.ID,
			ProductID:   item.Product.ID,
			ProductName: item.Product.Name,
			UnitPrice:   item.Product.Price,
			Quantity:    item.Quantity,
		}
	}
	return order
}
