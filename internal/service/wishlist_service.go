package service

import (
	"context"
	"fmt"
	"strings"

	"mwell-store/internal/model"
	"mwell-store/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type wishlistService struct {
	items    repository.WishlistRepository
	products repository.ProductRepository
	logger   zerolog.Logger
}

// NewWishlistService creates the wishlist service.
func NewWishlistService(items repository.WishlistRepository, products repository.ProductRepository, logger zerolog.Logger) WishlistService {
	return &wishlistService{
		items:    items,
		products: products,
		logger:   logger.With().Str("service", "wishlist").Logger(),
	}
}

func (s *wishlistService) List(ctx context.Context, userID uuid.UUID) ([]model.WishlistItem, error) {
	items, err := s.items.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlist: %w", err)
	}

	ids := make([]string, len(items))
	for i := range items {
		ids[i] = items[i].ProductID
	}
	catalog, err := productsByID(ctx, s.products, ids)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Product = catalog[items[i].ProductID]
	}
	return items, nil
}

func (s *wishlistService) Add(ctx context.Context, userID uuid.UUID, productID string) (*model.WishlistItem, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, model.NewValidationError("productId", "Product ID is required")
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}

	item := &model.WishlistItem{ID: uuid.New(), UserID: userID, ProductID: productID}
	if err := s.items.Add(ctx, item); err != nil {
		return nil, err
	}
	item.Product = product

	s.logger.Debug().Str("user_id", userID.String()).Str("product_id", productID).Msg("added to wishlist")
	return item, nil
}

func (s *wishlistService) Remove(ctx context.Context, userID uuid.UUID, productID string) error {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return model.NewValidationError("productId", "Product ID is required")
	}

	removed, err := s.items.Remove(ctx, userID, productID)
	if err != nil {
		return fmt.Errorf("failed to remove wishlist item: %w", err)
	}
	if !removed {
		return model.ErrNotInWishlist
	}
	return nil
}
