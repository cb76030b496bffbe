package service

import (
	"context"
	"fmt"
	"strings"

	"mwell-store/internal/model"
	"mwell-store/internal/repository"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// GetAll retrieves all products with pagination.
func (s *productService) GetAll(ctx context.Context, limit, offset int) ([]model.Product, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	products, err := s.productRepo.GetAll(ctx, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to get all products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	s.logger.Debug().
		Int("count", len(products)).
		Int("limit", limit).
		Int("offset", offset).
		Msg("retrieved products")

	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if id == "" {
		s.logger.Warn().Msg("product ID is empty")
		return nil, model.ErrProductNotFound
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// Create adds a product to the catalog.
func (s *productService) Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	if err := validateProductRequest(req, true); err != nil {
		return nil, err
	}

	p := productFromRequest(strings.TrimSpace(req.ID), req)
	if err := s.productRepo.Create(ctx, p); err != nil {
		if model.KindOf(err) == model.KindConflict {
			return nil, err
		}
		s.logger.Error().Err(err).Str("product_id", p.ID).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().Str("product_id", p.ID).Msg("product created")
	return p, nil
}

// Update replaces the product with the given ID.
func (s *productService) Update(ctx context.Context, id string, req *model.ProductRequest) (*model.Product, error) {
	if err := validateProductRequest(req, false); err != nil {
		return nil, err
	}

	p := productFromRequest(id, req)
	ok, err := s.productRepo.Update(ctx, p)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	if !ok {
		return nil, model.ErrProductNotFound
	}

	s.logger.Info().Str("product_id", id).Msg("product updated")
	return p, nil
}

// Delete removes a product from the catalog.
func (s *productService) Delete(ctx context.Context, id string) error {
	ok, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		if model.KindOf(err) == model.KindConflict {
			return err
		}
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if !ok {
		return model.ErrProductNotFound
	}

	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

func validateProductRequest(req *model.ProductRequest, needID bool) error {
	if req == nil {
		return model.NewValidationError("", "Product payload is required")
	}
	if needID && strings.TrimSpace(req.ID) == "" {
		return model.NewValidationError("id", "Product ID is required")
	}
	if strings.TrimSpace(req.Name) == "" {
		return model.NewValidationError("name", "Product name is required")
	}
	if strings.TrimSpace(req.Category) == "" {
		return model.NewValidationError("category", "Category is required")
	}
	if req.Price < 0 {
		return model.NewValidationError("price", "Price cannot be negative")
	}
	if req.OriginalPrice != nil && *req.OriginalPrice < 0 {
		return model.NewValidationError("originalPrice", "Original price cannot be negative")
	}
	if req.DiscountPercent != nil && (*req.DiscountPercent < 0 || *req.DiscountPercent > 100) {
		return model.NewValidationError("discount", "Discount must be between 0 and 100")
	}
	return nil
}

func productFromRequest(id string, req *model.ProductRequest) *model.Product {
	return &model.Product{
		ID:              id,
		Name:            strings.TrimSpace(req.Name),
		Description:     req.Description,
		Brand:           req.Brand,
		Category:        strings.TrimSpace(req.Category),
		Price:           req.Price,
		OriginalPrice:   req.OriginalPrice,
		DiscountPercent: req.DiscountPercent,
		InStock:         req.InStock,
	}
}
