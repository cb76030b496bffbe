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

// Ratings accepted by ReviewService.Add.
const (
	MinRating = 1
	MaxRating = 5
)

type reviewService struct {
	reviews  repository.ReviewRepository
	products repository.ProductRepository
	logger   zerolog.Logger
}

// NewReviewService creates the review service.
func NewReviewService(reviews repository.ReviewRepository, products repository.ProductRepository, logger zerolog.Logger) ReviewService {
	return &reviewService{
		reviews:  reviews,
		products: products,
		logger:   logger.With().Str("service", "review").Logger(),
	}
}

func (s *reviewService) List(ctx context.Context, userID uuid.UUID) ([]model.Review, error) {
	reviews, err := s.reviews.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	ids := make([]string, len(reviews))
	for i := range reviews {
		ids[i] = reviews[i].ProductID
	}
	catalog, err := productsByID(ctx, s.products, ids)
	if err != nil {
		return nil, err
	}
	for i := range reviews {
		reviews[i].Product = catalog[reviews[i].ProductID]
	}
	return reviews, nil
}

func (s *reviewService) Add(ctx context.Context, userID uuid.UUID, req *model.ReviewRequest) (*model.Review, error) {
	productID := strings.TrimSpace(req.ProductID)
	if productID == "" {
		return nil, model.NewValidationError("productId", "Product ID is required")
	}
	if req.Rating == 0 {
		return nil, model.NewValidationError("rating", "Rating is required")
	}
	if req.Rating < MinRating || req.Rating > MaxRating {
		return nil, model.ErrInvalidRating
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		s.logger.Debug().Str("product_id", productID).Msg("review for unknown product")
		return nil, model.ErrProductNotFound
	}

	review := &model.Review{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
		Rating:    req.Rating,
	}
	if comment := strings.TrimSpace(req.Comment); comment != "" {
		review.Comment = &comment
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	review.Product = product

	s.logger.Info().
		Str("review_id", review.ID.String()).
		Str("product_id", productID).
		Int("rating", review.Rating).
		Msg("review added")
	return review, nil
}

// productsByID loads the products named by ids, keyed by ID. Products that
// no longer exist are absent from the map.
func productsByID(ctx context.Context, repo repository.ProductRepository, ids []string) (map[string]*model.Product, error) {
	out := make(map[string]*model.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	products, err := repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	for i := range products {
		out[products[i].ID] = &products[i]
	}
	return out, nil
}
