package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/craftkart/storefront-api/internal/apperr"
	"github.com/craftkart/storefront-api/internal/models"
)

const (
	defaultReviewLimit = 20
	maxReviewLimit     = 50
)

// ReviewService implements product reviews: authenticated users add them,
// anyone lists them newest-first.
type ReviewService struct {
	reviews  ReviewStore
	products ProductStore
	users    UserStore
}

func NewReviewService(reviews ReviewStore, products ProductStore, users UserStore) *ReviewService {
	return &ReviewService{reviews: reviews, products: products, users: users}
}

// AddReview records a review by the given user. The product must exist;
// the reviewer's display name is denormalized onto the review.
func (s *ReviewService) AddReview(ctx context.Context, userID string, input models.AddReviewInput) (*models.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, apperr.InvalidArgument("rating must be between 1 and 5")
	}

	product, err := s.products.GetByID(ctx, input.ProductID)
	if err != nil {
		slog.Error("add review: product lookup failed", "productId", input.ProductID, "error", err)
		return nil, err
	}
	if product == nil {
		return nil, apperr.NotFound("product not found")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		slog.Error("add review: user lookup failed", "userId", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, apperr.Unauthenticated("unknown user")
	}

	review := &models.Review{
		ProductID: input.ProductID,
		UserID:    userID,
		UserName:  user.FullName,
		Rating:    input.Rating,
		Comment:   strings.TrimSpace(input.Comment),
	}
	if err := s.reviews.Insert(ctx, review); err != nil {
		slog.Error("add review: insert failed", "productId", input.ProductID, "error", err)
		return nil, err
	}
	return review, nil
}

// ListProductReviews returns up to limit reviews for a product, newest
// first. A zero limit means the default; the ceiling is enforced here as
// well as at the boundary.
func (s *ReviewService) ListProductReviews(ctx context.Context, productID string, limit int) ([]models.Review, error) {
	if limit <= 0 {
		limit = defaultReviewLimit
	}
	if limit > maxReviewLimit {
		limit = maxReviewLimit
	}

	reviews, err := s.reviews.ListForProduct(ctx, productID, limit)
	if err != nil {
		slog.Error("list reviews failed", "productId", productID, "error", err)
		return nil, err
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	return reviews, nil
}
