package services

import (
	"context"
	"log/slog"

	"github.com/craftkart/storefront-api/internal/apperr"
	"github.com/craftkart/storefront-api/internal/models"
)

// WishlistService implements per-user wishlists of product references.
type WishlistService struct {
	wishlists WishlistStore
	products  ProductStore
}

func NewWishlistService(wishlists WishlistStore, products ProductStore) *WishlistService {
	return &WishlistService{wishlists: wishlists, products: products}
}

// Add puts a product on the user's wishlist. Adding a product that is
// already listed is a no-op, not an error.
func (s *WishlistService) Add(ctx context.Context, userID, productID string) error {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		slog.Error("wishlist add: product lookup failed", "productId", productID, "error", err)
		return err
	}
	if product == nil {
		return apperr.NotFound("product not found")
	}

	if err := s.wishlists.Add(ctx, userID, productID); err != nil {
		slog.Error("wishlist add failed", "userId", userID, "productId", productID, "error", err)
		return err
	}
	return nil
}

// Remove takes a product off the user's wishlist. Removing a product that
// is not listed is a no-op.
func (s *WishlistService) Remove(ctx context.Context, userID, productID string) error {
	if err := s.wishlists.Remove(ctx, userID, productID); err != nil {
		slog.Error("wishlist remove failed", "userId", userID, "productId", productID, "error", err)
		return err
	}
	return nil
}

// List returns the products on the user's wishlist.
func (s *WishlistService) List(ctx context.Context, userID string) ([]models.Product, error) {
	products, err := s.wishlists.ListProducts(ctx, userID)
	if err != nil {
		slog.Error("wishlist list failed", "userId", userID, "error", err)
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}
