package handlers

import (
	"net/http"

	"github.com/craftkart/storefront-api/internal/apperr"
	"github.com/craftkart/storefront-api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// GetWishlist is the handler for GET /v1/wishlist (login required).
func (h *Handlers) GetWishlist(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	products, err := h.Wishlists.List(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, gin.H{"products": products})
}

// AddWishlistItemInput is the payload for adding a wishlist entry.
type AddWishlistItemInput struct {
	ProductID string `json:"productId" binding:"required"`
}

// AddWishlistItem is the handler for POST /v1/wishlist/items.
// Re-adding a product that is already listed succeeds without change.
func (h *Handlers) AddWishlistItem(c *gin.Context) {
	var input AddWishlistItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, apperr.InvalidArgument(err.Error()))
		return
	}

	userID := c.GetString(middleware.ContextUserID)
	if err := h.Wishlists.Add(c.Request.Context(), userID, input.ProductID); err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusCreated, gin.H{"message": "product added to wishlist"})
}

// RemoveWishlistItem is the handler for DELETE /v1/wishlist/items/:product_id.
func (h *Handlers) RemoveWishlistItem(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	if err := h.Wishlists.Remove(c.Request.Context(), userID, c.Param("product_id")); err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, gin.H{"message": "product removed from wishlist"})
}
