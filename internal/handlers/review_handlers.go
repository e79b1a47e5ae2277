package handlers

import (
	"net/http"
	"strconv"

	"github.com/craftkart/storefront-api/internal/apperr"
	"github.com/craftkart/storefront-api/internal/middleware"
	"github.com/craftkart/storefront-api/internal/models"
	"github.com/gin-gonic/gin"
)

// AddReview is the handler for POST /v1/reviews (login required).
func (h *Handlers) AddReview(c *gin.Context) {
	var input models.AddReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, apperr.InvalidArgument(err.Error()))
		return
	}

	userID := c.GetString(middleware.ContextUserID)
	if userID == "" {
		fail(c, apperr.Unauthenticated("authentication required"))
		return
	}

	review, err := h.Reviews.AddReview(c.Request.Context(), userID, input)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusCreated, gin.H{"review": review})
}

// ListProductReviews is the handler for GET /v1/products/:id/reviews.
// The optional 'limit' query parameter is capped at 50.
func (h *Handlers) ListProductReviews(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 50 {
			fail(c, apperr.InvalidArgument("limit must be an integer between 1 and 50"))
			return
		}
		limit = parsed
	}

	reviews, err := h.Reviews.ListProductReviews(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, gin.H{"reviews": reviews})
}
