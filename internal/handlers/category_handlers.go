package handlers

import (
	"net/http"

	"github.com/craftkart/storefront-api/internal/apperr"
	"github.com/craftkart/storefront-api/internal/models"
	"github.com/craftkart/storefront-api/internal/services"
	"github.com/gin-gonic/gin"
)

// CreateCategory is the handler for POST /v1/admin/categories.
func (h *Handlers) CreateCategory(c *gin.Context) {
	var input models.CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, apperr.InvalidArgument(err.Error()))
		return
	}

	category, err := h.Categories.CreateCategory(c.Request.Context(), input)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusCreated, gin.H{"category": category})
}

// GetCategory is the handler for GET /v1/categories/:idOrSlug.
// The parameter may be a store-assigned ID or a slug.
func (h *Handlers) GetCategory(c *gin.Context) {
	category, err := h.Categories.GetCategory(c.Request.Context(), c.Param("idOrSlug"))
	if err != nil {
		fail(c, err)
		return
	}
	if category == nil {
		fail(c, apperr.NotFound("category not found"))
		return
	}

	ok(c, http.StatusOK, gin.H{"category": category})
}

// ListCategories is the handler for GET /v1/categories.
// The 'parent' query parameter selects the mode: absent returns every
// category, the literal "null" returns top-level categories only, and an
// ID returns the direct children of that category.
func (h *Handlers) ListCategories(c *gin.Context) {
	var filter services.CategoryFilter
	if parent, present := c.GetQuery("parent"); present {
		if parent == "null" {
			filter.TopLevelOnly = true
		} else {
			filter.ParentID = &parent
		}
	}

	categories, err := h.Categories.ListCategories(c.Request.Context(), filter)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, gin.H{"categories": categories})
}

// UpdateCategory is the handler for PATCH /v1/admin/categories/:id.
// Only the fields present in the payload are changed.
func (h *Handlers) UpdateCategory(c *gin.Context) {
	var input models.UpdateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, apperr.InvalidArgument(err.Error()))
		return
	}
	if input.Name == nil && !input.ParentID.Set && input.IsEnabled == nil {
		fail(c, apperr.InvalidArgument("no updatable fields provided"))
		return
	}

	category, err := h.Categories.UpdateCategory(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, gin.H{"category": category})
}

// DeleteCategory is the handler for DELETE /v1/admin/categories/:id.
func (h *Handlers) DeleteCategory(c *gin.Context) {
	if err := h.Categories.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, gin.H{"message": "category deleted"})
}
