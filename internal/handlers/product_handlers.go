package handlers

import (
	"net/http"

	"github.com/craftkart/storefront-api/internal/apperr"
	"github.com/craftkart/storefront-api/internal/models"
	"github.com/gin-gonic/gin"
)

// ListProducts is the handler for GET /v1/products.
// The optional 'category' query parameter (ID or slug) restricts the list.
func (h *Handlers) ListProducts(c *gin.Context) {
	products, err := h.Products.ListProducts(c.Request.Context(), c.Query("category"))
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, gin.H{"products": products})
}

// GetProduct is the handler for GET /v1/products/:id.
func (h *Handlers) GetProduct(c *gin.Context) {
	product, err := h.Products.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	if product == nil {
		fail(c, apperr.NotFound("product not found"))
		return
	}

	ok(c, http.StatusOK, gin.H{"product": product})
}

// CreateProduct is the handler for POST /v1/admin/products.
func (h *Handlers) CreateProduct(c *gin.Context) {
	var input models.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, apperr.InvalidArgument(err.Error()))
		return
	}

	product, err := h.Products.CreateProduct(c.Request.Context(), input)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusCreated, gin.H{"product": product})
}

// UpdateProduct is the handler for PATCH /v1/admin/products/:id.
func (h *Handlers) UpdateProduct(c *gin.Context) {
	var input models.UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, apperr.InvalidArgument(err.Error()))
		return
	}

	product, err := h.Products.UpdateProduct(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, gin.H{"product": product})
}

// DeleteProduct is the handler for DELETE /v1/admin/products/:id.
func (h *Handlers) DeleteProduct(c *gin.Context) {
	if err := h.Products.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, gin.H{"message": "product deleted"})
}
