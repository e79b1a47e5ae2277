package handlers

import (
	"net/http"

	"github.com/craftkart/storefront-api/internal/apperr"
	"github.com/craftkart/storefront-api/internal/validation"
	"github.com/gin-gonic/gin"
)

// ValidatePostalCodeInput is the payload for the postal code check.
type ValidatePostalCodeInput struct {
	ZipCode     string `json:"zipCode" binding:"required"`
	CountryCode string `json:"countryCode"`
}

// ValidatePostalCode is the handler for POST /v1/validate/postal-code.
// A malformed code is a normal isValid:false result, never an error.
func (h *Handlers) ValidatePostalCode(c *gin.Context) {
	var input ValidatePostalCodeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, apperr.InvalidArgument(err.Error()))
		return
	}

	result := validation.ValidatePostalCode(input.ZipCode, input.CountryCode)

	ok(c, http.StatusOK, gin.H{"validationResult": result})
}
