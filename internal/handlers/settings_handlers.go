package handlers

import (
	"net/http"

	"github.com/craftkart/storefront-api/internal/apperr"
	"github.com/gin-gonic/gin"
)

// GetSettings is the handler for GET /v1/settings (public).
func (h *Handlers) GetSettings(c *gin.Context) {
	settings, err := h.Settings.GetSettings(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, gin.H{"settings": settings})
}

// UpdateSettingsInput wraps the key-value pairs an administrator may write.
type UpdateSettingsInput struct {
	Settings map[string]string `json:"settings" binding:"required"`
}

// UpdateSettings is the handler for PATCH /v1/admin/settings.
func (h *Handlers) UpdateSettings(c *gin.Context) {
	var input UpdateSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, apperr.InvalidArgument(err.Error()))
		return
	}

	settings, err := h.Settings.UpdateSettings(c.Request.Context(), input.Settings)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, gin.H{"settings": settings})
}
