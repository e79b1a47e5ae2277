package handlers

import (
	"net/http"

	"github.com/craftkart/storefront-api/internal/apperr"
	"github.com/gin-gonic/gin"
)

// ok writes the uniform success envelope: {"success": true, ...data}.
func ok(c *gin.Context, status int, data gin.H) {
	payload := gin.H{"success": true}
	for k, v := range data {
		payload[k] = v
	}
	c.JSON(status, payload)
}

// fail classifies err and writes the uniform error envelope:
// {"success": false, "error": {"code", "message"}}. Anything that is not
// already a classified condition surfaces as 'internal'.
func fail(c *gin.Context, err error) {
	appErr := apperr.Classify(err)
	c.JSON(statusFor(appErr.Code), gin.H{
		"success": false,
		"error":   gin.H{"code": appErr.Code, "message": appErr.Message},
	})
}

func statusFor(code apperr.Code) int {
	switch code {
	case apperr.CodeUnauthenticated:
		return http.StatusUnauthorized
	case apperr.CodePermissionDenied:
		return http.StatusForbidden
	case apperr.CodeInvalidArgument:
		return http.StatusBadRequest
	case apperr.CodeFailedPrecondition:
		return http.StatusConflict
	case apperr.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
