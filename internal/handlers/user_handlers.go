package handlers

import (
	"net/http"
	"strings"

	"github.com/craftkart/storefront-api/internal/apperr"
	"github.com/craftkart/storefront-api/internal/auth"
	"github.com/craftkart/storefront-api/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterUserInput holds the payload for account registration. We never
// accept a role or an id from the caller.
type RegisterUserInput struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// Register is the handler for POST /v1/register.
func (h *Handlers) Register(c *gin.Context) {
	var input RegisterUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, apperr.InvalidArgument(err.Error()))
		return
	}

	var password models.Password
	if err := password.Set(input.Password); err != nil {
		fail(c, apperr.Internal("failed to hash password"))
		return
	}

	user := &models.User{
		Role:         models.RoleCustomer,
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		FullName:     input.FullName,
		PasswordHash: password.Hash,
	}
	if err := h.Users.Insert(c.Request.Context(), user); err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusCreated, gin.H{"user": user})
}

// LoginInput holds the payload for logging in.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login is the handler for POST /v1/login. A wrong email and a wrong
// password produce the same error so accounts cannot be enumerated.
func (h *Handlers) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, apperr.InvalidArgument(err.Error()))
		return
	}

	user, err := h.Users.GetByEmail(c.Request.Context(), strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		fail(c, err)
		return
	}
	if user == nil {
		fail(c, apperr.Unauthenticated("invalid email or password"))
		return
	}

	password := models.Password{Hash: user.PasswordHash}
	matches, err := password.Matches(input.Password)
	if err != nil {
		fail(c, err)
		return
	}
	if !matches {
		fail(c, apperr.Unauthenticated("invalid email or password"))
		return
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, gin.H{"token": token, "user": user})
}
