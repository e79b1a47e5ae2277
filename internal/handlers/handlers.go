package handlers

import (
	"github.com/craftkart/storefront-api/internal/services"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	Categories *services.CategoryService
	Products   *services.ProductService
	Reviews    *services.ReviewService
	Wishlists  *services.WishlistService
	Settings   *services.SettingsService
	Users      services.UserStore
}
