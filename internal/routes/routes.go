package routes

import (
	"net/http"

	"github.com/craftkart/storefront-api/internal/handlers"
	"github.com/craftkart/storefront-api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware tells the browser that the storefront frontend may call us.
func CORSMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		// Preflight OPTIONS requests get an empty 204 reply.
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()

	router.Use(CORSMiddleware("http://localhost:5173"))

	v1 := router.Group("/v1")
	{
		// --- Ping Route (Public) ---
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Auth Routes (Public) ---
		v1.POST("/register", h.Register)
		v1.POST("/login", h.Login)

		// --- Catalog Routes (Public) ---
		v1.GET("/categories", h.ListCategories)
		v1.GET("/categories/:idOrSlug", h.GetCategory)
		v1.GET("/products", h.ListProducts)
		v1.GET("/products/:id", h.GetProduct)
		v1.GET("/products/:id/reviews", h.ListProductReviews)

		// --- Checkout Helpers (Public) ---
		v1.POST("/validate/postal-code", h.ValidatePostalCode)

		// --- Site Settings (Public read) ---
		v1.GET("/settings", h.GetSettings)

		// --- Protected Routes (Login Required) ---
		authed := v1.Group("/")
		authed.Use(middleware.Auth(h.Settings))
		{
			authed.POST("/reviews", h.AddReview)

			authed.GET("/wishlist", h.GetWishlist)
			authed.POST("/wishlist/items", h.AddWishlistItem)
			authed.DELETE("/wishlist/items/:product_id", h.RemoveWishlistItem)
		}

		// --- Admin-Only Routes ---
		admin := v1.Group("/admin")
		admin.Use(middleware.Auth(h.Settings))
		admin.Use(middleware.AdminOnly(h.Users))
		{
			admin.POST("/categories", h.CreateCategory)
			admin.PATCH("/categories/:id", h.UpdateCategory)
			admin.DELETE("/categories/:id", h.DeleteCategory)

			admin.POST("/products", h.CreateProduct)
			admin.PATCH("/products/:id", h.UpdateProduct)
			admin.DELETE("/products/:id", h.DeleteProduct)

			admin.PATCH("/settings", h.UpdateSettings)
		}
	}

	return router
}
