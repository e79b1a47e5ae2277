package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/craftkart/storefront-api/internal/auth"
	"github.com/craftkart/storefront-api/internal/cache"
	"github.com/craftkart/storefront-api/internal/config"
	"github.com/craftkart/storefront-api/internal/database"
	"github.com/craftkart/storefront-api/internal/handlers"
	"github.com/craftkart/storefront-api/internal/routes"
	"github.com/craftkart/storefront-api/internal/services"
	"github.com/craftkart/storefront-api/internal/store"
	"github.com/craftkart/storefront-api/internal/worker"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, relying on system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	auth.SetSecret(cfg.JWTSecret)

	// --- Database ---
	db, err := database.Open(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// --- Cache (optional) ---
	var appCache *cache.Cache
	if cfg.RedisAddr != "" {
		client, err := cache.Connect(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			slog.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer client.Close()
		appCache = cache.New(client, 5*time.Minute)
	} else {
		slog.Info("REDIS_ADDR not set, running without cache")
	}

	// --- Stores & Services ---
	categoryStore := store.NewCategoryStore(db)
	productStore := store.NewProductStore(db)
	reviewStore := store.NewReviewStore(db)
	wishlistStore := store.NewWishlistStore(db)
	settingsStore := store.NewSettingsStore(db)
	userStore := store.NewUserStore(db)

	app := &handlers.Handlers{
		Categories: services.NewCategoryService(categoryStore, productStore, appCache),
		Products:   services.NewProductService(productStore, categoryStore),
		Reviews:    services.NewReviewService(reviewStore, productStore, userStore),
		Wishlists:  services.NewWishlistService(wishlistStore, productStore),
		Settings:   services.NewSettingsService(settingsStore, appCache),
		Users:      userStore,
	}

	// --- Background Worker ---
	// Product counts are not maintained on category writes; the reconciler
	// recomputes them on a schedule.
	scheduler, err := worker.Start(cfg.ReconcileSchedule, db)
	if err != nil {
		slog.Error("failed to start background worker", "error", err)
		os.Exit(1)
	}
	defer scheduler.Stop()

	// --- Router & Server ---
	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := routes.SetupRouter(app)

	slog.Info("starting storefront API server", "addr", cfg.Addr(), "env", cfg.Env)
	if err := router.Run(cfg.Addr()); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
