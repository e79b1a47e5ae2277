package services

import (
	"context"
	"log/slog"
	"slices"

	"github.com/craftkart/storefront-api/internal/apperr"
	"github.com/craftkart/storefront-api/internal/cache"
	"github.com/craftkart/storefront-api/internal/models"
)

const settingsCacheKey = "settings:site"

// SettingsService exposes the site settings map. Reads are public and
// cached; writes are admin-only (enforced at the boundary) and restricted
// to the allow-listed keys.
type SettingsService struct {
	settings SettingsStore
	cache    *cache.Cache
}

func NewSettingsService(settings SettingsStore, c *cache.Cache) *SettingsService {
	return &SettingsService{settings: settings, cache: c}
}

// GetSettings returns all site settings.
func (s *SettingsService) GetSettings(ctx context.Context) (models.SiteSettings, error) {
	var cached models.SiteSettings
	if s.cache.GetJSON(ctx, settingsCacheKey, &cached) {
		return cached, nil
	}

	settings, err := s.settings.GetAll(ctx)
	if err != nil {
		slog.Error("get settings failed", "error", err)
		return nil, err
	}

	s.cache.SetJSON(ctx, settingsCacheKey, settings)
	return settings, nil
}

// UpdateSettings writes the given key-value pairs and returns the full,
// fresh settings map. Unknown keys are rejected before anything is written.
func (s *SettingsService) UpdateSettings(ctx context.Context, updates map[string]string) (models.SiteSettings, error) {
	if len(updates) == 0 {
		return nil, apperr.InvalidArgument("no settings provided")
	}
	for key := range updates {
		if !slices.Contains(models.AllowedSettingKeys, key) {
			return nil, apperr.InvalidArgument("unknown setting key: " + key)
		}
	}

	for key, value := range updates {
		if err := s.settings.Set(ctx, key, value); err != nil {
			slog.Error("update settings failed", "key", key, "error", err)
			return nil, err
		}
	}

	s.cache.Delete(ctx, settingsCacheKey)
	return s.GetSettings(ctx)
}

// MaintenanceMode reports whether the storefront is in maintenance mode.
// Lookup failures count as "not in maintenance" so a settings outage does
// not lock everyone out.
func (s *SettingsService) MaintenanceMode(ctx context.Context) bool {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return false
	}
	return settings[models.SettingMaintenanceMode] == "true"
}
