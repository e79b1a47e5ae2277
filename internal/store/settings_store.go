package store

import (
	"context"
	"database/sql"

	"github.com/craftkart/storefront-api/internal/models"
)

// SettingsStore persists site settings as key-value rows.
type SettingsStore struct {
	DB *sql.DB
}

func NewSettingsStore(db *sql.DB) *SettingsStore {
	return &SettingsStore{DB: db}
}

// GetAll returns every settings row as a map.
func (s *SettingsStore) GetAll(ctx context.Context) (models.SiteSettings, error) {
	rows, err := s.DB.QueryContext(ctx, "SELECT setting_key, setting_value FROM settings")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	settings := models.SiteSettings{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		settings[key] = value
	}
	return settings, rows.Err()
}

// Set upserts a single setting.
func (s *SettingsStore) Set(ctx context.Context, key, value string) error {
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO settings (setting_key, setting_value) VALUES (?, ?)
		 ON DUPLICATE KEY UPDATE setting_value = VALUES(setting_value)`,
		key, value,
	)
	return err
}
