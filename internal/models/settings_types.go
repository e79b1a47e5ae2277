package models

// SiteSettings is the key-value settings map exposed to the storefront.
// Stored as rows in the 'settings' table (setting_key, setting_value).
type SiteSettings map[string]string

// Well-known setting keys. UpdateSettings only accepts keys from this set.
const (
	SettingSiteName        = "site_name"
	SettingSupportEmail    = "support_email"
	SettingCurrency        = "currency"
	SettingMaintenanceMode = "maintenance_mode"
	SettingFreeShippingMin = "free_shipping_min"
)

// AllowedSettingKeys lists every key an administrator may write.
var AllowedSettingKeys = []string{
	SettingSiteName,
	SettingSupportEmail,
	SettingCurrency,
	SettingMaintenanceMode,
	SettingFreeShippingMin,
}
