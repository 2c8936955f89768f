package usecase

import (
	"context"

	"smartpack/internal/domain/entity"
)

// SettingsPatch carries the settings a client wants to change; nil fields are kept
type SettingsPatch struct {
	NotificationsEnabled *bool    `json:"notifications_enabled,omitempty"`
	DarkMode             *bool    `json:"dark_mode,omitempty"`
	AutoScanBooks        *bool    `json:"auto_scan_books,omitempty"`
	BluetoothEnabled     *bool    `json:"bluetooth_enabled,omitempty"`
	MaxWeightKg          *float64 `json:"max_weight_kg,omitempty"`
	LowBatteryThreshold  *float64 `json:"low_battery_threshold,omitempty"`
}

// SettingsUsecase defines the interface for user settings use cases
type SettingsUsecase interface {
	// GetSettings returns the current settings
	GetSettings(ctx context.Context) (entity.Settings, error)

	// UpdateSettings applies a patch. Thresholds are clamped to their ranges
	UpdateSettings(ctx context.Context, patch SettingsPatch) (entity.Settings, error)

	// UpdateThreshold sets one threshold, clamped to its range. Unknown kinds are a validation error
	UpdateThreshold(ctx context.Context, kind entity.ThresholdKind, value float64) (entity.Settings, error)

	// ResetSettings restores the defaults
	ResetSettings(ctx context.Context) (entity.Settings, error)

	// PairingQR returns the PNG QR code used to pair a phone with the backpack
	PairingQR(ctx context.Context) ([]byte, error)
}
