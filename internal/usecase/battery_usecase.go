package usecase

import (
	"context"

	"smartpack/internal/domain/derive"
	"smartpack/internal/domain/entity"
)

// BatteryStatus is the battery reading with its derived labels
type BatteryStatus struct {
	Battery      entity.Battery      `json:"battery"`
	Tier         derive.BatteryTier  `json:"tier"`
	Mode         derive.BatteryMode  `json:"mode"`
	RuntimeLabel derive.RuntimeLabel `json:"runtime_label"`
	Runtime      string              `json:"runtime"` // Estimated runtime, e.g. "5h30m"
	IsLow        bool                `json:"is_low"`
}

// BatteryUsecase defines the interface for battery monitoring use cases
type BatteryUsecase interface {
	// GetBattery returns the current battery status
	GetBattery(ctx context.Context) (*BatteryStatus, error)

	// SetChargingState plugs or unplugs the charger
	SetChargingState(ctx context.Context, charging bool) (*BatteryStatus, error)

	// Tick advances the battery simulation by one step. Reports false when idle
	Tick(ctx context.Context) (bool, error)
}
