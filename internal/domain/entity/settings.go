package entity

import "math"

// ThresholdKind names an alert threshold that can be tuned from settings.
type ThresholdKind string

const (
	ThresholdMaxWeight  ThresholdKind = "maxWeight"
	ThresholdLowBattery ThresholdKind = "lowBattery"
)

const (
	MinMaxWeightKg = 1.0
	MaxMaxWeightKg = 10.0

	MinLowBatteryPercent = 5.0
	MaxLowBatteryPercent = 50.0

	MaxWeightStepKg       = 0.5
	LowBatteryStepPercent = 5.0

	DefaultMaxWeightKg         = 5.0
	DefaultLowBatteryThreshold = 20.0
)

// Bounds returns the inclusive range accepted for the threshold kind.
func (k ThresholdKind) Bounds() (lo, hi float64, ok bool) {
	switch k {
	case ThresholdMaxWeight:
		return MinMaxWeightKg, MaxMaxWeightKg, true
	case ThresholdLowBattery:
		return MinLowBatteryPercent, MaxLowBatteryPercent, true
	default:
		return 0, 0, false
	}
}

// Step returns the increment the threshold moves in.
func (k ThresholdKind) Step() float64 {
	switch k {
	case ThresholdMaxWeight:
		return MaxWeightStepKg
	case ThresholdLowBattery:
		return LowBatteryStepPercent
	default:
		return 0
	}
}

// Clamp snaps value to the threshold's step and pulls it into range. Unknown
// kinds return value unchanged.
func (k ThresholdKind) Clamp(value float64) float64 {
	lo, hi, ok := k.Bounds()
	if !ok {
		return value
	}

	step := k.Step()
	value = lo + math.Round((value-lo)/step)*step

	return min(max(value, lo), hi)
}

// Settings holds user preferences and alert thresholds.
type Settings struct {
	NotificationsEnabled bool    `json:"notifications_enabled"`
	DarkMode             bool    `json:"dark_mode"`
	AutoScanBooks        bool    `json:"auto_scan_books"`
	BluetoothEnabled     bool    `json:"bluetooth_enabled"`
	MaxWeightKg          float64 `json:"max_weight_kg"`         // 1..10
	LowBatteryThreshold  float64 `json:"low_battery_threshold"` // 5..50 percent
}

// DefaultSettings returns the factory defaults restored by a settings reset.
func DefaultSettings() Settings {
	return Settings{
		NotificationsEnabled: true,
		DarkMode:             false,
		AutoScanBooks:        true,
		BluetoothEnabled:     true,
		MaxWeightKg:          DefaultMaxWeightKg,
		LowBatteryThreshold:  DefaultLowBatteryThreshold,
	}
}

// Normalize clamps both thresholds into range.
func (s Settings) Normalize() Settings {
	s.MaxWeightKg = ThresholdMaxWeight.Clamp(s.MaxWeightKg)
	s.LowBatteryThreshold = ThresholdLowBattery.Clamp(s.LowBatteryThreshold)

	return s
}
