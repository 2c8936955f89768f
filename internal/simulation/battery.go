// Package simulation holds the mocked sensor processes: the battery drain and
// charge curve, the delayed book scan and the periodic runners driving them.
package simulation

import (
	"smartpack/config"
	"smartpack/internal/domain/entity"
)

// BatteryRates are the per-tick deltas of the battery process.
type BatteryRates struct {
	DrainStep       float64 // Percent lost per tick while draining.
	DrainHoursStep  float64 // Runtime hours lost per tick while draining.
	ChargeStep      float64 // Percent gained per tick while charging.
	ChargeHoursStep float64 // Runtime hours gained per tick while charging.
}

// DefaultBatteryRates matches the mocked hardware: slow drain, fast charge.
func DefaultBatteryRates() BatteryRates {
	return BatteryRates{
		DrainStep:       0.1,
		DrainHoursStep:  0.02,
		ChargeStep:      0.5,
		ChargeHoursStep: 0.1,
	}
}

// BatteryRatesFromConfig reads the rates from the simulation section.
func BatteryRatesFromConfig(cfg config.SimulationConfig) BatteryRates {
	return BatteryRates{
		DrainStep:       cfg.DrainStep,
		DrainHoursStep:  cfg.DrainHoursStep,
		ChargeStep:      cfg.ChargeStep,
		ChargeHoursStep: cfg.ChargeHoursStep,
	}
}

// Step computes the next battery reading. ok is false when the battery is
// idle: fully charged on the charger, or empty off it.
func Step(battery entity.Battery, rates BatteryRates) (level, hours float64, ok bool) {
	switch {
	case battery.Charging && battery.Level < entity.MaxBatteryLevel:
		level = min(battery.Level+rates.ChargeStep, entity.MaxBatteryLevel)
		hours = min(battery.EstimatedHours+rates.ChargeHoursStep, entity.MaxEstimatedHours)

		return level, hours, true

	case !battery.Charging && battery.Level > 0:
		level = max(battery.Level-rates.DrainStep, 0)
		hours = max(battery.EstimatedHours-rates.DrainHoursStep, 0)

		return level, hours, true

	default:
		return battery.Level, battery.EstimatedHours, false
	}
}
