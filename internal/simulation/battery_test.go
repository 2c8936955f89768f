package simulation

import (
	"testing"

	"smartpack/config"
	"smartpack/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestStep(t *testing.T) {
	rates := DefaultBatteryRates()

	tests := []struct {
		name      string
		battery   entity.Battery
		wantLevel float64
		wantHours float64
		wantOK    bool
	}{
		{
			name:      "draining",
			battery:   entity.Battery{Level: 75, EstimatedHours: 6},
			wantLevel: 74.9,
			wantHours: 5.98,
			wantOK:    true,
		},
		{
			name:      "draining clamps at zero",
			battery:   entity.Battery{Level: 0.05, EstimatedHours: 0.01},
			wantLevel: 0,
			wantHours: 0,
			wantOK:    true,
		},
		{
			name:      "empty and unplugged is idle",
			battery:   entity.Battery{Level: 0, EstimatedHours: 0},
			wantLevel: 0,
			wantHours: 0,
			wantOK:    false,
		},
		{
			name:      "charging",
			battery:   entity.Battery{Level: 75, EstimatedHours: 6, Charging: true},
			wantLevel: 75.5,
			wantHours: 6.1,
			wantOK:    true,
		},
		{
			name:      "charging clamps at the top",
			battery:   entity.Battery{Level: 99.8, EstimatedHours: 11.95, Charging: true},
			wantLevel: 100,
			wantHours: 12,
			wantOK:    true,
		},
		{
			name:      "full on the charger is idle",
			battery:   entity.Battery{Level: 100, EstimatedHours: 12, Charging: true},
			wantLevel: 100,
			wantHours: 12,
			wantOK:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, hours, ok := Step(tt.battery, rates)
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.wantLevel, level, 1e-9)
			assert.InDelta(t, tt.wantHours, hours, 1e-9)
		})
	}
}

func TestStep_StaysInRangeOverManyTicks(t *testing.T) {
	rates := DefaultBatteryRates()
	battery := entity.Battery{Level: 3, EstimatedHours: 0.3}

	for range 100 {
		level, hours, ok := Step(battery, rates)
		if !ok {
			break
		}
		battery.Level, battery.EstimatedHours = level, hours
		assert.GreaterOrEqual(t, battery.Level, 0.0)
		assert.GreaterOrEqual(t, battery.EstimatedHours, 0.0)
	}
	assert.Zero(t, battery.Level)

	battery.Charging = true
	for range 300 {
		level, hours, ok := Step(battery, rates)
		if !ok {
			break
		}
		battery.Level, battery.EstimatedHours = level, hours
		assert.LessOrEqual(t, battery.Level, entity.MaxBatteryLevel)
		assert.LessOrEqual(t, battery.EstimatedHours, entity.MaxEstimatedHours)
	}
	assert.InDelta(t, entity.MaxBatteryLevel, battery.Level, 1e-9)
}

func TestBatteryRatesFromConfig(t *testing.T) {
	rates := BatteryRatesFromConfig(config.SimulationConfig{
		DrainStep:       1,
		DrainHoursStep:  2,
		ChargeStep:      3,
		ChargeHoursStep: 4,
	})

	assert.Equal(t, BatteryRates{DrainStep: 1, DrainHoursStep: 2, ChargeStep: 3, ChargeHoursStep: 4}, rates)
}
