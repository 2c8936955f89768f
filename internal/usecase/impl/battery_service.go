package impl

import (
	"context"

	"smartpack/config"
	"smartpack/internal/domain/derive"
	"smartpack/internal/domain/entity"
	"smartpack/internal/domain/event"
	"smartpack/internal/simulation"
	"smartpack/internal/usecase"
	"smartpack/internal/util"
)

type batteryService struct {
	dispatcher *Dispatcher
	rates      simulation.BatteryRates
}

// NewBatteryService creates a new battery service instance
func NewBatteryService(cfg *config.Config, dispatcher *Dispatcher) usecase.BatteryUsecase {
	return &batteryService{
		dispatcher: dispatcher,
		rates:      simulation.BatteryRatesFromConfig(cfg.Simulation),
	}
}

func (s *batteryService) GetBattery(ctx context.Context) (*usecase.BatteryStatus, error) {
	state, err := s.dispatcher.Store().Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return newBatteryStatus(state), nil
}

func (s *batteryService) SetChargingState(ctx context.Context, charging bool) (*usecase.BatteryStatus, error) {
	result, err := s.dispatcher.Dispatch(ctx, event.ChargingStateChanged{
		Charging:   charging,
		OccurredAt: s.dispatcher.Now(),
	})
	if err != nil {
		return nil, err
	}

	return newBatteryStatus(result.After), nil
}

// Tick computes the next reading from the stored battery inside the same
// store transaction, so a concurrent charger change is never overwritten.
func (s *batteryService) Tick(ctx context.Context) (bool, error) {
	result, err := s.dispatcher.DispatchDecided(ctx, func(state entity.State) ([]event.Event, error) {
		level, hours, ok := simulation.Step(state.Battery, s.rates)
		if !ok {
			return nil, nil
		}

		return []event.Event{event.BatteryTicked{
			Level:          level,
			EstimatedHours: hours,
			OccurredAt:     s.dispatcher.Now(),
		}}, nil
	})
	if err != nil {
		return false, err
	}

	return len(result.Applied) > 0, nil
}

func newBatteryStatus(state entity.State) *usecase.BatteryStatus {
	battery := state.Battery

	return &usecase.BatteryStatus{
		Battery:      battery,
		Tier:         derive.BatteryTierOf(battery.Level),
		Mode:         derive.BatteryModeOf(battery),
		RuntimeLabel: derive.RuntimeLabelOf(battery.Level),
		Runtime:      util.FormatRuntime(battery.EstimatedHours),
		IsLow:        derive.IsLowBattery(battery.Level, state.Settings.LowBatteryThreshold),
	}
}
