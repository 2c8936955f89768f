// Package worker runs the simulated sensors in the background.
package worker

import (
	"context"
	"log/slog"

	"smartpack/config"
	"smartpack/internal/delivery"
	"smartpack/internal/domain/lifecycle"
	"smartpack/internal/simulation"
	"smartpack/internal/usecase"

	"go.uber.org/fx"
)

type simulationWorker struct {
	cfg      *config.Config
	lifetime *lifecycle.Lifetime
	battery  usecase.BatteryUsecase
	weather  usecase.WeatherUsecase
	logger   *slog.Logger
}

// ServerParams holds dependencies for the simulation worker
type ServerParams struct {
	fx.In

	Cfg       *config.Config
	Lifetime  *lifecycle.Lifetime
	BatteryUC usecase.BatteryUsecase
	WeatherUC usecase.WeatherUsecase
	Logger    *slog.Logger
}

// NewServer creates the worker that drives the battery timer and the
// periodic weather refresh
func NewServer(params ServerParams) (delivery.Delivery, error) {
	return &simulationWorker{
		cfg:      params.Cfg,
		lifetime: params.Lifetime,
		battery:  params.BatteryUC,
		weather:  params.WeatherUC,
		logger:   params.Logger,
	}, nil
}

// Serve starts the runners under the application lifetime and blocks until it ends.
func (s *simulationWorker) Serve(ctx context.Context) error {
	s.logger.Info("Starting simulation worker")

	s.lifetime.Go(func(ctx context.Context) {
		simulation.Every(ctx, s.cfg.Simulation.BatteryTickInterval, s.logger, "battery", s.tickBattery)
	})

	s.lifetime.Go(func(ctx context.Context) {
		// Resolve location and weather right away instead of serving the seed
		// until the first tick.
		if err := s.refreshWeather(ctx); err != nil {
			s.logger.Warn("[Simulation] Initial weather refresh failed", slog.Any("error", err))
		}
		simulation.Every(ctx, s.cfg.Weather.RefreshInterval, s.logger, "weather", s.refreshWeather)
	})

	select {
	case <-ctx.Done():
	case <-s.lifetime.Context().Done():
	}

	s.logger.Info("Simulation worker stopped")

	return nil
}

func (s *simulationWorker) tickBattery(ctx context.Context) error {
	_, err := s.battery.Tick(ctx)

	return err
}

func (s *simulationWorker) refreshWeather(ctx context.Context) error {
	refresh, err := s.weather.RefreshWeather(ctx)
	if err != nil {
		return err
	}

	if refresh.Fallback {
		s.logger.Debug("[Simulation] Weather refresh served sample data", slog.String("advisory", refresh.Advisory))
	}

	return nil
}
