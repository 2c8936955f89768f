package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "smartpack/internal/delivery/context"
	"smartpack/internal/domain/derive"
	"smartpack/internal/domain/entity"
	domainerrors "smartpack/internal/domain/errors"
	"smartpack/internal/domain/event"
	"smartpack/internal/domain/seed"
	"smartpack/internal/domain/service"
	"smartpack/internal/errors"
	"smartpack/internal/usecase"

	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

const (
	labelLocationDenied      = "Location access denied"
	labelLocationUnsupported = "Geolocation not supported"
	labelLocationUnavailable = "Location unavailable"

	weatherServiceName = "Weather service"
)

type weatherService struct {
	dispatcher *Dispatcher
	locator    service.Locator
	provider   service.WeatherProvider
	logger     *slog.Logger
}

// WeatherServiceParams holds dependencies for WeatherService, injected by Fx
type WeatherServiceParams struct {
	fx.In

	Dispatcher *Dispatcher
	Locator    service.Locator
	Provider   service.WeatherProvider
	Logger     *slog.Logger
}

// NewWeatherService creates a new weather service instance
func NewWeatherService(params WeatherServiceParams) usecase.WeatherUsecase {
	return &weatherService{
		dispatcher: params.Dispatcher,
		locator:    params.Locator,
		provider:   params.Provider,
		logger:     params.Logger,
	}
}

func (s *weatherService) GetWeather(ctx context.Context) (*usecase.WeatherRefresh, error) {
	weather, err := s.dispatcher.Store().Weather(ctx)
	if err != nil {
		return nil, err
	}

	return &usecase.WeatherRefresh{
		Weather:      weather,
		NeedUmbrella: derive.NeedUmbrella(weather.ChanceOfRain),
		Fallback:     weather.IsSample,
	}, nil
}

// RefreshWeather never fails because of the location source or the provider:
// both fall back to sample data with an advisory. Only cancellation and store
// errors are returned, and a cancelled refresh updates nothing.
func (s *weatherService) RefreshWeather(ctx context.Context) (*usecase.WeatherRefresh, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	now := s.dispatcher.Now()

	weather, advisory := s.resolve(ctx, now)
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	result, err := s.dispatcher.Dispatch(ctx, event.WeatherUpdated{Weather: weather, OccurredAt: now})
	if err != nil {
		return nil, err
	}

	if advisory != "" {
		logger.Warn("[WeatherService] Serving sample weather", slog.String("advisory", advisory))

		if !result.Before.Weather.IsSample {
			if _, err := s.dispatcher.notify(ctx, sampleDataAlert(advisory)); err != nil {
				logger.Warn("[WeatherService] Failed to raise advisory", slog.Any("error", err))
			}
		}
	}

	return &usecase.WeatherRefresh{
		Weather:      result.After.Weather,
		NeedUmbrella: derive.NeedUmbrella(result.After.Weather.ChanceOfRain),
		Fallback:     weather.IsSample,
		Advisory:     advisory,
	}, nil
}

func (s *weatherService) resolve(ctx context.Context, now time.Time) (entity.Weather, string) {
	point, err := s.locator.Locate(ctx)
	if err != nil {
		label := locationPlaceholder(err)

		return seed.Weather(now, label), label + ", showing sample weather"
	}

	report, err := s.provider.Fetch(ctx, point)
	if err != nil {
		unavailable := domainerrors.NewExternalServiceError(weatherServiceName, err)
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("[WeatherService] Provider failed",
			slog.Any("error", unavailable),
		)

		return seed.Weather(now, CoordinateLabel(point)), unavailable.Message()
	}

	return toWeather(report, point, now), ""
}

func locationPlaceholder(err error) string {
	switch {
	case errors.Is(err, service.ErrLocationDenied):
		return labelLocationDenied
	case errors.Is(err, service.ErrLocationUnsupported):
		return labelLocationUnsupported
	default:
		return labelLocationUnavailable
	}
}

// CoordinateLabel renders a position as "lat°, lon°" with two decimals.
func CoordinateLabel(point orb.Point) string {
	return fmt.Sprintf("%.2f°, %.2f°", point.Lat(), point.Lon())
}

func toWeather(report *service.WeatherReport, point orb.Point, now time.Time) entity.Weather {
	name := report.LocationName
	if name == "" {
		name = CoordinateLabel(point)
	}

	forecast := make([]entity.DayForecast, 0, len(report.Forecast))
	for _, day := range report.Forecast {
		forecast = append(forecast, entity.DayForecast{
			Day:          day.Day,
			Temperature:  day.Temperature,
			Condition:    day.Condition,
			ChanceOfRain: day.ChanceOfRain,
		})
	}

	return entity.Weather{
		LocationName: name,
		Country:      report.Country,
		Temperature:  report.Temperature,
		Condition:    report.Condition,
		Humidity:     report.Humidity,
		ChanceOfRain: report.ChanceOfRain,
		WindSpeed:    report.WindSpeed,
		Forecast:     forecast,
		UpdatedAt:    now,
	}
}
