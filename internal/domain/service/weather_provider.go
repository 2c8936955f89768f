package service

import (
	"context"

	"smartpack/internal/domain/entity"

	"github.com/paulmach/orb"
)

// ForecastEntry is one day of a provider forecast.
type ForecastEntry struct {
	Day          string
	Temperature  float64
	Condition    entity.Condition
	ChanceOfRain float64
}

// WeatherReport is the provider view of current conditions at a point.
type WeatherReport struct {
	LocationName  string
	Country       string
	Temperature   float64 // Celsius.
	ConditionCode int     // Provider condition id.
	Condition     entity.Condition
	Humidity      float64 // Percent.
	Cloudiness    float64 // Percent.
	ChanceOfRain  float64 // Percent.
	WindSpeed     float64 // km/h.
	Forecast      []ForecastEntry
}

// WeatherProvider fetches current weather and a short forecast for a location.
type WeatherProvider interface {
	Fetch(ctx context.Context, point orb.Point) (*WeatherReport, error)
}
