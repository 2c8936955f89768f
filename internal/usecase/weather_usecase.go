package usecase

import (
	"context"

	"smartpack/internal/domain/entity"
)

// WeatherRefresh is the outcome of a weather refresh
type WeatherRefresh struct {
	Weather      entity.Weather `json:"weather"`
	NeedUmbrella bool           `json:"need_umbrella"`
	Fallback     bool           `json:"fallback"`           // Sample data is served
	Advisory     string         `json:"advisory,omitempty"` // Why sample data is served
}

// WeatherUsecase defines the interface for weather use cases
type WeatherUsecase interface {
	// GetWeather returns the stored weather
	GetWeather(ctx context.Context) (*WeatherRefresh, error)

	// RefreshWeather locates the device and fetches fresh weather. Provider
	// failures fall back to sample data and never fail the call
	RefreshWeather(ctx context.Context) (*WeatherRefresh, error)
}
