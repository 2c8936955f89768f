package handler

import (
	"net/http"

	"smartpack/internal/delivery/api/response"
	"smartpack/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WeatherHandlerParams holds dependencies for WeatherHandler, injected by Fx.
type WeatherHandlerParams struct {
	fx.In

	WeatherUC usecase.WeatherUsecase
}

// WeatherHandler serves the weather card
type WeatherHandler struct {
	weatherUC usecase.WeatherUsecase
}

// NewWeatherHandler is the constructor for WeatherHandler
func NewWeatherHandler(params WeatherHandlerParams) *WeatherHandler {
	return &WeatherHandler{
		weatherUC: params.WeatherUC,
	}
}

// GetWeather handles GET /weather
func (h *WeatherHandler) GetWeather(c echo.Context) error {
	weather, err := h.weatherUC.GetWeather(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, weather)
}

// RefreshWeather handles POST /weather/refresh. Provider failures still
// answer 200 with fallback set.
func (h *WeatherHandler) RefreshWeather(c echo.Context) error {
	weather, err := h.weatherUC.RefreshWeather(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, weather)
}
