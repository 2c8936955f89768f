package handler

import (
	"net/http"

	"smartpack/internal/delivery/api/response"
	"smartpack/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BatteryHandlerParams holds dependencies for BatteryHandler, injected by Fx.
type BatteryHandlerParams struct {
	fx.In

	BatteryUC usecase.BatteryUsecase
}

// BatteryHandler serves the battery card
type BatteryHandler struct {
	batteryUC usecase.BatteryUsecase
}

// NewBatteryHandler is the constructor for BatteryHandler
func NewBatteryHandler(params BatteryHandlerParams) *BatteryHandler {
	return &BatteryHandler{
		batteryUC: params.BatteryUC,
	}
}

// SetChargingRequest represents the request body for plugging the charger in or out
type SetChargingRequest struct {
	Charging *bool `json:"charging" validate:"required"`
}

// GetBattery handles GET /battery
func (h *BatteryHandler) GetBattery(c echo.Context) error {
	status, err := h.batteryUC.GetBattery(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status)
}

// SetCharging handles PUT /battery/charging
func (h *BatteryHandler) SetCharging(c echo.Context) error {
	var req SetChargingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid charging input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	status, err := h.batteryUC.SetChargingState(c.Request().Context(), *req.Charging)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status)
}
