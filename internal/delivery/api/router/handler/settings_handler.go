package handler

import (
	"net/http"

	"smartpack/internal/delivery/api/response"
	"smartpack/internal/domain/entity"
	"smartpack/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SettingsHandlerParams holds dependencies for SettingsHandler, injected by Fx.
type SettingsHandlerParams struct {
	fx.In

	SettingsUC usecase.SettingsUsecase
}

// SettingsHandler serves user preferences, thresholds and device pairing
type SettingsHandler struct {
	settingsUC usecase.SettingsUsecase
}

// NewSettingsHandler is the constructor for SettingsHandler
func NewSettingsHandler(params SettingsHandlerParams) *SettingsHandler {
	return &SettingsHandler{
		settingsUC: params.SettingsUC,
	}
}

// UpdateThresholdRequest represents the request body for one threshold.
// Out of range values are clamped, not rejected.
type UpdateThresholdRequest struct {
	Value *float64 `json:"value" validate:"required"`
}

// GetSettings handles GET /settings
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	settings, err := h.settingsUC.GetSettings(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings)
}

// UpdateSettings handles PATCH /settings
func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	var patch usecase.SettingsPatch
	if err := c.Bind(&patch); err != nil {
		return response.BindingError(c, "Invalid settings input")
	}

	settings, err := h.settingsUC.UpdateSettings(c.Request().Context(), patch)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings)
}

// UpdateThreshold handles PUT /settings/thresholds/:kind
func (h *SettingsHandler) UpdateThreshold(c echo.Context) error {
	var req UpdateThresholdRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid threshold input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	kind := entity.ThresholdKind(c.Param("kind"))
	settings, err := h.settingsUC.UpdateThreshold(c.Request().Context(), kind, *req.Value)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings)
}

// ResetSettings handles POST /settings/reset
func (h *SettingsHandler) ResetSettings(c echo.Context) error {
	settings, err := h.settingsUC.ResetSettings(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings)
}

// PairingQR handles GET /settings/pairing-qr
func (h *SettingsHandler) PairingQR(c echo.Context) error {
	png, err := h.settingsUC.PairingQR(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.PNG(c, png)
}
