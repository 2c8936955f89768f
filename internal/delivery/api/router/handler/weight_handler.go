package handler

import (
	"net/http"

	"smartpack/internal/delivery/api/response"
	"smartpack/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WeightHandlerParams holds dependencies for WeightHandler, injected by Fx.
type WeightHandlerParams struct {
	fx.In

	WeightUC usecase.WeightUsecase
}

// WeightHandler serves the bag weight reading
type WeightHandler struct {
	weightUC usecase.WeightUsecase
}

// NewWeightHandler is the constructor for WeightHandler
func NewWeightHandler(params WeightHandlerParams) *WeightHandler {
	return &WeightHandler{
		weightUC: params.WeightUC,
	}
}

// RecordWeightRequest is a sensor reading. Negative values are stored as zero.
type RecordWeightRequest struct {
	Kg *float64 `json:"kg" validate:"required"`
}

// GetWeight handles GET /weight
func (h *WeightHandler) GetWeight(c echo.Context) error {
	status, err := h.weightUC.GetWeight(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status)
}

// RecordWeight handles PUT /weight
func (h *WeightHandler) RecordWeight(c echo.Context) error {
	var req RecordWeightRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid weight input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	status, err := h.weightUC.RecordWeight(c.Request().Context(), *req.Kg)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status)
}
