package handler

import (
	"net/http"

	"smartpack/internal/delivery/api/response"
	"smartpack/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DashboardHandlerParams holds dependencies for DashboardHandler, injected by Fx.
type DashboardHandlerParams struct {
	fx.In

	DashboardUC usecase.DashboardUsecase
}

// DashboardHandler serves the home screen
type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
}

// NewDashboardHandler is the constructor for DashboardHandler
func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: params.DashboardUC,
	}
}

// GetDashboard handles GET /dashboard
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	dashboard, err := h.dashboardUC.GetDashboard(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dashboard)
}
