package handler

import (
	"net/http"

	"smartpack/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the server is accepting requests
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
