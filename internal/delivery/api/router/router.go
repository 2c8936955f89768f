// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"smartpack/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DashboardHandler    *handler.DashboardHandler
	BookHandler         *handler.BookHandler
	NotificationHandler *handler.NotificationHandler
	BatteryHandler      *handler.BatteryHandler
	WeightHandler       *handler.WeightHandler
	WeatherHandler      *handler.WeatherHandler
	SettingsHandler     *handler.SettingsHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	dashboardHandler    *handler.DashboardHandler
	bookHandler         *handler.BookHandler
	notificationHandler *handler.NotificationHandler
	batteryHandler      *handler.BatteryHandler
	weightHandler       *handler.WeightHandler
	weatherHandler      *handler.WeatherHandler
	settingsHandler     *handler.SettingsHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		dashboardHandler:    params.DashboardHandler,
		bookHandler:         params.BookHandler,
		notificationHandler: params.NotificationHandler,
		batteryHandler:      params.BatteryHandler,
		weightHandler:       params.WeightHandler,
		weatherHandler:      params.WeatherHandler,
		settingsHandler:     params.SettingsHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	apiV1.GET("/dashboard", r.dashboardHandler.GetDashboard)

	booksGroup := apiV1.Group("/books")
	{
		booksGroup.GET("", r.bookHandler.ListBooks)
		booksGroup.POST("/scan", r.bookHandler.StartScan)
		booksGroup.DELETE("/scan", r.bookHandler.CancelScan)
		booksGroup.POST("/:id/toggle", r.bookHandler.ToggleBook)
	}

	notificationsGroup := apiV1.Group("/notifications")
	{
		notificationsGroup.GET("", r.notificationHandler.ListNotifications)
		notificationsGroup.POST("/read-all", r.notificationHandler.MarkAllRead)
		notificationsGroup.POST("/:id/read", r.notificationHandler.MarkRead)
		notificationsGroup.DELETE("", r.notificationHandler.DismissAll)
		notificationsGroup.DELETE("/:id", r.notificationHandler.Dismiss)
	}

	batteryGroup := apiV1.Group("/battery")
	{
		batteryGroup.GET("", r.batteryHandler.GetBattery)
		batteryGroup.PUT("/charging", r.batteryHandler.SetCharging)
	}

	weightGroup := apiV1.Group("/weight")
	{
		weightGroup.GET("", r.weightHandler.GetWeight)
		weightGroup.PUT("", r.weightHandler.RecordWeight)
	}

	weatherGroup := apiV1.Group("/weather")
	{
		weatherGroup.GET("", r.weatherHandler.GetWeather)
		weatherGroup.POST("/refresh", r.weatherHandler.RefreshWeather)
	}

	settingsGroup := apiV1.Group("/settings")
	{
		settingsGroup.GET("", r.settingsHandler.GetSettings)
		settingsGroup.PATCH("", r.settingsHandler.UpdateSettings)
		settingsGroup.PUT("/thresholds/:kind", r.settingsHandler.UpdateThreshold)
		settingsGroup.POST("/reset", r.settingsHandler.ResetSettings)
		settingsGroup.GET("/pairing-qr", r.settingsHandler.PairingQR)
	}
}
