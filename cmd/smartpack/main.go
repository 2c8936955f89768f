package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"smartpack/config"
	"smartpack/internal/delivery"
	"smartpack/internal/delivery/api"
	"smartpack/internal/delivery/api/router/handler"
	"smartpack/internal/delivery/worker"
	"smartpack/internal/domain/entity"
	"smartpack/internal/domain/lifecycle"
	"smartpack/internal/domain/seed"
	"smartpack/internal/domain/service"
	"smartpack/internal/infra/geolocation"
	logs "smartpack/internal/infra/log"
	"smartpack/internal/infra/memory"
	"smartpack/internal/infra/pubsub"
	"smartpack/internal/infra/qrcode"
	"smartpack/internal/infra/weather"
	"smartpack/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		newLifetime,
	)
}

// newLifetime ties background tasks such as book scans to the fx lifecycle
func newLifetime(lc fx.Lifecycle) *lifecycle.Lifetime {
	lifetime := lifecycle.NewLifetime()
	lc.Append(fx.Hook{
		OnStop: lifetime.Stop,
	})

	return lifetime
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(newSeedState),
		memory.Module,
	)
}

// newSeedState is the demo session the store starts from
func newSeedState(cfg *config.Config) entity.State {
	state := seed.State(time.Now())
	state.Settings = impl.DefaultSettings(cfg)

	return state
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			weather.NewWeatherProvider,
			geolocation.NewLocator,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDispatcher,
			impl.NewBookService,
			impl.NewNotificationService,
			impl.NewBatteryService,
			impl.NewWeightService,
			impl.NewWeatherService,
			impl.NewSettingsService,
			impl.NewDashboardService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDashboardHandler,
			handler.NewBookHandler,
			handler.NewNotificationHandler,
			handler.NewBatteryHandler,
			handler.NewWeightHandler,
			handler.NewWeatherHandler,
			handler.NewSettingsHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
