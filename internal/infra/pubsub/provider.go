package pubsub

import (
	"context"
	"log/slog"

	"smartpack/config"
	"smartpack/internal/domain/service"
	"smartpack/internal/errors"

	"go.uber.org/fx"
)

// Publisher providers
const (
	ProviderLocal = "local"
	ProviderTopic = "topic"
	ProviderFCM   = "fcm"
)

// noopPublisher is a no-op implementation when Pub/Sub is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishNotificationEvent(_ context.Context, event *service.NotificationEvent) error {
	p.logger.Debug("[NoopPubSub] Event publishing disabled, skipping",
		slog.String("notification_id", event.NotificationID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := newPublisher(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	switch cfg.Provider {
	case ProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case ProviderTopic:
		if cfg.TopicURL == "" {
			return nil, errors.New("topic URL is required for topic provider")
		}
		logger.Info("Using topic publisher for Pub/Sub",
			slog.String("topic_url", cfg.TopicURL),
		)

		return NewTopicPublisher(ctx, cfg.TopicURL, logger)

	case ProviderFCM:
		if cfg.CredentialsPath == "" || cfg.FCMTopic == "" {
			return nil, errors.New("credentials path and FCM topic are required for fcm provider")
		}
		logger.Info("Using Firebase Cloud Messaging publisher",
			slog.String("topic", cfg.FCMTopic),
		)

		return NewFCMPublisher(ctx, cfg.CredentialsPath, cfg.FCMTopic, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
