package pubsub

import (
	"context"
	"log/slog"
	"time"

	"smartpack/internal/domain/lifecycle"
	"smartpack/internal/domain/service"
	"smartpack/internal/errors"

	jsoniter "github.com/json-iterator/go"
	"gocloud.dev/pubsub"
	_ "gocloud.dev/pubsub/gcppubsub" // gcppubsub:// topics
	_ "gocloud.dev/pubsub/mempubsub" // mem:// topics
)

// topicPublisher implements EventPublisher on a portable gocloud topic, so the
// feed can be an in-process topic during development and Google Pub/Sub in
// production without code changes
type topicPublisher struct {
	topic  *pubsub.Topic
	url    string
	logger *slog.Logger
}

// NewTopicPublisher opens the topic at url, e.g. mem://notifications or
// gcppubsub://projects/my-project/topics/notifications
func NewTopicPublisher(ctx context.Context, url string, logger *slog.Logger) (service.EventPublisher, error) {
	topic, err := pubsub.OpenTopic(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open topic %s", url)
	}

	return &topicPublisher{
		topic:  topic,
		url:    url,
		logger: logger,
	}, nil
}

// PublishNotificationEvent sends the event as a JSON message with tracing metadata
func (p *topicPublisher) PublishNotificationEvent(ctx context.Context, event *service.NotificationEvent) error {
	body, err := jsoniter.ConfigFastest.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := p.topic.Send(ctx, &pubsub.Message{Body: body, Metadata: feedAttributes(event)}); err != nil {
		return errors.Wrapf(err, "failed to publish notification %s", event.NotificationID)
	}

	p.logger.Debug("[TopicPubSub] Event published",
		slog.String("topic_url", p.url),
		slog.String("notification_id", event.NotificationID),
	)

	return nil
}

// Close flushes pending messages and releases the topic
func (p *topicPublisher) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	start := time.Now()
	if err := p.topic.Shutdown(ctx); err != nil {
		return errors.WithStack(err)
	}

	p.logger.Debug("[TopicPubSub] Topic closed", slog.Duration("elapsed", time.Since(start)))

	return nil
}
