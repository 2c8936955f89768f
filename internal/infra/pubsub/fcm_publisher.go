package pubsub

import (
	"context"
	"log/slog"
	"time"

	"smartpack/internal/domain/service"
	"smartpack/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// fcmSender is the part of the messaging client the publisher uses
type fcmSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// fcmPublisher pushes raised notifications to the phone paired with the
// backpack through a Firebase Cloud Messaging topic
type fcmPublisher struct {
	client fcmSender
	topic  string
	logger *slog.Logger
}

// NewFCMPublisher initializes the Firebase app from a service account file
func NewFCMPublisher(ctx context.Context, credentialsPath, topic string, logger *slog.Logger) (service.EventPublisher, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &fcmPublisher{
		client: client,
		topic:  topic,
		logger: logger,
	}, nil
}

// PublishNotificationEvent sends the notification as a push message on the topic
func (p *fcmPublisher) PublishNotificationEvent(ctx context.Context, event *service.NotificationEvent) error {
	messageID, err := p.client.Send(ctx, fcmMessage(p.topic, event))
	if err != nil {
		if messaging.IsInvalidArgument(err) {
			return errors.Wrapf(err, "push rejected for notification %s", event.NotificationID)
		}

		return errors.Wrapf(err, "failed to push notification %s", event.NotificationID)
	}

	p.logger.Debug("[FCMPubSub] Push sent",
		slog.String("topic", p.topic),
		slog.String("notification_id", event.NotificationID),
		slog.String("message_id", messageID),
	)

	return nil
}

// Close is a no-op, the messaging client holds no connection
func (p *fcmPublisher) Close() error {
	return nil
}

func fcmMessage(topic string, event *service.NotificationEvent) *messaging.Message {
	data := feedAttributes(event)
	data["timestamp"] = event.Timestamp.UTC().Format(time.RFC3339)

	return &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: event.Title,
			Body:  event.Message,
		},
		Data: data,
	}
}
