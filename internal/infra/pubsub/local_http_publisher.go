package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"log/slog"
	"net/http"
	"time"

	"smartpack/internal/domain/service"
	"smartpack/internal/errors"

	jsoniter "github.com/json-iterator/go"
)

const localSubscription = "projects/local/subscriptions/smartpack-notifications"

// localHTTPPublisher POSTs push envelopes to a webhook so a phone companion
// or a dev tool can follow the notification feed without a broker
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PushEnvelope is the body posted to the webhook. It has the shape of a
// Pub/Sub push request, so the same receiver works against the emulator.
type PushEnvelope struct {
	Message      PushMessage `json:"message"`
	Subscription string      `json:"subscription"`
}

// PushMessage carries one notification, base64 encoded in Data
type PushMessage struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
}

// NewLocalHTTPPublisher creates a webhook publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		logger:     logger,
	}
}

func (p *localHTTPPublisher) PublishNotificationEvent(ctx context.Context, event *service.NotificationEvent) error {
	body, err := newPushEnvelope(event)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "failed to push notification %s", event.NotificationID)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("webhook returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Debug("[LocalPubSub] Notification pushed",
		slog.String("endpoint", p.endpoint),
		slog.String("notification_id", event.NotificationID),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	return nil
}

func newPushEnvelope(event *service.NotificationEvent) ([]byte, error) {
	data, err := jsoniter.ConfigFastest.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	envelope := PushEnvelope{
		Message: PushMessage{
			Data:        base64.StdEncoding.EncodeToString(data),
			Attributes:  feedAttributes(event),
			MessageID:   event.NotificationID,
			PublishTime: event.Timestamp.UTC().Format(time.RFC3339),
		},
		Subscription: localSubscription,
	}

	body, err := jsoniter.ConfigFastest.Marshal(envelope)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return body, nil
}

// feedAttributes is the routing metadata every provider attaches to a notification
func feedAttributes(event *service.NotificationEvent) map[string]string {
	attributes := map[string]string{
		"notification_id": event.NotificationID,
		"type":            event.Type,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
