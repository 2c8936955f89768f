package service

import (
	"context"
	"time"
)

// NotificationEvent is the feed payload published for every raised notification
type NotificationEvent struct {
	RequestID      string    `json:"request_id,omitempty"` // For distributed tracing
	NotificationID string    `json:"notification_id"`
	Type           string    `json:"type"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Timestamp      time.Time `json:"timestamp"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishNotificationEvent publishes a raised notification to the feed
	PublishNotificationEvent(ctx context.Context, event *NotificationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
