package usecase

import (
	"context"

	"smartpack/internal/domain/entity"
)

// NotificationList is the notification feed with its unread badge
type NotificationList struct {
	Notifications []entity.Notification `json:"notifications"`
	UnreadCount   int                   `json:"unread_count"`
}

// NotificationUsecase defines the interface for notification management use cases.
// Every edit is idempotent and unknown ids leave the collection unchanged.
type NotificationUsecase interface {
	// ListNotifications returns notifications newest first
	ListNotifications(ctx context.Context) (*NotificationList, error)

	// MarkRead marks one notification as read
	MarkRead(ctx context.Context, notificationID string) (*NotificationList, error)

	// MarkAllRead marks every notification as read
	MarkAllRead(ctx context.Context) (*NotificationList, error)

	// Dismiss removes one notification
	Dismiss(ctx context.Context, notificationID string) (*NotificationList, error)

	// DismissAll removes every notification
	DismissAll(ctx context.Context) (*NotificationList, error)
}
