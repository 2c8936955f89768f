package impl

import (
	"context"

	"smartpack/internal/domain/derive"
	"smartpack/internal/domain/entity"
	"smartpack/internal/domain/event"
	"smartpack/internal/usecase"
)

type notificationService struct {
	dispatcher *Dispatcher
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(dispatcher *Dispatcher) usecase.NotificationUsecase {
	return &notificationService{dispatcher: dispatcher}
}

func (s *notificationService) ListNotifications(ctx context.Context) (*usecase.NotificationList, error) {
	notifications, err := s.dispatcher.Store().Notifications(ctx)
	if err != nil {
		return nil, err
	}

	return newNotificationList(notifications), nil
}

func (s *notificationService) MarkRead(ctx context.Context, notificationID string) (*usecase.NotificationList, error) {
	return s.apply(ctx, event.NotificationRead{NotificationID: notificationID, OccurredAt: s.dispatcher.Now()})
}

func (s *notificationService) MarkAllRead(ctx context.Context) (*usecase.NotificationList, error) {
	return s.apply(ctx, event.AllNotificationsRead{OccurredAt: s.dispatcher.Now()})
}

func (s *notificationService) Dismiss(ctx context.Context, notificationID string) (*usecase.NotificationList, error) {
	return s.apply(ctx, event.NotificationDismissed{NotificationID: notificationID, OccurredAt: s.dispatcher.Now()})
}

func (s *notificationService) DismissAll(ctx context.Context) (*usecase.NotificationList, error) {
	return s.apply(ctx, event.AllNotificationsDismissed{OccurredAt: s.dispatcher.Now()})
}

func (s *notificationService) apply(ctx context.Context, e event.Event) (*usecase.NotificationList, error) {
	result, err := s.dispatcher.Dispatch(ctx, e)
	if err != nil {
		return nil, err
	}

	return newNotificationList(result.After.Notifications), nil
}

func newNotificationList(notifications []entity.Notification) *usecase.NotificationList {
	if notifications == nil {
		notifications = []entity.Notification{}
	}

	return &usecase.NotificationList{
		Notifications: notifications,
		UnreadCount:   derive.UnreadCount(notifications),
	}
}
