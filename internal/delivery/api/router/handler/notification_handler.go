package handler

import (
	"net/http"
	"time"

	"smartpack/internal/delivery/api/response"
	"smartpack/internal/domain/entity"
	"smartpack/internal/usecase"
	"smartpack/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
}

// NotificationHandler serves the notification feed
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	now            func() time.Time
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		now:            time.Now,
	}
}

// NotificationView is a notification with its relative age for display
type NotificationView struct {
	entity.Notification
	TimeAgo string `json:"time_ago"`
}

// NotificationListResponse is the feed body returned by every notification endpoint
type NotificationListResponse struct {
	Notifications []NotificationView `json:"notifications"`
	UnreadCount   int                `json:"unread_count"`
}

// ListNotifications handles GET /notifications
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	list, err := h.notificationUC.ListNotifications(c.Request().Context())

	return h.render(c, list, err)
}

// MarkRead handles POST /notifications/:id/read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	list, err := h.notificationUC.MarkRead(c.Request().Context(), c.Param("id"))

	return h.render(c, list, err)
}

// MarkAllRead handles POST /notifications/read-all
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	list, err := h.notificationUC.MarkAllRead(c.Request().Context())

	return h.render(c, list, err)
}

// Dismiss handles DELETE /notifications/:id
func (h *NotificationHandler) Dismiss(c echo.Context) error {
	list, err := h.notificationUC.Dismiss(c.Request().Context(), c.Param("id"))

	return h.render(c, list, err)
}

// DismissAll handles DELETE /notifications
func (h *NotificationHandler) DismissAll(c echo.Context) error {
	list, err := h.notificationUC.DismissAll(c.Request().Context())

	return h.render(c, list, err)
}

func (h *NotificationHandler) render(c echo.Context, list *usecase.NotificationList, err error) error {
	if err != nil {
		return response.HandleAppError(c, err)
	}

	now := h.now()
	views := make([]NotificationView, 0, len(list.Notifications))
	for _, n := range list.Notifications {
		views = append(views, NotificationView{
			Notification: n,
			TimeAgo:      util.TimeAgo(now, n.Timestamp),
		})
	}

	return response.Success(c, http.StatusOK, NotificationListResponse{
		Notifications: views,
		UnreadCount:   list.UnreadCount,
	})
}
