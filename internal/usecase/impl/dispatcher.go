package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "smartpack/internal/delivery/context"
	"smartpack/internal/domain/entity"
	"smartpack/internal/domain/event"
	"smartpack/internal/domain/repository"
	"smartpack/internal/domain/service"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Dispatched is the result of one dispatch: the store transition plus the
// notifications its alerts raised. After includes those notifications.
type Dispatched struct {
	repository.Transition
	Raised []entity.Notification
}

// Dispatcher is the single path from intents and timer ticks to the store.
// Under the store lock it compares the derived status on both sides of each
// batch and raises a notification for every condition that newly became true.
type Dispatcher struct {
	store     repository.Store
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
	newID     func() string
}

// DispatcherParams holds dependencies for the Dispatcher, injected by Fx
type DispatcherParams struct {
	fx.In

	Store     repository.Store
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewDispatcher creates a new dispatcher
func NewDispatcher(params DispatcherParams) *Dispatcher {
	return &Dispatcher{
		store:     params.Store,
		publisher: params.Publisher,
		logger:    params.Logger,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Now returns the dispatcher clock, used to stamp events.
func (d *Dispatcher) Now() time.Time {
	return d.now()
}

// Store returns the store the dispatcher writes to.
func (d *Dispatcher) Store() repository.Store {
	return d.store
}

// Dispatch applies events and raises the alerts they trigger.
func (d *Dispatcher) Dispatch(ctx context.Context, events ...event.Event) (*Dispatched, error) {
	return d.DispatchDecided(ctx, func(entity.State) ([]event.Event, error) {
		return events, nil
	})
}

// DispatchDecided applies the events decide returns and raises the alerts they
// trigger. The raised notifications are stored in the same batch as the events
// that caused them.
func (d *Dispatcher) DispatchDecided(ctx context.Context, decide repository.Decider) (*Dispatched, error) {
	var raised []entity.Notification

	transition, err := d.store.Decide(ctx, decide, func(before, after entity.State) []event.Event {
		var events []event.Event
		raised, events = d.notifications(after.Settings, detectAlerts(before, after)...)

		return events
	})
	if err != nil {
		return nil, err
	}

	d.publishAll(ctx, raised)

	return &Dispatched{Transition: transition, Raised: raised}, nil
}

// notify raises alerts that do not come from a status change, such as scan
// results. It returns nil when notifications are disabled.
func (d *Dispatcher) notify(ctx context.Context, a alert) (*entity.Notification, error) {
	var raised []entity.Notification

	_, err := d.store.Decide(ctx, func(state entity.State) ([]event.Event, error) {
		var events []event.Event
		raised, events = d.notifications(state.Settings, a)

		return events, nil
	}, nil)
	if err != nil {
		return nil, err
	}

	d.publishAll(ctx, raised)
	if len(raised) == 0 {
		return nil, nil
	}

	return &raised[0], nil
}

// notifications builds one notification per alert, or none when the user
// turned notifications off.
func (d *Dispatcher) notifications(settings entity.Settings, alerts ...alert) ([]entity.Notification, []event.Event) {
	if !settings.NotificationsEnabled || len(alerts) == 0 {
		return nil, nil
	}

	at := d.now()
	raised := make([]entity.Notification, 0, len(alerts))
	events := make([]event.Event, 0, len(alerts))
	for _, a := range alerts {
		notification := entity.Notification{
			ID:        d.newID(),
			Type:      a.kind,
			Title:     a.title,
			Message:   a.message,
			Timestamp: at,
		}
		raised = append(raised, notification)
		events = append(events, event.NotificationRaised{Notification: notification, OccurredAt: at})
	}

	return raised, events
}

// publishAll pushes stored notifications to the feed. They are already
// committed, so the caller going away does not stop the push.
func (d *Dispatcher) publishAll(ctx context.Context, raised []entity.Notification) {
	if len(raised) == 0 {
		return
	}

	ctx = context.WithoutCancel(ctx)
	for i := range raised {
		d.publish(ctx, &raised[i])
	}
}

func (d *Dispatcher) publish(ctx context.Context, notification *entity.Notification) {
	logger := d.loggerFrom(ctx)

	err := d.publisher.PublishNotificationEvent(ctx, &service.NotificationEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		NotificationID: notification.ID,
		Type:           string(notification.Type),
		Title:          notification.Title,
		Message:        notification.Message,
		Timestamp:      notification.Timestamp,
	})
	if err != nil {
		logger.Warn("[Dispatcher] Failed to publish notification",
			slog.String("notification_id", notification.ID),
			slog.Any("error", err),
		)

		return
	}

	logger.Info("[Dispatcher] Notification raised",
		slog.String("notification_id", notification.ID),
		slog.String("type", string(notification.Type)),
		slog.String("title", notification.Title),
	)
}

func (d *Dispatcher) loggerFrom(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, d.logger)
}
