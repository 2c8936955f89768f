// Package memory provides the in-memory entity store shared by every view of
// a SmartPack session. State lives for the life of the process only.
package memory

import (
	"context"
	"log/slog"
	"sync"

	"smartpack/config"
	"smartpack/internal/domain/entity"
	domainerrors "smartpack/internal/domain/errors"
	"smartpack/internal/domain/event"
	"smartpack/internal/domain/repository"
	"smartpack/internal/errors"

	"go.uber.org/fx"
)

// DefaultHistorySize is the battery history buffer length used when none is configured.
const DefaultHistorySize = 5

// Store is the mutex guarded implementation of repository.Store.
// A committed state is never modified in place; every batch works on a clone
// and swaps it in, so snapshots handed out earlier stay valid.
type Store struct {
	mu          sync.RWMutex
	state       entity.State
	historySize int
	logger      *slog.Logger
}

var _ repository.Store = (*Store)(nil)

// NewStore creates a store holding initial. historySize <= 0 falls back to DefaultHistorySize.
func NewStore(initial entity.State, historySize int, logger *slog.Logger) *Store {
	if historySize <= 0 {
		historySize = DefaultHistorySize
	}
	if logger == nil {
		logger = slog.Default()
	}

	state := initial.Clone()
	state.Battery.History = trimHistory(state.Battery.History, historySize)

	return &Store{
		state:       state,
		historySize: historySize,
		logger:      logger,
	}
}

func (s *Store) read(ctx context.Context) (entity.State, error) {
	if err := ctx.Err(); err != nil {
		return entity.State{}, errors.WithStack(err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.Clone(), nil
}

// Snapshot returns a deep copy of the whole state.
func (s *Store) Snapshot(ctx context.Context) (entity.State, error) {
	return s.read(ctx)
}

func (s *Store) Books(ctx context.Context) ([]entity.Book, error) {
	state, err := s.read(ctx)
	if err != nil {
		return nil, err
	}

	return state.Books, nil
}

func (s *Store) Book(ctx context.Context, id string) (entity.Book, error) {
	state, err := s.read(ctx)
	if err != nil {
		return entity.Book{}, err
	}

	for _, book := range state.Books {
		if book.ID == id {
			return book, nil
		}
	}

	return entity.Book{}, errors.WithStack(domainerrors.ErrBookNotFound.WithDetails("id " + id))
}

func (s *Store) Notifications(ctx context.Context) ([]entity.Notification, error) {
	state, err := s.read(ctx)
	if err != nil {
		return nil, err
	}

	return state.Notifications, nil
}

func (s *Store) Battery(ctx context.Context) (entity.Battery, error) {
	state, err := s.read(ctx)
	if err != nil {
		return entity.Battery{}, err
	}

	return state.Battery, nil
}

func (s *Store) Weight(ctx context.Context) (entity.Weight, error) {
	state, err := s.read(ctx)
	if err != nil {
		return entity.Weight{}, err
	}

	return state.Weight, nil
}

func (s *Store) Weather(ctx context.Context) (entity.Weather, error) {
	state, err := s.read(ctx)
	if err != nil {
		return entity.Weather{}, err
	}

	return state.Weather, nil
}

func (s *Store) Settings(ctx context.Context) (entity.Settings, error) {
	state, err := s.read(ctx)
	if err != nil {
		return entity.Settings{}, err
	}

	return state.Settings, nil
}

// Apply applies events as one batch. Either every event is applied or, on
// error, none is.
func (s *Store) Apply(ctx context.Context, events ...event.Event) (repository.Transition, error) {
	return s.Decide(ctx, func(entity.State) ([]event.Event, error) {
		return events, nil
	}, nil)
}

// Decide runs decide against the current state and applies the events it returns.
// Reactions from react are evolved into the same working copy, so nothing is
// committed unless the whole batch evolves cleanly.
func (s *Store) Decide(ctx context.Context, decide repository.Decider, react repository.Reactor) (repository.Transition, error) {
	if err := ctx.Err(); err != nil {
		return repository.Transition{}, errors.WithStack(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.state
	events, err := decide(before.Clone())
	if err != nil {
		return repository.Transition{}, err
	}

	if len(events) == 0 {
		return repository.Transition{Before: before.Clone(), After: before.Clone()}, nil
	}

	work := before.Clone()
	if err := s.evolveAll(&work, events); err != nil {
		return repository.Transition{}, err
	}

	applied := events
	if react != nil {
		if reactions := react(before.Clone(), work.Clone()); len(reactions) > 0 {
			if err := s.evolveAll(&work, reactions); err != nil {
				return repository.Transition{}, err
			}
			applied = make([]event.Event, 0, len(events)+len(reactions))
			applied = append(append(applied, events...), reactions...)
		}
	}

	s.state = work
	s.logger.Debug("[MemoryStore] Events applied", slog.Int("count", len(applied)))

	return repository.Transition{
		Before:  before.Clone(),
		After:   work.Clone(),
		Applied: applied,
	}, nil
}

func (s *Store) evolveAll(state *entity.State, events []event.Event) error {
	for _, e := range events {
		if err := s.evolve(state, e); err != nil {
			return err
		}
	}

	return nil
}

func (s *Store) evolve(state *entity.State, e event.Event) error {
	switch e := e.(type) {
	case event.BookPresenceToggled:
		if i := bookIndex(state.Books, e.BookID); i >= 0 {
			state.Books[i].IsPresent = !state.Books[i].IsPresent
		}

	case event.BookScanned:
		if i := bookIndex(state.Books, e.BookID); i >= 0 {
			state.Books[i].IsPresent = true
		}

	case event.ChargingStateChanged:
		state.Battery.Charging = e.Charging

	case event.BatteryTicked:
		state.Battery.Level = min(max(e.Level, 0), entity.MaxBatteryLevel)
		state.Battery.EstimatedHours = min(max(e.EstimatedHours, 0), entity.MaxEstimatedHours)
		state.Battery.History = trimHistory(append(state.Battery.History, entity.BatteryHistoryPoint{
			At:    e.OccurredAt,
			Level: state.Battery.Level,
		}), s.historySize)

	case event.WeightMeasured:
		state.Weight = entity.Weight{CurrentKg: max(e.Kg, 0), MeasuredAt: e.OccurredAt}

	case event.WeatherUpdated:
		state.Weather = e.Weather.Clone()

	case event.NotificationRaised:
		if notificationIndex(state.Notifications, e.Notification.ID) >= 0 {
			return nil
		}
		state.Notifications = append([]entity.Notification{e.Notification}, state.Notifications...)

	case event.NotificationDismissed:
		if i := notificationIndex(state.Notifications, e.NotificationID); i >= 0 {
			state.Notifications = append(state.Notifications[:i], state.Notifications[i+1:]...)
		}

	case event.NotificationRead:
		if i := notificationIndex(state.Notifications, e.NotificationID); i >= 0 {
			state.Notifications[i].IsRead = true
		}

	case event.AllNotificationsRead:
		for i := range state.Notifications {
			state.Notifications[i].IsRead = true
		}

	case event.AllNotificationsDismissed:
		state.Notifications = []entity.Notification{}

	case event.ThresholdUpdated:
		switch e.Kind {
		case entity.ThresholdMaxWeight:
			state.Settings.MaxWeightKg = e.Kind.Clamp(e.Value)
		case entity.ThresholdLowBattery:
			state.Settings.LowBatteryThreshold = e.Kind.Clamp(e.Value)
		default:
			return errors.WithStack(domainerrors.ErrUnknownThreshold.WithDetails(string(e.Kind)))
		}

	case event.SettingsChanged:
		state.Settings = e.Settings.Normalize()

	default:
		return errors.WithStack(domainerrors.ErrUnknownEvent.WithDetails(e.EventType()))
	}

	return nil
}

func bookIndex(books []entity.Book, id string) int {
	for i := range books {
		if books[i].ID == id {
			return i
		}
	}

	return -1
}

func notificationIndex(notifications []entity.Notification, id string) int {
	for i := range notifications {
		if notifications[i].ID == id {
			return i
		}
	}

	return -1
}

func trimHistory(history []entity.BatteryHistoryPoint, size int) []entity.BatteryHistoryPoint {
	if len(history) <= size {
		return history
	}

	return append([]entity.BatteryHistoryPoint(nil), history[len(history)-size:]...)
}

// StoreParams holds dependencies for the store, injected by Fx
type StoreParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Seed   entity.State
}

// NewRepository builds the session store from the seed state and configuration.
func NewRepository(params StoreParams) repository.Store {
	return NewStore(params.Seed, params.Config.Simulation.HistorySize, params.Logger)
}

// Module provides the in-memory store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRepository),
)
