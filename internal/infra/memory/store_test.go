package memory

import (
	"context"
	"testing"
	"time"

	"smartpack/internal/domain/entity"
	domainerrors "smartpack/internal/domain/errors"
	"smartpack/internal/domain/event"
	"smartpack/internal/domain/seed"
	"smartpack/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

type unknownEvent struct{}

func (unknownEvent) EventType() string        { return "Unknown" }
func (unknownEvent) HasOccurredAt() time.Time { return testNow }

func newTestStore(t *testing.T) *Store {
	t.Helper()

	return NewStore(seed.State(testNow), 5, nil)
}

func TestStore_SnapshotIsACopy(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	snapshot, err := store.Snapshot(ctx)
	require.NoError(t, err)
	snapshot.Books[0].IsPresent = true
	snapshot.Notifications[0].IsRead = true
	snapshot.Battery.History[0].Level = 1

	fresh, err := store.Snapshot(ctx)
	require.NoError(t, err)
	assert.False(t, fresh.Books[0].IsPresent)
	assert.False(t, fresh.Notifications[0].IsRead)
	assert.InDelta(t, 100.0, fresh.Battery.History[0].Level, 1e-9)
}

func TestStore_ToggleTwiceRestoresPresence(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	for _, book := range seed.Books() {
		t.Run(book.Title, func(t *testing.T) {
			_, err := store.Apply(ctx, event.BookPresenceToggled{BookID: book.ID, OccurredAt: testNow})
			require.NoError(t, err)

			toggled, err := store.Book(ctx, book.ID)
			require.NoError(t, err)
			assert.Equal(t, !book.IsPresent, toggled.IsPresent)

			_, err = store.Apply(ctx, event.BookPresenceToggled{BookID: book.ID, OccurredAt: testNow})
			require.NoError(t, err)

			restored, err := store.Book(ctx, book.ID)
			require.NoError(t, err)
			assert.Equal(t, book.IsPresent, restored.IsPresent)
		})
	}
}

func TestStore_UnknownIDsAreNoOps(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	before, err := store.Snapshot(ctx)
	require.NoError(t, err)

	transition, err := store.Apply(ctx,
		event.BookPresenceToggled{BookID: "missing", OccurredAt: testNow},
		event.BookScanned{BookID: "missing", OccurredAt: testNow},
		event.NotificationDismissed{NotificationID: "missing", OccurredAt: testNow},
		event.NotificationRead{NotificationID: "missing", OccurredAt: testNow},
	)
	require.NoError(t, err)
	assert.Len(t, transition.Applied, 4)

	after, err := store.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestStore_BookNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Book(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBookNotFound))
}

func TestStore_NotificationEdits(t *testing.T) {
	ctx := context.Background()

	t.Run("dismiss removes exactly one entry", func(t *testing.T) {
		store := newTestStore(t)

		_, err := store.Apply(ctx, event.NotificationDismissed{NotificationID: "3", OccurredAt: testNow})
		require.NoError(t, err)

		notifications, err := store.Notifications(ctx)
		require.NoError(t, err)
		require.Len(t, notifications, 4)
		for _, n := range notifications {
			assert.NotEqual(t, "3", n.ID)
		}

		_, err = store.Apply(ctx, event.NotificationDismissed{NotificationID: "3", OccurredAt: testNow})
		require.NoError(t, err)
		notifications, err = store.Notifications(ctx)
		require.NoError(t, err)
		assert.Len(t, notifications, 4)
	})

	t.Run("mark read is idempotent", func(t *testing.T) {
		store := newTestStore(t)

		for range 2 {
			_, err := store.Apply(ctx, event.NotificationRead{NotificationID: "1", OccurredAt: testNow})
			require.NoError(t, err)
		}

		notifications, err := store.Notifications(ctx)
		require.NoError(t, err)
		assert.True(t, notifications[0].IsRead)
		assert.False(t, notifications[2].IsRead)
	})

	t.Run("read all and dismiss all", func(t *testing.T) {
		store := newTestStore(t)

		_, err := store.Apply(ctx, event.AllNotificationsRead{OccurredAt: testNow})
		require.NoError(t, err)
		notifications, err := store.Notifications(ctx)
		require.NoError(t, err)
		for _, n := range notifications {
			assert.True(t, n.IsRead)
		}

		_, err = store.Apply(ctx, event.AllNotificationsDismissed{OccurredAt: testNow})
		require.NoError(t, err)
		notifications, err = store.Notifications(ctx)
		require.NoError(t, err)
		assert.Empty(t, notifications)
	})

	t.Run("raised notifications are prepended once", func(t *testing.T) {
		store := newTestStore(t)
		raised := entity.Notification{
			ID:        "n-1",
			Type:      entity.NotificationTypeWeight,
			Title:     "Weight Alert",
			Timestamp: testNow,
		}

		for range 2 {
			_, err := store.Apply(ctx, event.NotificationRaised{Notification: raised, OccurredAt: testNow})
			require.NoError(t, err)
		}

		notifications, err := store.Notifications(ctx)
		require.NoError(t, err)
		require.Len(t, notifications, 6)
		assert.Equal(t, "n-1", notifications[0].ID)
	})
}

func TestStore_BatteryTickedTrimsHistory(t *testing.T) {
	ctx := context.Background()
	store := NewStore(seed.State(testNow), 3, nil)

	battery, err := store.Battery(ctx)
	require.NoError(t, err)
	require.Len(t, battery.History, 3)

	_, err = store.Apply(ctx, event.BatteryTicked{Level: 150, EstimatedHours: 20, OccurredAt: testNow.Add(time.Minute)})
	require.NoError(t, err)

	battery, err = store.Battery(ctx)
	require.NoError(t, err)
	assert.InDelta(t, entity.MaxBatteryLevel, battery.Level, 1e-9)
	assert.InDelta(t, entity.MaxEstimatedHours, battery.EstimatedHours, 1e-9)
	require.Len(t, battery.History, 3)
	assert.Equal(t, testNow.Add(time.Minute), battery.History[2].At)
	assert.InDelta(t, 82.0, battery.History[0].Level, 1e-9)
}

func TestStore_ThresholdAndSettings(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.Apply(ctx,
		event.ThresholdUpdated{Kind: entity.ThresholdMaxWeight, Value: 42, OccurredAt: testNow},
		event.ThresholdUpdated{Kind: entity.ThresholdLowBattery, Value: 1, OccurredAt: testNow},
	)
	require.NoError(t, err)

	settings, err := store.Settings(ctx)
	require.NoError(t, err)
	assert.InDelta(t, entity.MaxMaxWeightKg, settings.MaxWeightKg, 1e-9)
	assert.InDelta(t, entity.MinLowBatteryPercent, settings.LowBatteryThreshold, 1e-9)

	patched := entity.DefaultSettings()
	patched.DarkMode = true
	patched.MaxWeightKg = 0
	_, err = store.Apply(ctx, event.SettingsChanged{Settings: patched, OccurredAt: testNow})
	require.NoError(t, err)

	settings, err = store.Settings(ctx)
	require.NoError(t, err)
	assert.True(t, settings.DarkMode)
	assert.InDelta(t, entity.MinMaxWeightKg, settings.MaxWeightKg, 1e-9)
}

func TestStore_FailedBatchLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	before, err := store.Snapshot(ctx)
	require.NoError(t, err)

	_, err = store.Apply(ctx,
		event.BookPresenceToggled{BookID: "1", OccurredAt: testNow},
		event.ThresholdUpdated{Kind: "volume", Value: 3, OccurredAt: testNow},
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnknownThreshold))

	_, err = store.Apply(ctx, unknownEvent{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnknownEvent))

	after, err := store.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestStore_DecideSeesCurrentState(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	transition, err := store.Decide(ctx, func(state entity.State) ([]event.Event, error) {
		for _, book := range state.Books {
			if book.IsRequired && !book.IsPresent {
				return []event.Event{event.BookScanned{BookID: book.ID, OccurredAt: testNow}}, nil
			}
		}

		return nil, nil
	}, nil)
	require.NoError(t, err)
	require.Len(t, transition.Applied, 1)
	assert.False(t, transition.Before.Books[0].IsPresent)
	assert.True(t, transition.After.Books[0].IsPresent)

	transition, err = store.Decide(ctx, func(entity.State) ([]event.Event, error) { return nil, nil }, nil)
	require.NoError(t, err)
	assert.Empty(t, transition.Applied)
	assert.Equal(t, transition.Before, transition.After)
}

func TestStore_DecideReactionsJoinTheBatch(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	var seen []float64
	transition, err := store.Decide(ctx, func(entity.State) ([]event.Event, error) {
		return []event.Event{event.WeightMeasured{Kg: 6, OccurredAt: testNow}}, nil
	}, func(before, after entity.State) []event.Event {
		seen = []float64{before.Weight.CurrentKg, after.Weight.CurrentKg}

		return []event.Event{event.NotificationRaised{
			Notification: entity.Notification{ID: "reaction", Type: entity.NotificationTypeWeight, Timestamp: testNow},
			OccurredAt:   testNow,
		}}
	})
	require.NoError(t, err)

	assert.Equal(t, []float64{4.2, 6}, seen)
	require.Len(t, transition.Applied, 2)
	assert.Equal(t, event.NotificationRaisedType, transition.Applied[1].EventType())
	assert.Equal(t, "reaction", transition.After.Notifications[0].ID)

	notifications, err := store.Notifications(ctx)
	require.NoError(t, err)
	assert.Equal(t, "reaction", notifications[0].ID)
}

func TestStore_DecideFailedReactionRollsBackTheBatch(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	before, err := store.Snapshot(ctx)
	require.NoError(t, err)

	_, err = store.Decide(ctx, func(entity.State) ([]event.Event, error) {
		return []event.Event{event.WeightMeasured{Kg: 6, OccurredAt: testNow}}, nil
	}, func(entity.State, entity.State) []event.Event {
		return []event.Event{event.ThresholdUpdated{Kind: "volume", Value: 1, OccurredAt: testNow}}
	})
	assert.True(t, errors.Is(err, domainerrors.ErrUnknownThreshold))

	after, err := store.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestStore_DecideSkipsReactionWithoutEvents(t *testing.T) {
	store := newTestStore(t)

	called := false
	transition, err := store.Decide(context.Background(), func(entity.State) ([]event.Event, error) {
		return nil, nil
	}, func(entity.State, entity.State) []event.Event {
		called = true

		return nil
	})
	require.NoError(t, err)
	assert.False(t, called)
	assert.Empty(t, transition.Applied)
}

func TestStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	store := newTestStore(t)

	_, err := store.Apply(ctx, event.BookPresenceToggled{BookID: "1", OccurredAt: testNow})
	require.ErrorIs(t, err, context.Canceled)

	book, err := store.Book(context.Background(), "1")
	require.NoError(t, err)
	assert.False(t, book.IsPresent)
}
