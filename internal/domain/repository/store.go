// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"smartpack/internal/domain/entity"
	"smartpack/internal/domain/event"
)

// Transition is the result of applying events to the store.
type Transition struct {
	Before  entity.State  // State before the first event was applied.
	After   entity.State  // State after the last event was applied.
	Applied []event.Event // Events in the order they were applied.
}

// Decider inspects the current state and returns the events to apply.
// It runs under the store's write lock, so it must not call back into the store.
type Decider func(state entity.State) ([]event.Event, error)

// Reactor runs under the same write lock once the decided events are evolved.
// The events it returns join the same batch, so they commit or fail together.
type Reactor func(before, after entity.State) []event.Event

// Store is the single entity store shared by every view of the session.
// Reads return copies; Apply and Decide are the only way to change state.
type Store interface {
	// Snapshot returns a deep copy of the whole state.
	Snapshot(ctx context.Context) (entity.State, error)

	// Books returns all books in seed order.
	Books(ctx context.Context) ([]entity.Book, error)

	// Book returns one book or domain errors.ErrBookNotFound.
	Book(ctx context.Context, id string) (entity.Book, error)

	// Notifications returns all notifications in insertion order.
	Notifications(ctx context.Context) ([]entity.Notification, error)

	// Battery returns the battery reading.
	Battery(ctx context.Context) (entity.Battery, error)

	// Weight returns the bag weight reading.
	Weight(ctx context.Context) (entity.Weight, error)

	// Weather returns the weather reading.
	Weather(ctx context.Context) (entity.Weather, error)

	// Settings returns the user settings.
	Settings(ctx context.Context) (entity.Settings, error)

	// Apply applies events atomically. Events that reference unknown ids are no-ops.
	Apply(ctx context.Context, events ...event.Event) (Transition, error)

	// Decide runs decide against the current state and applies its events
	// atomically. When react is not nil and decide returned events, the events
	// react derives from the transition are applied in the same batch.
	Decide(ctx context.Context, decide Decider, react Reactor) (Transition, error)
}
