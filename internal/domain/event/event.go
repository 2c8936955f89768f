// Package event defines the facts the dispatcher applies to the entity store.
// Every mutation of session state is expressed as one of these values.
package event

import (
	"time"

	"smartpack/internal/domain/entity"
)

// Event is a fact that has happened to the session state.
type Event interface {
	// EventType returns the string identifier for this event type.
	EventType() string

	// HasOccurredAt returns when this event occurred.
	HasOccurredAt() time.Time
}

const (
	BookPresenceToggledType       = "BookPresenceToggled"
	BookScannedType               = "BookScanned"
	ChargingStateChangedType      = "ChargingStateChanged"
	BatteryTickedType             = "BatteryTicked"
	WeightMeasuredType            = "WeightMeasured"
	WeatherUpdatedType            = "WeatherUpdated"
	NotificationRaisedType        = "NotificationRaised"
	NotificationDismissedType     = "NotificationDismissed"
	NotificationReadType          = "NotificationRead"
	AllNotificationsReadType      = "AllNotificationsRead"
	AllNotificationsDismissedType = "AllNotificationsDismissed"
	ThresholdUpdatedType          = "ThresholdUpdated"
	SettingsChangedType           = "SettingsChanged"
)

// BookPresenceToggled flips the presence flag of one book.
type BookPresenceToggled struct {
	BookID     string
	OccurredAt time.Time
}

func (e BookPresenceToggled) EventType() string        { return BookPresenceToggledType }
func (e BookPresenceToggled) HasOccurredAt() time.Time { return e.OccurredAt }

// BookScanned marks a book as present after a scan found it.
type BookScanned struct {
	BookID     string
	OccurredAt time.Time
}

func (e BookScanned) EventType() string        { return BookScannedType }
func (e BookScanned) HasOccurredAt() time.Time { return e.OccurredAt }

// ChargingStateChanged connects or disconnects the charger. It leaves the level untouched.
type ChargingStateChanged struct {
	Charging   bool
	OccurredAt time.Time
}

func (e ChargingStateChanged) EventType() string        { return ChargingStateChangedType }
func (e ChargingStateChanged) HasOccurredAt() time.Time { return e.OccurredAt }

// BatteryTicked overwrites the level and runtime estimate after one simulation step.
type BatteryTicked struct {
	Level          float64
	EstimatedHours float64
	OccurredAt     time.Time
}

func (e BatteryTicked) EventType() string        { return BatteryTickedType }
func (e BatteryTicked) HasOccurredAt() time.Time { return e.OccurredAt }

// WeightMeasured replaces the bag weight reading.
type WeightMeasured struct {
	Kg         float64
	OccurredAt time.Time
}

func (e WeightMeasured) EventType() string        { return WeightMeasuredType }
func (e WeightMeasured) HasOccurredAt() time.Time { return e.OccurredAt }

// WeatherUpdated replaces the weather reading wholesale.
type WeatherUpdated struct {
	Weather    entity.Weather
	OccurredAt time.Time
}

func (e WeatherUpdated) EventType() string        { return WeatherUpdatedType }
func (e WeatherUpdated) HasOccurredAt() time.Time { return e.OccurredAt }

// NotificationRaised appends a notification to the list.
type NotificationRaised struct {
	Notification entity.Notification
	OccurredAt   time.Time
}

func (e NotificationRaised) EventType() string        { return NotificationRaisedType }
func (e NotificationRaised) HasOccurredAt() time.Time { return e.OccurredAt }

// NotificationDismissed removes one notification.
type NotificationDismissed struct {
	NotificationID string
	OccurredAt     time.Time
}

func (e NotificationDismissed) EventType() string        { return NotificationDismissedType }
func (e NotificationDismissed) HasOccurredAt() time.Time { return e.OccurredAt }

// NotificationRead marks one notification as read.
type NotificationRead struct {
	NotificationID string
	OccurredAt     time.Time
}

func (e NotificationRead) EventType() string        { return NotificationReadType }
func (e NotificationRead) HasOccurredAt() time.Time { return e.OccurredAt }

// AllNotificationsRead marks every notification as read.
type AllNotificationsRead struct {
	OccurredAt time.Time
}

func (e AllNotificationsRead) EventType() string        { return AllNotificationsReadType }
func (e AllNotificationsRead) HasOccurredAt() time.Time { return e.OccurredAt }

// AllNotificationsDismissed clears the notification list.
type AllNotificationsDismissed struct {
	OccurredAt time.Time
}

func (e AllNotificationsDismissed) EventType() string        { return AllNotificationsDismissedType }
func (e AllNotificationsDismissed) HasOccurredAt() time.Time { return e.OccurredAt }

// ThresholdUpdated assigns an already clamped threshold value.
type ThresholdUpdated struct {
	Kind       entity.ThresholdKind
	Value      float64
	OccurredAt time.Time
}

func (e ThresholdUpdated) EventType() string        { return ThresholdUpdatedType }
func (e ThresholdUpdated) HasOccurredAt() time.Time { return e.OccurredAt }

// SettingsChanged replaces the settings wholesale.
type SettingsChanged struct {
	Settings   entity.Settings
	OccurredAt time.Time
}

func (e SettingsChanged) EventType() string        { return SettingsChangedType }
func (e SettingsChanged) HasOccurredAt() time.Time { return e.OccurredAt }
