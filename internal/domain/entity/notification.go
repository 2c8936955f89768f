package entity

import (
	"time"
)

// NotificationType classifies a notification by the reading that caused it.
type NotificationType string

const (
	NotificationTypeBook    NotificationType = "book"
	NotificationTypeBattery NotificationType = "battery"
	NotificationTypeWeight  NotificationType = "weight"
	NotificationTypeWeather NotificationType = "weather"
	NotificationTypeGeneral NotificationType = "general"
)

// Valid reports whether t is one of the known notification types.
func (t NotificationType) Valid() bool {
	switch t {
	case NotificationTypeBook, NotificationTypeBattery, NotificationTypeWeight,
		NotificationTypeWeather, NotificationTypeGeneral:
		return true
	default:
		return false
	}
}

// Notification is an alert shown in the notification list.
type Notification struct {
	ID        string           `json:"id"`        // Unique within the collection.
	Type      NotificationType `json:"type"`      // What raised the notification.
	Title     string           `json:"title"`     // Short headline.
	Message   string           `json:"message"`   // Body text.
	Timestamp time.Time        `json:"timestamp"` // When the notification was raised.
	IsRead    bool             `json:"is_read"`   // Set by mark-read, never cleared.
}
