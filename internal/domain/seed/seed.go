// Package seed holds the mocked dataset a session starts from.
package seed

import (
	"time"

	"smartpack/internal/domain/entity"
)

const (
	// BagWeightKg is the initial bag weight reading.
	BagWeightKg = 4.2
	// BatteryLevel is the initial battery level in percent.
	BatteryLevel = 75.0
	// EstimatedHours is the initial runtime estimate.
	EstimatedHours = 6.0
)

// Books returns the fixed book set. Five books are required and one of them is missing.
func Books() []entity.Book {
	return []entity.Book{
		{ID: "1", Title: "Mathematics Textbook", Author: "John Smith", IsRequired: true, IsPresent: false},
		{ID: "2", Title: "Physics Fundamentals", Author: "Robert Johnson", IsRequired: true, IsPresent: true},
		{ID: "3", Title: "History of Science", Author: "Mary Williams", IsRequired: true, IsPresent: true},
		{ID: "4", Title: "English Literature", Author: "Sarah Brown", IsRequired: true, IsPresent: true},
		{ID: "5", Title: "Programming Basics", Author: "David Miller", IsRequired: true, IsPresent: true},
		{ID: "6", Title: "Art History", Author: "Elizabeth Taylor", IsRequired: false, IsPresent: false},
	}
}

// Notifications returns the notifications present when a session starts, newest first.
func Notifications(now time.Time) []entity.Notification {
	return []entity.Notification{
		{
			ID:        "1",
			Type:      entity.NotificationTypeBook,
			Title:     "Missing Book",
			Message:   "Mathematics textbook is not in your backpack",
			Timestamp: now.Add(-30 * time.Minute),
		},
		{
			ID:        "2",
			Type:      entity.NotificationTypeBattery,
			Title:     "Battery Status",
			Message:   "Your backpack battery is at 75%",
			Timestamp: now.Add(-2 * time.Hour),
			IsRead:    true,
		},
		{
			ID:        "3",
			Type:      entity.NotificationTypeWeight,
			Title:     "Weight Alert",
			Message:   "Backpack weight exceeds recommended limit of 5kg",
			Timestamp: now.Add(-3 * time.Hour),
		},
		{
			ID:        "4",
			Type:      entity.NotificationTypeWeather,
			Title:     "Weather Alert",
			Message:   "Rain expected today, pack your umbrella",
			Timestamp: now.Add(-24 * time.Hour),
			IsRead:    true,
		},
		{
			ID:        "5",
			Type:      entity.NotificationTypeGeneral,
			Title:     "SmartPack Update",
			Message:   "New firmware update available for your SmartPack",
			Timestamp: now.Add(-48 * time.Hour),
			IsRead:    true,
		},
	}
}

// Battery returns the initial battery reading with a two-hourly history ending at now.
func Battery(now time.Time) entity.Battery {
	levels := []float64{100, 95, 88, 82, BatteryLevel}
	history := make([]entity.BatteryHistoryPoint, len(levels))
	for i, level := range levels {
		history[i] = entity.BatteryHistoryPoint{
			At:    now.Add(-time.Duration(len(levels)-1-i) * 2 * time.Hour),
			Level: level,
		}
	}

	return entity.Battery{
		Level:          BatteryLevel,
		EstimatedHours: EstimatedHours,
		History:        history,
	}
}

// Weather returns the built-in sample weather. It doubles as the fallback
// dataset when the weather provider cannot be reached.
func Weather(now time.Time, locationName string) entity.Weather {
	return entity.Weather{
		LocationName: locationName,
		Temperature:  24,
		Condition:    entity.ConditionCloudy,
		Humidity:     65,
		ChanceOfRain: 65,
		WindSpeed:    12,
		Forecast: []entity.DayForecast{
			{Day: "Tomorrow", Temperature: 26, Condition: entity.ConditionSunny, ChanceOfRain: 10},
			{Day: "Wednesday", Temperature: 25, Condition: entity.ConditionCloudy, ChanceOfRain: 30},
			{Day: "Thursday", Temperature: 23, Condition: entity.ConditionRainy, ChanceOfRain: 80},
			{Day: "Friday", Temperature: 22, Condition: entity.ConditionRainy, ChanceOfRain: 90},
			{Day: "Saturday", Temperature: 24, Condition: entity.ConditionCloudy, ChanceOfRain: 40},
		},
		UpdatedAt: now,
		IsSample:  true,
	}
}

// UnknownLocation labels sample weather before any location is known.
const UnknownLocation = "Unknown location"

// State returns the complete starting state of a session.
func State(now time.Time) entity.State {
	return entity.State{
		Books:         Books(),
		Notifications: Notifications(now),
		Battery:       Battery(now),
		Weight:        entity.Weight{CurrentKg: BagWeightKg, MeasuredAt: now},
		Weather:       Weather(now, UnknownLocation),
		Settings:      entity.DefaultSettings(),
	}
}
