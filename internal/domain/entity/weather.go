package entity

import (
	"time"
)

// Condition is the normalized sky condition shown on the weather card.
type Condition string

const (
	ConditionSunny  Condition = "sunny"
	ConditionCloudy Condition = "cloudy"
	ConditionRainy  Condition = "rainy"
)

// DayForecast is one entry of the five day forecast.
type DayForecast struct {
	Day          string    `json:"day"` // Weekday name, "Tomorrow" for the first entry.
	Temperature  float64   `json:"temperature"`
	Condition    Condition `json:"condition"`
	ChanceOfRain float64   `json:"chance_of_rain"`
}

// Weather is the current weather at the bag's location.
type Weather struct {
	LocationName string        `json:"location_name"`
	Country      string        `json:"country,omitempty"`
	Temperature  float64       `json:"temperature"`    // Celsius.
	Condition    Condition     `json:"condition"`      // sunny, cloudy or rainy.
	Humidity     float64       `json:"humidity"`       // Percent.
	ChanceOfRain float64       `json:"chance_of_rain"` // Percent.
	WindSpeed    float64       `json:"wind_speed"`     // km/h.
	Forecast     []DayForecast `json:"forecast"`
	UpdatedAt    time.Time     `json:"updated_at"`
	IsSample     bool          `json:"is_sample"` // Built-in dataset served instead of provider data.
}

// Clone returns a copy that does not share the forecast slice.
func (w Weather) Clone() Weather {
	w.Forecast = append([]DayForecast(nil), w.Forecast...)

	return w
}
