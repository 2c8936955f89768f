package entity

import (
	"time"
)

const (
	// MaxBatteryLevel is a full charge in percent.
	MaxBatteryLevel = 100.0
	// MaxEstimatedHours caps the runtime estimate while charging.
	MaxEstimatedHours = 12.0
)

// BatteryHistoryPoint is one sample of the battery history chart.
type BatteryHistoryPoint struct {
	At    time.Time `json:"at"`
	Level float64   `json:"level"`
}

// Battery is the backpack battery reading.
type Battery struct {
	Level          float64               `json:"level"`           // 0..100 percent.
	Charging       bool                  `json:"charging"`        // Charger connected.
	EstimatedHours float64               `json:"estimated_hours"` // 0..12 hours of remaining runtime.
	History        []BatteryHistoryPoint `json:"history"`         // Oldest first, fixed length buffer.
}

// Clone returns a copy that does not share the history buffer.
func (b Battery) Clone() Battery {
	b.History = append([]BatteryHistoryPoint(nil), b.History...)

	return b
}
