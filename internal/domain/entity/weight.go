package entity

import (
	"time"
)

// Weight is the latest bag weight reading.
type Weight struct {
	CurrentKg  float64   `json:"current_kg"`
	MeasuredAt time.Time `json:"measured_at"`
}
