package derive

import (
	"smartpack/internal/domain/entity"
)

// Status bundles every derived value of a state.
type Status struct {
	RequiredTotal        int          `json:"required_total"`
	RequiredPresentCount int          `json:"required_present_count"`
	MissingRequiredCount int          `json:"missing_required_count"`
	MissingRequired      []string     `json:"missing_required"` // Titles, collection order.
	ProgressPercentage   float64      `json:"progress_percentage"`
	AllRequiredPresent   bool         `json:"all_required_present"`
	IsOverweight         bool         `json:"is_overweight"`
	WeightTier           WeightTier   `json:"weight_tier"`
	BatteryTier          BatteryTier  `json:"battery_tier"`
	BatteryMode          BatteryMode  `json:"battery_mode"`
	RuntimeLabel         RuntimeLabel `json:"runtime_label"`
	IsLowBattery         bool         `json:"is_low_battery"`
	NeedUmbrella         bool         `json:"need_umbrella"`
	UnreadCount          int          `json:"unread_count"`
}

// Evaluate derives the full status of state.
func Evaluate(state entity.State) Status {
	missing := MissingRequiredBooks(state.Books)
	titles := make([]string, 0, len(missing))
	for _, book := range missing {
		titles = append(titles, book.Title)
	}

	return Status{
		RequiredTotal:        len(RequiredBooks(state.Books)),
		RequiredPresentCount: RequiredPresentCount(state.Books),
		MissingRequiredCount: len(missing),
		MissingRequired:      titles,
		ProgressPercentage:   ProgressPercentage(state.Books),
		AllRequiredPresent:   AllRequiredPresent(state.Books),
		IsOverweight:         IsOverweight(state.Weight.CurrentKg, state.Settings.MaxWeightKg),
		WeightTier:           WeightTierOf(state.Weight.CurrentKg, state.Settings.MaxWeightKg),
		BatteryTier:          BatteryTierOf(state.Battery.Level),
		BatteryMode:          BatteryModeOf(state.Battery),
		RuntimeLabel:         RuntimeLabelOf(state.Battery.Level),
		IsLowBattery:         IsLowBattery(state.Battery.Level, state.Settings.LowBatteryThreshold),
		NeedUmbrella:         NeedUmbrella(state.Weather.ChanceOfRain),
		UnreadCount:          UnreadCount(state.Notifications),
	}
}
