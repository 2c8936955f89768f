// Package derive computes status values from store state.
//
// Every function here is pure: the same inputs always yield the same output
// and nothing is cached, so derived values can never go stale.
package derive

import (
	"smartpack/internal/domain/entity"
)

const (
	// lowTierCeiling and moderateTierCeiling are inclusive upper bounds of the battery tiers.
	lowTierCeiling      = 20.0
	moderateTierCeiling = 50.0

	// umbrellaRainChance is the chance of rain that must be exceeded to need an umbrella.
	umbrellaRainChance = 50.0

	// gettingHeavyRatio is the weight/limit ratio where the bag starts to feel heavy.
	gettingHeavyRatio = 0.75

	criticalRuntimeLevel = 15.0
	lowRuntimeLevel      = 30.0
)

// BatteryTier is the named bucket of a battery level.
type BatteryTier string

const (
	BatteryTierLow      BatteryTier = "low"
	BatteryTierModerate BatteryTier = "moderate"
	BatteryTierGood     BatteryTier = "good"
)

// BatteryMode is the state of the battery simulation.
type BatteryMode string

const (
	BatteryModeIdle     BatteryMode = "idle"
	BatteryModeDraining BatteryMode = "draining"
	BatteryModeCharging BatteryMode = "charging"
)

// WeightTier is the named bucket of the bag weight relative to its limit.
type WeightTier string

const (
	WeightTierGood         WeightTier = "good"
	WeightTierGettingHeavy WeightTier = "getting_heavy"
	WeightTierTooHeavy     WeightTier = "too_heavy"
)

// RuntimeLabel qualifies the remaining runtime.
type RuntimeLabel string

const (
	RuntimeCritical RuntimeLabel = "critical"
	RuntimeLow      RuntimeLabel = "low"
	RuntimeNormal   RuntimeLabel = "normal"
)

// RequiredBooks returns the required books in collection order.
func RequiredBooks(books []entity.Book) []entity.Book {
	required := make([]entity.Book, 0, len(books))
	for _, book := range books {
		if book.IsRequired {
			required = append(required, book)
		}
	}

	return required
}

// MissingRequiredBooks returns the required books that are not in the bag.
func MissingRequiredBooks(books []entity.Book) []entity.Book {
	missing := make([]entity.Book, 0)
	for _, book := range books {
		if book.IsRequired && !book.IsPresent {
			missing = append(missing, book)
		}
	}

	return missing
}

// RequiredPresentCount returns how many required books are in the bag.
func RequiredPresentCount(books []entity.Book) int {
	count := 0
	for _, book := range books {
		if book.IsRequired && book.IsPresent {
			count++
		}
	}

	return count
}

// ProgressPercentage is the share of required books in the bag, 0..100.
// It is 0 when no book is required.
func ProgressPercentage(books []entity.Book) float64 {
	total := len(RequiredBooks(books))
	if total == 0 {
		return 0
	}

	return float64(RequiredPresentCount(books)) / float64(total) * 100
}

// AllRequiredPresent reports whether at least one book is required and none is missing.
func AllRequiredPresent(books []entity.Book) bool {
	return len(RequiredBooks(books)) > 0 && len(MissingRequiredBooks(books)) == 0
}

// IsOverweight reports whether the bag is strictly heavier than the limit.
func IsOverweight(weightKg, maxKg float64) bool {
	return weightKg > maxKg
}

// WeightTierOf buckets the bag weight against the limit.
func WeightTierOf(weightKg, maxKg float64) WeightTier {
	if maxKg <= 0 {
		return WeightTierTooHeavy
	}

	ratio := weightKg / maxKg
	switch {
	case ratio >= 1:
		return WeightTierTooHeavy
	case ratio >= gettingHeavyRatio:
		return WeightTierGettingHeavy
	default:
		return WeightTierGood
	}
}

// BatteryTierOf buckets a battery level. 20 is still low and 50 still moderate.
func BatteryTierOf(level float64) BatteryTier {
	switch {
	case level <= lowTierCeiling:
		return BatteryTierLow
	case level <= moderateTierCeiling:
		return BatteryTierModerate
	default:
		return BatteryTierGood
	}
}

// IsLowBattery reports whether level has fallen to the user's threshold.
func IsLowBattery(level, threshold float64) bool {
	return level <= threshold
}

// BatteryModeOf returns what the simulation will do on its next tick.
func BatteryModeOf(battery entity.Battery) BatteryMode {
	switch {
	case battery.Charging && battery.Level < entity.MaxBatteryLevel:
		return BatteryModeCharging
	case !battery.Charging && battery.Level > 0:
		return BatteryModeDraining
	default:
		return BatteryModeIdle
	}
}

// RuntimeLabelOf qualifies the remaining runtime by battery level.
func RuntimeLabelOf(level float64) RuntimeLabel {
	switch {
	case level < criticalRuntimeLevel:
		return RuntimeCritical
	case level < lowRuntimeLevel:
		return RuntimeLow
	default:
		return RuntimeNormal
	}
}

// NeedUmbrella reports whether the chance of rain is strictly above 50%.
func NeedUmbrella(chanceOfRain float64) bool {
	return chanceOfRain > umbrellaRainChance
}

// UnreadCount returns the number of unread notifications.
func UnreadCount(notifications []entity.Notification) int {
	count := 0
	for _, n := range notifications {
		if !n.IsRead {
			count++
		}
	}

	return count
}
