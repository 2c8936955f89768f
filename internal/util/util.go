package util

import (
	"fmt"
	"time"
)

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}

// FormatRuntime formats a fractional hour estimate, e.g. 5.5 -> "5h30m".
func FormatRuntime(hours float64) string {
	if hours <= 0 {
		return "0s"
	}

	return FormatDuration(time.Duration(hours * float64(time.Hour)))
}

// TimeAgo renders the age of t relative to now in whole units ("3 minutes ago").
// Timestamps in the future are treated as just now.
func TimeAgo(now, t time.Time) string {
	seconds := int(now.Sub(t) / time.Second)
	if seconds < 0 {
		seconds = 0
	}

	switch {
	case seconds < 60:
		return fmt.Sprintf("%d seconds ago", seconds)
	case seconds < 3600:
		return fmt.Sprintf("%d minutes ago", seconds/60)
	case seconds < 86400:
		return fmt.Sprintf("%d hours ago", seconds/3600)
	default:
		return fmt.Sprintf("%d days ago", seconds/86400)
	}
}
