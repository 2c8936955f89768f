package derive

import "time"

func testTime() time.Time {
	return time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
}
