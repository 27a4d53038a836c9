package schedule

import "time"

// DateWindow returns the horizonWeeks+1 weekly candidate dates, starting at
// the most recent past-or-present occurrence of the anchor weekday relative
// to now. now is an explicit parameter so runs are replayable in tests.
func DateWindow(now time.Time, anchor time.Weekday, horizonWeeks int) []time.Time {
	start := dateOnly(now)
	offset := (int(start.Weekday()) - int(anchor) + 7) % 7
	start = start.AddDate(0, 0, -offset)

	dates := make([]time.Time, 0, horizonWeeks+1)
	for i := 0; i <= horizonWeeks; i++ {
		dates = append(dates, start.AddDate(0, 0, 7*i))
	}
	return dates
}

// dateOnly strips the time-of-day portion, normalizing to UTC midnight so
// dates compare with ==.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
