package discord

import (
	"time"

	"tscatalog/pkg/tz"
)

const reportLayout = "02.01.2006 15:04 MST"

// FormatReportTime renders t in Vienna local time for embed footers.
func FormatReportTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(tz.Vienna).Format(reportLayout)
}

// NextReport returns the first multiple of interval after now, counted from
// midnight Vienna time, so reports land at stable wall-clock times.
func NextReport(now time.Time, interval time.Duration) time.Time {
	local := now.In(tz.Vienna)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, tz.Vienna)
	if interval <= 0 {
		return midnight.AddDate(0, 0, 1)
	}
	next := midnight
	for !next.After(now) {
		next = next.Add(interval)
	}
	return next
}
