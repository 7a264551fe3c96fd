package timecalc

import (
	"fmt"
	"math"
	"time"
)

// StartOfDay returns 00:00:00 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekStart returns midnight of the most recent Monday on or before t.
func WeekStart(t time.Time) time.Time {
	// Go's weekday: Sunday=0, Monday=1, …, Saturday=6
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7 // treat Sunday as 7 (ISO)
	}
	monday := t.AddDate(0, 0, -(wd - 1))
	return StartOfDay(monday)
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DayLabel formats a day as "2006-01-02 (Monday)".
func DayLabel(t time.Time) string {
	return t.Format("2006-01-02 (Monday)")
}

// FormatSeconds formats whole seconds as HH:MM:SS.
func FormatSeconds(seconds int64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// FormatHours renders fractional hours as HH:MM:SS elapsed time.
func FormatHours(hours float64) string {
	return FormatSeconds(int64(math.Round(hours * 3600)))
}
