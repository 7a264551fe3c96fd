package model

import (
	"fmt"
	"strings"
	"time"
)

// TimeLayout is the fixed-width local timestamp format used in the log file.
const TimeLayout = "2006-01-02 15:04:05"

const (
	// StopActivity terminates the current interval without starting a new one.
	StopActivity = "stop"
	// BreakActivity is counted in elapsed time but excluded from net work totals.
	BreakActivity = "break"
)

// Event is one persisted record: an activity starting (or stopping) at an instant.
type Event struct {
	Time     time.Time
	Activity string
	Message  string
}

// Line encodes the event as a single log line (without trailing newline).
// The message field is omitted entirely when empty.
func (e Event) Line(sep string) string {
	if e.Message == "" {
		return e.Time.Format(TimeLayout) + sep + e.Activity
	}
	return e.Time.Format(TimeLayout) + sep + e.Activity + sep + e.Message
}

// ParseLine decodes one log line. Activity tokens are normalized to lowercase
// so manually edited entries behave like recorded ones.
func ParseLine(line, sep string) (Event, error) {
	fields := strings.SplitN(line, sep, 3)
	if len(fields) < 2 {
		return Event{}, fmt.Errorf("malformed entry (want at least 2 fields): %q", line)
	}
	ts, err := time.ParseInLocation(TimeLayout, fields[0], time.Local)
	if err != nil {
		return Event{}, fmt.Errorf("malformed timestamp %q: %w", fields[0], err)
	}
	e := Event{
		Time:     ts,
		Activity: strings.ToLower(strings.TrimSpace(fields[1])),
	}
	if e.Activity == "" {
		return Event{}, fmt.Errorf("malformed entry (empty activity): %q", line)
	}
	if len(fields) == 3 {
		e.Message = strings.TrimSpace(fields[2])
	}
	return e, nil
}

// Interval is a derived, non-persisted span between two consecutive events,
// attributed to the starting event's activity.
type Interval struct {
	Start    time.Time
	End      time.Time
	Activity string
	Message  string
}

// Duration returns the interval length, never negative.
func (iv Interval) Duration() time.Duration {
	d := iv.End.Sub(iv.Start)
	if d < 0 {
		return 0
	}
	return d
}

// Seconds returns the clamped duration in whole seconds.
func (iv Interval) Seconds() int64 {
	return int64(iv.Duration().Seconds())
}

// Hours returns the clamped duration in fractional hours.
func (iv Interval) Hours() float64 {
	return iv.Duration().Hours()
}

// SanitizeActivity normalizes a user-supplied activity token: lowercased,
// trimmed, and with the field separator replaced so it cannot corrupt the log.
func SanitizeActivity(s, sep string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), sep, "_"))
}

// SanitizeMessage replaces the field separator in a free-text message.
func SanitizeMessage(s, sep string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), sep, "_")
}
