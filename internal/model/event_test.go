package model_test

import (
	"testing"
	"time"

	"github.com/Tiliavir/tt/internal/model"
)

func TestParseLine(t *testing.T) {
	ts := time.Date(2022, 8, 24, 9, 15, 0, 0, time.Local)

	tests := []struct {
		line string
		want model.Event
	}{
		{"2022-08-24 09:15:00,meetings,standup", model.Event{Time: ts, Activity: "meetings", Message: "standup"}},
		{"2022-08-24 09:15:00,meetings", model.Event{Time: ts, Activity: "meetings"}},
		{"2022-08-24 09:15:00,stop,", model.Event{Time: ts, Activity: "stop"}},
		// Manually edited entries are normalized to lowercase.
		{"2022-08-24 09:15:00,STORY-123,implementation", model.Event{Time: ts, Activity: "story-123", Message: "implementation"}},
		// Only the first two separators split; the rest stays in the message.
		{"2022-08-24 09:15:00,abc-1,fix a, b and c", model.Event{Time: ts, Activity: "abc-1", Message: "fix a, b and c"}},
	}
	for _, tt := range tests {
		got, err := model.ParseLine(tt.line, ",")
		if err != nil {
			t.Errorf("ParseLine(%q) error: %v", tt.line, err)
			continue
		}
		if !got.Time.Equal(tt.want.Time) || got.Activity != tt.want.Activity || got.Message != tt.want.Message {
			t.Errorf("ParseLine(%q) = %+v, want %+v", tt.line, got, tt.want)
		}
	}
}

func TestParseLineMalformed(t *testing.T) {
	lines := []string{
		"2022-08-24 09:15:00",          // too few fields
		"not a timestamp,meetings",     // bad timestamp
		"2022-08-24 09:15:00,,message", // empty activity
	}
	for _, line := range lines {
		if _, err := model.ParseLine(line, ","); err == nil {
			t.Errorf("ParseLine(%q) expected error, got nil", line)
		}
	}
}

func TestEventLine(t *testing.T) {
	ts := time.Date(2022, 8, 24, 9, 15, 0, 0, time.Local)

	e := model.Event{Time: ts, Activity: "meetings", Message: "standup"}
	if got := e.Line(","); got != "2022-08-24 09:15:00,meetings,standup" {
		t.Errorf("Line = %q", got)
	}

	e.Message = ""
	if got := e.Line(","); got != "2022-08-24 09:15:00,meetings" {
		t.Errorf("Line without message = %q", got)
	}
}

func TestSanitizeActivity(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"STORY-123", "story-123"},
		{"meetings", "meetings"},
		{" Break ", "break"},
		{"a,b,c", "a_b_c"},
	}
	for _, tt := range tests {
		if got := model.SanitizeActivity(tt.in, ","); got != tt.want {
			t.Errorf("SanitizeActivity(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSanitizeMessage(t *testing.T) {
	if got := model.SanitizeMessage("Fix A, then B", ","); got != "Fix A_ then B" {
		t.Errorf("SanitizeMessage = %q", got)
	}
}

func TestIntervalDurationClamp(t *testing.T) {
	a := time.Date(2022, 8, 24, 10, 0, 0, 0, time.Local)
	b := time.Date(2022, 8, 24, 9, 0, 0, 0, time.Local)

	iv := model.Interval{Start: a, End: b}
	if iv.Duration() != 0 {
		t.Errorf("Duration = %v, want 0 for reversed timestamps", iv.Duration())
	}
	if iv.Seconds() != 0 || iv.Hours() != 0 {
		t.Errorf("Seconds/Hours = %d/%v, want 0/0", iv.Seconds(), iv.Hours())
	}

	iv = model.Interval{Start: b, End: a}
	if iv.Seconds() != 3600 {
		t.Errorf("Seconds = %d, want 3600", iv.Seconds())
	}
}
