// Package track turns the flat event log into intervals and aggregates them
// into per-day, per-activity reports. It performs no I/O: both Derive and
// BuildReport are pure functions over in-memory data.
package track

import (
	"time"

	"github.com/Tiliavir/tt/internal/model"
	"github.com/Tiliavir/tt/internal/timecalc"
)

// Derive pairs each event with its chronological successor to form explicit
// intervals. The last event runs to now. An event with the stop activity
// terminates the prior interval and produces no interval of its own.
// Negative gaps from clock skew are clamped to zero-length intervals.
func Derive(events []model.Event, now time.Time) []model.Interval {
	var intervals []model.Interval
	for i, e := range events {
		if e.Activity == model.StopActivity {
			continue
		}
		end := now
		if i+1 < len(events) {
			end = events[i+1].Time
		}
		if end.Before(e.Time) {
			end = e.Time
		}
		intervals = append(intervals, model.Interval{
			Start:    e.Time,
			End:      end,
			Activity: e.Activity,
			Message:  e.Message,
		})
	}
	return intervals
}

// ActivityHours is one activity's accumulated hours within a day.
type ActivityHours struct {
	Activity string
	Hours    float64
}

// DayAggregate holds one calendar day's totals. Activities keep the order in
// which they first appeared that day, so report output is stable.
type DayAggregate struct {
	Day        time.Time
	Activities []ActivityHours
	// Total is the day's net work time: all hours minus BreakExcluded.
	Total float64
	// BreakExcluded is the break time above the configured allowance.
	BreakExcluded float64
}

// Report is the trailing-window sequence of daily aggregates.
type Report struct {
	Days []DayAggregate
	// WeekTotal sums corrected day totals from the most recent Monday on.
	WeekTotal float64
}

// Options configures report aggregation.
type Options struct {
	// Days bounds the report to the most recent N day buckets.
	Days int
	// BreakAllowance is the daily break time (hours) included in work time.
	BreakAllowance float64
}

type dayBucket struct {
	day   time.Time
	order []string
	hours map[string]float64
}

// BuildReport groups intervals by the local calendar day of their start,
// sums hours per activity in first-seen order, applies the break correction
// and computes the week-to-date total relative to now.
func BuildReport(intervals []model.Interval, now time.Time, opts Options) Report {
	var days []*dayBucket
	index := make(map[string]*dayBucket)

	for _, iv := range intervals {
		key := iv.Start.Format("2006-01-02")
		b := index[key]
		if b == nil {
			b = &dayBucket{
				day:   timecalc.StartOfDay(iv.Start),
				hours: make(map[string]float64),
			}
			index[key] = b
			days = append(days, b)
		}
		if _, seen := b.hours[iv.Activity]; !seen {
			b.order = append(b.order, iv.Activity)
		}
		b.hours[iv.Activity] += iv.Hours()
	}

	if opts.Days > 0 && len(days) > opts.Days {
		days = days[len(days)-opts.Days:]
	}

	weekStart := timecalc.WeekStart(now)

	var report Report
	for _, b := range days {
		agg := DayAggregate{Day: b.day}
		var total float64
		for _, activity := range b.order {
			h := b.hours[activity]
			total += h
			if activity == model.BreakActivity {
				excluded := h - opts.BreakAllowance
				if excluded < 0 {
					excluded = 0
				}
				agg.BreakExcluded = excluded
			}
			agg.Activities = append(agg.Activities, ActivityHours{Activity: activity, Hours: h})
		}
		agg.Total = total - agg.BreakExcluded
		report.Days = append(report.Days, agg)

		if !b.day.Before(weekStart) {
			report.WeekTotal += agg.Total
		}
	}
	return report
}
