package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Tiliavir/tt/internal/model"
	"github.com/Tiliavir/tt/internal/timecalc"
	"github.com/Tiliavir/tt/internal/track"
)

const listColumnWidth = 30

// renderReport prints the day-by-day report followed by the week total.
func renderReport(w io.Writer, rep track.Report, weekStart time.Time, days int) {
	fmt.Fprintln(w, rowStyle.Render(strings.Repeat(" ", 8)+fmt.Sprintf("Report for the last %d days", days)))
	fmt.Fprintln(w)

	for _, day := range rep.Days {
		style := dayStyle
		if timecalc.SameDay(day.Day, weekStart) {
			style = weekStartStyle
		}
		fmt.Fprintln(w, style.Render(strings.Repeat(" ", 8)+timecalc.DayLabel(day.Day)))

		for _, a := range day.Activities {
			fmt.Fprintln(w, rowStyle.Render(fmt.Sprintf("%20s: %s (%2.3f)",
				a.Activity, timecalc.FormatHours(a.Hours), a.Hours)))
		}
		fmt.Fprintln(w, totalStyle.Render(fmt.Sprintf("%20s: %s (%2.3f) [excl. break %2.3f]",
			"total", timecalc.FormatHours(day.Total), day.Total, day.BreakExcluded)))
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, okStyle.Render(strings.Repeat(" ", 10)+fmt.Sprintf("Week total: %2.3f", rep.WeekTotal)))
}

// matchesFilter reports whether an event passes the literal substring filter.
func matchesFilter(e model.Event, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(e.Activity, filter) || strings.Contains(e.Message, filter)
}

// renderList prints raw entries in file order, pairing each with its
// successor to show the elapsed time. The last entry runs to now. Stop
// entries are shown with a dashed duration since they track nothing.
func renderList(w io.Writer, events []model.Event, now time.Time, filter string) {
	for i, e := range events {
		if !matchesFilter(e, filter) {
			continue
		}

		msg := e.Message
		if msg == "" {
			msg = "n/a"
		}
		date := e.Time.Format(model.TimeLayout)

		if e.Activity == model.StopActivity {
			fmt.Fprintln(w, errorStyle.Render(padColumns(date, e.Activity, msg, strings.Repeat("-", 8))))
			continue
		}

		end := now
		if i+1 < len(events) {
			end = events[i+1].Time
		}
		iv := model.Interval{Start: e.Time, End: end}

		style := rowStyle
		if e.Activity == model.BreakActivity {
			style = breakStyle
		}
		fmt.Fprintln(w, style.Render(padColumns(date, e.Activity, msg, timecalc.FormatSeconds(iv.Seconds()))))
	}
}

func padColumns(fields ...string) string {
	padded := make([]string, len(fields))
	for i, f := range fields {
		padded[i] = fmt.Sprintf("%-*s", listColumnWidth, f)
	}
	return strings.Join(padded, " ")
}
