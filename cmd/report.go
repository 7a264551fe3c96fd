package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/tt/internal/store"
	"github.com/Tiliavir/tt/internal/timecalc"
	"github.com/Tiliavir/tt/internal/track"
)

var reportCmd = &cobra.Command{
	Use:     "report",
	Aliases: []string{"rep"},
	Short:   "Show report for the last days, grouped by day and activity",
	Args:    cobra.NoArgs,
	RunE:    runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg := mustConfig()
	logger := newLogger(cfg)
	now := time.Now()

	cutoff := timecalc.StartOfDay(now).AddDate(0, 0, -cfg.ReportDays)
	st := store.New(cfg.File, cfg.Separator, logger)

	events, err := st.ReadSince(cutoff)
	if err != nil {
		// Best-effort reporting: an unreadable store degrades to no entries.
		fmt.Println(errorStyle.Render("ERROR: " + err.Error()))
		events = nil
	}

	intervals := track.Derive(events, now)
	report := track.BuildReport(intervals, now, track.Options{
		Days:           cfg.ReportDays,
		BreakAllowance: cfg.BreakAllowance,
	})

	renderReport(os.Stdout, report, timecalc.WeekStart(now), cfg.ReportDays)
	return nil
}
