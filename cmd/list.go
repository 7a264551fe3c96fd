package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/tt/internal/store"
	"github.com/Tiliavir/tt/internal/timecalc"
)

var listCmd = &cobra.Command{
	Use:     "list [filter]",
	Aliases: []string{"ls"},
	Short:   "List the last raw entries, optionally filtered by substring",
	Args:    cobra.ArbitraryArgs,
	RunE:    runList,
}

func runList(cmd *cobra.Command, args []string) error {
	cfg := mustConfig()
	logger := newLogger(cfg)
	now := time.Now()
	filter := strings.Join(args, " ")

	header := fmt.Sprintf("List of the last %d entries", cfg.ListEntries)
	if filter != "" {
		header += " [filter: " + filter + "]"
	}
	fmt.Println(headerStyle.Render(header))
	fmt.Println()

	cutoff := timecalc.StartOfDay(now).AddDate(0, 0, -cfg.ReportDays)
	st := store.New(cfg.File, cfg.Separator, logger)

	events, err := st.ReadSince(cutoff)
	if err != nil {
		fmt.Println(errorStyle.Render("ERROR: " + err.Error()))
		events = nil
	}
	if len(events) > cfg.ListEntries {
		events = events[len(events)-cfg.ListEntries:]
	}

	renderList(os.Stdout, events, now, filter)
	return nil
}
