package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/tt/internal/jira"
	"github.com/Tiliavir/tt/internal/model"
	"github.com/Tiliavir/tt/internal/store"
	"github.com/Tiliavir/tt/internal/timecalc"
	"github.com/Tiliavir/tt/internal/track"
)

var uploadCmd = &cobra.Command{
	Use:   "upload [dayOffset]",
	Short: "Upload worklogs for Jira issue activities (default offset 0 = today)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runUpload,
}

// runUpload submits one worklog per issue-key interval in the window.
// Each submission is independent: a failure is printed and the loop goes on.
func runUpload(cmd *cobra.Command, args []string) error {
	cfg := mustConfig()
	logger := newLogger(cfg)
	now := time.Now()
	ctx := context.Background()

	offset := 0
	if len(args) == 1 {
		if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
			offset = n
		}
	}

	client, err := jira.NewClient(ctx, cfg, logger)
	if err != nil {
		fmt.Println(errorStyle.Render("ERROR: " + err.Error()))
		return nil
	}

	cutoff := timecalc.StartOfDay(now).AddDate(0, 0, -offset)
	st := store.New(cfg.File, cfg.Separator, logger)

	events, err := st.ReadSince(cutoff)
	if err != nil {
		fmt.Println(errorStyle.Render("ERROR: " + err.Error()))
		return nil
	}

	for _, iv := range track.Derive(events, now) {
		if !jira.IsIssueKey(iv.Activity) {
			continue
		}

		comment := iv.Message
		if comment == "" {
			comment = "n/a"
		}

		fmt.Println(headerStyle.Render(fmt.Sprintf("POST %s/rest/api/3/issue/%s/worklog [%s, %s, %ds]",
			client.BaseURL(), iv.Activity, comment, iv.Start.Format(model.TimeLayout), iv.Seconds())))

		if err := client.AddWorklog(ctx, iv.Activity, comment, iv.Start, iv.Seconds()); err != nil {
			fmt.Println(errorStyle.Render("ERROR: " + err.Error()))
			continue
		}
		fmt.Println(okStyle.Render("Status: OK"))
	}
	return nil
}
