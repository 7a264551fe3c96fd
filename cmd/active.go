package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/tt/internal/jira"
)

var activeCmd = &cobra.Command{
	Use:   "active",
	Short: "List active Jira issues assigned to you",
	Args:  cobra.NoArgs,
	RunE:  runActive,
}

// runActive is best effort: configuration and network failures are printed
// and never produce a non-zero exit.
func runActive(cmd *cobra.Command, args []string) error {
	cfg := mustConfig()
	logger := newLogger(cfg)
	ctx := context.Background()

	client, err := jira.NewClient(ctx, cfg, logger)
	if err != nil {
		fmt.Println(errorStyle.Render("ERROR: " + err.Error()))
		return nil
	}

	fmt.Println(headerStyle.Render("GET " + client.BaseURL() + "/rest/api/3/search"))

	issues, err := client.ActiveIssues(ctx)
	if err != nil {
		fmt.Println(errorStyle.Render("ERROR: " + err.Error()))
		return nil
	}

	fmt.Println(activeStyle.Render(fmt.Sprintf("Active issues (%d)", len(issues))))
	for _, issue := range issues {
		status := ""
		if issue.Fields.Status != nil {
			status = issue.Fields.Status.Name
		}
		fmt.Printf("* %s: %s [%s]\n", issue.Key, issue.Fields.Summary, status)
	}
	return nil
}
