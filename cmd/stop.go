package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/tt/internal/model"
)

var stopCmd = &cobra.Command{
	Use:   "stop [message...]",
	Short: "Stop tracking time of the current activity",
	Args:  cobra.ArbitraryArgs,
	RunE:  runStop,
}

func runStop(cmd *cobra.Command, args []string) error {
	return record(model.StopActivity, strings.Join(args, " "))
}
