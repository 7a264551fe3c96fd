package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/tt/internal/model"
	"github.com/Tiliavir/tt/internal/store"
)

// runRecord handles the bare invocation: no arguments prints usage, anything
// else records a start event for the named activity.
func runRecord(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	return record(args[0], strings.Join(args[1:], " "))
}

// record appends one event with the current timestamp. Storage failures are
// fatal here, unlike the read-only commands.
func record(activity, message string) error {
	cfg := mustConfig()
	logger := newLogger(cfg)
	now := time.Now()

	act := model.SanitizeActivity(activity, cfg.Separator)
	msg := model.SanitizeMessage(message, cfg.Separator)

	st := store.New(cfg.File, cfg.Separator, logger)
	if err := st.Append(model.Event{Time: now, Activity: act, Message: msg}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	display := msg
	if display == "" {
		display = "n/a"
	}
	fmt.Println(okStyle.Render(fmt.Sprintf("Record activity [%s] with message [%s]", act, display)))
	return nil
}
