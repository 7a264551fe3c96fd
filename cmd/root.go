package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Tiliavir/tt/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "tt [activity] [message...]",
	Short: "tt – a minimal command-line time tracker",
	Long: `tt records timestamped activity events to a flat, append-only log file
and derives reports from them. Any argument that is not a known command
starts tracking that activity:

  tt meetings standup
  tt abc-123 implementing the parser
  tt break lunch
  tt stop

To work with Jira, provide the JIRA_API_HOST, JIRA_API_USER and
JIRA_API_TOKEN environment variables. An activity is considered a Jira
ticket when it matches an issue key pattern such as abc-123.`,
	Args: cobra.ArbitraryArgs,
	RunE: runRecord,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(activeCmd)
	rootCmd.AddCommand(uploadCmd)
}

// mustConfig loads the environment configuration or exits.
func mustConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return cfg
}

// newLogger builds the diagnostics logger. Normal command output does not
// go through it; it carries warnings like skipped log lines.
func newLogger(cfg config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}
