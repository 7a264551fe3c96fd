package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all settings, loaded once from environment variables at
// process start and passed explicitly to each component.
type Config struct {
	// File is the append-only event log. Defaults to ~/time-tracker.csv.
	File string `envconfig:"TT_FILE"`
	// Separator is the single field delimiter used in the log file.
	Separator string `envconfig:"TT_SEPARATOR" default:","`
	// ReportDays is the trailing window shown by the report command.
	ReportDays int `envconfig:"TT_REPORT_DAYS" default:"7"`
	// ListEntries bounds how many raw entries the list command shows.
	ListEntries int `envconfig:"TT_LIST_ENTRIES" default:"20"`
	// BreakAllowance is the daily break time (in hours) included in work time.
	BreakAllowance float64 `envconfig:"TT_BREAK_ALLOWANCE" default:"0"`
	LogLevel       string  `envconfig:"TT_LOG_LEVEL" default:"warn"`
	Editor         string  `envconfig:"EDITOR" default:"nano"`

	// Jira integration. Host, user and token are all required for the
	// upload/active commands; with JIRA_API_AUTH=bearer the token is sent
	// as a personal access token instead of basic auth credentials.
	JiraHost  string `envconfig:"JIRA_API_HOST"`
	JiraUser  string `envconfig:"JIRA_API_USER"`
	JiraToken string `envconfig:"JIRA_API_TOKEN"`
	JiraAuth  string `envconfig:"JIRA_API_AUTH" default:"basic"`
}

// Load reads the configuration from the environment and fills in defaults.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("reading environment configuration: %w", err)
	}

	if cfg.File == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("cannot determine home directory: %w", err)
		}
		cfg.File = filepath.Join(home, "time-tracker.csv")
	}
	if len(cfg.Separator) != 1 {
		return Config{}, fmt.Errorf("TT_SEPARATOR must be a single character, got %q", cfg.Separator)
	}
	if cfg.ReportDays < 1 {
		cfg.ReportDays = 7
	}
	if cfg.ListEntries < 1 {
		cfg.ListEntries = 20
	}

	return cfg, nil
}
