package config_test

import (
	"os"
	"strings"
	"testing"

	"github.com/Tiliavir/tt/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TT_FILE", "TT_SEPARATOR", "TT_REPORT_DAYS", "TT_LIST_ENTRIES",
		"TT_BREAK_ALLOWANCE", "TT_LOG_LEVEL",
		"JIRA_API_HOST", "JIRA_API_USER", "JIRA_API_TOKEN", "JIRA_API_AUTH",
	} {
		// Setenv registers the restore; defaults only apply to unset vars.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !strings.HasSuffix(cfg.File, "time-tracker.csv") {
		t.Errorf("File = %q, want default time-tracker.csv in home", cfg.File)
	}
	if cfg.Separator != "," {
		t.Errorf("Separator = %q, want ,", cfg.Separator)
	}
	if cfg.ReportDays != 7 {
		t.Errorf("ReportDays = %d, want 7", cfg.ReportDays)
	}
	if cfg.ListEntries != 20 {
		t.Errorf("ListEntries = %d, want 20", cfg.ListEntries)
	}
	if cfg.BreakAllowance != 0 {
		t.Errorf("BreakAllowance = %v, want 0", cfg.BreakAllowance)
	}
	if cfg.JiraAuth != "basic" {
		t.Errorf("JiraAuth = %q, want basic", cfg.JiraAuth)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TT_FILE", "/tmp/custom.csv")
	t.Setenv("TT_REPORT_DAYS", "14")
	t.Setenv("TT_LIST_ENTRIES", "50")
	t.Setenv("TT_BREAK_ALLOWANCE", "0.5")
	t.Setenv("JIRA_API_HOST", "https://example.atlassian.net")
	t.Setenv("JIRA_API_USER", "user@example.com")
	t.Setenv("JIRA_API_TOKEN", "secret")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.File != "/tmp/custom.csv" {
		t.Errorf("File = %q", cfg.File)
	}
	if cfg.ReportDays != 14 || cfg.ListEntries != 50 {
		t.Errorf("window sizes = %d/%d, want 14/50", cfg.ReportDays, cfg.ListEntries)
	}
	if cfg.BreakAllowance != 0.5 {
		t.Errorf("BreakAllowance = %v, want 0.5", cfg.BreakAllowance)
	}
	if cfg.JiraHost == "" || cfg.JiraUser == "" || cfg.JiraToken == "" {
		t.Errorf("Jira settings not picked up: %+v", cfg)
	}
}

func TestLoadRejectsMultiCharSeparator(t *testing.T) {
	clearEnv(t)
	t.Setenv("TT_SEPARATOR", ";;")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for multi-character separator")
	}
}

func TestLoadRejectsBadNumbers(t *testing.T) {
	clearEnv(t)
	t.Setenv("TT_REPORT_DAYS", "not-a-number")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for non-numeric TT_REPORT_DAYS")
	}
}
