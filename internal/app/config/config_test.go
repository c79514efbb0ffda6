package config_test

import (
	"errors"
	"strings"
	"testing"

	"prmetrics/internal/app/config"
	"prmetrics/internal/domain"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("API_METRICS_KEY", "tok")
	t.Setenv("REPO_OWNER", "acme")
	t.Setenv("REPO_NAME", "widgets")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("TEAMS_FILE", "")
	t.Setenv("OUTPUT_DIR", "")
	t.Setenv("GITHUB_API_URL", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Token != "tok" || cfg.RepoOwner != "acme" || cfg.RepoName != "widgets" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.TeamsFile != "teams.json" || cfg.OutputDir != "output" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.APIBaseURL != "" {
		t.Fatalf("APIBaseURL should default empty, got %q", cfg.APIBaseURL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("TEAMS_FILE", "/etc/teams.json")
	t.Setenv("OUTPUT_DIR", "/tmp/reports")
	t.Setenv("GITHUB_API_URL", "https://ghe.example.com/api/v3")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TeamsFile != "/etc/teams.json" || cfg.OutputDir != "/tmp/reports" {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
	if cfg.APIBaseURL != "https://ghe.example.com/api/v3" {
		t.Fatalf("unexpected API base URL: %q", cfg.APIBaseURL)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("API_METRICS_KEY", "")
	t.Setenv("REPO_OWNER", "")
	t.Setenv("REPO_NAME", "widgets")

	_, err := config.Load()
	var de *domain.DomainError
	if err == nil || !errors.As(err, &de) || de.Code != domain.ErrorCodeConfiguration {
		t.Fatalf("expected CONFIGURATION_ERROR, got %v", err)
	}
	if !strings.Contains(de.Message, "API_METRICS_KEY") || !strings.Contains(de.Message, "REPO_OWNER") {
		t.Fatalf("error must name the missing variables, got %q", de.Message)
	}
}
