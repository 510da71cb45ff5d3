package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"jiralog/internal/jiralog/errors"
)

// setEnv pins all credential variables so ambient environment and .env files
// cannot leak into a test.
func setEnv(t *testing.T, vars map[string]string) {
	t.Helper()
	for _, key := range []string{
		"JIRA_EMAIL", "JIRA_API_TOKEN", "JIRA_DOMAIN", "JIRA_CLOUD_ID",
		"EMAIL", "API_TOKEN", "DOMAIN", "CLOUD_ID",
	} {
		t.Setenv(key, vars[key])
	}
}

func TestLoad(t *testing.T) {
	setEnv(t, map[string]string{
		"JIRA_EMAIL":     " dev@example.com ",
		"JIRA_API_TOKEN": "secret-token",
		"JIRA_DOMAIN":    "https://mycompany.atlassian.net/",
		"JIRA_CLOUD_ID":  "abc-123",
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Email != "dev@example.com" {
		t.Errorf("Email = %q, want trimmed address", cfg.Email)
	}
	if cfg.APIToken != "secret-token" {
		t.Errorf("APIToken = %q", cfg.APIToken)
	}
	if cfg.Domain != "mycompany.atlassian.net" {
		t.Errorf("Domain = %q, want normalized domain", cfg.Domain)
	}
	if cfg.CloudID != "abc-123" {
		t.Errorf("CloudID = %q", cfg.CloudID)
	}
}

func TestLoadFallbackNames(t *testing.T) {
	setEnv(t, map[string]string{
		"EMAIL":     "dev@example.com",
		"API_TOKEN": "secret-token",
		"DOMAIN":    "mycompany.atlassian.net",
		"CLOUD_ID":  "abc-123",
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Email != "dev@example.com" || cfg.APIToken != "secret-token" {
		t.Errorf("fallback variables not picked up: %+v", cfg)
	}
}

func TestLoadPrimaryNameWins(t *testing.T) {
	setEnv(t, map[string]string{
		"JIRA_EMAIL":     "primary@example.com",
		"EMAIL":          "fallback@example.com",
		"JIRA_API_TOKEN": "secret-token",
		"JIRA_DOMAIN":    "mycompany.atlassian.net",
		"JIRA_CLOUD_ID":  "abc-123",
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Email != "primary@example.com" {
		t.Errorf("Email = %q, want primary variable to win", cfg.Email)
	}
}

func TestLoadMissingAll(t *testing.T) {
	setEnv(t, nil)

	_, err := Load()
	if !errors.Is(err, errors.ErrMissingConfig) {
		t.Fatalf("Load() error = %v, want ErrMissingConfig", err)
	}
	for _, name := range []string{"JIRA_EMAIL", "JIRA_API_TOKEN", "JIRA_DOMAIN"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error should name %s, got: %v", name, err)
		}
	}
}

func TestLoadMissingSome(t *testing.T) {
	setEnv(t, map[string]string{
		"JIRA_EMAIL":  "dev@example.com",
		"JIRA_DOMAIN": "mycompany.atlassian.net",
	})

	_, err := Load()
	if !errors.Is(err, errors.ErrMissingConfig) {
		t.Fatalf("Load() error = %v, want ErrMissingConfig", err)
	}
	if !strings.Contains(err.Error(), "JIRA_API_TOKEN") {
		t.Errorf("error should name the missing variable, got: %v", err)
	}
	if strings.Contains(err.Error(), "JIRA_EMAIL") {
		t.Errorf("error should not name variables that are set, got: %v", err)
	}
}

func TestLoadCloudIDOptional(t *testing.T) {
	setEnv(t, map[string]string{
		"JIRA_EMAIL":     "dev@example.com",
		"JIRA_API_TOKEN": "secret-token",
		"JIRA_DOMAIN":    "mycompany.atlassian.net",
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.CloudID != "" {
		t.Errorf("CloudID = %q, want empty", cfg.CloudID)
	}
}

func TestLoadInvalidEmail(t *testing.T) {
	setEnv(t, map[string]string{
		"JIRA_EMAIL":     "not-an-email",
		"JIRA_API_TOKEN": "secret-token",
		"JIRA_DOMAIN":    "mycompany.atlassian.net",
		"JIRA_CLOUD_ID":  "abc-123",
	})

	if _, err := Load(); !errors.Is(err, errors.ErrInvalidEmail) {
		t.Fatalf("Load() error = %v, want ErrInvalidEmail", err)
	}
}

func TestLoadInvalidDomain(t *testing.T) {
	setEnv(t, map[string]string{
		"JIRA_EMAIL":     "dev@example.com",
		"JIRA_API_TOKEN": "secret-token",
		"JIRA_DOMAIN":    "localhost",
		"JIRA_CLOUD_ID":  "abc-123",
	})

	if _, err := Load(); !errors.Is(err, errors.ErrInvalidDomain) {
		t.Fatalf("Load() error = %v, want ErrInvalidDomain", err)
	}
}

func TestLoadDotEnvFile(t *testing.T) {
	setEnv(t, nil)
	for _, key := range []string{"JIRA_EMAIL", "JIRA_API_TOKEN", "JIRA_DOMAIN", "JIRA_CLOUD_ID"} {
		_ = os.Unsetenv(key)
	}

	tmpDir := t.TempDir()
	env := "JIRA_EMAIL=dev@example.com\n" +
		"JIRA_API_TOKEN=secret-token\n" +
		"JIRA_DOMAIN=mycompany.atlassian.net\n" +
		"JIRA_CLOUD_ID=abc-123\n"
	if err := os.WriteFile(filepath.Join(tmpDir, ".env"), []byte(env), 0600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	oldWd, _ := os.Getwd()
	defer func() { _ = os.Chdir(oldWd) }()
	_ = os.Chdir(tmpDir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Email != "dev@example.com" || cfg.Domain != "mycompany.atlassian.net" {
		t.Errorf("credentials not loaded from .env: %+v", cfg)
	}
}
