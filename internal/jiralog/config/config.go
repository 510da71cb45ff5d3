// Package config loads Jira credentials from the environment and optional
// run settings from a YAML options file.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	"jiralog/internal/jiralog/errors"
	"jiralog/internal/jiralog/validate"
)

// Config holds the credentials needed to reach a Jira Cloud site.
type Config struct {
	Email    string
	APIToken string
	Domain   string
	CloudID  string
}

// Load reads credentials from the environment, after loading a .env file
// from the working directory when present. The short variable names are
// accepted as fallbacks for the JIRA_* ones. Email, API token and domain
// are mandatory, the cloud ID is optional. The returned domain is
// normalized (scheme and trailing slashes stripped).
func Load() (*Config, error) {
	// A missing .env is fine, credentials may come from the environment
	_ = godotenv.Load()

	cfg := &Config{
		Email:    envAlt("JIRA_EMAIL", "EMAIL"),
		APIToken: envAlt("JIRA_API_TOKEN", "API_TOKEN"),
		Domain:   envAlt("JIRA_DOMAIN", "DOMAIN"),
		CloudID:  envAlt("JIRA_CLOUD_ID", "CLOUD_ID"),
	}

	var missing []string
	if cfg.Email == "" {
		missing = append(missing, "JIRA_EMAIL")
	}
	if cfg.APIToken == "" {
		missing = append(missing, "JIRA_API_TOKEN")
	}
	if cfg.Domain == "" {
		missing = append(missing, "JIRA_DOMAIN")
	}
	if len(missing) > 0 {
		return nil, errors.Wrapf(errors.ErrMissingConfig, "missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if !validate.Email(cfg.Email) {
		return nil, errors.Wrapf(errors.ErrInvalidEmail, "%q", cfg.Email)
	}

	domain, err := validate.NormalizeDomain(cfg.Domain)
	if err != nil {
		return nil, err
	}
	cfg.Domain = domain

	return cfg, nil
}

// envAlt returns the trimmed value of key, falling back to alt when key is
// unset or blank.
func envAlt(key, alt string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return strings.TrimSpace(os.Getenv(alt))
}
