// Package config loads forge configuration from file and environment.
package config

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// Config represents the application configuration.
type Config struct {
	GitHub  GitHubConfig  `mapstructure:"github"`
	Jira    JiraConfig    `mapstructure:"jira"`
	Gateway GatewayConfig `mapstructure:"gateway"`
	Lint    LintConfig    `mapstructure:"lint"`
	Tests   TestsConfig   `mapstructure:"tests"`
	History HistoryConfig `mapstructure:"history"`
}

// GitHubConfig holds GitHub integration configuration.
type GitHubConfig struct {
	AuthMethod    string   `mapstructure:"auth_method"`    // "token", "oauth", "gh_cli"
	ClientID      string   `mapstructure:"client_id"`      // OAuth app client ID (for device flow)
	Token         string   `mapstructure:"token"`          // For token auth (FORGE_GITHUB_TOKEN env var takes precedence)
	DefaultLabels []string `mapstructure:"default_labels"` // Labels applied to new issues
	SelfAssign    bool     `mapstructure:"self_assign"`    // Assign new issues to the authenticated user
}

// JiraConfig holds Jira-style ticket validation configuration.
type JiraConfig struct {
	Enabled         bool     `mapstructure:"enabled"`
	BaseURL         string   `mapstructure:"base_url"`         // e.g., "https://your-domain.atlassian.net"
	Token           string   `mapstructure:"token"`            // API token (JIRA_TOKEN env var takes precedence)
	AllowedProjects []string `mapstructure:"allowed_projects"` // Empty means any project key is accepted
}

// GatewayConfig holds LLM gateway configuration.
type GatewayConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"` // GATEWAY_API_KEY env var takes precedence
}

// LintConfig holds lint report configuration.
type LintConfig struct {
	Root string `mapstructure:"root"` // Base directory for path relativization
}

// TestsConfig holds test report configuration.
type TestsConfig struct {
	MaxTestName  int `mapstructure:"max_test_name"`  // Column width for test identifiers
	MaxErrorText int `mapstructure:"max_error_text"` // Column width for error details
}

// HistoryConfig holds run history configuration.
type HistoryConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	DatabasePath string `mapstructure:"database_path"`
}

// SecurityWarning represents a configuration security issue.
type SecurityWarning struct {
	Field   string
	Message string
}

// Load loads the configuration from file and environment variables.
func Load() (*Config, error) {
	config := &Config{}

	setDefaults()

	if err := viper.Unmarshal(config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if err := expandPaths(config); err != nil {
		return nil, errors.Wrap(err, "failed to expand paths")
	}

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return config, nil
}

// ValidAuthMethods is the list of supported GitHub auth methods.
var ValidAuthMethods = []string{"token", "oauth", "gh_cli"}

// ValidateAuthMethod validates that a GitHub auth method is supported.
func ValidateAuthMethod(method string) error {
	if method == "" {
		return nil // Empty is allowed, will use default
	}
	for _, valid := range ValidAuthMethods {
		if method == valid {
			return nil
		}
	}
	return errors.Newf("invalid auth method %q: must be one of: token, oauth, gh_cli", method)
}

// Validate validates the configuration and returns any validation errors.
func (c *Config) Validate() error {
	if err := ValidateAuthMethod(c.GitHub.AuthMethod); err != nil {
		return errors.Wrap(err, "github.auth_method")
	}
	if c.Tests.MaxTestName < 0 {
		return errors.New("tests.max_test_name must not be negative")
	}
	if c.Tests.MaxErrorText < 0 {
		return errors.New("tests.max_error_text must not be negative")
	}
	return nil
}

// CheckSecurityWarnings returns warnings for insecure configuration practices.
// Call this when loading config to warn users about tokens stored in config files.
func CheckSecurityWarnings(config *Config) []SecurityWarning {
	var warnings []SecurityWarning

	if config.GitHub.Token != "" && os.Getenv("FORGE_GITHUB_TOKEN") == "" && os.Getenv("GITHUB_TOKEN") == "" {
		warnings = append(warnings, SecurityWarning{
			Field:   "github.token",
			Message: "GitHub token is set in config file. For security, use FORGE_GITHUB_TOKEN environment variable or 'gh auth login' instead.",
		})
	}

	if config.Jira.Token != "" && os.Getenv("FORGE_JIRA_TOKEN") == "" && os.Getenv("JIRA_TOKEN") == "" {
		warnings = append(warnings, SecurityWarning{
			Field:   "jira.token",
			Message: "Jira token is set in config file. For security, use FORGE_JIRA_TOKEN or JIRA_TOKEN environment variable instead.",
		})
	}

	if config.Gateway.APIKey != "" && os.Getenv("FORGE_GATEWAY_API_KEY") == "" && os.Getenv("GATEWAY_API_KEY") == "" {
		warnings = append(warnings, SecurityWarning{
			Field:   "gateway.api_key",
			Message: "Gateway API key is set in config file. For security, use GATEWAY_API_KEY or FORGE_GATEWAY_API_KEY environment variable instead.",
		})
	}

	return warnings
}

// setDefaults sets default configuration values.
func setDefaults() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fall back to current directory if home dir can't be determined
		homeDir = "."
	}

	// GitHub defaults
	viper.SetDefault("github.auth_method", "gh_cli") // Prefer gh CLI auth
	viper.SetDefault("github.client_id", "")         // OAuth app client ID for device flow
	viper.SetDefault("github.token", "")
	viper.SetDefault("github.default_labels", []string{})
	viper.SetDefault("github.self_assign", false)

	// Jira defaults
	viper.SetDefault("jira.enabled", true)
	viper.SetDefault("jira.base_url", "")
	viper.SetDefault("jira.token", "")
	viper.SetDefault("jira.allowed_projects", []string{})

	// Gateway defaults
	viper.SetDefault("gateway.base_url", "")
	viper.SetDefault("gateway.api_key", "")

	// Lint defaults (empty root means current directory)
	viper.SetDefault("lint.root", "")

	// Test report defaults
	viper.SetDefault("tests.max_test_name", 60)
	viper.SetDefault("tests.max_error_text", 150)

	// History defaults
	viper.SetDefault("history.enabled", true)
	viper.SetDefault("history.database_path", filepath.Join(homeDir, ".local", "share", "forge", "history.db"))
}

// expandPaths expands ~ in paths.
func expandPaths(config *Config) error {
	var err error

	config.History.DatabasePath, err = expandPath(config.History.DatabasePath)
	if err != nil {
		return err
	}

	config.Lint.Root, err = expandPath(config.Lint.Root)
	if err != nil {
		return err
	}

	return nil
}

// expandPath expands ~ to home directory.
func expandPath(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, path[1:]), nil
}
