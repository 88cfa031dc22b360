package config

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	toml "github.com/pelletier/go-toml/v2"
)

// DefaultConfigPath returns the standard location of the config file.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(home, ".config", "forge", "config.toml"), nil
}

// defaultDocument is the TOML document written by WriteDefault. Secrets are
// deliberately left empty so users reach for environment variables.
func defaultDocument() map[string]any {
	return map[string]any{
		"github": map[string]any{
			"auth_method":    "gh_cli",
			"client_id":      "",
			"default_labels": []string{},
			"self_assign":    false,
		},
		"jira": map[string]any{
			"enabled":          true,
			"base_url":         "",
			"allowed_projects": []string{},
		},
		"gateway": map[string]any{
			"base_url": "",
		},
		"lint": map[string]any{
			"root": "",
		},
		"tests": map[string]any{
			"max_test_name":  60,
			"max_error_text": 150,
		},
		"history": map[string]any{
			"enabled": true,
		},
	}
}

// WriteDefault writes a starter config file to path. Refuses to overwrite
// an existing file unless force is set.
func WriteDefault(path string, force bool) error {
	if path == "" {
		var err error
		path, err = DefaultConfigPath()
		if err != nil {
			return err
		}
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.Newf("config file already exists at %s (use --force to overwrite)", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	data, err := toml.Marshal(defaultDocument())
	if err != nil {
		return errors.Wrap(err, "failed to render config")
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	return nil
}
