package bootstrap

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPreParseGlobalFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantConfig  string
		wantVerbose bool
	}{
		{
			name: "no flags",
			args: []string{"forge", "lint"},
		},
		{
			name:       "config long flag",
			args:       []string{"forge", "--config", "/tmp/custom.toml", "lint"},
			wantConfig: "/tmp/custom.toml",
		},
		{
			name:       "config equals form",
			args:       []string{"forge", "--config=/tmp/custom.toml"},
			wantConfig: "/tmp/custom.toml",
		},
		{
			name:       "short flag glued value",
			args:       []string{"forge", "-C/tmp/custom.toml"},
			wantConfig: "/tmp/custom.toml",
		},
		{
			name:        "verbose",
			args:        []string{"forge", "-v", "lint"},
			wantVerbose: true,
		},
		{
			name:        "both flags",
			args:        []string{"forge", "--verbose", "--config", "c.toml", "lint"},
			wantConfig:  "c.toml",
			wantVerbose: true,
		},
		{
			name: "flags after subcommand ignored",
			args: []string{"forge", "lint", "--verbose"},
		},
		{
			name: "flags after double dash ignored",
			args: []string{"forge", "--", "--verbose"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfgFile, verbose := PreParseGlobalFlags(tt.args)
			if cfgFile != tt.wantConfig {
				t.Errorf("config = %q, want %q", cfgFile, tt.wantConfig)
			}
			if verbose != tt.wantVerbose {
				t.Errorf("verbose = %v, want %v", verbose, tt.wantVerbose)
			}
		})
	}
}

func TestReadYAMLOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, RepoConfigFile)

	content := "github:\n  self_assign: true\nlint:\n  root: ./src\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	settings, err := readYAMLOverlay(path)
	if err != nil {
		t.Fatalf("readYAMLOverlay error: %v", err)
	}

	github, ok := settings["github"].(map[string]any)
	if !ok {
		t.Fatalf("github section missing or wrong type: %T", settings["github"])
	}
	if github["self_assign"] != true {
		t.Errorf("self_assign = %v, want true", github["self_assign"])
	}
}

func TestReadYAMLOverlay_Missing(t *testing.T) {
	_, err := readYAMLOverlay(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing overlay file")
	}
}

func TestReadYAMLOverlay_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), RepoConfigFile)
	if err := os.WriteFile(path, []byte("{not yaml: ["), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := readYAMLOverlay(path); err == nil {
		t.Error("expected error for malformed overlay file")
	}
}

func TestInitConfig_Defaults(t *testing.T) {
	t.Setenv("GO_TEST", "true")
	Reset()
	t.Cleanup(Reset)

	cfg, verbose, err := InitConfig("", false)
	if err != nil {
		t.Fatalf("InitConfig error: %v", err)
	}
	if verbose {
		t.Error("verbose should be false")
	}
	if cfg.GitHub.AuthMethod != "gh_cli" {
		t.Errorf("auth_method = %q, want gh_cli", cfg.GitHub.AuthMethod)
	}
}
