package github

import (
	"testing"

	"github.com/forgeworks/forge/pkg/config"
)

func TestNewClient_NilConfig(t *testing.T) {
	_, err := NewClient(nil, false)
	if err == nil {
		t.Error("NewClient(nil, false) should return error")
	}
}

func TestNewClient_UnknownAuthMethod(t *testing.T) {
	cfg := &config.GitHubConfig{
		AuthMethod: "unknown",
	}
	_, err := NewClient(cfg, false)
	if err == nil {
		t.Error("NewClient with unknown auth should return error")
	}
}

func TestNewClient_TokenAuthMissingToken(t *testing.T) {
	cfg := &config.GitHubConfig{
		AuthMethod: "token",
		Token:      "", // No token
	}
	// Clear env vars if set
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("FORGE_GITHUB_TOKEN", "")

	_, err := NewClient(cfg, false)
	if err == nil {
		t.Error("NewClient with token auth but no token should return error")
	}
}

func TestExtractIssueNumber(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    int
		wantErr bool
	}{
		{
			name: "valid url",
			url:  "https://github.com/owner/repo/issues/123",
			want: 123,
		},
		{
			name:    "invalid - not a number",
			url:     "https://github.com/owner/repo/issues/abc",
			wantErr: true,
		},
		{
			name:    "invalid - too short",
			url:     "123",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractIssueNumber(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("extractIssueNumber() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("extractIssueNumber() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsRetryableGHError(t *testing.T) {
	tests := []struct {
		name   string
		errMsg string
		want   bool
	}{
		{"rate limit", "API rate limit exceeded", true},
		{"timeout", "request timeout", true},
		{"connection refused", "connection refused", true},
		{"502", "HTTP 502 Bad Gateway", true},
		{"503", "HTTP 503 Service Unavailable", true},
		{"not found", "resource not found", false},
		{"unauthorized", "unauthorized", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isRetryableGHError(tt.errMsg); got != tt.want {
				t.Errorf("isRetryableGHError(%q) = %v, want %v", tt.errMsg, got, tt.want)
			}
		})
	}
}

func TestParseGitHubURL(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantOwner string
		wantRepo  string
		wantErr   bool
	}{
		{
			name:      "https with .git",
			url:       "https://github.com/forgeworks/forge.git",
			wantOwner: "forgeworks",
			wantRepo:  "forge",
		},
		{
			name:      "https without .git",
			url:       "https://github.com/forgeworks/forge",
			wantOwner: "forgeworks",
			wantRepo:  "forge",
		},
		{
			name:      "ssh format",
			url:       "git@github.com:forgeworks/forge.git",
			wantOwner: "forgeworks",
			wantRepo:  "forge",
		},
		{
			name:    "invalid ssh",
			url:     "git@github.com",
			wantErr: true,
		},
		{
			name:    "not a repo url",
			url:     "https://github.com",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, err := parseGitHubURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseGitHubURL() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if owner != tt.wantOwner || repo != tt.wantRepo {
				t.Errorf("parseGitHubURL() = (%q, %q), want (%q, %q)", owner, repo, tt.wantOwner, tt.wantRepo)
			}
		})
	}
}

func TestCreateIssue_EmptyTitle(t *testing.T) {
	// Skip if gh CLI is not available
	client, err := NewCLIClient(false)
	if err != nil {
		t.Skip("gh CLI not available")
	}

	_, err = client.CreateIssue(t.Context(), CreateIssueOptions{
		Title: "", // Empty title should fail
	})
	if err == nil {
		t.Error("CreateIssue with empty title should return error")
	}
}

func TestNewAPIClient_EmptyToken(t *testing.T) {
	_, err := NewAPIClient("", false)
	if err == nil {
		t.Error("NewAPIClient with empty token should return error")
	}
}
