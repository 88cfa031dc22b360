package errors

import (
	"testing"

	"github.com/cockroachdb/errors"
)

func TestGatewayError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *GatewayError
		expected string
	}{
		{
			name: "with status code",
			err: &GatewayError{
				Operation:  "ListModels",
				StatusCode: 502,
				Message:    "bad gateway",
			},
			expected: "gateway ListModels failed (HTTP 502): bad gateway",
		},
		{
			name: "without status code",
			err: &GatewayError{
				Operation: "ListModels",
				Message:   "connection refused",
			},
			expected: "gateway ListModels failed: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.err.Error()
			if result != tt.expected {
				t.Errorf("Error() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestGitHubError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *GitHubError
		expected string
	}{
		{
			name: "with status code",
			err: &GitHubError{
				Operation:  "CreateIssue",
				StatusCode: 422,
				Message:    "label does not exist",
			},
			expected: "github CreateIssue failed (HTTP 422): label does not exist",
		},
		{
			name: "without status code",
			err: &GitHubError{
				Operation: "ListIssues",
				Message:   "gh CLI not found",
			},
			expected: "github ListIssues failed: gh CLI not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.err.Error()
			if result != tt.expected {
				t.Errorf("Error() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestJiraError_Error(t *testing.T) {
	err := &JiraError{Operation: "ValidateKey", Ticket: "PROJ-42", Message: "unknown project"}
	want := "jira ValidateKey for PROJ-42 failed: unknown project"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	err = &JiraError{Operation: "ValidateKey", Message: "empty key"}
	want = "jira ValidateKey failed: empty key"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("underlying cause")

	wrapped := NewGatewayErrorWithCause("ListModels", "request failed", cause)
	if !errors.Is(wrapped, cause) {
		t.Error("expected errors.Is to find the cause through GatewayError")
	}

	ghWrapped := NewGitHubErrorWithCause("CreateIssue", "request failed", cause)
	if !errors.Is(ghWrapped, cause) {
		t.Error("expected errors.Is to find the cause through GitHubError")
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain error", errors.New("boom"), false},
		{"github 503", NewGitHubErrorWithStatus("ListIssues", 503, "unavailable"), true},
		{"github 404", NewGitHubErrorWithStatus("GetIssue", 404, "not found"), false},
		{"gateway 429", NewGatewayErrorWithStatus("ListModels", 429, "rate limited"), true},
		{"gateway 401", NewGatewayErrorWithStatus("ListModels", 401, "bad key"), false},
		{"wrapped retryable", Wrap(NewGatewayErrorWithStatus("ListModels", 500, "oops"), "outer"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTypeCheckers(t *testing.T) {
	cfgErr := NewConfigError("gateway.api_key", "not set")
	if !IsConfigError(cfgErr) {
		t.Error("IsConfigError() = false for ConfigError")
	}
	if IsConfigError(errors.New("plain")) {
		t.Error("IsConfigError() = true for plain error")
	}
	if !IsConfigError(Wrap(cfgErr, "outer")) {
		t.Error("IsConfigError() = false for wrapped ConfigError")
	}

	if !IsGatewayError(NewGatewayError("ListModels", "boom")) {
		t.Error("IsGatewayError() = false for GatewayError")
	}
	if !IsGitHubError(NewGitHubError("CreateIssue", "boom")) {
		t.Error("IsGitHubError() = false for GitHubError")
	}
	if !IsJiraError(NewJiraError("ValidateKey", "boom")) {
		t.Error("IsJiraError() = false for JiraError")
	}
	if !IsHistoryError(NewHistoryError("Record", "boom")) {
		t.Error("IsHistoryError() = false for HistoryError")
	}
}
