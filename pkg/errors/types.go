// Package errors provides typed errors for the forge project.
//
// This package defines domain-specific error types that provide structured
// error information for different subsystems (config, GitHub, Jira, gateway).
// All error types implement the standard error interface and support
// errors.Is() and errors.As() from the standard library and cockroachdb/errors.
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ConfigError represents configuration-related errors.
type ConfigError struct {
	Field   string // Which config field has the issue
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error in %s: %s", e.Field, e.Message)
	}
	return "config error: " + e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// NewConfigError creates a new ConfigError.
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{Field: field, Message: message}
}

// NewConfigErrorWithCause creates a new ConfigError with an underlying cause.
func NewConfigErrorWithCause(field, message string, cause error) *ConfigError {
	return &ConfigError{Field: field, Message: message, Cause: cause}
}

// GitHubError represents GitHub API/CLI errors.
type GitHubError struct {
	Operation  string // e.g., "CreateIssue", "ListPRs"
	StatusCode int    // HTTP status code if applicable
	Message    string
	Retryable  bool
	Cause      error
}

// Error implements the error interface.
func (e *GitHubError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("github %s failed (HTTP %d): %s", e.Operation, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("github %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *GitHubError) Unwrap() error {
	return e.Cause
}

// NewGitHubError creates a new GitHubError.
func NewGitHubError(operation, message string) *GitHubError {
	return &GitHubError{Operation: operation, Message: message}
}

// NewGitHubErrorWithStatus creates a new GitHubError with HTTP status code.
func NewGitHubErrorWithStatus(operation string, statusCode int, message string) *GitHubError {
	return &GitHubError{
		Operation:  operation,
		StatusCode: statusCode,
		Message:    message,
		Retryable:  isRetryableHTTPStatus(statusCode),
	}
}

// NewGitHubErrorWithCause creates a new GitHubError with an underlying cause.
func NewGitHubErrorWithCause(operation, message string, cause error) *GitHubError {
	return &GitHubError{
		Operation: operation,
		Message:   message,
		Retryable: IsRetryable(cause),
		Cause:     cause,
	}
}

// GatewayError represents LLM gateway errors.
type GatewayError struct {
	Operation  string // e.g., "ListModels"
	StatusCode int
	Message    string
	Retryable  bool
	Cause      error
}

// Error implements the error interface.
func (e *GatewayError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("gateway %s failed (HTTP %d): %s", e.Operation, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("gateway %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *GatewayError) Unwrap() error {
	return e.Cause
}

// NewGatewayError creates a new GatewayError.
func NewGatewayError(operation, message string) *GatewayError {
	return &GatewayError{Operation: operation, Message: message}
}

// NewGatewayErrorWithStatus creates a new GatewayError with HTTP status code.
func NewGatewayErrorWithStatus(operation string, statusCode int, message string) *GatewayError {
	return &GatewayError{
		Operation:  operation,
		StatusCode: statusCode,
		Message:    message,
		Retryable:  isRetryableHTTPStatus(statusCode),
	}
}

// NewGatewayErrorWithCause creates a new GatewayError with an underlying cause.
func NewGatewayErrorWithCause(operation, message string, cause error) *GatewayError {
	return &GatewayError{
		Operation: operation,
		Message:   message,
		Retryable: IsRetryable(cause),
		Cause:     cause,
	}
}

// JiraError represents Jira validation/integration errors.
type JiraError struct {
	Operation string
	Ticket    string
	Message   string
	Cause     error
}

// Error implements the error interface.
func (e *JiraError) Error() string {
	if e.Ticket != "" {
		return fmt.Sprintf("jira %s for %s failed: %s", e.Operation, e.Ticket, e.Message)
	}
	return fmt.Sprintf("jira %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *JiraError) Unwrap() error {
	return e.Cause
}

// NewJiraError creates a new JiraError.
func NewJiraError(operation, message string) *JiraError {
	return &JiraError{Operation: operation, Message: message}
}

// NewJiraErrorWithTicket creates a new JiraError for a specific ticket.
func NewJiraErrorWithTicket(operation, ticket, message string) *JiraError {
	return &JiraError{Operation: operation, Ticket: ticket, Message: message}
}

// HistoryError represents run-history store errors.
type HistoryError struct {
	Operation string // e.g., "Record", "List"
	Message   string
	Cause     error
}

// Error implements the error interface.
func (e *HistoryError) Error() string {
	return fmt.Sprintf("history %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *HistoryError) Unwrap() error {
	return e.Cause
}

// NewHistoryError creates a new HistoryError.
func NewHistoryError(operation, message string) *HistoryError {
	return &HistoryError{Operation: operation, Message: message}
}

// NewHistoryErrorWithCause creates a new HistoryError with an underlying cause.
func NewHistoryErrorWithCause(operation, message string, cause error) *HistoryError {
	return &HistoryError{Operation: operation, Message: message, Cause: cause}
}

// IsRetryable checks if an error or any error in its chain is retryable.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var ghErr *GitHubError
	if errors.As(err, &ghErr) {
		return ghErr.Retryable
	}

	var gwErr *GatewayError
	if errors.As(err, &gwErr) {
		return gwErr.Retryable
	}

	return false
}

// IsConfigError checks if an error or any error in its chain is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsGitHubError checks if an error or any error in its chain is a GitHubError.
func IsGitHubError(err error) bool {
	var ghErr *GitHubError
	return errors.As(err, &ghErr)
}

// IsGatewayError checks if an error or any error in its chain is a GatewayError.
func IsGatewayError(err error) bool {
	var gwErr *GatewayError
	return errors.As(err, &gwErr)
}

// IsJiraError checks if an error or any error in its chain is a JiraError.
func IsJiraError(err error) bool {
	var jiraErr *JiraError
	return errors.As(err, &jiraErr)
}

// IsHistoryError checks if an error or any error in its chain is a HistoryError.
func IsHistoryError(err error) bool {
	var histErr *HistoryError
	return errors.As(err, &histErr)
}

// isRetryableHTTPStatus returns true for HTTP status codes that are typically retryable.
func isRetryableHTTPStatus(statusCode int) bool {
	switch statusCode {
	case 408, // Request Timeout
		429, // Too Many Requests
		500, // Internal Server Error
		502, // Bad Gateway
		503, // Service Unavailable
		504: // Gateway Timeout
		return true
	default:
		return false
	}
}

// Re-export commonly used functions from cockroachdb/errors for convenience.
// This allows consumers to use forgeerrors.Wrap() instead of importing two packages.
var (
	// New creates a new error with the given message.
	New = errors.New

	// Newf creates a new error with formatted message.
	Newf = errors.Newf

	// Wrap wraps an error with additional context.
	Wrap = errors.Wrap

	// Wrapf wraps an error with formatted additional context.
	Wrapf = errors.Wrapf

	// Is reports whether any error in err's chain matches target.
	Is = errors.Is

	// As finds the first error in err's chain that matches target.
	As = errors.As

	// Cause returns the root cause of an error.
	Cause = errors.Cause
)
