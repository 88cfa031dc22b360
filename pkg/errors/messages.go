package errors

import (
	"fmt"
	"strings"
)

// FormatUserError returns a user-friendly error message with actionable guidance.
// It examines the error chain and provides context-appropriate help text.
func FormatUserError(err error) string {
	if err == nil {
		return ""
	}

	var configErr *ConfigError
	if As(err, &configErr) {
		return formatConfigError(configErr)
	}

	var ghErr *GitHubError
	if As(err, &ghErr) {
		return formatGitHubError(ghErr)
	}

	var gwErr *GatewayError
	if As(err, &gwErr) {
		return formatGatewayError(gwErr)
	}

	var jiraErr *JiraError
	if As(err, &jiraErr) {
		return formatJiraError(jiraErr)
	}

	// Default: return the error message as-is
	return err.Error()
}

// formatConfigError formats a ConfigError with actionable guidance.
func formatConfigError(err *ConfigError) string {
	var b strings.Builder

	if err.Field != "" {
		fmt.Fprintf(&b, "Configuration error in '%s': %s\n", err.Field, err.Message)
	} else {
		fmt.Fprintf(&b, "Configuration error: %s\n", err.Message)
	}

	b.WriteString("\nTo fix this:\n")
	b.WriteString("  • Check your config file: ~/.config/forge/config.toml\n")
	b.WriteString("  • Run 'forge config init' to write a fresh config\n")

	if err.Cause != nil {
		fmt.Fprintf(&b, "\nUnderlying error: %v", err.Cause)
	}

	return b.String()
}

// formatGitHubError formats a GitHubError with actionable guidance based on status code.
func formatGitHubError(err *GitHubError) string {
	var b strings.Builder

	fmt.Fprintf(&b, "GitHub error during %s: %s\n", err.Operation, err.Message)

	switch err.StatusCode {
	case 401:
		b.WriteString("\nAuthentication failed. To fix this:\n")
		b.WriteString("  • Run 'forge auth login' to configure GitHub authentication\n")
		b.WriteString("  • Or set the FORGE_GITHUB_TOKEN environment variable\n")
		b.WriteString("  • Ensure your token has the required scopes (repo, read:org)\n")

	case 403:
		b.WriteString("\nPermission denied. To fix this:\n")
		b.WriteString("  • Ensure you have write access to this repository\n")
		b.WriteString("  • Check that your token has the 'repo' scope\n")
		b.WriteString("  • If using SSO, ensure the token is authorized for your organization\n")

	case 404:
		b.WriteString("\nResource not found. To fix this:\n")
		b.WriteString("  • Verify the repository name and owner are correct\n")
		b.WriteString("  • Ensure the issue or PR exists\n")
		b.WriteString("  • Check that you have access to the repository\n")

	case 422:
		b.WriteString("\nValidation failed. To fix this:\n")
		b.WriteString("  • Check that all required fields are provided\n")
		b.WriteString("  • Ensure labels and assignees exist on the repository\n")
		b.WriteString("  • Review the error message for specific field issues\n")

	case 429:
		b.WriteString("\nRate limit exceeded. To fix this:\n")
		b.WriteString("  • Wait a few minutes before retrying\n")
		b.WriteString("  • Consider using a GitHub App for higher rate limits\n")

	case 500, 502, 503, 504:
		b.WriteString("\nGitHub server error. To fix this:\n")
		b.WriteString("  • Wait a few moments and try again\n")
		b.WriteString("  • Check GitHub Status: https://www.githubstatus.com\n")
	}

	if err.Retryable {
		b.WriteString("\nThis error may be temporary. The operation will be retried automatically.\n")
	}

	if err.Cause != nil {
		fmt.Fprintf(&b, "\nUnderlying error: %v", err.Cause)
	}

	return b.String()
}

// formatGatewayError formats a GatewayError with actionable guidance based on status code.
func formatGatewayError(err *GatewayError) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Gateway error during %s: %s\n", err.Operation, err.Message)

	switch err.StatusCode {
	case 401:
		b.WriteString("\nAuthentication failed. To fix this:\n")
		b.WriteString("  • Set the GATEWAY_API_KEY environment variable\n")
		b.WriteString("  • Verify your API key is valid and not expired\n")

	case 404:
		b.WriteString("\nEndpoint not found. To fix this:\n")
		b.WriteString("  • Check gateway.base_url in your config\n")
		b.WriteString("  • The gateway must expose an OpenAI-compatible /v1/models endpoint\n")

	case 429:
		b.WriteString("\nGateway rate limit exceeded. To fix this:\n")
		b.WriteString("  • Wait a few minutes before retrying\n")
		b.WriteString("  • Reduce request frequency\n")

	case 500, 502, 503, 504:
		b.WriteString("\nGateway server error. To fix this:\n")
		b.WriteString("  • Wait a few moments and try again\n")
		b.WriteString("  • Check the gateway's status page\n")
	}

	if err.Retryable {
		b.WriteString("\nThis error may be temporary. The operation will be retried automatically.\n")
	}

	if err.Cause != nil {
		fmt.Fprintf(&b, "\nUnderlying error: %v", err.Cause)
	}

	return b.String()
}

// formatJiraError formats a JiraError with actionable guidance.
func formatJiraError(err *JiraError) string {
	var b strings.Builder

	if err.Ticket != "" {
		fmt.Fprintf(&b, "Jira error during %s for ticket %s: %s\n", err.Operation, err.Ticket, err.Message)
	} else {
		fmt.Fprintf(&b, "Jira error during %s: %s\n", err.Operation, err.Message)
	}

	b.WriteString("\nTo fix this:\n")
	b.WriteString("  • Ticket keys look like PROJ-123 (project key, dash, number)\n")
	b.WriteString("  • Check jira.allowed_projects in your config for allowed projects\n")

	if err.Cause != nil {
		fmt.Fprintf(&b, "\nUnderlying error: %v", err.Cause)
	}

	return b.String()
}
