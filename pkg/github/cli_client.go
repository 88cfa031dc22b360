package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"strings"

	forgeerrors "github.com/forgeworks/forge/pkg/errors"
)

// CLIClient implements the Client interface using the gh CLI.
// This is the primary implementation as most users have gh CLI installed
// and it handles authentication automatically.
type CLIClient struct {
	verbose bool
	token   string // Optional token for GITHUB_TOKEN env override
	logger  *slog.Logger
}

// CLIClientOption is a functional option for configuring CLIClient.
type CLIClientOption func(*CLIClient)

// WithToken sets a token to be used via GITHUB_TOKEN environment variable.
func WithToken(token string) CLIClientOption {
	return func(c *CLIClient) {
		c.token = token
	}
}

// WithLogger sets a custom logger for the client.
func WithLogger(logger *slog.Logger) CLIClientOption {
	return func(c *CLIClient) {
		c.logger = logger
	}
}

// NewCLIClient creates a new gh CLI-based GitHub client.
func NewCLIClient(verbose bool, opts ...CLIClientOption) (*CLIClient, error) {
	c := &CLIClient{
		verbose: verbose,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	// Verify gh CLI is available
	if _, err := exec.LookPath("gh"); err != nil {
		return nil, forgeerrors.NewGitHubErrorWithCause("NewCLIClient", "gh CLI not found in PATH", err)
	}

	return c, nil
}

// IsAuthenticated checks if gh CLI is authenticated with GitHub.
func (c *CLIClient) IsAuthenticated() bool {
	cmd := exec.Command("gh", "auth", "status")
	if c.token != "" {
		cmd.Env = append(os.Environ(), "GITHUB_TOKEN="+c.token)
	}
	return cmd.Run() == nil
}

// CurrentUser returns the login of the authenticated user.
func (c *CLIClient) CurrentUser(ctx context.Context) (string, error) {
	output, err := c.runGH(ctx, "api", "user", "--jq", ".login")
	if err != nil {
		return "", forgeerrors.NewGitHubErrorWithCause("CurrentUser", "failed to get authenticated user", err)
	}
	return strings.TrimSpace(output), nil
}

// CreateIssue creates a new issue using gh issue create.
func (c *CLIClient) CreateIssue(ctx context.Context, opts CreateIssueOptions) (*IssueInfo, error) {
	if opts.Title == "" {
		return nil, forgeerrors.NewGitHubError("CreateIssue", "title is required")
	}

	// Always pass --body (even if empty) because gh requires both --title
	// and --body when running non-interactively
	args := []string{"issue", "create", "--title", opts.Title, "--body", opts.Body}
	for _, label := range opts.Labels {
		args = append(args, "--label", label)
	}
	for _, assignee := range opts.Assignees {
		args = append(args, "--assignee", assignee)
	}

	c.logDebug("creating issue", "args", args)

	output, err := c.runGH(ctx, args...)
	if err != nil {
		return nil, forgeerrors.NewGitHubErrorWithCause("CreateIssue", "failed to create issue", err)
	}

	// gh issue create outputs the issue URL on success
	issueURL := strings.TrimSpace(output)
	c.logDebug("issue created", "url", issueURL)

	number, parseErr := extractIssueNumber(issueURL)
	if parseErr != nil {
		// Return minimal info if we can't parse the URL
		c.logDebug("could not parse issue number from URL, returning minimal info", "url", issueURL, "error", parseErr)
		return &IssueInfo{URL: issueURL, Title: opts.Title}, nil
	}

	return c.GetIssue(ctx, number)
}

// GetIssue retrieves issue information by number.
func (c *CLIClient) GetIssue(ctx context.Context, number int) (*IssueInfo, error) {
	args := []string{
		"issue", "view", strconv.Itoa(number),
		"--json", strings.Join(issueJSONFields(), ","),
	}

	c.logDebug("getting issue", "number", number)

	output, err := c.runGH(ctx, args...)
	if err != nil {
		return nil, forgeerrors.NewGitHubErrorWithCause("GetIssue", fmt.Sprintf("failed to get issue #%d", number), err)
	}

	var resp ghIssueResponse
	if err := json.Unmarshal([]byte(output), &resp); err != nil {
		return nil, forgeerrors.NewGitHubErrorWithCause("GetIssue", "failed to parse issue response", err)
	}

	return resp.toIssueInfo(), nil
}

// ListIssues lists issues filtered by state, labels, and assignee.
func (c *CLIClient) ListIssues(ctx context.Context, opts ListIssuesOptions) ([]IssueInfo, error) {
	args := []string{
		"issue", "list",
		"--json", strings.Join(issueJSONFields(), ","),
	}

	if opts.State != "" {
		args = append(args, "--state", opts.State)
	}
	for _, label := range opts.Labels {
		args = append(args, "--label", label)
	}
	if opts.Assignee != "" {
		args = append(args, "--assignee", opts.Assignee)
	}
	if opts.Limit > 0 {
		args = append(args, "--limit", strconv.Itoa(opts.Limit))
	}

	c.logDebug("listing issues", "state", opts.State, "labels", opts.Labels, "assignee", opts.Assignee)

	output, err := c.runGH(ctx, args...)
	if err != nil {
		return nil, forgeerrors.NewGitHubErrorWithCause("ListIssues", "failed to list issues", err)
	}

	var responses []ghIssueResponse
	if err := json.Unmarshal([]byte(output), &responses); err != nil {
		return nil, forgeerrors.NewGitHubErrorWithCause("ListIssues", "failed to parse issue list response", err)
	}

	issues := make([]IssueInfo, 0, len(responses))
	for i := range responses {
		issues = append(issues, *responses[i].toIssueInfo())
	}

	return issues, nil
}

// ListLabels returns the names of all labels defined in the repository.
func (c *CLIClient) ListLabels(ctx context.Context) ([]string, error) {
	args := []string{"label", "list", "--json", "name"}

	c.logDebug("listing labels")

	output, err := c.runGH(ctx, args...)
	if err != nil {
		return nil, forgeerrors.NewGitHubErrorWithCause("ListLabels", "failed to list labels", err)
	}

	var responses []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal([]byte(output), &responses); err != nil {
		return nil, forgeerrors.NewGitHubErrorWithCause("ListLabels", "failed to parse label list response", err)
	}

	labels := make([]string, 0, len(responses))
	for _, r := range responses {
		labels = append(labels, r.Name)
	}

	return labels, nil
}

// GetPR retrieves pull request information by number.
func (c *CLIClient) GetPR(ctx context.Context, number int) (*PRInfo, error) {
	args := []string{
		"pr", "view", strconv.Itoa(number),
		"--json", strings.Join(prJSONFields(), ","),
	}

	c.logDebug("getting PR", "number", number)

	output, err := c.runGH(ctx, args...)
	if err != nil {
		return nil, forgeerrors.NewGitHubErrorWithCause("GetPR", fmt.Sprintf("failed to get PR #%d", number), err)
	}

	var resp ghPRResponse
	if err := json.Unmarshal([]byte(output), &resp); err != nil {
		return nil, forgeerrors.NewGitHubErrorWithCause("GetPR", "failed to parse PR response", err)
	}

	return resp.toPRInfo(), nil
}

// ListPRs lists pull requests filtered by state and optionally by author.
func (c *CLIClient) ListPRs(ctx context.Context, opts ListPRsOptions) ([]PRInfo, error) {
	args := []string{
		"pr", "list",
		"--json", strings.Join(prJSONFields(), ","),
	}

	if opts.State != "" && opts.State != "all" {
		args = append(args, "--state", opts.State)
	}
	if opts.Author != "" {
		args = append(args, "--author", opts.Author)
	}
	if opts.Limit > 0 {
		args = append(args, "--limit", strconv.Itoa(opts.Limit))
	}

	c.logDebug("listing PRs", "state", opts.State, "author", opts.Author, "limit", opts.Limit)

	output, err := c.runGH(ctx, args...)
	if err != nil {
		return nil, forgeerrors.NewGitHubErrorWithCause("ListPRs", "failed to list PRs", err)
	}

	var responses []ghPRResponse
	if err := json.Unmarshal([]byte(output), &responses); err != nil {
		return nil, forgeerrors.NewGitHubErrorWithCause("ListPRs", "failed to parse PR list response", err)
	}

	prs := make([]PRInfo, 0, len(responses))
	for i := range responses {
		prs = append(prs, *responses[i].toPRInfo())
	}

	return prs, nil
}

// GetDefaultBranch returns the repository's default branch name.
func (c *CLIClient) GetDefaultBranch(ctx context.Context) (string, error) {
	args := []string{"repo", "view", "--json", "defaultBranchRef"}

	c.logDebug("getting default branch")

	output, err := c.runGH(ctx, args...)
	if err != nil {
		return "", forgeerrors.NewGitHubErrorWithCause("GetDefaultBranch", "failed to get default branch", err)
	}

	var resp ghRepoResponse
	if err := json.Unmarshal([]byte(output), &resp); err != nil {
		return "", forgeerrors.NewGitHubErrorWithCause("GetDefaultBranch", "failed to parse repo response", err)
	}

	return resp.DefaultBranchRef.Name, nil
}

// GetCurrentRepo returns the owner and repo name for the current repository.
func (c *CLIClient) GetCurrentRepo(ctx context.Context) (owner, repo string, err error) {
	args := []string{"repo", "view", "--json", "owner,name"}

	c.logDebug("getting current repo")

	output, err := c.runGH(ctx, args...)
	if err != nil {
		return "", "", forgeerrors.NewGitHubErrorWithCause("GetCurrentRepo", "failed to get repo info", err)
	}

	var resp ghRepoResponse
	if err := json.Unmarshal([]byte(output), &resp); err != nil {
		return "", "", forgeerrors.NewGitHubErrorWithCause("GetCurrentRepo", "failed to parse repo response", err)
	}

	return resp.Owner.Login, resp.Name, nil
}

// runGH executes a gh command and returns its output.
func (c *CLIClient) runGH(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "gh", args...)

	// Set GITHUB_TOKEN if configured
	if c.token != "" {
		cmd.Env = append(os.Environ(), "GITHUB_TOKEN="+c.token)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = err.Error()
		}
		// Check for specific error patterns to determine retryability
		ghErr := forgeerrors.NewGitHubError("gh", errMsg)
		if isRetryableGHError(errMsg) {
			ghErr.Retryable = true
		}
		return "", ghErr
	}

	return stdout.String(), nil
}

// logDebug logs a debug message if verbose mode is enabled.
func (c *CLIClient) logDebug(msg string, args ...any) {
	if c.verbose {
		c.logger.Debug(msg, args...)
	}
}

// issueJSONFields returns the list of fields to request from gh issue view/list.
func issueJSONFields() []string {
	return []string{
		"number",
		"title",
		"body",
		"state",
		"url",
		"createdAt",
		"updatedAt",
		"author",
		"labels",
		"assignees",
	}
}

// prJSONFields returns the list of fields to request from gh pr view/list.
func prJSONFields() []string {
	return []string{
		"number",
		"title",
		"body",
		"state",
		"isDraft",
		"url",
		"headRefName",
		"baseRefName",
		"createdAt",
		"updatedAt",
		"author",
		"labels",
	}
}

// extractIssueNumber extracts the issue number from a GitHub issue URL.
func extractIssueNumber(url string) (int, error) {
	// URL format: https://github.com/owner/repo/issues/123
	parts := strings.Split(url, "/")
	if len(parts) < 2 {
		return 0, forgeerrors.NewGitHubError("extractIssueNumber", "invalid issue URL format")
	}
	numberStr := parts[len(parts)-1]
	number, err := strconv.Atoi(numberStr)
	if err != nil {
		return 0, forgeerrors.NewGitHubErrorWithCause("extractIssueNumber", "failed to parse issue number", err)
	}
	return number, nil
}

// isRetryableGHError checks if a gh CLI error message indicates a retryable error.
func isRetryableGHError(errMsg string) bool {
	retryablePatterns := []string{
		"rate limit",
		"timeout",
		"connection refused",
		"network",
		"502",
		"503",
		"504",
	}

	lowerErr := strings.ToLower(errMsg)
	for _, pattern := range retryablePatterns {
		if strings.Contains(lowerErr, pattern) {
			return true
		}
	}
	return false
}
