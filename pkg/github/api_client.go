package github

import (
	"context"
	"log/slog"
	"os/exec"
	"strings"

	gh "github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"

	forgeerrors "github.com/forgeworks/forge/pkg/errors"
)

// APIClient implements Client using GitHub REST API.
type APIClient struct {
	client  *gh.Client
	verbose bool
	logger  *slog.Logger
}

// APIClientOption is a functional option for configuring APIClient.
type APIClientOption func(*APIClient)

// WithAPILogger sets a custom logger for the API client.
func WithAPILogger(logger *slog.Logger) APIClientOption {
	return func(c *APIClient) {
		c.logger = logger
	}
}

// NewAPIClient creates a GitHub API client with the given token.
func NewAPIClient(token string, verbose bool, opts ...APIClientOption) (*APIClient, error) {
	if token == "" {
		return nil, forgeerrors.NewGitHubError("NewAPIClient", "token is required")
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)

	client := &APIClient{
		client:  gh.NewClient(tc),
		verbose: verbose,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// IsAuthenticated checks if the client is authenticated with GitHub.
func (c *APIClient) IsAuthenticated() bool {
	ctx := context.Background()
	_, _, err := c.client.Users.Get(ctx, "")
	return err == nil
}

// CurrentUser returns the login of the authenticated user.
func (c *APIClient) CurrentUser(ctx context.Context) (string, error) {
	user, resp, err := c.client.Users.Get(ctx, "")
	if err != nil {
		return "", toGitHubError("CurrentUser", resp, err)
	}
	return user.GetLogin(), nil
}

// CreateIssue creates a new issue.
func (c *APIClient) CreateIssue(ctx context.Context, opts CreateIssueOptions) (*IssueInfo, error) {
	if opts.Title == "" {
		return nil, forgeerrors.NewGitHubError("CreateIssue", "title is required")
	}

	owner, repo, err := c.GetCurrentRepo(ctx)
	if err != nil {
		return nil, err
	}

	c.logDebug("creating issue", "owner", owner, "repo", repo, "title", opts.Title)

	request := &gh.IssueRequest{
		Title: gh.Ptr(opts.Title),
		Body:  gh.Ptr(opts.Body),
	}
	if len(opts.Labels) > 0 {
		request.Labels = &opts.Labels
	}
	if len(opts.Assignees) > 0 {
		request.Assignees = &opts.Assignees
	}

	issue, resp, err := c.client.Issues.Create(ctx, owner, repo, request)
	if err != nil {
		return nil, toGitHubError("CreateIssue", resp, err)
	}

	return issueInfoFromGitHub(issue), nil
}

// GetIssue retrieves issue information by number.
func (c *APIClient) GetIssue(ctx context.Context, number int) (*IssueInfo, error) {
	owner, repo, err := c.GetCurrentRepo(ctx)
	if err != nil {
		return nil, err
	}

	c.logDebug("getting issue", "number", number)

	issue, resp, err := c.client.Issues.Get(ctx, owner, repo, number)
	if err != nil {
		return nil, toGitHubError("GetIssue", resp, err)
	}

	return issueInfoFromGitHub(issue), nil
}

// ListIssues lists issues filtered by state, labels, and assignee.
func (c *APIClient) ListIssues(ctx context.Context, opts ListIssuesOptions) ([]IssueInfo, error) {
	owner, repo, err := c.GetCurrentRepo(ctx)
	if err != nil {
		return nil, err
	}

	c.logDebug("listing issues", "state", opts.State, "labels", opts.Labels, "assignee", opts.Assignee)

	ghOpts := &gh.IssueListByRepoOptions{
		State:  opts.State,
		Labels: opts.Labels,
	}
	if ghOpts.State == "" {
		ghOpts.State = "open"
	}

	assignee := opts.Assignee
	if assignee == "@me" {
		assignee, err = c.CurrentUser(ctx)
		if err != nil {
			return nil, err
		}
	}
	ghOpts.Assignee = assignee

	if opts.Limit > 0 {
		ghOpts.PerPage = opts.Limit
	}

	issues, resp, err := c.client.Issues.ListByRepo(ctx, owner, repo, ghOpts)
	if err != nil {
		return nil, toGitHubError("ListIssues", resp, err)
	}

	result := make([]IssueInfo, 0, len(issues))
	for _, issue := range issues {
		// The issues endpoint also returns PRs; skip them.
		if issue.IsPullRequest() {
			continue
		}
		result = append(result, *issueInfoFromGitHub(issue))
	}

	return result, nil
}

// ListLabels returns the names of all labels defined in the repository.
func (c *APIClient) ListLabels(ctx context.Context) ([]string, error) {
	owner, repo, err := c.GetCurrentRepo(ctx)
	if err != nil {
		return nil, err
	}

	c.logDebug("listing labels")

	labels, resp, err := c.client.Issues.ListLabels(ctx, owner, repo, nil)
	if err != nil {
		return nil, toGitHubError("ListLabels", resp, err)
	}

	names := make([]string, 0, len(labels))
	for _, label := range labels {
		names = append(names, label.GetName())
	}

	return names, nil
}

// GetPR retrieves pull request information by number.
func (c *APIClient) GetPR(ctx context.Context, number int) (*PRInfo, error) {
	owner, repo, err := c.GetCurrentRepo(ctx)
	if err != nil {
		return nil, err
	}

	c.logDebug("getting PR", "number", number)

	pr, resp, err := c.client.PullRequests.Get(ctx, owner, repo, number)
	if err != nil {
		return nil, toGitHubError("GetPR", resp, err)
	}

	return prInfoFromGitHub(pr), nil
}

// ListPRs lists pull requests filtered by state and optionally by author.
func (c *APIClient) ListPRs(ctx context.Context, opts ListPRsOptions) ([]PRInfo, error) {
	owner, repo, err := c.GetCurrentRepo(ctx)
	if err != nil {
		return nil, err
	}

	c.logDebug("listing PRs", "state", opts.State, "author", opts.Author, "limit", opts.Limit)

	ghOpts := &gh.PullRequestListOptions{
		State: opts.State,
	}
	if ghOpts.State == "" || ghOpts.State == "all" {
		ghOpts.State = "all"
	}
	if opts.Limit > 0 {
		ghOpts.PerPage = opts.Limit
	}

	prs, resp, err := c.client.PullRequests.List(ctx, owner, repo, ghOpts)
	if err != nil {
		return nil, toGitHubError("ListPRs", resp, err)
	}

	// Get current user login if author is "@me"
	filterAuthor := opts.Author
	if opts.Author == "@me" {
		filterAuthor, err = c.CurrentUser(ctx)
		if err != nil {
			return nil, err
		}
	}

	result := make([]PRInfo, 0, len(prs))
	for _, pr := range prs {
		info := prInfoFromGitHub(pr)
		if filterAuthor != "" && info.Author != filterAuthor {
			continue
		}
		result = append(result, *info)
	}

	return result, nil
}

// GetDefaultBranch returns the repository's default branch name.
func (c *APIClient) GetDefaultBranch(ctx context.Context) (string, error) {
	owner, repo, err := c.GetCurrentRepo(ctx)
	if err != nil {
		return "", err
	}

	c.logDebug("getting default branch")

	repository, resp, err := c.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return "", toGitHubError("GetDefaultBranch", resp, err)
	}

	return repository.GetDefaultBranch(), nil
}

// GetCurrentRepo returns the owner and repo name for the current repository.
// This parses the git remote URL to determine owner/repo.
func (c *APIClient) GetCurrentRepo(ctx context.Context) (owner, repo string, err error) {
	owner, repo, err = parseGitRemote()
	if err != nil {
		return "", "", forgeerrors.NewGitHubErrorWithCause("GetCurrentRepo", "failed to parse git remote", err)
	}
	return owner, repo, nil
}

func (c *APIClient) logDebug(msg string, args ...any) {
	if c.verbose {
		c.logger.Debug(msg, args...)
	}
}

// Helper functions

func issueInfoFromGitHub(issue *gh.Issue) *IssueInfo {
	info := &IssueInfo{
		Number:    issue.GetNumber(),
		Title:     issue.GetTitle(),
		Body:      issue.GetBody(),
		State:     issue.GetState(),
		URL:       issue.GetHTMLURL(),
		Author:    issue.GetUser().GetLogin(),
		CreatedAt: issue.GetCreatedAt().Time,
		UpdatedAt: issue.GetUpdatedAt().Time,
	}

	for _, label := range issue.Labels {
		if name := label.GetName(); name != "" {
			info.Labels = append(info.Labels, name)
		}
	}
	for _, assignee := range issue.Assignees {
		if login := assignee.GetLogin(); login != "" {
			info.Assignees = append(info.Assignees, login)
		}
	}

	return info
}

func prInfoFromGitHub(pr *gh.PullRequest) *PRInfo {
	info := &PRInfo{
		Number:    pr.GetNumber(),
		Title:     pr.GetTitle(),
		Body:      pr.GetBody(),
		State:     pr.GetState(),
		Draft:     pr.GetDraft(),
		URL:       pr.GetHTMLURL(),
		Author:    pr.GetUser().GetLogin(),
		CreatedAt: pr.GetCreatedAt().Time,
		UpdatedAt: pr.GetUpdatedAt().Time,
	}

	if pr.Head != nil {
		info.HeadBranch = pr.GetHead().GetRef()
	}
	if pr.Base != nil {
		info.BaseBranch = pr.GetBase().GetRef()
	}

	for _, label := range pr.Labels {
		if name := label.GetName(); name != "" {
			info.Labels = append(info.Labels, name)
		}
	}

	return info
}

func toGitHubError(operation string, resp *gh.Response, err error) error {
	if resp != nil && resp.StatusCode > 0 {
		return forgeerrors.NewGitHubErrorWithStatus(operation, resp.StatusCode, err.Error())
	}
	return forgeerrors.NewGitHubErrorWithCause(operation, "API request failed", err)
}

func parseGitRemote() (owner, repo string, err error) {
	cmd := exec.Command("git", "remote", "get-url", "origin")
	output, err := cmd.Output()
	if err != nil {
		return "", "", err
	}

	url := strings.TrimSpace(string(output))
	return parseGitHubURL(url)
}

func parseGitHubURL(url string) (owner, repo string, err error) {
	// Handle SSH format: git@github.com:owner/repo.git
	if strings.HasPrefix(url, "git@") {
		parts := strings.Split(url, ":")
		if len(parts) != 2 {
			return "", "", forgeerrors.NewGitHubError("parseGitHubURL", "invalid SSH URL format")
		}
		path := strings.TrimSuffix(parts[1], ".git")
		segments := strings.Split(path, "/")
		if len(segments) != 2 {
			return "", "", forgeerrors.NewGitHubError("parseGitHubURL", "invalid repository path")
		}
		return segments[0], segments[1], nil
	}

	// Handle HTTPS format: https://github.com/owner/repo.git
	url = strings.TrimPrefix(url, "https://")
	url = strings.TrimPrefix(url, "http://")
	url = strings.TrimSuffix(url, ".git")

	parts := strings.Split(url, "/")
	if len(parts) < 3 {
		return "", "", forgeerrors.NewGitHubError("parseGitHubURL", "invalid HTTPS URL format")
	}

	return parts[1], parts[2], nil
}
