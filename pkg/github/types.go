// Package github provides GitHub integration for issue and PR metadata.
//
// This package implements the Client interface for interacting with GitHub.
// The primary implementation uses the gh CLI tool for maximum compatibility;
// a REST API implementation is available for token and OAuth auth.
package github

import "time"

// AuthMethod represents the authentication method for GitHub.
type AuthMethod string

const (
	// AuthToken uses a personal access token for authentication.
	AuthToken AuthMethod = "token"
	// AuthOAuth uses OAuth for authentication.
	AuthOAuth AuthMethod = "oauth"
	// AuthGHCLI uses the gh CLI's stored credentials.
	AuthGHCLI AuthMethod = "gh_cli"
)

// IssueInfo represents issue information.
type IssueInfo struct {
	Number    int       `json:"number"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	State     string    `json:"state"` // "open", "closed"
	URL       string    `json:"url"`
	Author    string    `json:"-"` // Populated from author.login
	Labels    []string  `json:"-"` // Populated from labels[].name
	Assignees []string  `json:"-"` // Populated from assignees[].login
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PRInfo represents pull request information.
type PRInfo struct {
	Number     int       `json:"number"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	State      string    `json:"state"`   // "open", "closed", "merged"
	Draft      bool      `json:"isDraft"` // gh CLI uses isDraft
	URL        string    `json:"url"`
	Author     string    `json:"-"`
	HeadBranch string    `json:"headRefName"` // gh CLI uses headRefName
	BaseBranch string    `json:"baseRefName"` // gh CLI uses baseRefName
	Labels     []string  `json:"-"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// IsOpen returns true if the PR is open.
func (pr *PRInfo) IsOpen() bool {
	return pr.State == "open" || pr.State == "OPEN"
}

// CreateIssueOptions holds options for creating an issue.
type CreateIssueOptions struct {
	Title     string   // Issue title (required)
	Body      string   // Issue body/description
	Labels    []string // Labels to apply
	Assignees []string // Usernames to assign
}

// ListIssuesOptions holds filters for listing issues.
type ListIssuesOptions struct {
	State    string   // "open", "closed", "all" (defaults to "open")
	Labels   []string // Only issues carrying all of these labels
	Assignee string   // Only issues assigned to this user ("@me" for self)
	Limit    int      // Maximum number of issues to return
}

// ListPRsOptions holds filters for listing pull requests.
type ListPRsOptions struct {
	State  string // "open", "closed", "merged", "all"
	Author string // Only PRs by this author ("@me" for self)
	Limit  int    // Maximum number of PRs to return
}

// ghIssueResponse represents the JSON response from gh issue view/list.
// Used internally for JSON parsing before converting to IssueInfo.
type ghIssueResponse struct {
	Number    int       `json:"number"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	State     string    `json:"state"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Author    struct {
		Login string `json:"login"`
	} `json:"author"`
	Labels []struct {
		Name string `json:"name"`
	} `json:"labels"`
	Assignees []struct {
		Login string `json:"login"`
	} `json:"assignees"`
}

// toIssueInfo converts a ghIssueResponse to IssueInfo.
func (r *ghIssueResponse) toIssueInfo() *IssueInfo {
	issue := &IssueInfo{
		Number:    r.Number,
		Title:     r.Title,
		Body:      r.Body,
		State:     r.State,
		URL:       r.URL,
		Author:    r.Author.Login,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}

	for _, label := range r.Labels {
		if label.Name != "" {
			issue.Labels = append(issue.Labels, label.Name)
		}
	}
	for _, assignee := range r.Assignees {
		if assignee.Login != "" {
			issue.Assignees = append(issue.Assignees, assignee.Login)
		}
	}

	return issue
}

// ghPRResponse represents the JSON response from gh pr view/list.
type ghPRResponse struct {
	Number      int       `json:"number"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	State       string    `json:"state"`
	IsDraft     bool      `json:"isDraft"`
	URL         string    `json:"url"`
	HeadRefName string    `json:"headRefName"`
	BaseRefName string    `json:"baseRefName"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Author      struct {
		Login string `json:"login"`
	} `json:"author"`
	Labels []struct {
		Name string `json:"name"`
	} `json:"labels"`
}

// toPRInfo converts a ghPRResponse to PRInfo.
func (r *ghPRResponse) toPRInfo() *PRInfo {
	pr := &PRInfo{
		Number:     r.Number,
		Title:      r.Title,
		Body:       r.Body,
		State:      r.State,
		Draft:      r.IsDraft,
		URL:        r.URL,
		Author:     r.Author.Login,
		HeadBranch: r.HeadRefName,
		BaseBranch: r.BaseRefName,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}

	for _, label := range r.Labels {
		if label.Name != "" {
			pr.Labels = append(pr.Labels, label.Name)
		}
	}

	return pr
}

// ghRepoResponse represents the JSON response from gh repo view.
type ghRepoResponse struct {
	Name  string `json:"name"`
	Owner struct {
		Login string `json:"login"`
	} `json:"owner"`
	DefaultBranchRef struct {
		Name string `json:"name"`
	} `json:"defaultBranchRef"`
}
