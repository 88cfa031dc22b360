package github

import (
	"strconv"
	"strings"

	"github.com/forgeworks/forge/pkg/text"
)

// Display limits for table rendering.
const (
	maxTitleWidth = 60
)

// IssueTableColumns is the fixed column order for issue tables.
var IssueTableColumns = []string{"Number", "State", "Title", "Labels"}

// PRTableColumns is the fixed column order for PR tables.
var PRTableColumns = []string{"Number", "State", "Title", "Branch"}

// PartitionLabels splits selected labels into those present in available
// and those that are not. The two lists are disjoint and their union, as a
// set, equals the selected set. Order follows the selected slice.
func PartitionLabels(selected, available []string) (valid, invalid []string) {
	known := make(map[string]bool, len(available))
	for _, label := range available {
		known[label] = true
	}

	valid = make([]string, 0, len(selected))
	invalid = make([]string, 0)
	for _, label := range selected {
		if known[label] {
			valid = append(valid, label)
		} else {
			invalid = append(invalid, label)
		}
	}
	return valid, invalid
}

// DetermineAssignees computes the final assignee list for an issue. When
// selfAssign is set, currentUser is added unless already present. The
// result never contains duplicates; first occurrence wins for order.
func DetermineAssignees(selfAssign bool, currentUser string, assignees []string) []string {
	result := make([]string, 0, len(assignees)+1)
	seen := make(map[string]bool, len(assignees)+1)

	for _, assignee := range assignees {
		if assignee == "" || seen[assignee] {
			continue
		}
		seen[assignee] = true
		result = append(result, assignee)
	}

	if selfAssign && currentUser != "" && !seen[currentUser] {
		result = append(result, currentUser)
	}

	return result
}

// IssueRowFromIssue converts an issue into a display row matching
// IssueTableColumns. Long titles are truncated.
func IssueRowFromIssue(issue *IssueInfo) []string {
	return []string{
		"#" + strconv.Itoa(issue.Number),
		issue.State,
		text.Truncate(issue.Title, maxTitleWidth),
		strings.Join(issue.Labels, ", "),
	}
}

// PRRowFromPR converts a pull request into a display row matching
// PRTableColumns.
func PRRowFromPR(pr *PRInfo) []string {
	state := pr.State
	if pr.Draft {
		state = "draft"
	}
	return []string{
		"#" + strconv.Itoa(pr.Number),
		state,
		text.Truncate(pr.Title, maxTitleWidth),
		pr.HeadBranch,
	}
}

// BuildIssueTable renders issues as (columns, rows) for tabular display.
func BuildIssueTable(issues []IssueInfo) ([]string, [][]string) {
	rows := make([][]string, 0, len(issues))
	for i := range issues {
		rows = append(rows, IssueRowFromIssue(&issues[i]))
	}
	return IssueTableColumns, rows
}

// BuildPRTable renders pull requests as (columns, rows) for tabular display.
func BuildPRTable(prs []PRInfo) ([]string, [][]string) {
	rows := make([][]string, 0, len(prs))
	for i := range prs {
		rows = append(rows, PRRowFromPR(&prs[i]))
	}
	return PRTableColumns, rows
}
