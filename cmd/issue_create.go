package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	forgeerrors "github.com/forgeworks/forge/pkg/errors"
	"github.com/forgeworks/forge/pkg/github"
	"github.com/forgeworks/forge/pkg/jira"
	"github.com/forgeworks/forge/pkg/text"
	"github.com/forgeworks/forge/pkg/ui"
	"github.com/forgeworks/forge/pkg/validate"
)

var (
	issueCreateTitle      string
	issueCreateBody       string
	issueCreateLabels     []string
	issueCreateAssignees  []string
	issueCreateSelfAssign bool
	issueCreateTicket     string
)

// issueCreateCmd creates a new GitHub issue.
var issueCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new issue",
	Long: `Create a new GitHub issue for the current repository.

Labels are checked against the repository's label set; unknown labels
are dropped with a warning. With --self-assign (or github.self_assign
in config) the authenticated user is added to the assignees.

A --jira ticket key is validated and normalized (PROJ-123) and prefixed
to the issue title. When jira.project_keys is configured, tickets from
other projects are rejected.

When no title is given and the terminal is interactive, the title and
body are prompted for.

Examples:
  forge issue create --title "Fix flaky test" --label bug,ci
  forge issue create -t "Sync retries" -b "Details..." --self-assign
  forge issue create -t "Add backoff" --jira PROJ-123`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIssueCreate()
	},
}

func init() {
	issueCmd.AddCommand(issueCreateCmd)

	issueCreateCmd.Flags().StringVarP(&issueCreateTitle, "title", "t", "", "Issue title")
	issueCreateCmd.Flags().StringVarP(&issueCreateBody, "body", "b", "", "Issue body")
	issueCreateCmd.Flags().StringSliceVarP(&issueCreateLabels, "label", "l", nil, "Labels to apply (repeatable or comma-separated)")
	issueCreateCmd.Flags().StringSliceVarP(&issueCreateAssignees, "assignee", "a", nil, "Assignees (repeatable or comma-separated)")
	issueCreateCmd.Flags().BoolVarP(&issueCreateSelfAssign, "self-assign", "s", false, "Assign the issue to yourself")
	issueCreateCmd.Flags().StringVarP(&issueCreateTicket, "jira", "j", "", "Jira ticket key to reference (e.g. PROJ-123)")
}

func runIssueCreate() error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	title := strings.TrimSpace(issueCreateTitle)
	body := issueCreateBody

	// Prompt for missing fields when attached to a terminal.
	if title == "" {
		if !ui.IsInteractive() {
			return errors.New("issue title is required (use --title)")
		}
		prompter := ui.NewPrompter(os.Stdin, os.Stdout)
		title, err = prompter.Ask("Issue title")
		if err != nil {
			return err
		}
		if body == "" {
			line, askErr := prompter.Ask("Issue body")
			if askErr == nil {
				body = line
			}
		}
	}

	// Validate and normalize the Jira reference before it reaches GitHub.
	if issueCreateTicket != "" {
		ticket, ticketErr := resolveJiraTicket(cfg.Jira.Enabled, cfg.Jira.AllowedProjects, issueCreateTicket)
		if ticketErr != nil {
			fmt.Println(forgeerrors.FormatUserError(ticketErr))
			return ticketErr
		}
		if ticket != "" {
			title = fmt.Sprintf("[%s] %s", ticket, title)
		}
	}

	ghClient, err := github.NewClient(&cfg.GitHub, verbose)
	if err != nil {
		fmt.Println(forgeerrors.FormatUserError(err))
		return err
	}

	labels, err := resolveLabels(ctx, ghClient, mergeListFlags(issueCreateLabels, cfg.GitHub.DefaultLabels))
	if err != nil {
		fmt.Println(forgeerrors.FormatUserError(err))
		return err
	}

	selfAssign := issueCreateSelfAssign || cfg.GitHub.SelfAssign
	assignees := mergeListFlags(issueCreateAssignees, nil)
	if selfAssign {
		currentUser, userErr := ghClient.CurrentUser(ctx)
		if userErr != nil {
			fmt.Println(forgeerrors.FormatUserError(userErr))
			return userErr
		}
		assignees = github.DetermineAssignees(true, currentUser, assignees)
	} else {
		assignees = github.DetermineAssignees(false, "", assignees)
	}

	issue, err := ghClient.CreateIssue(ctx, github.CreateIssueOptions{
		Title:     title,
		Body:      body,
		Labels:    labels,
		Assignees: assignees,
	})
	if err != nil {
		fmt.Println(forgeerrors.FormatUserError(err))
		return err
	}

	fmt.Printf("Created issue #%d: %s\n", issue.Number, issue.Title)
	if issue.URL != "" {
		fmt.Println(issue.URL)
	}
	return nil
}

// resolveJiraTicket validates a ticket key and checks it against the
// configured project allow-list. Returns the normalized key.
func resolveJiraTicket(enabled bool, allowedProjects []string, input string) (string, error) {
	if !enabled {
		return "", nil
	}

	result := jira.ValidateTicketKey(input)
	if !result.OK {
		switch result.Code {
		case validate.CodeEmpty:
			return "", forgeerrors.NewJiraError("validate", "ticket key is empty")
		default:
			return "", forgeerrors.NewJiraErrorWithTicket("validate", input, "not a valid ticket key")
		}
	}

	if !jira.AllowedProject(result.Value, allowedProjects) {
		return "", forgeerrors.NewJiraErrorWithTicket("validate", result.Value,
			fmt.Sprintf("project %s is not in the allowed list", jira.ProjectKey(result.Value)))
	}

	return result.Value, nil
}

// resolveLabels partitions the requested labels against the repository's
// label set, warns about unknown ones, and returns the valid subset.
func resolveLabels(ctx context.Context, ghClient github.Client, requested []string) ([]string, error) {
	if len(requested) == 0 {
		return nil, nil
	}

	available, err := ghClient.ListLabels(ctx)
	if err != nil {
		return nil, err
	}

	valid, invalid := github.PartitionLabels(requested, available)
	for _, label := range invalid {
		fmt.Fprintf(os.Stderr, "Warning: label %q does not exist on this repository, skipping\n", label)
	}
	return valid, nil
}

// mergeListFlags merges a slice flag with config defaults, splitting any
// comma-separated entries.
func mergeListFlags(flagValues, defaults []string) []string {
	var out []string
	for _, v := range flagValues {
		out = append(out, text.ParseList(v)...)
	}
	if len(out) == 0 {
		out = append(out, defaults...)
	}
	return out
}
