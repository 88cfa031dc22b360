package jira

import "strings"

// Phase buckets a Jira status into one of four workflow phases.
type Phase string

const (
	// PhaseNotStarted covers statuses like "Open", "To Do", "Backlog".
	PhaseNotStarted Phase = "not_started"

	// PhaseInProgress covers statuses like "In Progress", "In Development".
	PhaseInProgress Phase = "in_progress"

	// PhaseInReview covers statuses like "In Review", "Code Review", "QA".
	PhaseInReview Phase = "in_review"

	// PhaseDone covers statuses like "Done", "Closed", "Resolved".
	PhaseDone Phase = "done"
)

// statusPhases maps lowercase Jira status names to phases. Unlisted
// statuses fall through to keyword matching in PhaseForStatus.
var statusPhases = map[string]Phase{
	"open":      PhaseNotStarted,
	"to do":     PhaseNotStarted,
	"backlog":   PhaseNotStarted,
	"new":       PhaseNotStarted,
	"reopened":  PhaseNotStarted,
	"ready":     PhaseNotStarted,
	"selected":  PhaseNotStarted,

	"in progress":    PhaseInProgress,
	"in development": PhaseInProgress,
	"in dev":         PhaseInProgress,
	"working":        PhaseInProgress,
	"active":         PhaseInProgress,

	"in review":        PhaseInReview,
	"code review":      PhaseInReview,
	"review":           PhaseInReview,
	"ready for review": PhaseInReview,
	"under review":     PhaseInReview,
	"qa":               PhaseInReview,
	"testing":          PhaseInReview,

	"done":     PhaseDone,
	"closed":   PhaseDone,
	"resolved": PhaseDone,
	"complete": PhaseDone,
	"released": PhaseDone,
	"deployed": PhaseDone,
}

// preferredStatus maps a phase back to the most common Jira status name.
var preferredStatus = map[Phase]string{
	PhaseNotStarted: "To Do",
	PhaseInProgress: "In Progress",
	PhaseInReview:   "In Review",
	PhaseDone:       "Done",
}

// PhaseForStatus maps a Jira status name to a workflow phase. Matching is
// case-insensitive; unknown statuses are inferred from keywords, defaulting
// to PhaseNotStarted.
func PhaseForStatus(status string) Phase {
	statusLower := strings.ToLower(strings.TrimSpace(status))

	if phase, ok := statusPhases[statusLower]; ok {
		return phase
	}

	switch {
	case strings.Contains(statusLower, "progress") || strings.Contains(statusLower, "dev"):
		return PhaseInProgress
	case strings.Contains(statusLower, "review") || strings.Contains(statusLower, "qa") || strings.Contains(statusLower, "test"):
		return PhaseInReview
	case strings.Contains(statusLower, "done") || strings.Contains(statusLower, "close") || strings.Contains(statusLower, "resolv"):
		return PhaseDone
	default:
		return PhaseNotStarted
	}
}

// StatusForPhase returns the preferred Jira status name for a phase.
// This is the inverse of PhaseForStatus for the common status names.
func StatusForPhase(phase Phase) string {
	if status, ok := preferredStatus[phase]; ok {
		return status
	}
	return "To Do"
}
