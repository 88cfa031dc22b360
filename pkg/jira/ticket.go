// Package jira validates Jira-style user input and maps ticket statuses to
// workflow phases. There is no Jira API client here; issue references are
// only parsed, normalized, and gated before they reach GitHub metadata.
package jira

import (
	"regexp"
	"strings"

	"github.com/forgeworks/forge/pkg/validate"
)

// ticketKeyRegex matches a Jira ticket key: an uppercase project key of at
// least two characters, a dash, and a ticket number.
var ticketKeyRegex = regexp.MustCompile(`^[A-Z][A-Z0-9]+-[1-9][0-9]*$`)

// ValidateTicketKey validates a Jira ticket key such as "PROJ-123".
// Input is trimmed and uppercased before matching, so "proj-123" is
// accepted and normalized. Blank input yields CodeEmpty; anything else that
// doesn't match the key shape is rejected with CodeOutOfRange.
func ValidateTicketKey(input string) validate.Result[string] {
	trimmed := strings.ToUpper(strings.TrimSpace(input))
	if trimmed == "" {
		return validate.Result[string]{Code: validate.CodeEmpty}
	}
	if !ticketKeyRegex.MatchString(trimmed) {
		return validate.Result[string]{Code: validate.CodeOutOfRange}
	}
	return validate.Result[string]{OK: true, Value: trimmed, Code: validate.CodeOK}
}

// ProjectKey returns the project portion of a valid ticket key
// ("PROJ-123" -> "PROJ"). Returns "" for input that doesn't split.
func ProjectKey(ticket string) string {
	idx := strings.IndexByte(ticket, '-')
	if idx <= 0 {
		return ""
	}
	return ticket[:idx]
}

// AllowedProject reports whether ticket belongs to one of the configured
// project keys. An empty allow-list accepts every project.
func AllowedProject(ticket string, projects []string) bool {
	if len(projects) == 0 {
		return true
	}
	key := ProjectKey(ticket)
	for _, p := range projects {
		if strings.EqualFold(p, key) {
			return true
		}
	}
	return false
}
