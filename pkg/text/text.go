// Package text provides small string normalization helpers shared by the
// formatters and command layer.
package text

import (
	"path/filepath"
	"strings"
)

// Ellipsis is the marker appended (or prepended) to truncated strings.
const Ellipsis = "..."

// ParseList splits a comma-separated string into trimmed elements.
// Empty elements are dropped and input order is preserved. Empty or
// whitespace-only input returns nil.
func ParseList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

// Truncate shortens s to at most max characters, appending an ellipsis when
// truncation happens. Lengths are counted in runes, never splitting a
// multibyte character. Strings of length <= max are returned unchanged, so
// the result length is always <= max.
//
// When max is smaller than the ellipsis itself the result is clamped to the
// empty string; when max equals the ellipsis length an overlong input
// collapses to just the ellipsis.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max < len(Ellipsis) {
		return ""
	}
	return string(runes[:max-len(Ellipsis)]) + Ellipsis
}

// TruncateLeft shortens s to at most max characters, keeping the tail and
// prepending an ellipsis. Useful for identifiers that are most distinctive
// at the end, such as nested test names. Counting and clamping follow
// Truncate.
func TruncateLeft(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max < len(Ellipsis) {
		return ""
	}
	return Ellipsis + string(runes[len(runes)-(max-len(Ellipsis)):])
}

// RelativizePath expresses path relative to root for display. On any
// failure (path not under root, unresolvable input) the original path is
// returned unchanged. Never errors.
func RelativizePath(path, root string) string {
	if path == "" || root == "" {
		return path
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	// A result that climbs out of root is not an improvement for display.
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}
