// Package validate provides tagged-result validators for user-supplied
// input. Validators never return errors; callers branch on the result code.
package validate

import (
	"strconv"
	"strings"
)

// Code identifies why an input was rejected, or that it was accepted.
type Code int

const (
	// CodeOK indicates the input was accepted.
	CodeOK Code = iota
	// CodeNone indicates the input itself was absent.
	CodeNone
	// CodeEmpty indicates the input was present but blank after trimming.
	CodeEmpty
	// CodeNotANumber indicates the input could not be parsed as an integer.
	CodeNotANumber
	// CodeOutOfRange indicates a numeric choice outside the menu bounds.
	CodeOutOfRange
)

// String returns the code name for logging and test output.
func (c Code) String() string {
	switch c {
	case CodeOK:
		return "ok"
	case CodeNone:
		return "none"
	case CodeEmpty:
		return "empty"
	case CodeNotANumber:
		return "not_a_number"
	case CodeOutOfRange:
		return "out_of_range"
	default:
		return "unknown"
	}
}

// Result is the tri-state outcome of a validation: either OK with a value,
// or rejected with a reason code. Never partially valid.
type Result[T any] struct {
	OK    bool
	Value T
	Code  Code
}

func accepted[T any](v T) Result[T] {
	return Result[T]{OK: true, Value: v, Code: CodeOK}
}

func rejected[T any](code Code) Result[T] {
	return Result[T]{Code: code}
}

// NonEmpty validates free-form text. A nil pointer is treated as absent
// input (CodeNone), blank text as CodeEmpty; otherwise the trimmed value
// is accepted.
func NonEmpty(s *string) Result[string] {
	if s == nil {
		return rejected[string](CodeNone)
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return rejected[string](CodeEmpty)
	}
	return accepted(trimmed)
}

// NumericChoice validates a 1-based menu selection and converts it to a
// 0-based index. Unparseable input yields CodeNotANumber; an index outside
// [0, max) yields CodeOutOfRange.
//
// min is accepted for symmetry with the menu bounds but is not used when
// range-checking: only the 1-based conversion and max are enforced. Pinned
// by a test so a future bound change is deliberate.
func NumericChoice(input string, min, max int) Result[int] {
	_ = min

	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return rejected[int](CodeNotANumber)
	}

	idx := n - 1
	if idx < 0 || idx >= max {
		return rejected[int](CodeOutOfRange)
	}
	return accepted(idx)
}
