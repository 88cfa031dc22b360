// Package ui provides interactive terminal prompts.
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/forgeworks/forge/pkg/validate"
)

var (
	// ErrCancelled is returned when the user cancels the selection
	ErrCancelled = errors.New("selection cancelled")
	// ErrNoOptions is returned when there is nothing to select from
	ErrNoOptions = errors.New("no options to select from")
	// ErrTooManyAttempts is returned after repeated invalid input
	ErrTooManyAttempts = errors.New("too many invalid attempts")
)

// maxAttempts bounds reprompting on invalid input.
const maxAttempts = 3

// IsInteractive reports whether stdin and stdout are attached to a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Prompter reads user selections from an input stream.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a prompter over the given streams.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Select displays a numbered menu and returns the 0-based index of the
// chosen option. An empty line cancels the selection.
func (p *Prompter) Select(title string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, ErrNoOptions
	}

	fmt.Fprintf(p.out, "%s\n\n", title)
	for i, option := range options {
		fmt.Fprintf(p.out, "  %d. %s\n", i+1, option)
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		fmt.Fprintf(p.out, "\nSelect [1-%d]: ", len(options))

		line, err := p.in.ReadString('\n')
		if err != nil && line == "" {
			return 0, ErrCancelled
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return 0, ErrCancelled
		}

		result := validate.NumericChoice(line, 1, len(options))
		if result.OK {
			return result.Value, nil
		}

		switch result.Code {
		case validate.CodeNotANumber:
			fmt.Fprintln(p.out, "Please enter a number.")
		case validate.CodeOutOfRange:
			fmt.Fprintf(p.out, "Please enter a number between 1 and %d.\n", len(options))
		default:
			fmt.Fprintln(p.out, "Invalid selection.")
		}
	}

	return 0, ErrTooManyAttempts
}

// Ask prompts for a non-empty line of text and returns it trimmed. An
// empty line cancels.
func (p *Prompter) Ask(prompt string) (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		fmt.Fprintf(p.out, "%s: ", prompt)

		line, err := p.in.ReadString('\n')
		if err != nil && line == "" {
			return "", ErrCancelled
		}

		result := validate.NonEmpty(&line)
		if result.OK {
			return result.Value, nil
		}

		fmt.Fprintln(p.out, "A value is required.")
	}

	return "", ErrTooManyAttempts
}
