package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestPrompter_Select(t *testing.T) {
	options := []string{"lint", "test", "models"}

	tests := []struct {
		name    string
		input   string
		want    int
		wantErr error
	}{
		{"first option", "1\n", 0, nil},
		{"last option", "3\n", 2, nil},
		{"leading whitespace", "  2 \n", 1, nil},
		{"retry after junk", "abc\n2\n", 1, nil},
		{"retry after out of range", "9\n1\n", 0, nil},
		{"empty line cancels", "\n", 0, ErrCancelled},
		{"eof cancels", "", 0, ErrCancelled},
		{"persistent junk gives up", "x\ny\nz\n", 0, ErrTooManyAttempts},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompter(strings.NewReader(tt.input), &out)

			got, err := p.Select("Pick a command", options)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && got != tt.want {
				t.Errorf("Select() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPrompter_Select_NoOptions(t *testing.T) {
	p := NewPrompter(strings.NewReader("1\n"), &bytes.Buffer{})

	if _, err := p.Select("Pick", nil); !errors.Is(err, ErrNoOptions) {
		t.Errorf("error = %v, want ErrNoOptions", err)
	}
}

func TestPrompter_Select_RendersMenu(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("2\n"), &out)

	if _, err := p.Select("Pick a command", []string{"lint", "test"}); err != nil {
		t.Fatalf("Select error: %v", err)
	}

	rendered := out.String()
	for _, want := range []string{"Pick a command", "1. lint", "2. test", "[1-2]"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("menu output missing %q:\n%s", want, rendered)
		}
	}
}

func TestPrompter_Ask(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("  hello world \n"), &out)

	got, err := p.Ask("Title")
	if err != nil {
		t.Fatalf("Ask error: %v", err)
	}
	if got != "hello world" {
		t.Errorf("Ask() = %q, want %q", got, "hello world")
	}
}

func TestPrompter_Ask_RetriesOnBlank(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("\n  \nvalue\n"), &out)

	got, err := p.Ask("Title")
	if err != nil {
		t.Fatalf("Ask error: %v", err)
	}
	if got != "value" {
		t.Errorf("Ask() = %q, want %q", got, "value")
	}
}

func TestPrompter_Ask_GivesUp(t *testing.T) {
	p := NewPrompter(strings.NewReader("\n\n\n"), &bytes.Buffer{})

	if _, err := p.Ask("Title"); !errors.Is(err, ErrTooManyAttempts) {
		t.Errorf("error = %v, want ErrTooManyAttempts", err)
	}
}
