package text

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestParseList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"whitespace only", "   ", nil},
		{"single", "bug", []string{"bug"}},
		{"multiple", "bug,enhancement,docs", []string{"bug", "enhancement", "docs"}},
		{"spaces around elements", " bug , enhancement ", []string{"bug", "enhancement"}},
		{"empty elements dropped", "bug,,docs,", []string{"bug", "docs"}},
		{"only delimiters", ",,,", nil},
		{"order preserved", "z,a,m", []string{"z", "a", "m"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseList(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseList(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseList(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseList_NoEmptyOrPaddedElements(t *testing.T) {
	inputs := []string{"a, b ,c", " , ,x, ", "one", ",,", "  spread , out  ,values "}
	for _, input := range inputs {
		for _, elem := range ParseList(input) {
			if elem == "" {
				t.Errorf("ParseList(%q) produced empty element", input)
			}
			if elem != strings.TrimSpace(elem) {
				t.Errorf("ParseList(%q) produced padded element %q", input, elem)
			}
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{"shorter than max", "hello", 10, "hello"},
		{"exactly max", "hello", 5, "hello"},
		{"needs truncation", "hello world", 8, "hello..."},
		{"max equals ellipsis", "hello", 3, "..."},
		{"max below ellipsis", "hello", 2, ""},
		{"max zero", "hello", 0, ""},
		{"empty input", "", 5, ""},
		{"multibyte input", "тест_проверка_длинного_имени", 19, "тест_проверка_дл..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.max)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
			}
		})
	}
}

func TestTruncate_LengthBound(t *testing.T) {
	inputs := []string{"", "x", "hello", "a much longer string that will surely be cut"}
	for _, s := range inputs {
		for max := 0; max <= 20; max++ {
			got := Truncate(s, max)
			if len(got) > max {
				t.Errorf("len(Truncate(%q, %d)) = %d, exceeds max", s, max, len(got))
			}
			if len(s) <= max && got != s {
				t.Errorf("Truncate(%q, %d) = %q, want input unchanged", s, max, got)
			}
		}
	}
}

func TestTruncate_MultibyteSafe(t *testing.T) {
	const input = "тест_проверка_длинного_имени"
	for max := 0; max <= utf8.RuneCountInString(input)+2; max++ {
		for name, got := range map[string]string{
			"Truncate":     Truncate(input, max),
			"TruncateLeft": TruncateLeft(input, max),
		} {
			if !utf8.ValidString(got) {
				t.Errorf("%s(%q, %d) = %q, not valid UTF-8", name, input, max, got)
			}
			if n := utf8.RuneCountInString(got); n > max {
				t.Errorf("%s(%q, %d) is %d characters, exceeds max", name, input, max, n)
			}
		}
	}
}

func TestTruncateLeft(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{"shorter than max", "test_foo", 20, "test_foo"},
		{"keeps tail", "tests/integration/test_api.py::test_create", 20, "...i.py::test_create"},
		{"multibyte tail", "тест_проверка_длинного_имени", 10, "...о_имени"},
		{"max equals ellipsis", "abcdef", 3, "..."},
		{"max below ellipsis", "abcdef", 1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateLeft(tt.input, tt.max)
			if got != tt.want {
				t.Errorf("TruncateLeft(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
			}
			if n := utf8.RuneCountInString(got); n > tt.max {
				t.Errorf("length = %d characters, exceeds max %d", n, tt.max)
			}
		})
	}
}

func TestRelativizePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		root string
		want string
	}{
		{"under root", "/home/dev/proj/src/main.py", "/home/dev/proj", "src/main.py"},
		{"root itself", "/home/dev/proj", "/home/dev/proj", "."},
		{"outside root", "/etc/passwd", "/home/dev/proj", "/etc/passwd"},
		{"empty root", "/home/dev/x.py", "", "/home/dev/x.py"},
		{"empty path", "", "/home/dev", ""},
		{"relative against absolute root", "x.py", "/home/dev", "x.py"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RelativizePath(tt.path, tt.root)
			if got != tt.want {
				t.Errorf("RelativizePath(%q, %q) = %q, want %q", tt.path, tt.root, got, tt.want)
			}
		})
	}
}
