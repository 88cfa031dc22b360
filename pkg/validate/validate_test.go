package validate

import "testing"

func strPtr(s string) *string { return &s }

func TestNonEmpty(t *testing.T) {
	tests := []struct {
		name      string
		input     *string
		wantOK    bool
		wantValue string
		wantCode  Code
	}{
		{"nil input", nil, false, "", CodeNone},
		{"empty string", strPtr(""), false, "", CodeEmpty},
		{"whitespace only", strPtr("   \t"), false, "", CodeEmpty},
		{"valid", strPtr("fix the bug"), true, "fix the bug", CodeOK},
		{"trimmed", strPtr("  fix the bug  "), true, "fix the bug", CodeOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NonEmpty(tt.input)
			if got.OK != tt.wantOK {
				t.Errorf("OK = %v, want %v", got.OK, tt.wantOK)
			}
			if got.Value != tt.wantValue {
				t.Errorf("Value = %q, want %q", got.Value, tt.wantValue)
			}
			if got.Code != tt.wantCode {
				t.Errorf("Code = %v, want %v", got.Code, tt.wantCode)
			}
		})
	}
}

func TestNumericChoice(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		min, max  int
		wantOK    bool
		wantValue int
		wantCode  Code
	}{
		{"first item", "1", 1, 5, true, 0, CodeOK},
		{"last item", "5", 1, 5, true, 4, CodeOK},
		{"with whitespace", " 3 ", 1, 5, true, 2, CodeOK},
		{"zero is below range", "0", 1, 5, false, 0, CodeOutOfRange},
		{"above range", "6", 1, 5, false, 0, CodeOutOfRange},
		{"negative", "-2", 1, 5, false, 0, CodeOutOfRange},
		{"not a number", "abc", 1, 5, false, 0, CodeNotANumber},
		{"empty", "", 1, 5, false, 0, CodeNotANumber},
		{"float", "1.5", 1, 5, false, 0, CodeNotANumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NumericChoice(tt.input, tt.min, tt.max)
			if got.OK != tt.wantOK {
				t.Errorf("OK = %v, want %v", got.OK, tt.wantOK)
			}
			if got.Value != tt.wantValue {
				t.Errorf("Value = %d, want %d", got.Value, tt.wantValue)
			}
			if got.Code != tt.wantCode {
				t.Errorf("Code = %v, want %v", got.Code, tt.wantCode)
			}
		})
	}
}

// The min bound is accepted but deliberately not enforced; only the 1-based
// conversion and max are checked. This pins the inherited behavior so a
// future "fix" shows up as a test change, not a silent semantic shift.
func TestNumericChoice_MinNotEnforced(t *testing.T) {
	got := NumericChoice("1", 3, 5)
	if !got.OK || got.Value != 0 {
		t.Errorf("NumericChoice(\"1\", 3, 5) = %+v, want OK with index 0", got)
	}
}

func TestCode_String(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeOK, "ok"},
		{CodeNone, "none"},
		{CodeEmpty, "empty"},
		{CodeNotANumber, "not_a_number"},
		{CodeOutOfRange, "out_of_range"},
		{Code(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("Code(%d).String() = %q, want %q", tt.code, got, tt.want)
		}
	}
}
