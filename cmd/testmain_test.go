package cmd

import (
	"os"
	"testing"
)

// TestMain disables the bootstrap config cache so each test sees a fresh
// configuration load.
func TestMain(m *testing.M) {
	os.Setenv("GO_TEST", "true")

	code := m.Run()

	os.Unsetenv("GO_TEST")
	os.Exit(code)
}
