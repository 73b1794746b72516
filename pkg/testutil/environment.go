package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TestEnvironment isolates a test from the user's state directory and
// gives it a directory to write case files into
type TestEnvironment struct {
	CaseDir  string
	StateDir string

	t *testing.T
}

// NewTestEnvironment creates a new test environment. XDG_STATE_HOME points
// into it for the duration of the test.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	env := &TestEnvironment{
		CaseDir:  filepath.Join(root, "cases"),
		StateDir: filepath.Join(root, "state"),
		t:        t,
	}
	for _, dir := range []string{env.CaseDir, env.StateDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}
	t.Setenv("XDG_STATE_HOME", env.StateDir)

	return env
}

// WriteCase writes a case file and returns its path
func (e *TestEnvironment) WriteCase(name, content string) string {
	e.t.Helper()

	path := filepath.Join(e.CaseDir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.t.Fatalf("Failed to write case %s: %v", name, err)
	}
	return path
}

// LogFile returns the path the logger writes to in this environment
func (e *TestEnvironment) LogFile() string {
	return filepath.Join(e.StateDir, "fieldptr", "fieldptr.log")
}
