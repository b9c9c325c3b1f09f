// Package integration provides CLI integration tests for heartboard.
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// heartboardBin is the path to the built heartboard binary.
	heartboardBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// TestEnv provides an isolated test environment with its own config and
// data directory.
type TestEnv struct {
	t       *testing.T
	TempDir string
	Config  string
	DataDir string
}

// NewTestEnv creates a new isolated test environment. The config it
// writes selects the JSON backend and sets an admin password so the
// operator commands can be exercised.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build heartboard: %v", buildErr)
	}
	if heartboardBin == "" {
		t.Fatal("heartboard binary not built (heartboardBin is empty)")
	}

	tempDir := t.TempDir()
	dataDir := filepath.Join(tempDir, "data")
	configDir := filepath.Join(tempDir, "config")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	configContent := "backend: json\ndata_dir: " + dataDir + "\nadmin_password: " + TestAdminPassword + "\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	return &TestEnv{
		t:       t,
		TempDir: tempDir,
		Config:  configDir,
		DataDir: dataDir,
	}
}

// TestAdminPassword is the operator password written into every test config.
const TestAdminPassword = "integration-secret"

// CmdResult holds the result of a heartboard command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunHeartboard executes the heartboard CLI with the given arguments.
func (e *TestEnv) RunHeartboard(args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.Config, "--data-dir", e.DataDir}, args...)
	cmd := exec.Command(heartboardBin, allArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run heartboard: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunHeartboard executes the heartboard CLI and fails the test if it
// returns non-zero.
func (e *TestEnv) MustRunHeartboard(args ...string) CmdResult {
	e.t.Helper()
	result := e.RunHeartboard(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("heartboard %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", jsonStr, err)
	}
	return result
}

// Participant mirrors the CLI's JSON output for a single record.
type Participant struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Source    string `json:"source"`
	Timestamp int64  `json:"timestamp"`
	Label     string `json:"label"`
	Lit       bool   `json:"isLit"`
}

// BoardStats mirrors the CLI's JSON summary output.
type BoardStats struct {
	Records int  `json:"records"`
	Lit     int  `json:"lit"`
	Changed bool `json:"changed"`
	Rows    int  `json:"rows"`
}
