// Package integration provides binary-driven CLI tests for the library
// command.
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var (
	// libraryBin is the path to the built library binary.
	libraryBin string
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
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// TestEnv provides an isolated test environment with its own config
// directory and data file.
type TestEnv struct {
	t        *testing.T
	TempDir  string
	Config   string
	DataFile string
}

// NewTestEnv creates a new isolated test environment using the given backend.
func NewTestEnv(t *testing.T, backend string) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build library: %v", buildErr)
	}
	if libraryBin == "" {
		t.Fatal("library binary not built (libraryBin is empty)")
	}

	tempDir := t.TempDir()
	configDir := filepath.Join(tempDir, "config")
	dataFile := filepath.Join(tempDir, "library_data.json")
	if backend == "sqlite" {
		dataFile = filepath.Join(tempDir, "library.db")
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	configContent := "backend: " + backend + "\ndata_file: " + dataFile + "\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	return &TestEnv{
		t:        t,
		TempDir:  tempDir,
		Config:   configDir,
		DataFile: dataFile,
	}
}

// CmdResult holds the result of a library command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Run executes the library CLI with the given arguments and stdin.
func (e *TestEnv) Run(stdin string, args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.Config}, args...)
	cmd := exec.Command(libraryBin, allArgs...)
	cmd.Dir = e.TempDir
	cmd.Stdin = strings.NewReader(stdin)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run library: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRun executes the library CLI and fails the test if it returns non-zero.
func (e *TestEnv) MustRun(args ...string) CmdResult {
	e.t.Helper()
	result := e.Run("", args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("library %v failed with exit code %d:\nstdout: %s\nstderr: %s",
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

// DataDocument mirrors the persisted library_data.json file.
type DataDocument struct {
	Books []struct {
		BookID    int    `json:"book_id"`
		Title     string `json:"title"`
		Quantity  int    `json:"quantity"`
		Available int    `json:"available"`
	} `json:"books"`
	Members []struct {
		MemberID      int    `json:"member_id"`
		Name          string `json:"name"`
		BorrowedBooks []int  `json:"borrowed_books"`
	} `json:"members"`
	Transactions []struct {
		TransactionID   int    `json:"transaction_id"`
		TransactionType string `json:"transaction_type"`
		Date            string `json:"date"`
	} `json:"transactions"`
}

// ReadDataFile reads and parses the JSON data file.
func (e *TestEnv) ReadDataFile() DataDocument {
	e.t.Helper()
	data, err := os.ReadFile(e.DataFile)
	if err != nil {
		e.t.Fatalf("failed to read data file %s: %v", e.DataFile, err)
	}
	return ParseJSON[DataDocument](e.t, string(data))
}
