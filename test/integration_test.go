// ABOUTME: Integration tests for gymsheet CLI.
// ABOUTME: Builds the binary and exercises the local-only command paths.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestStatsOnFreshDatabase(t *testing.T) {
	binary := buildBinary(t)

	dbPath := filepath.Join(t.TempDir(), "workouts.db")
	output, err := runCLI(binary, "--db", dbPath, "stats")
	if err != nil {
		t.Fatalf("stats failed: %v\n%s", err, output)
	}

	if !strings.Contains(output, "Total sets logged: 0") {
		t.Errorf("expected empty summary, got:\n%s", output)
	}
	if !strings.Contains(output, "Unique workout dates: 0") {
		t.Errorf("expected zero dates, got:\n%s", output)
	}
}

func TestStatsRejectsUnknownDimension(t *testing.T) {
	binary := buildBinary(t)

	dbPath := filepath.Join(t.TempDir(), "workouts.db")
	output, err := runCLI(binary, "--db", dbPath, "stats", "--by", "location")
	if err == nil {
		t.Fatalf("expected failure for unknown dimension, got:\n%s", output)
	}
	if !strings.Contains(output, "unknown --by value") {
		t.Errorf("expected dimension error, got:\n%s", output)
	}
}

func TestRunAbortsWithoutConfiguration(t *testing.T) {
	binary := buildBinary(t)

	// No SHEET_ID anywhere: the run must abort before any I/O.
	dbPath := filepath.Join(t.TempDir(), "workouts.db")
	cmd := exec.Command(binary, "--db", dbPath, "run")
	cmd.Dir = t.TempDir() // keep any repo-level .env out of reach
	cmd.Env = []string{
		"PATH=" + os.Getenv("PATH"),
		"HOME=" + os.Getenv("HOME"),
	}

	output, err := cmd.CombinedOutput()
	if err == nil {
		t.Fatalf("expected run to fail without configuration, got:\n%s", output)
	}
	if !strings.Contains(string(output), "SHEET_ID") {
		t.Errorf("expected SHEET_ID in error, got:\n%s", output)
	}
}

func buildBinary(t *testing.T) string {
	t.Helper()

	projectRoot, _ := filepath.Abs("..")
	binary := filepath.Join(t.TempDir(), "gymsheet")

	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/gymsheet")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	return binary
}

func runCLI(binary string, args ...string) (string, error) {
	cmd := exec.Command(binary, args...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}
