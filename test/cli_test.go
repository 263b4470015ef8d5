package test_test

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// buildCLI builds the swebatch CLI binary for testing
func buildCLI(t *testing.T) string {
	t.Helper()

	// Use a shared build directory
	buildDir := filepath.Join("..", "test-dist", "cli-bin")
	if err := os.MkdirAll(buildDir, 0750); err != nil {
		t.Fatalf("Failed to create build dir: %v", err)
	}

	cliPath, err := filepath.Abs(filepath.Join(buildDir, "swebatch"))
	if err != nil {
		t.Fatalf("Failed to resolve CLI path: %v", err)
	}

	// Check if already built
	if _, err := os.Stat(cliPath); err == nil {
		return cliPath
	}

	t.Log("Building swebatch CLI...")
	cmd := exec.Command("go", "build", "-o", cliPath, "../cmd/swebatch") // #nosec G204 -- test code with controlled input
	cmd.Dir = filepath.Join("..", "test")

	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build CLI: %v\nOutput: %s", err, output)
	}

	t.Log("CLI built successfully")
	return cliPath
}

// writeTestCatalog writes a minimal two-instance flask catalog
func writeTestCatalog(t *testing.T, dir string) {
	t.Helper()

	catalogDir := filepath.Join(dir, "catalog")
	if err := os.MkdirAll(catalogDir, 0750); err != nil {
		t.Fatalf("Failed to create catalog dir: %v", err)
	}

	catalog := `repo: flask
instances:
  pallets__flask-123:
    base_commit: aaa111
  pallets__flask-124:
    base_commit: bbb222
`
	if err := os.WriteFile(filepath.Join(catalogDir, "flask.yml"), []byte(catalog), 0600); err != nil {
		t.Fatalf("Failed to write catalog: %v", err)
	}
}

// TestCLI_Help tests help output for all commands
func TestCLI_Help(t *testing.T) {
	cliPath := buildCLI(t)

	commands := []string{
		"",
		"gen",
		"list",
	}

	for _, cmd := range commands {
		t.Run("help_"+cmd, func(t *testing.T) {
			args := []string{"--help"}
			if cmd != "" {
				args = []string{cmd, "--help"}
			}

			execCmd := exec.Command(cliPath, args...) // #nosec G204 -- test code with controlled input
			output, err := execCmd.CombinedOutput()

			// Help should exit with 0 or 2 (usage error)
			if err != nil {
				var exitErr *exec.ExitError
				if errors.As(err, &exitErr) {
					if exitErr.ExitCode() != 2 {
						t.Errorf("Help exited with unexpected code: %d", exitErr.ExitCode())
					}
				}
			}

			outputStr := string(output)
			if !strings.Contains(outputStr, "Usage") && !strings.Contains(outputStr, "Commands") {
				t.Errorf("Expected usage information in help output")
			}
		})
	}
}

// TestCLI_Gen compiles a two-job batch end to end through the binary
func TestCLI_Gen(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping CLI integration test in short mode")
	}

	cliPath := buildCLI(t)
	workDir := t.TempDir()
	writeTestCatalog(t, workDir)

	cmd := exec.Command(cliPath, "gen", // #nosec G204 -- test code with controlled input
		"-catalog-dir", "catalog",
		"-repos-dir", "repos",
		"-o", "sweout",
		"-i", "pallets__flask-123",
		"-i", "pallets__flask-124",
	)
	cmd.Dir = workDir

	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("gen failed: %v\nOutput: %s", err, output)
	}

	if !strings.Contains(string(output), "To run all jobs, execute: ./sweout/run_all.sh") {
		t.Errorf("gen should report the aggregate entry point, got:\n%s", output)
	}

	// One script per instance, in instance-named subdirectories
	for _, id := range []string{"pallets__flask-123", "pallets__flask-124"} {
		scriptPath := filepath.Join(workDir, "sweout", id, "main.sh")
		info, err := os.Stat(scriptPath)
		if err != nil {
			t.Fatalf("missing job script %s: %v", scriptPath, err)
		}
		if info.Mode().Perm()&0o111 != 0o111 {
			t.Errorf("%s should be executable", scriptPath)
		}
	}

	// Each script clones the shared family repo and pins its own commit
	script, err := os.ReadFile(filepath.Join(workDir, "sweout", "pallets__flask-124", "main.sh"))
	if err != nil {
		t.Fatalf("Failed to read job script: %v", err)
	}
	if !strings.Contains(string(script), "git clone "+filepath.Join("repos", "flask")) {
		t.Errorf("job script should clone the family checkout:\n%s", script)
	}
	if !strings.Contains(string(script), "git checkout bbb222") {
		t.Errorf("job script should pin its own commit:\n%s", script)
	}

	// Aggregate lists both scripts in order under a fail-fast preamble
	runAll, err := os.ReadFile(filepath.Join(workDir, "sweout", "run_all.sh"))
	if err != nil {
		t.Fatalf("Failed to read run_all: %v", err)
	}
	want := "#!/bin/bash\nset -e\n" +
		"./" + filepath.Join("sweout", "pallets__flask-123", "main.sh") + "\n" +
		"./" + filepath.Join("sweout", "pallets__flask-124", "main.sh") + "\n"
	if string(runAll) != want {
		t.Errorf("run_all = %q, want %q", runAll, want)
	}
}

// TestCLI_Gen_UnknownInstance ensures a bad id aborts before any output
func TestCLI_Gen_UnknownInstance(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping CLI integration test in short mode")
	}

	cliPath := buildCLI(t)
	workDir := t.TempDir()
	writeTestCatalog(t, workDir)

	cmd := exec.Command(cliPath, "gen", // #nosec G204 -- test code with controlled input
		"-catalog-dir", "catalog",
		"-i", "pallets__flask-123",
		"-i", "pallets__flask-999",
	)
	cmd.Dir = workDir

	output, err := cmd.CombinedOutput()
	if err == nil {
		t.Fatalf("gen should fail for an unknown instance, output:\n%s", output)
	}
	if !strings.Contains(string(output), "pallets__flask-999") {
		t.Errorf("error should name the offending id:\n%s", output)
	}

	if _, statErr := os.Stat(filepath.Join(workDir, "sweout")); !os.IsNotExist(statErr) {
		t.Error("a failed batch must not leave partial output")
	}
}

// TestCLI_List lists catalog instances through the binary
func TestCLI_List(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping CLI integration test in short mode")
	}

	cliPath := buildCLI(t)
	workDir := t.TempDir()
	writeTestCatalog(t, workDir)

	cmd := exec.Command(cliPath, "list", "-catalog-dir", "catalog") // #nosec G204 -- test code with controlled input
	cmd.Dir = workDir

	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("list failed: %v\nOutput: %s", err, output)
	}

	outputStr := string(output)
	if !strings.Contains(outputStr, "pallets__flask-123") || !strings.Contains(outputStr, "pallets__flask-124") {
		t.Errorf("list should show both instances:\n%s", outputStr)
	}
	if !strings.Contains(outputStr, "(2 total)") {
		t.Errorf("list should report the instance count:\n%s", outputStr)
	}
}
