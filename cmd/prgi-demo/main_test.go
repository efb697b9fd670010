//go:build integration

package main

import (
    "os"
    "os/exec"
    "path/filepath"
    "strings"
    "testing"
)

// buildDemo builds the prgi-demo binary in a temporary directory.
func buildDemo(t *testing.T) string {
    t.Helper()
    bin := filepath.Join(t.TempDir(), "prgi-demo")
    cmdBuild := exec.Command("go", "build", "-o", bin, "github.com/nil0x42/prgi/cmd/prgi-demo")
    cmdBuild.Env = os.Environ()
    out, err := cmdBuild.CombinedOutput()
    if err != nil {
        t.Fatalf("Failed to build prgi-demo: %v\nOutput:\n%s", err, string(out))
    }
    return bin
}

// TestMainHelp verifies the help message.
func TestMainHelp(t *testing.T) {
    out, err := exec.Command(buildDemo(t), "-h").CombinedOutput()
    if err != nil {
        t.Fatalf("Error running 'prgi-demo -h': %v\nOutput:\n%s", err, string(out))
    }
    if !strings.Contains(string(out), "Usage:") {
        t.Errorf("Expected 'Usage:' in the help output.\nGot:\n%s", string(out))
    }
}

// TestMainVersion checks the version output.
func TestMainVersion(t *testing.T) {
    out, err := exec.Command(buildDemo(t), "-version").CombinedOutput()
    if err != nil {
        t.Fatalf("Error running 'prgi-demo -version': %v\nOutput:\n%s", err, string(out))
    }
    if !strings.Contains(string(out), "prgi-demo") {
        t.Errorf("Expected 'prgi-demo' in version output.\nGot:\n%s", string(out))
    }
}

// TestMainThreads runs the threads scenario with a forced width, writing
// progress to a file.
func TestMainThreads(t *testing.T) {
    outFile := filepath.Join(t.TempDir(), "progress.txt")
    cmd := exec.Command(buildDemo(t),
        "-n", "2000000", "-threads", "3", "-columns", "100", "-lock", "-o", outFile, "threads")
    if out, err := cmd.CombinedOutput(); err != nil {
        t.Fatalf("Failed to run prgi-demo: %v\nOutput:\n%s", err, string(out))
    }
    data, err := os.ReadFile(outFile)
    if err != nil {
        t.Fatal(err)
    }
    got := string(data)
    for _, want := range []string{"Multi-threaded run (3 goroutines)", "100%", "pi = 3.14159"} {
        if !strings.Contains(got, want) {
            t.Errorf("Expected %q in output, got:\n%s", want, got)
        }
    }
}

// TestMainBadScenario checks the usage error exit status.
func TestMainBadScenario(t *testing.T) {
    cmd := exec.Command(buildDemo(t), "gui")
    out, err := cmd.CombinedOutput()
    exitErr, ok := err.(*exec.ExitError)
    if !ok || exitErr.ExitCode() != 1 {
        t.Fatalf("Expected exit status 1, got %v\nOutput:\n%s", err, string(out))
    }
    if !strings.Contains(string(out), "unknown scenario") {
        t.Errorf("Expected the error in output, got:\n%s", string(out))
    }
}
