package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCLI runs the command without touching the user's config file
func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	args = append([]string{"-config=", "-color=never"}, args...)
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeProgram(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prog.ppl")
	if err := os.WriteFile(path, []byte(source), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunProgram(t *testing.T) {
	path := writeProgram(t, "INTEGER x\nASSIGN x 5\nCHS x\nPRINT x\nHLT\n")

	code, stdout, stderr := runCLI(t, "", path)
	if code != 0 {
		t.Errorf("Expected exit 0, got %d (stderr %q)", code, stderr)
	}
	want := "x = -5\n--- final state ---\nx (int) = -5\n--------------------\n"
	if stdout != want {
		t.Errorf("Expected:\n%s\ngot:\n%s", want, stdout)
	}
	if stderr != "" {
		t.Errorf("Unexpected stderr %q", stderr)
	}
}

func TestRunFaultingProgramExitsZero(t *testing.T) {
	path := writeProgram(t, "LIST l\nHEAD l x\n")

	code, stdout, _ := runCLI(t, "", path)
	if code != 0 {
		t.Errorf("Expected exit 0 after a runtime fault, got %d", code)
	}
	if !strings.HasPrefix(stdout, "Runtime error at line 2\n  HEAD l x\n  empty list access") {
		t.Errorf("Unexpected output:\n%s", stdout)
	}
	if !strings.HasSuffix(stdout, "--- final state ---\nl (list) = []\n--------------------\n") {
		t.Errorf("Final state missing:\n%s", stdout)
	}
}

func TestRunMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.ppl")

	code, stdout, stderr := runCLI(t, "", path)
	if code != 1 {
		t.Errorf("Expected exit 1, got %d", code)
	}
	if stderr != "Error: file not found: "+path+"\n" {
		t.Errorf("Unexpected stderr %q", stderr)
	}
	if stdout != "" {
		t.Errorf("Unexpected stdout %q", stdout)
	}
}

func TestRunUsage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no program", nil},
		{"two programs", []string{"a.ppl", "b.ppl"}},
		{"unknown flag", []string{"-bogus"}},
		{"bad color", []string{"-color=sometimes", "a.ppl"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, "", tt.args...)
			if code != 2 {
				t.Errorf("Expected exit 2, got %d", code)
			}
			if stderr == "" {
				t.Error("Expected a message on stderr")
			}
		})
	}
}

func TestRunLicense(t *testing.T) {
	code, stdout, _ := runCLI(t, "", "--license")
	if code != 0 {
		t.Errorf("Expected exit 0, got %d", code)
	}
	if !strings.Contains(stdout, "MIT License") {
		t.Errorf("License text missing:\n%s", stdout)
	}
}

func TestRunInteractivePiped(t *testing.T) {
	input := "INTEGER x\nASSIGN x 3\nADD x y\nPRINT x\nexit\nPRINT x\n"

	code, stdout, _ := runCLI(t, input, "-i")
	if code != 0 {
		t.Errorf("Expected exit 0, got %d", code)
	}
	want := "Runtime error at line 3\n" +
		"  ADD x y\n" +
		"  undeclared identifier: \"y\"\n" +
		"x = 3\n" +
		"--- final state ---\n" +
		"x (int) = 3\n" +
		"--------------------\n"
	if stdout != want {
		t.Errorf("Expected:\n%s\ngot:\n%s", want, stdout)
	}
}

func TestRunInteractiveStopsAtHalt(t *testing.T) {
	code, stdout, _ := runCLI(t, "INTEGER x\nHLT\nPRINT x\n", "-i")
	if code != 0 {
		t.Errorf("Expected exit 0, got %d", code)
	}
	if strings.Contains(stdout, "x = 0") {
		t.Errorf("Line after HLT was executed:\n%s", stdout)
	}
}

func TestRunDebugLogsToStderr(t *testing.T) {
	path := writeProgram(t, "INTEGER x\nASSIGN x 2\n")

	_, stdout, stderr := runCLI(t, "", "-d", path)
	if !strings.Contains(stderr, "[DEBUG:math] x := 2") {
		t.Errorf("Expected debug output on stderr, got %q", stderr)
	}
	if strings.Contains(stdout, "DEBUG") {
		t.Errorf("Debug output leaked into program output:\n%s", stdout)
	}
}
