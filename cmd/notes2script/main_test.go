package main

// Notes:
// - runMain: we test dispatch and exit codes. Generation details are covered
//   by generate_test.go.
// - main itself is not tested: it only wires automaxprocs, signals and os.Exit.

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRunMain - Command dispatch and exit codes
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{"widgets.md": widgetsNotes, "notes.txt": "x"})
	note := filepath.Join(dir, "widgets.md")

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{name: "no command", args: nil, wantCode: ExitUsage, wantStderr: "Usage: notes2script"},
		{name: "version", args: []string{"version"}, wantCode: ExitSuccess, wantStdout: "go-notes2script dev\n"},
		{name: "help", args: []string{"help"}, wantCode: ExitSuccess, wantStdout: "Commands:"},
		{name: "help generate", args: []string{"help", "generate"}, wantCode: ExitSuccess, wantStdout: "--minutes"},
		{name: "help unknown", args: []string{"help", "bogus"}, wantCode: ExitUsage, wantStderr: "unknown command: bogus"},
		{name: "unknown command", args: []string{"bogus"}, wantCode: ExitUsage, wantStderr: "unknown command: bogus"},
		{name: "flag help", args: []string{"generate", "-h"}, wantCode: ExitSuccess, wantStderr: "Usage: notes2script generate"},
		{name: "bad flag", args: []string{"generate", "--nope", note}, wantCode: ExitUsage, wantStderr: "invalid flags"},
		{name: "bad minutes", args: []string{"generate", "--minutes=-4", note}, wantCode: ExitUsage, wantStderr: "transcript.minutes"},
		{name: "missing input", args: []string{"generate", filepath.Join(dir, "missing.md")}, wantCode: ExitIO, wantStderr: "hint:"},
		{name: "wrong extension", args: []string{"generate", filepath.Join(dir, "notes.txt")}, wantCode: ExitUsage, wantStderr: ".txt"},
		{name: "no input", args: []string{"generate"}, wantCode: ExitIO, wantStderr: "no input specified"},
		{name: "missing config", args: []string{"generate", "-c", filepath.Join(dir, "none.yaml"), note}, wantCode: ExitUsage, wantStderr: "config file not found"},
		{name: "completion bad shell", args: []string{"completion", "tcsh"}, wantCode: ExitUsage, wantStderr: "unsupported shell"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(nil)
			code := runMain(context.Background(), append([]string{"notes2script"}, tt.args...), env.Environment)

			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nstderr: %s", code, tt.wantCode, env.stderr)
			}
			if tt.wantStdout != "" && !strings.Contains(env.stdout.String(), tt.wantStdout) {
				t.Errorf("stdout %q missing %q", env.stdout, tt.wantStdout)
			}
			if tt.wantStderr != "" && !strings.Contains(env.stderr.String(), tt.wantStderr) {
				t.Errorf("stderr %q missing %q", env.stderr, tt.wantStderr)
			}
		})
	}
}

func TestRunMain_BareMarkdownRunsGenerate(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{"widgets.md": widgetsNotes})
	env := newTestEnv(nil)

	code := runMain(context.Background(), []string{"notes2script", filepath.Join(dir, "widgets.md"), "-q"}, env.Environment)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, env.stderr)
	}
	assertExists(t, filepath.Join(dir, "widgets_transcript.md"))
	if env.stdout.Len() != 0 {
		t.Errorf("quiet run wrote to stdout: %q", env.stdout)
	}
}

func TestRunMain_WarnsUnknownEnvVars(t *testing.T) {
	t.Parallel()

	env := newTestEnv(map[string]string{"NOTES2SCRIPT_MINUTE": "5", "NOTES2SCRIPT_WPM": "140"})
	runMain(context.Background(), []string{"notes2script", "version"}, env.Environment)

	if !strings.Contains(env.stderr.String(), "unknown environment variable NOTES2SCRIPT_MINUTE") {
		t.Errorf("stderr = %q, want typo warning", env.stderr)
	}
	if strings.Contains(env.stderr.String(), "NOTES2SCRIPT_WPM") {
		t.Error("known variable should not warn")
	}
}

// ---------------------------------------------------------------------------
// TestIsCommand - Command name detection
// ---------------------------------------------------------------------------

func TestIsCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"generate", true},
		{"normalize", true},
		{"presets", true},
		{"completion", true},
		{"version", true},
		{"help", true},
		{"foo", false},
		{"", false},
		{"notes.md", false},
		{"Generate", false}, // case sensitive
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := isCommand(tt.input); got != tt.want {
				t.Errorf("isCommand(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLooksLikeMarkdown(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tests := map[string]bool{
		"notes.md":                        true,
		"NOTES.MARKDOWN":                  true,
		"notes.txt":                       false,
		dir:                               true,
		filepath.Join(dir, "missing-dir"): false,
	}
	for in, want := range tests {
		if got := looksLikeMarkdown(in); got != want {
			t.Errorf("looksLikeMarkdown(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestWantsVerbose(t *testing.T) {
	t.Parallel()

	if !wantsVerbose([]string{"generate", "-v", "x.md"}) || !wantsVerbose([]string{"--verbose"}) {
		t.Error("verbose flag not detected")
	}
	if wantsVerbose([]string{"generate", "--version-notes"}) {
		t.Error("unexpected verbose detection")
	}
}
