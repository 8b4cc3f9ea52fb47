package main

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	notes2script "github.com/alnah/go-notes2script"
)

// ---------------------------------------------------------------------------
// TestRunNormalize - Canonical form and statistics
// ---------------------------------------------------------------------------

func TestRunNormalize(t *testing.T) {
	t.Parallel()

	const messy = "# Widgets\r\n\r\n\r\n## What is a Widget\r\nA widget is not complex.   \r\n"
	dir := setupTestDir(t, map[string]string{"notes.md": messy})
	input := filepath.Join(dir, "notes.md")

	t.Run("stdout", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(nil)
		if err := runNormalize([]string{input}, env.Environment); err != nil {
			t.Fatalf("runNormalize() error = %v", err)
		}
		if got, want := env.stdout.String(), notes2script.Normalize(messy); got != want {
			t.Errorf("stdout = %q, want %q", got, want)
		}
	})

	t.Run("output file", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(t.TempDir(), "clean.md")
		env := newTestEnv(nil)
		if err := runNormalize([]string{"-o", out, input}, env.Environment); err != nil {
			t.Fatalf("runNormalize() error = %v", err)
		}
		if env.stdout.Len() != 0 {
			t.Errorf("stdout = %q, want empty", env.stdout.String())
		}
		if got := readFile(t, out); got != notes2script.Normalize(messy) {
			t.Errorf("file content = %q", got)
		}
	})

	t.Run("stats", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(nil)
		if err := runNormalize([]string{"--stats", input}, env.Environment); err != nil {
			t.Fatalf("runNormalize() error = %v", err)
		}
		out := env.stdout.String()
		for _, want := range []string{"headingCount: 2", "hasCode: false", "Widgets", "What is a Widget"} {
			if !strings.Contains(out, want) {
				t.Errorf("stats output missing %q:\n%s", want, out)
			}
		}
	})
}

func TestRunNormalize_Errors(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{"a.md": "# A", "b.md": "# B"})

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"no input", nil, ErrNoInput},
		{"two inputs", []string{filepath.Join(dir, "a.md"), filepath.Join(dir, "b.md")}, ErrTooManyArgs},
		{"missing file", []string{filepath.Join(dir, "missing.md")}, ErrReadMarkdown},
		{"unwritable output", []string{"-o", filepath.Join(dir, "nope", "deeper", "x.md"), filepath.Join(dir, "a.md")}, ErrWriteOutput},
		{"bad flag", []string{"--bogus"}, ErrInvalidFlags},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := runNormalize(tt.args, newTestEnv(nil).Environment)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("runNormalize() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
