package main

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	notes2script "github.com/alnah/go-notes2script"
	"github.com/alnah/go-notes2script/internal/config"
)

func runGenerateArgs(t *testing.T, env *testEnv, args ...string) error {
	t.Helper()
	return runGenerateCmd(context.Background(), args, env.Environment)
}

// ---------------------------------------------------------------------------
// TestGenerate_SingleFile - Outputs written next to the note
// ---------------------------------------------------------------------------

func TestGenerate_SingleFile(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{"widgets.md": widgetsNotes})
	env := newTestEnv(nil)

	if err := runGenerateArgs(t, env, filepath.Join(dir, "widgets.md"), "-m", "3"); err != nil {
		t.Fatalf("runGenerate() error = %v", err)
	}

	got := readFile(t, filepath.Join(dir, "widgets_transcript.md"))

	gen, err := notes2script.NewGenerator(notes2script.WithClock(fixedNow))
	if err != nil {
		t.Fatal(err)
	}
	want, err := gen.Generate(context.Background(), notes2script.Input{Markdown: widgetsNotes, Minutes: 3, Preset: "neutral"})
	if err != nil {
		t.Fatal(err)
	}
	if got != string(want.Transcript) {
		t.Errorf("CLI transcript differs from library output:\n%s", got)
	}

	if !strings.Contains(env.stdout.String(), "Created "+filepath.Join(dir, "widgets_transcript.md")) {
		t.Errorf("stdout = %q", env.stdout)
	}
	assertMissing(t, filepath.Join(dir, "widgets_outline.md"))
	assertMissing(t, filepath.Join(dir, "widgets_preview.html"))
}

func TestGenerate_ExtraOutputs(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{"widgets.md": widgetsNotes})
	out := filepath.Join(dir, "out")
	env := newTestEnv(nil)

	err := runGenerateArgs(t, env, filepath.Join(dir, "widgets.md"), "-o", out, "--outline", "--html", "-v")
	if err != nil {
		t.Fatalf("runGenerate() error = %v", err)
	}

	if !strings.HasPrefix(readFile(t, filepath.Join(out, "widgets_outline.md")), "# Transcript Outline") {
		t.Error("outline file has unexpected content")
	}
	if !strings.Contains(readFile(t, filepath.Join(out, "widgets_preview.html")), "<title>Widgets</title>") {
		t.Error("preview file has unexpected content")
	}
	stdout := env.stdout.String()
	if !strings.Contains(stdout, " -> "+filepath.Join(out, "widgets_transcript.md")) || !strings.Contains(stdout, "  + ") {
		t.Errorf("verbose stdout = %q", stdout)
	}
	if !strings.Contains(env.stderr.String(), "Workers: ") {
		t.Errorf("verbose stderr = %q", env.stderr)
	}
}

// ---------------------------------------------------------------------------
// TestGenerate_Batch - Directory input
// ---------------------------------------------------------------------------

func TestGenerate_Batch(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{
		"a.md":              "# A\n## One\nfirst",
		"nested/b.markdown": "# B\n## Two\nsecond",
		"nested/c.txt":      "ignored",
		"old_transcript.md": "# previous output",
		".hidden/d.md":      "# hidden",
		"nested/deep/e.md":  "# E",
	})
	out := filepath.Join(t.TempDir(), "scripts")
	env := newTestEnv(nil)

	if err := runGenerateArgs(t, env, dir, "-o", out, "-w", "2"); err != nil {
		t.Fatalf("runGenerate() error = %v", err)
	}

	assertExists(t, filepath.Join(out, "a_transcript.md"))
	assertExists(t, filepath.Join(out, "nested", "b_transcript.md"))
	assertExists(t, filepath.Join(out, "nested", "deep", "e_transcript.md"))
	assertMissing(t, filepath.Join(out, "old_transcript_transcript.md"))
	assertMissing(t, filepath.Join(out, ".hidden", "d_transcript.md"))

	if !strings.Contains(env.stdout.String(), "3 succeeded, 0 failed") {
		t.Errorf("stdout = %q, want batch summary", env.stdout)
	}
}

func TestGenerate_BatchPartialFailure(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{"a.md": "# A"})
	env := newTestEnv(nil)

	files := []noteFile{
		{InputPath: filepath.Join(dir, "a.md")},
		{InputPath: filepath.Join(dir, "missing.md")},
	}
	gen, err := notes2script.NewGenerator(notes2script.WithClock(fixedNow))
	if err != nil {
		t.Fatal(err)
	}
	results := generateBatch(context.Background(), gen, files, &generateParams{}, 2)

	if results[0].Err != nil {
		t.Errorf("a.md failed: %v", results[0].Err)
	}
	if !errors.Is(results[1].Err, ErrReadMarkdown) {
		t.Errorf("missing.md error = %v, want ErrReadMarkdown", results[1].Err)
	}

	failed := printResults(results, false, false, env.Environment)
	if failed != 1 {
		t.Errorf("printResults() = %d, want 1", failed)
	}
	if !strings.Contains(env.stderr.String(), "FAILED "+files[1].InputPath) {
		t.Errorf("stderr = %q", env.stderr)
	}
	if !strings.Contains(env.stdout.String(), "1 succeeded, 1 failed") {
		t.Errorf("stdout = %q", env.stdout)
	}
}

func TestGenerateBatch_Canceled(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{"a.md": "# A", "b.md": "# B"})
	gen, err := notes2script.NewGenerator()
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	files := []noteFile{{InputPath: filepath.Join(dir, "a.md")}, {InputPath: filepath.Join(dir, "b.md")}}
	for _, r := range generateBatch(ctx, gen, files, &generateParams{}, 1) {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("%s error = %v, want context.Canceled", r.InputPath, r.Err)
		}
	}
	assertMissing(t, filepath.Join(dir, "a_transcript.md"))
}

func TestGenerateBatch_Empty(t *testing.T) {
	t.Parallel()

	if got := generateBatch(context.Background(), nil, nil, &generateParams{}, 4); got != nil {
		t.Errorf("generateBatch(nil) = %v, want nil", got)
	}
}

// ---------------------------------------------------------------------------
// TestGenerate_Precedence - flags > env > config > defaults
// ---------------------------------------------------------------------------

func TestGenerate_Precedence(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{
		"widgets.md": widgetsNotes,
		"team.yaml":  "transcript:\n  minutes: 10\n  preset: professional\n",
	})
	cfgPath := filepath.Join(dir, "team.yaml")
	note := filepath.Join(dir, "widgets.md")
	transcript := filepath.Join(dir, "widgets_transcript.md")

	tests := []struct {
		name  string
		vars  map[string]string
		args  []string
		wants []string
	}{
		{
			name:  "defaults",
			args:  []string{note},
			wants: []string{"6.0 minutes (~900 words)", "**Style Preset**: neutral"},
		},
		{
			name:  "config file",
			args:  []string{note, "-c", cfgPath},
			wants: []string{"10.0 minutes (~1500 words)", "**Style Preset**: professional"},
		},
		{
			name:  "env overrides config",
			vars:  map[string]string{"NOTES2SCRIPT_CONFIG": cfgPath, "NOTES2SCRIPT_MINUTES": "4", "NOTES2SCRIPT_WPM": "100"},
			args:  []string{note},
			wants: []string{"4.0 minutes (~400 words)", "**Style Preset**: professional"},
		},
		{
			name:  "flags override env",
			vars:  map[string]string{"NOTES2SCRIPT_MINUTES": "4", "NOTES2SCRIPT_PRESET": "professional"},
			args:  []string{note, "--minutes", "5", "--preset", "casual"},
			wants: []string{"5.0 minutes (~750 words)", "**Style Preset**: xiaohongshu"},
		},
	}

	// Subtests share one output file, so they run sequentially.
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(tt.vars)
			if err := runGenerateArgs(t, env, tt.args...); err != nil {
				t.Fatalf("runGenerate() error = %v", err)
			}
			got := readFile(t, transcript)
			for _, want := range tt.wants {
				if !strings.Contains(got, want) {
					t.Errorf("transcript missing %q", want)
				}
			}
		})
	}
}

func TestGenerate_InputFromConfigAndEnv(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{"notes/widgets.md": widgetsNotes})
	out := filepath.Join(dir, "out")
	env := newTestEnv(map[string]string{
		"NOTES2SCRIPT_INPUT_DIR":  filepath.Join(dir, "notes"),
		"NOTES2SCRIPT_OUTPUT_DIR": out,
	})

	if err := runGenerateArgs(t, env, "-q"); err != nil {
		t.Fatalf("runGenerate() error = %v", err)
	}
	assertExists(t, filepath.Join(out, "widgets_transcript.md"))
}

// ---------------------------------------------------------------------------
// TestGenerate_Warnings - Advisories reach stderr with hints
// ---------------------------------------------------------------------------

func TestGenerate_Warnings(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{"widgets.md": widgetsNotes})
	note := filepath.Join(dir, "widgets.md")

	env := newTestEnv(nil)
	if err := runGenerateArgs(t, env, note, "--preset", "shouty", "--minutes", "2"); err != nil {
		t.Fatalf("runGenerate() error = %v", err)
	}
	stderr := env.stderr.String()
	for _, want := range []string{
		"warning: " + note + ": unknown style preset",
		"available presets: neutral, xiaohongshu, professional",
		"use --minutes between 3 and 15",
		"raise --minutes",
	} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %q\n%s", want, stderr)
		}
	}

	quiet := newTestEnv(nil)
	if err := runGenerateArgs(t, quiet, note, "--preset", "shouty", "-q"); err != nil {
		t.Fatal(err)
	}
	if quiet.stderr.Len() != 0 || quiet.stdout.Len() != 0 {
		t.Errorf("quiet run printed: stdout %q, stderr %q", quiet.stdout, quiet.stderr)
	}
}

// ---------------------------------------------------------------------------
// TestGenerate_Errors - Usage and I/O failures
// ---------------------------------------------------------------------------

func TestGenerate_Errors(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{
		"widgets.md":  widgetsNotes,
		"bad.yaml":    "transcript:\n  minuts: 3\n",
		"empty/x.txt": "not a note",
	})
	note := filepath.Join(dir, "widgets.md")

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "negative workers", args: []string{note, "-w", "-1"}, wantErr: ErrInvalidWorkerCount},
		{name: "too many workers", args: []string{note, "-w", "1000"}, wantErr: ErrInvalidWorkerCount},
		{name: "two inputs", args: []string{note, note}, wantErr: ErrTooManyArgs},
		{name: "no markdown in directory", args: []string{filepath.Join(dir, "empty")}, wantErr: ErrNoMarkdownFiles},
		{name: "unknown allocation", args: []string{note, "--allocation", "random"}, wantErr: config.ErrInvalidValue},
		{name: "missing asset path", args: []string{note, "--asset-path", filepath.Join(dir, "nope")}, wantErr: notes2script.ErrInvalidAssetPath},
		{name: "unknown style", args: []string{note, "--html", "--style", "missing"}, wantErr: notes2script.ErrStyleNotFound},
		{name: "invalid style name", args: []string{note, "--style", "../x"}, wantErr: notes2script.ErrInvalidStyle},
		{name: "no input", args: nil, wantErr: ErrNoInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := runGenerateArgs(t, newTestEnv(nil), tt.args...)
			if err == nil {
				t.Fatal("runGenerate() expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("runGenerate() error = %v, want %v", err, tt.wantErr)
			}
			if exitCodeFor(err) == ExitGeneral {
				t.Errorf("error %v should map to a specific exit code", err)
			}
		})
	}

	t.Run("bad config", func(t *testing.T) {
		t.Parallel()

		err := runGenerateArgs(t, newTestEnv(nil), note, "-c", filepath.Join(dir, "bad.yaml"))
		if exitCodeFor(err) != ExitUsage {
			t.Errorf("error = %v, want usage error", err)
		}
	})

	t.Run("config name not found lists paths", func(t *testing.T) {
		t.Parallel()

		err := runGenerateArgs(t, newTestEnv(nil), note, "-c", "no-such-team-config")
		if err == nil || !strings.Contains(err.Error(), "hint: use --config") {
			t.Errorf("error = %v, want config hint", err)
		}
	})
}

func TestMergeGenerateFlags(t *testing.T) {
	t.Parallel()

	cfg, err := loadConfig("", &envConfig{})
	if err != nil {
		t.Fatal(err)
	}
	before := *cfg
	mergeGenerateFlags(&generateFlags{}, cfg)
	if *cfg != before {
		t.Error("zero flags should not change config")
	}

	mergeGenerateFlags(&generateFlags{
		transcript: transcriptFlags{minutes: 7, preset: "professional", wpm: 120, maxSections: 3, allocation: "proportional"},
		outputs:    outputFlags{outline: true, html: true, style: "dark"},
		assets:     assetFlags{assetPath: "/assets"},
	}, cfg)
	if cfg.Transcript.Minutes != 7 || cfg.Transcript.Preset != "professional" || cfg.Transcript.WordsPerMinute != 120 ||
		cfg.Transcript.MaxSections != 3 || cfg.Transcript.Allocation != "proportional" {
		t.Errorf("Transcript = %+v", cfg.Transcript)
	}
	if !cfg.Output.Outline || !cfg.Output.HTML || cfg.Output.Style != "dark" || cfg.Assets.BasePath != "/assets" {
		t.Errorf("Output = %+v, Assets = %+v", cfg.Output, cfg.Assets)
	}
}
