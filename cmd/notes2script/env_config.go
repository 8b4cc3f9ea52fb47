package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-notes2script/internal/config"
)

// envPrefix marks the variables read by the CLI.
const envPrefix = "NOTES2SCRIPT_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath     string  // NOTES2SCRIPT_CONFIG: config file name or path
	Preset         string  // NOTES2SCRIPT_PRESET: style preset
	Minutes        float64 // NOTES2SCRIPT_MINUTES: target duration
	WordsPerMinute int     // NOTES2SCRIPT_WPM: speaking rate
	InputDir       string  // NOTES2SCRIPT_INPUT_DIR: default input directory
	OutputDir      string  // NOTES2SCRIPT_OUTPUT_DIR: default output directory
	AssetPath      string  // NOTES2SCRIPT_ASSET_PATH: custom presets and styles
	Workers        int     // NOTES2SCRIPT_WORKERS: parallel workers
}

// knownEnvVars lists valid NOTES2SCRIPT_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"NOTES2SCRIPT_CONFIG":     true,
	"NOTES2SCRIPT_PRESET":     true,
	"NOTES2SCRIPT_MINUTES":    true,
	"NOTES2SCRIPT_WPM":        true,
	"NOTES2SCRIPT_INPUT_DIR":  true,
	"NOTES2SCRIPT_OUTPUT_DIR": true,
	"NOTES2SCRIPT_ASSET_PATH": true,
	"NOTES2SCRIPT_WORKERS":    true,
}

// loadEnvConfig reads configuration through getenv.
// Unparsable or non-positive numbers are ignored, not errors.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("NOTES2SCRIPT_CONFIG"),
		Preset:     getenv("NOTES2SCRIPT_PRESET"),
		InputDir:   getenv("NOTES2SCRIPT_INPUT_DIR"),
		OutputDir:  getenv("NOTES2SCRIPT_OUTPUT_DIR"),
		AssetPath:  getenv("NOTES2SCRIPT_ASSET_PATH"),
	}

	if minutes := getenv("NOTES2SCRIPT_MINUTES"); minutes != "" {
		if m, err := strconv.ParseFloat(minutes, 64); err == nil && m > 0 {
			cfg.Minutes = m
		}
	}
	if wpm := getenv("NOTES2SCRIPT_WPM"); wpm != "" {
		if n, err := strconv.Atoi(wpm); err == nil && n > 0 {
			cfg.WordsPerMinute = n
		}
	}
	if workers := getenv("NOTES2SCRIPT_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars writes warnings for unrecognized NOTES2SCRIPT_* variables.
// Helps catch typos like NOTES2SCRIPT_MINUTE.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig applies environment values over the loaded config.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeGenerateFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Preset != "" {
		cfg.Transcript.Preset = env.Preset
	}
	if env.Minutes > 0 {
		cfg.Transcript.Minutes = env.Minutes
	}
	if env.WordsPerMinute > 0 {
		cfg.Transcript.WordsPerMinute = env.WordsPerMinute
	}
	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.AssetPath != "" {
		cfg.Assets.BasePath = env.AssetPath
	}
}
