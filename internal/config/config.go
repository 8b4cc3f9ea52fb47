package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-notes2script/internal/budget"
	"github.com/alnah/go-notes2script/internal/dateutil"
	"github.com/alnah/go-notes2script/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field limits.
const (
	MaxPathLength     = 4096
	MaxPresetLength   = 64
	MaxAllocationLen  = 20
	MaxStyleLength    = 64
	MaxMinutes        = 180.0
	MaxWordsPerMinute = 400
	MaxSectionsLimit  = 50
	MaxSentencesLimit = 50
	MaxOverheadWords  = 1000
)

// configDirName is the directory searched under the user config dir.
const configDirName = "go-notes2script"

// Config holds all configuration for transcript generation.
type Config struct {
	Input      InputConfig      `yaml:"input"`
	Output     OutputConfig     `yaml:"output"`
	Transcript TranscriptConfig `yaml:"transcript"`
	Budget     BudgetConfig     `yaml:"budget"`
	Assets     AssetsConfig     `yaml:"assets"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // empty = must specify
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir      string `yaml:"defaultDir"`      // empty = next to the source
	Outline         bool   `yaml:"outline"`         // also write <name>_outline.md
	HTML            bool   `yaml:"html"`            // also write <name>.html
	Style           string `yaml:"style"`           // preview stylesheet name
	TimestampFormat string `yaml:"timestampFormat"` // dateutil format or preset
}

// TranscriptConfig defines the transcript shape.
type TranscriptConfig struct {
	Minutes        float64 `yaml:"minutes"`
	Preset         string  `yaml:"preset"`
	WordsPerMinute int     `yaml:"wordsPerMinute"`
	MaxSections    int     `yaml:"maxSections"`
	MaxSentences   int     `yaml:"maxSentences"`
	Allocation     string  `yaml:"allocation"` // "even" or "proportional"
}

// BudgetConfig defines the fixed word allowances.
type BudgetConfig struct {
	Hook         int `yaml:"hook"`
	Intro        int `yaml:"intro"`
	Recap        int `yaml:"recap"`
	CallToAction int `yaml:"callToAction"`
	MinViable    int `yaml:"minViable"`
}

// Overhead converts the allowances for the budget allocator.
func (b BudgetConfig) Overhead() budget.Overhead {
	return budget.Overhead{
		Hook:         b.Hook,
		Intro:        b.Intro,
		Recap:        b.Recap,
		CallToAction: b.CallToAction,
	}
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // empty = embedded assets only
}

// Validate checks ranges, enumerations and field lengths.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	lengths := []struct {
		name  string
		value string
		max   int
	}{
		{"input.defaultDir", c.Input.DefaultDir, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"output.style", c.Output.Style, MaxStyleLength},
		{"transcript.preset", c.Transcript.Preset, MaxPresetLength},
		{"transcript.allocation", c.Transcript.Allocation, MaxAllocationLen},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
	}
	for _, f := range lengths {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	t := c.Transcript
	if math.IsNaN(t.Minutes) || t.Minutes <= 0 || t.Minutes > MaxMinutes {
		return fmt.Errorf("%w: transcript.minutes must be in (0, %g], got %g", ErrInvalidValue, MaxMinutes, t.Minutes)
	}
	if err := validateRange("transcript.wordsPerMinute", t.WordsPerMinute, 1, MaxWordsPerMinute); err != nil {
		return err
	}
	if err := validateRange("transcript.maxSections", t.MaxSections, 1, MaxSectionsLimit); err != nil {
		return err
	}
	if err := validateRange("transcript.maxSentences", t.MaxSentences, 1, MaxSentencesLimit); err != nil {
		return err
	}
	if _, err := budget.ParseStrategy(t.Allocation); err != nil {
		return fmt.Errorf("%w: transcript.allocation: %v", ErrInvalidValue, err)
	}

	b := c.Budget
	for _, f := range []struct {
		name  string
		value int
	}{
		{"budget.hook", b.Hook},
		{"budget.intro", b.Intro},
		{"budget.recap", b.Recap},
		{"budget.callToAction", b.CallToAction},
		{"budget.minViable", b.MinViable},
	} {
		if err := validateRange(f.name, f.value, 0, MaxOverheadWords); err != nil {
			return err
		}
	}

	if c.Output.TimestampFormat != "" {
		if _, err := dateutil.ParseLayout(c.Output.TimestampFormat); err != nil {
			return fmt.Errorf("%w: output.timestampFormat: %v", ErrInvalidValue, err)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

func validateRange(fieldName string, value, lo, hi int) error {
	if value < lo || value > hi {
		return fmt.Errorf("%w: %s must be between %d and %d, got %d", ErrInvalidValue, fieldName, lo, hi, value)
	}
	return nil
}

// DefaultConfig returns the built-in settings: a 6-minute neutral transcript
// at 150 words per minute with the 40/100/80/30 overhead split.
func DefaultConfig() *Config {
	overhead := budget.DefaultOverhead()
	return &Config{
		Output: OutputConfig{TimestampFormat: dateutil.DefaultTimestampFormat},
		Transcript: TranscriptConfig{
			Minutes:        6.0,
			Preset:         "neutral",
			WordsPerMinute: budget.DefaultWordsPerMinute,
			MaxSections:    5,
			MaxSentences:   10,
			Allocation:     budget.StrategyEven.String(),
		},
		Budget: BudgetConfig{
			Hook:         overhead.Hook,
			Intro:        overhead.Intro,
			Recap:        overhead.Recap,
			CallToAction: overhead.CallToAction,
			MinViable:    budget.DefaultMinViable,
		},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys absent from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrConfigParse, yamlutil.Describe(err))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// SearchPaths lists the files LoadConfig tries for a config name, in order:
// ./name.yaml, ./name.yml, then the same names under
// <user config dir>/go-notes2script/.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, configDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths(name).
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
