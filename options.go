package notes2script

import (
	"fmt"
	"math"
	"time"
)

// Option configures a Generator.
type Option func(*Generator)

// generatorConfig holds internal configuration for Generator.
type generatorConfig struct {
	minutes         float64
	wordsPerMinute  int
	overhead        Overhead
	minViable       int
	maxSections     int
	maxSentences    int
	allocation      Allocation
	clock           func() time.Time
	assetPath       string
	assetLoader     AssetLoader
	timestampFormat string
	previewStyle    string
}

// Generator defaults.
const (
	DefaultMaxSections  = 5
	DefaultMaxSentences = 10
	DefaultMinViable    = 100
)

// DefaultTimestampFormat renders the Generated line as "2026-01-02 15:04".
const DefaultTimestampFormat = "YYYY-MM-DD HH:mm"

// WithMinutes sets the duration used when Input.Minutes is zero.
// Panics if m is not a positive finite number.
func WithMinutes(m float64) Option {
	if m <= 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		panic(fmt.Sprintf("notes2script: WithMinutes must be positive, got %v", m))
	}
	return func(g *Generator) { g.cfg.minutes = m }
}

// WithWordsPerMinute sets the speaking rate.
// Panics if n <= 0 (programmer error, similar to time.NewTicker).
func WithWordsPerMinute(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("notes2script: WithWordsPerMinute must be positive, got %d", n))
	}
	return func(g *Generator) { g.cfg.wordsPerMinute = n }
}

// WithOverhead sets the allowances of the fixed segments.
// Panics if any allowance is negative.
func WithOverhead(o Overhead) Option {
	if o.Hook < 0 || o.Intro < 0 || o.Recap < 0 || o.CallToAction < 0 {
		panic(fmt.Sprintf("notes2script: WithOverhead allowances must not be negative, got %+v", o))
	}
	return func(g *Generator) { g.cfg.overhead = o }
}

// WithMinViableWords sets the section budget below which a warning is raised.
// Panics if n < 0.
func WithMinViableWords(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("notes2script: WithMinViableWords must not be negative, got %d", n))
	}
	return func(g *Generator) { g.cfg.minViable = n }
}

// WithMaxSections caps the sections narrated as main segments. Every section
// still appears in the coverage check.
// Panics if n <= 0.
func WithMaxSections(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("notes2script: WithMaxSections must be positive, got %d", n))
	}
	return func(g *Generator) { g.cfg.maxSections = n }
}

// WithMaxSentences caps the sentences narrated per section.
// Panics if n <= 0.
func WithMaxSentences(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("notes2script: WithMaxSentences must be positive, got %d", n))
	}
	return func(g *Generator) { g.cfg.maxSentences = n }
}

// WithAllocation selects the section allocation strategy.
// Panics on an unknown strategy.
func WithAllocation(a Allocation) Option {
	if _, err := a.strategy(); err != nil {
		panic(fmt.Sprintf("notes2script: %v", err))
	}
	return func(g *Generator) { g.cfg.allocation = a }
}

// WithClock sets the time source of the Generated line.
// Panics if now is nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("notes2script: WithClock requires a non-nil function")
	}
	return func(g *Generator) { g.cfg.clock = now }
}

// WithTimestampFormat sets the Generated line format: tokens such as
// "DD/MM/YYYY HH:mm" or a preset name (iso, date, european, us, long).
// NewGenerator rejects an invalid format.
func WithTimestampFormat(format string) Option {
	return func(g *Generator) { g.cfg.timestampFormat = format }
}

// WithAssetPath loads presets and styles from a directory, falling back to
// the embedded ones. NewGenerator rejects an invalid directory.
func WithAssetPath(path string) Option {
	return func(g *Generator) { g.cfg.assetPath = path }
}

// WithAssetLoader sets a custom asset source. It takes precedence over
// WithAssetPath.
func WithAssetLoader(l AssetLoader) Option {
	return func(g *Generator) { g.cfg.assetLoader = l }
}

// WithPreviewStyle selects the stylesheet of the HTML preview.
func WithPreviewStyle(name string) Option {
	return func(g *Generator) { g.cfg.previewStyle = name }
}
