package notes2script

import (
	"context"
	"fmt"
	"time"

	"github.com/alnah/go-notes2script/internal/assets"
	"github.com/alnah/go-notes2script/internal/budget"
	"github.com/alnah/go-notes2script/internal/dateutil"
	"github.com/alnah/go-notes2script/internal/normalize"
	"github.com/alnah/go-notes2script/internal/outline"
	"github.com/alnah/go-notes2script/internal/render"
	"github.com/alnah/go-notes2script/internal/style"
	"github.com/alnah/go-notes2script/internal/transcript"
)

// Compile-time interface implementation checks.
var (
	_ AssetLoader      = (*assets.AssetResolver)(nil)
	_ render.Converter = (*render.GoldmarkConverter)(nil)
)

// Generator runs the notes-to-transcript pipeline: normalize, parse,
// allocate, narrate, assemble. A Generator holds no mutable state after
// construction and is safe for concurrent use.
type Generator struct {
	cfg       generatorConfig
	layout    string
	strategy  budget.Strategy
	registry  *style.Registry
	previewer *render.Previewer
}

// NewGenerator creates a Generator with default configuration.
// Use options to customize behavior (e.g., WithWordsPerMinute, WithAssetPath).
// Returns error if the asset path, the preset records, the preview style or
// the timestamp format are invalid.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{
		cfg: generatorConfig{
			minutes:         DefaultMinutes,
			wordsPerMinute:  DefaultWordsPerMinute,
			overhead:        DefaultOverhead(),
			minViable:       DefaultMinViable,
			maxSections:     DefaultMaxSections,
			maxSentences:    DefaultMaxSentences,
			allocation:      AllocationEven,
			clock:           time.Now,
			timestampFormat: DefaultTimestampFormat,
			previewStyle:    DefaultStyle,
		},
	}

	for _, opt := range opts {
		opt(g)
	}

	layout, err := dateutil.ParseLayout(g.cfg.timestampFormat)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimestampFormat, err)
	}
	g.layout = layout

	// Options panic on unknown strategies, so this only fails for a zero value.
	if g.strategy, err = g.cfg.allocation.strategy(); err != nil {
		return nil, err
	}

	loader, err := g.resolveLoader()
	if err != nil {
		return nil, err
	}

	if loader == nil {
		g.registry, err = style.DefaultRegistry()
		loader = assets.NewEmbeddedLoader()
	} else {
		g.registry, err = style.LoadRegistry(loader)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPresetRegistry, err)
	}

	if err := assets.ValidateAssetName(g.cfg.previewStyle); err != nil {
		return nil, fmt.Errorf("preview style: %w", err)
	}
	if _, err := loader.LoadStyle(g.cfg.previewStyle); err != nil {
		return nil, fmt.Errorf("loading preview style %q: %w", g.cfg.previewStyle, err)
	}
	g.previewer = render.NewPreviewer(loader, render.WithStyle(g.cfg.previewStyle))

	return g, nil
}

// resolveLoader returns the custom asset source, or nil for embedded assets.
func (g *Generator) resolveLoader() (assets.AssetLoader, error) {
	if g.cfg.assetLoader != nil {
		return g.cfg.assetLoader, nil
	}
	if g.cfg.assetPath == "" {
		return nil, nil
	}
	resolver, err := assets.NewAssetResolver(g.cfg.assetPath)
	if err != nil {
		return nil, wrapAssetPathError(err)
	}
	return resolver, nil
}

func wrapAssetPathError(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
}

// Generate runs the full pipeline on input.Markdown.
// Quality concerns (unknown preset, degenerate notes, duration out of band)
// are returned as Result.Warnings, not errors. Errors are reserved for
// invalid input, cancellation and preview rendering failures.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (g *Generator) Generate(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	// Trust boundary for library users; CLI input is also checked by
	// config.Validate at load time.
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	minutes := input.Minutes
	if minutes == 0 {
		minutes = g.cfg.minutes
	}

	normalized := normalize.Normalize(input.Markdown)
	doc := outline.Parse(normalized)

	preset, advisories := g.registry.Resolve(input.Preset)
	engine := style.NewEngine(preset, style.WithMaxSentences(g.cfg.maxSentences))

	tr, assembled := transcript.Assemble(doc, engine, transcript.Options{
		Minutes:        minutes,
		WordsPerMinute: g.cfg.wordsPerMinute,
		Budget: budget.Options{
			Overhead:  budget.Overhead(g.cfg.overhead),
			MinViable: g.cfg.minViable,
			Strategy:  g.strategy,
		},
		MaxSections: g.cfg.maxSections,
		GeneratedAt: g.cfg.clock(),
		Layout:      g.layout,
	})
	advisories = append(advisories, assembled...)

	markdown := tr.Markdown()
	res := &Result{
		Transcript:   []byte(markdown),
		Normalized:   normalized,
		Title:        tr.Title,
		SectionCount: len(doc.Sections),
		Preset:       string(tr.Preset),
		TargetWords:  tr.TargetWords,
		Warnings:     toWarnings(advisories),
	}

	if input.Outline {
		res.Outline = []byte(tr.Outline())
	}

	if input.HTML {
		html, err := g.previewer.Preview(ctx, tr.Title, markdown)
		if err != nil {
			return nil, fmt.Errorf("rendering preview: %w", err)
		}
		res.HTML = []byte(html)
	}

	return res, nil
}

// Presets describes every preset the generator can narrate with.
func (g *Generator) Presets() []PresetInfo {
	all := g.registry.All()
	out := make([]PresetInfo, len(all))
	for i, p := range all {
		out[i] = PresetInfo{
			Name:         string(p.Name),
			Formality:    string(p.Formality),
			SentenceMin:  p.SentenceLength.Min,
			SentenceMax:  p.SentenceLength.Max,
			Contractions: p.Contractions,
			Emoji:        p.Emoji,
			Pronouns:     p.Pronouns,
		}
	}
	return out
}

// PresetNames lists the accepted preset names in display order.
func PresetNames() []string {
	names := style.Names()
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = string(n)
	}
	return out
}
