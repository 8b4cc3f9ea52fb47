package main

import (
	"context"
	"errors"
	"fmt"

	notes2script "github.com/alnah/go-notes2script"
	"github.com/alnah/go-notes2script/internal/config"
	"github.com/alnah/go-notes2script/internal/fileutil"
	"github.com/alnah/go-notes2script/internal/hints"
)

// TranscriptGenerator is the interface for the generation service.
type TranscriptGenerator interface {
	Generate(ctx context.Context, input notes2script.Input) (*notes2script.Result, error)
}

// Compile-time interface implementation check.
var _ TranscriptGenerator = (*notes2script.Generator)(nil)

// generateParams groups settings shared by every file of a batch.
type generateParams struct {
	preset  string
	outline bool
	html    bool
}

// runGenerateCmd parses flags and runs the generate command.
func runGenerateCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseGenerateFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	return runGenerate(ctx, positional, flags, env)
}

// runGenerate orchestrates transcript generation for a file or directory.
func runGenerate(ctx context.Context, positionalArgs []string, flags *generateFlags, env *Environment) error {
	if len(positionalArgs) > 1 {
		return fmt.Errorf("%w: expected one input, got %d", ErrTooManyArgs, len(positionalArgs))
	}
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig(env.Getenv)
	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeGenerateFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	gen, err := newGenerator(cfg, env)
	if err != nil {
		return err
	}

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}
	outputDir := resolveOutputDir(flags.output, cfg)

	files, err := discoverFiles(inputPath, outputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w%s", err, inputHint(err))
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoMarkdownFiles, inputPath)
	}

	workers := flags.workers
	if workers == 0 {
		workers = envCfg.Workers
	}
	workers = notes2script.ResolveWorkers(workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Workers: %d\n", workers)
	}

	params := &generateParams{
		preset:  cfg.Transcript.Preset,
		outline: cfg.Output.Outline,
		html:    cfg.Output.HTML,
	}
	results := generateBatch(ctx, gen, files, params, workers)

	failedCount := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failedCount == 0 {
		return nil
	}
	if len(results) == 1 {
		return results[0].Err
	}
	return fmt.Errorf("%d generation(s) failed", failedCount)
}

// loadConfig loads the named config (flag first, then NOTES2SCRIPT_CONFIG),
// or returns the defaults when neither is set.
func loadConfig(flagConfig string, envCfg *envConfig) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		hint := ""
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
			hint = hints.ForConfigNotFound(config.SearchPaths(name))
		}
		return nil, fmt.Errorf("loading config: %w%s", err, hint)
	}
	return cfg, nil
}

// mergeGenerateFlags merges CLI flags into config. CLI values override config values.
func mergeGenerateFlags(flags *generateFlags, cfg *config.Config) {
	t := flags.transcript
	if t.minutes != 0 {
		cfg.Transcript.Minutes = t.minutes
	}
	if t.preset != "" {
		cfg.Transcript.Preset = t.preset
	}
	if t.wpm != 0 {
		cfg.Transcript.WordsPerMinute = t.wpm
	}
	if t.maxSections != 0 {
		cfg.Transcript.MaxSections = t.maxSections
	}
	if t.allocation != "" {
		cfg.Transcript.Allocation = t.allocation
	}

	if flags.outputs.outline {
		cfg.Output.Outline = true
	}
	if flags.outputs.html {
		cfg.Output.HTML = true
	}
	if flags.outputs.style != "" {
		cfg.Output.Style = flags.outputs.style
	}
	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}
}

// newGenerator builds a Generator from a validated config.
func newGenerator(cfg *config.Config, env *Environment) (*notes2script.Generator, error) {
	opts := []notes2script.Option{
		notes2script.WithMinutes(cfg.Transcript.Minutes),
		notes2script.WithWordsPerMinute(cfg.Transcript.WordsPerMinute),
		notes2script.WithOverhead(notes2script.Overhead(cfg.Budget.Overhead())),
		notes2script.WithMinViableWords(cfg.Budget.MinViable),
		notes2script.WithMaxSections(cfg.Transcript.MaxSections),
		notes2script.WithMaxSentences(cfg.Transcript.MaxSentences),
		notes2script.WithAllocation(notes2script.Allocation(cfg.Transcript.Allocation)),
		notes2script.WithClock(env.Now),
	}
	if cfg.Output.TimestampFormat != "" {
		opts = append(opts, notes2script.WithTimestampFormat(cfg.Output.TimestampFormat))
	}
	if cfg.Output.Style != "" {
		opts = append(opts, notes2script.WithPreviewStyle(cfg.Output.Style))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, notes2script.WithAssetPath(cfg.Assets.BasePath))
	}

	gen, err := notes2script.NewGenerator(opts...)
	if err != nil {
		if errors.Is(err, notes2script.ErrStyleNotFound) {
			return nil, fmt.Errorf("%w%s", err, hints.ForStyleNotFound([]string{notes2script.DefaultStyle}))
		}
		return nil, err
	}
	return gen, nil
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", fmt.Errorf("%w%s", ErrNoInput, hints.ForInputNotFound())
}

// resolveOutputDir determines the output directory from flag or config.
// Empty means next to each source note.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}
