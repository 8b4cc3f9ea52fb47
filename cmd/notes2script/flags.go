package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// maxWorkers bounds --workers; generation is CPU-bound.
const maxWorkers = 64

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// transcriptFlags holds the transcript shape overrides.
// Zero values mean "not set" and leave the config value in place.
type transcriptFlags struct {
	minutes     float64
	preset      string
	wpm         int
	maxSections int
	allocation  string
}

// outputFlags holds secondary output toggles.
type outputFlags struct {
	outline bool
	html    bool
	style   string
}

// assetFlags holds asset-related flags.
type assetFlags struct {
	assetPath string // Override asset directory
}

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	common     commonFlags
	output     string
	workers    int
	transcript transcriptFlags
	outputs    outputFlags
	assets     assetFlags
}

// normalizeFlags holds flags for the normalize command.
type normalizeFlags struct {
	output string
	stats  bool
}

// presetsFlags holds flags for the presets command.
type presetsFlags struct {
	config string
	assets assetFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addTranscriptFlags adds transcript shape flags to a FlagSet.
func addTranscriptFlags(fs *flag.FlagSet, f *transcriptFlags) {
	fs.Float64VarP(&f.minutes, "minutes", "m", 0, "target duration in minutes")
	fs.StringVarP(&f.preset, "preset", "s", "", "style preset: neutral, xiaohongshu, professional")
	fs.IntVar(&f.wpm, "wpm", 0, "speaking rate in words per minute")
	fs.IntVar(&f.maxSections, "max-sections", 0, "sections narrated as main segments")
	fs.StringVar(&f.allocation, "allocation", "", "section budget split: even, proportional")
}

// addOutputFlags adds secondary output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.BoolVar(&f.outline, "outline", false, "also write <name>_outline.md")
	fs.BoolVar(&f.html, "html", false, "also write <name>_preview.html")
	fs.StringVar(&f.style, "style", "", "preview stylesheet name")
}

// addAssetFlags adds asset-related flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory (presets/, styles/)")
}

// newGenerateFlagSet registers every generate flag on a fresh FlagSet.
// Shared by parsing and shell completion.
func newGenerateFlagSet(f *generateFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	addCommonFlags(fs, &f.common)
	addTranscriptFlags(fs, &f.transcript)
	addOutputFlags(fs, &f.outputs)
	addAssetFlags(fs, &f.assets)
	return fs
}

// newNormalizeFlagSet registers the normalize flags.
func newNormalizeFlagSet(f *normalizeFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("normalize", flag.ContinueOnError)
	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	fs.BoolVar(&f.stats, "stats", false, "print heading and word statistics as YAML")
	return fs
}

// newPresetsFlagSet registers the presets flags.
func newPresetsFlagSet(f *presetsFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("presets", flag.ContinueOnError)
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	addAssetFlags(fs, &f.assets)
	return fs
}

// parseFlagSet parses args. pflag's own error output is discarded; usage is
// printed to stderr and the error is returned wrapped in ErrInvalidFlags.
// A help request returns flag.ErrHelp unwrapped.
func parseFlagSet(fs *flag.FlagSet, args []string, stderr io.Writer, usage func(io.Writer)) ([]string, error) {
	fs.SetOutput(io.Discard)
	fs.Usage = func() { usage(stderr) }
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}
	return fs.Args(), nil
}

// parseGenerateFlags parses generate command flags and returns positional args.
func parseGenerateFlags(args []string, stderr io.Writer) (*generateFlags, []string, error) {
	f := &generateFlags{}
	positional, err := parseFlagSet(newGenerateFlagSet(f), args, stderr, printGenerateUsage)
	if err != nil {
		return nil, nil, err
	}
	return f, positional, nil
}

// parseNormalizeFlags parses normalize command flags.
func parseNormalizeFlags(args []string, stderr io.Writer) (*normalizeFlags, []string, error) {
	f := &normalizeFlags{}
	positional, err := parseFlagSet(newNormalizeFlagSet(f), args, stderr, printNormalizeUsage)
	if err != nil {
		return nil, nil, err
	}
	return f, positional, nil
}

// parsePresetsFlags parses presets command flags.
func parsePresetsFlags(args []string, stderr io.Writer) (*presetsFlags, []string, error) {
	f := &presetsFlags{}
	positional, err := parseFlagSet(newPresetsFlagSet(f), args, stderr, printPresetsUsage)
	if err != nil {
		return nil, nil, err
	}
	return f, positional, nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > maxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, maxWorkers)
	}
	return nil
}
