package main

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	notes2script "github.com/alnah/go-notes2script"
	"github.com/alnah/go-notes2script/internal/fileutil"
	"github.com/alnah/go-notes2script/internal/hints"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// GenerationResult holds the outcome of a single note.
type GenerationResult struct {
	InputPath string
	Outputs   []string // written files, transcript first
	Warnings  []notes2script.Warning
	Err       error
	Duration  time.Duration
}

// generateBatch processes files concurrently with at most workers goroutines.
// Results keep the order of files.
func generateBatch(ctx context.Context, gen TranscriptGenerator, files []noteFile, params *generateParams, workers int) []GenerationResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(max(workers, 1), len(files))

	results := make([]GenerationResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = GenerationResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = generateFile(ctx, gen, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// generateFile processes a single note and writes its outputs.
func generateFile(ctx context.Context, gen TranscriptGenerator, f noteFile, params *generateParams) GenerationResult {
	start := time.Now()
	result := GenerationResult{InputPath: f.InputPath}
	fail := func(err error) GenerationResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrReadMarkdown, err))
	}

	res, err := gen.Generate(ctx, notes2script.Input{
		Markdown: string(content),
		Preset:   params.preset,
		Outline:  params.outline,
		HTML:     params.html,
	})
	if err != nil {
		return fail(err)
	}
	result.Warnings = res.Warnings

	if f.OutputDir != "" {
		if err := os.MkdirAll(f.OutputDir, dirPermissions); err != nil {
			return fail(fmt.Errorf("creating output directory: %w%s", err, hints.ForOutputDirectory()))
		}
	}

	outputs := []struct {
		suffix  string
		content []byte
	}{
		{fileutil.TranscriptSuffix, res.Transcript},
		{fileutil.OutlineSuffix, res.Outline},
		{fileutil.PreviewSuffix, res.HTML},
	}
	for _, out := range outputs {
		if out.content == nil {
			continue
		}
		path := fileutil.DerivedPath(f.InputPath, f.OutputDir, out.suffix)
		if err := fileutil.WriteFileAtomic(path, out.content, filePermissions); err != nil {
			return fail(fmt.Errorf("%w: %s: %v", ErrWriteOutput, path, err))
		}
		result.Outputs = append(result.Outputs, path)
	}

	result.Duration = time.Since(start)
	return result
}

// ResultSummary holds the count of succeeded and failed generations.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed generations.
func countResults(results []GenerationResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs generation results and warnings using env writers.
// A lone failure is left to the caller, which reports it as the command error.
// Returns the number of failures.
func printResults(results []GenerationResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			if len(results) > 1 {
				fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			}
			continue
		}

		if quiet {
			continue
		}

		for _, w := range r.Warnings {
			fmt.Fprintf(env.Stderr, "warning: %s: %s%s\n", r.InputPath, w.Message, warningHint(w))
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.Outputs[0], r.Duration.Round(time.Millisecond))
			for _, extra := range r.Outputs[1:] {
				fmt.Fprintf(env.Stdout, "  + %s\n", extra)
			}
		} else {
			for _, out := range r.Outputs {
				fmt.Fprintf(env.Stdout, "Created %s\n", out)
			}
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}

// warningHint returns the actionable hint for a warning code, if any.
func warningHint(w notes2script.Warning) string {
	switch w.Code {
	case notes2script.WarnUnknownPreset:
		return hints.ForUnknownPreset(notes2script.PresetNames())
	case notes2script.WarnDurationOutOfRange:
		return hints.ForDuration(notes2script.MinRecommendedMinutes, notes2script.MaxRecommendedMinutes)
	case notes2script.WarnShortBudget:
		return hints.ForShortBudget()
	default:
		return ""
	}
}
