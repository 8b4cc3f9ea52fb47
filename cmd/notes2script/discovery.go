package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-notes2script/internal/fileutil"
	"github.com/alnah/go-notes2script/internal/hints"
)

// generatedSuffixes names files written by earlier runs; discovery skips
// them so a directory can be processed again in place.
var generatedSuffixes = []string{
	fileutil.TranscriptSuffix,
	fileutil.OutlineSuffix,
	fileutil.NormalizedSuffix,
}

// noteFile represents a single note to process.
type noteFile struct {
	InputPath string
	OutputDir string // empty = next to the note
}

// discoverFiles finds all notes to process under inputPath.
// Nested directories are mirrored under outputDir.
func discoverFiles(inputPath, outputDir string) ([]noteFile, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateMarkdownExtension(inputPath); err != nil {
			return nil, err
		}
		return []noteFile{{InputPath: inputPath, OutputDir: outputDir}}, nil
	}

	var files []noteFile
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			if path != inputPath && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !fileutil.IsMarkdown(path) || isGenerated(path) {
			return nil
		}
		files = append(files, noteFile{InputPath: path, OutputDir: mirrorDir(path, inputPath, outputDir)})
		return nil
	})

	return files, err
}

// mirrorDir maps the note's directory under outputDir, keeping its path
// relative to the batch root.
func mirrorDir(path, root, outputDir string) string {
	if outputDir == "" {
		return ""
	}
	rel, err := filepath.Rel(root, filepath.Dir(path))
	if err != nil {
		return outputDir
	}
	return filepath.Join(outputDir, rel)
}

// isGenerated reports whether path is an output of a previous run.
func isGenerated(path string) bool {
	name := filepath.Base(path)
	for _, s := range generatedSuffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	if !fileutil.IsMarkdown(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}

// inputHint suggests valid inputs when the path cannot be used.
func inputHint(err error) string {
	if os.IsNotExist(err) {
		return hints.ForInputNotFound()
	}
	return ""
}
