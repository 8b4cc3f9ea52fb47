package main

import (
	"fmt"
	"os"

	notes2script "github.com/alnah/go-notes2script"
	"github.com/alnah/go-notes2script/internal/fileutil"
	"github.com/alnah/go-notes2script/internal/yamlutil"
)

// runNormalize prints the canonical form of one note, or its statistics
// with --stats.
func runNormalize(args []string, env *Environment) error {
	flags, positional, err := parseNormalizeFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	inputPath, err := singleInput(positional)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(inputPath) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %v%s", ErrReadMarkdown, err, inputHint(err))
	}

	var out []byte
	if flags.stats {
		out, err = yamlutil.Marshal(notes2script.NoteStats(string(content)))
		if err != nil {
			return fmt.Errorf("encoding statistics: %w", err)
		}
	} else {
		out = []byte(notes2script.Normalize(string(content)))
	}

	if flags.output == "" || flags.output == "-" {
		_, err = env.Stdout.Write(out)
		return err
	}
	if err := fileutil.WriteFileAtomic(flags.output, out, filePermissions); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteOutput, flags.output, err)
	}
	return nil
}

// singleInput returns the one positional argument of a command.
func singleInput(positional []string) (string, error) {
	switch len(positional) {
	case 0:
		return "", ErrNoInput
	case 1:
		return positional[0], nil
	default:
		return "", fmt.Errorf("%w: expected one input, got %d", ErrTooManyArgs, len(positional))
	}
}
