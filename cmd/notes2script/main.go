package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-notes2script/internal/fileutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Command names.
const (
	cmdGenerate   = "generate"
	cmdNormalize  = "normalize"
	cmdPresets    = "presets"
	cmdCompletion = "completion"
	cmdVersion    = "version"
	cmdHelp       = "help"
)

var commandNames = []string{cmdGenerate, cmdNormalize, cmdPresets, cmdCompletion, cmdVersion, cmdHelp}

func main() {
	// Configure GOMAXPROCS with conditional logging
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if wantsVerbose(os.Args[1:]) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args, DefaultEnv())
	stop()
	os.Exit(code)
}

// runMain dispatches a command line and returns the process exit code.
// args[0] is the program name.
func runMain(ctx context.Context, args []string, env *Environment) int {
	warnUnknownEnvVars(env.Stderr, env.Environ())

	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	if !isCommand(cmd) {
		if !looksLikeMarkdown(cmd) {
			fmt.Fprintf(env.Stderr, "error: %v: %s\n", ErrUnknownCommand, cmd)
			printUsage(env.Stderr)
			return ExitUsage
		}
		cmd, rest = cmdGenerate, args[1:]
	}

	var err error
	switch cmd {
	case cmdGenerate:
		err = runGenerateCmd(ctx, rest, env)
	case cmdNormalize:
		err = runNormalize(rest, env)
	case cmdPresets:
		err = runPresets(rest, env)
	case cmdCompletion:
		err = runCompletion(rest, env)
	case cmdVersion:
		fmt.Fprintf(env.Stdout, "go-notes2script %s\n", Version)
	case cmdHelp:
		err = runHelp(rest, env)
	}

	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// isCommand reports whether s names a command. Matching is case sensitive.
func isCommand(s string) bool {
	return slices.Contains(commandNames, s)
}

// looksLikeMarkdown reports whether a bare argument should run generate:
// a markdown file name or an existing directory.
func looksLikeMarkdown(s string) bool {
	if fileutil.IsMarkdown(s) {
		return true
	}
	info, err := os.Stat(s)
	return err == nil && info.IsDir()
}

// wantsVerbose scans raw arguments for the verbose flag before parsing.
func wantsVerbose(args []string) bool {
	return slices.Contains(args, "-v") || slices.Contains(args, "--verbose")
}
