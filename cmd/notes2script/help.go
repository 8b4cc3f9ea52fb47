package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: notes2script <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate    Turn markdown notes into video transcripts")
	fmt.Fprintln(w, "  normalize   Print the canonical form of a note")
	fmt.Fprintln(w, "  presets     List style presets")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "A markdown file or directory given without a command runs generate.")
	fmt.Fprintln(w, "Run 'notes2script help <command>' for details on a specific command.")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: notes2script generate <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Turn markdown notes into timed video transcripts.")
	fmt.Fprintln(w, "Writes <name>_transcript.md next to each note, or under --output.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Transcript:")
	fmt.Fprintln(w, "  -m, --minutes <f>         Target duration (recommended 3-15)")
	fmt.Fprintln(w, "  -s, --preset <s>          Style: neutral, xiaohongshu (casual), professional")
	fmt.Fprintln(w, "      --wpm <n>             Speaking rate in words per minute")
	fmt.Fprintln(w, "      --max-sections <n>    Sections narrated as main segments")
	fmt.Fprintln(w, "      --allocation <s>      Section budget split: even, proportional")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Extra outputs:")
	fmt.Fprintln(w, "      --outline             Also write <name>_outline.md")
	fmt.Fprintln(w, "      --html                Also write <name>_preview.html")
	fmt.Fprintln(w, "      --style <name>        Preview stylesheet")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom presets/ and styles/ directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  NOTES2SCRIPT_CONFIG, NOTES2SCRIPT_PRESET, NOTES2SCRIPT_MINUTES, NOTES2SCRIPT_WPM,")
	fmt.Fprintln(w, "  NOTES2SCRIPT_INPUT_DIR, NOTES2SCRIPT_OUTPUT_DIR, NOTES2SCRIPT_ASSET_PATH,")
	fmt.Fprintln(w, "  NOTES2SCRIPT_WORKERS (flags take precedence)")
}

// printNormalizeUsage prints usage for the normalize command.
func printNormalizeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: notes2script normalize <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the canonical form of a note: unified line endings, trimmed")
	fmt.Fprintln(w, "whitespace, collapsed blank lines and consistent list markers.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default: stdout)")
	fmt.Fprintln(w, "      --stats               Print heading and word statistics as YAML")
}

// printPresetsUsage prints usage for the presets command.
func printPresetsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: notes2script presets [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List style presets and their settings as YAML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom presets/ and styles/ directory")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case cmdGenerate:
		printGenerateUsage(env.Stdout)
	case cmdNormalize:
		printNormalizeUsage(env.Stdout)
	case cmdPresets:
		printPresetsUsage(env.Stdout)
	case cmdCompletion:
		printCompletionUsage(env.Stdout)
	case cmdVersion:
		fmt.Fprintln(env.Stdout, "Usage: notes2script version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case cmdHelp:
		fmt.Fprintln(env.Stdout, "Usage: notes2script help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	return nil
}
