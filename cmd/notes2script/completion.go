package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	notes2script "github.com/alnah/go-notes2script"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// completionMeta holds completion-specific metadata for flags.
// Flag names and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string // enum values
	FileGlob string   // file glob pattern
	IsDir    bool     // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	"preset":     {Values: notes2script.PresetNames()},
	"allocation": {Values: []string{string(notes2script.AllocationEven), string(notes2script.AllocationProportional)}},
	"config":     {FileGlob: "*.yaml,*.yml"},
	"output":     {IsDir: true},
	"asset-path": {IsDir: true},
}

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long  string
	Short string
	Desc  string
	Bool  bool
	Meta  completionMeta
}

// commandDef describes a command for completion.
type commandDef struct {
	Name       string
	Desc       string
	Flags      []flagDef
	TakesFiles bool
}

// extractFlags lists the flags of fs, enriched with completion metadata.
func extractFlags(fs *flag.FlagSet) []flagDef {
	var defs []flagDef
	fs.VisitAll(func(f *flag.Flag) {
		defs = append(defs, flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
			Bool:  f.Value.Type() == "bool",
			Meta:  flagCompletionMeta[f.Name],
		})
	})
	return defs
}

// getCommands returns the command registry for completion.
// Flags are extracted from the actual FlagSets.
func getCommands() []commandDef {
	return []commandDef{
		{Name: cmdGenerate, Desc: "Turn markdown notes into video transcripts", Flags: extractFlags(newGenerateFlagSet(&generateFlags{})), TakesFiles: true},
		{Name: cmdNormalize, Desc: "Print the canonical form of a note", Flags: extractFlags(newNormalizeFlagSet(&normalizeFlags{})), TakesFiles: true},
		{Name: cmdPresets, Desc: "List style presets", Flags: extractFlags(newPresetsFlagSet(&presetsFlags{}))},
		{Name: cmdCompletion, Desc: "Generate shell completion script"},
		{Name: cmdVersion, Desc: "Show version information"},
		{Name: cmdHelp, Desc: "Show help for a command"},
	}
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	var script string
	switch shell {
	case ShellBash:
		script = bashScript(getCommands())
	case ShellZsh:
		script = zshScript(getCommands())
	case ShellFish:
		script = fishScript(getCommands())
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}
	_, err := io.WriteString(w, script)
	return err
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

func commandList(cmds []commandDef) string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return strings.Join(names, " ")
}

func bashScript(cmds []commandDef) string {
	var b strings.Builder
	b.WriteString("# bash completion for notes2script\n")
	b.WriteString("_notes2script() {\n")
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n\n")
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", commandList(cmds))
	b.WriteString("        return\n    fi\n\n")

	b.WriteString("    case \"$prev\" in\n")
	for _, f := range uniqueValueFlags(cmds) {
		fmt.Fprintf(&b, "        %s)\n", flagPattern(f))
		switch {
		case len(f.Meta.Values) > 0:
			fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(f.Meta.Values, " "))
		case f.Meta.IsDir:
			b.WriteString("            COMPREPLY=($(compgen -d -- \"$cur\"))\n")
		default:
			b.WriteString("            COMPREPLY=($(compgen -f -- \"$cur\"))\n")
		}
		b.WriteString("            return\n            ;;\n")
	}
	b.WriteString("    esac\n\n")

	b.WriteString("    case \"$cmd\" in\n")
	for _, c := range cmds {
		if len(c.Flags) == 0 && !c.TakesFiles {
			continue
		}
		fmt.Fprintf(&b, "        %s)\n", c.Name)
		fmt.Fprintf(&b, "            if [[ \"$cur\" == -* ]]; then\n                COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", flagWords(c.Flags))
		if c.TakesFiles {
			b.WriteString("            else\n                COMPREPLY=($(compgen -f -X '!*.@(md|markdown)' -- \"$cur\") $(compgen -d -- \"$cur\"))\n")
		}
		b.WriteString("            fi\n            ;;\n")
	}
	b.WriteString("        help)\n")
	fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", commandList(cmds))
	b.WriteString("            ;;\n")
	b.WriteString("        completion)\n            COMPREPLY=($(compgen -W \"bash zsh fish\" -- \"$cur\"))\n            ;;\n")
	b.WriteString("    esac\n}\n")
	b.WriteString("shopt -s extglob\n")
	b.WriteString("complete -F _notes2script notes2script\n")
	return b.String()
}

func zshScript(cmds []commandDef) string {
	var b strings.Builder
	b.WriteString("#compdef notes2script\n\n")
	b.WriteString("_notes2script() {\n")
	b.WriteString("    local -a commands\n    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n        _describe 'command' commands\n        return\n    fi\n\n")
	b.WriteString("    case \"${words[2]}\" in\n")
	for _, c := range cmds {
		if len(c.Flags) == 0 && !c.TakesFiles {
			continue
		}
		fmt.Fprintf(&b, "        %s)\n            _arguments \\\n", c.Name)
		for _, f := range c.Flags {
			fmt.Fprintf(&b, "                %s \\\n", zshFlagSpec(f))
		}
		if c.TakesFiles {
			b.WriteString("                '*:note:_files -g \"*.(md|markdown)\"'\n")
		} else {
			b.WriteString("                '*: :'\n")
		}
		b.WriteString("            ;;\n")
	}
	b.WriteString("        help)\n            _describe 'command' commands\n            ;;\n")
	b.WriteString("        completion)\n            _values 'shell' bash zsh fish\n            ;;\n")
	b.WriteString("    esac\n}\n\n")
	b.WriteString("compdef _notes2script notes2script\n")
	return b.String()
}

func fishScript(cmds []commandDef) string {
	var b strings.Builder
	b.WriteString("# fish completion for notes2script\n")
	b.WriteString("complete -c notes2script -f\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "complete -c notes2script -n '__fish_use_subcommand' -a %s -d '%s'\n", c.Name, fishEscape(c.Desc))
	}
	for _, c := range cmds {
		cond := fmt.Sprintf("__fish_seen_subcommand_from %s", c.Name)
		if c.TakesFiles {
			fmt.Fprintf(&b, "complete -c notes2script -n '%s' -F -a '(__fish_complete_suffix .md)'\n", cond)
		}
		for _, f := range c.Flags {
			line := fmt.Sprintf("complete -c notes2script -n '%s' -l %s", cond, f.Long)
			if f.Short != "" {
				line += " -s " + f.Short
			}
			switch {
			case len(f.Meta.Values) > 0:
				line += fmt.Sprintf(" -x -a '%s'", strings.Join(f.Meta.Values, " "))
			case f.Meta.IsDir:
				line += " -x -a '(__fish_complete_directories)'"
			case !f.Bool:
				line += " -r"
			}
			line += fmt.Sprintf(" -d '%s'", fishEscape(f.Desc))
			b.WriteString(line + "\n")
		}
	}
	fmt.Fprintf(&b, "complete -c notes2script -n '__fish_seen_subcommand_from help' -a '%s'\n", commandList(cmds))
	b.WriteString("complete -c notes2script -n '__fish_seen_subcommand_from completion' -a 'bash zsh fish'\n")
	return b.String()
}

// uniqueValueFlags returns the non-boolean flags across commands, once each.
func uniqueValueFlags(cmds []commandDef) []flagDef {
	seen := map[string]bool{}
	var out []flagDef
	for _, c := range cmds {
		for _, f := range c.Flags {
			if f.Bool || seen[f.Long] {
				continue
			}
			seen[f.Long] = true
			out = append(out, f)
		}
	}
	return out
}

func flagPattern(f flagDef) string {
	if f.Short != "" {
		return "--" + f.Long + "|-" + f.Short
	}
	return "--" + f.Long
}

func flagWords(flags []flagDef) string {
	words := make([]string, 0, len(flags)*2)
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return strings.Join(words, " ")
}

func zshFlagSpec(f flagDef) string {
	names := "--" + f.Long
	if f.Short != "" {
		names = fmt.Sprintf("(-%s --%s)'{-%s,--%s}'", f.Short, f.Long, f.Short, f.Long)
	}
	desc := zshEscape(f.Desc)
	action := ""
	if !f.Bool {
		switch {
		case len(f.Meta.Values) > 0:
			action = fmt.Sprintf(":%s:(%s)", f.Long, strings.Join(f.Meta.Values, " "))
		case f.Meta.IsDir:
			action = fmt.Sprintf(":%s:_directories", f.Long)
		case f.Meta.FileGlob != "":
			action = fmt.Sprintf(":%s:_files", f.Long)
		default:
			action = fmt.Sprintf(":%s:", f.Long)
		}
	}
	return fmt.Sprintf("'%s[%s]%s'", names, desc, action)
}

func zshEscape(s string) string {
	r := strings.NewReplacer("'", "'\\''", "[", "\\[", "]", "\\]", ":", "\\:")
	return r.Replace(s)
}

func fishEscape(s string) string {
	return strings.ReplaceAll(s, "'", "\\'")
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: notes2script completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(notes2script completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(notes2script completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    notes2script completion fish > ~/.config/fish/completions/notes2script.fish")
}
