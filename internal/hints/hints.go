// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"fmt"
	"strings"
)

// configDirMarker identifies the user config directory among searched paths.
const configDirMarker = "go-notes2script"

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and, when one was searched, the user config location.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, configDirMarker) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForInputNotFound returns hints for unreadable note files.
func ForInputNotFound() string {
	return format("pass a Markdown file or a directory of .md files")
}

// ForUnknownPreset lists the preset names the generator accepts.
func ForUnknownPreset(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available presets: " + strings.Join(available, ", ") + " (see the presets command)")
}

// ForStyleNotFound returns hints for preview style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForDuration suggests the recommended duration band.
func ForDuration(minMinutes, maxMinutes float64) string {
	return format(fmt.Sprintf("use --minutes between %g and %g for a complete transcript", minMinutes, maxMinutes))
}

// ForShortBudget suggests ways to leave room for the main sections.
func ForShortBudget() string {
	return formatHints([]string{"raise --minutes", "lower the budget overhead in the config file"})
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
