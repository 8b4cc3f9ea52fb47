package transcript

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	separator     = "---"
	coverageMark  = "✅"
	noSectionLine = "_No sections found in the source notes._"
)

// Markdown renders the transcript document.
func (t *Transcript) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", t.Title)
	fmt.Fprintf(&b, "> **Target Duration**: %s minutes (~%d words)  \n", formatMinutes(t.Minutes), t.TargetWords)
	fmt.Fprintf(&b, "> **Style Preset**: %s  \n", t.Preset)
	fmt.Fprintf(&b, "> **Generated**: %s\n\n", t.GeneratedAt.Format(t.layout()))
	b.WriteString(separator + "\n\n")

	for _, s := range t.Segments {
		fmt.Fprintf(&b, "## %s\n\n", s.Heading)
		b.WriteString(s.Body)
		if s.Kind == KindProductionNotes {
			b.WriteString("\n")
			continue
		}
		fmt.Fprintf(&b, "\n\n**Estimated Duration**: %.1f minutes (~%d words)\n\n", s.Minutes, s.Words)
		b.WriteString(separator + "\n\n")
	}

	return b.String()
}

// productionNotes renders the closing checklist: the total duration and one
// coverage line per source section, narrated or not.
func (t *Transcript) productionNotes() string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Total Estimated Duration**: %s minutes (%d words)\n\n", formatMinutes(t.Minutes), t.TargetWords)
	b.WriteString("**Coverage Check**:\n")
	if len(t.Coverage) == 0 {
		b.WriteString(noSectionLine)
		return b.String()
	}
	for i, heading := range t.Coverage {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "- %s %s", coverageMark, heading)
	}
	return b.String()
}

// Outline renders the secondary outline document: every source section with
// its word quota, including sections beyond the narrated ones.
func (t *Transcript) Outline() string {
	var b strings.Builder
	b.WriteString("# Transcript Outline\n\n")
	fmt.Fprintf(&b, "**Title**: %s\n", t.Title)
	fmt.Fprintf(&b, "**Duration**: %s minutes\n", formatMinutes(t.Minutes))
	fmt.Fprintf(&b, "**Style**: %s\n\n", t.Preset)
	b.WriteString("## Section Breakdown\n\n")

	if t.Plan == nil || len(t.Plan.Allocations) == 0 {
		b.WriteString(noSectionLine + "\n")
		return b.String()
	}
	for i, a := range t.Plan.Allocations {
		fmt.Fprintf(&b, "%d. %s (%d words)\n", i+1, a.Section.Heading, a.Words)
	}
	if t.Plan.Unallocated > 0 {
		fmt.Fprintf(&b, "\nUnallocated: %d words\n", t.Plan.Unallocated)
	}
	return b.String()
}

func (t *Transcript) layout() string {
	if t.Layout == "" {
		return DefaultLayout
	}
	return t.Layout
}

// formatMinutes prints minutes with at least one decimal: 3 -> "3.0",
// 2.75 -> "2.75".
func formatMinutes(m float64) string {
	s := strconv.FormatFloat(m, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

// Lines excluded from the spoken word count.
var (
	metadataLinePattern = regexp.MustCompile(`(?m)^>.*$`)
	durationNotePattern = regexp.MustCompile(`(?m)\*\*Estimated Duration\*\*:.*$`)
)

// SpokenWordCount counts whitespace-separated words of a rendered transcript,
// ignoring metadata quote lines and per-segment duration annotations.
func SpokenWordCount(markdown string) int {
	text := metadataLinePattern.ReplaceAllString(markdown, "")
	text = durationNotePattern.ReplaceAllString(text, "")
	return len(strings.Fields(text))
}
