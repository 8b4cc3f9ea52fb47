package normalize

import (
	"regexp"
	"strings"
)

// Kind is the structural class of a single Markdown line.
type Kind int

// Line kinds, as seen outside fenced code.
const (
	KindText Kind = iota
	KindBlank
	KindFence
	KindCode // content inside a fenced block (only produced by Lines)
	KindTOCHeading
	KindEmptyHeading
	KindHeading
	KindRule
	KindComment
	KindReference
	KindBullet
)

var kindNames = map[Kind]string{
	KindText:         "text",
	KindBlank:        "blank",
	KindFence:        "fence",
	KindCode:         "code",
	KindTOCHeading:   "toc-heading",
	KindEmptyHeading: "empty-heading",
	KindHeading:      "heading",
	KindRule:         "rule",
	KindComment:      "comment",
	KindReference:    "reference",
	KindBullet:       "bullet",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Precompiled line patterns, matched against the trimmed line.
var (
	tocHeadingPattern   = regexp.MustCompile(`(?i)^#{1,6}\s*(table of contents|contents|toc)$`)
	emptyHeadingPattern = regexp.MustCompile(`^#{1,6}\s*$`)
	headingPattern      = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	rulePattern         = regexp.MustCompile(`^(-{3,}|\*{3,}|_{3,})$`)
	referencePattern    = regexp.MustCompile(`^\[[^\]]+\]:\s+\S`)
	bulletPattern       = regexp.MustCompile(`^[-*+]\s+(.+)$`)

	// Indented code block (4 spaces or tab), never structural.
	indentedCodePattern = regexp.MustCompile(`^(    |\t)`)
)

// Fence markers. A block closes only on the marker that opened it.
const (
	backtickFence = "```"
	tildeFence    = "~~~"
)

// Classify returns the structural kind of a line, ignoring fence state.
// Lines indented as code blocks are always text.
func Classify(line string) Kind {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return KindBlank
	case indentedCodePattern.MatchString(line):
		return KindText
	case fenceMarker(trimmed) != "":
		return KindFence
	case tocHeadingPattern.MatchString(trimmed):
		return KindTOCHeading
	case emptyHeadingPattern.MatchString(trimmed):
		return KindEmptyHeading
	case headingPattern.MatchString(trimmed):
		return KindHeading
	case rulePattern.MatchString(trimmed):
		return KindRule
	case strings.HasPrefix(trimmed, "<!--"):
		return KindComment
	case referencePattern.MatchString(trimmed):
		return KindReference
	case bulletPattern.MatchString(trimmed):
		return KindBullet
	default:
		return KindText
	}
}

// Heading extracts the level and text of a heading line.
// ok is false when the line is not a non-empty ATX heading.
func Heading(line string) (level int, text string, ok bool) {
	if indentedCodePattern.MatchString(line) {
		return 0, "", false
	}
	m := headingPattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return 0, "", false
	}
	return len(m[1]), strings.TrimSpace(m[2]), true
}

// fenceMarker returns the fence marker a trimmed line opens or closes with,
// or "" when it is not a fence line.
func fenceMarker(trimmed string) string {
	switch {
	case strings.HasPrefix(trimmed, backtickFence):
		return backtickFence
	case strings.HasPrefix(trimmed, tildeFence):
		return tildeFence
	default:
		return ""
	}
}

// Line is a source line annotated with its fence-aware kind.
type Line struct {
	Raw  string
	Kind Kind
}

// Lines splits text into lines and classifies each one, tracking fenced code
// so that lines inside a fence are reported as KindCode.
func Lines(text string) []Line {
	raw := strings.Split(normalizeLineEndings(text), "\n")
	lines := make([]Line, 0, len(raw))

	open := ""
	for _, r := range raw {
		if open != "" {
			kind := KindCode
			if fenceMarker(strings.TrimSpace(r)) == open && !indentedCodePattern.MatchString(r) {
				kind = KindFence
				open = ""
			}
			lines = append(lines, Line{Raw: r, Kind: kind})
			continue
		}

		kind := Classify(r)
		if kind == KindFence {
			open = fenceMarker(strings.TrimSpace(r))
		}
		lines = append(lines, Line{Raw: r, Kind: kind})
	}
	return lines
}

var crlfOrCR = regexp.MustCompile(`\r\n?`)

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
