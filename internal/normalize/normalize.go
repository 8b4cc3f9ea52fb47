// Package normalize cleans raw Markdown notes into the canonical form consumed
// by the outline parser.
//
// Normalization is a single pass over the input driven by a small state
// machine with three states: normal, inside a fenced code block, and skipping
// a table of contents. Fenced content is emitted verbatim and never inspected;
// a table-of-contents region always ends at the next blank line.
//
// Normalize is total: it accepts any text and never fails.
package normalize

import (
	"strings"
	"unicode/utf8"
)

// MaxBulletLength is the longest bullet content kept as a list item.
// Longer bullets are demoted to plain paragraphs.
const MaxBulletLength = 100

type state int

const (
	stateNormal state = iota
	stateInFence
	stateSkippingTOC
)

// scanner carries the state machine and the output buffer.
type scanner struct {
	state        state
	fence        string // marker that opened the current fence
	prev         string // previous input line, trimmed
	out          []string
	pendingBlank bool
}

// Normalize returns the canonical form of a Markdown document.
// The result always ends with exactly one newline.
func Normalize(text string) string {
	s := &scanner{}
	for _, line := range strings.Split(normalizeLineEndings(text), "\n") {
		s.step(line)
		s.prev = strings.TrimSpace(line)
	}
	return s.result()
}

// step feeds one input line through the state machine.
func (s *scanner) step(line string) {
	switch s.state {
	case stateInFence:
		s.stepFence(line)
	case stateSkippingTOC:
		s.stepTOC(line)
	default:
		s.stepNormal(line)
	}
}

func (s *scanner) stepFence(line string) {
	if fenceMarker(strings.TrimSpace(line)) == s.fence && !indentedCodePattern.MatchString(line) {
		s.state = stateNormal
		s.fence = ""
	}
	s.out = append(s.out, line)
}

func (s *scanner) stepTOC(line string) {
	if Classify(line) == KindBlank {
		s.state = stateNormal
		s.pendingBlank = true
	}
}

func (s *scanner) stepNormal(line string) {
	trimmed := strings.TrimSpace(line)

	switch Classify(line) {
	case KindBlank:
		s.pendingBlank = true

	case KindFence:
		s.state = stateInFence
		s.fence = fenceMarker(trimmed)
		s.emit(line)

	case KindTOCHeading:
		s.state = stateSkippingTOC

	case KindEmptyHeading, KindReference:
		// dropped

	case KindRule:
		if strings.HasPrefix(s.prev, "<!--") {
			s.emit(line)
		}

	case KindHeading:
		s.pendingBlank = true
		s.emit(trimmed)
		s.pendingBlank = true

	case KindBullet:
		s.emit(demoteBullet(line, trimmed))

	default:
		s.emit(line)
	}
}

// emit appends a non-blank line, flushing at most one pending blank line.
// Blank lines are never emitted at the start of the document.
func (s *scanner) emit(line string) {
	if s.pendingBlank && len(s.out) > 0 {
		s.out = append(s.out, "")
	}
	s.pendingBlank = false
	s.out = append(s.out, line)
}

func (s *scanner) result() string {
	end := len(s.out)
	for end > 0 && strings.TrimSpace(s.out[end-1]) == "" {
		end--
	}
	return strings.Join(s.out[:end], "\n") + "\n"
}

// demoteBullet strips the marker from a bullet whose content is too long.
// Content that would itself classify as structure keeps its marker, so the
// output stays a fixed point of Normalize.
func demoteBullet(line, trimmed string) string {
	m := bulletPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return line
	}
	content := strings.TrimSpace(m[1])
	if utf8.RuneCountInString(content) <= MaxBulletLength {
		return line
	}
	if Classify(content) != KindText {
		return line
	}
	return content
}
