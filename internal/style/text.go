package style

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alnah/go-notes2script/internal/normalize"
)

// CodePlaceholder replaces each fenced code block in narration.
const CodePlaceholder = "[code example]"

// Inline Markdown patterns stripped before narration.
var (
	imagePattern       = regexp.MustCompile(`!\[([^\]]*)\]\([^)]*\)`)
	linkPattern        = regexp.MustCompile(`\[([^\]]+)\]\([^)]*\)`)
	inlineCodePattern  = regexp.MustCompile("`([^`]+)`")
	boldStarPattern    = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	boldUnderPattern   = regexp.MustCompile(`__([^_]+)__`)
	italicPattern      = regexp.MustCompile(`\*([^*]+)\*`)
	listMarkerPattern  = regexp.MustCompile(`^\s*(?:[-*+]|\d+[.)])\s+`)
	quoteMarkPattern   = regexp.MustCompile(`^\s*>+\s?`)
	headingMarkPattern = regexp.MustCompile(`^\s*#{1,6}\s+`)

	negationPattern = regexp.MustCompile(`(?i)\b(is|are|do|will|have|would) not\b`)
)

// contractions maps a lowercase auxiliary to its negated contraction.
var contractions = map[string]string{
	"is":    "isn't",
	"are":   "aren't",
	"do":    "don't",
	"will":  "won't",
	"have":  "haven't",
	"would": "wouldn't",
}

// flatten removes Markdown syntax from section content and collapses it to a
// single line of prose. Each fenced block becomes CodePlaceholder.
func flatten(content string) string {
	var parts []string
	inFence := false
	for _, line := range normalize.Lines(content) {
		switch line.Kind {
		case normalize.KindFence:
			if !inFence {
				parts = append(parts, CodePlaceholder)
			}
			inFence = !inFence
			continue
		case normalize.KindCode:
			continue
		}

		text := line.Raw
		text = quoteMarkPattern.ReplaceAllString(text, "")
		text = listMarkerPattern.ReplaceAllString(text, "")
		text = headingMarkPattern.ReplaceAllString(text, "")
		parts = append(parts, text)
	}

	text := strings.Join(parts, " ")
	text = imagePattern.ReplaceAllString(text, "$1")
	text = linkPattern.ReplaceAllString(text, "$1")
	text = inlineCodePattern.ReplaceAllString(text, "$1")
	text = boldStarPattern.ReplaceAllString(text, "$1")
	text = boldUnderPattern.ReplaceAllString(text, "$1")
	text = italicPattern.ReplaceAllString(text, "$1")
	return strings.Join(strings.Fields(text), " ")
}

// splitSentences splits prose after '.', '!' or '?' when followed by
// whitespace. Terminal punctuation stays with its sentence.
func splitSentences(text string) []string {
	var sentences []string
	start := 0
	for i, r := range text {
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		next := i + utf8.RuneLen(r)
		if next >= len(text) {
			break
		}
		if nr, _ := utf8.DecodeRuneInString(text[next:]); unicode.IsSpace(nr) {
			if s := strings.TrimSpace(text[start:next]); s != "" {
				sentences = append(sentences, s)
			}
			start = next
		}
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// contract rewrites negated auxiliaries ("is not" -> "isn't"), keeping a
// leading capital.
func contract(sentence string) string {
	return negationPattern.ReplaceAllStringFunc(sentence, func(match string) string {
		aux, _, _ := strings.Cut(match, " ")
		out := contractions[strings.ToLower(aux)]
		if r, _ := utf8.DecodeRuneInString(aux); unicode.IsUpper(r) {
			out = strings.ToUpper(out[:1]) + out[1:]
		}
		return out
	})
}

// terminate appends a period unless s already ends with terminal punctuation.
func terminate(s string) string {
	if strings.HasSuffix(s, ".") || strings.HasSuffix(s, "!") || strings.HasSuffix(s, "?") {
		return s
	}
	return s + "."
}
