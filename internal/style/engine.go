package style

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alnah/go-notes2script/internal/outline"
)

// Engine defaults.
const (
	DefaultMaxSentences  = 10
	DefaultMaxRecapItems = 5
	DefaultMaxIntroItems = 3
)

// emojiMark decorates casual hooks and calls to action when a preset allows it.
const emojiMark = "✨"

// phrasebook holds the fixed templates of one formality.
type phrasebook struct {
	hook        string // %s: lowercased title
	introOpen   string // %s: lowercased title
	introTopics string // %s: comma-separated headings
	introClose  string
	leadIn      string
	recapHeader string
	cta         string
}

var phrasebooks = map[Formality]phrasebook{
	Casual: {
		hook:        "Want to learn about %s? Let me show you how!",
		introOpen:   "Hey everyone! Today we're diving into %s.",
		introTopics: "We'll cover %s, and more.",
		introClose:  "By the end, you'll totally understand how this works. Let's get started!",
		leadIn:      "So, here's the thing.",
		recapHeader: "OK, let's recap what we covered:",
		cta:         "If this helped you, smash that like button! Drop your questions below. See you next time!",
	},
	Formal: {
		hook:        "Today we will explore %s and its practical applications.",
		introOpen:   "This tutorial examines %s.",
		introTopics: "We will cover %s.",
		introClose:  "The concepts presented will provide you with a comprehensive understanding of the topic.",
		leadIn:      "Let us examine this concept.",
		recapHeader: "To summarize the key points:",
		cta:         "If you found this content valuable, please consider subscribing. Thank you for your attention.",
	},
	Balanced: {
		hook:        "In the next few minutes, you'll learn everything about %s.",
		introOpen:   "Welcome! Today we're exploring %s.",
		introTopics: "We'll look at %s.",
		introClose:  "By the end, you'll have a clear understanding of how everything fits together.",
		leadIn:      "Here's what you need to know.",
		recapHeader: "Let's quickly recap:",
		cta:         "If you found this helpful, give it a like and subscribe for more. Thanks for watching!",
	},
}

// Fallback phrases for documents without sections.
const (
	genericTopics    = "the key ideas"
	genericRecapItem = "- **The key ideas**: Core concepts and how to apply them"
	recapItemSuffix  = "Key concepts and applications"
)

// Engine generates narration for one preset. Its methods are pure: the same
// arguments always produce the same text.
type Engine struct {
	preset        Preset
	book          phrasebook
	maxSentences  int
	maxRecapItems int
	maxIntroItems int
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithMaxSentences caps the sentences kept per section body.
// Panics if n <= 0.
func WithMaxSentences(n int) EngineOption {
	if n <= 0 {
		panic(fmt.Sprintf("style: max sentences must be positive, got %d", n))
	}
	return func(e *Engine) { e.maxSentences = n }
}

// WithMaxRecapItems caps the headings listed in the recap.
// Panics if n <= 0.
func WithMaxRecapItems(n int) EngineOption {
	if n <= 0 {
		panic(fmt.Sprintf("style: max recap items must be positive, got %d", n))
	}
	return func(e *Engine) { e.maxRecapItems = n }
}

// NewEngine binds an Engine to p. An unknown formality uses the balanced
// templates.
func NewEngine(p Preset, opts ...EngineOption) *Engine {
	book, ok := phrasebooks[p.Formality]
	if !ok {
		book = phrasebooks[Balanced]
	}
	e := &Engine{
		preset:        p.clone(),
		book:          book,
		maxSentences:  DefaultMaxSentences,
		maxRecapItems: DefaultMaxRecapItems,
		maxIntroItems: DefaultMaxIntroItems,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Preset returns a copy of the bound preset.
func (e *Engine) Preset() Preset {
	return e.preset.clone()
}

// Hook returns the opening line.
func (e *Engine) Hook(title string) string {
	return e.decorate(fmt.Sprintf(e.book.hook, lower(title)))
}

// Intro announces the title and the first few section headings.
func (e *Engine) Intro(title string, sections []outline.Section) string {
	topics := genericTopics
	if len(sections) > 0 {
		n := min(len(sections), e.maxIntroItems)
		headings := make([]string, n)
		for i := range n {
			headings[i] = sections[i].Heading
		}
		topics = strings.Join(headings, ", ")
	}
	return strings.Join([]string{
		fmt.Sprintf(e.book.introOpen, lower(title)),
		fmt.Sprintf(e.book.introTopics, topics),
		e.book.introClose,
	}, " ")
}

// SectionBody converts section content into spoken sentences, prefixed by
// the formality lead-in. The result always ends with terminal punctuation.
func (e *Engine) SectionBody(section outline.Section) string {
	body := e.Narrate(section.Content, e.maxSentences)
	if body == "" {
		return e.book.leadIn
	}
	return e.book.leadIn + " " + body
}

// Narrate flattens Markdown content into at most limit spoken sentences
// (no limit when limit <= 0). Contractions apply when the preset enables
// them. Empty content yields "".
func (e *Engine) Narrate(content string, limit int) string {
	sentences := splitSentences(flatten(content))
	if limit > 0 && len(sentences) > limit {
		sentences = sentences[:limit]
	}
	if e.preset.Contractions {
		for i, s := range sentences {
			sentences[i] = contract(s)
		}
	}

	body := strings.Join(sentences, " ")
	if body == "" {
		return ""
	}
	return terminate(body)
}

// Recap lists the first section headings under the formality header.
func (e *Engine) Recap(sections []outline.Section) string {
	var b strings.Builder
	b.WriteString(e.book.recapHeader)
	b.WriteString("\n\n")

	if len(sections) == 0 {
		b.WriteString(genericRecapItem)
		return b.String()
	}

	n := min(len(sections), e.maxRecapItems)
	for i, s := range sections[:n] {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "- **%s**: %s", s.Heading, recapItemSuffix)
	}
	return b.String()
}

// CallToAction returns the closing line.
func (e *Engine) CallToAction() string {
	return e.decorate(e.book.cta)
}

// decorate appends the emoji mark to casual lines when the preset allows it.
func (e *Engine) decorate(s string) string {
	if e.preset.Emoji && e.preset.Formality == Casual {
		return s + " " + emojiMark
	}
	return s
}

// lower lowercases a title. A Caser is stateful, so one is built per call.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
