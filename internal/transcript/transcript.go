// Package transcript assembles a narrated video transcript from a parsed
// outline, a word budget and a style engine.
//
// Segments always appear in the same order: hook, intro, up to MaxSections
// main sections, recap, call to action and production notes. Each segment's
// duration is a declared estimate derived from its word allowance, not a
// measurement of the generated text.
package transcript

import (
	"fmt"
	"time"

	"github.com/alnah/go-notes2script/internal/advisory"
	"github.com/alnah/go-notes2script/internal/budget"
	"github.com/alnah/go-notes2script/internal/outline"
	"github.com/alnah/go-notes2script/internal/style"
)

// Defaults and advisory thresholds.
const (
	DefaultMaxSections = 5
	DefaultLayout      = "2006-01-02 15:04"

	MinRecommendedMinutes = 3.0
	MaxRecommendedMinutes = 15.0

	// LengthTolerance is the accepted relative drift between the spoken word
	// count and the target word count.
	LengthTolerance = 0.15

	// maxPreambleSentences bounds the preamble narrated after the intro.
	maxPreambleSentences = 3
)

// Kind identifies a segment.
type Kind int

// Segment kinds, in transcript order.
const (
	KindHook Kind = iota
	KindIntro
	KindSection
	KindRecap
	KindCallToAction
	KindProductionNotes
)

func (k Kind) String() string {
	switch k {
	case KindHook:
		return "hook"
	case KindIntro:
		return "intro"
	case KindSection:
		return "section"
	case KindRecap:
		return "recap"
	case KindCallToAction:
		return "call-to-action"
	case KindProductionNotes:
		return "production-notes"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Segment is one named block of the transcript.
type Segment struct {
	Kind    Kind
	Heading string
	Body    string
	Words   int     // word allowance
	Minutes float64 // Words / words-per-minute
}

// Transcript is the assembled output of the pipeline.
type Transcript struct {
	Title          string
	Minutes        float64
	WordsPerMinute int
	TargetWords    int
	Preset         style.Name
	GeneratedAt    time.Time
	Layout         string // Go time layout of the Generated line
	Segments       []Segment
	Coverage       []string // every section heading of the source
	Plan           *budget.Plan
}

// Options configures Assemble.
type Options struct {
	Minutes        float64
	WordsPerMinute int
	Budget         budget.Options
	MaxSections    int
	GeneratedAt    time.Time
	Layout         string
}

// DefaultOptions returns a 6-minute transcript at 150 words per minute.
func DefaultOptions() Options {
	return Options{
		Minutes:        6.0,
		WordsPerMinute: budget.DefaultWordsPerMinute,
		Budget:         budget.DefaultOptions(),
		MaxSections:    DefaultMaxSections,
		Layout:         DefaultLayout,
	}
}

// Assemble builds a transcript. It never fails: degenerate input produces a
// full shell with zero main sections, and every quality concern is returned
// as an advisory.
func Assemble(doc *outline.Document, engine *style.Engine, opts Options) (*Transcript, []advisory.Advisory) {
	if opts.MaxSections <= 0 {
		opts.MaxSections = DefaultMaxSections
	}
	if opts.Layout == "" {
		opts.Layout = DefaultLayout
	}

	var advisories []advisory.Advisory

	if opts.Minutes < MinRecommendedMinutes || opts.Minutes > MaxRecommendedMinutes {
		advisories = append(advisories, advisory.New(advisory.CodeDurationOutOfRange,
			"duration %s minutes is outside the recommended %s-%s minute range",
			formatMinutes(opts.Minutes), formatMinutes(MinRecommendedMinutes), formatMinutes(MaxRecommendedMinutes)))
	}
	if !doc.HasTitle {
		advisories = append(advisories, advisory.New(advisory.CodeNoTitle,
			"no level-1 heading found, using %q as title", doc.Title))
	}
	if len(doc.Sections) == 0 {
		advisories = append(advisories, advisory.New(advisory.CodeNoSections,
			"no sections found, the transcript has no main segments"))
	}
	if len(doc.Sections) > opts.MaxSections {
		advisories = append(advisories, advisory.New(advisory.CodeSectionsTruncated,
			"%d sections found, only the first %d are narrated (all are listed in coverage)",
			len(doc.Sections), opts.MaxSections))
	}

	target := budget.TargetWords(opts.Minutes, opts.WordsPerMinute)
	plan := budget.Allocate(doc.Sections, target, opts.Budget)
	advisories = append(advisories, plan.Advisories...)

	t := &Transcript{
		Title:          doc.Title,
		Minutes:        opts.Minutes,
		WordsPerMinute: opts.WordsPerMinute,
		TargetWords:    target,
		Preset:         engine.Preset().Name,
		GeneratedAt:    opts.GeneratedAt,
		Layout:         opts.Layout,
		Coverage:       doc.Headings(),
		Plan:           plan,
	}

	overhead := opts.Budget.Overhead
	intro := engine.Intro(doc.Title, doc.Sections)
	if doc.Preamble != "" {
		if narrated := engine.Narrate(doc.Preamble, maxPreambleSentences); narrated != "" {
			intro += " " + narrated
		}
	}

	t.add(KindHook, "Hook", engine.Hook(doc.Title), overhead.Hook)
	t.add(KindIntro, "Intro", intro, overhead.Intro)

	rendered := plan.Allocations
	if len(rendered) > opts.MaxSections {
		rendered = rendered[:opts.MaxSections]
	}
	for i, a := range rendered {
		heading := fmt.Sprintf("Section %d: %s", i+1, a.Section.Heading)
		t.add(KindSection, heading, engine.SectionBody(a.Section), a.Words)
	}

	t.add(KindRecap, "Recap", engine.Recap(doc.Sections), overhead.Recap)
	t.add(KindCallToAction, "Call to Action", engine.CallToAction(), overhead.CallToAction)
	t.Segments = append(t.Segments, Segment{
		Kind:    KindProductionNotes,
		Heading: "Production Notes",
		Body:    t.productionNotes(),
	})

	if drift := t.lengthDrift(); drift != nil {
		advisories = append(advisories, *drift)
	}

	return t, advisories
}

// add appends a segment whose duration is derived from its allowance.
func (t *Transcript) add(kind Kind, heading, body string, words int) {
	t.Segments = append(t.Segments, Segment{
		Kind:    kind,
		Heading: heading,
		Body:    body,
		Words:   words,
		Minutes: budget.Minutes(words, t.WordsPerMinute),
	})
}

// Sections returns the rendered main section segments.
func (t *Transcript) Sections() []Segment {
	var out []Segment
	for _, s := range t.Segments {
		if s.Kind == KindSection {
			out = append(out, s)
		}
	}
	return out
}

// lengthDrift reports when the spoken word count misses the target by more
// than LengthTolerance.
func (t *Transcript) lengthDrift() *advisory.Advisory {
	if t.TargetWords <= 0 {
		return nil
	}
	spoken := SpokenWordCount(t.Markdown())
	lower := float64(t.TargetWords) * (1 - LengthTolerance)
	upper := float64(t.TargetWords) * (1 + LengthTolerance)
	if float64(spoken) >= lower && float64(spoken) <= upper {
		return nil
	}
	a := advisory.New(advisory.CodeLengthDrift,
		"transcript reads as %d words (~%.1f minutes), target is %d words; expand or trim the narration before recording",
		spoken, budget.Minutes(spoken, t.WordsPerMinute), t.TargetWords)
	return &a
}
