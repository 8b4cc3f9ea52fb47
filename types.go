package notes2script

import (
	"fmt"
	"math"

	"github.com/alnah/go-notes2script/internal/advisory"
	"github.com/alnah/go-notes2script/internal/budget"
	"github.com/alnah/go-notes2script/internal/normalize"
	"github.com/alnah/go-notes2script/internal/style"
)

// Preset names accepted in Input.Preset.
const (
	PresetNeutral      = string(style.Neutral)
	PresetXiaohongshu  = string(style.Xiaohongshu)
	PresetProfessional = string(style.Professional)
)

// Duration defaults and the recommended band. Durations outside the band are
// accepted with a warning.
const (
	DefaultMinutes        = 6.0
	DefaultWordsPerMinute = budget.DefaultWordsPerMinute
	MinRecommendedMinutes = 3.0
	MaxRecommendedMinutes = 15.0
)

// Input is one generation request.
type Input struct {
	Markdown string  // raw notes; empty notes produce an empty transcript shell
	Minutes  float64 // target duration; 0 uses the generator default
	Preset   string  // preset name; empty means neutral
	Outline  bool    // also render the outline document
	HTML     bool    // also render the HTML preview
}

// Validate checks the numeric fields. Zero minutes means "use the default".
func (in Input) Validate() error {
	if math.IsNaN(in.Minutes) || math.IsInf(in.Minutes, 0) || in.Minutes < 0 {
		return fmt.Errorf("%w: %v minutes", ErrInvalidMinutes, in.Minutes)
	}
	return nil
}

// Result holds every artifact of one generation.
type Result struct {
	Transcript   []byte // Markdown transcript
	Outline      []byte // nil unless Input.Outline
	HTML         []byte // nil unless Input.HTML
	Normalized   string // canonical form of the notes
	Title        string
	SectionCount int // sections found in the notes, narrated or not
	Preset       string
	TargetWords  int
	Warnings     []Warning
}

// Warning is a non-fatal quality concern. Generation still succeeded.
type Warning struct {
	Code    string
	Message string
}

func (w Warning) String() string {
	return w.Code + ": " + w.Message
}

// Warning codes.
const (
	WarnUnknownPreset      = string(advisory.CodeUnknownPreset)
	WarnDurationOutOfRange = string(advisory.CodeDurationOutOfRange)
	WarnShortBudget        = string(advisory.CodeShortBudget)
	WarnNoTitle            = string(advisory.CodeNoTitle)
	WarnNoSections         = string(advisory.CodeNoSections)
	WarnSectionsTruncated  = string(advisory.CodeSectionsTruncated)
	WarnLengthDrift        = string(advisory.CodeLengthDrift)
)

func toWarnings(list []advisory.Advisory) []Warning {
	if len(list) == 0 {
		return nil
	}
	out := make([]Warning, len(list))
	for i, a := range list {
		out[i] = Warning{Code: string(a.Code), Message: a.Message}
	}
	return out
}

// Overhead is the word allowance reserved for the fixed segments.
type Overhead struct {
	Hook         int
	Intro        int
	Recap        int
	CallToAction int
}

// DefaultOverhead returns the 40/100/80/30 split.
func DefaultOverhead() Overhead {
	return Overhead(budget.DefaultOverhead())
}

// Allocation selects how the remaining words are split across sections.
type Allocation string

// Allocation strategies.
const (
	AllocationEven         Allocation = "even"
	AllocationProportional Allocation = "proportional"
)

func (a Allocation) strategy() (budget.Strategy, error) {
	return budget.ParseStrategy(string(a))
}

// Stats summarizes a note without generating a transcript.
type Stats struct {
	HeadingCount int      `yaml:"headingCount"`
	WordCount    int      `yaml:"wordCount"` // words outside fenced code
	HasCode      bool     `yaml:"hasCode"`
	Headings     []string `yaml:"headings"`
}

// PresetInfo describes one style preset.
type PresetInfo struct {
	Name         string   `yaml:"name"`
	Formality    string   `yaml:"formality"`
	SentenceMin  int      `yaml:"sentenceMin"`
	SentenceMax  int      `yaml:"sentenceMax"`
	Contractions bool     `yaml:"contractions"`
	Emoji        bool     `yaml:"emoji"`
	Pronouns     []string `yaml:"pronouns"`
}

// Normalize returns the canonical form of markdown, the text every later
// stage reads. Normalize is idempotent and never fails.
func Normalize(markdown string) string {
	return normalize.Normalize(markdown)
}

// NoteStats normalizes markdown and reports its headings and word count.
func NoteStats(markdown string) Stats {
	st := normalize.CollectStats(normalize.Normalize(markdown))
	return Stats(st)
}
