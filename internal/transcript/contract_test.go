package transcript

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/alnah/go-notes2script/internal/style"
)

// Structural checks applied to every rendered transcript, whatever the
// preset or duration.
var (
	titlePattern      = regexp.MustCompile(`(?m)\A# \S.*$`)
	metadataPattern   = regexp.MustCompile(`(?m)^> \*\*Target Duration\*\*: [0-9.]+ minutes \(~\d+ words\)`)
	segmentPattern    = regexp.MustCompile(`(?m)^## (.+)$`)
	annotationPattern = regexp.MustCompile(`(?m)^\*\*Estimated Duration\*\*: ([0-9.]+) minutes \(~(\d+) words\)$`)
	coveragePattern   = regexp.MustCompile(`(?m)^- ✅ (.+)$`)
)

const contractNotes = `# Go Concurrency

Goroutines are cheap. Channels are not magic.

## Goroutines
A goroutine is a function running concurrently. You do not need threads.

## Channels
Channels connect goroutines.

` + "```go\nch := make(chan int)\n```" + `

## Select
Select waits on many channels.

## Contexts
Cancel work with a context.

## Errgroup
Group goroutines and collect the first error.

## Pitfalls
Leaks happen when nobody reads.
`

func checkContract(t *testing.T, tr *Transcript) {
	t.Helper()

	md := tr.Markdown()

	if !titlePattern.MatchString(md) {
		t.Errorf("transcript does not start with a title heading")
	}
	if !metadataPattern.MatchString(md) {
		t.Errorf("transcript lacks the target duration line")
	}

	var headings []string
	for _, m := range segmentPattern.FindAllStringSubmatch(md, -1) {
		headings = append(headings, m[1])
	}
	if len(headings) < 5 {
		t.Fatalf("found %d segment headings, want at least 5: %v", len(headings), headings)
	}
	fixed := []string{"Hook", "Intro"}
	for i, want := range fixed {
		if headings[i] != want {
			t.Errorf("segment %d = %q, want %q", i, headings[i], want)
		}
	}
	tail := headings[len(headings)-3:]
	for i, want := range []string{"Recap", "Call to Action", "Production Notes"} {
		if tail[i] != want {
			t.Errorf("trailing segment %d = %q, want %q", i, tail[i], want)
		}
	}
	for i, h := range headings[2 : len(headings)-3] {
		if !strings.HasPrefix(h, fmt.Sprintf("Section %d: ", i+1)) {
			t.Errorf("section heading %q not numbered %d", h, i+1)
		}
	}

	// Every source heading appears in coverage.
	covered := map[string]bool{}
	for _, m := range coveragePattern.FindAllStringSubmatch(md, -1) {
		covered[m[1]] = true
	}
	for _, h := range tr.Coverage {
		if !covered[h] {
			t.Errorf("heading %q missing from coverage check", h)
		}
	}

	// Declared allowances add up to the overhead plus the narrated sections,
	// and each annotation is its allowance read at the speaking rate.
	want := 0
	for _, seg := range tr.Segments {
		want += seg.Words
	}
	words := 0
	for _, m := range annotationPattern.FindAllStringSubmatch(md, -1) {
		mins, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			t.Fatalf("bad minutes %q: %v", m[1], err)
		}
		w, err := strconv.Atoi(m[2])
		if err != nil {
			t.Fatalf("bad words %q: %v", m[2], err)
		}
		if exact := float64(w) / float64(tr.WordsPerMinute); math.Abs(mins-exact) > 0.05+1e-9 {
			t.Errorf("annotation %s minutes for %d words, want about %.2f", m[1], w, exact)
		}
		words += w
	}
	if words != want {
		t.Errorf("declared %d words, segments allow %d", words, want)
	}
	if words > tr.TargetWords && tr.TargetWords > 0 {
		t.Errorf("declared %d words, more than the %d target", words, tr.TargetWords)
	}
}

// ---------------------------------------------------------------------------
// TestContract - Structure holds across presets and durations
// ---------------------------------------------------------------------------

func TestContract(t *testing.T) {
	t.Parallel()

	for _, name := range style.Names() {
		for _, minutes := range []float64{3, 6, 10, 15} {
			t.Run(fmt.Sprintf("%s/%g", name, minutes), func(t *testing.T) {
				t.Parallel()

				tr, _ := assemble(t, contractNotes, name, minutes)
				checkContract(t, tr)

				if n := len(tr.Sections()); n != DefaultMaxSections {
					t.Errorf("rendered %d sections, want %d", n, DefaultMaxSections)
				}
				if len(tr.Coverage) != 6 {
					t.Errorf("coverage has %d headings, want 6", len(tr.Coverage))
				}
			})
		}
	}
}

func TestContract_DegenerateInputs(t *testing.T) {
	t.Parallel()

	inputs := map[string]string{
		"empty":       "",
		"whitespace":  "  \n\t\n",
		"no headings": "plain text only",
		"title only":  "# Just a Title",
		"code only":   "```\n# not a heading\n```",
	}

	for name, notes := range inputs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			tr, _ := assemble(t, notes, style.Neutral, 5)
			checkContract(t, tr)
		})
	}
}

// ---------------------------------------------------------------------------
// TestSpokenWordCount - Metadata and annotations are not spoken
// ---------------------------------------------------------------------------

func TestSpokenWordCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want int
	}{
		{name: "empty", in: "", want: 0},
		{name: "plain words", in: "one two three", want: 3},
		{name: "metadata ignored", in: "> **Target Duration**: 3 minutes\nhello world", want: 2},
		{name: "annotation ignored", in: "text\n\n**Estimated Duration**: 0.3 minutes (~40 words)", want: 1},
		{name: "headings count", in: "## Hook\n\nHi there.", want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := SpokenWordCount(tt.in); got != tt.want {
				t.Errorf("SpokenWordCount() = %d, want %d", got, tt.want)
			}
		})
	}
}
