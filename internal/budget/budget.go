// Package budget turns a target duration into per-section word quotas.
//
// A fixed overhead is reserved for the hook, intro, recap and call to action.
// What remains is split across the sections by a Strategy. Quotas are never
// negative and their sum never exceeds the remainder.
package budget

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/alnah/go-notes2script/internal/advisory"
	"github.com/alnah/go-notes2script/internal/outline"
)

// Default budget values.
const (
	DefaultWordsPerMinute = 150
	DefaultMinViable      = 100
)

// Sentinel errors for budget configuration.
var (
	ErrInvalidStrategy  = errors.New("invalid allocation strategy")
	ErrNegativeOverhead = errors.New("overhead cannot be negative")
)

// Overhead is the word allowance reserved for the fixed segments.
type Overhead struct {
	Hook         int
	Intro        int
	Recap        int
	CallToAction int
}

// DefaultOverhead returns the 40/100/80/30 split.
func DefaultOverhead() Overhead {
	return Overhead{Hook: 40, Intro: 100, Recap: 80, CallToAction: 30}
}

// Total returns the sum of all fixed allowances.
func (o Overhead) Total() int {
	return o.Hook + o.Intro + o.Recap + o.CallToAction
}

// Validate rejects negative allowances.
func (o Overhead) Validate() error {
	fields := []struct {
		name  string
		value int
	}{
		{"hook", o.Hook},
		{"intro", o.Intro},
		{"recap", o.Recap},
		{"callToAction", o.CallToAction},
	}
	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf("%w: %s is %d", ErrNegativeOverhead, f.name, f.value)
		}
	}
	return nil
}

// Strategy selects how the remainder is split across sections.
type Strategy int

const (
	// StrategyEven gives every section the same quota.
	StrategyEven Strategy = iota
	// StrategyProportional weights quotas by each section's word count.
	StrategyProportional
)

// String returns the configuration name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyEven:
		return "even"
	case StrategyProportional:
		return "proportional"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy parses a strategy name. Empty means even.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "even":
		return StrategyEven, nil
	case "proportional":
		return StrategyProportional, nil
	default:
		return StrategyEven, fmt.Errorf("%w: %q (must be even or proportional)", ErrInvalidStrategy, s)
	}
}

// Options configures Allocate.
type Options struct {
	Overhead  Overhead
	MinViable int // remainder below this raises a short-budget advisory
	Strategy  Strategy
}

// DefaultOptions returns the default overhead, threshold and even strategy.
func DefaultOptions() Options {
	return Options{
		Overhead:  DefaultOverhead(),
		MinViable: DefaultMinViable,
		Strategy:  StrategyEven,
	}
}

// Allocation is a section paired with its word quota.
type Allocation struct {
	Section outline.Section
	Words   int
}

// Plan is the result of an allocation.
type Plan struct {
	TargetWords int
	Overhead    Overhead
	Available   int // words left after overhead, never negative
	Allocations []Allocation
	Unallocated int
	Advisories  []advisory.Advisory
}

// Allocated returns the sum of all section quotas.
func (p *Plan) Allocated() int {
	total := 0
	for _, a := range p.Allocations {
		total += a.Words
	}
	return total
}

// Words returns the quota of the section at position, or 0 if absent.
func (p *Plan) Words(position int) int {
	for _, a := range p.Allocations {
		if a.Section.Position == position {
			return a.Words
		}
	}
	return 0
}

// TargetWords converts a duration into a word count, truncating.
func TargetWords(minutes float64, wordsPerMinute int) int {
	if minutes <= 0 || wordsPerMinute <= 0 || math.IsNaN(minutes) || math.IsInf(minutes, 0) {
		return 0
	}
	return int(minutes * float64(wordsPerMinute))
}

// Minutes converts a word count back into minutes at the given rate.
func Minutes(words, wordsPerMinute int) float64 {
	if wordsPerMinute <= 0 {
		return 0
	}
	return float64(words) / float64(wordsPerMinute)
}

// Allocate splits targetWords across sections. It never fails: a short
// budget is reported as an advisory and allocation proceeds.
func Allocate(sections []outline.Section, targetWords int, opts Options) *Plan {
	remaining := targetWords - opts.Overhead.Total()

	plan := &Plan{
		TargetWords: targetWords,
		Overhead:    opts.Overhead,
		Available:   max(remaining, 0),
	}

	if remaining < opts.MinViable {
		plan.Advisories = append(plan.Advisories, advisory.New(advisory.CodeShortBudget,
			"only %d words remain after %d words of overhead (minimum %d); increase the duration for meaningful coverage",
			remaining, opts.Overhead.Total(), opts.MinViable))
	}

	if len(sections) == 0 {
		plan.Unallocated = plan.Available
		return plan
	}

	var quotas []int
	switch opts.Strategy {
	case StrategyProportional:
		quotas = proportional(sections, plan.Available)
	default:
		quotas = even(len(sections), plan.Available)
	}

	plan.Allocations = make([]Allocation, len(sections))
	for i, s := range sections {
		plan.Allocations[i] = Allocation{Section: s, Words: quotas[i]}
	}
	plan.Unallocated = plan.Available - plan.Allocated()
	return plan
}

// even gives each of n sections available/n words. The remainder is dropped.
func even(n, available int) []int {
	quotas := make([]int, n)
	per := available / n
	for i := range quotas {
		quotas[i] = per
	}
	return quotas
}

// proportional weights quotas by content word count, flooring each share.
// Falls back to even when no section has content.
func proportional(sections []outline.Section, available int) []int {
	weights := make([]int, len(sections))
	total := 0
	for i, s := range sections {
		weights[i] = len(strings.Fields(s.Content))
		total += weights[i]
	}
	if total == 0 {
		return even(len(sections), available)
	}

	quotas := make([]int, len(sections))
	for i, w := range weights {
		quotas[i] = int(int64(available) * int64(w) / int64(total))
	}
	return quotas
}
