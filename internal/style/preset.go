// Package style turns outline content into spoken narration.
//
// A Preset is an immutable record of tone settings. The set of presets is
// closed: every record is keyed by a Name constant and the Registry falls back
// to Neutral for anything else. An Engine bound to one preset exposes the five
// text operations used by the transcript assembler.
package style

import (
	"fmt"
	"slices"
	"strings"
)

// Name identifies a preset. The set of names is closed.
type Name string

// Preset names.
const (
	Neutral      Name = "neutral"
	Xiaohongshu  Name = "xiaohongshu"
	Professional Name = "professional"
)

// Names returns every preset name in display order.
func Names() []Name {
	return []Name{Neutral, Xiaohongshu, Professional}
}

// nameAliases maps accepted spellings to preset names.
var nameAliases = map[string]Name{
	"neutral":      Neutral,
	"xiaohongshu":  Xiaohongshu,
	"casual":       Xiaohongshu,
	"professional": Professional,
}

// ParseName resolves a user-supplied preset name, case-insensitively.
// "casual" is accepted for Xiaohongshu.
func ParseName(s string) (Name, bool) {
	name, ok := nameAliases[strings.ToLower(strings.TrimSpace(s))]
	return name, ok
}

// Formality selects one of three phrasing templates.
type Formality string

// Formality tags.
const (
	Casual   Formality = "casual"
	Formal   Formality = "formal"
	Balanced Formality = "balanced"
)

// SentenceLength is the preferred word range of a spoken sentence.
type SentenceLength struct {
	Min int `yaml:"min" validate:"gte=1,lte=60"`
	Max int `yaml:"max" validate:"gtefield=Min,lte=60"`
}

// Preset is a named bundle of tone settings.
type Preset struct {
	Name           Name           `yaml:"name" validate:"required,oneof=neutral xiaohongshu professional"`
	SentenceLength SentenceLength `yaml:"sentenceLength"`
	Contractions   bool           `yaml:"contractions"`
	Emoji          bool           `yaml:"emoji"`
	Formality      Formality      `yaml:"formality" validate:"required,oneof=casual formal balanced"`
	Pronouns       []string       `yaml:"pronouns" validate:"min=1,dive,required"`
}

// clone returns a copy that shares no slice with p.
func (p Preset) clone() Preset {
	p.Pronouns = slices.Clone(p.Pronouns)
	return p
}

// String summarizes the preset on one line.
func (p Preset) String() string {
	return fmt.Sprintf("%s (%s, %d-%d words/sentence, contractions=%t, emoji=%t, pronouns=%s)",
		p.Name, p.Formality, p.SentenceLength.Min, p.SentenceLength.Max,
		p.Contractions, p.Emoji, strings.Join(p.Pronouns, "/"))
}
