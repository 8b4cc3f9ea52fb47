// Package outline parses canonical Markdown into a title and an ordered list
// of heading-delimited sections.
package outline

import (
	"strings"

	"github.com/alnah/go-notes2script/internal/normalize"
)

// DefaultTitle is used when the document has no level-1 heading.
const DefaultTitle = "Untitled Video"

// Section is one heading and the raw content under it.
type Section struct {
	Level    int    // heading level, 1-6
	Heading  string // heading text without markers
	Content  string // raw Markdown content, trimmed
	Position int    // 0-based order in the source
}

// Document is the parsed form of a note.
type Document struct {
	Title    string
	HasTitle bool   // false when Title is DefaultTitle by fallback
	Preamble string // text between the title and the first section
	Sections []Section
}

// Headings returns the heading of every section, in source order.
func (d *Document) Headings() []string {
	headings := make([]string, len(d.Sections))
	for i, s := range d.Sections {
		headings[i] = s.Heading
	}
	return headings
}

// Parse splits text into sections. The first level-1 heading becomes the
// title; any later level-1 heading is an ordinary section. Lines before the
// first heading are discarded. Headings inside fenced code are content.
func Parse(text string) *Document {
	doc := &Document{}

	var (
		current *Section
		buffer  []string
	)

	flush := func() {
		content := strings.TrimSpace(strings.Join(buffer, "\n"))
		buffer = buffer[:0]
		if current != nil {
			current.Content = content
			doc.Sections = append(doc.Sections, *current)
			return
		}
		if doc.HasTitle {
			doc.Preamble = content
		}
	}

	for _, line := range normalize.Lines(text) {
		level, heading, ok := 0, "", false
		if line.Kind == normalize.KindHeading || line.Kind == normalize.KindTOCHeading {
			level, heading, ok = normalize.Heading(line.Raw)
		}

		if !ok {
			if current != nil || doc.HasTitle {
				buffer = append(buffer, line.Raw)
			}
			continue
		}

		flush()

		if level == 1 && !doc.HasTitle {
			doc.Title = heading
			doc.HasTitle = true
			current = nil
			continue
		}

		current = &Section{
			Level:    level,
			Heading:  heading,
			Position: len(doc.Sections),
		}
	}
	flush()

	if !doc.HasTitle {
		doc.Title = DefaultTitle
	}
	return doc
}
