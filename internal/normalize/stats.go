package normalize

import "strings"

// Stats summarizes a normalized document.
type Stats struct {
	HeadingCount int
	WordCount    int // words outside fenced code
	HasCode      bool
	Headings     []string
}

// CollectStats scans text and reports heading and word counts.
// Headings inside fenced code are not counted.
func CollectStats(text string) Stats {
	var st Stats
	for _, l := range Lines(text) {
		switch l.Kind {
		case KindFence:
			st.HasCode = true
		case KindCode:
			// excluded from word count
		case KindHeading, KindTOCHeading:
			if _, heading, ok := Heading(l.Raw); ok {
				st.HeadingCount++
				st.Headings = append(st.Headings, heading)
			}
			st.WordCount += len(strings.Fields(l.Raw))
		default:
			st.WordCount += len(strings.Fields(l.Raw))
		}
	}
	return st
}
