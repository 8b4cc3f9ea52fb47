// Package dateutil converts user-friendly timestamp formats to Go layouts.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length to prevent abuse.
const MaxDateFormatLength = 50

// DefaultTimestampFormat renders as "2026-01-02 15:04".
const DefaultTimestampFormat = "YYYY-MM-DD HH:mm"

// tokenReplacer turns format tokens into Go layout components. At each
// position the first listed token that matches wins, so longer tokens come
// first. Matching is case sensitive: MM is the month, mm the minute.
var tokenReplacer = strings.NewReplacer(
	"YYYY", "2006",
	"MMMM", "January",
	"MMM", "Jan",
	"YY", "06",
	"MM", "01",
	"DD", "02",
	"HH", "15",
	"mm", "04",
	"ss", "05",
	"M", "1",
	"D", "2",
)

// Presets provides named shortcuts for common timestamp formats.
var Presets = map[string]string{
	"iso":      DefaultTimestampFormat,
	"date":     "YYYY-MM-DD",
	"european": "DD/MM/YYYY HH:mm",
	"us":       "MM/DD/YYYY HH:mm",
	"long":     "MMMM D, YYYY HH:mm",
}

// ParseLayout converts a format string or preset name to a Go time layout.
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D, HH, mm, ss.
// Brackets escape literal text: [at] keeps "at" as is.
// Returns ErrInvalidDateFormat if the format is empty, too long, or has
// an unclosed bracket.
func ParseLayout(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}
	if preset, ok := Presets[strings.ToLower(format)]; ok {
		format = preset
	}

	var layout strings.Builder
	for rest, offset := format, 0; rest != ""; {
		open := strings.IndexByte(rest, '[')
		if open < 0 {
			layout.WriteString(tokenReplacer.Replace(rest))
			break
		}
		layout.WriteString(tokenReplacer.Replace(rest[:open]))

		closing := strings.IndexByte(rest[open:], ']')
		if closing < 0 {
			return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, offset+open)
		}
		layout.WriteString(rest[open+1 : open+closing])
		offset += open + closing + 1
		rest = rest[open+closing+1:]
	}

	return layout.String(), nil
}

// Format renders t with a user-friendly format or preset name.
func Format(t time.Time, format string) (string, error) {
	layout, err := ParseLayout(format)
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}
