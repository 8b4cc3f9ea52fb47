// Package advisory defines non-fatal warnings raised by the transcript pipeline.
// Pipeline stages never print; they return advisories and let the caller decide
// how to surface them.
package advisory

import "fmt"

// Code identifies the kind of advisory.
type Code string

// Advisory codes.
const (
	CodeUnknownPreset      Code = "unknown-preset"
	CodeDurationOutOfRange Code = "duration-out-of-range"
	CodeShortBudget        Code = "short-budget"
	CodeNoTitle            Code = "no-title"
	CodeNoSections         Code = "no-sections"
	CodeSectionsTruncated  Code = "sections-truncated"
	CodeLengthDrift        Code = "length-drift"
)

// Advisory is a single non-fatal warning.
type Advisory struct {
	Code    Code
	Message string
}

// New creates an Advisory with a formatted message.
func New(code Code, format string, args ...any) Advisory {
	return Advisory{Code: code, Message: fmt.Sprintf(format, args...)}
}

// String returns the message prefixed by its code.
func (a Advisory) String() string {
	return string(a.Code) + ": " + a.Message
}

// Has reports whether list contains an advisory with the given code.
func Has(list []Advisory, code Code) bool {
	for _, a := range list {
		if a.Code == code {
			return true
		}
	}
	return false
}
