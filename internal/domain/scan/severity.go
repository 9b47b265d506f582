package scan

import "strings"

// Severity grades a predicted condition. Unknown input always parses to
// SeverityMild so downstream display logic never sees an out-of-range value.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// ParseSeverity maps free-form input to a Severity. Anything unrecognised,
// including the empty string, is mild.
func ParseSeverity(s string) Severity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "moderate":
		return SeverityModerate
	case "severe":
		return SeveritySevere
	default:
		return SeverityMild
	}
}

// SeverityDisplay carries the presentation attributes for a severity grade.
type SeverityDisplay struct {
	Label string `json:"label"`
	Tone  string `json:"tone"`
}

// Display returns the presentation mapping for the severity. The mapping is
// total: an out-of-range value (possible if a Severity is constructed
// directly) falls through to the mild arm rather than to a zero value.
func (s Severity) Display() SeverityDisplay {
	switch s {
	case SeverityModerate:
		return SeverityDisplay{Label: "Moderate", Tone: "warning"}
	case SeveritySevere:
		return SeverityDisplay{Label: "Severe", Tone: "danger"}
	default:
		return SeverityDisplay{Label: "Mild", Tone: "success"}
	}
}
