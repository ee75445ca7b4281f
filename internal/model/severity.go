package model

import (
	"encoding/json"
	"fmt"
)

// Severity represents the impact tier of an accessibility issue.
// It is a qualitative scale, not a numeric one: error outranks warning,
// warning outranks info, and nothing more is implied by the distance
// between values.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons and sorting. The String() method provides
// the wire representation ("error", "warning", "info") when needed.
type Severity int

const (
	// SeverityInfo indicates advisory findings with limited direct impact.
	// Examples: missing landmark regions (main content area, navigation).
	// Pages remain usable, but assistive-technology navigation degrades.
	SeverityInfo Severity = iota

	// SeverityWarning indicates structural problems that confuse but do not
	// block assistive technologies. Examples: zero or multiple H1 headings,
	// skipped heading levels.
	SeverityWarning

	// SeverityError indicates barriers that prevent assistive-technology
	// users from perceiving or operating content. Examples: images without
	// alternative text, unlabeled form inputs, links with no text.
	SeverityError
)

// String returns the wire representation of the severity level.
// This is the value used in JSON exports and the CSV severity column.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseSeverity converts a wire representation back into a Severity.
// It returns an error for any string outside the closed set.
func ParseSeverity(s string) (Severity, error) {
	switch s {
	case "info":
		return SeverityInfo, nil
	case "warning":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	default:
		return SeverityInfo, fmt.Errorf("unknown severity %q", s)
	}
}

// MarshalJSON serializes the severity as its wire string.
// The audit data contract fixes severity values to "error", "warning",
// and "info"; exposing the iota value would leak an implementation detail.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON parses the wire string back into a Severity.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}

	parsed, err := ParseSeverity(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
