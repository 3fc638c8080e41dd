package model

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Severity represents the classification of a validation finding.
//
// The set is closed: any severity string outside error, warning and info
// maps to SeverityOther, which is still counted in grouping and rendered
// with the raw label of the finding.
type Severity int

const (
	// SeverityError indicates the workflow is broken and will not run as written.
	SeverityError Severity = iota

	// SeverityWarning indicates a likely mistake that does not stop execution.
	SeverityWarning

	// SeverityInfo indicates an observation worth knowing about.
	SeverityInfo

	// SeverityOther is the fallback for severity strings this tool does not know.
	SeverityOther
)

// severityNames maps the wire names to severities.
var severityNames = map[string]Severity{
	"error":   SeverityError,
	"warning": SeverityWarning,
	"info":    SeverityInfo,
}

// ParseSeverity maps a severity string to a Severity by exact match.
// Unknown values, including differently cased ones, yield SeverityOther.
func ParseSeverity(s string) Severity {
	if sev, ok := severityNames[s]; ok {
		return sev
	}
	return SeverityOther
}

// String returns the lowercase wire name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "other"
	}
}

// Severities lists every severity in display order.
func Severities() []Severity {
	return []Severity{SeverityError, SeverityWarning, SeverityInfo, SeverityOther}
}

// upperLabel returns the uppercase display label for a raw severity string.
// A Caser may hold state, so one is created per call.
func upperLabel(raw string) string {
	return cases.Upper(language.Und).String(raw)
}
