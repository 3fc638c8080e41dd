package model

import "time"

// Summary aggregates a finding set. Counters are trusted by renderers and
// never re-derived from findings.
type Summary struct {
	// TotalErrors is the number of error findings.
	TotalErrors int `json:"total_errors"`

	// TotalWarnings is the number of warning findings.
	TotalWarnings int `json:"total_warnings"`

	// TotalInfo is the number of info findings.
	TotalInfo int `json:"total_info"`

	// TotalNodes is the number of workflow nodes that were validated.
	TotalNodes int `json:"total_nodes"`

	// ValidationTime is the wall-clock duration of the pass in seconds.
	ValidationTime float64 `json:"validation_time"`
}

// NewSummary counts findings by severity. Findings with SeverityOther are
// not counted by any counter.
func NewSummary(findings []Finding, totalNodes int, elapsed time.Duration) Summary {
	s := Summary{
		TotalNodes:     max(totalNodes, 0),
		ValidationTime: max(elapsed.Seconds(), 0),
	}
	for _, f := range findings {
		switch f.Severity {
		case SeverityError:
			s.TotalErrors++
		case SeverityWarning:
			s.TotalWarnings++
		case SeverityInfo:
			s.TotalInfo++
		}
	}
	return s
}

// HasErrors reports whether at least one error was found.
func (s Summary) HasErrors() bool {
	return s.TotalErrors > 0
}

// HasWarnings reports whether at least one warning was found.
func (s Summary) HasWarnings() bool {
	return s.TotalWarnings > 0
}

// HasInfo reports whether at least one info message was found.
func (s Summary) HasInfo() bool {
	return s.TotalInfo > 0
}

// TotalFindings returns the sum of all counters.
func (s Summary) TotalFindings() int {
	return s.TotalErrors + s.TotalWarnings + s.TotalInfo
}
