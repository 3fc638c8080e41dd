package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nao1215/n8nlint/internal/model"
)

// field is one optional piece of a rendered finding. Fields are evaluated
// in slice order; a field is rendered only when present returns true.
type field struct {
	present func(f model.Finding) bool
	render  func(f model.Finding) string
}

// contextFields make up the parenthesized suffix after the message.
var contextFields = []field{
	{
		present: func(f model.Finding) bool { return f.NodeType != "" },
		render:  func(f model.Finding) string { return "Node: " + f.NodeType },
	},
	{
		present: func(f model.Finding) bool { return f.PropertyPath != "" },
		render:  func(f model.Finding) string { return "Property: " + f.PropertyPath },
	},
	{
		present: func(f model.Finding) bool { return f.Line > 0 },
		render:  func(f model.Finding) string { return "Line: " + strconv.Itoa(f.Line) },
	},
	{
		present: func(f model.Finding) bool { return f.FilePath != "" },
		render:  func(f model.Finding) string { return "File: " + f.FilePath },
	},
}

// detailFields are the indented lines below the message.
var detailFields = []field{
	{
		present: func(f model.Finding) bool { return f.Expected != "" },
		render:  func(f model.Finding) string { return "Expected: " + f.Expected },
	},
	{
		present: func(f model.Finding) bool { return f.Actual != "" },
		render:  func(f model.Finding) string { return "Actual: " + f.Actual },
	},
}

// collect renders every present field of f.
func collect(fields []field, f model.Finding) []string {
	var out []string
	for _, fd := range fields {
		if fd.present(f) {
			out = append(out, fd.render(f))
		}
	}
	return out
}

// contextSuffix returns "(Node: x, Property: y)" or "" when no context field is set.
func contextSuffix(f model.Finding) string {
	parts := collect(contextFields, f)
	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// detailLines returns the Expected/Actual lines without indentation.
func detailLines(f model.Finding) []string {
	return collect(detailFields, f)
}

// status is the overall outcome shown by the summary.
type status int

const (
	statusSuccess status = iota
	statusInfo
	statusWarning
	statusError
)

// selectStatus picks the status by presence only: error, then warning, then info.
func selectStatus(s model.Summary) status {
	switch {
	case s.HasErrors():
		return statusError
	case s.HasWarnings():
		return statusWarning
	case s.HasInfo():
		return statusInfo
	default:
		return statusSuccess
	}
}

// plural returns "1 error" or "N errors".
func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// summaryBody builds the summary sentence shared by both variants.
func summaryBody(s model.Summary) string {
	var clauses []string
	if s.TotalErrors > 0 {
		clauses = append(clauses, plural(s.TotalErrors, "error"))
	}
	if s.TotalWarnings > 0 {
		clauses = append(clauses, plural(s.TotalWarnings, "warning"))
	}
	if s.TotalInfo > 0 {
		clauses = append(clauses, plural(s.TotalInfo, "info message"))
	}

	var sb strings.Builder
	sb.WriteString("Validation complete: ")
	if len(clauses) == 0 {
		sb.WriteString("No issues found")
	} else {
		sb.WriteString(strings.Join(clauses, ", "))
	}

	if s.ValidationTime > 0 {
		fmt.Fprintf(&sb, " (took %.2fs)", s.ValidationTime)
	}
	if s.TotalNodes > 0 {
		fmt.Fprintf(&sb, " - %s validated", plural(s.TotalNodes, "node"))
	}
	return sb.String()
}
