package report

import (
	"strings"

	"github.com/nao1215/n8nlint/internal/model"
)

// Formatter turns findings and summaries into text.
// Implementations are pure: the same input always yields the same text.
//
// There are exactly two implementations. StyledFormatter is for an
// interactive terminal and PlainFormatter is for logs, pipes and CI output.
// Both read optional Finding fields through the same field tables, so a
// context value that shows up in one variant shows up in the other, in the
// same position.
//
// The mode is chosen once, when the Formatter is created (see NewFormatter).
// A Formatter never writes anything itself; use Console to render to an
// io.Writer.
type Formatter interface {
	// FormatFinding renders a single finding.
	FormatFinding(f model.Finding) string

	// FormatFindings renders a finding set grouped by severity, one blank
	// line between findings. Empty input yields an empty string.
	FormatFindings(findings []model.Finding) string

	// FormatSummary renders the aggregate counts and timing.
	FormatSummary(s model.Summary) string

	// FormatProgress renders a progress indicator. A zero total yields an
	// empty string.
	FormatProgress(current, total int, message string) string

	// FormatResult renders the findings (if any) followed by the summary,
	// separated by a blank line.
	FormatResult(findings []model.Finding, s model.Summary) string
}

// NewFormatter returns the plain variant when plain is true and the styled
// variant otherwise.
func NewFormatter(plain bool) Formatter {
	if plain {
		return NewPlainFormatter()
	}
	return NewStyledFormatter()
}

// formatGrouped renders every finding bucket by bucket and joins them with
// a blank line.
func formatGrouped(findings []model.Finding, render func(model.Finding) string) string {
	if len(findings) == 0 {
		return ""
	}

	parts := make([]string, 0, len(findings))
	for _, group := range model.GroupBySeverity(findings) {
		for _, f := range group {
			parts = append(parts, render(f))
		}
	}
	return strings.Join(parts, "\n\n")
}

// composeResult joins the findings block and the summary block.
func composeResult(f Formatter, findings []model.Finding, s model.Summary) string {
	parts := make([]string, 0, 2)
	if len(findings) > 0 {
		parts = append(parts, f.FormatFindings(findings))
	}
	parts = append(parts, f.FormatSummary(s))
	return strings.Join(parts, "\n\n")
}
