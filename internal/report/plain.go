package report

import (
	"strings"

	"github.com/nao1215/n8nlint/internal/model"
)

// PlainFormatter renders findings without any terminal control sequences.
// Its output is suitable for log files, CI logs and pipes.
type PlainFormatter struct{}

// NewPlainFormatter creates a PlainFormatter.
func NewPlainFormatter() *PlainFormatter {
	return &PlainFormatter{}
}

// FormatFinding renders "LABEL: message (context)" followed by indented
// Expected/Actual lines.
func (p *PlainFormatter) FormatFinding(f model.Finding) string {
	var sb strings.Builder
	sb.WriteString(f.Label())
	sb.WriteString(": ")
	sb.WriteString(f.Message)

	if suffix := contextSuffix(f); suffix != "" {
		sb.WriteString(" ")
		sb.WriteString(suffix)
	}
	for _, line := range detailLines(f) {
		sb.WriteString("\n  ")
		sb.WriteString(line)
	}
	return sb.String()
}

// FormatFindings renders findings grouped by severity.
func (p *PlainFormatter) FormatFindings(findings []model.Finding) string {
	return formatGrouped(findings, p.FormatFinding)
}

// FormatSummary renders the summary sentence without a panel.
func (p *PlainFormatter) FormatSummary(s model.Summary) string {
	return summaryBody(s)
}

// FormatProgress renders a textual progress counter.
func (p *PlainFormatter) FormatProgress(current, total int, message string) string {
	return plainProgress(current, total, message)
}

// FormatResult renders findings and summary.
func (p *PlainFormatter) FormatResult(findings []model.Finding, s model.Summary) string {
	return composeResult(p, findings, s)
}
