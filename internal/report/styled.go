package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nao1215/n8nlint/internal/model"
)

// StyledFormatter renders findings with colors, icons and a summary panel.
//
// Severity markers and context are colored with fatih/color, and the summary
// panel is drawn with lipgloss in the color of the overall status. Styling is
// always emitted, even when the destination is not a terminal. Use
// PlainFormatter when escape sequences are unwanted.
type StyledFormatter struct {
	styles styles
}

// StyledOption configures a StyledFormatter.
type StyledOption func(*StyledFormatter)

// WithTheme replaces the default Gruvbox palette.
func WithTheme(t Theme) StyledOption {
	return func(s *StyledFormatter) {
		s.styles = newStyles(t)
	}
}

// NewStyledFormatter creates a StyledFormatter.
func NewStyledFormatter(opts ...StyledOption) *StyledFormatter {
	s := &StyledFormatter{
		styles: newStyles(GruvboxTheme()),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// marker returns the colored severity prefix for f.
func (s *StyledFormatter) marker(f model.Finding) string {
	switch f.Severity {
	case model.SeverityError:
		return s.styles.errorMarker.Sprint("❌ ERROR: ")
	case model.SeverityWarning:
		return s.styles.warningMarker.Sprint("⚠️  WARNING: ")
	case model.SeverityInfo:
		return s.styles.infoMarker.Sprint("ℹ️  INFO: ")
	default:
		return s.styles.otherMarker.Sprint("🔍 " + f.Label() + ": ")
	}
}

// FormatFinding renders one finding with its context suffix and
// Expected/Actual lines.
func (s *StyledFormatter) FormatFinding(f model.Finding) string {
	var sb strings.Builder
	sb.WriteString(s.marker(f))
	sb.WriteString(s.styles.message.Sprint(f.Message))

	if suffix := contextSuffix(f); suffix != "" {
		sb.WriteString(" ")
		sb.WriteString(s.styles.context.Sprint(suffix))
	}
	for _, line := range detailLines(f) {
		sb.WriteString("\n  ")
		sb.WriteString(s.styles.context.Sprint(line))
	}
	return sb.String()
}

// FormatFindings renders findings grouped by severity.
func (s *StyledFormatter) FormatFindings(findings []model.Finding) string {
	return formatGrouped(findings, s.FormatFinding)
}

// FormatSummary renders the summary sentence inside a panel colored by the
// overall status.
func (s *StyledFormatter) FormatSummary(sum model.Summary) string {
	icon, border := s.statusStyle(selectStatus(sum))
	return drawPanel(icon+" Validation Summary", summaryBody(sum), border)
}

// statusStyle maps a status to its icon and border color.
func (s *StyledFormatter) statusStyle(st status) (string, lipgloss.Color) {
	switch st {
	case statusError:
		return "❌", s.styles.errorBorder
	case statusWarning:
		return "⚠️", s.styles.warningBorder
	case statusInfo:
		return "ℹ️", s.styles.infoBorder
	default:
		return "✅", s.styles.successBorder
	}
}

// FormatProgress renders a 20 glyph bar with percentage and counts.
func (s *StyledFormatter) FormatProgress(current, total int, message string) string {
	return styledProgress(current, total, message)
}

// FormatResult renders findings and summary.
func (s *StyledFormatter) FormatResult(findings []model.Finding, sum model.Summary) string {
	return composeResult(s, findings, sum)
}
