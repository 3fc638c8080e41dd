package report

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	panelPadX = 2
	panelPadY = 1
)

// panelRenderer renders in true color regardless of the output stream.
// Choosing between styled and plain output is done by picking a Formatter.
var panelRenderer = newPanelRenderer()

func newPanelRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return r
}

// drawPanel draws body inside a rounded box with title centered in the top
// border. Only the border and title are colored.
//
// lipgloss has no border titles, so the box is rendered without its top
// edge and the titled edge is built to the measured width of the box.
func drawPanel(title, body string, border lipgloss.Color) string {
	edge := lipgloss.RoundedBorder()
	label := " " + title + " "

	box := panelRenderer.NewStyle().
		Border(edge, false, true, true, true).
		BorderForeground(border).
		Padding(panelPadY, panelPadX)
	if need := lipgloss.Width(label) + 2; lipgloss.Width(body)+2*panelPadX < need {
		box = box.Width(need)
	}
	rendered := box.Render(body)

	fill := max(lipgloss.Width(rendered)-2-lipgloss.Width(label), 0)
	left := fill / 2
	right := fill - left

	top := panelRenderer.NewStyle().Foreground(border).Render(
		edge.TopLeft + strings.Repeat(edge.Top, left) + label + strings.Repeat(edge.Top, right) + edge.TopRight,
	)
	return top + "\n" + rendered
}
