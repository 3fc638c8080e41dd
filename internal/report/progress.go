package report

import (
	"fmt"
	"strings"
)

const (
	// progressBarWidth is the number of glyphs in the styled progress bar.
	progressBarWidth = 20

	progressFilled = "█"
	progressEmpty  = "░"
)

// progressPercent returns 100*current/total. total must be non-zero.
func progressPercent(current, total int) float64 {
	return float64(current) / float64(total) * 100
}

// progressBar returns the fixed-width bar for current/total.
// The filled count is floor(width*current/total) clamped to [0, width].
func progressBar(current, total int) string {
	filled := progressBarWidth * current / total
	filled = min(max(filled, 0), progressBarWidth)
	return strings.Repeat(progressFilled, filled) + strings.Repeat(progressEmpty, progressBarWidth-filled)
}

// styledProgress renders "[bar] PP.P% (current/total)" with an optional
// leading message.
func styledProgress(current, total int, message string) string {
	if total == 0 {
		return ""
	}
	text := fmt.Sprintf("[%s] %.1f%% (%d/%d)", progressBar(current, total), progressPercent(current, total), current, total)
	if message != "" {
		text = message + " " + text
	}
	return text
}

// plainProgress renders "current/total (PP.P%)" with an optional
// "message: " prefix.
func plainProgress(current, total int, message string) string {
	if total == 0 {
		return ""
	}
	text := fmt.Sprintf("%d/%d (%.1f%%)", current, total, progressPercent(current, total))
	if message != "" {
		text = message + ": " + text
	}
	return text
}
