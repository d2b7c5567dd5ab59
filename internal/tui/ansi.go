// ansi.go - width-exact string fitting and overlay compositing for styled output

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FitToWidth ensures a string is exactly the specified visual width.
// If the string is too long, it truncates using ANSI-aware truncation.
// If the string is too short, it pads with spaces.
// Color codes are preserved in both cases.
func FitToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}

	currentWidth := lipgloss.Width(s)

	if currentWidth > width {
		return ansi.Truncate(s, width, "")
	}

	if currentWidth < width {
		return s + strings.Repeat(" ", width-currentWidth)
	}

	return s
}

// FitCellContent is FitToWidth with an ellipsis (…) marking truncation
func FitCellContent(s string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(s) > width {
		if width <= 1 {
			return "…"
		}
		return ansi.Truncate(s, width, "…")
	}

	return FitToWidth(s, width)
}

// placeOverlay draws fg on top of bg with its top-left corner at column x,
// row y. Rows of fg outside bg are dropped; short bg rows are padded.
func placeOverlay(x, y int, fg, bg string) string {
	bgLines := strings.Split(bg, "\n")
	if x < 0 {
		x = 0
	}

	for i, fgLine := range strings.Split(fg, "\n") {
		row := y + i
		if row < 0 || row >= len(bgLines) {
			continue
		}

		line := bgLines[row]
		left := ansi.Truncate(line, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		right := ansi.TruncateLeft(line, x+ansi.StringWidth(fgLine), "")

		bgLines[row] = left + fgLine + right
	}

	return strings.Join(bgLines, "\n")
}
