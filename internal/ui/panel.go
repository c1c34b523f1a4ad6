package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a Unicode progress bar with percentage.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	pct := int(float64(done) / float64(total) * 100)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// PanelString frames lines in a box using the current theme.
func PanelString(lines []string) string {
	return PanelStyle().Render(strings.Join(lines, "\n"))
}

// PanelStyle is the framed box every dashboard surface is drawn in.
func PanelStyle() lipgloss.Style {
	t := Current()
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
}

// Panel prints a framed box.
func Panel(lines []string) {
	fmt.Fprintln(stdout, PanelString(lines))
}

// Truncate shortens s to at most width cells, ending in "...".
func Truncate(s string, width int) string {
	if width <= 3 || lipgloss.Width(s) <= width {
		return s
	}
	var b strings.Builder
	w := 0
	for _, r := range s {
		rw := lipgloss.Width(string(r))
		if w+rw > width-3 {
			break
		}
		b.WriteRune(r)
		w += rw
	}
	return b.String() + "..."
}
