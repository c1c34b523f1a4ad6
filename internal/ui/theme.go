package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, Done, Dragging, Banner, Clock       lipgloss.Style
	Border                                        lipgloss.Border
	BorderColor                                   lipgloss.TerminalColor

	BoxUnchecked, BoxChecked string
	SymDone, SymPending      string
	SymDelete, SymGrab       string
}

// Names lists the selectable themes; the first is the default.
var Names = []string{"deep-sea", "forest", "sunset", "mono"}

var current = build("deep-sea")

// Known reports whether name is a selectable theme.
func Known(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, n := range Names {
		if n == name {
			return true
		}
	}
	return false
}

// Next returns the theme after name, wrapping around.
func Next(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range Names {
		if n == name {
			return Names[(i+1)%len(Names)]
		}
	}
	return Names[0]
}

// SetTheme switches the current theme; unknown names select the default.
func SetTheme(name string) {
	current = build(name)
}

// Current exposes what renderers need.
func Current() Theme { return current }

func build(name string) Theme {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "forest":
		return palette("forest", "#7BC47F", "#A3BE8C", "#EBCB8B", "#5E8C61", lipgloss.RoundedBorder())
	case "sunset":
		return palette("sunset", "#FF8C61", "#FFD166", "#F4A261", "#CE6A85", lipgloss.RoundedBorder())
	case "mono":
		st := lipgloss.NewStyle()
		return Theme{
			Name:  "mono",
			Title: st.Bold(true), Muted: st, Accent: st.Underline(true),
			Success: st, Error: st.Bold(true), Pending: st,
			Selected: st.Reverse(true), Done: st, Dragging: st.Bold(true).Reverse(true),
			Banner: st.Bold(true), Clock: st,
			Border: lipgloss.NormalBorder(), BorderColor: lipgloss.NoColor{},
			BoxUnchecked: "[ ]", BoxChecked: "[x]",
			SymDone: "x", SymPending: "-", SymDelete: "x", SymGrab: "=",
		}
	default:
		return palette("deep-sea", "#4FC3F7", "#80DEEA", "#FFB74D", "#1E6091", lipgloss.RoundedBorder())
	}
}

func palette(name, accent, success, pending, border string, b lipgloss.Border) Theme {
	st := lipgloss.NewStyle()
	return Theme{
		Name:        name,
		Title:       st.Bold(true).Foreground(lipgloss.Color(accent)),
		Muted:       st.Faint(true),
		Accent:      st.Foreground(lipgloss.Color(accent)),
		Success:     st.Foreground(lipgloss.Color(success)),
		Error:       st.Foreground(lipgloss.Color("9")).Bold(true),
		Pending:     st.Foreground(lipgloss.Color(pending)),
		Selected:    st.Bold(true).Reverse(true),
		Done:        st.Faint(true).Strikethrough(true),
		Dragging:    st.Bold(true).Foreground(lipgloss.Color(pending)),
		Banner:      st.Bold(true).Foreground(lipgloss.Color(accent)),
		Clock:       st.Foreground(lipgloss.Color(success)),
		Border:      b,
		BorderColor: lipgloss.Color(border),

		BoxUnchecked: "○", BoxChecked: "✓",
		SymDone: "✔", SymPending: "•", SymDelete: "×", SymGrab: "≡",
	}
}
