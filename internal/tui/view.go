package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/tada/internal/clock"
	"github.com/idilsaglam/tada/internal/tasklist"
	"github.com/idilsaglam/tada/internal/ui"
)

func (m *Model) View() string {
	t := ui.Current()
	sections := []string{m.header()}
	sections = append(sections, m.activeLines()...)
	sections = append(sections, "")
	sections = append(sections, t.Accent.Render(fmt.Sprintf("Completed (%d)", m.view.CompletedCount)))
	sections = append(sections, m.completedLines()...)
	sections = append(sections, "")
	if m.status != "" {
		style := t.Muted
		if m.focus != focusList {
			style = t.Error
		}
		sections = append(sections, style.Render(m.status))
	}
	sections = append(sections, m.helpView())

	return ui.PanelStyle().Width(m.innerWidth()).Render(strings.Join(sections, "\n"))
}

// header is everything drawn before the first active row, already wrapped
// to the panel's content width. activeTop measures this exact block.
func (m *Model) header() string {
	return lipgloss.NewStyle().
		Width(m.contentWidth()).
		Render(strings.Join(m.aboveActive(), "\n"))
}

func (m *Model) aboveActive() []string {
	t := ui.Current()

	greeting := t.Banner.Render(m.greeting)
	if m.focus == focusGreeting {
		greeting = m.edit.View()
	}
	clockLine := t.Clock.Render(clock.Date(m.now) + "  " + clock.Time(m.now, m.hour12))
	themeLine := t.Muted.Render("theme: ") + t.Accent.Render(m.theme)

	progress := t.Muted.Render(ui.ProgressBar(m.view.CompletedCount, m.view.Total(), 20))

	return []string{
		greeting,
		clockLine,
		themeLine,
		"",
		m.input.View(),
		progress,
		"",
		t.Accent.Render(fmt.Sprintf("Active (%d)", len(m.view.Active))),
	}
}

// activeTop is the screen row of the first active task.
func (m *Model) activeTop() int {
	const borderTop = 1
	return borderTop + lipgloss.Height(m.header())
}

func (m *Model) activeLines() []string {
	t := ui.Current()
	rows := m.activeRows()
	if len(rows) == 0 {
		return []string{t.Muted.Render("  nothing to do")}
	}
	out := make([]string, 0, len(rows))
	for i, r := range rows {
		out = append(out, m.rowLine(i, r))
	}
	return out
}

// activeRows follows the drag order while a task is grabbed.
func (m *Model) activeRows() []tasklist.Row {
	if !m.drag.Active() {
		return m.view.Active
	}
	byID := make(map[int64]tasklist.Row, len(m.view.Active))
	for _, r := range m.view.Active {
		byID[r.ID] = r
	}
	out := make([]tasklist.Row, 0, len(m.view.Active))
	for _, id := range m.drag.Order() {
		if r, ok := byID[id]; ok {
			out = append(out, r)
		}
	}
	return out
}

func (m *Model) completedLines() []string {
	t := ui.Current()
	if len(m.view.Completed) == 0 {
		return []string{t.Muted.Render("  (none)")}
	}
	out := make([]string, 0, len(m.view.Completed))
	for i, r := range m.view.Completed {
		out = append(out, m.rowLine(len(m.view.Active)+i, r))
	}
	return out
}

func (m *Model) rowLine(index int, r tasklist.Row) string {
	t := ui.Current()

	prefix := "  "
	if index == m.cursor && m.focus != focusInput {
		prefix = t.Selected.Render(">") + " "
	}

	box := t.Muted.Render(t.BoxUnchecked)
	if r.Completed {
		box = t.Success.Render(t.BoxChecked)
	}

	timeLabel := t.Muted.Render(r.Time)
	del := t.Muted.Render(t.SymDelete)
	avail := m.contentWidth() - lipgloss.Width(prefix) - lipgloss.Width(box) - lipgloss.Width(timeLabel) - lipgloss.Width(del) - 4

	if m.focus == focusRename && r.ID == m.editID {
		return prefix + box + " " + m.edit.View()
	}

	text := ui.Truncate(r.Text, avail)
	switch {
	case m.drag.Active() && r.ID == m.drag.ID():
		text = t.Dragging.Render(t.SymGrab + " " + text)
	case r.Completed:
		text = t.Done.Render(text)
	}
	return fmt.Sprintf("%s%s %s  %s %s", prefix, box, text, timeLabel, del)
}

func (m *Model) helpView() string {
	var km help.KeyMap = listKeys{m.keys}
	switch {
	case m.focus != focusList:
		km = fieldKeys{m.keys}
	case m.drag.Active():
		km = dragKeys{m.keys}
	}
	return m.help.View(km)
}

// contentWidth is innerWidth less the panel's horizontal padding.
func (m *Model) contentWidth() int {
	return m.innerWidth() - ui.PanelStyle().GetHorizontalPadding()
}

func (m *Model) innerWidth() int {
	w := m.width - 2
	if w < 30 {
		w = 30
	}
	return w
}
