// Package tui is the interactive terminal dashboard: greeting banner, theme
// selector, live clock and the reorderable task list.
package tui

import (
	"log"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/tada/internal/clock"
	"github.com/idilsaglam/tada/internal/config"
	"github.com/idilsaglam/tada/internal/prefs"
	"github.com/idilsaglam/tada/internal/store/localstore"
	"github.com/idilsaglam/tada/internal/tasklist"
	"github.com/idilsaglam/tada/internal/ui"
)

type focus int

const (
	focusList focus = iota
	focusInput
	focusRename
	focusGreeting
)

type tickMsg time.Time

// Model is the dashboard's application state. Every widget reads from it and
// every event goes through Update.
type Model struct {
	tasks  *tasklist.Manager
	prefs  *prefs.Prefs
	clock  clock.Clock
	hour12 bool
	copy   func(string) error

	view     tasklist.View
	now      time.Time
	theme    string
	greeting string

	focus  focus
	input  textinput.Model // new task entry
	edit   textinput.Model // rename and greeting
	editID int64
	cursor int
	drag   tasklist.Drag
	status string

	width, height int
	keys          keyMap
	help          help.Model
}

type Option func(*Model)

// WithClock replaces the wall clock for the clock widget and task labels.
func WithClock(c clock.Clock) Option {
	return func(m *Model) { m.clock = c }
}

// WithClipboard replaces the system clipboard used by the copy key.
func WithClipboard(fn func(string) error) Option {
	return func(m *Model) { m.copy = fn }
}

// New builds the dashboard over store. The task list is loaded once here.
func New(store localstore.Storage, cfg config.Config, opts ...Option) *Model {
	m := &Model{
		clock:  clock.Real{},
		copy:   clipboard.WriteAll,
		hour12: cfg.Hour12,
		width:  80,
		height: 24,
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.prefs = prefs.New(store, cfg.Greeting, cfg.Theme, ui.Known)
	m.tasks = tasklist.New(store,
		tasklist.WithClock(m.clock.Now),
		tasklist.WithRenderer(m.render),
	)
	m.view = m.tasks.View()
	m.now = m.clock.Now()
	m.greeting = m.prefs.Greeting()
	m.theme = m.prefs.Theme()
	ui.SetTheme(m.theme)

	m.input = textinput.New()
	m.input.Prompt = "+ "
	m.input.Placeholder = "Add a task and press enter..."
	m.input.CharLimit = 200

	m.edit = textinput.New()
	m.edit.Prompt = "> "
	m.edit.CharLimit = 200

	return m
}

// Run starts the program on the alternate screen with mouse support.
func Run(m *Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func (m *Model) render(v tasklist.View) {
	m.view = v
	m.clampCursor()
}

func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		m.now = m.clock.Now()
		return m, tick()

	case tea.MouseMsg:
		return m, m.updateMouse(msg)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		switch m.focus {
		case focusInput:
			return m, m.updateInput(msg)
		case focusRename, focusGreeting:
			return m, m.updateEdit(msg)
		}
		if m.drag.Active() {
			return m, m.updateDrag(msg)
		}
		return m, m.updateList(msg)
	}

	switch m.focus {
	case focusInput:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	case focusRename, focusGreeting:
		var cmd tea.Cmd
		m.edit, cmd = m.edit.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) updateList(msg tea.KeyMsg) tea.Cmd {
	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.view.Total()-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if row, ok := m.selected(); ok {
			m.tasks.Toggle(row.ID)
		}
	case key.Matches(msg, m.keys.Delete):
		if row, ok := m.selected(); ok {
			m.tasks.Delete(row.ID)
		}
	case key.Matches(msg, m.keys.Rename):
		if row, ok := m.selected(); ok {
			task, found := m.tasks.Get(row.ID)
			if !found {
				return nil
			}
			m.editID = task.ID
			return m.openEdit(focusRename, task.Text, "Task text...")
		}
	case key.Matches(msg, m.keys.Grab):
		if row, ok := m.selected(); ok && !row.Completed {
			m.drag.Start(m.tasks.ActiveIDs(), row.ID)
		}
	case key.Matches(msg, m.keys.Add):
		m.focus = focusInput
		return m.input.Focus()
	case key.Matches(msg, m.keys.Greeting):
		return m.openEdit(focusGreeting, m.greeting, "Your greeting...")
	case key.Matches(msg, m.keys.Theme):
		m.setTheme(ui.Next(m.theme))
	case key.Matches(msg, m.keys.Copy):
		if row, ok := m.selected(); ok {
			if err := m.copy(row.Text); err != nil {
				m.status = "copy failed: " + err.Error()
			} else {
				m.status = "copied"
			}
		}
	}
	return nil
}

func (m *Model) updateInput(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		if _, ok := m.tasks.Add(m.input.Value()); ok {
			m.input.SetValue("")
		}
		return nil
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Blur):
		m.input.Blur()
		m.focus = focusList
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) openEdit(f focus, value, placeholder string) tea.Cmd {
	m.focus = f
	m.status = ""
	m.edit.SetValue(value)
	m.edit.CursorEnd()
	m.edit.Placeholder = placeholder
	return m.edit.Focus()
}

// updateEdit handles the rename and greeting fields. Leaving the field with
// enter or tab commits, like a blur; esc discards.
func (m *Model) updateEdit(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Confirm), key.Matches(msg, m.keys.Blur):
		if m.focus == focusRename {
			text := strings.TrimSpace(m.edit.Value())
			if text == "" {
				m.status = "Text cannot be empty"
				return nil
			}
			m.tasks.Rename(m.editID, text)
			m.patchRow(m.editID, text)
		} else {
			m.greeting = m.edit.Value()
			if err := m.prefs.SetGreeting(m.greeting); err != nil {
				log.Printf("tui: save greeting: %v", err)
			}
			m.greeting = m.prefs.Greeting()
		}
		m.closeEdit()
		return nil
	case key.Matches(msg, m.keys.Cancel):
		m.closeEdit()
		return nil
	}
	var cmd tea.Cmd
	m.edit, cmd = m.edit.Update(msg)
	return cmd
}

func (m *Model) closeEdit() {
	m.edit.Blur()
	m.edit.SetValue("")
	m.editID = 0
	m.focus = focusList
	m.status = ""
}

// patchRow shows a rename without asking the manager for a new view.
func (m *Model) patchRow(id int64, text string) {
	for _, rows := range [][]tasklist.Row{m.view.Active, m.view.Completed} {
		for i := range rows {
			if rows[i].ID == id {
				rows[i].Text = text
			}
		}
	}
}

func (m *Model) updateDrag(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		if p := m.drag.Position(); p > 0 {
			m.drag.Over(p - 1)
		}
		m.cursor = m.drag.Position()
	case key.Matches(msg, m.keys.Down):
		m.drag.Over(m.drag.Position() + 1)
		m.cursor = m.drag.Position()
	case key.Matches(msg, m.keys.Grab), key.Matches(msg, m.keys.Confirm):
		m.drop()
	case key.Matches(msg, m.keys.Cancel):
		m.drag.Cancel()
		m.clampCursor()
	case key.Matches(msg, m.keys.Quit):
		m.drag.Cancel()
		return tea.Quit
	}
	return nil
}

func (m *Model) drop() {
	id := m.drag.ID()
	m.tasks.Reorder(m.drag.Drop())
	m.view = m.tasks.View()
	for i, r := range m.view.Active {
		if r.ID == id {
			m.cursor = i
		}
	}
}

// updateMouse maps a left-button press, motion and release over the active
// group to drag start, drag over and drop.
func (m *Model) updateMouse(msg tea.MouseMsg) tea.Cmd {
	if m.focus != focusList {
		return nil
	}
	row := msg.Y - m.activeTop()
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		if row >= 0 && row < len(m.view.Active) {
			m.cursor = row
			m.drag.Start(m.tasks.ActiveIDs(), m.view.Active[row].ID)
		}
	case tea.MouseActionMotion:
		if m.drag.Active() {
			m.drag.Over(row)
			m.cursor = m.drag.Position()
		}
	case tea.MouseActionRelease:
		if m.drag.Active() {
			m.drop()
		}
	}
	return nil
}

func (m *Model) setTheme(name string) {
	m.theme = name
	ui.SetTheme(name)
	if err := m.prefs.SetTheme(name); err != nil {
		log.Printf("tui: save theme: %v", err)
	}
}

func (m *Model) selected() (tasklist.Row, bool) {
	rows := m.view.Rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return tasklist.Row{}, false
	}
	return rows[m.cursor], true
}

func (m *Model) clampCursor() {
	if n := m.view.Total(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
