package tui

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/tada/internal/clock"
	"github.com/idilsaglam/tada/internal/config"
	"github.com/idilsaglam/tada/internal/prefs"
	"github.com/idilsaglam/tada/internal/store/localstore"
	"github.com/idilsaglam/tada/internal/tasklist"
	"github.com/idilsaglam/tada/internal/ui"
)

var testNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func newTestModel(t *testing.T) (*Model, *localstore.Memory, *string) {
	t.Helper()
	return newTestModelOn(t, localstore.NewMemory())
}

func newTestModelOn(t *testing.T, store *localstore.Memory) (*Model, *localstore.Memory, *string) {
	t.Helper()
	t.Cleanup(func() { ui.SetTheme(ui.Names[0]) })
	copied := new(string)
	cfg := config.Config{Theme: config.DefaultTheme, Greeting: config.DefaultGreeting}
	m := New(store, cfg,
		WithClock(clock.Fixed(testNow)),
		WithClipboard(func(s string) error { *copied = s; return nil }),
	)
	return m, store, copied
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	up    = tea.KeyMsg{Type: tea.KeyUp}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	bksp  = tea.KeyMsg{Type: tea.KeyBackspace}
)

func send(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func typeText(m *Model, s string) {
	for _, r := range s {
		send(m, runes(string(r)))
	}
}

func addTasks(t *testing.T, m *Model, texts ...string) {
	t.Helper()
	send(m, runes("a"))
	for _, s := range texts {
		typeText(m, s)
		send(m, enter)
	}
	send(m, esc)
	require.Equal(t, focusList, m.focus)
}

func taskTexts(store localstore.Storage) []string {
	var out []string
	for _, t := range tasklist.New(store).Tasks() {
		out = append(out, t.Text)
	}
	return out
}

func TestDashboard_AddFromInput(t *testing.T) {
	m, store, _ := newTestModel(t)

	send(m, runes("a"))
	require.Equal(t, focusInput, m.focus)
	typeText(m, "Buy milk")
	send(m, enter)

	assert.Equal(t, focusInput, m.focus, "field stays focused after submit")
	assert.Empty(t, m.input.Value())
	require.Len(t, m.view.Active, 1)
	assert.Equal(t, "Buy milk", m.view.Active[0].Text)
	assert.Equal(t, []string{"Buy milk"}, taskTexts(store))
}

func TestDashboard_BlankInputIgnored(t *testing.T) {
	m, store, _ := newTestModel(t)

	send(m, runes("a"))
	typeText(m, "   ")
	send(m, enter)

	assert.Zero(t, m.view.Total())
	assert.Empty(t, taskTexts(store))
}

func TestDashboard_TypingQInInputDoesNotQuit(t *testing.T) {
	m, _, _ := newTestModel(t)
	send(m, runes("a"), runes("q"))

	assert.Equal(t, focusInput, m.focus)
	assert.Equal(t, "q", m.input.Value())
}

func TestDashboard_ToggleMovesToCompleted(t *testing.T) {
	m, _, _ := newTestModel(t)
	addTasks(t, m, "A", "B")

	send(m, space)

	assert.Equal(t, 1, m.view.CompletedCount)
	require.Len(t, m.view.Completed, 1)
	assert.Equal(t, "A", m.view.Completed[0].Text)
	assert.Equal(t, "B", m.view.Active[0].Text)
}

func TestDashboard_Delete(t *testing.T) {
	m, store, _ := newTestModel(t)
	addTasks(t, m, "A", "B")

	send(m, down, runes("d"))

	assert.Equal(t, []string{"A"}, taskTexts(store))
	assert.Equal(t, 0, m.cursor)
}

func TestDashboard_RenameCommitsOnBlur(t *testing.T) {
	m, store, _ := newTestModel(t)
	addTasks(t, m, "A")

	send(m, runes("e"))
	require.Equal(t, focusRename, m.focus)
	typeText(m, " now")
	send(m, tab)

	assert.Equal(t, focusList, m.focus)
	assert.Equal(t, []string{"A now"}, taskTexts(store))
	assert.Equal(t, "A now", m.view.Active[0].Text)
}

func TestDashboard_RenameRejectsEmptyAndEscDiscards(t *testing.T) {
	m, store, _ := newTestModel(t)
	addTasks(t, m, "AB")

	send(m, runes("e"), bksp, bksp, enter)
	assert.Equal(t, focusRename, m.focus)
	assert.NotEmpty(t, m.status)

	send(m, esc)
	assert.Equal(t, focusList, m.focus)
	assert.Equal(t, []string{"AB"}, taskTexts(store))
}

func TestDashboard_KeyboardDrag(t *testing.T) {
	m, store, _ := newTestModel(t)
	addTasks(t, m, "A", "B", "C")

	send(m, runes("g"))
	require.True(t, m.drag.Active())
	send(m, down, down)
	assert.Equal(t, 2, m.cursor)
	assert.Equal(t, []string{"A", "B", "C"}, taskTexts(store), "nothing persists before the drop")

	send(m, runes("g"))

	assert.False(t, m.drag.Active())
	assert.Equal(t, []string{"B", "C", "A"}, taskTexts(store))
	assert.Equal(t, "A", m.view.Active[2].Text)
	assert.Equal(t, 2, m.cursor)
}

func TestDashboard_DragCancel(t *testing.T) {
	m, store, _ := newTestModel(t)
	addTasks(t, m, "A", "B")

	send(m, runes("g"), down, esc)

	assert.False(t, m.drag.Active())
	assert.Equal(t, []string{"A", "B"}, taskTexts(store))
	assert.Equal(t, "A", m.view.Active[0].Text)
}

func TestDashboard_CompletedRowsCannotBeGrabbed(t *testing.T) {
	m, _, _ := newTestModel(t)
	addTasks(t, m, "A", "B")
	send(m, space)

	send(m, down, runes("g"))
	assert.False(t, m.drag.Active())
}

func TestDashboard_DragKeepsCompletedOrder(t *testing.T) {
	m, store, _ := newTestModel(t)
	addTasks(t, m, "A", "B", "C", "D")
	send(m, space)
	send(m, space)

	send(m, down, runes("g"), up, enter)

	assert.Equal(t, []string{"D", "C", "A", "B"}, taskTexts(store))
}

func TestDashboard_MouseDrag(t *testing.T) {
	m, store, _ := newTestModel(t)
	addTasks(t, m, "A", "B", "C")
	top := m.activeTop()

	send(m,
		tea.MouseMsg{X: 4, Y: top, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
		tea.MouseMsg{X: 4, Y: top + 2, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft},
	)
	require.True(t, m.drag.Active())
	send(m, tea.MouseMsg{X: 4, Y: top + 2, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})

	assert.False(t, m.drag.Active())
	assert.Equal(t, []string{"B", "C", "A"}, taskTexts(store))
}

func TestDashboard_MousePressOutsideActiveRowsIgnored(t *testing.T) {
	m, _, _ := newTestModel(t)
	addTasks(t, m, "A")

	send(m, tea.MouseMsg{Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.False(t, m.drag.Active())
}

func TestDashboard_ThemeCycles(t *testing.T) {
	m, store, _ := newTestModel(t)

	send(m, runes("t"))

	assert.Equal(t, "forest", m.theme)
	assert.Equal(t, "forest", ui.Current().Name)
	v, ok := store.GetItem(prefs.ThemeKey)
	assert.True(t, ok)
	assert.Equal(t, "forest", v)
}

type failingStore struct{ *localstore.Memory }

func (failingStore) SetItem(string, string) error { return errors.New("disk full") }

func TestDashboard_PrefsSaveFailureIsLogged(t *testing.T) {
	t.Cleanup(func() { ui.SetTheme(ui.Names[0]) })
	var logs bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&logs)
	t.Cleanup(func() { log.SetOutput(prev) })
	cfg := config.Config{Theme: config.DefaultTheme, Greeting: config.DefaultGreeting}
	m := New(failingStore{localstore.NewMemory()}, cfg, WithClock(clock.Fixed(testNow)))

	send(m, runes("t"))
	assert.Equal(t, "forest", m.theme)
	assert.Contains(t, logs.String(), "save theme: disk full")

	send(m, runes("h"), runes("!"), enter)
	assert.Contains(t, logs.String(), "save greeting: disk full")
}

func TestDashboard_GreetingEdit(t *testing.T) {
	m, store, _ := newTestModel(t)

	send(m, runes("h"))
	require.Equal(t, focusGreeting, m.focus)
	typeText(m, " Idil")
	send(m, enter)

	assert.Equal(t, "Hello! Idil", m.greeting)
	v, _ := store.GetItem(prefs.GreetingKey)
	assert.Equal(t, "Hello! Idil", v)
	assert.Contains(t, m.View(), "Hello! Idil")
}

func TestDashboard_Copy(t *testing.T) {
	m, _, copied := newTestModel(t)
	addTasks(t, m, "call mom")

	send(m, runes("y"))
	assert.Equal(t, "call mom", *copied)
	assert.Equal(t, "copied", m.status)

	m.copy = func(string) error { return errors.New("no clipboard") }
	send(m, runes("y"))
	assert.Contains(t, m.status, "no clipboard")
}

func TestDashboard_TickRefreshesClock(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.now = time.Time{}

	cmd := send(m, tickMsg(testNow))

	assert.NotNil(t, cmd)
	assert.True(t, testNow.Equal(m.now))
	assert.Contains(t, m.View(), "Saturday, March 14, 2026")
	assert.Contains(t, m.View(), "09:26:53")
}

func TestDashboard_QuitKey(t *testing.T) {
	m, _, _ := newTestModel(t)
	cmd := send(m, runes("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestDashboard_ViewShowsGroups(t *testing.T) {
	m, _, _ := newTestModel(t)
	addTasks(t, m, "A", "B", "C")
	send(m, space)

	out := m.View()
	assert.Contains(t, out, "Active (2)")
	assert.Contains(t, out, "Completed (1)")
	assert.Contains(t, out, "Mar 14 09:26")
}

func TestDashboard_LoadsPersistedState(t *testing.T) {
	store := localstore.NewMemory()
	require.NoError(t, store.SetItem(tasklist.StorageKey, `[{"id":1,"text":"old","completed":true}]`))
	require.NoError(t, store.SetItem(prefs.ThemeKey, "sunset"))
	t.Cleanup(func() { ui.SetTheme(ui.Names[0]) })

	m := New(store, config.Default(), WithClock(clock.Fixed(testNow)))

	assert.Equal(t, "sunset", m.theme)
	assert.Equal(t, 1, m.view.CompletedCount)
	assert.Contains(t, m.View(), tasklist.TimePlaceholder)
}

func renderedRow(t *testing.T, view, text string) int {
	t.Helper()
	for i, line := range strings.Split(view, "\n") {
		if strings.Contains(line, text) {
			return i
		}
	}
	t.Fatalf("%q not found in view", text)
	return -1
}

func TestDashboard_ActiveTopMatchesRenderedRows(t *testing.T) {
	tests := []struct {
		name     string
		greeting string
		width    int
	}{
		{name: "default greeting", width: 80},
		{name: "long greeting wraps", greeting: strings.Repeat("good morning ", 8) + "to you, dear friend", width: 80},
		{name: "narrow window wraps clock", width: 34},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := localstore.NewMemory()
			if tt.greeting != "" {
				require.NoError(t, store.SetItem(prefs.GreetingKey, tt.greeting))
			}
			m, _, _ := newTestModelOn(t, store)
			send(m, tea.WindowSizeMsg{Width: tt.width, Height: 40})
			addTasks(t, m, "AAAfirst", "BBBsecond", "CCCthird")

			row := renderedRow(t, m.View(), "AAAfirst")
			assert.Equal(t, row, m.activeTop())
			assert.Equal(t, row+1, renderedRow(t, m.View(), "BBBsecond"))

			send(m, tea.MouseMsg{X: 4, Y: row, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
			require.True(t, m.drag.Active())
			assert.Equal(t, m.view.Active[0].ID, m.drag.ID())
		})
	}
}

func TestDashboard_RenameEditsStoredText(t *testing.T) {
	m, _, _ := newTestModel(t)
	addTasks(t, m, "A")
	m.view.Active[0].Text = "stale"

	send(m, runes("e"))
	assert.Equal(t, "A", m.edit.Value())
}
