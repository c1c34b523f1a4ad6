package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up, Down       key.Binding
	Toggle, Delete key.Binding
	Rename, Grab   key.Binding
	Add, Greeting  key.Binding
	Theme, Copy    key.Binding
	Confirm, Blur  key.Binding
	Cancel, Quit   key.Binding
	ForceQuit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
		Delete:    key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Rename:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "rename")),
		Grab:      key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "grab/drop")),
		Add:       key.NewBinding(key.WithKeys("a", "i", "tab"), key.WithHelp("a", "add")),
		Greeting:  key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "greeting")),
		Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Blur:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "leave field")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// listKeys is the help shown while the task list has focus.
type listKeys struct{ keyMap }

func (k listKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Delete, k.Rename, k.Grab, k.Theme, k.Quit}
}

func (k listKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Delete},
		{k.Add, k.Rename, k.Grab, k.Copy},
		{k.Greeting, k.Theme, k.Quit},
	}
}

// fieldKeys is the help shown while a text field has focus.
type fieldKeys struct{ keyMap }

func (k fieldKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Blur, k.Cancel}
}

func (k fieldKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// dragKeys is the help shown while a task is grabbed.
type dragKeys struct{ keyMap }

func (k dragKeys) ShortHelp() []key.Binding {
	drop := key.NewBinding(key.WithKeys("g", "enter"), key.WithHelp("g/enter", "drop"))
	return []key.Binding{k.Up, k.Down, drop, k.Cancel}
}

func (k dragKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
