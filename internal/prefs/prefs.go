// Package prefs persists the dashboard's greeting banner and theme choice.
package prefs

import (
	"strings"

	"github.com/idilsaglam/tada/internal/store/localstore"
)

const (
	GreetingKey = "userGreeting"
	ThemeKey    = "theme"
)

// Prefs reads and writes the small one-value widgets.
type Prefs struct {
	store    localstore.Storage
	greeting string
	theme    string
	known    func(string) bool
}

// New binds prefs to store. defaultGreeting and defaultTheme are used when
// nothing is stored; known rejects stored theme names that no longer exist.
func New(store localstore.Storage, defaultGreeting, defaultTheme string, known func(string) bool) *Prefs {
	if known == nil {
		known = func(string) bool { return true }
	}
	return &Prefs{store: store, greeting: defaultGreeting, theme: defaultTheme, known: known}
}

// Greeting is the stored banner text, or the default when none is stored.
func (p *Prefs) Greeting() string {
	if v, ok := p.store.GetItem(GreetingKey); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return p.greeting
}

func (p *Prefs) SetGreeting(text string) error {
	return p.store.SetItem(GreetingKey, text)
}

// ResetGreeting forgets the stored banner so the default shows again.
func (p *Prefs) ResetGreeting() error {
	return p.store.RemoveItem(GreetingKey)
}

// Theme is the stored theme name, or the default when none (or an unknown
// one) is stored.
func (p *Prefs) Theme() string {
	if v, ok := p.store.GetItem(ThemeKey); ok && p.known(v) {
		return v
	}
	return p.theme
}

func (p *Prefs) SetTheme(name string) error {
	return p.store.SetItem(ThemeKey, name)
}
