// Package tasklist owns the dashboard's task sequence: in-memory state,
// persistence round-trips, and re-sequencing after a drag gesture.
package tasklist

import (
	"strings"
	"time"

	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/store/localstore"
)

// StorageKey is the local-storage key holding the serialized task array.
const StorageKey = "myTasks"

// TimeLayout formats the creation label stored on new tasks.
const TimeLayout = "Jan 2 15:04"

// Manager is the single owner of the task sequence and its persisted copy.
// It is not safe for concurrent use; callers drive it from one event loop.
type Manager struct {
	tasks  []model.Task
	store  localstore.Storage
	key    string
	now    func() time.Time
	render func(View)
	err    error
}

type Option func(*Manager)

// WithClock replaces time.Now for ids and creation labels.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithRenderer registers the function called with a fresh View after every
// re-rendering mutation.
func WithRenderer(fn func(View)) Option {
	return func(m *Manager) { m.render = fn }
}

// WithKey stores the sequence under a key other than StorageKey.
func WithKey(key string) Option {
	return func(m *Manager) { m.key = key }
}

// New loads the persisted sequence once and returns a Manager over it.
func New(store localstore.Storage, opts ...Option) *Manager {
	m := &Manager{
		store: store,
		key:   StorageKey,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.tasks = load(store, m.key)
	return m
}

// Add appends a new active task with text exactly as typed. Blank text is
// ignored and reported as ok=false.
func (m *Manager) Add(text string) (model.Task, bool) {
	if strings.TrimSpace(text) == "" {
		return model.Task{}, false
	}
	now := m.now()
	t := model.Task{
		ID:   m.nextID(now),
		Text: text,
		Time: now.Format(TimeLayout),
	}
	m.tasks = append(m.tasks, t)
	m.saveAndRender()
	return t, true
}

// Toggle flips the completed flag of the task with id, if any.
func (m *Manager) Toggle(id int64) {
	if i := m.indexOf(id); i >= 0 {
		m.tasks[i].Completed = !m.tasks[i].Completed
	}
	m.saveAndRender()
}

// Delete removes the task with id, if any.
func (m *Manager) Delete(id int64) {
	if i := m.indexOf(id); i >= 0 {
		m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
	}
	m.saveAndRender()
}

// Rename replaces the text of the task with id, if any. The view is not
// re-rendered: the edit already shows the new text.
func (m *Manager) Rename(id int64, text string) {
	i := m.indexOf(id)
	if i < 0 {
		return
	}
	m.tasks[i].Text = text
	m.save()
}

// Reorder rebuilds the sequence as the active tasks in the given order
// followed by the completed tasks in their existing relative order.
// Ids that are unknown, repeated, or completed are skipped. Active tasks
// the order leaves out follow the listed ones in their existing order.
func (m *Manager) Reorder(activeIDs []int64) {
	byID := make(map[int64]model.Task, len(m.tasks))
	for _, t := range m.tasks {
		byID[t.ID] = t
	}

	out := make([]model.Task, 0, len(m.tasks))
	placed := make(map[int64]bool, len(activeIDs))
	for _, id := range activeIDs {
		t, ok := byID[id]
		if !ok || t.Completed || placed[id] {
			continue
		}
		placed[id] = true
		out = append(out, t)
	}
	for _, t := range m.tasks {
		if t.Active() && !placed[t.ID] {
			out = append(out, t)
		}
	}
	for _, t := range m.tasks {
		if t.Completed {
			out = append(out, t)
		}
	}
	m.tasks = out
	m.save()
}

// Tasks returns a copy of the sequence in stored order.
func (m *Manager) Tasks() []model.Task {
	out := make([]model.Task, len(m.tasks))
	copy(out, m.tasks)
	return out
}

// Get returns the stored task with id.
func (m *Manager) Get(id int64) (model.Task, bool) {
	if i := m.indexOf(id); i >= 0 {
		return m.tasks[i], true
	}
	return model.Task{}, false
}

// ActiveIDs returns the ids of the active tasks in render order.
func (m *Manager) ActiveIDs() []int64 {
	var ids []int64
	for _, t := range m.tasks {
		if t.Active() {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

// Err returns the error from the most recent write, or nil.
func (m *Manager) Err() error { return m.err }

func (m *Manager) indexOf(id int64) int {
	for i, t := range m.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// nextID uses the creation timestamp, bumped past the largest existing id
// when two tasks land in the same millisecond.
func (m *Manager) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	for _, t := range m.tasks {
		if t.ID >= id {
			id = t.ID + 1
		}
	}
	return id
}

func (m *Manager) saveAndRender() {
	m.save()
	if m.render != nil {
		m.render(m.View())
	}
}

func (m *Manager) save() {
	m.err = save(m.store, m.key, m.tasks)
}
