package model

// Task is the domain model for a dashboard to-do entry.
// ID is the creation timestamp in Unix milliseconds and never changes.
// Time is the human-readable creation label; records written before it
// existed leave it empty.
type Task struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Time      string `json:"time,omitempty"`
}

// Active reports whether the task still belongs to the reorderable group.
func (t Task) Active() bool { return !t.Completed }
