package tasklist

import "github.com/idilsaglam/tada/internal/model"

// TimePlaceholder stands in for the creation label of tasks stored before
// labels were recorded.
const TimePlaceholder = "--:--"

// Row is one rendered task.
type Row struct {
	ID        int64
	Text      string
	Completed bool
	Time      string
}

// View splits the sequence into its two visual groups.
type View struct {
	Active         []Row
	Completed      []Row
	CompletedCount int
}

// Rows returns the active rows followed by the completed rows, the order
// positions are numbered in.
func (v View) Rows() []Row {
	out := make([]Row, 0, len(v.Active)+len(v.Completed))
	out = append(out, v.Active...)
	return append(out, v.Completed...)
}

// Total is the number of rendered tasks.
func (v View) Total() int { return len(v.Active) + len(v.Completed) }

func (m *Manager) View() View {
	return buildView(m.tasks)
}

func buildView(tasks []model.Task) View {
	var v View
	for _, t := range tasks {
		r := Row{ID: t.ID, Text: t.Text, Completed: t.Completed, Time: t.Time}
		if r.Time == "" {
			r.Time = TimePlaceholder
		}
		if t.Completed {
			v.Completed = append(v.Completed, r)
		} else {
			v.Active = append(v.Active, r)
		}
	}
	v.CompletedCount = len(v.Completed)
	return v
}
