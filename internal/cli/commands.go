package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/idilsaglam/tada/internal/config"
	"github.com/idilsaglam/tada/internal/tasklist"
	"github.com/idilsaglam/tada/internal/ui"
)

// -------------- subcommand impls ----------------

func doList(e *env, opt Options) int {
	v := e.tasks.View()
	t := ui.Current()

	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Tasks"),
		t.Success.Render(t.SymDone), v.CompletedCount,
		t.Pending.Render(t.SymPending), len(v.Active),
		t.Accent.Render("Total"), v.Total(),
	)

	var lines []string
	lines = append(lines, t.Banner.Render(e.prefs.Greeting()))
	lines = append(lines, header)
	lines = append(lines, t.Muted.Render(ui.ProgressBar(v.CompletedCount, v.Total(), 28)))
	lines = append(lines, "")

	if opt.Group {
		lines = append(lines, groupLines(v)...)
	} else {
		lines = append(lines, flatLines(v.Rows(), 1)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Muted.Render("Tip: add with `tada add \"Buy milk\"`"))
	ui.Panel(lines)
	return 0
}

func doAdd(e *env, text string) int {
	if _, ok := e.tasks.Add(text); !ok {
		ui.Fail("add: empty text")
		return 2
	}
	return saved(e, "added")
}

func doToggle(e *env, n int) int {
	row, ok := resolve(e, n)
	if !ok {
		return 2
	}
	e.tasks.Toggle(row.ID)
	return saved(e, "toggled")
}

func doRemove(e *env, n int) int {
	row, ok := resolve(e, n)
	if !ok {
		return 2
	}
	e.tasks.Delete(row.ID)
	return saved(e, "removed")
}

func doRename(e *env, n int, text string) int {
	row, ok := resolve(e, n)
	if !ok {
		return 2
	}
	if text == "" {
		ui.Fail("rename: empty text")
		return 2
	}
	e.tasks.Rename(row.ID, text)
	return saved(e, "renamed")
}

// doMove drags the active task at from so it lands at to, the same
// re-sequencing a drop in the dashboard performs.
func doMove(e *env, from, to int) int {
	active := e.tasks.ActiveIDs()
	if from < 1 || from > len(active) || to < 1 || to > len(active) {
		ui.Fail(fmt.Sprintf("mv: positions must name active tasks (1-%d)", len(active)))
		return 2
	}
	var d tasklist.Drag
	d.Start(active, active[from-1])
	d.Over(to - 1)
	e.tasks.Reorder(d.Drop())
	return saved(e, "moved")
}

func doGreet(e *env, text string) int {
	if text == "" {
		fmt.Fprintln(ui.Out(), ui.Current().Banner.Render(e.prefs.Greeting()))
		return 0
	}
	if err := e.prefs.SetGreeting(text); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	ui.OK("greeting set")
	return 0
}

func doGreetReset(e *env) int {
	if err := e.prefs.ResetGreeting(); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	ui.OK("greeting reset")
	return 0
}

// doReset empties the storage file, the way clearing site data empties a
// browser's local storage.
func doReset(e *env) int {
	for _, k := range e.store.Keys() {
		if err := e.store.RemoveItem(k); err != nil {
			ui.Fail("reset: " + err.Error())
			return 1
		}
	}
	ui.OK("storage cleared")
	return 0
}

func doConfig(a []string, opt Options) int {
	cfg := opt.Config
	switch {
	case len(a) == 0:
		out := ui.Out()
		fmt.Fprintf(out, "data_file: %s\n", cfg.DataFile)
		fmt.Fprintf(out, "theme: %s\n", cfg.Theme)
		fmt.Fprintf(out, "greeting: %s\n", cfg.Greeting)
		fmt.Fprintf(out, "hour12: %t\n", cfg.Hour12)
		fmt.Fprintf(out, "log_file: %s\n", cfg.LogFile)
		return 0
	case len(a) == 1 && a[0] == "init":
	default:
		ui.Fail("usage: tada config [init]")
		return 2
	}

	path := opt.ConfigPath
	if path == "" {
		p, err := config.Path()
		if err != nil {
			ui.Fail("config: " + err.Error())
			return 1
		}
		path = p
	}
	if _, err := os.Stat(path); err == nil {
		ui.Fail("config: " + path + " already exists")
		return 2
	} else if !errors.Is(err, os.ErrNotExist) {
		ui.Fail("config: " + err.Error())
		return 1
	}
	if err := config.Save(path, cfg); err != nil {
		ui.Fail("config: " + err.Error())
		return 1
	}
	ui.OK("wrote " + path)
	return 0
}

func doTheme(e *env, name string) int {
	if name == "" {
		cur := e.prefs.Theme()
		for _, n := range ui.Names {
			mark := "  "
			if n == cur {
				mark = ui.Current().Accent.Render("> ")
			}
			fmt.Fprintln(ui.Out(), mark+n)
		}
		return 0
	}
	if !ui.Known(name) {
		ui.Fail("unknown theme: " + name)
		ui.Hint("Themes: " + fmt.Sprint(ui.Names))
		return 2
	}
	if err := e.prefs.SetTheme(name); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	ui.SetTheme(name)
	ui.OK("theme set to " + name)
	return 0
}

// -------------- rendering helpers --------------

func flatLines(rows []tasklist.Row, start int) []string {
	t := ui.Current()
	if len(rows) == 0 {
		return []string{t.Muted.Render("no tasks")}
	}
	out := make([]string, 0, len(rows))
	for i, r := range rows {
		idx := fmt.Sprintf("%2d.", start+i)
		box := t.Muted.Render(t.BoxUnchecked)
		text := ui.Truncate(r.Text, 80)
		if r.Completed {
			box, text = t.Success.Render(t.BoxChecked), t.Done.Render(text)
		}
		out = append(out, fmt.Sprintf("%s %s %s  %s",
			t.Muted.Render(idx), box, text, t.Muted.Render(r.Time)))
	}
	return out
}

func groupLines(v tasklist.View) []string {
	t := ui.Current()
	var lines []string
	lines = append(lines, t.Accent.Render(fmt.Sprintf("Active (%d)", len(v.Active))))
	if len(v.Active) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(v.Active, 1)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Accent.Render(fmt.Sprintf("Completed (%d)", v.CompletedCount)))
	if len(v.Completed) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(v.Completed, len(v.Active)+1)...)
	}
	return lines
}
