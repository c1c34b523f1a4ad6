package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/idilsaglam/tada/internal/config"
	"github.com/idilsaglam/tada/internal/prefs"
	"github.com/idilsaglam/tada/internal/store/localstore"
	"github.com/idilsaglam/tada/internal/tasklist"
	"github.com/idilsaglam/tada/internal/tui"
	"github.com/idilsaglam/tada/internal/ui"
)

// Options tune output behavior from root flags.
type Options struct {
	Group  bool // list grouped by active/completed
	Config config.Config
	// ConfigPath is where `config init` writes; empty means config.Path().
	ConfigPath string
	// Store overrides the file named by Config.DataFile.
	Store localstore.Storage
}

type env struct {
	store localstore.Storage
	tasks *tasklist.Manager
	prefs *prefs.Prefs
	cfg   config.Config
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
// With no arguments it opens the dashboard.
func Run(args []string, opt Options) int {
	cmd, a := "dash", []string(nil)
	if len(args) > 0 {
		cmd, a = args[0], args[1:]
	}

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0
	case "config":
		return doConfig(a, opt)
	}

	e, err := open(opt, cmd != "dash")
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	ui.SetTheme(e.prefs.Theme())

	switch cmd {
	case "dash":
		if err := tui.Run(tui.New(e.store, e.cfg)); err != nil {
			ui.Fail("tui: " + err.Error())
			return 1
		}
		return 0

	case "ls":
		return doList(e, opt)

	case "add":
		if len(a) == 0 {
			ui.Fail("usage: tada add <text...>")
			return 2
		}
		return doAdd(e, strings.Join(a, " "))

	case "done":
		n, code := position(cmd, a, 1)
		if code != 0 {
			return code
		}
		return doToggle(e, n)

	case "rm":
		n, code := position(cmd, a, 1)
		if code != 0 {
			return code
		}
		return doRemove(e, n)

	case "rename":
		if len(a) < 2 {
			ui.Fail("usage: tada rename <n> <text...>")
			return 2
		}
		n, code := position(cmd, a[:1], 1)
		if code != 0 {
			return code
		}
		return doRename(e, n, strings.Join(a[1:], " "))

	case "mv":
		if len(a) != 2 {
			ui.Fail("usage: tada mv <from> <to>")
			return 2
		}
		from, code := position(cmd, a[:1], 1)
		if code != 0 {
			return code
		}
		to, code := position(cmd, a[1:], 1)
		if code != 0 {
			return code
		}
		return doMove(e, from, to)

	case "greet":
		if len(a) == 1 && a[0] == "--reset" {
			return doGreetReset(e)
		}
		return doGreet(e, strings.Join(a, " "))

	case "reset":
		if len(a) != 0 {
			ui.Fail("usage: tada reset")
			return 2
		}
		return doReset(e)

	case "theme":
		if len(a) > 1 {
			ui.Fail("usage: tada theme [name]")
			return 2
		}
		name := ""
		if len(a) == 1 {
			name = a[0]
		}
		return doTheme(e, name)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(ui.Out())
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Fprintf(ui.Out(), `tada - a personal dashboard: greeting, theme, clock and tasks

Usage:
  tada [flags] [subcommand] [args]

Subcommands:
  dash                 Open the interactive dashboard (default)
  ls                   List tasks (active first, then completed)
  add <text...>        Add a new task
  done <n>             Toggle task n between active and completed
  rm <n>               Remove task n
  rename <n> <text...> Replace the text of task n
  mv <from> <to>       Move an active task to another active position
  greet [text...]      Show or set the greeting banner
  greet --reset        Go back to the default greeting
  theme [name]         Show or set the theme (%s)
  reset                Forget every task and setting in the storage file
  config [init]        Show the effective config, or write it to the config file

<n> is the 1-based position printed by ls.

Examples:
  tada add "Buy milk"
  tada ls
  tada done 2
  tada mv 3 1
`, strings.Join(ui.Names, ", "))
}

// open binds the store. The dashboard loads its own task list, so withTasks
// is false for it and the sequence is still read only once per process.
func open(opt Options, withTasks bool) (*env, error) {
	cfg := opt.Config
	if cfg.Theme == "" {
		cfg.Theme = config.DefaultTheme
	}
	if cfg.Greeting == "" {
		cfg.Greeting = config.DefaultGreeting
	}
	store := opt.Store
	if store == nil {
		f, err := localstore.Open(cfg.DataFile)
		if err != nil {
			return nil, err
		}
		store = f
	}
	e := &env{
		store: store,
		prefs: prefs.New(store, cfg.Greeting, cfg.Theme, ui.Known),
		cfg:   cfg,
	}
	if withTasks {
		e.tasks = tasklist.New(store)
	}
	return e, nil
}

func position(cmd string, a []string, want int) (int, int) {
	if len(a) != want {
		ui.Fail(fmt.Sprintf("usage: tada %s <n>", cmd))
		return 0, 2
	}
	n, err := strconv.Atoi(a[0])
	if err != nil {
		ui.Fail(cmd + ": not a number: " + a[0])
		return 0, 2
	}
	return n, 0
}

// resolve maps a 1-based ls position to a task row.
func resolve(e *env, n int) (tasklist.Row, bool) {
	rows := e.tasks.View().Rows()
	if n < 1 || n > len(rows) {
		ui.Fail(fmt.Sprintf("position out of range: have %d, got %d", len(rows), n))
		ui.Hint("Hint: run `tada ls` to see valid positions")
		return tasklist.Row{}, false
	}
	return rows[n-1], true
}

// saved reports the outcome of the manager's last write.
func saved(e *env, msg string) int {
	if err := e.tasks.Err(); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	ui.OK(msg)
	return 0
}
