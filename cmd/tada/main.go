package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/tada/internal/cli"
	"github.com/idilsaglam/tada/internal/config"
	"github.com/idilsaglam/tada/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	groupTasks := flag.Bool("group", false, "group ls output by active/completed")
	configPath := flag.String("config", "", "path to config.yaml (default $TADA_CONFIG or the user config dir)")
	dataFile := flag.String("data", "", "path to the local storage file (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		ui.Fail("config: " + err.Error())
		os.Exit(1)
	}
	if *dataFile != "" {
		cfg.DataFile = *dataFile
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		ui.Fail("log: " + err.Error())
		os.Exit(1)
	}

	// Hand the remaining args to the CLI runner.
	code := cli.Run(flag.Args(), cli.Options{
		Group:      *groupTasks,
		Config:     cfg,
		ConfigPath: *configPath,
	})
	closeLog()
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}

// setupLogging sends the standard logger to the configured file. Without
// one, logs are dropped so they cannot tear the dashboard's screen.
func setupLogging(cfg config.Config) (func(), error) {
	path := cfg.LogFile
	if path == "" && strings.TrimSpace(os.Getenv("TADA_DEBUG")) != "" {
		path = "tada-debug.log"
	}
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "tada")
	if err != nil {
		return nil, err
	}
	return func() { f.Close() }, nil
}
