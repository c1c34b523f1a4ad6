package ui

import (
	"fmt"
	"io"
	"os"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetOutput redirects OK/Fail/Panel output; nil restores the process streams.
func SetOutput(out, errOut io.Writer) {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	stdout, stderr = out, errOut
}

// Out is where CLI output goes.
func Out() io.Writer { return stdout }

func OK(msg string) { fmt.Fprintln(stdout, current.Success.Render(current.SymDone+" "+msg)) }

func Fail(msg string) { fmt.Fprintln(stderr, current.Error.Render("✖ "+msg)) }

// Hint prints a muted follow-up line to stderr.
func Hint(msg string) { fmt.Fprintln(stderr, current.Muted.Render(msg)) }
