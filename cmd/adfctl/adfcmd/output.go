// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package adfcmd

import (
	"fmt"
	"io"
	"os"

	"github.com/juju/ansiterm"
	"github.com/mattn/go-isatty"

	"github.com/canonical/adfctl/internal/azure/errorutils"
)

// Step outcomes as shown to the user.
const (
	StatusOK      = "OK"
	StatusFailed  = "FAILED"
	StatusSkipped = "SKIPPED"
	StatusError   = "ERROR"
)

var statusColor = map[string]*ansiterm.Context{
	StatusOK:      ansiterm.Foreground(ansiterm.Green),
	StatusFailed:  ansiterm.Foreground(ansiterm.BrightRed),
	StatusError:   ansiterm.Foreground(ansiterm.BrightRed),
	StatusSkipped: ansiterm.Foreground(ansiterm.Yellow),
}

// NewStatusWriter wraps w so that statuses are coloured when w is a
// terminal.
func NewStatusWriter(w io.Writer) *ansiterm.Writer {
	writer := ansiterm.NewWriter(w)
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		writer.SetColorCapable(true)
	}
	return writer
}

// PrintStatus writes status in its colour followed by the message.
func PrintStatus(w *ansiterm.Writer, status, format string, args ...any) {
	if ctx, ok := statusColor[status]; ok {
		ctx.Fprintf(w, "%s", status)
	} else {
		fmt.Fprint(w, status)
	}
	fmt.Fprintf(w, " "+format+"\n", args...)
}

// ErrorMessage returns the text shown for a failed step.
func ErrorMessage(err error) string {
	return errorutils.Message(err)
}
