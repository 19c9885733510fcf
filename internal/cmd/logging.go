// Copyright 2012-2024 Canonical Ltd.
// Licensed under the LGPLv3, see LICENSE file for details.

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/juju/errors"
	"github.com/juju/gnuflag"
	"github.com/juju/loggo/v2"
	"github.com/juju/loggo/v2/loggocolor"
	"github.com/juju/lumberjack/v2"
	"github.com/mattn/go-isatty"
)

const (
	logFileWriterName = "logfile"
	warningWriterName = "warning"

	// logFileMaxSizeMB is the size at which the log file is rotated.
	logFileMaxSizeMB  = 50
	logFileMaxBackups = 2
)

// Log supplies the necessary functionality for Commands that wish to set up
// logging.
type Log struct {
	// DefaultConfig is the default format used when configuring logging.
	DefaultConfig string
	Path          string
	Verbose       bool
	Quiet         bool
	Debug         bool
	ShowLog       bool
	Config        string
	// NoColor disables coloured log output even when stderr is a terminal.
	NoColor bool
}

// AddFlags adds appropriate flags to f.
func (l *Log) AddFlags(f *gnuflag.FlagSet) {
	f.StringVar(&l.Path, "log-file", "", "Path to write log to")
	f.BoolVar(&l.Verbose, "verbose", false, "Show more verbose output")
	f.BoolVar(&l.Quiet, "quiet", false, "Show no informational output")
	f.BoolVar(&l.Debug, "debug", false, "Equivalent to --show-log --logging-config=<root>=DEBUG")
	f.BoolVar(&l.ShowLog, "show-log", false, "If set, write the log file to stderr")
	f.StringVar(&l.Config, "logging-config", l.DefaultConfig, "Specify log levels for modules")
	f.BoolVar(&l.NoColor, "no-color", false, "Disable ANSI colour codes in log output")
}

// GetLogWriter returns a logging writer for the specified target. Terminals
// get colour.
func (l *Log) GetLogWriter(target io.Writer) loggo.Writer {
	if !l.NoColor && isTerminal(target) {
		return loggocolor.NewWriter(target)
	}
	return loggo.NewSimpleWriter(target, loggo.DefaultFormatter)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// Start starts logging using the given Context.
func (l *Log) Start(ctx *Context) error {
	if l.Verbose && l.Quiet {
		return errors.New(`"verbose" and "quiet" flags clash, please use one or the other, not both`)
	}
	ctx.quiet = l.Quiet
	ctx.verbose = l.Verbose

	if l.Path != "" {
		path := ctx.AbsPath(l.Path)
		target := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    logFileMaxSizeMB,
			MaxBackups: logFileMaxBackups,
		}
		_, _ = loggo.RemoveWriter(logFileWriterName)
		writer := loggo.NewSimpleWriter(target, loggo.DefaultFormatter)
		if err := loggo.RegisterWriter(logFileWriterName, writer); err != nil {
			return errors.Annotatef(err, "opening log file %q", path)
		}
	}

	level := loggo.WARNING
	if l.ShowLog {
		level = loggo.INFO
	}
	if l.Debug {
		l.ShowLog = true
		level = loggo.DEBUG
		// override logging config
		l.Config = "<root>=DEBUG"
	}
	if l.ShowLog {
		// We replace the default writer to use ctx.Stderr rather than os.Stderr.
		if _, err := loggo.ReplaceDefaultWriter(l.GetLogWriter(ctx.Stderr)); err != nil {
			return errors.Trace(err)
		}
	} else {
		_, _ = loggo.RemoveWriter(loggo.DefaultWriterName)
		_, _ = loggo.RemoveWriter(warningWriterName)
		// Create a simple writer that doesn't show filenames, or timestamps,
		// and only shows warning or above.
		if err := loggo.RegisterWriter(warningWriterName, NewWarningWriter(ctx.Stderr)); err != nil {
			return errors.Trace(err)
		}
	}
	// Set the level on the root logger.
	loggo.GetLogger("").SetLogLevel(level)
	// Override the logging config with specified logging config.
	if err := loggo.ConfigureLoggers(l.Config); err != nil {
		return errors.Annotate(err, "configuring loggers")
	}
	return nil
}

// NewWarningWriter will write out colored severity levels if the writer is
// outputting to a terminal.
func NewWarningWriter(writer io.Writer) loggo.Writer {
	w := &warningWriter{writer: writer}
	return loggo.NewMinimumLevelWriter(w, loggo.WARNING)
}

type warningWriter struct {
	writer io.Writer
}

// Write implements loggo.Writer.
func (w *warningWriter) Write(entry loggo.Entry) {
	fmt.Fprintf(w.writer, "%s %s\n", entry.Level, entry.Message)
}
