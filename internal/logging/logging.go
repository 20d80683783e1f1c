// Package logging builds the slog logger used by the command line tools.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/golang-cz/devslog"
	"github.com/mattn/go-isatty"
)

// Options selects the logger output.
type Options struct {
	Verbose bool // debug level instead of warn
	// Dev forces the colored development handler even when w is not a terminal.
	Dev bool
}

// New returns a logger writing to w. Terminals get the devslog handler,
// everything else JSON records.
func New(w io.Writer, opts Options) *slog.Logger {
	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	if opts.Dev || isTerminal(w) {
		return slog.New(devslog.NewHandler(w, &devslog.Options{HandlerOptions: handlerOpts}))
	}
	return slog.New(slog.NewJSONHandler(w, handlerOpts))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
