package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// New returns a tint-backed logger writing to w. Debug output is enabled by
// verbose; otherwise only warnings and errors are shown. Colour is only used
// when w is a terminal.
func New(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      Level(verbose),
		TimeFormat: "[15:04:05.000]",
		NoColor:    !IsTerminal(w),
	}))
}

// Level maps the --verbose flag to a slog level
func Level(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// IsTerminal reports whether w is an interactive terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
