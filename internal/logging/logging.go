// Package logging configures the CLI's own diagnostics. Rendered log
// output goes to stdout; diagnostics stay on stderr so piping the rendered
// stream never mixes the two.
package logging

import (
	"log/slog"
	"os"
)

// Init creates and sets the package-level default slog logger, writing
// human-readable text to stderr. Verbose enables debug-level diagnostics;
// otherwise only warnings and errors surface.
func Init(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
