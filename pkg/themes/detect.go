package themes

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Profile reports the color capability of the environment, from the usual
// TERM/COLORTERM conventions.
func Profile() termenv.Profile {
	return termenv.EnvColorProfile()
}

// Detect chooses a theme for the given writer: the default Literate theme
// when the writer is an interactive color-capable terminal, None otherwise
// (pipes, files, NO_COLOR, TERM=dumb).
func Detect(w io.Writer) Theme {
	f, ok := w.(*os.File)
	if !ok {
		return None
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return None
	}
	if termenv.EnvNoColor() || os.Getenv("TERM") == "dumb" {
		return None
	}
	p := Profile()
	if p == termenv.Ascii {
		return None
	}
	if p == termenv.ANSI {
		return Sixteen(p)
	}
	return Literate(p)
}
