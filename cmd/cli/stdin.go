package cli

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// interactive reports whether in is a terminal, in which case the console
// shows a prompt.
func interactive(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
