// Package termio probes the terminal, if any, behind an output writer.
package termio

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// IsTerminal reports whether w is backed by an interactive terminal.
// Non-file writers (buffers, pipes wrapped in custom types) never are.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Width returns the column width of the terminal behind w, falling back to
// 80 when there is no terminal or the size cannot be read.
func Width(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 80
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
