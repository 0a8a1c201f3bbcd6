// Package logger prints formatted, indentation-padded, optionally colored
// text to a shared terminal stream. Every write path is serialized through
// one process-wide mutex so concurrent log lines and the transient widgets
// (Spinner, Bar, CountingWriter) never interleave on screen.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/fatih/color"

	"github.com/Luchinkin/logger/internal/termio"
)

var (
	// mu serializes every write to the shared stream. A widget holds it
	// from construction until Stop, so nothing can interleave with its
	// animation frames.
	mu sync.Mutex

	// out is the shared stream. Defaults to a colorable stdout.
	out io.Writer = color.Output

	// pad is the current indentation width in spaces, 0-255.
	pad atomic.Uint32

	fatalMu   sync.Mutex
	fatalHook = defaultFatalHook
)

func defaultFatalHook() {
	os.Exit(1)
}

// SetOutput redirects the shared stream and returns the previous writer.
// Passing nil restores the default stdout. When w is a file, color escapes
// are enabled only if it is attached to a terminal.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	if w == nil {
		w = color.Output
	}
	out = w
	if f, ok := w.(*os.File); ok {
		color.NoColor = !termio.IsTerminal(f)
	}
	return prev
}

// SetFatalHook replaces the action Errorf takes after its message is
// written, returning the previous hook. The default hook exits the process
// with code 1. Passing nil restores the default.
func SetFatalHook(h func()) func() {
	fatalMu.Lock()
	defer fatalMu.Unlock()
	prev := fatalHook
	if h == nil {
		h = defaultFatalHook
	}
	fatalHook = h
	return prev
}

// Logf writes a formatted line in the default gray, left-padded by the
// current padding width. It returns the number of characters written,
// padding included.
func Logf(format string, args ...any) int {
	return Clogf(Gray, format, args...)
}

// Clogf is Logf with an explicit color. The color is applied before the
// write and reset afterwards; the returned count covers the padded text
// only, never the color escapes. Safe to call from any goroutine.
func Clogf(c Color, format string, args ...any) int {
	mu.Lock()
	defer mu.Unlock()
	return writeLine(c, format, args...)
}

// Errorf writes a red line and then invokes the fatal hook. This is a
// diagnostic halt, not a severity level: with the default hook the process
// terminates, message first.
func Errorf(format string, args ...any) {
	Clogf(Red, format, args...)
	fatalMu.Lock()
	hook := fatalHook
	fatalMu.Unlock()
	hook()
}

// writeLine renders one padded, colored line. Must be called with mu held.
func writeLine(c Color, format string, args ...any) int {
	a := c.ansi()
	a.SetWriter(out)
	n, _ := fmt.Fprintf(out, "%*s"+format, append([]any{int(pad.Load()), ""}, args...)...)
	a.UnsetWriter(out)
	return n
}
