package logger

import (
	"fmt"
	"time"
)

// spinFrames cycles two diagonals, a vertical bar and a horizontal line.
var spinFrames = [...]string{`\`, `|`, `/`, `─`}

// spinInterval is the minimum time between redraws; faster Update calls
// are dropped.
const spinInterval = 100 * time.Millisecond

// Spinner is an indeterminate-progress widget. It owns the shared stream
// for its entire lifetime: every other log call or widget blocks until
// Stop. Drive it from the goroutine doing the work:
//
//	s := logger.StartSpinner(false)
//	for working() {
//		s.Update()
//	}
//	s.Stop()
type Spinner struct {
	seq         int
	last        time.Time
	clearOnStop bool
	stopped     bool
}

// StartSpinner acquires the shared stream and returns the live widget.
// With clearOnStop the line is returned to column zero when the spinner
// stops; otherwise the last frame stays on screen followed by a newline.
func StartSpinner(clearOnStop bool) *Spinner {
	mu.Lock()
	return &Spinner{last: time.Now(), clearOnStop: clearOnStop}
}

// Update redraws the next frame in place, at most once per 100ms.
func (s *Spinner) Update() {
	if s.stopped || time.Since(s.last) < spinInterval {
		return
	}
	s.seq = (s.seq + 1) % len(spinFrames)
	fmt.Fprintf(out, "%*s%s\r", int(pad.Load()), "", spinFrames[s.seq])
	s.last = time.Now()
}

// Stop finalizes the line and releases the shared stream. Safe to call
// more than once; the stream is released exactly once.
func (s *Spinner) Stop() {
	if s.stopped {
		return
	}
	s.stopped = true
	if s.clearOnStop {
		fmt.Fprint(out, "\r")
	} else {
		fmt.Fprint(out, "\n")
	}
	mu.Unlock()
}
