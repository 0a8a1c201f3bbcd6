package logger

import (
	"fmt"
	"strings"
)

// Real covers the numeric kinds a Bar can measure progress in.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// barCells is the fixed width of the bar in display cells.
const barCells = 10

const (
	cellFull  = "█"
	cellBlank = "░"
)

// Bar is a determinate-progress widget rendering a ten-cell bar with a
// percentage prefix, e.g. "25%[██░░░░░░░░]". Like Spinner it owns the
// shared stream from construction until Stop.
type Bar[T Real] struct {
	max         T
	lastCells   int
	clearOnStop bool
	stopped     bool
}

// StartBar acquires the shared stream and returns a bar counting toward
// max. A max of zero or below always renders as complete.
func StartBar[T Real](max T, clearOnStop bool) *Bar[T] {
	mu.Lock()
	return &Bar[T]{max: max, clearOnStop: clearOnStop}
}

// Update redraws the bar for cur, clamped to [0, max]. The percentage and
// the filled cell count both round down, so the bar only shows 100% when
// cur reaches max.
func (b *Bar[T]) Update(cur T) {
	if b.stopped {
		return
	}
	ratio := 1.0
	if b.max > 0 {
		if cur < 0 {
			cur = 0
		}
		if cur > b.max {
			cur = b.max
		}
		ratio = float64(cur) / float64(b.max)
	}
	percent := int(ratio * 100)
	filled := int(ratio * barCells)

	padw := int(pad.Load())
	prefix := fmt.Sprintf("%d%%[", percent)
	fmt.Fprintf(out, "\r%*s%s%s%s]", padw, "", prefix,
		strings.Repeat(cellFull, filled), strings.Repeat(cellBlank, barCells-filled))

	// Track display cells, not bytes: the cell glyphs are multi-byte.
	b.lastCells = padw + len(prefix) + barCells + 1
}

// Stop finalizes the line and releases the shared stream. If the bar was
// started with clearOnStop, the exact width of the last drawing is blanked
// out; otherwise the final bar is preserved with a newline. Safe to call
// more than once; the stream is released exactly once.
func (b *Bar[T]) Stop() {
	if b.stopped {
		return
	}
	b.stopped = true
	if b.clearOnStop {
		fmt.Fprintf(out, "\r%*s\r", b.lastCells, "")
	} else {
		fmt.Fprint(out, "\n")
	}
	mu.Unlock()
}
