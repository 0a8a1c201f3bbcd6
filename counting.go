package logger

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// CountingWriter wraps a data writer, tracks bytes written and live-renders
// an elapsed/size ticker on the shared stream, e.g. "3s, 4.56k". When show
// is set it owns the shared stream from construction until Stop, with the
// same exclusivity as the other widgets; otherwise it only counts bytes and
// never touches the terminal.
type CountingWriter struct {
	writer  io.Writer
	bytes   int64
	last    string
	start   time.Time
	fieldMu sync.Mutex
	show    bool
	done    chan struct{}
	stopped bool
}

// NewCountingWriter wraps w. With show set it acquires the shared stream
// and starts a once-per-second ticker that keeps the display fresh even
// when writes stall.
func NewCountingWriter(w io.Writer, show bool) *CountingWriter {
	c := &CountingWriter{
		writer: w,
		show:   show,
		start:  time.Now(),
		done:   make(chan struct{}),
	}
	if show {
		mu.Lock()
		go c.tickLoop()
	}
	return c
}

// formatSize formats bytes as a 3-significant-digit string: 1.23k, 12.3k,
// 123k, 1.23M. Below one KiB it returns "".
func formatSize(bytes int64) string {
	kb := float64(bytes) / 1024.0
	if kb < 1.0 {
		return ""
	}
	if kb < 10 {
		return fmt.Sprintf("%.2fk", kb)
	}
	if kb < 100 {
		return fmt.Sprintf("%.1fk", kb)
	}
	if kb < 1000 {
		return fmt.Sprintf("%.0fk", kb)
	}
	mb := kb / 1024.0
	if mb < 10 {
		return fmt.Sprintf("%.2fM", mb)
	}
	if mb < 100 {
		return fmt.Sprintf("%.1fM", mb)
	}
	return fmt.Sprintf("%.0fM", mb)
}

// formatDuration formats a duration compactly: 3s, 1m 3s, 1h 2m.
func formatDuration(d time.Duration) string {
	d = d.Truncate(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm %ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", h, m)
}

// tickLoop refreshes the display every second until Stop.
func (c *CountingWriter) tickLoop() {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.fieldMu.Lock()
			if !c.stopped {
				c.refresh()
			}
			c.fieldMu.Unlock()
		}
	}
}

// refresh redraws the ticker line if it changed. Must be called with
// fieldMu held.
func (c *CountingWriter) refresh() {
	display := c.currentDisplay()
	if display != c.last {
		c.last = display
		fmt.Fprintf(out, "\r%*s%-20s", int(pad.Load()), "", Dim(display))
	}
}

// currentDisplay builds the "3s, 4.56k" string.
func (c *CountingWriter) currentDisplay() string {
	elapsed := time.Since(c.start)
	timeStr := formatDuration(elapsed)
	sizeStr := formatSize(c.bytes)
	if sizeStr != "" {
		return fmt.Sprintf("%s, %s", timeStr, sizeStr)
	}
	return timeStr
}

// Write implements io.Writer, counting bytes and refreshing the display.
func (c *CountingWriter) Write(p []byte) (n int, err error) {
	n, err = c.writer.Write(p)
	c.fieldMu.Lock()
	c.bytes += int64(n)
	if c.show && !c.stopped {
		c.refresh()
	}
	c.fieldMu.Unlock()
	return n, err
}

// BytesWritten returns the total bytes written so far.
func (c *CountingWriter) BytesWritten() int64 {
	c.fieldMu.Lock()
	defer c.fieldMu.Unlock()
	return c.bytes
}

// Stop halts the ticker, prints the final line and releases the shared
// stream. Safe to call more than once; the stream is released exactly once.
func (c *CountingWriter) Stop() {
	c.fieldMu.Lock()
	defer c.fieldMu.Unlock()
	if c.stopped {
		return
	}
	c.stopped = true
	if !c.show {
		return
	}
	close(c.done)
	fmt.Fprintf(out, "\r%*s%-20s\n", int(pad.Load()), "", Dim(c.currentDisplay()))
	mu.Unlock()
}
