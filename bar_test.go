package logger

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBarRendersHalf(t *testing.T) {
	buf := captureOutput(t)

	b := StartBar(10, false)
	b.Update(5)
	b.Stop()

	require.Equal(t, "\r50%[█████░░░░░]\n", buf.String())
}

func TestBarClampsAboveMax(t *testing.T) {
	buf := captureOutput(t)

	b := StartBar(200, false)
	b.Update(50)
	b.Update(250)
	b.Stop()

	frames := strings.Split(buf.String(), "\r")
	require.Equal(t, []string{"", "25%[██░░░░░░░░]", "100%[██████████]\n"}, frames)
}

func TestBarClampsBelowZero(t *testing.T) {
	buf := captureOutput(t)

	b := StartBar(10, false)
	b.Update(-3)
	b.Stop()

	require.Equal(t, "\r0%[░░░░░░░░░░]\n", buf.String())
}

func TestBarZeroMaxRendersComplete(t *testing.T) {
	buf := captureOutput(t)

	b := StartBar(0, false)
	b.Update(0)
	b.Stop()

	require.Equal(t, "\r100%[██████████]\n", buf.String())
}

func TestBarFloatProgress(t *testing.T) {
	buf := captureOutput(t)

	b := StartBar(1.0, false)
	b.Update(0.25)
	b.Stop()

	require.Equal(t, "\r25%[██░░░░░░░░]\n", buf.String())
}

func TestBarPercentMonotonic(t *testing.T) {
	buf := captureOutput(t)

	b := StartBar(10, false)
	for _, v := range []int{0, 1, 3, 3, 7, 10} {
		b.Update(v)
	}
	b.Stop()

	prev := -1
	for _, frame := range strings.Split(buf.String(), "\r") {
		idx := strings.Index(frame, "%")
		if idx <= 0 {
			continue
		}
		pct, err := strconv.Atoi(frame[:idx])
		require.NoError(t, err)
		require.GreaterOrEqual(t, pct, prev)
		prev = pct
	}
	require.Equal(t, 100, prev)
}

func TestBarPadsLine(t *testing.T) {
	buf := captureOutput(t)

	defer ExtendPadding(4).Close()
	b := StartBar(10, false)
	b.Update(10)
	b.Stop()

	require.Equal(t, "\r    100%[██████████]\n", buf.String())
}

func TestBarClearOnStopBlanksDrawnWidth(t *testing.T) {
	buf := captureOutput(t)

	b := StartBar(10, true)
	b.Update(5)
	b.Stop()

	// "50%[" is 4 cells, the bar 10, "]" one more: 15 cells to blank.
	want := "\r" + strings.Repeat(" ", 15) + "\r"
	require.True(t, strings.HasSuffix(buf.String(), want))
}

func TestBarStopReleasesStreamExactlyOnce(t *testing.T) {
	captureOutput(t)

	b := StartBar(4, false)
	b.Update(4)

	unblocked := make(chan int, 1)
	go func() {
		unblocked <- Logf("next\n")
	}()

	select {
	case <-unblocked:
		t.Fatal("log call went through while the bar owned the stream")
	case <-time.After(50 * time.Millisecond):
	}

	b.Stop()
	b.Stop()

	select {
	case <-unblocked:
	case <-time.After(2 * time.Second):
		t.Fatal("log call still blocked after bar stopped")
	}
}

func TestBarUpdateAfterStopIsNoop(t *testing.T) {
	buf := captureOutput(t)

	b := StartBar(10, false)
	b.Stop()
	b.Update(5)

	require.Equal(t, "\n", buf.String())
}
