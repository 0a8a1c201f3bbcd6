package logger

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

// captureOutput redirects the shared stream into a buffer for the duration
// of the test and disables color escapes unless a test re-enables them.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prev := SetOutput(buf)
	prevNoColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() {
		SetOutput(prev)
		color.NoColor = prevNoColor
	})
	return buf
}

func TestLogfPadsAndCounts(t *testing.T) {
	buf := captureOutput(t)

	defer ExtendPadding(4).Close()
	n := Logf("hi\n")

	require.Equal(t, "    hi\n", buf.String())
	require.Equal(t, 7, n)
}

func TestLogfZeroPadding(t *testing.T) {
	buf := captureOutput(t)

	n := Logf("plain %s\n", "text")

	require.Equal(t, "plain text\n", buf.String())
	require.Equal(t, 11, n)
}

func TestClogfCountExcludesEscapes(t *testing.T) {
	buf := captureOutput(t)
	color.NoColor = false

	n := Clogf(Green, "ok\n")

	require.Equal(t, "\x1b[92mok\n\x1b[0m", buf.String())
	require.Equal(t, 3, n)
}

func TestErrorfWritesMessageBeforeHook(t *testing.T) {
	buf := captureOutput(t)

	var calls int
	var seen string
	prev := SetFatalHook(func() {
		calls++
		seen = buf.String()
	})
	defer SetFatalHook(prev)

	Errorf("boom %d\n", 7)

	require.Equal(t, 1, calls)
	require.Equal(t, "boom 7\n", seen)
}

func TestSetFatalHookReturnsPrevious(t *testing.T) {
	first := func() {}
	prev := SetFatalHook(first)
	defer SetFatalHook(prev)

	second := SetFatalHook(nil)
	require.NotNil(t, second)
}

func TestConcurrentLogsStayAtomic(t *testing.T) {
	buf := captureOutput(t)

	const workers = 8
	const lines = 25

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < lines; i++ {
				Logf("worker %d line %d\n", id, i)
			}
		}(w)
	}
	wg.Wait()

	got := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, got, workers*lines)

	whole := regexp.MustCompile(`^worker \d+ line \d+$`)
	for _, line := range got {
		require.True(t, whole.MatchString(line), fmt.Sprintf("interleaved line %q", line))
	}
}

func TestSetOutputNilRestoresDefault(t *testing.T) {
	buf := &bytes.Buffer{}
	prev := SetOutput(buf)
	defer SetOutput(prev)

	returned := SetOutput(nil)
	require.Equal(t, buf, returned)
}
