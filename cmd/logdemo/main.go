// Command logdemo exercises the logger package against a real terminal:
// the color palette, nested padding, and the spinner, bar and counting
// widgets.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Luchinkin/logger"
	"github.com/Luchinkin/logger/internal/termio"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "logdemo",
	Short: "Demo driver for the logger package",
	Long: `logdemo drives the synchronized console logger and its widgets.

The spinner, bar and count commands animate by overwriting a single
terminal line; run them on an interactive terminal to see the effect.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if !termio.IsTerminal(os.Stdout) {
			fmt.Fprintln(os.Stderr, "note: stdout is not a terminal, line overwrites will stack up")
		}
	},
}

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "Print one line per palette color",
	Run: func(cmd *cobra.Command, args []string) {
		palette := []logger.Color{
			logger.Gray, logger.Black, logger.White,
			logger.Red, logger.Green, logger.Blue,
			logger.Cyan, logger.Magenta, logger.Yellow,
			logger.DarkGray, logger.DarkRed, logger.DarkGreen,
			logger.DarkBlue, logger.DarkCyan, logger.DarkMagenta,
			logger.DarkYellow,
		}
		for _, c := range palette {
			logger.Clogf(c, "the quick brown fox (%s)\n", c)
		}
	},
}

var nestCmd = &cobra.Command{
	Use:   "nest",
	Short: "Show nested padded sections",
	Run: func(cmd *cobra.Command, args []string) {
		logger.Logf("building project\n")
		func() {
			defer logger.ExtendPadding(2).Close()
			for _, pkg := range []string{"core", "net", "storage"} {
				logger.Clogf(logger.Cyan, "compiling %s\n", pkg)
				func() {
					defer logger.ExtendPadding(2).Close()
					logger.Clogf(logger.DarkGray, "12 files, 0 warnings\n")
				}()
			}
		}()
		logger.Clogf(logger.Green, "done\n")
	},
}

var (
	spinClear    bool
	spinDuration time.Duration
)

var spinCmd = &cobra.Command{
	Use:   "spin",
	Short: "Run a spinner for a fixed duration",
	Run: func(cmd *cobra.Command, args []string) {
		logger.Logf("waiting on something slow\n")
		s := logger.StartSpinner(spinClear)
		deadline := time.Now().Add(spinDuration)
		for time.Now().Before(deadline) {
			s.Update()
			time.Sleep(20 * time.Millisecond)
		}
		s.Stop()
		logger.Clogf(logger.Green, "done\n")
	},
}

var (
	barClear bool
	barTotal int
)

var barCmd = &cobra.Command{
	Use:   "bar",
	Short: "Run a progress bar to completion",
	Run: func(cmd *cobra.Command, args []string) {
		logger.Logf("downloading %d chunks\n", barTotal)
		b := logger.StartBar(barTotal, barClear)
		for i := 0; i <= barTotal; i++ {
			b.Update(i)
			time.Sleep(30 * time.Millisecond)
		}
		b.Stop()
		logger.Clogf(logger.Green, "done\n")
	},
}

var countKB int

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Stream data through a counting writer",
	Run: func(cmd *cobra.Command, args []string) {
		logger.Logf("streaming %dk\n", countKB)
		c := logger.NewCountingWriter(io.Discard, true)
		chunk := make([]byte, 1024)
		for i := 0; i < countKB; i++ {
			c.Write(chunk)
			time.Sleep(50 * time.Millisecond)
		}
		c.Stop()
		logger.Logf("wrote %d bytes (terminal width %d)\n",
			c.BytesWritten(), termio.Width(os.Stdout))
	},
}

func init() {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("logdemo version {{.Version}}\n")
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	spinCmd.Flags().BoolVar(&spinClear, "clear", false, "erase the spinner line when it stops")
	spinCmd.Flags().DurationVar(&spinDuration, "duration", 2*time.Second, "how long to spin")
	barCmd.Flags().BoolVar(&barClear, "clear", false, "erase the bar when it stops")
	barCmd.Flags().IntVar(&barTotal, "total", 40, "number of progress steps")
	countCmd.Flags().IntVar(&countKB, "kb", 64, "kilobytes to stream")

	rootCmd.AddCommand(colorsCmd, nestCmd, spinCmd, barCmd, countCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.New(color.FgHiRed).Sprint("error:"), err)
		os.Exit(2)
	}
}
