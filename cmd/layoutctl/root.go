package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "layoutctl",
	Short: "Replay and inspect region layout scenarios",
	Long: `layoutctl replays declarative scenario files against a region layout
tracker and renders the resulting state. Scenarios describe a fixed-capacity
space and an ordered list of add/remove/find/compact operations, which makes
allocation layouts reproducible and easy to inspect.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Trace every operation to stderr")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

// traceLogger returns the logger injected into replayed trackers:
// stderr text when --verbose, nil (tracing disabled) otherwise.
func traceLogger() *slog.Logger {
	if !verbose || quiet {
		return nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// outWriter returns the destination for normal command output.
func outWriter() io.Writer {
	if quiet {
		return io.Discard
	}
	return os.Stdout
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
