package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// errDiagnostics is returned by commands that printed diagnostics, so that
// the process exits with a non-zero status without printing anything else.
var errDiagnostics = errors.New("diagnostics were reported")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errDiagnostics) {
			fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "routepattern",
		Short: "Compile and check URL route patterns",
		Long: `routepattern compiles route patterns such as /users/{id/[0-9]+/}
and reports the problems it finds, with the column they were found at.

Patterns are made of literal text, "/" separators and placeholders:

  {name}          required placeholder
  {name/regex/}   required placeholder constrained by a regex
  {+name}         optional placeholder, may also carry a regex
  {*name}         placeholder absorbing the rest of the path`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		parseCmd(),
		checkCmd(),
		versionCmd(),
	)

	return rootCmd
}

func newLogger(w io.Writer, json, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelWarn}
	if verbose {
		opts.Level = slog.LevelDebug
	}

	if json {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
