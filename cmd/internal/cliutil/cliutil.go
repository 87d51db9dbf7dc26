// Package cliutil provides shared CLI utilities for gofmi command-line tools.
package cliutil

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gofmi/gofmi"
)

// GlobalFlags holds the flags accepted before or around the subcommand.
type GlobalFlags struct {
	Verbose  int // 0 quiet, 1 debug, 2 trace
	HelpFlag bool
}

// ParseArgs parses global flags and extracts the subcommand from args.
// Flags handled: -v/--verbose, -vv, -h/--help.
// Unrecognized flags are passed through to the subcommand.
func ParseArgs(args []string) (flags GlobalFlags, cmd string, cmdArgs []string) {
	for _, arg := range args {
		switch {
		case arg == "-h" || arg == "--help":
			flags.HelpFlag = true
		case arg == "-v" || arg == "--verbose":
			if flags.Verbose < 1 {
				flags.Verbose = 1
			}
		case arg == "-vv":
			flags.Verbose = 2
		case len(arg) > 0 && arg[0] == '-':
			cmdArgs = append(cmdArgs, arg)
		default:
			if cmd == "" {
				cmd = arg
			} else {
				cmdArgs = append(cmdArgs, arg)
			}
		}
	}
	return
}

// Logger returns a text logger on w for the verbosity level, or nil when
// verbose is 0.
func Logger(w io.Writer, verbose int) *slog.Logger {
	if verbose == 0 {
		return nil
	}
	level := slog.LevelDebug
	if verbose >= 2 {
		level = gofmi.LevelTrace
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// GetOutput opens the output file or returns stdout.
func GetOutput(outputFile string) (*os.File, func(), error) {
	if outputFile == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(outputFile)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

// PrintError writes a formatted error message to stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
