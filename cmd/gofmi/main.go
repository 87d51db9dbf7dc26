// Command gofmi is a CLI tool for loading, querying, and dumping FMI 2.0
// model descriptions.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/gofmi/gofmi"
	"github.com/gofmi/gofmi/cmd/internal/cliutil"
)

// Exit codes.
const (
	exitOK    = 0 // success
	exitError = 1 // usage error or load failure
)

const usage = `gofmi - FMI 2.0 model description tool

Usage:
  gofmi <command> [options] [arguments]

Commands:
  load       Load a model description and print a summary
  vars       List model variables
  get        Show variables by name
  structure  Show outputs, derivatives and initial unknowns
  dump       Output the model description as JSON
  version    Show version

PATH may be a modelDescription.xml file, an extracted FMU directory or an
.fmu archive.

Common options:
  -v, --verbose     Enable debug logging
  -vv               Enable trace logging (implies -v)
  -h, --help        Show help

Examples:
  gofmi load BouncingBall.fmu
  gofmi vars --causality output BouncingBall.fmu
  gofmi get BouncingBall.fmu h der(h)
  gofmi structure testdata/BouncingBall
  gofmi dump BouncingBall.fmu | jq '.modelVariables'
`

type cli struct {
	cliutil.GlobalFlags
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags, cmd, cmdArgs := cliutil.ParseArgs(args)
	c := &cli{GlobalFlags: flags}

	if c.HelpFlag && cmd == "" {
		_, _ = fmt.Fprint(os.Stdout, usage)
		return exitOK
	}

	if cmd == "" {
		_, _ = fmt.Fprint(os.Stderr, usage)
		return exitError
	}

	switch cmd {
	case "load":
		return c.cmdLoad(cmdArgs)
	case "vars":
		return c.cmdVars(cmdArgs)
	case "get":
		return c.cmdGet(cmdArgs)
	case "structure":
		return c.cmdStructure(cmdArgs)
	case "dump":
		return c.cmdDump(cmdArgs)
	case "version":
		printVersion()
		return exitOK
	case "help":
		_, _ = fmt.Fprint(os.Stdout, usage)
		return exitOK
	default:
		_, _ = fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", cmd)
		_, _ = fmt.Fprint(os.Stderr, usage)
		return exitError
	}
}

func (c *cli) setupLogger() *slog.Logger {
	return cliutil.Logger(os.Stderr, c.Verbose)
}

// load reads the model description at path, logging per -v/-vv.
func (c *cli) load(path string) (*gofmi.ModelDescription, error) {
	var opts []gofmi.LoadOption
	if logger := c.setupLogger(); logger != nil {
		opts = append(opts, gofmi.WithLogger(logger))
	}
	return gofmi.LoadFile(path, opts...)
}

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("gofmi %s\n", version)
}

func printError(format string, args ...any) {
	cliutil.PrintError(format, args...)
}
