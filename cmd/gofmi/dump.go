package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gofmi/gofmi/cmd/internal/cliutil"
)

const dumpUsage = `gofmi dump - Output the model description as JSON

Usage:
  gofmi dump [options] PATH

Absent optional attributes are omitted. ModelStructure entries carry the
name of the variable they refer to.

Options:
  -o, --output FILE      Write to FILE instead of stdout
  --compact              Minified JSON (no indentation)
  -h, --help             Show help

Examples:
  gofmi dump BouncingBall.fmu
  gofmi dump --compact BouncingBall.fmu
  gofmi dump -o bb.json testdata/BouncingBall
  gofmi dump BouncingBall.fmu | jq '.modelVariables'
`

func (c *cli) cmdDump(args []string) int {
	fs := flag.NewFlagSet("dump", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, dumpUsage) }

	output := fs.String("o", "", "output file")
	fs.StringVar(output, "output", "", "output file")
	compact := fs.Bool("compact", false, "minified JSON")
	help := fs.Bool("h", false, "show help")
	fs.BoolVar(help, "help", false, "show help")

	if err := fs.Parse(args); err != nil {
		return exitError
	}

	if *help || c.HelpFlag {
		_, _ = fmt.Fprint(os.Stdout, dumpUsage)
		return exitOK
	}

	if fs.NArg() != 1 {
		printError("expected exactly one PATH")
		fmt.Fprint(os.Stderr, dumpUsage)
		return exitError
	}

	md, err := c.load(fs.Arg(0))
	if err != nil {
		printError("failed to load: %v", err)
		return exitError
	}

	data, err := marshalJSON(buildDumpOutput(md), !*compact)
	if err != nil {
		printError("failed to marshal JSON: %v", err)
		return exitError
	}

	w, closeOut, err := cliutil.GetOutput(*output)
	if err != nil {
		printError("opening output: %v", err)
		return exitError
	}
	defer closeOut()

	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		printError("writing output: %v", err)
		return exitError
	}
	return exitOK
}
