package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/gofmi/gofmi/fmi"
)

const varsUsage = `gofmi vars - List model variables

Usage:
  gofmi vars [options] PATH

Options:
  --causality C     Only variables with causality C (input, output, parameter, ...)
  --variability V   Only variables with variability V (constant, fixed, tunable, ...)
  --type T          Only variables of type T (Real, Integer, Boolean, String, Enumeration)
  --count           Print only the number of matching variables
  --format FMT      Output format: text, json (default: text)
  -h, --help        Show help

Examples:
  gofmi vars BouncingBall.fmu
  gofmi vars --causality output BouncingBall.fmu
  gofmi vars --type Real --variability continuous BouncingBall.fmu
  gofmi vars --format json BouncingBall.fmu
`

// varFilter selects variables by the enum values given on the command line.
type varFilter struct {
	causality   fmi.Optional[fmi.Causality]
	variability fmi.Optional[fmi.Variability]
	typ         fmi.Optional[fmi.VariableType]
}

func newVarFilter(causality, variability, typ string) (varFilter, error) {
	var f varFilter
	if causality != "" {
		c, err := fmi.ParseCausality(causality)
		if err != nil {
			return f, err
		}
		f.causality = fmi.Some(c)
	}
	if variability != "" {
		v, err := fmi.ParseVariability(variability)
		if err != nil {
			return f, err
		}
		f.variability = fmi.Some(v)
	}
	if typ != "" {
		t, ok := fmi.VariableTypeForElement(typ)
		if !ok {
			return f, fmt.Errorf("unknown variable type %q", typ)
		}
		f.typ = fmi.Some(t)
	}
	return f, nil
}

func (f varFilter) match(v fmi.ScalarVariable) bool {
	if c, ok := f.causality.Get(); ok && v.Causality() != c {
		return false
	}
	if vb, ok := f.variability.Get(); ok && v.Variability() != vb {
		return false
	}
	if t, ok := f.typ.Get(); ok && v.Type() != t {
		return false
	}
	return true
}

func (c *cli) cmdVars(args []string) int {
	fs := flag.NewFlagSet("vars", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, varsUsage) }

	causality := fs.String("causality", "", "filter by causality")
	variability := fs.String("variability", "", "filter by variability")
	typ := fs.String("type", "", "filter by variable type")
	count := fs.Bool("count", false, "print only the count")
	format := fs.String("format", formatText, "output format: text, json")
	help := fs.Bool("h", false, "show help")
	fs.BoolVar(help, "help", false, "show help")

	if err := fs.Parse(args); err != nil {
		return exitError
	}

	if *help || c.HelpFlag {
		_, _ = fmt.Fprint(os.Stdout, varsUsage)
		return exitOK
	}

	if fs.NArg() != 1 {
		printError("expected exactly one PATH")
		fmt.Fprint(os.Stderr, varsUsage)
		return exitError
	}

	filter, err := newVarFilter(*causality, *variability, *typ)
	if err != nil {
		printError("%v", err)
		return exitError
	}

	md, err := c.load(fs.Arg(0))
	if err != nil {
		printError("failed to load: %v", err)
		return exitError
	}

	var selected []VariableJSON
	for i, v := range md.ModelVariables().All() {
		if filter.match(v) {
			selected = append(selected, buildVariableJSON(uint32(i+1), v))
		}
	}

	if *count {
		fmt.Println(len(selected))
		return exitOK
	}

	switch *format {
	case formatJSON:
		if selected == nil {
			selected = []VariableJSON{}
		}
		data, err := marshalJSON(selected, true)
		if err != nil {
			printError("encoding JSON: %v", err)
			return exitError
		}
		fmt.Println(string(data))
	case formatText, "":
		printVariableTable(selected)
	default:
		printError("unknown format: %s", *format)
		return exitError
	}
	return exitOK
}

func printVariableTable(vars []VariableJSON) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "INDEX\tNAME\tTYPE\tVR\tCAUSALITY\tVARIABILITY\tINITIAL")
	for _, v := range vars {
		initial := v.Initial
		if initial == "" {
			initial = "-"
		}
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%s\t%s\n",
			v.Index, v.Name, v.Type, v.ValueReference, v.Causality, v.Variability, initial)
	}
	_ = tw.Flush()
}
