package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gofmi/gofmi"
	"github.com/gofmi/gofmi/fmi"
)

const getUsage = `gofmi get - Show variables by name

Usage:
  gofmi get [options] PATH NAME...

Options:
  --full          Show full descriptions (no truncation)
  --format FMT    Output format: text, json (default: text)
  -h, --help      Show help

Examples:
  gofmi get BouncingBall.fmu h
  gofmi get BouncingBall.fmu h der(h) v
  gofmi get --format json BouncingBall.fmu g
`

func (c *cli) cmdGet(args []string) int {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, getUsage) }

	full := fs.Bool("full", false, "show full descriptions")
	format := fs.String("format", formatText, "output format: text, json")
	help := fs.Bool("h", false, "show help")
	fs.BoolVar(help, "help", false, "show help")

	if err := fs.Parse(args); err != nil {
		return exitError
	}

	if *help || c.HelpFlag {
		_, _ = fmt.Fprint(os.Stdout, getUsage)
		return exitOK
	}

	if fs.NArg() < 2 {
		printError("expected PATH and at least one variable NAME")
		fmt.Fprint(os.Stderr, getUsage)
		return exitError
	}

	md, err := c.load(fs.Arg(0))
	if err != nil {
		printError("failed to load: %v", err)
		return exitError
	}

	vars := md.ModelVariables()
	var found []VariableJSON
	missing := 0
	for _, name := range fs.Args()[1:] {
		v, ok := vars.ByName(name)
		if !ok {
			printError("not found: %s", name)
			missing++
			continue
		}
		found = append(found, buildVariableJSON(vars.IndexOf(name), v))
	}

	descLimit := 200
	if *full {
		descLimit = 0
	}

	switch *format {
	case formatJSON:
		if len(found) > 0 {
			data, err := marshalJSON(found, true)
			if err != nil {
				printError("encoding JSON: %v", err)
				return exitError
			}
			fmt.Println(string(data))
		}
	case formatText, "":
		for i, v := range found {
			if i > 0 {
				fmt.Println()
			}
			printVariable(md, v, descLimit)
		}
	default:
		printError("unknown format: %s", *format)
		return exitError
	}

	if missing > 0 {
		return exitError
	}
	return exitOK
}

func printVariable(md *gofmi.ModelDescription, v VariableJSON, descLimit int) {
	fmt.Printf("%s  #%d  vr=%d\n", v.Name, v.Index, v.ValueReference)
	fmt.Printf("  type:        %s\n", v.Type)
	fmt.Printf("  causality:   %s\n", v.Causality)
	fmt.Printf("  variability: %s\n", v.Variability)
	if v.Initial != "" {
		fmt.Printf("  initial:     %s\n", v.Initial)
	}
	if v.CanHandleMultipleSetPerTimeInstant {
		fmt.Println("  canHandleMultipleSetPerTimeInstant")
	}
	if v.Description != "" {
		fmt.Printf("  descr:       %s\n", normalizeDescription(v.Description, descLimit))
	}
	printAttribute(md, v.Attributes)
}

func printAttribute(md *gofmi.ModelDescription, attr fmi.Attribute) {
	var declared fmi.Optional[string]
	switch a := attr.(type) {
	case fmi.RealAttribute:
		declared = a.DeclaredType
		printOptional("start", a.Start)
		printOptional("min", a.Min)
		printOptional("max", a.Max)
		printOptional("nominal", a.Nominal)
		printOptional("quantity", a.Quantity)
		printOptional("unit", a.Unit)
		printOptional("displayUnit", a.DisplayUnit)
		if d, ok := a.Derivative.Get(); ok {
			name := "?"
			if dv, ok := md.ModelVariables().ByIndex(d); ok {
				name = dv.Name()
			}
			fmt.Printf("  derivative:  %s (#%d)\n", name, d)
		}
		var flags []string
		if a.Reinit {
			flags = append(flags, "reinit")
		}
		if a.Unbounded {
			flags = append(flags, "unbounded")
		}
		if a.RelativeQuantity {
			flags = append(flags, "relativeQuantity")
		}
		if len(flags) > 0 {
			fmt.Printf("  flags:       %s\n", strings.Join(flags, ", "))
		}
	case fmi.IntegerAttribute:
		declared = a.DeclaredType
		printOptional("start", a.Start)
		printOptional("min", a.Min)
		printOptional("max", a.Max)
		printOptional("quantity", a.Quantity)
	case fmi.EnumerationAttribute:
		declared = a.DeclaredType
		printOptional("start", a.Start)
		printOptional("min", a.Min)
		printOptional("max", a.Max)
		printOptional("quantity", a.Quantity)
	case fmi.BooleanAttribute:
		declared = a.DeclaredType
		printOptional("start", a.Start)
	case fmi.StringAttribute:
		declared = a.DeclaredType
		if s, ok := a.Start.Get(); ok {
			fmt.Printf("  start:       %q\n", s)
		}
	}

	name, ok := declared.Get()
	if !ok {
		return
	}
	fmt.Printf("  declaredType: %s\n", name)
	st, ok := md.SimpleType(name)
	if !ok {
		return
	}
	if len(st.Items) > 0 {
		fmt.Println("  values:")
		for _, it := range st.Items {
			fmt.Printf("    %s(%d)\n", it.Name, it.Value)
		}
	}
}

// printOptional prints a present attribute as an aligned "key: value" line.
func printOptional[T any](key string, o fmi.Optional[T]) {
	if !o.IsPresent() {
		return
	}
	fmt.Printf("  %-12s %s\n", key+":", o.String())
}

func normalizeDescription(s string, maxLen int) string {
	if maxLen > 0 && len(s) > maxLen {
		s = s[:maxLen] + "..."
	}
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.Join(strings.Fields(s), " ")
}
