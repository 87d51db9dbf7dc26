package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gofmi/gofmi/fmi"
	"github.com/gofmi/gofmi/internal/depgraph"
)

const structureUsage = `gofmi structure - Show outputs, derivatives and initial unknowns

Usage:
  gofmi structure [options] PATH

Each unknown is printed with its variable name, followed by the variables
it depends on and the kind of each dependency when declared.

With --order, the initial unknowns are also arranged so that every
variable follows the variables it depends on. Dependency cycles are
reported and excluded from the order.

Options:
  --format FMT    Output format: text, json (default: text)
  --order         Show the initialization evaluation order
  -h, --help      Show help

Examples:
  gofmi structure BouncingBall.fmu
  gofmi structure --format json BouncingBall.fmu | jq '.outputs'
  gofmi structure --order ControlledTemperature.fmu
`

func (c *cli) cmdStructure(args []string) int {
	fs := flag.NewFlagSet("structure", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, structureUsage) }

	format := fs.String("format", formatText, "output format: text, json")
	order := fs.Bool("order", false, "show evaluation order")
	help := fs.Bool("h", false, "show help")
	fs.BoolVar(help, "help", false, "show help")

	if err := fs.Parse(args); err != nil {
		return exitError
	}

	if *help || c.HelpFlag {
		_, _ = fmt.Fprint(os.Stdout, structureUsage)
		return exitOK
	}

	if fs.NArg() != 1 {
		printError("expected exactly one PATH")
		fmt.Fprint(os.Stderr, structureUsage)
		return exitError
	}

	md, err := c.load(fs.Arg(0))
	if err != nil {
		printError("failed to load: %v", err)
		return exitError
	}

	vars := md.ModelVariables()
	ms := md.ModelStructure()

	switch *format {
	case formatJSON:
		out := ModelStructureJSON{
			Outputs:         buildUnknownsJSON(vars, ms.Outputs()),
			Derivatives:     buildUnknownsJSON(vars, ms.Derivatives()),
			InitialUnknowns: buildUnknownsJSON(vars, ms.InitialUnknowns()),
		}
		if *order {
			out.EvaluationOrder, out.Cycles = depgraph.FromUnknowns(ms.InitialUnknowns()).EvaluationOrder()
		}
		data, err := marshalJSON(out, true)
		if err != nil {
			printError("encoding JSON: %v", err)
			return exitError
		}
		fmt.Println(string(data))
	case formatText, "":
		printUnknowns("Outputs", vars, ms.Outputs())
		printUnknowns("Derivatives", vars, ms.Derivatives())
		printUnknowns("InitialUnknowns", vars, ms.InitialUnknowns())
		if *order {
			printEvaluationOrder(vars, depgraph.FromUnknowns(ms.InitialUnknowns()))
		}
	default:
		printError("unknown format: %s", *format)
		return exitError
	}
	return exitOK
}

func printUnknowns(title string, vars fmi.ModelVariables, unknowns []fmi.Unknown) {
	fmt.Printf("%s (%d):\n", title, len(unknowns))
	for _, u := range unknowns {
		line := "  " + variableLabel(vars, u.Index)
		if deps, ok := u.Dependencies.Get(); ok {
			kinds := u.DependenciesKind.OrElse(nil)
			parts := make([]string, 0, len(deps))
			for i, d := range deps {
				part := variableLabel(vars, d)
				if i < len(kinds) && kinds[i] != "" {
					part += " [" + kinds[i] + "]"
				}
				parts = append(parts, part)
			}
			if len(parts) == 0 {
				line += " <- (none)"
			} else {
				line += " <- " + strings.Join(parts, ", ")
			}
		}
		fmt.Println(line)
	}
}

func printEvaluationOrder(vars fmi.ModelVariables, g *depgraph.Graph) {
	order, cycles := g.EvaluationOrder()
	fmt.Printf("\nEvaluation order (%d):\n", len(order))
	for i, index := range order {
		fmt.Printf("  %3d. %s\n", i+1, variableLabel(vars, index))
	}
	for _, cycle := range cycles {
		labels := make([]string, 0, len(cycle))
		for _, index := range cycle {
			labels = append(labels, variableLabel(vars, index))
		}
		fmt.Printf("  cycle: %s\n", strings.Join(labels, ", "))
	}
}

// variableLabel formats a 1-based variable index with the variable name.
func variableLabel(vars fmi.ModelVariables, index uint32) string {
	if v, ok := vars.ByIndex(index); ok {
		return fmt.Sprintf("%s (#%d)", v.Name(), index)
	}
	return fmt.Sprintf("#%d (no such variable)", index)
}
