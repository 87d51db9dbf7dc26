package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gofmi/gofmi"
	"github.com/gofmi/gofmi/fmi"
)

const loadUsage = `gofmi load - Load a model description and print a summary

Usage:
  gofmi load [options] PATH

Options:
  --stats       Show detailed statistics
  -h, --help    Show help

Examples:
  gofmi load BouncingBall.fmu
  gofmi load -v testdata/BouncingBall      # Debug logging
  gofmi load -vv BouncingBall.fmu          # Trace logging
  gofmi load --stats BouncingBall.fmu
`

func (c *cli) cmdLoad(args []string) int {
	fs := flag.NewFlagSet("load", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, loadUsage) }

	stats := fs.Bool("stats", false, "show detailed statistics")
	help := fs.Bool("h", false, "show help")
	fs.BoolVar(help, "help", false, "show help")

	if err := fs.Parse(args); err != nil {
		return exitError
	}

	if *help || c.HelpFlag {
		_, _ = fmt.Fprint(os.Stdout, loadUsage)
		return exitOK
	}

	if fs.NArg() != 1 {
		printError("expected exactly one PATH")
		fmt.Fprint(os.Stderr, loadUsage)
		return exitError
	}

	md, err := c.load(fs.Arg(0))
	if err != nil {
		printError("failed to load: %v", err)
		return exitError
	}

	fmt.Printf("Loaded %s (FMI %s, %d variables, %s)\n",
		md.ModelName(), md.FmiVersion(), md.ModelVariables().Len(), facets(md))

	if *stats {
		fmt.Println()
		printDetailedStats(md)
	}
	return exitOK
}

// facets names the interface types the FMU supports.
func facets(md *gofmi.ModelDescription) string {
	var out []string
	if md.SupportsModelExchange() {
		out = append(out, "model exchange")
	}
	if md.SupportsCoSimulation() {
		out = append(out, "co-simulation")
	}
	if len(out) == 0 {
		return "no interface types"
	}
	return strings.Join(out, " + ")
}

func printDetailedStats(md *gofmi.ModelDescription) {
	ms := md.ModelStructure()

	fmt.Println("Statistics:")
	fmt.Printf("  GUID:               %s\n", md.GUID())
	if md.GenerationTool() != "" {
		fmt.Printf("  Generation tool:    %s\n", md.GenerationTool())
	}
	fmt.Printf("  Naming convention:  %s\n", md.VariableNamingConvention())
	fmt.Printf("  Event indicators:   %d\n", md.NumberOfEventIndicators())
	fmt.Printf("  Continuous states:  %d\n", md.NumberOfContinuousStates())
	fmt.Printf("  Outputs:            %d\n", len(ms.Outputs()))
	fmt.Printf("  Initial unknowns:   %d\n", len(ms.InitialUnknowns()))
	fmt.Printf("  Type definitions:   %d\n", len(md.TypeDefinitions()))
	fmt.Printf("  Unit definitions:   %d\n", len(md.UnitDefinitions()))
	fmt.Printf("  Log categories:     %d\n", len(md.LogCategories()))

	if ex, ok := md.DefaultExperiment().Get(); ok {
		fmt.Println()
		fmt.Println("Default experiment:")
		fmt.Printf("  start=%v stop=%v step=%v tolerance=%v\n",
			ex.StartTime, ex.StopTime, ex.StepSize, ex.Tolerance)
	}

	typeCounts := make(map[fmi.VariableType]int)
	causalityCounts := make(map[fmi.Causality]int)
	for _, v := range md.ModelVariables().All() {
		typeCounts[v.Type()]++
		causalityCounts[v.Causality()]++
	}

	fmt.Println()
	fmt.Println("Variables by type:")
	for t := fmi.TypeInteger; t <= fmi.TypeEnumeration; t++ {
		if count := typeCounts[t]; count > 0 {
			fmt.Printf("  %-22s %d\n", t.String()+":", count)
		}
	}

	fmt.Println()
	fmt.Println("Variables by causality:")
	for ca := fmi.CausalityLocal; ca <= fmi.CausalityIndependent; ca++ {
		if count := causalityCounts[ca]; count > 0 {
			fmt.Printf("  %-22s %d\n", ca.String()+":", count)
		}
	}
}
