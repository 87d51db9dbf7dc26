// Package depgraph builds dependency graphs over ModelStructure unknowns.
package depgraph

import (
	"slices"

	"github.com/gofmi/gofmi/fmi"
)

// Graph is a dependency graph of 1-based variable indices with forward edges.
type Graph struct {
	nodes map[uint32]struct{}
	edges map[uint32][]uint32
}

// New returns a graph with no nodes or edges.
func New() *Graph {
	return &Graph{
		nodes: make(map[uint32]struct{}),
		edges: make(map[uint32][]uint32),
	}
}

// FromUnknowns builds a graph with one node per unknown and an edge to
// each declared dependency. Unknowns without declared dependencies
// become isolated nodes.
func FromUnknowns(unknowns []fmi.Unknown) *Graph {
	g := New()
	for _, u := range unknowns {
		g.AddNode(u.Index)
		deps, _ := u.Dependencies.Get()
		for _, d := range deps {
			g.AddEdge(u.Index, d)
		}
	}
	return g
}

// AddNode registers a variable index. Duplicate calls are no-ops.
func (g *Graph) AddNode(index uint32) {
	g.nodes[index] = struct{}{}
}

// AddEdge records that "from" depends on "to", meaning "to" must be
// evaluated before "from". Missing nodes are created implicitly.
// Duplicate edges are ignored.
func (g *Graph) AddEdge(from, to uint32) {
	g.nodes[from] = struct{}{}
	g.nodes[to] = struct{}{}

	if slices.Contains(g.edges[from], to) {
		return
	}
	g.edges[from] = append(g.edges[from], to)
}

// Dependencies returns the indices that index depends on (forward edges).
func (g *Graph) Dependencies(index uint32) []uint32 {
	return g.edges[index]
}

// HasNode reports whether the index exists in the graph.
func (g *Graph) HasNode(index uint32) bool {
	_, ok := g.nodes[index]
	return ok
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// EvaluationOrder returns indices ordered so that dependencies come before
// dependents, using Tarjan's algorithm. Strongly connected components with
// more than one node (or a single node with a self-loop) are reported as
// cycles and excluded from the order. Output is deterministic: roots are
// visited in ascending index order.
func (g *Graph) EvaluationOrder() (order []uint32, cycles [][]uint32) {
	var (
		next     int
		stack    []uint32
		onStack  = make(map[uint32]bool)
		indices  = make(map[uint32]int)
		lowlinks = make(map[uint32]int)
	)

	var strongConnect func(n uint32)
	strongConnect = func(n uint32) {
		indices[n] = next
		lowlinks[n] = next
		next++
		stack = append(stack, n)
		onStack[n] = true

		for _, dep := range g.edges[n] {
			if _, visited := indices[dep]; !visited {
				strongConnect(dep)
				lowlinks[n] = min(lowlinks[n], lowlinks[dep])
			} else if onStack[dep] {
				lowlinks[n] = min(lowlinks[n], indices[dep])
			}
		}

		if lowlinks[n] != indices[n] {
			return
		}
		var scc []uint32
		for {
			w := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			onStack[w] = false
			scc = append(scc, w)
			if w == n {
				break
			}
		}
		switch {
		case len(scc) > 1:
			slices.Sort(scc)
			cycles = append(cycles, scc)
		case slices.Contains(g.edges[scc[0]], scc[0]):
			cycles = append(cycles, scc)
		default:
			order = append(order, scc[0])
		}
	}

	sorted := make([]uint32, 0, len(g.nodes))
	for n := range g.nodes {
		sorted = append(sorted, n)
	}
	slices.Sort(sorted)

	for _, n := range sorted {
		if _, visited := indices[n]; !visited {
			strongConnect(n)
		}
	}

	return order, cycles
}

// HasCycles reports whether the graph contains any cycles.
func (g *Graph) HasCycles() bool {
	_, cycles := g.EvaluationOrder()
	return len(cycles) > 0
}
