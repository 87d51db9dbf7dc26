package fmi

import "slices"

// Unknown is a ModelStructure entry: one variable and what it depends on.
type Unknown struct {
	// Index is the 1-based index into ModelVariables.
	Index uint32

	// Dependencies lists the 1-based indices this unknown depends on.
	// Absent means the dependencies are not declared; present and empty
	// means no dependencies.
	Dependencies Optional[[]uint32]

	// DependenciesKind has one entry per dependency when present.
	DependenciesKind Optional[[]string]
}

// ModelStructure holds the Outputs, Derivatives and InitialUnknowns lists.
type ModelStructure struct {
	outputs         []Unknown
	derivatives     []Unknown
	initialUnknowns []Unknown
}

// NewModelStructure returns a ModelStructure holding copies of the lists.
func NewModelStructure(outputs, derivatives, initialUnknowns []Unknown) ModelStructure {
	return ModelStructure{
		outputs:         cloneUnknowns(outputs),
		derivatives:     cloneUnknowns(derivatives),
		initialUnknowns: cloneUnknowns(initialUnknowns),
	}
}

func (s ModelStructure) Outputs() []Unknown         { return cloneUnknowns(s.outputs) }
func (s ModelStructure) Derivatives() []Unknown     { return cloneUnknowns(s.derivatives) }
func (s ModelStructure) InitialUnknowns() []Unknown { return cloneUnknowns(s.initialUnknowns) }

// cloneUnknowns copies the list and the dependency slices it refers to.
func cloneUnknowns(in []Unknown) []Unknown {
	out := make([]Unknown, len(in))
	for i, u := range in {
		out[i] = u
		if deps, ok := u.Dependencies.Get(); ok {
			out[i].Dependencies = Some(slices.Clone(deps))
		}
		if kinds, ok := u.DependenciesKind.Get(); ok {
			out[i].DependenciesKind = Some(slices.Clone(kinds))
		}
	}
	return out
}
