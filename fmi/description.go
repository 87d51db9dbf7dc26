package fmi

import "slices"

// DefaultVariableNamingConvention is used when variableNamingConvention is absent.
const DefaultVariableNamingConvention = "flat"

// ModelDescriptionBase holds the root attributes and the owned child
// collections of a model description.
type ModelDescriptionBase struct {
	GUID                     string
	FmiVersion               string
	ModelName                string
	Description              string
	Author                   string
	Version                  string
	License                  string
	Copyright                string
	GenerationTool           string
	GenerationDateAndTime    string
	NumberOfEventIndicators  uint
	VariableNamingConvention string

	DefaultExperiment Optional[DefaultExperiment]
	ModelVariables    ModelVariables
	ModelStructure    ModelStructure

	LogCategories   []LogCategory
	TypeDefinitions []SimpleType
	UnitDefinitions []Unit
}

// ModelDescription is the immutable description of one FMU.
// CoSimulation and ModelExchange are independent: either, both or
// neither may be present.
type ModelDescription struct {
	base          ModelDescriptionBase
	coSimulation  Optional[CoSimulationAttributes]
	modelExchange Optional[ModelExchangeAttributes]
}

// NewModelDescription assembles a ModelDescription. Slices in base and in
// the facets are copied.
func NewModelDescription(
	base ModelDescriptionBase,
	coSimulation Optional[CoSimulationAttributes],
	modelExchange Optional[ModelExchangeAttributes],
) *ModelDescription {
	md := &ModelDescription{base: base}
	md.base.LogCategories = slices.Clone(base.LogCategories)
	md.base.TypeDefinitions = cloneEach(base.TypeDefinitions, SimpleType.clone)
	md.base.UnitDefinitions = cloneEach(base.UnitDefinitions, Unit.clone)
	if cs, ok := coSimulation.Get(); ok {
		md.coSimulation = Some(cs.clone())
	}
	if me, ok := modelExchange.Get(); ok {
		md.modelExchange = Some(me.clone())
	}
	return md
}

func (m *ModelDescription) GUID() string                     { return m.base.GUID }
func (m *ModelDescription) FmiVersion() string               { return m.base.FmiVersion }
func (m *ModelDescription) ModelName() string                { return m.base.ModelName }
func (m *ModelDescription) Description() string              { return m.base.Description }
func (m *ModelDescription) Author() string                   { return m.base.Author }
func (m *ModelDescription) Version() string                  { return m.base.Version }
func (m *ModelDescription) License() string                  { return m.base.License }
func (m *ModelDescription) Copyright() string                { return m.base.Copyright }
func (m *ModelDescription) GenerationTool() string           { return m.base.GenerationTool }
func (m *ModelDescription) GenerationDateAndTime() string    { return m.base.GenerationDateAndTime }
func (m *ModelDescription) NumberOfEventIndicators() uint    { return m.base.NumberOfEventIndicators }
func (m *ModelDescription) VariableNamingConvention() string { return m.base.VariableNamingConvention }

// DefaultExperiment returns the DefaultExperiment element, if declared.
func (m *ModelDescription) DefaultExperiment() Optional[DefaultExperiment] {
	return m.base.DefaultExperiment
}

// ModelVariables returns the declared variables.
func (m *ModelDescription) ModelVariables() ModelVariables { return m.base.ModelVariables }

// ModelStructure returns the Outputs, Derivatives and InitialUnknowns.
func (m *ModelDescription) ModelStructure() ModelStructure { return m.base.ModelStructure }

// LogCategories returns the declared log categories.
func (m *ModelDescription) LogCategories() []LogCategory {
	return slices.Clone(m.base.LogCategories)
}

// TypeDefinitions returns the declared simple types.
func (m *ModelDescription) TypeDefinitions() []SimpleType {
	return cloneEach(m.base.TypeDefinitions, SimpleType.clone)
}

// UnitDefinitions returns the declared units.
func (m *ModelDescription) UnitDefinitions() []Unit {
	return cloneEach(m.base.UnitDefinitions, Unit.clone)
}

// SimpleType looks up a type definition by name.
func (m *ModelDescription) SimpleType(name string) (SimpleType, bool) {
	for _, t := range m.base.TypeDefinitions {
		if t.Name == name {
			return t.clone(), true
		}
	}
	return SimpleType{}, false
}

// CoSimulation returns the co-simulation facet, if declared.
func (m *ModelDescription) CoSimulation() Optional[CoSimulationAttributes] {
	if cs, ok := m.coSimulation.Get(); ok {
		return Some(cs.clone())
	}
	return m.coSimulation
}

// ModelExchange returns the model-exchange facet, if declared.
func (m *ModelDescription) ModelExchange() Optional[ModelExchangeAttributes] {
	if me, ok := m.modelExchange.Get(); ok {
		return Some(me.clone())
	}
	return m.modelExchange
}

// SupportsCoSimulation reports whether a CoSimulation element was declared.
func (m *ModelDescription) SupportsCoSimulation() bool { return m.coSimulation.IsPresent() }

// SupportsModelExchange reports whether a ModelExchange element was declared.
func (m *ModelDescription) SupportsModelExchange() bool { return m.modelExchange.IsPresent() }

// NumberOfContinuousStates is the number of Derivatives unknowns.
func (m *ModelDescription) NumberOfContinuousStates() int {
	return len(m.base.ModelStructure.derivatives)
}

func cloneEach[T any](in []T, clone func(T) T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = clone(v)
	}
	return out
}
