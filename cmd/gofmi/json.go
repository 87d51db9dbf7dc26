package main

import (
	"encoding/json"

	"github.com/gofmi/gofmi"
	"github.com/gofmi/gofmi/fmi"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// DumpOutput is the top-level JSON output for the dump command.
type DumpOutput struct {
	FmiVersion               string                       `json:"fmiVersion"`
	ModelName                string                       `json:"modelName"`
	GUID                     string                       `json:"guid"`
	Description              string                       `json:"description,omitempty"`
	Author                   string                       `json:"author,omitempty"`
	Version                  string                       `json:"version,omitempty"`
	License                  string                       `json:"license,omitempty"`
	Copyright                string                       `json:"copyright,omitempty"`
	GenerationTool           string                       `json:"generationTool,omitempty"`
	GenerationDateAndTime    string                       `json:"generationDateAndTime,omitempty"`
	VariableNamingConvention string                       `json:"variableNamingConvention"`
	NumberOfEventIndicators  uint                         `json:"numberOfEventIndicators"`
	ModelExchange            *fmi.ModelExchangeAttributes `json:"modelExchange,omitempty"`
	CoSimulation             *fmi.CoSimulationAttributes  `json:"coSimulation,omitempty"`
	UnitDefinitions          []fmi.Unit                   `json:"unitDefinitions,omitempty"`
	TypeDefinitions          []SimpleTypeJSON             `json:"typeDefinitions,omitempty"`
	LogCategories            []fmi.LogCategory            `json:"logCategories,omitempty"`
	DefaultExperiment        *fmi.DefaultExperiment       `json:"defaultExperiment,omitempty"`
	ModelVariables           []VariableJSON               `json:"modelVariables"`
	ModelStructure           ModelStructureJSON           `json:"modelStructure"`
}

// SimpleTypeJSON holds one type definition.
type SimpleTypeJSON struct {
	Name        string                `json:"name"`
	Description string                `json:"description,omitempty"`
	Type        string                `json:"type"`
	Attributes  fmi.Attribute         `json:"attributes"`
	Items       []fmi.EnumerationItem `json:"items,omitempty"`
}

// VariableJSON holds one scalar variable with its typed attributes.
type VariableJSON struct {
	Index                              uint32        `json:"index"`
	Name                               string        `json:"name"`
	ValueReference                     uint32        `json:"valueReference"`
	Description                        string        `json:"description,omitempty"`
	Causality                          string        `json:"causality"`
	Variability                        string        `json:"variability"`
	Initial                            string        `json:"initial,omitempty"`
	CanHandleMultipleSetPerTimeInstant bool          `json:"canHandleMultipleSetPerTimeInstant,omitempty"`
	Type                               string        `json:"type"`
	Attributes                         fmi.Attribute `json:"attributes"`
}

// ModelStructureJSON holds the three unknown lists.
type ModelStructureJSON struct {
	Outputs         []UnknownJSON `json:"outputs"`
	Derivatives     []UnknownJSON `json:"derivatives"`
	InitialUnknowns []UnknownJSON `json:"initialUnknowns"`
	EvaluationOrder []uint32      `json:"evaluationOrder,omitempty"`
	Cycles          [][]uint32    `json:"cycles,omitempty"`
}

// UnknownJSON holds one ModelStructure entry with the variable name resolved.
type UnknownJSON struct {
	Index            uint32                 `json:"index"`
	Name             string                 `json:"name,omitempty"`
	Dependencies     fmi.Optional[[]uint32] `json:"dependencies,omitzero"`
	DependenciesKind fmi.Optional[[]string] `json:"dependenciesKind,omitzero"`
}

func buildDumpOutput(md *gofmi.ModelDescription) *DumpOutput {
	out := &DumpOutput{
		FmiVersion:               md.FmiVersion(),
		ModelName:                md.ModelName(),
		GUID:                     md.GUID(),
		Description:              md.Description(),
		Author:                   md.Author(),
		Version:                  md.Version(),
		License:                  md.License(),
		Copyright:                md.Copyright(),
		GenerationTool:           md.GenerationTool(),
		GenerationDateAndTime:    md.GenerationDateAndTime(),
		VariableNamingConvention: md.VariableNamingConvention(),
		NumberOfEventIndicators:  md.NumberOfEventIndicators(),
		UnitDefinitions:          md.UnitDefinitions(),
		LogCategories:            md.LogCategories(),
	}

	if me, ok := md.ModelExchange().Get(); ok {
		out.ModelExchange = &me
	}
	if cs, ok := md.CoSimulation().Get(); ok {
		out.CoSimulation = &cs
	}
	if ex, ok := md.DefaultExperiment().Get(); ok {
		out.DefaultExperiment = &ex
	}

	for _, st := range md.TypeDefinitions() {
		out.TypeDefinitions = append(out.TypeDefinitions, SimpleTypeJSON{
			Name:        st.Name,
			Description: st.Description,
			Type:        st.Type().String(),
			Attributes:  st.Attribute,
			Items:       st.Items,
		})
	}

	vars := md.ModelVariables()
	out.ModelVariables = make([]VariableJSON, 0, vars.Len())
	for i, v := range vars.All() {
		out.ModelVariables = append(out.ModelVariables, buildVariableJSON(uint32(i+1), v))
	}

	ms := md.ModelStructure()
	out.ModelStructure = ModelStructureJSON{
		Outputs:         buildUnknownsJSON(vars, ms.Outputs()),
		Derivatives:     buildUnknownsJSON(vars, ms.Derivatives()),
		InitialUnknowns: buildUnknownsJSON(vars, ms.InitialUnknowns()),
	}
	return out
}

func buildVariableJSON(index uint32, v fmi.ScalarVariable) VariableJSON {
	vj := VariableJSON{
		Index:                              index,
		Name:                               v.Name(),
		ValueReference:                     uint32(v.ValueReference()),
		Description:                        v.Description(),
		Causality:                          v.Causality().String(),
		Variability:                        v.Variability().String(),
		CanHandleMultipleSetPerTimeInstant: v.CanHandleMultipleSetPerTimeInstant(),
		Type:                               v.Type().String(),
		Attributes:                         v.Attribute(),
	}
	if v.Initial() != fmi.InitialUnknown {
		vj.Initial = v.Initial().String()
	}
	return vj
}

func buildUnknownsJSON(vars fmi.ModelVariables, unknowns []fmi.Unknown) []UnknownJSON {
	out := make([]UnknownJSON, 0, len(unknowns))
	for _, u := range unknowns {
		uj := UnknownJSON{
			Index:            u.Index,
			Dependencies:     u.Dependencies,
			DependenciesKind: u.DependenciesKind,
		}
		if v, ok := vars.ByIndex(u.Index); ok {
			uj.Name = v.Name()
		}
		out = append(out, uj)
	}
	return out
}

func marshalJSON(v any, indent bool) ([]byte, error) {
	if indent {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
