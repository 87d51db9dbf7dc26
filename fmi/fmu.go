package fmi

import "slices"

// SourceFile is one entry of a SourceFiles list.
type SourceFile struct {
	Name string `json:"name"`
}

// FmuAttributes holds the capabilities shared by the CoSimulation and
// ModelExchange elements.
type FmuAttributes struct {
	ModelIdentifier                     string `json:"modelIdentifier"`
	NeedsExecutionTool                  bool   `json:"needsExecutionTool"`
	CanGetAndSetFMUstate                bool   `json:"canGetAndSetFMUstate"`
	CanSerializeFMUstate                bool   `json:"canSerializeFMUstate"`
	ProvidesDirectionalDerivative       bool   `json:"providesDirectionalDerivative"`
	CanNotUseMemoryManagementFunctions  bool   `json:"canNotUseMemoryManagementFunctions"`
	CanBeInstantiatedOnlyOncePerProcess bool   `json:"canBeInstantiatedOnlyOncePerProcess"`

	// SourceFiles is in declaration order, which build tools rely on.
	SourceFiles []SourceFile `json:"sourceFiles,omitempty"`
}

// CoSimulationAttributes describes co-simulation support.
type CoSimulationAttributes struct {
	FmuAttributes
	MaxOutputDerivativeOrder               uint `json:"maxOutputDerivativeOrder"`
	CanInterpolateInputs                   bool `json:"canInterpolateInputs"`
	CanRunAsynchronuously                  bool `json:"canRunAsynchronuously"`
	CanHandleVariableCommunicationStepSize bool `json:"canHandleVariableCommunicationStepSize"`
}

// ModelExchangeAttributes describes model-exchange support.
type ModelExchangeAttributes struct {
	FmuAttributes
	CompletedIntegratorStepNotNeeded bool `json:"completedIntegratorStepNotNeeded"`
}

func (a FmuAttributes) clone() FmuAttributes {
	a.SourceFiles = slices.Clone(a.SourceFiles)
	return a
}

func (a CoSimulationAttributes) clone() CoSimulationAttributes {
	a.FmuAttributes = a.FmuAttributes.clone()
	return a
}

func (a ModelExchangeAttributes) clone() ModelExchangeAttributes {
	a.FmuAttributes = a.FmuAttributes.clone()
	return a
}
