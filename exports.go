package gofmi

import "github.com/gofmi/gofmi/fmi"

// Type aliases for the public API - all types come from the fmi subpackage.

// ModelDescription is the immutable description of one FMU.
type ModelDescription = fmi.ModelDescription

// ScalarVariable is one declared model variable.
type ScalarVariable = fmi.ScalarVariable

// ModelVariables is the ordered list of declared variables.
type ModelVariables = fmi.ModelVariables

// ModelStructure holds the Outputs, Derivatives and InitialUnknowns lists.
type ModelStructure = fmi.ModelStructure

// Unknown is a ModelStructure entry.
type Unknown = fmi.Unknown

// DefaultExperiment holds the suggested simulation settings.
type DefaultExperiment = fmi.DefaultExperiment

// CoSimulationAttributes describes co-simulation support.
type CoSimulationAttributes = fmi.CoSimulationAttributes

// ModelExchangeAttributes describes model-exchange support.
type ModelExchangeAttributes = fmi.ModelExchangeAttributes

// Causality classifies the role of a variable.
type Causality = fmi.Causality

// Variability classifies when a variable's value may change.
type Variability = fmi.Variability

// Initial classifies how a variable is initialized.
type Initial = fmi.Initial

// VariableType identifies the typed payload of a variable.
type VariableType = fmi.VariableType

// AttributeError describes a failure reading one attribute.
type AttributeError = fmi.AttributeError

// Errors returned by Load, from the fmi subpackage.
var (
	ErrMissingAttribute  = fmi.ErrMissingAttribute
	ErrInvalidValue      = fmi.ErrInvalidValue
	ErrMalformedVariable = fmi.ErrMalformedVariable
	ErrMalformedType     = fmi.ErrMalformedType
	ErrUnexpectedRoot    = fmi.ErrUnexpectedRoot
)
