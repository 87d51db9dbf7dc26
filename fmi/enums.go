// Package fmi provides the immutable FMI 2.0 model description data model.
package fmi

import "fmt"

// Causality classifies the role of a variable.
type Causality int

const (
	CausalityLocal               Causality = iota // default when the attribute is absent
	CausalityParameter                            // independent parameter
	CausalityCalculatedParameter                  // computed from parameters
	CausalityInput                                // set from outside
	CausalityOutput                               // visible to the environment
	CausalityIndependent                          // independent variable, usually time
)

func (c Causality) String() string {
	switch c {
	case CausalityLocal:
		return "local"
	case CausalityParameter:
		return "parameter"
	case CausalityCalculatedParameter:
		return "calculatedParameter"
	case CausalityInput:
		return "input"
	case CausalityOutput:
		return "output"
	case CausalityIndependent:
		return "independent"
	default:
		return fmt.Sprintf("Causality(%d)", c)
	}
}

// ParseCausality maps a causality attribute value to a Causality.
// The empty string yields CausalityLocal.
func ParseCausality(s string) (Causality, error) {
	switch s {
	case "", "local":
		return CausalityLocal, nil
	case "parameter":
		return CausalityParameter, nil
	case "calculatedParameter":
		return CausalityCalculatedParameter, nil
	case "input":
		return CausalityInput, nil
	case "output":
		return CausalityOutput, nil
	case "independent":
		return CausalityIndependent, nil
	default:
		return CausalityLocal, fmt.Errorf("%w: unknown causality %q", ErrInvalidValue, s)
	}
}

// Variability classifies when a variable's value may change.
type Variability int

const (
	VariabilityContinuous Variability = iota // default when the attribute is absent
	VariabilityConstant                      // never changes
	VariabilityFixed                         // fixed after initialization
	VariabilityTunable                       // changes only at events, by the environment
	VariabilityDiscrete                      // changes only at events
)

func (v Variability) String() string {
	switch v {
	case VariabilityContinuous:
		return "continuous"
	case VariabilityConstant:
		return "constant"
	case VariabilityFixed:
		return "fixed"
	case VariabilityTunable:
		return "tunable"
	case VariabilityDiscrete:
		return "discrete"
	default:
		return fmt.Sprintf("Variability(%d)", v)
	}
}

// ParseVariability maps a variability attribute value to a Variability.
// The empty string yields VariabilityContinuous.
func ParseVariability(s string) (Variability, error) {
	switch s {
	case "", "continuous":
		return VariabilityContinuous, nil
	case "constant":
		return VariabilityConstant, nil
	case "fixed":
		return VariabilityFixed, nil
	case "tunable":
		return VariabilityTunable, nil
	case "discrete":
		return VariabilityDiscrete, nil
	default:
		return VariabilityContinuous, fmt.Errorf("%w: unknown variability %q", ErrInvalidValue, s)
	}
}

// Initial classifies how a variable is initialized.
type Initial int

const (
	InitialUnknown    Initial = iota // attribute absent
	InitialExact                     // initialized with the start value
	InitialApprox                    // start value is an iteration guess
	InitialCalculated                // computed from other variables
)

func (i Initial) String() string {
	switch i {
	case InitialUnknown:
		return "unknown"
	case InitialExact:
		return "exact"
	case InitialApprox:
		return "approx"
	case InitialCalculated:
		return "calculated"
	default:
		return fmt.Sprintf("Initial(%d)", i)
	}
}

// ParseInitial maps an initial attribute value to an Initial.
// The empty string yields InitialUnknown.
func ParseInitial(s string) (Initial, error) {
	switch s {
	case "":
		return InitialUnknown, nil
	case "exact":
		return InitialExact, nil
	case "approx":
		return InitialApprox, nil
	case "calculated":
		return InitialCalculated, nil
	default:
		return InitialUnknown, fmt.Errorf("%w: unknown initial %q", ErrInvalidValue, s)
	}
}

// VariableType identifies the typed payload of a variable or simple type.
type VariableType int

const (
	TypeInteger VariableType = iota
	TypeReal
	TypeString
	TypeBoolean
	TypeEnumeration
)

// Element names of the five typed payloads.
const (
	IntegerElement     = "Integer"
	RealElement        = "Real"
	StringElement      = "String"
	BooleanElement     = "Boolean"
	EnumerationElement = "Enumeration"
)

func (t VariableType) String() string {
	switch t {
	case TypeInteger:
		return IntegerElement
	case TypeReal:
		return RealElement
	case TypeString:
		return StringElement
	case TypeBoolean:
		return BooleanElement
	case TypeEnumeration:
		return EnumerationElement
	default:
		return fmt.Sprintf("VariableType(%d)", t)
	}
}

// VariableTypeForElement maps a payload element name to its VariableType.
func VariableTypeForElement(tag string) (VariableType, bool) {
	switch tag {
	case IntegerElement:
		return TypeInteger, true
	case RealElement:
		return TypeReal, true
	case StringElement:
		return TypeString, true
	case BooleanElement:
		return TypeBoolean, true
	case EnumerationElement:
		return TypeEnumeration, true
	default:
		return 0, false
	}
}
