package fmi

import "slices"

// ValueReference identifies a variable in calls to the FMU.
// It is not necessarily unique or contiguous.
type ValueReference uint32

// ScalarVariableBase holds the attributes common to every scalar variable.
type ScalarVariableBase struct {
	Name                               string
	Description                        string
	ValueReference                     ValueReference
	CanHandleMultipleSetPerTimeInstant bool
	Causality                          Causality
	Variability                        Variability
	Initial                            Initial
}

// ScalarVariable is one declared model variable with exactly one typed payload.
type ScalarVariable struct {
	base ScalarVariableBase
	attr Attribute
}

// NewScalarVariable returns a variable combining base and attr.
// attr must not be nil.
func NewScalarVariable(base ScalarVariableBase, attr Attribute) ScalarVariable {
	return ScalarVariable{base: base, attr: attr}
}

func (v ScalarVariable) Name() string                   { return v.base.Name }
func (v ScalarVariable) Description() string            { return v.base.Description }
func (v ScalarVariable) ValueReference() ValueReference { return v.base.ValueReference }
func (v ScalarVariable) Causality() Causality           { return v.base.Causality }
func (v ScalarVariable) Variability() Variability       { return v.base.Variability }
func (v ScalarVariable) Initial() Initial               { return v.base.Initial }

// CanHandleMultipleSetPerTimeInstant reports the
// canHandleMultipleSetPerTimelnstant attribute.
func (v ScalarVariable) CanHandleMultipleSetPerTimeInstant() bool {
	return v.base.CanHandleMultipleSetPerTimeInstant
}

// Base returns a copy of the common attributes.
func (v ScalarVariable) Base() ScalarVariableBase { return v.base }

// Type returns the kind of the typed payload.
func (v ScalarVariable) Type() VariableType { return v.attr.Type() }

// Attribute returns the typed payload for use in a type switch.
func (v ScalarVariable) Attribute() Attribute { return v.attr }

// AsInteger returns the Integer payload, if that is the variable's type.
func (v ScalarVariable) AsInteger() (IntegerAttribute, bool) {
	a, ok := v.attr.(IntegerAttribute)
	return a, ok
}

// AsReal returns the Real payload, if that is the variable's type.
func (v ScalarVariable) AsReal() (RealAttribute, bool) {
	a, ok := v.attr.(RealAttribute)
	return a, ok
}

// AsString returns the String payload, if that is the variable's type.
func (v ScalarVariable) AsString() (StringAttribute, bool) {
	a, ok := v.attr.(StringAttribute)
	return a, ok
}

// AsBoolean returns the Boolean payload, if that is the variable's type.
func (v ScalarVariable) AsBoolean() (BooleanAttribute, bool) {
	a, ok := v.attr.(BooleanAttribute)
	return a, ok
}

// AsEnumeration returns the Enumeration payload, if that is the variable's type.
func (v ScalarVariable) AsEnumeration() (EnumerationAttribute, bool) {
	a, ok := v.attr.(EnumerationAttribute)
	return a, ok
}

// DeclaredType returns the declaredType attribute of the payload.
func (v ScalarVariable) DeclaredType() Optional[string] {
	switch a := v.attr.(type) {
	case IntegerAttribute:
		return a.DeclaredType
	case RealAttribute:
		return a.DeclaredType
	case StringAttribute:
		return a.DeclaredType
	case BooleanAttribute:
		return a.DeclaredType
	case EnumerationAttribute:
		return a.DeclaredType
	default:
		return None[string]()
	}
}

// ModelVariables is the ordered list of declared variables.
// Position i (0-based) is variable index i+1.
type ModelVariables struct {
	vars   []ScalarVariable
	byName map[string]int
}

// NewModelVariables returns a ModelVariables holding a copy of vars.
func NewModelVariables(vars []ScalarVariable) ModelVariables {
	mv := ModelVariables{
		vars:   slices.Clone(vars),
		byName: make(map[string]int, len(vars)),
	}
	for i, v := range mv.vars {
		if _, exists := mv.byName[v.Name()]; !exists {
			mv.byName[v.Name()] = i
		}
	}
	return mv
}

// Len returns the number of variables.
func (mv ModelVariables) Len() int { return len(mv.vars) }

// All returns the variables in declaration order.
func (mv ModelVariables) All() []ScalarVariable { return slices.Clone(mv.vars) }

// ByIndex returns the variable at the 1-based index used by ModelStructure.
func (mv ModelVariables) ByIndex(index uint32) (ScalarVariable, bool) {
	if index == 0 || int(index) > len(mv.vars) {
		return ScalarVariable{}, false
	}
	return mv.vars[index-1], true
}

// ByName returns the first variable with the given name.
func (mv ModelVariables) ByName(name string) (ScalarVariable, bool) {
	i, ok := mv.byName[name]
	if !ok {
		return ScalarVariable{}, false
	}
	return mv.vars[i], true
}

// IndexOf returns the 1-based index of the named variable, or 0.
func (mv ModelVariables) IndexOf(name string) uint32 {
	i, ok := mv.byName[name]
	if !ok {
		return 0
	}
	return uint32(i + 1)
}

// ByValueReference returns the first variable of type t with value reference vr.
// Value references are only unique per type.
func (mv ModelVariables) ByValueReference(t VariableType, vr ValueReference) (ScalarVariable, bool) {
	for _, v := range mv.vars {
		if v.ValueReference() == vr && v.Type() == t {
			return v, true
		}
	}
	return ScalarVariable{}, false
}

// Filter returns the variables for which keep returns true, in declaration order.
func (mv ModelVariables) Filter(keep func(ScalarVariable) bool) []ScalarVariable {
	var out []ScalarVariable
	for _, v := range mv.vars {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
