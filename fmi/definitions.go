package fmi

import "slices"

// DefaultExperiment holds the suggested simulation settings.
// The fields are independent; no ordering between them is checked.
type DefaultExperiment struct {
	StartTime Optional[float64] `json:"startTime,omitzero"`
	StopTime  Optional[float64] `json:"stopTime,omitzero"`
	StepSize  Optional[float64] `json:"stepSize,omitzero"`
	Tolerance Optional[float64] `json:"tolerance,omitzero"`
}

// LogCategory is one entry of LogCategories.
type LogCategory struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// EnumerationItem is one Item of an Enumeration simple type.
type EnumerationItem struct {
	Name        string `json:"name"`
	Value       int32  `json:"value"`
	Description string `json:"description,omitempty"`
}

// SimpleType is one entry of TypeDefinitions, referenced by a variable's
// declaredType.
type SimpleType struct {
	Name        string
	Description string

	// Attribute carries quantity, unit and range information. Start is
	// normally absent on a simple type.
	Attribute Attribute

	// Items is in declaration order and only set for enumerations.
	Items []EnumerationItem
}

// Type returns the kind of the simple type's payload.
func (t SimpleType) Type() VariableType { return t.Attribute.Type() }

// Item looks up an enumeration item by value.
func (t SimpleType) Item(value int32) (EnumerationItem, bool) {
	for _, it := range t.Items {
		if it.Value == value {
			return it, true
		}
	}
	return EnumerationItem{}, false
}

// BaseUnit expresses a unit in SI base units: value_SI = factor*value + offset.
type BaseUnit struct {
	KG     int32   `json:"kg,omitempty"`
	M      int32   `json:"m,omitempty"`
	S      int32   `json:"s,omitempty"`
	A      int32   `json:"A,omitempty"`
	K      int32   `json:"K,omitempty"`
	Mol    int32   `json:"mol,omitempty"`
	CD     int32   `json:"cd,omitempty"`
	Rad    int32   `json:"rad,omitempty"`
	Factor float64 `json:"factor"`
	Offset float64 `json:"offset"`
}

// DisplayUnit is an alternative presentation of a unit.
type DisplayUnit struct {
	Name   string  `json:"name"`
	Factor float64 `json:"factor"`
	Offset float64 `json:"offset"`
}

// Unit is one entry of UnitDefinitions.
type Unit struct {
	Name         string             `json:"name"`
	BaseUnit     Optional[BaseUnit] `json:"baseUnit,omitzero"`
	DisplayUnits []DisplayUnit      `json:"displayUnits,omitempty"`
}

func (t SimpleType) clone() SimpleType {
	t.Items = slices.Clone(t.Items)
	return t
}

func (u Unit) clone() Unit {
	u.DisplayUnits = slices.Clone(u.DisplayUnits)
	return u
}
