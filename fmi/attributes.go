package fmi

// Attribute is the typed payload of a variable or simple type.
// It is one of IntegerAttribute, RealAttribute, StringAttribute,
// BooleanAttribute or EnumerationAttribute.
type Attribute interface {
	Type() VariableType
	isAttribute()
}

// ScalarAttribute holds the attributes shared by every typed payload.
type ScalarAttribute[T any] struct {
	Start        Optional[T]      `json:"start,omitzero"`
	DeclaredType Optional[string] `json:"declaredType,omitzero"`
}

// BoundedAttribute adds range and quantity to ScalarAttribute.
type BoundedAttribute[T any] struct {
	ScalarAttribute[T]
	Min      Optional[T]      `json:"min,omitzero"`
	Max      Optional[T]      `json:"max,omitzero"`
	Quantity Optional[string] `json:"quantity,omitzero"`
}

// IntegerAttribute is the payload of an Integer variable.
type IntegerAttribute struct {
	BoundedAttribute[int32]
}

// RealAttribute is the payload of a Real variable.
type RealAttribute struct {
	BoundedAttribute[float64]
	Nominal     Optional[float64] `json:"nominal,omitzero"`
	Unit        Optional[string]  `json:"unit,omitzero"`
	DisplayUnit Optional[string]  `json:"displayUnit,omitzero"`

	// Derivative is the 1-based index of the variable this one is the
	// derivative of.
	Derivative Optional[uint32] `json:"derivative,omitzero"`

	Reinit           bool `json:"reinit,omitempty"`
	Unbounded        bool `json:"unbounded,omitempty"`
	RelativeQuantity bool `json:"relativeQuantity,omitempty"`
}

// StringAttribute is the payload of a String variable.
type StringAttribute struct {
	ScalarAttribute[string]
}

// BooleanAttribute is the payload of a Boolean variable.
type BooleanAttribute struct {
	ScalarAttribute[bool]
}

// EnumerationAttribute is the payload of an Enumeration variable.
type EnumerationAttribute struct {
	BoundedAttribute[int32]
}

func (IntegerAttribute) Type() VariableType     { return TypeInteger }
func (RealAttribute) Type() VariableType        { return TypeReal }
func (StringAttribute) Type() VariableType      { return TypeString }
func (BooleanAttribute) Type() VariableType     { return TypeBoolean }
func (EnumerationAttribute) Type() VariableType { return TypeEnumeration }

func (IntegerAttribute) isAttribute()     {}
func (RealAttribute) isAttribute()        {}
func (StringAttribute) isAttribute()      {}
func (BooleanAttribute) isAttribute()     {}
func (EnumerationAttribute) isAttribute() {}
