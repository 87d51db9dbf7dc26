package parser

import (
	"fmt"
	"log/slog"

	"github.com/beevik/etree"

	"github.com/gofmi/gofmi/fmi"
	"github.com/gofmi/gofmi/internal/xmlattr"
	"github.com/gofmi/gofmi/internal/xmltree"
)

const elemScalarVariable = "ScalarVariable"

func (p *Parser) parseModelVariables(el *etree.Element) (fmi.ModelVariables, error) {
	var vars []fmi.ScalarVariable
	for _, child := range el.ChildElements() {
		if child.Tag != elemScalarVariable {
			p.ignore(child)
			continue
		}
		v, err := p.parseScalarVariable(child)
		if err != nil {
			return fmi.ModelVariables{}, err
		}
		vars = append(vars, v)
	}
	return fmi.NewModelVariables(vars), nil
}

func (p *Parser) parseScalarVariable(el *etree.Element) (fmi.ScalarVariable, error) {
	var (
		base fmi.ScalarVariableBase
		err  error
	)
	if base.Name, err = xmlattr.RequiredString(el, "name"); err != nil {
		return fmi.ScalarVariable{}, err
	}

	wrap := func(err error) error {
		return fmt.Errorf("variable %q: %w", base.Name, err)
	}

	base.Description = xmlattr.StringOr(el, "description", "")
	vr, err := xmlattr.Required(el, "valueReference", xmlattr.ParseUint32)
	if err != nil {
		return fmi.ScalarVariable{}, wrap(err)
	}
	base.ValueReference = fmi.ValueReference(vr)
	// The attribute name is spelled with a lowercase L in the FMI 2.0 schema.
	if base.CanHandleMultipleSetPerTimeInstant, err = xmlattr.BoolOr(el, "canHandleMultipleSetPerTimelnstant", false); err != nil {
		return fmi.ScalarVariable{}, wrap(err)
	}
	if base.Causality, err = xmlattr.Or(el, "causality", fmi.CausalityLocal, fmi.ParseCausality); err != nil {
		return fmi.ScalarVariable{}, wrap(err)
	}
	if base.Variability, err = xmlattr.Or(el, "variability", fmi.VariabilityContinuous, fmi.ParseVariability); err != nil {
		return fmi.ScalarVariable{}, wrap(err)
	}
	if base.Initial, err = xmlattr.Or(el, "initial", fmi.InitialUnknown, fmi.ParseInitial); err != nil {
		return fmi.ScalarVariable{}, wrap(err)
	}

	for _, child := range el.ChildElements() {
		t, ok := fmi.VariableTypeForElement(child.Tag)
		if !ok {
			continue
		}
		attr, err := parseTypedAttribute(t, child)
		if err != nil {
			return fmi.ScalarVariable{}, wrap(err)
		}
		if p.TraceEnabled() {
			p.Trace("scalar variable",
				slog.String("name", base.Name),
				slog.Uint64("valueReference", uint64(base.ValueReference)),
				slog.String("type", t.String()),
				slog.String("causality", base.Causality.String()))
		}
		return fmi.NewScalarVariable(base, attr), nil
	}

	return fmi.ScalarVariable{}, fmt.Errorf("%s: variable %q: %w: no Integer, Real, String, Boolean or Enumeration element",
		xmltree.Path(el), base.Name, fmi.ErrMalformedVariable)
}

// parseTypedAttribute parses the payload element of a variable or simple type.
func parseTypedAttribute(t fmi.VariableType, el *etree.Element) (fmi.Attribute, error) {
	switch t {
	case fmi.TypeInteger:
		b, err := parseBoundedAttribute(el, xmlattr.ParseInt32)
		return fmi.IntegerAttribute{BoundedAttribute: b}, err
	case fmi.TypeReal:
		return parseRealAttribute(el)
	case fmi.TypeString:
		s, err := parseScalarAttribute(el, xmlattr.ParseString)
		return fmi.StringAttribute{ScalarAttribute: s}, err
	case fmi.TypeBoolean:
		s, err := parseScalarAttribute(el, xmlattr.ParseBool)
		return fmi.BooleanAttribute{ScalarAttribute: s}, err
	case fmi.TypeEnumeration:
		b, err := parseBoundedAttribute(el, xmlattr.ParseInt32)
		return fmi.EnumerationAttribute{BoundedAttribute: b}, err
	default:
		return nil, fmt.Errorf("%w: %s", fmi.ErrMalformedVariable, t)
	}
}

func parseScalarAttribute[T any](el *etree.Element, conv xmlattr.Converter[T]) (fmi.ScalarAttribute[T], error) {
	var (
		attr fmi.ScalarAttribute[T]
		err  error
	)
	if attr.Start, err = xmlattr.Lookup(el, "start", conv); err != nil {
		return attr, err
	}
	attr.DeclaredType = xmlattr.String(el, "declaredType")
	return attr, nil
}

func parseBoundedAttribute[T any](el *etree.Element, conv xmlattr.Converter[T]) (fmi.BoundedAttribute[T], error) {
	var (
		attr fmi.BoundedAttribute[T]
		err  error
	)
	if attr.ScalarAttribute, err = parseScalarAttribute(el, conv); err != nil {
		return attr, err
	}
	if attr.Min, err = xmlattr.Lookup(el, "min", conv); err != nil {
		return attr, err
	}
	if attr.Max, err = xmlattr.Lookup(el, "max", conv); err != nil {
		return attr, err
	}
	attr.Quantity = xmlattr.String(el, "quantity")
	return attr, nil
}

func parseRealAttribute(el *etree.Element) (fmi.RealAttribute, error) {
	var (
		attr fmi.RealAttribute
		err  error
	)
	if attr.BoundedAttribute, err = parseBoundedAttribute(el, xmlattr.ParseFloat64); err != nil {
		return attr, err
	}
	if attr.Nominal, err = xmlattr.Float64(el, "nominal"); err != nil {
		return attr, err
	}
	attr.Unit = xmlattr.String(el, "unit")
	attr.DisplayUnit = xmlattr.String(el, "displayUnit")
	if attr.Derivative, err = xmlattr.Uint32(el, "derivative"); err != nil {
		return attr, err
	}
	err = readBools(el,
		boolField{"reinit", &attr.Reinit},
		boolField{"unbounded", &attr.Unbounded},
		boolField{"relativeQuantity", &attr.RelativeQuantity},
	)
	return attr, err
}
