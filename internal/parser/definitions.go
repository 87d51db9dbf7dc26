package parser

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/gofmi/gofmi/fmi"
	"github.com/gofmi/gofmi/internal/xmlattr"
	"github.com/gofmi/gofmi/internal/xmltree"
)

const (
	elemCategory    = "Category"
	elemSimpleType  = "SimpleType"
	elemItem        = "Item"
	elemUnit        = "Unit"
	elemBaseUnit    = "BaseUnit"
	elemDisplayUnit = "DisplayUnit"
)

func (p *Parser) parseLogCategories(el *etree.Element) ([]fmi.LogCategory, error) {
	var cats []fmi.LogCategory
	for _, child := range el.ChildElements() {
		if child.Tag != elemCategory {
			p.ignore(child)
			continue
		}
		name, err := xmlattr.RequiredString(child, "name")
		if err != nil {
			return nil, err
		}
		cats = append(cats, fmi.LogCategory{
			Name:        name,
			Description: xmlattr.StringOr(child, "description", ""),
		})
	}
	return cats, nil
}

func (p *Parser) parseTypeDefinitions(el *etree.Element) ([]fmi.SimpleType, error) {
	var defs []fmi.SimpleType
	for _, child := range el.ChildElements() {
		if child.Tag != elemSimpleType {
			p.ignore(child)
			continue
		}
		st, err := parseSimpleType(child)
		if err != nil {
			return nil, err
		}
		defs = append(defs, st)
	}
	return defs, nil
}

func parseSimpleType(el *etree.Element) (fmi.SimpleType, error) {
	name, err := xmlattr.RequiredString(el, "name")
	if err != nil {
		return fmi.SimpleType{}, err
	}
	st := fmi.SimpleType{
		Name:        name,
		Description: xmlattr.StringOr(el, "description", ""),
	}
	for _, child := range el.ChildElements() {
		t, ok := fmi.VariableTypeForElement(child.Tag)
		if !ok {
			continue
		}
		if st.Attribute, err = parseTypedAttribute(t, child); err != nil {
			return fmi.SimpleType{}, fmt.Errorf("type %q: %w", name, err)
		}
		if t == fmi.TypeEnumeration {
			if st.Items, err = parseEnumerationItems(child); err != nil {
				return fmi.SimpleType{}, fmt.Errorf("type %q: %w", name, err)
			}
		}
		return st, nil
	}
	return fmi.SimpleType{}, fmt.Errorf("%s: type %q: %w", xmltree.Path(el), name, fmi.ErrMalformedType)
}

func parseEnumerationItems(el *etree.Element) ([]fmi.EnumerationItem, error) {
	var items []fmi.EnumerationItem
	for _, child := range el.ChildElements() {
		if child.Tag != elemItem {
			continue
		}
		name, err := xmlattr.RequiredString(child, "name")
		if err != nil {
			return nil, err
		}
		value, err := xmlattr.Required(child, "value", xmlattr.ParseInt32)
		if err != nil {
			return nil, err
		}
		items = append(items, fmi.EnumerationItem{
			Name:        name,
			Value:       value,
			Description: xmlattr.StringOr(child, "description", ""),
		})
	}
	return items, nil
}

func (p *Parser) parseUnitDefinitions(el *etree.Element) ([]fmi.Unit, error) {
	var units []fmi.Unit
	for _, child := range el.ChildElements() {
		if child.Tag != elemUnit {
			p.ignore(child)
			continue
		}
		u, err := parseUnit(child)
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	return units, nil
}

func parseUnit(el *etree.Element) (fmi.Unit, error) {
	name, err := xmlattr.RequiredString(el, "name")
	if err != nil {
		return fmi.Unit{}, err
	}
	u := fmi.Unit{Name: name}
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case elemBaseUnit:
			bu, err := parseBaseUnit(child)
			if err != nil {
				return fmi.Unit{}, fmt.Errorf("unit %q: %w", name, err)
			}
			u.BaseUnit = fmi.Some(bu)
		case elemDisplayUnit:
			du, err := parseDisplayUnit(child)
			if err != nil {
				return fmi.Unit{}, fmt.Errorf("unit %q: %w", name, err)
			}
			u.DisplayUnits = append(u.DisplayUnits, du)
		}
	}
	return u, nil
}

func parseBaseUnit(el *etree.Element) (fmi.BaseUnit, error) {
	var bu fmi.BaseUnit
	exponents := []struct {
		attr string
		dst  *int32
	}{
		{"kg", &bu.KG}, {"m", &bu.M}, {"s", &bu.S}, {"A", &bu.A},
		{"K", &bu.K}, {"mol", &bu.Mol}, {"cd", &bu.CD}, {"rad", &bu.Rad},
	}
	for _, e := range exponents {
		v, err := xmlattr.Or(el, e.attr, 0, xmlattr.ParseInt32)
		if err != nil {
			return bu, err
		}
		*e.dst = v
	}
	var err error
	if bu.Factor, err = xmlattr.Or(el, "factor", 1.0, xmlattr.ParseFloat64); err != nil {
		return bu, err
	}
	if bu.Offset, err = xmlattr.Or(el, "offset", 0.0, xmlattr.ParseFloat64); err != nil {
		return bu, err
	}
	return bu, nil
}

func parseDisplayUnit(el *etree.Element) (fmi.DisplayUnit, error) {
	var (
		du  fmi.DisplayUnit
		err error
	)
	if du.Name, err = xmlattr.RequiredString(el, "name"); err != nil {
		return du, err
	}
	if du.Factor, err = xmlattr.Or(el, "factor", 1.0, xmlattr.ParseFloat64); err != nil {
		return du, err
	}
	if du.Offset, err = xmlattr.Or(el, "offset", 0.0, xmlattr.ParseFloat64); err != nil {
		return du, err
	}
	return du, nil
}
