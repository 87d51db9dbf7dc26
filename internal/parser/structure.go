package parser

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/gofmi/gofmi/fmi"
	"github.com/gofmi/gofmi/internal/xmlattr"
)

const (
	elemOutputs         = "Outputs"
	elemDerivatives     = "Derivatives"
	elemInitialUnknowns = "InitialUnknowns"
	elemUnknown         = "Unknown"
)

func (p *Parser) parseModelStructure(el *etree.Element) (fmi.ModelStructure, error) {
	var outputs, derivatives, initialUnknowns []fmi.Unknown
	for _, child := range el.ChildElements() {
		var (
			dst *[]fmi.Unknown
			err error
		)
		switch child.Tag {
		case elemOutputs:
			dst = &outputs
		case elemDerivatives:
			dst = &derivatives
		case elemInitialUnknowns:
			dst = &initialUnknowns
		default:
			p.ignore(child)
			continue
		}
		if *dst, err = p.parseUnknowns(child, *dst); err != nil {
			return fmi.ModelStructure{}, err
		}
	}
	return fmi.NewModelStructure(outputs, derivatives, initialUnknowns), nil
}

// parseUnknowns appends every Unknown child of el to dst.
func (p *Parser) parseUnknowns(el *etree.Element, dst []fmi.Unknown) ([]fmi.Unknown, error) {
	for _, child := range el.ChildElements() {
		if child.Tag != elemUnknown {
			p.ignore(child)
			continue
		}
		u, err := parseUnknown(child)
		if err != nil {
			return nil, err
		}
		dst = append(dst, u)
	}
	return dst, nil
}

func parseUnknown(el *etree.Element) (fmi.Unknown, error) {
	var (
		u   fmi.Unknown
		err error
	)
	if u.Index, err = xmlattr.Required(el, "index", xmlattr.ParseUint32); err != nil {
		return u, err
	}
	if deps, ok := xmlattr.String(el, "dependencies").Get(); ok {
		u.Dependencies = fmi.Some(parseDependencies(deps))
	}
	if kinds, ok := xmlattr.String(el, "dependenciesKind").Get(); ok {
		u.DependenciesKind = fmi.Some(parseDependenciesKind(kinds))
	}
	return u, nil
}

// parseDependencies extracts unsigned integers from s. Whitespace before a
// number is skipped and a single ',' or ' ' directly after it is consumed,
// so "1,2 3" yields [1 2 3] and "1, 2" yields [1 2]. Scanning stops
// silently at the first position that does not start a number.
func parseDependencies(s string) []uint32 {
	deps := []uint32{}
	i := 0
	for {
		for i < len(s) && isSpace(s[i]) {
			i++
		}
		if i < len(s) && s[i] == '+' {
			i++
		}
		start := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if start == i {
			return deps
		}
		v, err := strconv.ParseUint(s[start:i], 10, 32)
		if err != nil {
			return deps
		}
		deps = append(deps, uint32(v))
		if i < len(s) && (s[i] == ',' || s[i] == ' ') {
			i++
		}
	}
}

// parseDependenciesKind splits s on single spaces. Unlike parseDependencies
// it neither accepts commas nor collapses repeated separators.
func parseDependenciesKind(s string) []string {
	return strings.Split(s, " ")
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}
