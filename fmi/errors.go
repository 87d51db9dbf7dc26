package fmi

import (
	"errors"
	"strings"
)

var (
	// ErrMissingAttribute is returned when a required attribute is absent.
	ErrMissingAttribute = errors.New("missing required attribute")

	// ErrInvalidValue is returned when an attribute is present but cannot
	// be converted to its declared type or enumeration.
	ErrInvalidValue = errors.New("invalid attribute value")

	// ErrMalformedVariable is returned when a ScalarVariable has no
	// Integer, Real, String, Boolean or Enumeration child.
	ErrMalformedVariable = errors.New("malformed scalar variable")

	// ErrMalformedType is returned when a SimpleType has no typed element.
	ErrMalformedType = errors.New("malformed simple type")

	// ErrUnexpectedRoot is returned when the document root is not
	// fmiModelDescription.
	ErrUnexpectedRoot = errors.New("unexpected root element")
)

// AttributeError describes a failure reading one attribute of one element.
type AttributeError struct {
	Path      string // element path, e.g. "/fmiModelDescription/ModelVariables/ScalarVariable"
	Attribute string
	Value     string // raw value, empty when the attribute is absent
	Err       error  // ErrMissingAttribute or an error wrapping ErrInvalidValue
}

func (e *AttributeError) Error() string {
	var b strings.Builder
	b.WriteString(e.Path)
	b.WriteByte('@')
	b.WriteString(e.Attribute)
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	if e.Value != "" {
		b.WriteString(" (value ")
		b.WriteString(`"` + e.Value + `"`)
		b.WriteByte(')')
	}
	return b.String()
}

func (e *AttributeError) Unwrap() error { return e.Err }
