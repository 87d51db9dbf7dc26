// Package xmlattr resolves element attributes into present-or-absent values.
//
// Absence is never an error. A present value that does not convert to the
// requested type fails with an *fmi.AttributeError wrapping fmi.ErrInvalidValue.
package xmlattr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/gofmi/gofmi/fmi"
	"github.com/gofmi/gofmi/internal/xmltree"
)

// Converter turns a raw attribute value into T.
type Converter[T any] func(raw string) (T, error)

// Lookup returns the named attribute converted by conv, or an absent
// Optional if the attribute is not set.
func Lookup[T any](el *etree.Element, name string, conv Converter[T]) (fmi.Optional[T], error) {
	a := el.SelectAttr(name)
	if a == nil {
		return fmi.None[T](), nil
	}
	v, err := conv(a.Value)
	if err != nil {
		return fmi.None[T](), &fmi.AttributeError{
			Path:      xmltree.Path(el),
			Attribute: name,
			Value:     a.Value,
			Err:       err,
		}
	}
	return fmi.Some(v), nil
}

// Required is like Lookup but fails with fmi.ErrMissingAttribute on absence.
func Required[T any](el *etree.Element, name string, conv Converter[T]) (T, error) {
	opt, err := Lookup(el, name, conv)
	if err != nil {
		var zero T
		return zero, err
	}
	v, ok := opt.Get()
	if !ok {
		return v, &fmi.AttributeError{
			Path:      xmltree.Path(el),
			Attribute: name,
			Err:       fmi.ErrMissingAttribute,
		}
	}
	return v, nil
}

// Or is like Lookup but returns def on absence.
func Or[T any](el *etree.Element, name string, def T, conv Converter[T]) (T, error) {
	opt, err := Lookup(el, name, conv)
	if err != nil {
		return def, err
	}
	return opt.OrElse(def), nil
}

// String returns a string attribute. It cannot fail.
func String(el *etree.Element, name string) fmi.Optional[string] {
	if a := el.SelectAttr(name); a != nil {
		return fmi.Some(a.Value)
	}
	return fmi.None[string]()
}

// StringOr returns a string attribute, or def on absence.
func StringOr(el *etree.Element, name, def string) string {
	return String(el, name).OrElse(def)
}

// RequiredString returns a string attribute that must be present.
func RequiredString(el *etree.Element, name string) (string, error) {
	return Required(el, name, ParseString)
}

func Int32(el *etree.Element, name string) (fmi.Optional[int32], error) {
	return Lookup(el, name, ParseInt32)
}

func Uint32(el *etree.Element, name string) (fmi.Optional[uint32], error) {
	return Lookup(el, name, ParseUint32)
}

func Float64(el *etree.Element, name string) (fmi.Optional[float64], error) {
	return Lookup(el, name, ParseFloat64)
}

func Bool(el *etree.Element, name string) (fmi.Optional[bool], error) {
	return Lookup(el, name, ParseBool)
}

// BoolOr returns a boolean attribute, or def on absence.
func BoolOr(el *etree.Element, name string, def bool) (bool, error) {
	return Or(el, name, def, ParseBool)
}

// UintOr returns an unsigned attribute, or def on absence.
func UintOr(el *etree.Element, name string, def uint) (uint, error) {
	return Or(el, name, def, ParseUint)
}

// ParseString returns raw unchanged.
func ParseString(raw string) (string, error) { return raw, nil }

// ParseInt32 parses a decimal 32-bit signed integer, ignoring surrounding whitespace.
func ParseInt32(raw string) (int32, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return 0, invalid("integer", err)
	}
	return int32(v), nil
}

// ParseUint32 parses a decimal 32-bit unsigned integer, ignoring surrounding whitespace.
func ParseUint32(raw string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return 0, invalid("unsigned integer", err)
	}
	return uint32(v), nil
}

// ParseUint parses a decimal unsigned integer, ignoring surrounding whitespace.
func ParseUint(raw string) (uint, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(raw), 10, strconv.IntSize)
	if err != nil {
		return 0, invalid("unsigned integer", err)
	}
	return uint(v), nil
}

// ParseFloat64 parses a double, ignoring surrounding whitespace.
func ParseFloat64(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, invalid("real", err)
	}
	return v, nil
}

// ParseBool parses an xs:boolean: "true", "false", "1" or "0".
func ParseBool(raw string) (bool, error) {
	switch strings.TrimSpace(raw) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("%w: not a boolean", fmi.ErrInvalidValue)
	}
}

func invalid(kind string, err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		err = ne.Err
	}
	return fmt.Errorf("%w: not a %s: %v", fmi.ErrInvalidValue, kind, err)
}
