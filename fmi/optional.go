package fmi

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Optional holds a value that may be absent.
// The zero value is absent.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) { return o.value, o.ok }

// IsPresent reports whether a value is held.
func (o Optional[T]) IsPresent() bool { return o.ok }

// IsZero reports whether the value is absent, so that absent fields are
// dropped by the omitzero JSON option.
func (o Optional[T]) IsZero() bool { return !o.ok }

// OrElse returns the held value, or def if absent.
func (o Optional[T]) OrElse(def T) T {
	if !o.ok {
		return def
	}
	return o.value
}

// String returns the value formatted with %v, or "<absent>".
func (o Optional[T]) String() string {
	if !o.ok {
		return "<absent>"
	}
	return fmt.Sprintf("%v", o.value)
}

// MarshalJSON encodes an absent value as null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// Equal reports whether both are absent, or both present with deeply
// equal values. Nil and empty slices compare equal.
func (o Optional[T]) Equal(other Optional[T]) bool {
	if o.ok != other.ok {
		return false
	}
	if !o.ok {
		return true
	}
	a, b := reflect.ValueOf(o.value), reflect.ValueOf(other.value)
	if a.Kind() == reflect.Slice && a.Len() == 0 && b.Len() == 0 {
		return true
	}
	return reflect.DeepEqual(o.value, other.value)
}
