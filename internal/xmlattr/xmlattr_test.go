package xmlattr

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gofmi/gofmi/fmi"
	"github.com/gofmi/gofmi/internal/testutil"
)

func TestLookupPresence(t *testing.T) {
	el := testutil.Root(t, `<Real start="1.5" unit="" nominal=" 2 "/>`)

	start, err := Float64(el, "start")
	require.NoError(t, err)
	require.Equal(t, fmi.Some(1.5), start)

	nominal, err := Float64(el, "nominal")
	require.NoError(t, err)
	require.Equal(t, 2.0, nominal.OrElse(0))

	lo, err := Float64(el, "min")
	require.NoError(t, err)
	require.False(t, lo.IsPresent())

	unit := String(el, "unit")
	require.True(t, unit.IsPresent())
	require.Equal(t, "", unit.OrElse("x"))
	require.False(t, String(el, "displayUnit").IsPresent())
	require.Equal(t, "def", StringOr(el, "displayUnit", "def"))
}

func TestRequired(t *testing.T) {
	el := testutil.Root(t, `<Unknown index="4"/>`)

	v, err := Required(el, "index", ParseUint32)
	require.NoError(t, err)
	require.Equal(t, uint32(4), v)

	_, err = Required(el, "name", ParseString)
	require.ErrorIs(t, err, fmi.ErrMissingAttribute)

	var attrErr *fmi.AttributeError
	require.ErrorAs(t, err, &attrErr)
	require.Equal(t, "/Unknown", attrErr.Path)
	require.Equal(t, "name", attrErr.Attribute)
	require.Equal(t, "/Unknown@name: missing required attribute", err.Error())
}

func TestOrDefaults(t *testing.T) {
	el := testutil.Root(t, `<CoSimulation maxOutputDerivativeOrder="3" canInterpolateInputs="1"/>`)

	order, err := UintOr(el, "maxOutputDerivativeOrder", 0)
	require.NoError(t, err)
	require.Equal(t, uint(3), order)

	order, err = UintOr(el, "absent", 7)
	require.NoError(t, err)
	require.Equal(t, uint(7), order)

	b, err := BoolOr(el, "canInterpolateInputs", false)
	require.NoError(t, err)
	require.True(t, b)

	b, err = BoolOr(el, "absent", true)
	require.NoError(t, err)
	require.True(t, b)
}

func TestConversionErrors(t *testing.T) {
	el := testutil.Root(t, `<Integer start="abc" min="99999999999" max="1e3" flag="yes"/>`)

	tests := []struct {
		attr string
		fn   func() error
	}{
		{"start", func() error { _, err := Int32(el, "start"); return err }},
		{"min", func() error { _, err := Int32(el, "min"); return err }},
		{"max", func() error { _, err := Int32(el, "max"); return err }},
		{"flag", func() error { _, err := Bool(el, "flag"); return err }},
		{"start", func() error { _, err := Uint32(el, "start"); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.attr, func(t *testing.T) {
			err := tt.fn()
			require.ErrorIs(t, err, fmi.ErrInvalidValue)

			var attrErr *fmi.AttributeError
			require.ErrorAs(t, err, &attrErr)
			require.Equal(t, tt.attr, attrErr.Attribute)
			require.NotEmpty(t, attrErr.Value)
			require.Contains(t, err.Error(), attrErr.Value)
		})
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		in   string
		want bool
		ok   bool
	}{
		{"true", true, true},
		{"1", true, true},
		{"false", false, true},
		{"0", false, true},
		{" true\n", true, true},
		{"True", false, false},
		{"yes", false, false},
		{"", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBool(tt.in)
			if !tt.ok {
				require.True(t, errors.Is(err, fmi.ErrInvalidValue), "err = %v", err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseNumbers(t *testing.T) {
	i, err := ParseInt32("-2147483648")
	require.NoError(t, err)
	require.Equal(t, int32(math.MinInt32), i)

	_, err = ParseInt32("2147483648")
	require.ErrorIs(t, err, fmi.ErrInvalidValue)

	u, err := ParseUint32(" 4294967295 ")
	require.NoError(t, err)
	require.Equal(t, uint32(math.MaxUint32), u)

	f, err := ParseFloat64("-1.5E-3")
	require.NoError(t, err)
	require.Equal(t, -1.5e-3, f)

	f, err = ParseFloat64("INF")
	require.NoError(t, err)
	require.True(t, math.IsInf(f, 1))

	_, err = ParseFloat64("1,5")
	require.ErrorIs(t, err, fmi.ErrInvalidValue)
}
