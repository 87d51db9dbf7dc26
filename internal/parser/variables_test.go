package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/gofmi/gofmi/fmi"
	"github.com/gofmi/gofmi/internal/testutil"
)

func parseVariable(t *testing.T, xml string) (fmi.ScalarVariable, error) {
	t.Helper()
	return New(nil).parseScalarVariable(testutil.Root(t, xml))
}

func TestScalarVariableDefaults(t *testing.T) {
	v, err := parseVariable(t, `<ScalarVariable name="x" valueReference="7"><Real/></ScalarVariable>`)
	require.NoError(t, err)

	require.Equal(t, "x", v.Name())
	require.Equal(t, "", v.Description())
	require.Equal(t, fmi.ValueReference(7), v.ValueReference())
	require.False(t, v.CanHandleMultipleSetPerTimeInstant())
	require.Equal(t, fmi.CausalityLocal, v.Causality())
	require.Equal(t, fmi.VariabilityContinuous, v.Variability())
	require.Equal(t, fmi.InitialUnknown, v.Initial())
	require.Equal(t, fmi.TypeReal, v.Type())

	ra, ok := v.AsReal()
	require.True(t, ok)
	require.Equal(t, fmi.RealAttribute{}, ra)
}

func TestScalarVariableEmptyEnumTags(t *testing.T) {
	v, err := parseVariable(t, `<ScalarVariable name="x" valueReference="1" causality="" variability="" initial=""><Integer/></ScalarVariable>`)
	require.NoError(t, err)
	require.Equal(t, fmi.CausalityLocal, v.Causality())
	require.Equal(t, fmi.VariabilityContinuous, v.Variability())
	require.Equal(t, fmi.InitialUnknown, v.Initial())
}

func TestScalarVariablePayloads(t *testing.T) {
	tests := []struct {
		name string
		xml  string
		want fmi.Attribute
	}{
		{
			name: "integer",
			xml:  `<Integer start="-3" min="-10" max="10" quantity="Count" declaredType="Counter"/>`,
			want: fmi.IntegerAttribute{BoundedAttribute: fmi.BoundedAttribute[int32]{
				ScalarAttribute: fmi.ScalarAttribute[int32]{
					Start:        fmi.Some[int32](-3),
					DeclaredType: fmi.Some("Counter"),
				},
				Min:      fmi.Some[int32](-10),
				Max:      fmi.Some[int32](10),
				Quantity: fmi.Some("Count"),
			}},
		},
		{
			name: "real",
			xml: `<Real start="1.5" min="0" max="2.5e1" nominal="10" unit="K" displayUnit="degC"
				derivative="4" reinit="true" unbounded="1" relativeQuantity="false"/>`,
			want: fmi.RealAttribute{
				BoundedAttribute: fmi.BoundedAttribute[float64]{
					ScalarAttribute: fmi.ScalarAttribute[float64]{Start: fmi.Some(1.5)},
					Min:             fmi.Some(0.0),
					Max:             fmi.Some(25.0),
				},
				Nominal:     fmi.Some(10.0),
				Unit:        fmi.Some("K"),
				DisplayUnit: fmi.Some("degC"),
				Derivative:  fmi.Some[uint32](4),
				Reinit:      true,
				Unbounded:   true,
			},
		},
		{
			name: "string",
			xml:  `<String start="hello world"/>`,
			want: fmi.StringAttribute{ScalarAttribute: fmi.ScalarAttribute[string]{Start: fmi.Some("hello world")}},
		},
		{
			name: "empty string start is present",
			xml:  `<String start=""/>`,
			want: fmi.StringAttribute{ScalarAttribute: fmi.ScalarAttribute[string]{Start: fmi.Some("")}},
		},
		{
			name: "boolean",
			xml:  `<Boolean start="true"/>`,
			want: fmi.BooleanAttribute{ScalarAttribute: fmi.ScalarAttribute[bool]{Start: fmi.Some(true)}},
		},
		{
			name: "enumeration",
			xml:  `<Enumeration declaredType="Mode" start="2" max="3"/>`,
			want: fmi.EnumerationAttribute{BoundedAttribute: fmi.BoundedAttribute[int32]{
				ScalarAttribute: fmi.ScalarAttribute[int32]{
					Start:        fmi.Some[int32](2),
					DeclaredType: fmi.Some("Mode"),
				},
				Max: fmi.Some[int32](3),
			}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := parseVariable(t, `<ScalarVariable name="v" valueReference="0">`+tt.xml+`</ScalarVariable>`)
			require.NoError(t, err)
			require.Equal(t, tt.want.Type(), v.Type())
			if diff := cmp.Diff(tt.want, v.Attribute()); diff != "" {
				t.Errorf("payload mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScalarVariableFirstPayloadWins(t *testing.T) {
	v, err := parseVariable(t, `<ScalarVariable name="v" valueReference="0">
		<Annotations><Tool name="x"/></Annotations>
		<Boolean start="false"/>
		<Real start="1"/>
	</ScalarVariable>`)
	require.NoError(t, err)
	require.Equal(t, fmi.TypeBoolean, v.Type())
}

func TestScalarVariableErrors(t *testing.T) {
	tests := []struct {
		name string
		xml  string
		want error
		attr string
	}{
		{
			name: "no payload",
			xml:  `<ScalarVariable name="v" valueReference="0"><Annotations/></ScalarVariable>`,
			want: fmi.ErrMalformedVariable,
		},
		{
			name: "missing name",
			xml:  `<ScalarVariable valueReference="0"><Real/></ScalarVariable>`,
			want: fmi.ErrMissingAttribute,
			attr: "name",
		},
		{
			name: "missing value reference",
			xml:  `<ScalarVariable name="v"><Real/></ScalarVariable>`,
			want: fmi.ErrMissingAttribute,
			attr: "valueReference",
		},
		{
			name: "unknown causality",
			xml:  `<ScalarVariable name="v" valueReference="0" causality="sideways"><Real/></ScalarVariable>`,
			want: fmi.ErrInvalidValue,
			attr: "causality",
		},
		{
			name: "unknown variability",
			xml:  `<ScalarVariable name="v" valueReference="0" variability="sometimes"><Real/></ScalarVariable>`,
			want: fmi.ErrInvalidValue,
			attr: "variability",
		},
		{
			name: "unknown initial",
			xml:  `<ScalarVariable name="v" valueReference="0" initial="guess"><Real/></ScalarVariable>`,
			want: fmi.ErrInvalidValue,
			attr: "initial",
		},
		{
			name: "non-numeric start",
			xml:  `<ScalarVariable name="v" valueReference="0"><Integer start="1.5"/></ScalarVariable>`,
			want: fmi.ErrInvalidValue,
			attr: "start",
		},
		{
			name: "integer start out of range",
			xml:  `<ScalarVariable name="v" valueReference="0"><Integer start="2147483648"/></ScalarVariable>`,
			want: fmi.ErrInvalidValue,
			attr: "start",
		},
		{
			name: "bad boolean",
			xml:  `<ScalarVariable name="v" valueReference="0"><Real reinit="yes"/></ScalarVariable>`,
			want: fmi.ErrInvalidValue,
			attr: "reinit",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseVariable(t, tt.xml)
			require.ErrorIs(t, err, tt.want)
			if tt.attr != "" {
				var attrErr *fmi.AttributeError
				require.ErrorAs(t, err, &attrErr)
				require.Equal(t, tt.attr, attrErr.Attribute)
			}
		})
	}
}

func TestParseModelVariablesIgnoresOtherElements(t *testing.T) {
	el := testutil.Root(t, `<ModelVariables>
		<ScalarVariable name="a" valueReference="0"><Real/></ScalarVariable>
		<Comment text="ignored"/>
		<ScalarVariable name="b" valueReference="0"><Integer/></ScalarVariable>
	</ModelVariables>`)

	vars, err := New(nil).parseModelVariables(el)
	require.NoError(t, err)
	require.Equal(t, 2, vars.Len())

	a, ok := vars.ByIndex(1)
	require.True(t, ok)
	require.Equal(t, "a", a.Name())
	b, ok := vars.ByIndex(2)
	require.True(t, ok)
	require.Equal(t, "b", b.Name())
}
