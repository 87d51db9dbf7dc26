package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/gofmi/gofmi/fmi"
	"github.com/gofmi/gofmi/internal/testutil"
)

func TestParseLogCategories(t *testing.T) {
	cats, err := New(nil).parseLogCategories(testutil.Root(t, `<LogCategories>
		<Category name="logAll"/>
		<Other name="skipped"/>
		<Category name="logError" description="Errors only"/>
	</LogCategories>`))
	require.NoError(t, err)
	require.Equal(t, []fmi.LogCategory{
		{Name: "logAll"},
		{Name: "logError", Description: "Errors only"},
	}, cats)

	_, err = New(nil).parseLogCategories(testutil.Root(t, `<LogCategories><Category/></LogCategories>`))
	require.ErrorIs(t, err, fmi.ErrMissingAttribute)
}

func TestParseSimpleType(t *testing.T) {
	tests := []struct {
		name string
		xml  string
		want fmi.SimpleType
	}{
		{
			name: "real",
			xml:  `<SimpleType name="Temperature"><Real quantity="ThermodynamicTemperature" unit="K" min="0"/></SimpleType>`,
			want: fmi.SimpleType{
				Name: "Temperature",
				Attribute: fmi.RealAttribute{
					BoundedAttribute: fmi.BoundedAttribute[float64]{
						Min:      fmi.Some(0.0),
						Quantity: fmi.Some("ThermodynamicTemperature"),
					},
					Unit: fmi.Some("K"),
				},
			},
		},
		{
			name: "enumeration",
			xml: `<SimpleType name="Mode" description="Modes">
				<Enumeration quantity="State">
					<Item name="off" value="0"/>
					<Item name="on" value="1" description="Running"/>
				</Enumeration>
			</SimpleType>`,
			want: fmi.SimpleType{
				Name:        "Mode",
				Description: "Modes",
				Attribute: fmi.EnumerationAttribute{BoundedAttribute: fmi.BoundedAttribute[int32]{
					Quantity: fmi.Some("State"),
				}},
				Items: []fmi.EnumerationItem{
					{Name: "off", Value: 0},
					{Name: "on", Value: 1, Description: "Running"},
				},
			},
		},
		{
			name: "first payload wins",
			xml:  `<SimpleType name="Flag"><Boolean/><Integer/></SimpleType>`,
			want: fmi.SimpleType{Name: "Flag", Attribute: fmi.BooleanAttribute{}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSimpleType(testutil.Root(t, tt.xml))
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("parseSimpleType mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseSimpleTypeErrors(t *testing.T) {
	tests := []struct {
		name string
		xml  string
		want error
	}{
		{"no payload", `<SimpleType name="T"><Annotation/></SimpleType>`, fmi.ErrMalformedType},
		{"no name", `<SimpleType><Real/></SimpleType>`, fmi.ErrMissingAttribute},
		{"item without value", `<SimpleType name="T"><Enumeration><Item name="a"/></Enumeration></SimpleType>`, fmi.ErrMissingAttribute},
		{"item with bad value", `<SimpleType name="T"><Enumeration><Item name="a" value="x"/></Enumeration></SimpleType>`, fmi.ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseSimpleType(testutil.Root(t, tt.xml))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseUnitDefinitions(t *testing.T) {
	units, err := New(nil).parseUnitDefinitions(testutil.Root(t, `<UnitDefinitions>
		<Unit name="K"><BaseUnit K="1"/></Unit>
		<Unit name="degC">
			<BaseUnit K="1" offset="273.15"/>
			<DisplayUnit name="degF" factor="1.8" offset="32"/>
			<DisplayUnit name="degC"/>
		</Unit>
		<Unit name="1"/>
	</UnitDefinitions>`))
	require.NoError(t, err)

	want := []fmi.Unit{
		{Name: "K", BaseUnit: fmi.Some(fmi.BaseUnit{K: 1, Factor: 1})},
		{
			Name:     "degC",
			BaseUnit: fmi.Some(fmi.BaseUnit{K: 1, Factor: 1, Offset: 273.15}),
			DisplayUnits: []fmi.DisplayUnit{
				{Name: "degF", Factor: 1.8, Offset: 32},
				{Name: "degC", Factor: 1},
			},
		},
		{Name: "1"},
	}
	if diff := cmp.Diff(want, units); diff != "" {
		t.Errorf("units mismatch (-want +got):\n%s", diff)
	}
}

func TestParseBaseUnitExponents(t *testing.T) {
	bu, err := parseBaseUnit(testutil.Root(t,
		`<BaseUnit kg="1" m="2" s="-3" A="-1" K="0" mol="4" cd="5" rad="6" factor="1000"/>`))
	require.NoError(t, err)
	require.Equal(t, fmi.BaseUnit{
		KG: 1, M: 2, S: -3, A: -1, Mol: 4, CD: 5, Rad: 6,
		Factor: 1000,
	}, bu)

	_, err = parseBaseUnit(testutil.Root(t, `<BaseUnit m="two"/>`))
	require.ErrorIs(t, err, fmi.ErrInvalidValue)
}

func TestParseDisplayUnitWithoutName(t *testing.T) {
	_, err := parseUnit(testutil.Root(t, `<Unit name="m"><DisplayUnit factor="2"/></Unit>`))
	require.ErrorIs(t, err, fmi.ErrMissingAttribute)
	require.Contains(t, err.Error(), `unit "m"`)
}
