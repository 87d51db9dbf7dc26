package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gofmi/gofmi/fmi"
	"github.com/gofmi/gofmi/internal/testutil"
)

func TestFmuAttributesDefaults(t *testing.T) {
	attrs, err := parseFmuAttributes(testutil.Root(t, `<ModelExchange modelIdentifier="m"/>`))
	require.NoError(t, err)
	require.Equal(t, fmi.FmuAttributes{ModelIdentifier: "m"}, attrs)
}

func TestFmuAttributesBooleans(t *testing.T) {
	attrs, err := parseFmuAttributes(testutil.Root(t, `<CoSimulation modelIdentifier="m"
		needsExecutionTool="true"
		canGetAndSetFMUstate="1"
		canSerializeFMUstate=" true "
		providesDirectionalDerivative="false"
		canNotUseMemoryManagementFunctions="0"
		canBeInstantiatedOnlyOncePerProcess="true"/>`))
	require.NoError(t, err)

	require.True(t, attrs.NeedsExecutionTool)
	require.True(t, attrs.CanGetAndSetFMUstate)
	require.True(t, attrs.CanSerializeFMUstate)
	require.False(t, attrs.ProvidesDirectionalDerivative)
	require.False(t, attrs.CanNotUseMemoryManagementFunctions)
	require.True(t, attrs.CanBeInstantiatedOnlyOncePerProcess)
}

func TestFmuAttributesErrors(t *testing.T) {
	_, err := parseFmuAttributes(testutil.Root(t, `<CoSimulation needsExecutionTool="true"/>`))
	require.ErrorIs(t, err, fmi.ErrMissingAttribute)

	_, err = parseFmuAttributes(testutil.Root(t, `<CoSimulation modelIdentifier="m" canGetAndSetFMUstate="maybe"/>`))
	require.ErrorIs(t, err, fmi.ErrInvalidValue)
	var attrErr *fmi.AttributeError
	require.ErrorAs(t, err, &attrErr)
	require.Equal(t, "canGetAndSetFMUstate", attrErr.Attribute)
	require.Equal(t, "maybe", attrErr.Value)
}

func TestSourceFiles(t *testing.T) {
	tests := []struct {
		name string
		xml  string
		want []fmi.SourceFile
	}{
		{
			name: "absent",
			xml:  `<ModelExchange modelIdentifier="m"/>`,
			want: nil,
		},
		{
			name: "empty",
			xml:  `<ModelExchange modelIdentifier="m"><SourceFiles/></ModelExchange>`,
			want: []fmi.SourceFile{},
		},
		{
			name: "document order",
			xml: `<ModelExchange modelIdentifier="m"><SourceFiles>
				<File name="b.c"/><Note/><File name="a.c"/>
			</SourceFiles></ModelExchange>`,
			want: []fmi.SourceFile{{Name: "b.c"}, {Name: "a.c"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs, err := parseFmuAttributes(testutil.Root(t, tt.xml))
			require.NoError(t, err)
			require.Equal(t, tt.want, attrs.SourceFiles)
		})
	}
}

func TestSourceFileWithoutName(t *testing.T) {
	_, err := parseFmuAttributes(testutil.Root(t,
		`<ModelExchange modelIdentifier="m"><SourceFiles><File/></SourceFiles></ModelExchange>`))
	require.ErrorIs(t, err, fmi.ErrMissingAttribute)
	require.Contains(t, err.Error(), "SourceFiles")
}

func TestCoSimulationAttributes(t *testing.T) {
	tests := []struct {
		name string
		xml  string
		want fmi.CoSimulationAttributes
	}{
		{
			name: "defaults",
			xml:  `<CoSimulation modelIdentifier="cs"/>`,
			want: fmi.CoSimulationAttributes{FmuAttributes: fmi.FmuAttributes{ModelIdentifier: "cs"}},
		},
		{
			name: "capabilities",
			xml: `<CoSimulation modelIdentifier="cs" maxOutputDerivativeOrder="3"
				canInterpolateInputs="true" canRunAsynchronuously="true"
				canHandleVariableCommunicationStepSize="1"/>`,
			want: fmi.CoSimulationAttributes{
				FmuAttributes:                          fmi.FmuAttributes{ModelIdentifier: "cs"},
				MaxOutputDerivativeOrder:               3,
				CanInterpolateInputs:                   true,
				CanRunAsynchronuously:                  true,
				CanHandleVariableCommunicationStepSize: true,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCoSimulationAttributes(testutil.Root(t, tt.xml))
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestCoSimulationBadDerivativeOrder(t *testing.T) {
	_, err := parseCoSimulationAttributes(testutil.Root(t,
		`<CoSimulation modelIdentifier="cs" maxOutputDerivativeOrder="-1"/>`))
	require.ErrorIs(t, err, fmi.ErrInvalidValue)
}

func TestModelExchangeAttributes(t *testing.T) {
	got, err := parseModelExchangeAttributes(testutil.Root(t,
		`<ModelExchange modelIdentifier="me" completedIntegratorStepNotNeeded="true"/>`))
	require.NoError(t, err)
	require.Equal(t, fmi.ModelExchangeAttributes{
		FmuAttributes:                    fmi.FmuAttributes{ModelIdentifier: "me"},
		CompletedIntegratorStepNotNeeded: true,
	}, got)
}
