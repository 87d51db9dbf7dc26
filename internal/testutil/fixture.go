// Package testutil provides fixtures and document builders for tests.
package testutil

import (
	"archive/zip"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/require"

	"github.com/gofmi/gofmi/internal/xmltree"
)

// Fixture names under testdata/.
const (
	BouncingBall          = "BouncingBall"
	ControlledTemperature = "ControlledTemperature"
	Latin1                = "latin1.xml"
)

// TestdataPath returns the absolute path of a file under the module's
// testdata directory.
func TestdataPath(elems ...string) string {
	_, file, _, _ := runtime.Caller(0)
	root := filepath.Join(filepath.Dir(file), "..", "..", "testdata")
	return filepath.Join(append([]string{root}, elems...)...)
}

// ModelDescriptionPath returns the modelDescription.xml of a fixture FMU.
func ModelDescriptionPath(fixture string) string {
	return TestdataPath(fixture, "modelDescription.xml")
}

// ReadFixture returns the modelDescription.xml content of a fixture FMU.
func ReadFixture(t testing.TB, fixture string) []byte {
	t.Helper()
	data, err := os.ReadFile(ModelDescriptionPath(fixture))
	require.NoError(t, err, "reading fixture %s", fixture)
	return data
}

// FixtureRoot parses a fixture FMU's model description into its root element.
func FixtureRoot(t testing.TB, fixture string) *etree.Element {
	t.Helper()
	return Root(t, string(ReadFixture(t, fixture)))
}

// Root parses an XML snippet and returns its root element.
func Root(t testing.TB, doc string) *etree.Element {
	t.Helper()
	root, err := xmltree.Read(strings.NewReader(doc), nil)
	require.NoError(t, err, "parsing test document")
	return root
}

// ModelDescription wraps body in an fmiModelDescription element carrying
// the three required attributes.
func ModelDescription(body string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<fmiModelDescription fmiVersion="2.0" modelName="Test" guid="{test}">` +
		body + `</fmiModelDescription>`
}

// WriteFMU writes a zip archive containing files to dir and returns its path.
func WriteFMU(t testing.TB, dir, name string, files map[string][]byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() { require.NoError(t, f.Close()) }()

	zw := zip.NewWriter(f)
	for entry, data := range files {
		w, err := zw.Create(entry)
		require.NoError(t, err)
		_, err = w.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return path
}
