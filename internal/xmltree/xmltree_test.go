package xmltree

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadLatin1(t *testing.T) {
	f, err := os.Open(filepath.Join("..", "..", "testdata", "latin1.xml"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	root, err := Read(f, nil)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got := root.SelectAttrValue("modelName", ""); got != "Wärmetauscher" {
		t.Errorf("modelName = %q", got)
	}
	if got := root.SelectAttrValue("author", ""); got != "Jürgen" {
		t.Errorf("author = %q", got)
	}
	sv := root.FindElement("ModelVariables/ScalarVariable")
	if sv == nil {
		t.Fatal("ScalarVariable not found")
	}
	if got := sv.SelectAttrValue("name", ""); got != "Tür" {
		t.Errorf("variable name = %q", got)
	}
}

func TestReadCustomCharsetReader(t *testing.T) {
	var label string
	cr := func(l string, input io.Reader) (io.Reader, error) {
		label = l
		return input, nil
	}
	doc := `<?xml version="1.0" encoding="x-test"?><a b="c"/>`
	root, err := Read(strings.NewReader(doc), cr)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if label != "x-test" {
		t.Errorf("charset reader called with %q", label)
	}
	if root.Tag != "a" {
		t.Errorf("root = %q", root.Tag)
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		empty bool
	}{
		{"empty", "", true},
		{"declaration only", `<?xml version="1.0"?>`, true},
		{"unquoted attribute", `<fmiModelDescription guid=x/>`, false},
		{"unsupported encoding", `<?xml version="1.0" encoding="no-such-charset"?><a/>`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := Read(strings.NewReader(tt.doc), nil)
			if err == nil {
				t.Fatalf("Read returned root %v, want error", root)
			}
			if got := errors.Is(err, ErrEmptyDocument); got != tt.empty {
				t.Errorf("errors.Is(err, ErrEmptyDocument) = %v, want %v (err: %v)", got, tt.empty, err)
			}
		})
	}
}

func TestPath(t *testing.T) {
	root, err := Read(strings.NewReader(`<a><b><c/></b></a>`), nil)
	if err != nil {
		t.Fatal(err)
	}
	c := root.FindElement("b/c")
	if got := Path(c); got != "/a/b/c" {
		t.Errorf("Path = %q, want /a/b/c", got)
	}
}
