// Package xmltree reads XML documents into an etree element tree.
package xmltree

import (
	"errors"
	"fmt"
	"io"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"
)

// CharsetReader converts input declared in a non-UTF-8 encoding to UTF-8.
type CharsetReader func(label string, input io.Reader) (io.Reader, error)

// DefaultCharsetReader decodes every encoding label known to the WHATWG
// encoding standard.
var DefaultCharsetReader CharsetReader = charset.NewReaderLabel

// ErrEmptyDocument is returned when a document has no root element.
var ErrEmptyDocument = errors.New("document has no root element")

// Read parses r and returns the root element. A nil cr selects
// DefaultCharsetReader.
func Read(r io.Reader, cr CharsetReader) (*etree.Element, error) {
	if cr == nil {
		cr = DefaultCharsetReader
	}
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = cr
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("reading xml: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, ErrEmptyDocument
	}
	return root, nil
}

// Path returns the slash-separated element path from the document root.
func Path(el *etree.Element) string {
	return el.GetPath()
}
