package document

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
)

// Element is a generic XML element: name, attributes and child elements.
// Character data is not kept, PowerCenter exports carry everything in attributes.
type Element struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []*Element `xml:",any"`
}

// Name returns the element's local name.
func (e *Element) Name() string {
	return e.XMLName.Local
}

// Attr returns the value of the attribute whose local name matches name
// case-insensitively.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if strings.EqualFold(a.Name.Local, name) {
			return a.Value, true
		}
	}

	return "", false
}

// Descendants returns every element below e (not e itself) whose local name
// matches name case-insensitively, in document order.
func (e *Element) Descendants(name string) []*Element {
	var out []*Element

	for _, c := range e.Children {
		if strings.EqualFold(c.Name(), name) {
			out = append(out, c)
		}

		out = append(out, c.Descendants(name)...)
	}

	return out
}

// FindAll is Descendants plus e itself when it matches.
func (e *Element) FindAll(name string) []*Element {
	var out []*Element
	if strings.EqualFold(e.Name(), name) {
		out = append(out, e)
	}

	return append(out, e.Descendants(name)...)
}

// ChildrenNamed returns the direct children whose local name matches name.
func (e *Element) ChildrenNamed(name string) []*Element {
	var out []*Element

	for _, c := range e.Children {
		if strings.EqualFold(c.Name(), name) {
			out = append(out, c)
		}
	}

	return out
}

func parseXML(data []byte) (*Element, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charsetReader

	var root Element
	if err := dec.Decode(&root); err != nil {
		return nil, err
	}

	return &root, nil
}

// charsetReader decodes non UTF-8 exports, e.g. windows-1252 PowerCenter repositories.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, fmt.Errorf("unknown charset %q: %w", label, err)
	}

	if enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", label)
	}

	return enc.NewDecoder().Reader(input), nil
}
