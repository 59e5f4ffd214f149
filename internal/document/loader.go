package document

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Document is a loaded workflow export.
type Document struct {
	// Path is where the document was read from (informational).
	Path string
	// Kind is the detected format.
	Kind Kind
	// XML is the root element, set for KindXML.
	XML *Element
	// JSON is the decoded value, set for KindJSON.
	JSON any
}

// Load reads and parses the workflow document at path.
// Any failure is returned as a *ParseError.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Kind: kindFromExt(path), Err: err}
	}

	return Parse(path, data)
}

// Parse parses data, using path only for kind detection and error messages.
func Parse(path string, data []byte) (*Document, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	doc := &Document{Path: path, Kind: SniffKind(path, data)}

	switch doc.Kind {
	case KindJSON:
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, &ParseError{Path: path, Kind: KindJSON, Err: err}
		}

		doc.JSON = v
	default:
		root, err := parseXML(data)
		if err != nil {
			return nil, &ParseError{Path: path, Kind: KindXML, Err: err}
		}

		doc.XML = root
	}

	return doc, nil
}

// SniffKind reports KindJSON when path has a .json extension or the first
// non-whitespace byte of data is '{' or '['; otherwise KindXML.
func SniffKind(path string, data []byte) Kind {
	if kindFromExt(path) == KindJSON {
		return KindJSON
	}

	trimmed := bytes.TrimLeft(bytes.TrimPrefix(data, utf8BOM), " \t\r\n")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return KindJSON
	}

	return KindXML
}

func kindFromExt(path string) Kind {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return KindJSON
	}

	return KindXML
}
