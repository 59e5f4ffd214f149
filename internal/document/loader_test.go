package document

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_XML(t *testing.T) {
	doc, err := Load("testdata/simple.xml")
	require.NoError(t, err)

	assert.Equal(t, KindXML, doc.Kind)
	require.NotNil(t, doc.XML)
	assert.Equal(t, "REPOSITORY", doc.XML.Name())

	mappings := doc.XML.Descendants("MAPPING")
	require.Len(t, mappings, 1)

	name, ok := mappings[0].Attr("name")
	require.True(t, ok)
	assert.Equal(t, "m_simple", name)

	transformations := mappings[0].ChildrenNamed("TRANSFORMATION")
	require.Len(t, transformations, 2)
	assert.Len(t, transformations[0].ChildrenNamed("FIELD"), 2)
}

func TestLoad_XMLLatin1(t *testing.T) {
	doc, err := Load("testdata/latin1.xml")
	require.NoError(t, err)

	mappings := doc.XML.FindAll("mapping")
	require.Len(t, mappings, 1)

	name, _ := mappings[0].Attr("NAME")
	assert.Equal(t, "m_café", name)
}

func TestLoad_JSONSniffedFromContent(t *testing.T) {
	doc, err := Load("testdata/sniffed.txt")
	require.NoError(t, err)

	assert.Equal(t, KindJSON, doc.Kind)
	root, ok := doc.JSON.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, root, "mappings")
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		path string
		kind Kind
	}{
		{"malformed json", "testdata/broken.json", KindJSON},
		{"malformed xml", "testdata/broken.xml", KindXML},
		{"missing json", "testdata/missing.json", KindJSON},
		{"missing xml", "testdata/missing.xml", KindXML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnreadable)

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.kind, perr.Kind)
			assert.Equal(t, tt.path, perr.Path)
		})
	}
}

func TestLoad_MissingFileWrapsNotExist(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.xml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParse_BOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte(`{"mappings": []}`)...)

	doc, err := Parse("wf", data)
	require.NoError(t, err)
	assert.Equal(t, KindJSON, doc.Kind)
}

func TestParse_EmptyXMLIsAnError(t *testing.T) {
	_, err := Parse("wf.xml", nil)
	assert.ErrorIs(t, err, ErrUnreadable)
}

func TestSniffKind(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		data     string
		expected Kind
	}{
		{"json extension wins", "wf.JSON", "<xml/>", KindJSON},
		{"object", "wf", "  {\"a\": 1}", KindJSON},
		{"array", "wf.txt", "\n[1]", KindJSON},
		{"xml", "wf.xml", "<?xml version='1.0'?><A/>", KindXML},
		{"empty defaults to xml", "wf", "", KindXML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SniffKind(tt.path, []byte(tt.data)))
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "XML", KindXML.String())
	assert.Equal(t, "JSON", KindJSON.String())
	assert.Equal(t, "Kind(0)", Kind(0).String())
}

func TestParseKind(t *testing.T) {
	k, ok := ParseKind("json")
	assert.True(t, ok)
	assert.Equal(t, KindJSON, k)

	k, ok = ParseKind(" XML ")
	assert.True(t, ok)
	assert.Equal(t, KindXML, k)

	_, ok = ParseKind("yaml")
	assert.False(t, ok)
}
