package gen

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResults() []MappingSQL {
	return []MappingSQL{
		{
			Name: "m_b",
			Statements: []Statement{
				{Mapping: "m_b", Target: "T1", SQL: "INSERT INTO T1 (id)\nSELECT id FROM S;"},
				{Mapping: "m_b", Target: "T2", SQL: "INSERT INTO T2 (id)\nSELECT id FROM S;"},
			},
		},
		{
			Name: "m_a",
			Statements: []Statement{
				{Mapping: "m_a", SQL: "SELECT /* mapping m_a */ *;"},
			},
		},
	}
}

func TestWriteStdout(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteStdout(&buf, sampleResults()))

	assert.Equal(t,
		"SELECT /* mapping m_a */ *;\n"+
			"\n"+
			"INSERT INTO T1 (id)\nSELECT id FROM S;\n"+
			"\n"+
			"INSERT INTO T2 (id)\nSELECT id FROM S;\n",
		buf.String())
}

func TestWriteStdout_Empty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteStdout(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestWriteFiles_PerMapping(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	paths, err := WriteFiles(sampleResults(), dir, false)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "m_b.sql"),
		filepath.Join(dir, "m_a.sql"),
	}, paths)

	data, err := os.ReadFile(filepath.Join(dir, "m_b.sql"))
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO T1 (id)\nSELECT id FROM S;\n\nINSERT INTO T2 (id)\nSELECT id FROM S;\n", string(data))
}

func TestWriteFiles_SplitTargets(t *testing.T) {
	dir := t.TempDir()

	results := append(sampleResults(), MappingSQL{
		Name: "m_c",
		Statements: []Statement{
			{Mapping: "m_c", Target: "T1", SQL: "INSERT INTO T1 (id)\nSELECT id FROM R;"},
		},
	})

	paths, err := WriteFiles(results, dir, true)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "T1.sql"),
		filepath.Join(dir, "T2.sql"),
		filepath.Join(dir, "m_a.sql"),
	}, paths)

	data, err := os.ReadFile(filepath.Join(dir, "T1.sql"))
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO T1 (id)\nSELECT id FROM S;\n\nINSERT INTO T1 (id)\nSELECT id FROM R;\n", string(data))
}

func TestWriteFiles_CreateDirError(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err := WriteFiles(sampleResults(), filepath.Join(file, "sub"), false)
	assert.ErrorContains(t, err, "creating output directory")
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "m_orders", want: "m_orders"},
		{in: "dbo.ORDERS", want: "dbo.ORDERS"},
		{in: "a/b\\c", want: "a_b_c"},
		{in: "  spaced name ", want: "spaced_name"},
		{in: "..", want: "UNKNOWN_MAPPING"},
		{in: "", want: "UNKNOWN_MAPPING"},
		{in: "café", want: "caf_"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.in))
		})
	}
}
