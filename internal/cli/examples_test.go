package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExamples converts every workflow under examples/ and compares the
// output with the .sql file stored next to it.
func TestExamples(t *testing.T) {
	workflows, err := filepath.Glob(filepath.Join("..", "..", "examples", "*", "*"))
	require.NoError(t, err)

	ran := 0

	for _, wf := range workflows {
		ext := filepath.Ext(wf)
		if ext != ".xml" && ext != ".json" {
			continue
		}

		ran++

		t.Run(filepath.Base(filepath.Dir(wf))+"/"+filepath.Base(wf), func(t *testing.T) {
			want, err := os.ReadFile(strings.TrimSuffix(wf, ext) + ".sql")
			require.NoError(t, err)

			got, _, err := runCLI(t, nil, "convert", wf)
			require.NoError(t, err)
			assert.Equal(t, string(want), got)
		})
	}

	assert.Positive(t, ran)
}
