package gen

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"infa2sql/internal/plan"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteStdout prints every mapping's SQL to w, mappings sorted by name and
// separated by a blank line.
func WriteStdout(w io.Writer, results []MappingSQL) error {
	for i, m := range sortedByName(results) {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, m.Text()+"\n"); err != nil {
			return fmt.Errorf("writing mapping %s: %w", m.Name, err)
		}
	}

	return nil
}

// WriteFiles writes the generated SQL into outputDir, creating it if needed.
// Each mapping goes to <mapping>.sql; with splitTargets each statement goes
// to <target>.sql instead. Statements that land in the same file are joined
// by a blank line. It returns the written paths in write order.
func WriteFiles(results []MappingSQL, outputDir string, splitTargets bool) ([]string, error) {
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	var (
		order    []string
		contents = make(map[string][]string)
	)

	add := func(name, sql string) {
		filename := SanitizeFilename(name) + ".sql"
		if _, ok := contents[filename]; !ok {
			order = append(order, filename)
		}

		contents[filename] = append(contents[filename], sql)
	}

	for _, m := range results {
		if !splitTargets {
			add(m.Name, m.Text())
			continue
		}

		for _, st := range m.Statements {
			name := st.Target
			if st.IsPlaceholder() {
				name = st.Mapping
			}

			add(name, st.SQL)
		}
	}

	paths := make([]string, 0, len(order))

	for _, filename := range order {
		outputPath := filepath.Join(outputDir, filename)
		body := strings.Join(contents[filename], "\n\n") + "\n"

		err := os.WriteFile(outputPath, []byte(body), filePerm)
		if err != nil {
			return paths, fmt.Errorf("writing file %s: %w", filename, err)
		}

		paths = append(paths, outputPath)
	}

	return paths, nil
}

// SanitizeFilename maps name onto a portable file name: letters, digits,
// '-', '_' and '.' are kept, everything else becomes '_'.
func SanitizeFilename(name string) string {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-', r == '_', r == '.':
			return r
		default:
			return '_'
		}
	}, strings.TrimSpace(name))

	clean = strings.Trim(clean, ".")
	if clean == "" {
		return plan.UnknownMapping
	}

	return clean
}

func sortedByName(results []MappingSQL) []MappingSQL {
	sorted := slices.Clone(results)
	slices.SortStableFunc(sorted, func(a, b MappingSQL) int {
		return cmp.Compare(a.Name, b.Name)
	})

	return sorted
}
