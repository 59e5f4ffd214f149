package gen

import (
	"strings"
)

// Statement is the SQL generated for one (mapping, target) pair.
type Statement struct {
	// Mapping is the name of the mapping the statement belongs to.
	Mapping string
	// Target is the target table, empty for placeholders.
	Target string
	// SQL is the statement text, including its comment lines.
	SQL string
}

// IsPlaceholder reports whether the statement stands in for an
// unsupported mapping.
func (s Statement) IsPlaceholder() bool {
	return s.Target == ""
}

// MappingSQL is the generated SQL of one mapping.
type MappingSQL struct {
	Name       string
	Statements []Statement
}

// Text joins the mapping's statements with a blank line.
func (m MappingSQL) Text() string {
	parts := make([]string, 0, len(m.Statements))
	for _, st := range m.Statements {
		parts = append(parts, st.SQL)
	}

	return strings.Join(parts, "\n\n")
}
