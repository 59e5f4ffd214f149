package convert

import (
	"infa2sql/internal/common"
	"infa2sql/internal/diagnostic"
	"infa2sql/internal/gen"
)

// Result is the outcome of converting one document.
type Result struct {
	// Mappings in document order, one per declared mapping.
	Mappings []gen.MappingSQL
	// Diagnostics collected while rendering.
	Diagnostics diagnostic.Diagnostics
}

// SQLByName maps each mapping name to its SQL text. Mappings sharing a name
// have their SQL joined by a blank line, in document order.
func (r *Result) SQLByName() map[string]string {
	out := make(map[string]string, len(r.Mappings))

	for _, m := range r.Mappings {
		if prev, ok := out[m.Name]; ok {
			out[m.Name] = prev + "\n\n" + m.Text()
			continue
		}

		out[m.Name] = m.Text()
	}

	return out
}

// Names returns the distinct mapping names in document order.
func (r *Result) Names() []string {
	names := make([]string, 0, len(r.Mappings))
	for _, m := range r.Mappings {
		names = append(names, m.Name)
	}

	return common.Dedup(names)
}
