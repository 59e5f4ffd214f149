package synth

import (
	"strings"

	"infa2sql/internal/common"
	"infa2sql/internal/endpoint"
)

// CrossJoinNote is attached to joins of sources that share no column.
const CrossJoinNote = "No common columns across sources; used CROSS JOIN"

// JoinSpec describes the FROM clause chosen for a set of sources.
type JoinSpec struct {
	// From is the full clause, starting with "FROM".
	From string
	// Common lists the columns shared by every source, in the first source's
	// order and spelling. Empty for single-source and CROSS JOIN plans.
	Common []string
	// Note explains a fallback decision, empty when there is none.
	Note string
}

// Selection is the result of one synthesis pass.
type Selection struct {
	// Columns are the SELECT expressions in output order.
	Columns []string
	// Missing lists the wanted columns no source declares (projected as NULL).
	Missing []string
	Join    JoinSpec
}

// SelectList returns the comma separated SELECT expressions.
func (s Selection) SelectList() string {
	return strings.Join(s.Columns, ", ")
}

// Synthesize computes the FROM clause and SELECT list for sources.
//
// targetColumns, when non-empty, fixes the output columns and their order;
// otherwise the sources' own fields are projected. An empty sources slice
// yields an empty Selection.
func Synthesize(sources []endpoint.Endpoint, targetColumns []string) Selection {
	switch len(sources) {
	case 0:
		return Selection{}
	case 1:
		return single(sources[0], targetColumns)
	default:
		return multi(sources, targetColumns)
	}
}

func single(src endpoint.Endpoint, targetColumns []string) Selection {
	sel := Selection{Join: JoinSpec{From: "FROM " + src.Name}}

	switch {
	case len(targetColumns) > 0:
		for _, col := range targetColumns {
			if src.Has(col) {
				sel.Columns = append(sel.Columns, col)
				continue
			}

			sel.Columns = append(sel.Columns, nullAs(col))
			sel.Missing = append(sel.Missing, col)
		}
	case src.HasFields():
		sel.Columns = append(sel.Columns, src.Fields...)
	default:
		sel.Columns = []string{"*"}
	}

	return sel
}

func multi(sources []endpoint.Endpoint, targetColumns []string) Selection {
	join := Join(sources)
	shared := common.NewFoldSet(join.Common...)

	wanted := targetColumns
	if len(wanted) == 0 {
		wanted = Union(sources)
	}

	sel := Selection{Join: join}

	for _, col := range wanted {
		if shared.Has(col) {
			sel.Columns = append(sel.Columns, col)
			continue
		}

		if owner, ok := Owner(sources, col); ok {
			sel.Columns = append(sel.Columns, owner.Name+"."+col)
			continue
		}

		sel.Columns = append(sel.Columns, nullAs(col))
		sel.Missing = append(sel.Missing, col)
	}

	if len(sel.Columns) == 0 {
		sel.Columns = []string{"*"}
	}

	return sel
}

// Join builds the FROM clause for sources: a USING join on the columns
// common to all of them, or a CROSS JOIN chain when there are none.
func Join(sources []endpoint.Endpoint) JoinSpec {
	if len(sources) == 0 {
		return JoinSpec{}
	}

	first := sources[0]
	shared := CommonColumns(sources)

	var b strings.Builder

	b.WriteString("FROM ")
	b.WriteString(first.Name)

	if len(sources) == 1 {
		return JoinSpec{From: b.String()}
	}

	if len(shared) == 0 {
		for _, src := range sources[1:] {
			b.WriteString(" CROSS JOIN ")
			b.WriteString(src.Name)
		}

		return JoinSpec{From: b.String(), Common: []string{}, Note: CrossJoinNote}
	}

	using := strings.Join(shared, ", ")
	for _, src := range sources[1:] {
		b.WriteString(" JOIN ")
		b.WriteString(src.Name)
		b.WriteString(" USING (")
		b.WriteString(using)
		b.WriteString(")")
	}

	return JoinSpec{From: b.String(), Common: shared}
}

// CommonColumns returns the columns declared by every source, compared
// case-insensitively, in the first source's order and spelling. A single
// source has no common columns.
func CommonColumns(sources []endpoint.Endpoint) []string {
	if len(sources) < 2 {
		return []string{}
	}

	shared := append([]string{}, sources[0].Fields...)

	for _, src := range sources[1:] {
		set := src.FieldSet()
		narrowed := shared[:0]

		for _, col := range shared {
			if set.Has(col) {
				narrowed = append(narrowed, col)
			}
		}

		shared = narrowed
	}

	return shared
}

// Union returns every source field once, compared case-insensitively, in
// first-seen order across sources.
func Union(sources []endpoint.Endpoint) []string {
	var all []string
	for _, src := range sources {
		all = append(all, src.Fields...)
	}

	return common.DedupFold(all)
}

// Owner returns the first source, in list order, declaring col.
func Owner(sources []endpoint.Endpoint, col string) (endpoint.Endpoint, bool) {
	for _, src := range sources {
		if src.Has(col) {
			return src, true
		}
	}

	return endpoint.Endpoint{}, false
}

// Intersect returns the target's fields that the source also declares,
// in target order. This is the column set of a single source/target pair.
func Intersect(target, source endpoint.Endpoint) []string {
	set := source.FieldSet()
	out := []string{}

	for _, col := range target.Fields {
		if set.Has(col) {
			out = append(out, col)
		}
	}

	return out
}

func nullAs(col string) string {
	return "NULL AS " + col
}
