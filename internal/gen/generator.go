package gen

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"infa2sql/internal/common"
	"infa2sql/internal/diagnostic"
	"infa2sql/internal/endpoint"
	"infa2sql/internal/match"
	"infa2sql/internal/plan"
	"infa2sql/internal/synth"
)

// Comments attached to legacy single source/target statements.
const (
	NoOverlapNote   = "No overlapping columns between source and target; selecting all columns"
	NotInferredNote = "Columns could not be inferred; selecting all columns"
)

// GeneratorConfig holds configuration for SQL generation.
type GeneratorConfig struct {
	// GenerateComments enables the header and note comments above each
	// statement. Placeholders always carry their comments.
	GenerateComments bool
	// SuggestionLimit caps the "did you mean" suggestions per NULL-filled column.
	SuggestionLimit int
	// SuggestionThreshold is the minimum similarity for a suggestion.
	SuggestionThreshold float64
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		GenerateComments:    true,
		SuggestionLimit:     3,
		SuggestionThreshold: match.DefaultSuggestionThreshold,
	}
}

// Generator renders mapping plans as SQL. It holds no per-call state and is
// safe for concurrent use.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// Generate renders one mapping plan. Unsupported plans yield a single
// placeholder statement; supported plans yield one statement per target.
func (g *Generator) Generate(p plan.MappingPlan) (MappingSQL, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	out := MappingSQL{Name: p.Name}

	if !p.IsSupported() {
		sql, err := render(placeholderTemplate, placeholderData{Name: p.Name})
		if err != nil {
			return MappingSQL{}, diags, fmt.Errorf("rendering placeholder for %s: %w", p.Name, err)
		}

		diags.AddWarning(diagnostic.CodeUnsupportedMapping,
			"sources and targets could not be resolved", p.Name, "")

		out.Statements = append(out.Statements, Statement{Mapping: p.Name, SQL: sql})

		return out, diags, nil
	}

	if common.IsMultiple(p.Sources) {
		if join := synth.Join(p.Sources); join.Note != "" {
			diags.AddInfo(diagnostic.CodeCrossJoin, join.Note, p.Name, "")
		}
	}

	for _, target := range p.Targets {
		var data statementData
		if p.IsLegacyPair() {
			data = g.legacyStatement(p, &diags)
		} else {
			data = g.statement(p, target, &diags)
		}

		data.Comments = g.config.GenerateComments
		data.Header = p.Name

		if common.IsMultiple(p.Targets) {
			data.Header += " -> " + target.Name
		}

		sql, err := render(statementTemplate, data)
		if err != nil {
			return MappingSQL{}, diags, fmt.Errorf("rendering %s -> %s: %w", p.Name, target.Name, err)
		}

		out.Statements = append(out.Statements, Statement{
			Mapping: p.Name,
			Target:  target.Name,
			SQL:     sql,
		})
	}

	return out, diags, nil
}

// legacyStatement applies the PowerCenter pairing rules: the column list is
// the fields both sides declare, or whichever side declares any.
func (g *Generator) legacyStatement(p plan.MappingPlan, diags *diagnostic.Diagnostics) statementData {
	source, target := p.Sources[0], p.Targets[0]

	data := statementData{
		Target: target.Name,
		Select: "*",
		From:   "FROM " + source.Name,
	}

	var cols []string

	switch {
	case source.HasFields() && target.HasFields():
		cols = synth.Intersect(target, source)
		if len(cols) == 0 {
			data.Notes = append(data.Notes, NoOverlapNote)
			diags.AddWarning(diagnostic.CodeNoOverlappingColumns, NoOverlapNote, p.Name, "")
		}
	case target.HasFields():
		cols = target.Fields
	case source.HasFields():
		cols = source.Fields
	default:
		data.Notes = append(data.Notes, NotInferredNote)
		diags.AddWarning(diagnostic.CodeColumnsNotInferred, NotInferredNote, p.Name, "")
	}

	if len(cols) > 0 {
		data.Columns = strings.Join(cols, ", ")
		data.Select = data.Columns
	}

	return data
}

// statement synthesizes the SELECT for one target of a generalized plan.
func (g *Generator) statement(
	p plan.MappingPlan,
	target endpoint.Endpoint,
	diags *diagnostic.Diagnostics,
) statementData {
	var (
		sel  synth.Selection
		cols []string
	)

	if target.HasFields() {
		sel = synth.Synthesize(p.Sources, target.Fields)
		cols = target.Fields
	} else {
		sel = synth.Synthesize(p.Sources, nil)
		cols = synth.Union(p.Sources)
	}

	for _, col := range sel.Missing {
		diags.AddWarning(diagnostic.CodeNullFilledColumn,
			fmt.Sprintf("no source declares %q; projected as NULL into %s", col, target.Name),
			p.Name, col, g.suggest(col, p.Sources)...)
	}

	data := statementData{
		Target:  target.Name,
		Columns: strings.Join(cols, ", "),
		Select:  sel.SelectList(),
		From:    sel.Join.From,
	}

	if sel.Join.Note != "" {
		data.Notes = append(data.Notes, sel.Join.Note)
	}

	return data
}

// suggest lists source columns that look like col.
func (g *Generator) suggest(col string, sources []endpoint.Endpoint) []string {
	var candidates []match.Candidate

	for _, src := range sources {
		owner := ""
		if len(sources) > 1 {
			owner = src.Name
		}

		for _, f := range src.Fields {
			candidates = append(candidates, match.Candidate{Name: f, Owner: owner})
		}
	}

	ranked := match.Suggest(col, candidates, g.config.SuggestionThreshold, g.config.SuggestionLimit)

	labels := make([]string, 0, len(ranked))
	for _, c := range ranked {
		labels = append(labels, c.Label())
	}

	return labels
}

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
