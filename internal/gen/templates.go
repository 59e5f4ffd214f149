package gen

import (
	"text/template"
)

// statementData holds everything the statement template renders.
type statementData struct {
	Comments bool
	Header   string
	Notes    []string
	Target   string
	// Columns is the insert column list, empty to omit it.
	Columns string
	Select  string
	From    string
}

// placeholderData holds the placeholder template input.
type placeholderData struct {
	Name string
}

var statementTemplate = template.Must(template.New("statement").Parse(
	`{{if .Comments}}-- Mapping: {{.Header}}
{{range .Notes}}-- {{.}}
{{end}}{{end}}INSERT INTO {{.Target}}{{with .Columns}} ({{.}}){{end}}
SELECT {{.Select}} {{.From}};`))

var placeholderTemplate = template.Must(template.New("placeholder").Parse(
	`-- Mapping: {{.Name}}
-- Unsupported or underspecified mapping: sources and targets could not be resolved
SELECT /* mapping {{.Name}} */ *;`))
