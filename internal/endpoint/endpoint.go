package endpoint

import (
	"strings"

	"infa2sql/internal/common"
)

// Default endpoint names used when a description carries no usable name.
const (
	DefaultSourceName = "SOURCE"
	DefaultTargetName = "TARGET"
)

// Endpoint is a named source or target table with an ordered field list.
// Field names are unique under case-insensitive comparison and keep the
// spelling they were first seen with.
type Endpoint struct {
	Name   string   `yaml:"name"`
	Fields []string `yaml:"fields"`
}

// New builds an endpoint from a name and raw field names. Field names are
// trimmed, blank ones dropped and case-insensitive duplicates removed.
func New(name string, fields ...string) Endpoint {
	cleaned := make([]string, 0, len(fields))

	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			cleaned = append(cleaned, f)
		}
	}

	return Endpoint{
		Name:   strings.TrimSpace(name),
		Fields: common.DedupFold(cleaned),
	}
}

// HasFields reports whether the endpoint declares any field.
func (e Endpoint) HasFields() bool {
	return len(e.Fields) > 0
}

// IndexOf returns the position of col in the field list, compared
// case-insensitively, or -1.
func (e Endpoint) IndexOf(col string) int {
	key := common.FoldKey(col)

	for i, f := range e.Fields {
		if common.FoldKey(f) == key {
			return i
		}
	}

	return -1
}

// Has reports whether the endpoint declares col (case-insensitive).
func (e Endpoint) Has(col string) bool {
	return e.IndexOf(col) >= 0
}

// FieldSet returns the endpoint's fields as a case-insensitive set.
func (e Endpoint) FieldSet() common.FoldSet {
	return common.NewFoldSet(e.Fields...)
}
