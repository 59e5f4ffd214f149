// Package document loads Informatica workflow exports.
//
// Two kinds are supported: PowerCenter XML repositories and IDMC JSON
// exports. The kind is sniffed from the file extension and the first
// non-whitespace byte. XML is decoded into a generic element tree, JSON into
// the usual map[string]any / []any values.
package document
