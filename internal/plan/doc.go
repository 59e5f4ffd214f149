// Package plan builds canonical mapping plans from a loaded workflow document.
//
// Pipeline:
//  1. Load the document (XML tree or JSON value) → document.Document
//  2. Discover mappings in document order
//  3. For each mapping, normalize its source and target endpoints
//  4. Hand the plans to synthesis and SQL generation
//
// A plan whose sources or targets are empty is still returned; the generator
// turns it into a commented placeholder statement.
package plan
