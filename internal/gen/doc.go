// Package gen renders mapping plans as ANSI SQL.
//
// Each supported (mapping, target) pair becomes one statement of the form
//
//	INSERT INTO <target> (<columns>)
//	SELECT <list> FROM <sources>;
//
// preceded by a "-- Mapping:" header comment. Mappings whose sources or
// targets cannot be resolved produce a commented placeholder instead.
// Rendering uses text/template; the output is deterministic for a given plan.
//
// Sinks:
//   - WriteStdout prints all mappings sorted by name
//   - WriteFiles writes one .sql file per mapping, or per target
package gen
