// Package endpoint normalizes source and target descriptions into a canonical
// ordered list of endpoints.
//
// Workflow documents describe endpoints in many shapes: a bare table name, an
// object with fields nested under one of several keys, or a list mixing both.
// Normalize walks all of them with one recursive descent and yields
// Endpoint values with a name and a de-duplicated, ordered field list.
//
// # Field keys
//
// Fields are looked up on an object in this priority order; the first key
// that yields at least one field wins:
//
//	fields, columns, ports, children, items, schema.fields
//
// Each key is a JMESPath expression evaluated against the object. Leaves may
// be strings, scalars, or objects carrying a "name"; objects without a name
// are searched again with the same key order.
package endpoint
