// Package convert ties the pipeline together: it loads a workflow document,
// builds its mapping plans and renders them as SQL.
//
// Mappings are rendered in parallel; results always come back in document
// order. By default unreadable JSON documents count as empty, matching the
// behaviour users of the original command line tool rely on. WithStrict turns
// that into an error.
package convert
