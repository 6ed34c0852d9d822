// Package ingest turns CSV uploads into the typed tables the reconciliation
// engine consumes.
//
// The engine treats its inputs as already normalized, so all input validation
// lives here: a missing required column surfaces as *SchemaError and
// non-numeric currency data as *TypeError, both naming the offending table
// and column. There are no partial results; the first problem aborts the
// read.
//
// Header-only files are accepted and yield empty tables, which the engine
// reconciles normally (all sums zero).
package ingest
