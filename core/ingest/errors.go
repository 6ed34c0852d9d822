package ingest

import "fmt"

// SchemaError reports a required column missing from an input table. It is
// not recoverable: the reconciliation run must be aborted and the caller told
// exactly which table and column are at fault.
type SchemaError struct {
	Table  string
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: missing required column %q", e.Table, e.Column)
}

// TypeError reports non-numeric data in a numeric column. Handled like a
// SchemaError: the run aborts with the table, column, and row named.
type TypeError struct {
	Table  string
	Column string
	Row    int
	Value  string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: row %d column %q: cannot parse %q as a currency amount", e.Table, e.Row, e.Column, e.Value)
}
