// Package schema holds the in-memory model of a database's structure: a
// Database owning Tables owning Columns, with foreign-key and reference-key
// edges cross-linking columns inside the same snapshot. A snapshot is built
// wholesale from introspection rows and never patched incrementally.
package schema

import (
	"context"
	"fmt"

	"github.com/dbx-go/dbx/internal/database"
	"github.com/dbx-go/dbx/internal/dialect"
)

// Executor runs a templated query. The connection facade implements it;
// tables and columns delegate their convenience operations through it.
type Executor interface {
	ExecuteTemplate(ctx context.Context, op dialect.Operation, p dialect.Params) (*database.Result, error)
}

// NotFoundError reports a failed name lookup in the schema model.
type NotFoundError struct {
	Kind string // "table" or "column"
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

// Database is the root of a schema snapshot.
type Database struct {
	exec   Executor
	tables map[string]*Table   // keyed by qualified name
	byBare map[string][]*Table // bare name -> tables, for unqualified lookups
	order  []string            // qualified names in catalog order

	// Warnings records non-fatal problems found during build, such as
	// foreign keys whose endpoint is absent from the snapshot.
	Warnings []string
}

// Table is an in-memory reference to one table in the snapshot.
type Table struct {
	Name   string
	Schema string // optional namespace qualifier; empty for e.g. SQLite

	db      *Database
	columns []*Column
	byName  map[string]*Column
}

// Column is an in-memory reference to one column of a table.
type Column struct {
	Name     string
	DataType string

	// Table is the owning table (back-reference, not ownership).
	Table *Table

	// ForeignKeys are the columns this column references; RefKeys are the
	// columns that reference this one. Both live in the same snapshot.
	ForeignKeys []*Column
	RefKeys     []*Column
}

// QualifiedName returns schema.table, or just the table name when there is
// no schema qualifier.
func (t *Table) QualifiedName() string {
	if t.Schema == "" {
		return t.Name
	}
	return t.Schema + "." + t.Name
}

// QualifiedName returns table.column with the owning table's qualifier.
func (c *Column) QualifiedName() string {
	return c.Table.QualifiedName() + "." + c.Name
}

// Table looks a table up by exact name. Both the qualified form
// ("schema.table") and the bare name are accepted; a bare name resolves
// only when it is unambiguous.
func (d *Database) Table(name string) (*Table, error) {
	if t, ok := d.tables[name]; ok {
		return t, nil
	}
	if candidates := d.byBare[name]; len(candidates) == 1 {
		return candidates[0], nil
	}
	return nil, &NotFoundError{Kind: "table", Name: name}
}

// Tables enumerates every table in the snapshot in catalog order.
func (d *Database) Tables() []*Table {
	out := make([]*Table, 0, len(d.order))
	for _, name := range d.order {
		out = append(out, d.tables[name])
	}
	return out
}

// Column looks a column up by exact name.
func (t *Table) Column(name string) (*Column, error) {
	if c, ok := t.byName[name]; ok {
		return c, nil
	}
	return nil, &NotFoundError{Kind: "column", Name: name}
}

// Columns enumerates the table's columns in catalog order.
func (t *Table) Columns() []*Column {
	out := make([]*Column, len(t.columns))
	copy(out, t.columns)
	return out
}
