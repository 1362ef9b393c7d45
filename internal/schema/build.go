package schema

import "fmt"

// CatalogRow is one introspection row: a single column of a single table.
// Rows arrive in catalog order, which becomes the column order of the built
// tables.
type CatalogRow struct {
	Schema   string
	Table    string
	Column   string
	DataType string
}

// KeyRow is one key edge: Table.Column references RefTable.RefColumn.
// Reference-key query results are normalized into the same direction before
// build, so foreign-key and reference-key rows are processed identically.
// Each endpoint carries its own schema; the key queries report the far
// endpoint by bare name, so its schema is usually empty.
type KeyRow struct {
	Schema    string
	Table     string
	Column    string
	RefSchema string
	RefTable  string
	RefColumn string
}

// Build constructs a snapshot from introspection rows. Tables are created
// on first sight and columns appended in row order. Key rows whose endpoints
// both resolve are recorded on both columns; a row with a missing endpoint
// is dropped with a warning, never an error.
func Build(exec Executor, catalog []CatalogRow, fks, refs []KeyRow) *Database {
	d := &Database{
		exec:   exec,
		tables: make(map[string]*Table),
		byBare: make(map[string][]*Table),
	}

	for _, row := range catalog {
		key := row.Table
		if row.Schema != "" {
			key = row.Schema + "." + row.Table
		}
		t, ok := d.tables[key]
		if !ok {
			t = &Table{
				Name:   row.Table,
				Schema: row.Schema,
				db:     d,
				byName: make(map[string]*Column),
			}
			d.tables[key] = t
			d.byBare[row.Table] = append(d.byBare[row.Table], t)
			d.order = append(d.order, key)
		}
		if _, exists := t.byName[row.Column]; exists {
			continue
		}
		c := &Column{Name: row.Column, DataType: row.DataType, Table: t}
		t.columns = append(t.columns, c)
		t.byName[row.Column] = c
	}

	for _, row := range fks {
		d.applyKey(row)
	}
	for _, row := range refs {
		d.applyKey(row)
	}

	return d
}

func (d *Database) applyKey(row KeyRow) {
	src := d.resolveColumn(row.Schema, row.Table, row.Column)
	dst := d.resolveColumn(row.RefSchema, row.RefTable, row.RefColumn)
	if src == nil || dst == nil {
		d.Warnings = append(d.Warnings, fmt.Sprintf(
			"key %s.%s -> %s.%s skipped: endpoint not resolved",
			row.Table, row.Column, row.RefTable, row.RefColumn))
		return
	}
	if !containsColumn(src.ForeignKeys, dst) {
		src.ForeignKeys = append(src.ForeignKeys, dst)
	}
	if !containsColumn(dst.RefKeys, src) {
		dst.RefKeys = append(dst.RefKeys, src)
	}
}

// resolveColumn finds a column by table and column name. A known schema is
// an exact lookup; an empty one resolves through the bare-name index, and an
// ambiguous bare name does not resolve. Falling back from a qualified miss
// to a bare match would attach key edges to a same-named table in another
// schema, so there is no fallback.
func (d *Database) resolveColumn(schema, table, column string) *Column {
	var t *Table
	if schema != "" {
		t = d.tables[schema+"."+table]
	} else if candidates := d.byBare[table]; len(candidates) == 1 {
		t = candidates[0]
	}
	if t == nil {
		return nil
	}
	return t.byName[column]
}

func containsColumn(cols []*Column, c *Column) bool {
	for _, existing := range cols {
		if existing == c {
			return true
		}
	}
	return false
}
