package schema

import (
	"context"

	"github.com/dbx-go/dbx/internal/database"
	"github.com/dbx-go/dbx/internal/dialect"
)

// Row limits applied when the caller passes n <= 0.
const (
	defaultHeadRows   = 6
	defaultSampleRows = 10
)

func (t *Table) params() dialect.Params {
	return dialect.Params{Schema: t.Schema, Table: t.Name}
}

// Head returns the first n rows of the table.
func (t *Table) Head(ctx context.Context, n int) (*database.Result, error) {
	if n <= 0 {
		n = defaultHeadRows
	}
	p := t.params()
	p.Limit = n
	return t.db.exec.ExecuteTemplate(ctx, dialect.TableHead, p)
}

// All returns the entire table.
func (t *Table) All(ctx context.Context) (*database.Result, error) {
	return t.db.exec.ExecuteTemplate(ctx, dialect.TableAll, t.params())
}

// Select returns the given columns of the table; no columns means all.
func (t *Table) Select(ctx context.Context, columns ...string) (*database.Result, error) {
	p := t.params()
	p.Columns = columns
	return t.db.exec.ExecuteTemplate(ctx, dialect.TableSelect, p)
}

// Unique returns the distinct rows over the given columns; no columns means
// distinct over all columns.
func (t *Table) Unique(ctx context.Context, columns ...string) (*database.Result, error) {
	p := t.params()
	p.Columns = columns
	return t.db.exec.ExecuteTemplate(ctx, dialect.TableUnique, p)
}

// Sample returns a pseudo-random subset of up to n rows. The randomization
// is whatever the dialect's SQL engine provides; no distribution or seed is
// guaranteed.
func (t *Table) Sample(ctx context.Context, n int) (*database.Result, error) {
	if n <= 0 {
		n = defaultSampleRows
	}
	p := t.params()
	p.Limit = n
	return t.db.exec.ExecuteTemplate(ctx, dialect.TableSample, p)
}

func (c *Column) params() dialect.Params {
	return dialect.Params{Schema: c.Table.Schema, Table: c.Table.Name, Column: c.Name}
}

// Head returns the first n values of the column.
func (c *Column) Head(ctx context.Context, n int) (*database.Result, error) {
	if n <= 0 {
		n = defaultHeadRows
	}
	p := c.params()
	p.Limit = n
	return c.Table.db.exec.ExecuteTemplate(ctx, dialect.ColumnHead, p)
}

// All returns every value of the column.
func (c *Column) All(ctx context.Context) (*database.Result, error) {
	return c.Table.db.exec.ExecuteTemplate(ctx, dialect.ColumnAll, c.params())
}

// Unique returns the distinct values of the column.
func (c *Column) Unique(ctx context.Context) (*database.Result, error) {
	return c.Table.db.exec.ExecuteTemplate(ctx, dialect.ColumnUnique, c.params())
}

// Sample returns a pseudo-random subset of up to n values; see
// Table.Sample for the randomization caveat.
func (c *Column) Sample(ctx context.Context, n int) (*database.Result, error) {
	if n <= 0 {
		n = defaultSampleRows
	}
	p := c.params()
	p.Limit = n
	return c.Table.db.exec.ExecuteTemplate(ctx, dialect.ColumnSample, p)
}
