// Package app exposes the connection facade: one object that resolves a
// dialect, opens the matching driver, executes raw and templated SQL, and
// owns the current schema snapshot.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dbx-go/dbx/internal/config"
	"github.com/dbx-go/dbx/internal/database"
	"github.com/dbx-go/dbx/internal/dialect"
	"github.com/dbx-go/dbx/internal/history"
	"github.com/dbx-go/dbx/internal/schema"
)

// DB is a live connection to one database. A DB is used by one caller at a
// time; concurrent exploration means one DB per caller, each with its own
// driver handle and snapshot.
type DB struct {
	profile   config.Profile
	dialect   dialect.Dialect
	driver    database.Driver
	templates dialect.TemplateSet

	// snapshot is replaced wholesale by RefreshSchema; readers holding the
	// previous snapshot keep seeing it in full.
	snapshot *schema.Database

	history *history.Log
	logger  *slog.Logger
}

// Open resolves the profile's dialect, fills an unset port from the
// dialect's default, opens the driver, and builds the initial schema
// snapshot (system objects excluded).
func Open(ctx context.Context, p config.Profile) (*DB, error) {
	d, err := dialect.Parse(p.Dialect)
	if err != nil {
		return nil, &ErrConfig{Cause: err}
	}
	ent, err := driverFor(d)
	if err != nil {
		return nil, &ErrConfig{Cause: err}
	}
	if p.Port == 0 {
		p.Port = d.DefaultPort()
	}

	drv := ent.open(p)
	if err := drv.Connect(ctx, p.DSN()); err != nil {
		return nil, &ErrConnection{Cause: err}
	}

	db := &DB{
		profile:   p,
		dialect:   d,
		driver:    drv,
		templates: ent.templates,
		logger:    slog.Default(),
	}

	if err := db.RefreshSchema(ctx, false); err != nil {
		drv.Close()
		return nil, err
	}
	return db, nil
}

// OpenProfile opens a connection by profile name. An empty name falls back
// to the configured default profile, then to "default".
func OpenProfile(ctx context.Context, name string) (*DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, &ErrConfig{Cause: err}
	}
	p, err := cfg.Resolve(name)
	if err != nil {
		return nil, &ErrConfig{Cause: err}
	}
	return Open(ctx, p)
}

// SetHistory attaches a query history log. Recording is best effort;
// history failures never surface to query callers.
func (db *DB) SetHistory(l *history.Log) {
	db.history = l
}

// Query runs arbitrary SQL against the open connection.
func (db *DB) Query(ctx context.Context, sql string) (*database.Result, error) {
	res, err := db.driver.Query(ctx, sql)
	if err != nil {
		return nil, &ErrQuery{Query: sql, Cause: err}
	}
	db.record(sql, res)
	return res, nil
}

// QueryFile runs the SQL script at path.
func (db *DB) QueryFile(ctx context.Context, path string) (*database.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ErrQuery{Query: path, Cause: err}
	}
	return db.Query(ctx, string(data))
}

// ExecuteTemplate looks the operation up in the dialect's template set,
// substitutes params, and executes the resulting SQL.
func (db *DB) ExecuteTemplate(ctx context.Context, op dialect.Operation, p dialect.Params) (*database.Result, error) {
	tmpl, ok := db.templates[op]
	if !ok {
		return nil, &ErrConfig{Cause: fmt.Errorf("unknown operation %q", op)}
	}
	sql := dialect.Render(db.dialect, tmpl, p)
	res, err := db.driver.Query(ctx, sql)
	if err != nil {
		return nil, &ErrQuery{Query: sql, Cause: err}
	}
	return res, nil
}

// Introspect runs the catalog query for the connection. An explicit schema
// filter wins; otherwise includeSystem picks between the with-system and
// no-system variants.
func (db *DB) Introspect(ctx context.Context, includeSystem bool, schemas []string) (*database.Result, error) {
	op := dialect.SchemaNoSystem
	switch {
	case len(schemas) > 0:
		op = dialect.SchemaSpecified
	case includeSystem:
		op = dialect.SchemaWithSystem
	}
	return db.ExecuteTemplate(ctx, op, dialect.Params{Schemas: schemas})
}

// RefreshSchema rebuilds the schema snapshot from scratch: catalog rows,
// then foreign-key and reference-key rows per table. The old snapshot stays
// visible until the new one is fully built.
func (db *DB) RefreshSchema(ctx context.Context, includeSystem bool, schemas ...string) error {
	res, err := db.Introspect(ctx, includeSystem, schemas)
	if err != nil {
		return err
	}
	catalog := catalogRows(res)

	var fks, refs []schema.KeyRow
	for _, t := range uniqueTables(catalog) {
		p := dialect.Params{Schema: t.Schema, Table: t.Table}

		fkRes, err := db.ExecuteTemplate(ctx, dialect.ForeignKeysForTable, p)
		if err != nil {
			return err
		}
		// The key queries name the far endpoint's table without a schema;
		// its KeyRow schema stays empty so resolution goes through the
		// bare-name index instead of assuming the owning table's schema.
		for _, row := range fkRes.Rows {
			if len(row) < 3 {
				continue
			}
			fks = append(fks, schema.KeyRow{
				Schema:    t.Schema,
				Table:     t.Table,
				Column:    asString(row[0]),
				RefTable:  asString(row[1]),
				RefColumn: asString(row[2]),
			})
		}

		refRes, err := db.ExecuteTemplate(ctx, dialect.RefKeysForTable, p)
		if err != nil {
			return err
		}
		// Reference-key rows arrive as (referenced column in t,
		// referencing table, referencing column); normalize them into
		// the referencing -> referenced direction.
		for _, row := range refRes.Rows {
			if len(row) < 3 {
				continue
			}
			refs = append(refs, schema.KeyRow{
				Table:     asString(row[1]),
				Column:    asString(row[2]),
				RefSchema: t.Schema,
				RefTable:  t.Table,
				RefColumn: asString(row[0]),
			})
		}
	}

	snap := schema.Build(db, catalog, fks, refs)
	for _, w := range snap.Warnings {
		db.logger.Warn(w, "profile", db.profile.Name)
	}
	db.snapshot = snap
	return nil
}

// Schema returns the current snapshot.
func (db *DB) Schema() *schema.Database {
	return db.snapshot
}

// Table looks a table up by exact name in the current snapshot.
func (db *DB) Table(name string) (*schema.Table, error) {
	return db.snapshot.Table(name)
}

// FindTables searches the snapshot's table names with a glob pattern.
func (db *DB) FindTables(pattern string) []*schema.Table {
	return db.snapshot.FindTables(pattern)
}

// FindColumns searches the snapshot's column names with a glob pattern and
// an optional type filter.
func (db *DB) FindColumns(pattern string, types ...string) []*schema.Column {
	return db.snapshot.FindColumns(pattern, types...)
}

// Dialect returns the connection's dialect.
func (db *DB) Dialect() dialect.Dialect {
	return db.dialect
}

// Profile returns the profile the connection was opened with.
func (db *DB) Profile() config.Profile {
	return db.profile
}

// DatabaseName returns the name of the connected database.
func (db *DB) DatabaseName() string {
	return db.driver.DatabaseName()
}

// Close tears the connection down.
func (db *DB) Close() error {
	return db.driver.Close()
}

func (db *DB) record(sql string, res *database.Result) {
	if db.history == nil {
		return
	}
	err := db.history.Append(history.Entry{
		Profile:    db.profile.Name,
		Query:      sql,
		Rows:       res.RowCount(),
		DurationMS: res.Duration.Milliseconds(),
	})
	if err != nil {
		db.logger.Debug("history append failed", "error", err)
	}
}

type tableRef struct {
	Schema string
	Table  string
}

func catalogRows(res *database.Result) []schema.CatalogRow {
	rows := make([]schema.CatalogRow, 0, len(res.Rows))
	for _, row := range res.Rows {
		if len(row) < 4 {
			continue
		}
		rows = append(rows, schema.CatalogRow{
			Schema:   asString(row[0]),
			Table:    asString(row[1]),
			Column:   asString(row[2]),
			DataType: asString(row[3]),
		})
	}
	return rows
}

func uniqueTables(catalog []schema.CatalogRow) []tableRef {
	seen := make(map[tableRef]bool)
	var out []tableRef
	for _, row := range catalog {
		ref := tableRef{Schema: row.Schema, Table: row.Table}
		if !seen[ref] {
			seen[ref] = true
			out = append(out, ref)
		}
	}
	return out
}

func asString(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
