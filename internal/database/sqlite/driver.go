// Package sqlite backs the sqlite dialect with modernc.org/sqlite through
// the shared database/sql driver.
//
// SQLite has no queryable information_schema, so this driver indexes the
// catalog at connect time: it walks sqlite_master and the table_info /
// foreign_key_list pragmas and materializes two temp tables, dbx_schema and
// dbx_foreign_keys, that the sqlite template set reads.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/dbx-go/dbx/internal/database/stdsql"
)

// New creates an unconnected SQLite driver. dbName is the display name of
// the database file.
func New(dbName string) *stdsql.Driver {
	d := stdsql.New("sqlite", dbName)
	d.OnConnect(buildCatalog)
	return d
}

func buildCatalog(ctx context.Context, db *sql.DB) error {
	// Temp tables are per-connection; pin the pool to a single connection
	// so every later query sees the catalog.
	db.SetMaxOpenConns(1)

	tables, err := listTables(ctx, db)
	if err != nil {
		return err
	}

	stmts := []string{
		`drop table if exists dbx_schema`,
		`create temp table dbx_schema (
			table_name text, column_name text, data_type text, ordinal integer)`,
		`drop table if exists dbx_foreign_keys`,
		`create temp table dbx_foreign_keys (
			table_name text, column_name text, foreign_table text, foreign_column text)`,
	}
	for _, s := range stmts {
		if _, err := db.ExecContext(ctx, s); err != nil {
			return fmt.Errorf("create catalog table: %w", err)
		}
	}

	for _, table := range tables {
		if err := indexColumns(ctx, db, table); err != nil {
			return err
		}
		if err := indexForeignKeys(ctx, db, table); err != nil {
			return err
		}
	}
	return nil
}

func listTables(ctx context.Context, db *sql.DB) ([]string, error) {
	rows, err := db.QueryContext(ctx,
		`select name from sqlite_master where type = 'table' and name not like 'sqlite_%' order by name`)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan table: %w", err)
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

func indexColumns(ctx context.Context, db *sql.DB, table string) error {
	rows, err := db.QueryContext(ctx,
		`select name, type, cid from pragma_table_info(?)`, table)
	if err != nil {
		return fmt.Errorf("table_info %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var name, dtype string
		var ordinal int
		if err := rows.Scan(&name, &dtype, &ordinal); err != nil {
			return fmt.Errorf("scan column: %w", err)
		}
		if _, err := db.ExecContext(ctx,
			`insert into dbx_schema (table_name, column_name, data_type, ordinal) values (?, ?, ?, ?)`,
			table, name, dtype, ordinal); err != nil {
			return fmt.Errorf("index column: %w", err)
		}
	}
	return rows.Err()
}

func indexForeignKeys(ctx context.Context, db *sql.DB, table string) error {
	rows, err := db.QueryContext(ctx,
		`select "from", "table", "to" from pragma_foreign_key_list(?)`, table)
	if err != nil {
		return fmt.Errorf("foreign_key_list %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var from string
		// "to" is NULL when the constraint references the target's
		// implicit primary key; those rows are skipped.
		var target, toCol sql.NullString
		if err := rows.Scan(&from, &target, &toCol); err != nil {
			return fmt.Errorf("scan foreign key: %w", err)
		}
		if !target.Valid || !toCol.Valid {
			continue
		}
		if _, err := db.ExecContext(ctx,
			`insert into dbx_foreign_keys (table_name, column_name, foreign_table, foreign_column) values (?, ?, ?, ?)`,
			table, from, target.String, toCol.String); err != nil {
			return fmt.Errorf("index foreign key: %w", err)
		}
	}
	return rows.Err()
}
