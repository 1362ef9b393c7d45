// Package stdsql implements the driver boundary over database/sql. The
// mysql, sqlite and mssql packages wrap it with their registered driver name
// and, where needed, a post-connect hook.
package stdsql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dbx-go/dbx/internal/database"
)

// Driver implements database.Driver for any registered database/sql driver.
type Driver struct {
	driverName string
	dbName     string
	db         *sql.DB

	// afterConnect, when set, runs once after a successful connect. The
	// sqlite driver uses it to materialize its catalog temp tables.
	afterConnect func(ctx context.Context, db *sql.DB) error
}

// New creates an unconnected driver for the named database/sql driver.
// dbName is the display name of the target database.
func New(driverName, dbName string) *Driver {
	return &Driver{driverName: driverName, dbName: dbName}
}

// OnConnect registers a hook that runs once after Connect succeeds.
func (d *Driver) OnConnect(fn func(ctx context.Context, db *sql.DB) error) {
	d.afterConnect = fn
}

// Connect opens the database and verifies the connection with a ping.
func (d *Driver) Connect(ctx context.Context, dsn string) error {
	db, err := sql.Open(d.driverName, dsn)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("ping: %w", err)
	}
	if d.afterConnect != nil {
		if err := d.afterConnect(ctx, db); err != nil {
			db.Close()
			return err
		}
	}
	d.db = db
	return nil
}

// Ping checks if the connection is alive.
func (d *Driver) Ping(ctx context.Context) error {
	if d.db == nil {
		return fmt.Errorf("not connected")
	}
	return d.db.PingContext(ctx)
}

// Query runs a SQL statement and collects its rows.
func (d *Driver) Query(ctx context.Context, query string) (*database.Result, error) {
	if d.db == nil {
		return nil, fmt.Errorf("not connected")
	}

	start := time.Now()

	rows, err := d.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("execute: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}

	var resultRows [][]any
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		for i, v := range values {
			// database/sql hands text back as []byte for several
			// drivers; normalize to string so cells stay scalar.
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		resultRows = append(resultRows, values)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return &database.Result{
		Columns:  columns,
		Rows:     resultRows,
		Duration: time.Since(start),
	}, nil
}

// Close closes the database handle.
func (d *Driver) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

// DatabaseName returns the name of the connected database.
func (d *Driver) DatabaseName() string {
	return d.dbName
}
