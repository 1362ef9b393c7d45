// Package mssql backs the mssql dialect with go-mssqldb through the shared
// database/sql driver.
package mssql

import (
	_ "github.com/microsoft/go-mssqldb"

	"github.com/dbx-go/dbx/internal/database/stdsql"
)

// New creates an unconnected SQL Server driver. dbName is the display name
// of the target database.
func New(dbName string) *stdsql.Driver {
	return stdsql.New("sqlserver", dbName)
}
