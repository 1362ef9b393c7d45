// Package mysql backs the mysql dialect with go-sql-driver/mysql through
// the shared database/sql driver.
package mysql

import (
	_ "github.com/go-sql-driver/mysql"

	"github.com/dbx-go/dbx/internal/database/stdsql"
)

// New creates an unconnected MySQL driver. dbName is the display name of
// the target database.
func New(dbName string) *stdsql.Driver {
	return stdsql.New("mysql", dbName)
}
