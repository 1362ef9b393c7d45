// Package dialect centralizes the SQL differences between supported database
// engines: one template set per dialect, keyed by a shared operation
// vocabulary, plus per-dialect identifier quoting rules. Everything else in
// the codebase speaks operation names and never dialect-specific SQL.
package dialect

import (
	"fmt"
	"strings"
)

// Dialect identifies a supported database engine. The set is closed: adding
// an engine means registering a complete template set and quoting rule here.
type Dialect string

const (
	Postgres Dialect = "postgres"
	Redshift Dialect = "redshift"
	MySQL    Dialect = "mysql"
	SQLite   Dialect = "sqlite"
	MSSQL    Dialect = "mssql"
)

// All returns every registered dialect.
func All() []Dialect {
	return []Dialect{Postgres, Redshift, MySQL, SQLite, MSSQL}
}

// Parse normalizes a user-supplied dialect name. It accepts a few common
// aliases ("postgresql", "sqlite3", "sqlserver").
func Parse(s string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "postgres", "postgresql", "pg":
		return Postgres, nil
	case "redshift":
		return Redshift, nil
	case "mysql", "mariadb":
		return MySQL, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	case "mssql", "sqlserver":
		return MSSQL, nil
	}
	return "", fmt.Errorf("unknown dialect %q", s)
}

// DefaultPort returns the conventional port for a dialect, or 0 when the
// dialect is file-based.
func (d Dialect) DefaultPort() int {
	switch d {
	case Postgres:
		return 5432
	case Redshift:
		return 5439
	case MySQL:
		return 3306
	case MSSQL:
		return 1433
	}
	return 0
}

// QuoteIdent quotes an identifier with the dialect's quoting character,
// doubling any embedded closing character. Quoted identifiers keep their
// case on every supported engine, so no case folding is applied here.
func (d Dialect) QuoteIdent(name string) string {
	switch d {
	case MySQL:
		return "`" + strings.ReplaceAll(name, "`", "``") + "`"
	case MSSQL:
		return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
	default:
		return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
	}
}

// EscapeLiteral escapes a string for embedding in a single-quoted SQL
// literal. The surrounding quotes are the template's responsibility.
func EscapeLiteral(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
