package app

import (
	"fmt"
	"path/filepath"

	"github.com/dbx-go/dbx/internal/config"
	"github.com/dbx-go/dbx/internal/database"
	"github.com/dbx-go/dbx/internal/database/mssql"
	"github.com/dbx-go/dbx/internal/database/mysql"
	"github.com/dbx-go/dbx/internal/database/postgres"
	"github.com/dbx-go/dbx/internal/database/sqlite"
	"github.com/dbx-go/dbx/internal/dialect"
)

// driverEntry ties a dialect to a driver constructor and the dialect's
// template set. Default ports come from dialect.DefaultPort.
type driverEntry struct {
	templates dialect.TemplateSet
	open      func(p config.Profile) database.Driver
}

var driverRegistry = map[dialect.Dialect]driverEntry{
	dialect.Postgres: {
		templates: mustTemplates(dialect.Postgres),
		open: func(config.Profile) database.Driver {
			return postgres.New()
		},
	},
	dialect.Redshift: {
		templates: mustTemplates(dialect.Redshift),
		open: func(config.Profile) database.Driver {
			return postgres.New()
		},
	},
	dialect.MySQL: {
		templates: mustTemplates(dialect.MySQL),
		open: func(p config.Profile) database.Driver {
			return mysql.New(p.Database)
		},
	},
	dialect.SQLite: {
		templates: mustTemplates(dialect.SQLite),
		open: func(p config.Profile) database.Driver {
			return sqlite.New(filepath.Base(p.File))
		},
	},
	dialect.MSSQL: {
		templates: mustTemplates(dialect.MSSQL),
		open: func(p config.Profile) database.Driver {
			return mssql.New(p.Database)
		},
	},
}

// mustTemplates panics on a missing template set; the registry is static,
// so this is a registration-time configuration error, not a runtime one.
func mustTemplates(d dialect.Dialect) dialect.TemplateSet {
	set, err := dialect.Templates(d)
	if err != nil {
		panic(err)
	}
	return set
}

func driverFor(d dialect.Dialect) (driverEntry, error) {
	ent, ok := driverRegistry[d]
	if !ok {
		return driverEntry{}, fmt.Errorf("no driver registered for dialect %q", d)
	}
	return ent, nil
}
