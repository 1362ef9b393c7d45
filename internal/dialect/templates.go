package dialect

import (
	"fmt"
	"strconv"
	"strings"
)

// Operation names a templated query. The set is closed; every dialect must
// supply a template for every operation (see Validate).
type Operation string

const (
	ColumnHead   Operation = "column.head"
	ColumnUnique Operation = "column.unique"
	ColumnAll    Operation = "column.all"
	ColumnSample Operation = "column.sample"

	TableHead   Operation = "table.head"
	TableSelect Operation = "table.select"
	TableUnique Operation = "table.unique"
	TableAll    Operation = "table.all"
	TableSample Operation = "table.sample"

	SchemaNoSystem      Operation = "system.schema_no_system"
	SchemaWithSystem    Operation = "system.schema_with_system"
	SchemaSpecified     Operation = "system.schema_specified"
	ForeignKeysForTable Operation = "system.foreign_keys_for_table"
	ForeignKeysForCol   Operation = "system.foreign_keys_for_column"
	RefKeysForTable     Operation = "system.ref_keys_for_table"
)

// Operations returns every operation name in the vocabulary.
func Operations() []Operation {
	return []Operation{
		ColumnHead, ColumnUnique, ColumnAll, ColumnSample,
		TableHead, TableSelect, TableUnique, TableAll, TableSample,
		SchemaNoSystem, SchemaWithSystem, SchemaSpecified,
		ForeignKeysForTable, ForeignKeysForCol, RefKeysForTable,
	}
}

// TemplateSet maps operation names to SQL text with named placeholders.
//
// Placeholders: {table}, {column} and {columns} render as quoted
// identifiers; {table_name} and {column_name} render as escaped string
// literal content (templates supply the surrounding quotes); {limit} renders
// as an integer; {schemas} renders as a quoted literal list.
type TemplateSet map[Operation]string

var registry = map[Dialect]TemplateSet{
	Postgres: postgresTemplates,
	Redshift: postgresTemplates,
	MySQL:    mysqlTemplates,
	SQLite:   sqliteTemplates,
	MSSQL:    mssqlTemplates,
}

// An incomplete template set is a programming error in this package; fail
// at init rather than on first use of the missing operation.
func init() {
	if err := Validate(); err != nil {
		panic(err)
	}
}

// Template returns the SQL template for an operation under a dialect.
func Template(d Dialect, op Operation) (string, error) {
	set, ok := registry[d]
	if !ok {
		return "", fmt.Errorf("unknown dialect %q", d)
	}
	tmpl, ok := set[op]
	if !ok {
		return "", fmt.Errorf("unknown operation %q", op)
	}
	return tmpl, nil
}

// Templates returns the full template set for a dialect.
func Templates(d Dialect) (TemplateSet, error) {
	set, ok := registry[d]
	if !ok {
		return nil, fmt.Errorf("unknown dialect %q", d)
	}
	return set, nil
}

// Validate checks the completeness invariant: every registered dialect must
// supply a non-empty template for every operation. A violation is a
// programming error in this package, not a runtime condition.
func Validate() error {
	for _, d := range All() {
		set, ok := registry[d]
		if !ok {
			return fmt.Errorf("dialect %q has no template set", d)
		}
		for _, op := range Operations() {
			if strings.TrimSpace(set[op]) == "" {
				return fmt.Errorf("dialect %q is missing template for %q", d, op)
			}
		}
	}
	return nil
}

// Params carries the values substituted into a template. Unused fields are
// ignored by templates that do not reference them.
type Params struct {
	Schema  string   // optional namespace qualifier for Table
	Table   string
	Column  string
	Columns []string // column list; empty means "*"
	Limit   int
	Schemas []string // schema filter for system.schema_specified
}

// Render substitutes params into a template, quoting identifiers and
// escaping literals per the dialect's rules.
func Render(d Dialect, tmpl string, p Params) string {
	table := d.QuoteIdent(p.Table)
	if p.Schema != "" {
		table = d.QuoteIdent(p.Schema) + "." + table
	}

	columns := "*"
	if len(p.Columns) > 0 {
		quoted := make([]string, len(p.Columns))
		for i, c := range p.Columns {
			quoted[i] = d.QuoteIdent(c)
		}
		columns = strings.Join(quoted, ", ")
	}

	schemas := make([]string, len(p.Schemas))
	for i, s := range p.Schemas {
		schemas[i] = "'" + EscapeLiteral(s) + "'"
	}

	r := strings.NewReplacer(
		"{table}", table,
		"{column}", d.QuoteIdent(p.Column),
		"{columns}", columns,
		"{limit}", strconv.Itoa(p.Limit),
		"{table_name}", EscapeLiteral(p.Table),
		"{column_name}", EscapeLiteral(p.Column),
		"{schemas}", strings.Join(schemas, ", "),
	)
	return r.Replace(tmpl)
}
