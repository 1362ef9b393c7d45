package dialect

// SQLite has no information_schema. The sqlite driver materializes the
// catalog into two temp tables (dbx_schema, dbx_foreign_keys) from pragma
// output when it connects; the system templates read those. SQLite also has
// no schema namespaces, so the specified-schema variant degenerates to the
// plain catalog query and the schema column is an empty literal.
var sqliteTemplates = TemplateSet{
	ColumnHead:   `select {column} from {table} limit {limit}`,
	ColumnAll:    `select {column} from {table}`,
	ColumnUnique: `select distinct {column} from {table}`,
	ColumnSample: `select {column} from {table} order by random() limit {limit}`,

	TableSelect: `select {columns} from {table}`,
	TableHead:   `select * from {table} limit {limit}`,
	TableAll:    `select * from {table}`,
	TableUnique: `select distinct {columns} from {table}`,
	TableSample: `select * from {table} order by random() limit {limit}`,

	SchemaNoSystem: `
		select '' as table_schema, table_name, column_name, data_type
		from dbx_schema
		order by table_name, ordinal`,

	SchemaWithSystem: `
		select '' as table_schema, table_name, column_name, data_type
		from dbx_schema
		order by table_name, ordinal`,

	SchemaSpecified: `
		select '' as table_schema, table_name, column_name, data_type
		from dbx_schema
		order by table_name, ordinal`,

	ForeignKeysForTable: `
		select column_name, foreign_table, foreign_column
		from dbx_foreign_keys
		where table_name = '{table_name}'`,

	ForeignKeysForCol: `
		select column_name, foreign_table, foreign_column
		from dbx_foreign_keys
		where table_name = '{table_name}' and column_name = '{column_name}'`,

	RefKeysForTable: `
		select foreign_column, table_name, column_name
		from dbx_foreign_keys
		where foreign_table = '{table_name}'`,
}
