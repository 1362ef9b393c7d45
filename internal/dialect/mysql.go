package dialect

var mysqlTemplates = TemplateSet{
	ColumnHead:   `select {column} from {table} limit {limit}`,
	ColumnAll:    `select {column} from {table}`,
	ColumnUnique: `select distinct {column} from {table}`,
	ColumnSample: `select {column} from {table} order by rand() limit {limit}`,

	TableSelect: `select {columns} from {table}`,
	TableHead:   `select * from {table} limit {limit}`,
	TableAll:    `select * from {table}`,
	TableUnique: `select distinct {columns} from {table}`,
	TableSample: `select * from {table} order by rand() limit {limit}`,

	SchemaNoSystem: `
		select table_schema, table_name, column_name, data_type
		from information_schema.columns
		where table_schema not in ('information_schema', 'mysql', 'performance_schema', 'sys')
		order by table_schema, table_name, ordinal_position`,

	SchemaWithSystem: `
		select table_schema, table_name, column_name, data_type
		from information_schema.columns
		order by table_schema, table_name, ordinal_position`,

	SchemaSpecified: `
		select table_schema, table_name, column_name, data_type
		from information_schema.columns
		where table_schema in ({schemas})
		order by table_schema, table_name, ordinal_position`,

	ForeignKeysForTable: `
		select column_name, referenced_table_name, referenced_column_name
		from information_schema.key_column_usage
		where table_schema = database()
			and table_name = '{table_name}'
			and referenced_table_name is not null`,

	ForeignKeysForCol: `
		select column_name, referenced_table_name, referenced_column_name
		from information_schema.key_column_usage
		where table_schema = database()
			and table_name = '{table_name}'
			and column_name = '{column_name}'
			and referenced_table_name is not null`,

	RefKeysForTable: `
		select referenced_column_name, table_name, column_name
		from information_schema.key_column_usage
		where table_schema = database()
			and referenced_table_name = '{table_name}'`,
}
