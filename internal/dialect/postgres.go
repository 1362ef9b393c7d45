package dialect

// Template set for PostgreSQL. Redshift shares it; only the default port
// differs between the two.
var postgresTemplates = TemplateSet{
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
		select table_schema, table_name, column_name, data_type
		from information_schema.columns
		where table_schema not in ('pg_catalog', 'information_schema')
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
		select
			kcu.column_name,
			ccu.table_name as foreign_table_name,
			ccu.column_name as foreign_column_name
		from information_schema.table_constraints as tc
		join information_schema.key_column_usage as kcu
			on tc.constraint_name = kcu.constraint_name
			and tc.table_schema = kcu.table_schema
		join information_schema.constraint_column_usage as ccu
			on ccu.constraint_name = tc.constraint_name
			and ccu.table_schema = tc.table_schema
		where tc.constraint_type = 'FOREIGN KEY'
			and tc.table_name = '{table_name}'`,

	ForeignKeysForCol: `
		select
			kcu.column_name,
			ccu.table_name as foreign_table_name,
			ccu.column_name as foreign_column_name
		from information_schema.table_constraints as tc
		join information_schema.key_column_usage as kcu
			on tc.constraint_name = kcu.constraint_name
			and tc.table_schema = kcu.table_schema
		join information_schema.constraint_column_usage as ccu
			on ccu.constraint_name = tc.constraint_name
			and ccu.table_schema = tc.table_schema
		where tc.constraint_type = 'FOREIGN KEY'
			and tc.table_name = '{table_name}'
			and kcu.column_name = '{column_name}'`,

	RefKeysForTable: `
		select
			ccu.column_name,
			kcu.table_name as referencing_table_name,
			kcu.column_name as referencing_column_name
		from information_schema.table_constraints as tc
		join information_schema.key_column_usage as kcu
			on tc.constraint_name = kcu.constraint_name
			and tc.table_schema = kcu.table_schema
		join information_schema.constraint_column_usage as ccu
			on ccu.constraint_name = tc.constraint_name
			and ccu.table_schema = tc.table_schema
		where tc.constraint_type = 'FOREIGN KEY'
			and ccu.table_name = '{table_name}'`,
}
