package dialect

var mssqlTemplates = TemplateSet{
	ColumnHead:   `select top {limit} {column} from {table}`,
	ColumnAll:    `select {column} from {table}`,
	ColumnUnique: `select distinct {column} from {table}`,
	ColumnSample: `select top {limit} {column} from {table} order by newid()`,

	TableSelect: `select {columns} from {table}`,
	TableHead:   `select top {limit} * from {table}`,
	TableAll:    `select * from {table}`,
	TableUnique: `select distinct {columns} from {table}`,
	TableSample: `select top {limit} * from {table} order by newid()`,

	SchemaNoSystem: `
		select table_schema, table_name, column_name, data_type
		from information_schema.columns
		where table_schema not in ('information_schema', 'sys')
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
			pc.name as column_name,
			object_name(fkc.referenced_object_id) as foreign_table_name,
			rc.name as foreign_column_name
		from sys.foreign_key_columns fkc
		join sys.columns pc
			on pc.object_id = fkc.parent_object_id
			and pc.column_id = fkc.parent_column_id
		join sys.columns rc
			on rc.object_id = fkc.referenced_object_id
			and rc.column_id = fkc.referenced_column_id
		where fkc.parent_object_id = object_id('{table_name}')`,

	ForeignKeysForCol: `
		select
			pc.name as column_name,
			object_name(fkc.referenced_object_id) as foreign_table_name,
			rc.name as foreign_column_name
		from sys.foreign_key_columns fkc
		join sys.columns pc
			on pc.object_id = fkc.parent_object_id
			and pc.column_id = fkc.parent_column_id
		join sys.columns rc
			on rc.object_id = fkc.referenced_object_id
			and rc.column_id = fkc.referenced_column_id
		where fkc.parent_object_id = object_id('{table_name}')
			and pc.name = '{column_name}'`,

	RefKeysForTable: `
		select
			rc.name as column_name,
			object_name(fkc.parent_object_id) as referencing_table_name,
			pc.name as referencing_column_name
		from sys.foreign_key_columns fkc
		join sys.columns pc
			on pc.object_id = fkc.parent_object_id
			and pc.column_id = fkc.parent_column_id
		join sys.columns rc
			on rc.object_id = fkc.referenced_object_id
			and rc.column_id = fkc.referenced_column_id
		where fkc.referenced_object_id = object_id('{table_name}')`,
}
