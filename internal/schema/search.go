package schema

import (
	"path"
	"strings"
)

// FindTables searches the snapshot for tables whose name matches a
// glob-style pattern ("*" matches any run of characters). Matching is
// case-insensitive and runs against both the bare and qualified names.
// Every table appears at most once, in catalog order.
func (d *Database) FindTables(pattern string) []*Table {
	var out []*Table
	for _, name := range d.order {
		t := d.tables[name]
		if matchPattern(pattern, t.Name) || matchPattern(pattern, t.QualifiedName()) {
			out = append(out, t)
		}
	}
	return out
}

// FindColumns searches every table for columns whose name matches a
// glob-style pattern, case-insensitively. When one or more types are given,
// a column matches only if its declared type equals one of them exactly
// (OR-combined). The result contains no duplicates.
func (d *Database) FindColumns(pattern string, types ...string) []*Column {
	var out []*Column
	for _, name := range d.order {
		for _, c := range d.tables[name].columns {
			if !matchPattern(pattern, c.Name) {
				continue
			}
			if len(types) > 0 && !typeMatches(c.DataType, types) {
				continue
			}
			out = append(out, c)
		}
	}
	return out
}

func typeMatches(dataType string, types []string) bool {
	for _, t := range types {
		if dataType == t {
			return true
		}
	}
	return false
}

// matchPattern does a case-insensitive glob match. A malformed pattern
// matches nothing.
func matchPattern(pattern, name string) bool {
	ok, err := path.Match(strings.ToLower(pattern), strings.ToLower(name))
	return err == nil && ok
}
