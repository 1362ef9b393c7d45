package schema

import "testing"

func searchFixture() *Database {
	return Build(nil, chinookCatalog(), nil, nil)
}

func TestFindTables(t *testing.T) {
	t.Parallel()

	d := searchFixture()

	cases := []struct {
		pattern string
		want    []string
	}{
		{"*", []string{"Album", "Artist", "Track"}},
		{"A*", []string{"Album", "Artist"}},
		{"a*", []string{"Album", "Artist"}}, // case-insensitive
		{"*rack", []string{"Track"}},
		{"track", []string{"Track"}},
		{"Z*", nil},
	}
	for _, tc := range cases {
		got := d.FindTables(tc.pattern)
		if len(got) != len(tc.want) {
			t.Errorf("FindTables(%q) returned %d tables, want %d", tc.pattern, len(got), len(tc.want))
			continue
		}
		for i, table := range got {
			if table.Name != tc.want[i] {
				t.Errorf("FindTables(%q)[%d] = %q, want %q", tc.pattern, i, table.Name, tc.want[i])
			}
		}
	}
}

func TestFindTables_Star_ReturnsEachTableOnce(t *testing.T) {
	t.Parallel()

	d := searchFixture()
	seen := make(map[*Table]int)
	for _, table := range d.FindTables("*") {
		seen[table]++
	}
	if len(seen) != len(d.Tables()) {
		t.Errorf("FindTables(*) covered %d tables, want %d", len(seen), len(d.Tables()))
	}
	for table, n := range seen {
		if n != 1 {
			t.Errorf("table %s appeared %d times", table.Name, n)
		}
	}
}

func TestFindColumns(t *testing.T) {
	t.Parallel()

	d := searchFixture()

	cases := []struct {
		name    string
		pattern string
		types   []string
		want    int
	}{
		{"all ids", "*Id", nil, 5},
		{"typed match", "*Id", []string{"INTEGER"}, 5},
		{"no type matches", "*Id", []string{"uuid"}, 0},
		{"union across types", "*", []string{"INTEGER", "TEXT"}, 7},
		{"exact type match only", "*", []string{"integer"}, 0},
		{"case-insensitive name", "title", nil, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := d.FindColumns(tc.pattern, tc.types...)
			if len(got) != tc.want {
				t.Errorf("FindColumns(%q, %v) returned %d columns, want %d",
					tc.pattern, tc.types, len(got), tc.want)
			}
			seen := make(map[*Column]bool)
			for _, c := range got {
				if seen[c] {
					t.Errorf("duplicate column %s", c.QualifiedName())
				}
				seen[c] = true
			}
		})
	}
}
