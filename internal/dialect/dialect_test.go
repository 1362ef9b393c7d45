package dialect

import "testing"

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want Dialect
	}{
		{"postgres", Postgres},
		{"PostgreSQL", Postgres},
		{"pg", Postgres},
		{"redshift", Redshift},
		{"mysql", MySQL},
		{"mariadb", MySQL},
		{"sqlite3", SQLite},
		{"SQLite", SQLite},
		{"sqlserver", MSSQL},
		{"mssql", MSSQL},
		{" mysql ", MySQL},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParse_Unknown(t *testing.T) {
	t.Parallel()

	if _, err := Parse("oracle"); err == nil {
		t.Fatal("Parse(oracle): expected error")
	}
	if _, err := Parse(""); err == nil {
		t.Fatal("Parse of empty string: expected error")
	}
}

func TestQuoteIdent(t *testing.T) {
	t.Parallel()

	cases := []struct {
		dialect Dialect
		in      string
		want    string
	}{
		{Postgres, "Album", `"Album"`},
		{Redshift, "Album", `"Album"`},
		{SQLite, "Album", `"Album"`},
		{Postgres, `we"ird`, `"we""ird"`},
		{MySQL, "Album", "`Album`"},
		{MySQL, "we`ird", "`we``ird`"},
		{MSSQL, "Album", "[Album]"},
		{MSSQL, "we]ird", "[we]]ird]"},
	}
	for _, tc := range cases {
		if got := tc.dialect.QuoteIdent(tc.in); got != tc.want {
			t.Errorf("%s.QuoteIdent(%q) = %q, want %q", tc.dialect, tc.in, got, tc.want)
		}
	}
}

func TestEscapeLiteral(t *testing.T) {
	t.Parallel()

	if got := EscapeLiteral("O'Brien"); got != "O''Brien" {
		t.Errorf("EscapeLiteral = %q, want %q", got, "O''Brien")
	}
}

func TestDefaultPort(t *testing.T) {
	t.Parallel()

	cases := []struct {
		dialect Dialect
		want    int
	}{
		{Postgres, 5432},
		{Redshift, 5439},
		{MySQL, 3306},
		{MSSQL, 1433},
		{SQLite, 0},
	}
	for _, tc := range cases {
		if got := tc.dialect.DefaultPort(); got != tc.want {
			t.Errorf("%s.DefaultPort() = %d, want %d", tc.dialect, got, tc.want)
		}
	}
}
