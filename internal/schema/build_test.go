package schema

import (
	"errors"
	"testing"
)

func chinookCatalog() []CatalogRow {
	return []CatalogRow{
		{Table: "Album", Column: "AlbumId", DataType: "INTEGER"},
		{Table: "Album", Column: "Title", DataType: "TEXT"},
		{Table: "Album", Column: "ArtistId", DataType: "INTEGER"},
		{Table: "Artist", Column: "ArtistId", DataType: "INTEGER"},
		{Table: "Artist", Column: "Name", DataType: "TEXT"},
		{Table: "Track", Column: "TrackId", DataType: "INTEGER"},
		{Table: "Track", Column: "AlbumId", DataType: "INTEGER"},
	}
}

func chinookKeys() []KeyRow {
	return []KeyRow{
		{Table: "Album", Column: "ArtistId", RefTable: "Artist", RefColumn: "ArtistId"},
		{Table: "Track", Column: "AlbumId", RefTable: "Album", RefColumn: "AlbumId"},
	}
}

func TestBuild_AlbumExample(t *testing.T) {
	t.Parallel()

	d := Build(nil, chinookCatalog(), chinookKeys(), nil)

	album, err := d.Table("Album")
	if err != nil {
		t.Fatalf("Table(Album): %v", err)
	}
	cols := album.Columns()
	if len(cols) != 3 {
		t.Fatalf("Album has %d columns, want 3", len(cols))
	}
	// Catalog order is preserved.
	for i, want := range []string{"AlbumId", "Title", "ArtistId"} {
		if cols[i].Name != want {
			t.Errorf("Album column %d = %q, want %q", i, cols[i].Name, want)
		}
	}

	albumID, err := album.Column("AlbumId")
	if err != nil {
		t.Fatalf("Column(AlbumId): %v", err)
	}
	if len(albumID.RefKeys) != 1 {
		t.Fatalf("Album.AlbumId has %d reference keys, want 1", len(albumID.RefKeys))
	}
	if got := albumID.RefKeys[0].QualifiedName(); got != "Track.AlbumId" {
		t.Errorf("Album.AlbumId referenced by %q, want Track.AlbumId", got)
	}

	trackAlbumID, err := d.Table("Track")
	if err != nil {
		t.Fatalf("Table(Track): %v", err)
	}
	c, err := trackAlbumID.Column("AlbumId")
	if err != nil {
		t.Fatalf("Column(AlbumId): %v", err)
	}
	if len(c.ForeignKeys) != 1 || c.ForeignKeys[0] != albumID {
		t.Errorf("Track.AlbumId foreign keys = %v, want [Album.AlbumId]", c.ForeignKeys)
	}

	if len(d.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", d.Warnings)
	}
}

// The built graph must not depend on key row input order, and overlapping
// foreign-key and reference-key rows must not duplicate edges.
func TestBuild_Deterministic(t *testing.T) {
	t.Parallel()

	keys := chinookKeys()
	reversed := []KeyRow{keys[1], keys[0]}

	a := Build(nil, chinookCatalog(), keys, keys)
	b := Build(nil, chinookCatalog(), reversed, nil)

	for _, d := range []*Database{a, b} {
		track, err := d.Table("Track")
		if err != nil {
			t.Fatalf("Table(Track): %v", err)
		}
		c, err := track.Column("AlbumId")
		if err != nil {
			t.Fatalf("Column(AlbumId): %v", err)
		}
		if len(c.ForeignKeys) != 1 {
			t.Errorf("Track.AlbumId has %d foreign keys, want 1", len(c.ForeignKeys))
		}
	}

	aTables := a.Tables()
	bTables := b.Tables()
	if len(aTables) != len(bTables) {
		t.Fatalf("table counts differ: %d vs %d", len(aTables), len(bTables))
	}
	for i := range aTables {
		if aTables[i].QualifiedName() != bTables[i].QualifiedName() {
			t.Errorf("table %d differs: %q vs %q", i, aTables[i].QualifiedName(), bTables[i].QualifiedName())
		}
	}
}

// A key edge whose endpoint is absent (e.g. a system table excluded from
// the snapshot) is dropped with a warning, not an error.
func TestBuild_DanglingKeyWarns(t *testing.T) {
	t.Parallel()

	keys := append(chinookKeys(), KeyRow{
		Table: "Track", Column: "GenreId", RefTable: "Genre", RefColumn: "GenreId",
	})
	d := Build(nil, chinookCatalog(), keys, nil)

	if len(d.Warnings) != 1 {
		t.Fatalf("got %d warnings, want 1: %v", len(d.Warnings), d.Warnings)
	}

	track, err := d.Table("Track")
	if err != nil {
		t.Fatalf("Table(Track): %v", err)
	}
	for _, c := range track.Columns() {
		for _, fk := range c.ForeignKeys {
			if fk.Table.Name == "Genre" {
				t.Error("dangling edge present in graph")
			}
		}
	}
}

// A key edge whose far endpoint is reported by bare name must not be
// attached to a same-named table in the owning table's schema. When the bare
// name is ambiguous the edge is dropped with a warning; when it is unique it
// resolves across schemas.
func TestBuild_CrossSchemaKeyTarget(t *testing.T) {
	t.Parallel()

	orders := []CatalogRow{
		{Schema: "audit", Table: "orders", Column: "id", DataType: "integer"},
		{Schema: "audit", Table: "orders", Column: "user_id", DataType: "integer"},
	}
	publicUsers := CatalogRow{Schema: "public", Table: "users", Column: "id", DataType: "integer"}
	auditUsers := CatalogRow{Schema: "audit", Table: "users", Column: "id", DataType: "integer"}
	fk := KeyRow{Schema: "audit", Table: "orders", Column: "user_id", RefTable: "users", RefColumn: "id"}

	t.Run("ambiguous target drops the edge", func(t *testing.T) {
		t.Parallel()

		d := Build(nil, append(orders, publicUsers, auditUsers), []KeyRow{fk}, nil)
		if len(d.Warnings) != 1 {
			t.Fatalf("got %d warnings, want 1: %v", len(d.Warnings), d.Warnings)
		}

		tbl, err := d.Table("audit.orders")
		if err != nil {
			t.Fatalf("Table(audit.orders): %v", err)
		}
		c, err := tbl.Column("user_id")
		if err != nil {
			t.Fatalf("Column(user_id): %v", err)
		}
		if len(c.ForeignKeys) != 0 {
			t.Errorf("ambiguous edge attached to %q", c.ForeignKeys[0].Table.QualifiedName())
		}

		shadow, err := d.Table("audit.users")
		if err != nil {
			t.Fatalf("Table(audit.users): %v", err)
		}
		id, err := shadow.Column("id")
		if err != nil {
			t.Fatalf("Column(id): %v", err)
		}
		if len(id.RefKeys) != 0 {
			t.Error("ambiguous edge attached to audit.users.id")
		}
	})

	t.Run("unique target resolves across schemas", func(t *testing.T) {
		t.Parallel()

		d := Build(nil, append(orders, publicUsers), []KeyRow{fk}, nil)
		if len(d.Warnings) != 0 {
			t.Fatalf("unexpected warnings: %v", d.Warnings)
		}

		tbl, err := d.Table("audit.orders")
		if err != nil {
			t.Fatalf("Table(audit.orders): %v", err)
		}
		c, err := tbl.Column("user_id")
		if err != nil {
			t.Fatalf("Column(user_id): %v", err)
		}
		if len(c.ForeignKeys) != 1 {
			t.Fatalf("user_id has %d foreign keys, want 1", len(c.ForeignKeys))
		}
		if got := c.ForeignKeys[0].Table.QualifiedName(); got != "public.users" {
			t.Errorf("edge target = %q, want public.users", got)
		}
	})
}

func TestBuild_QualifiedNames(t *testing.T) {
	t.Parallel()

	catalog := []CatalogRow{
		{Schema: "public", Table: "users", Column: "id", DataType: "integer"},
		{Schema: "audit", Table: "users", Column: "id", DataType: "integer"},
	}
	d := Build(nil, catalog, nil, nil)

	if _, err := d.Table("public.users"); err != nil {
		t.Errorf("qualified lookup failed: %v", err)
	}
	// The bare name is ambiguous across schemas.
	if _, err := d.Table("users"); err == nil {
		t.Error("ambiguous bare lookup should fail")
	}

	_, err := d.Table("missing")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("error = %v (%T), want *NotFoundError", err, err)
	}
}
