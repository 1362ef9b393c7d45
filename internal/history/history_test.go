package history

import (
	"testing"
	"time"
)

func TestAppendAndEntries(t *testing.T) {
	t.Parallel()

	l := New(t.TempDir())

	if got := l.Entries(); len(got) != 0 {
		t.Fatalf("fresh log has %d entries, want 0", len(got))
	}

	if err := l.Append(Entry{Profile: "dev", Query: "select 1", Rows: 1, DurationMS: 3}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := l.Append(Entry{Profile: "dev", Query: "select 2", Rows: 1, DurationMS: 2}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	entries := l.Entries()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	// Newest first.
	if entries[0].Query != "select 2" {
		t.Errorf("entries[0].Query = %q, want %q", entries[0].Query, "select 2")
	}

	for _, e := range entries {
		if e.ID == "" {
			t.Error("entry ID not assigned")
		}
		if e.At.IsZero() {
			t.Error("entry timestamp not assigned")
		}
	}
}

func TestAppend_KeepsCallerFields(t *testing.T) {
	t.Parallel()

	l := New(t.TempDir())
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	if err := l.Append(Entry{ID: "fixed", Query: "select 1", At: at}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	entries := l.Entries()
	if entries[0].ID != "fixed" {
		t.Errorf("ID = %q, want %q", entries[0].ID, "fixed")
	}
	if !entries[0].At.Equal(at) {
		t.Errorf("At = %v, want %v", entries[0].At, at)
	}
}

func TestEntries_MissingFile(t *testing.T) {
	t.Parallel()

	l := New(t.TempDir() + "/nested/missing")
	if got := l.Entries(); got != nil {
		t.Errorf("Entries on missing file = %v, want nil", got)
	}
}
