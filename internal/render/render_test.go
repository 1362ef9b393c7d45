package render

import (
	"strings"
	"testing"
	"time"

	"github.com/dbx-go/dbx/internal/database"
)

func TestTable(t *testing.T) {
	t.Parallel()

	res := &database.Result{
		Columns: []string{"AlbumId", "Title"},
		Rows: [][]any{
			{int64(1), "For Those About To Rock"},
			{int64(2), nil},
		},
	}

	out := Table(res)
	for _, want := range []string{"AlbumId", "Title", "For Those About To Rock", "NULL"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTable_TruncatesLongCells(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 200)
	res := &database.Result{
		Columns: []string{"v"},
		Rows:    [][]any{{long}},
	}

	out := Table(res)
	if strings.Contains(out, long) {
		t.Error("long cell not truncated")
	}
	if !strings.Contains(out, "…") {
		t.Error("truncated cell missing ellipsis")
	}
}

func TestTable_NoColumns(t *testing.T) {
	t.Parallel()

	if out := Table(&database.Result{}); out != "(no columns)" {
		t.Errorf("Table on empty result = %q", out)
	}
}

func TestSummary(t *testing.T) {
	t.Parallel()

	res := &database.Result{
		Columns:  []string{"n"},
		Rows:     [][]any{{1}},
		Duration: 12 * time.Millisecond,
	}
	if got := Summary(res); got != "1 row (12ms)" {
		t.Errorf("Summary = %q", got)
	}

	res.Rows = append(res.Rows, []any{2})
	if got := Summary(res); got != "2 rows (12ms)" {
		t.Errorf("Summary = %q", got)
	}
}
