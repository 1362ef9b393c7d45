package database

import (
	"fmt"
	"time"
)

// Result holds the outcome of a SQL query execution: an ordered sequence of
// named columns over rows of scalar values. Cells keep the driver's Go type
// (string, integer, float, bool, []byte or nil); callers stringify at the
// edge when rendering.
type Result struct {
	Columns  []string
	Rows     [][]any
	Duration time.Duration
}

// RowCount returns the number of rows in the result.
func (r *Result) RowCount() int {
	return len(r.Rows)
}

// String formats a single cell for display. NULL renders as "NULL".
func (r *Result) String(row, col int) string {
	return FormatValue(r.Rows[row][col])
}

// FormatValue renders a scalar cell value as text.
func FormatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return "NULL"
	case string:
		return v
	case []byte:
		return string(v)
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", v)
	}
}
