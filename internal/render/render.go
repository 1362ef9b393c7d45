// Package render formats query results for the terminal.
package render

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dbx-go/dbx/internal/database"
)

// maxCellWidth caps a cell's rendered width so one long value cannot blow
// out the whole table.
const maxCellWidth = 40

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Table renders a result as a bordered table. NULL cells render as "NULL".
func Table(res *database.Result) string {
	if len(res.Columns) == 0 {
		return "(no columns)"
	}

	rows := make([][]string, len(res.Rows))
	for i, r := range res.Rows {
		cells := make([]string, len(r))
		for j, v := range r {
			cells[j] = truncate(database.FormatValue(v))
		}
		rows[i] = cells
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(res.Columns...).
		Rows(rows...)

	return t.String()
}

// Summary returns a one-line footer for a result.
func Summary(res *database.Result) string {
	unit := "rows"
	if res.RowCount() == 1 {
		unit = "row"
	}
	return fmt.Sprintf("%d %s (%s)", res.RowCount(), unit, res.Duration.Round(time.Millisecond))
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= maxCellWidth {
		return s
	}
	return string(runes[:maxCellWidth-1]) + "…"
}
