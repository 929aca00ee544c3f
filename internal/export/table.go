package export

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/zarlcorp/zfake/internal/record"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// NewTable builds a bordered lipgloss table of records. cols is the header
// to use when records is empty.
func NewTable(records []record.Record, cols []string) *table.Table {
	if len(records) > 0 {
		cols = records[0].Columns()
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, r.Values())
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(cols...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

// WriteTable renders records as a terminal table.
func WriteTable(w io.Writer, records []record.Record, cols []string) error {
	if _, err := fmt.Fprintln(w, NewTable(records, cols).String()); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}
