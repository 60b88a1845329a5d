package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// column is a table heading; numeric columns set right
type column struct {
	title string
	right bool
}

func renderTable(columns []column, rows [][]string) string {
	if len(columns) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, 0, len(columns))
	configs := make([]table.ColumnConfig, 0, len(columns))
	for i, c := range columns {
		header = append(header, c.title)
		align := text.AlignLeft
		if c.right {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{Number: i + 1, Align: align, AlignHeader: text.AlignLeft})
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	for _, cells := range rows {
		tw.AppendRow(padRow(cells, len(columns)))
	}
	return tw.Render()
}

// padRow fits cells to the column count, blank-filling short rows and
// dropping extra cells
func padRow(cells []string, width int) table.Row {
	row := make(table.Row, width)
	for i := range row {
		row[i] = ""
		if i < len(cells) {
			row[i] = cells[i]
		}
	}
	return row
}
