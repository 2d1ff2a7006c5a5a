package output

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// WriteTable renders rows as an aligned text table.
func WriteTable(w io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	cols := make([]any, len(header))
	for i, h := range header {
		cols[i] = h
	}
	table.Header(cols...)
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}
