package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/vburojevic/scalyr-tool/internal/domain"
)

// CSVWriter writes records and tabular results as CSV
type CSVWriter struct {
	w *csv.Writer
}

// NewCSVWriter creates a new CSV writer
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: csv.NewWriter(w)}
}

// WriteRecords writes a header of columns followed by one row per record.
// Missing fields are left empty.
func (c *CSVWriter) WriteRecords(columns []string, recs []domain.LogRecord) error {
	if err := c.w.Write(columns); err != nil {
		return err
	}
	row := make([]string, len(columns))
	for _, rec := range recs {
		for i, col := range columns {
			v, _ := rec.Field(col)
			row[i] = FormatValue(v)
		}
		if err := c.w.Write(row); err != nil {
			return err
		}
	}
	c.w.Flush()
	return c.w.Error()
}

// WriteRows writes an optional header and string rows.
func (c *CSVWriter) WriteRows(header []string, rows [][]string) error {
	if len(header) > 0 {
		if err := c.w.Write(header); err != nil {
			return err
		}
	}
	if err := c.w.WriteAll(rows); err != nil {
		return err
	}
	return c.w.Error()
}

// WriteValues writes numeric series, one row per series.
func (c *CSVWriter) WriteValues(series ...[]float64) error {
	rows := make([][]string, 0, len(series))
	for _, values := range series {
		row := make([]string, len(values))
		for i, v := range values {
			row[i] = strconv.FormatFloat(v, 'f', -1, 64)
		}
		rows = append(rows, row)
	}
	return c.WriteRows(nil, rows)
}
