// Package export writes batch results as delimited text or into a SQL table.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/katalvlaran/landmetrics/batch"
	"github.com/katalvlaran/landmetrics/landscape"
)

// DefaultSeparator is the column separator of exported tables.
const DefaultSeparator = ';'

// CSVWriter writes one line per batch row: tile_id, class (omitted when
// every row is landscape-level), then one column per metric in the order of
// the first row.
//
// Cells: defined values in shortest float form, undefined values empty,
// not-applicable values and NaN results as "NaN".
type CSVWriter struct {
	w *csv.Writer
}

// NewCSVWriter returns a writer using sep as the column separator.
func NewCSVWriter(w io.Writer, sep rune) *CSVWriter {
	cw := csv.NewWriter(w)
	cw.Comma = sep
	return &CSVWriter{w: cw}
}

// WriteRows writes a header and rows. Rows must share the same metric list.
func (c *CSVWriter) WriteRows(rows []batch.Row) error {
	if len(rows) == 0 {
		return nil
	}
	withClass := false
	for _, r := range rows {
		if r.Class != batch.NoClass {
			withClass = true
			break
		}
	}

	names := rows[0].Results
	header := make([]string, 0, len(names)+2)
	header = append(header, "tile_id")
	if withClass {
		header = append(header, "class")
	}
	for _, r := range names {
		header = append(header, r.Name)
	}
	if err := c.w.Write(header); err != nil {
		return err
	}

	for _, row := range rows {
		if len(row.Results) != len(names) {
			return fmt.Errorf("export: tile %s class %d: %d metrics, header has %d",
				row.TileID, row.Class, len(row.Results), len(names))
		}
		rec := make([]string, 0, len(header))
		rec = append(rec, row.TileID)
		if withClass {
			rec = append(rec, strconv.Itoa(row.Class))
		}
		for _, r := range row.Results {
			rec = append(rec, FormatValue(r.Value))
		}
		if err := c.w.Write(rec); err != nil {
			return err
		}
	}
	c.w.Flush()
	return c.w.Error()
}

// FormatValue renders a metric value as a table cell.
func FormatValue(v landscape.Value) string {
	switch v.Status {
	case landscape.StatusUndefined:
		return ""
	case landscape.StatusNotApplicable:
		return "NaN"
	}
	if math.IsNaN(v.Float) {
		return "NaN"
	}
	return strconv.FormatFloat(v.Float, 'f', -1, 64)
}

// WriteCSVFile creates path and writes rows into it.
func WriteCSVFile(path string, rows []batch.Row, sep rune) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return NewCSVWriter(f, sep).WriteRows(rows)
}
