// ABOUTME: Tabular worksheet data as read from the spreadsheet.
// ABOUTME: Records() exposes rows as header-keyed maps for the transformer.
package gsheets

// Table is the contents of one worksheet: a header row and data rows.
// Cells are kept as strings; numeric coercion is the transformer's job.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// Len returns the number of data rows (header excluded).
func (t *Table) Len() int {
	return len(t.Rows)
}

// Records returns one map per data row, keyed by the header columns.
// Short rows are padded with empty strings; cells beyond the header
// width are dropped.
func (t *Table) Records() []map[string]string {
	records := make([]map[string]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := make(map[string]string, len(t.Columns))
		for i, col := range t.Columns {
			if col == "" {
				continue
			}
			if i < len(row) {
				rec[col] = row[i]
			} else {
				rec[col] = ""
			}
		}
		records = append(records, rec)
	}
	return records
}

// Extract bundles the three worksheets a pipeline run consumes.
type Extract struct {
	Session   *Table
	Exercises *Table
	Input     *Table
}
