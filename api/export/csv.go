// Package export renders table snapshots as downloadable CSV and XLSX
// files.
package export

import (
	"fmt"
	"strings"
	"time"

	"KabisaBizSuite/api/grid"
	"KabisaBizSuite/internal/recordstore"
)

// CSVFilename names a download after its table and the current date.
func CSVFilename(table string, now time.Time) string {
	return fmt.Sprintf("%s_%s.csv", table, now.Format("2006-01-02"))
}

// WriteCSV renders rows as CSV. The header carries the display labels in
// column order; body cells hold raw field values, with string values
// always quoted. Empty input yields just the header row.
func WriteCSV(rows []recordstore.Record, columns []grid.Column) string {
	var b strings.Builder

	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.HeaderName
	}
	b.WriteString(strings.Join(headers, ","))
	b.WriteString("\n")

	for _, row := range rows {
		fields := make([]string, len(columns))
		for i, col := range columns {
			fields[i] = csvValue(row[col.Field])
		}
		b.WriteString(strings.Join(fields, ","))
		b.WriteString("\n")
	}
	return b.String()
}

// csvValue quotes strings (doubling embedded quotes) and passes numeric
// and boolean values through bare, matching the export data contract.
func csvValue(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return recordstore.Stringify(v)
}
